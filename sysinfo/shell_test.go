package sysinfo

import "testing"

const samplePasswd = `# local accounts
root:x:0:0:root:/root:/bin/bash
daemon:x:1:1:daemon:/usr/sbin:/usr/sbin/nologin
alice:x:1000:1000:Alice,,,:/home/alice:/usr/bin/fish
broken:x:1001`

func TestShellFromEnv(t *testing.T) {
	p := newFakeProber()
	p.env["SHELL"] = "/usr/bin/zsh"
	if got := NewDetector(p, Linux, nil).Shell(); got != "zsh" {
		t.Fatalf("Shell() = %q", got)
	}
}

func TestShellFromPasswd(t *testing.T) {
	p := newFakeProber()
	p.files[passwdPath] = samplePasswd
	p.uid = 1000
	if got := NewDetector(p, Linux, nil).Shell(); got != "fish" {
		t.Fatalf("Shell() = %q", got)
	}
}

func TestShellResolvesSh(t *testing.T) {
	p := newFakeProber()
	p.env["SHELL"] = "/bin/sh"
	p.resolved["sh"] = "/usr/bin/dash"
	if got := NewDetector(p, Linux, nil).Shell(); got != "dash" {
		t.Fatalf("Shell() = %q", got)
	}

	delete(p.resolved, "sh")
	if got := NewDetector(p, Linux, nil).Shell(); got != "sh" {
		t.Fatalf("Shell() unresolved = %q", got)
	}
}

func TestShellUnknown(t *testing.T) {
	if got := NewDetector(newFakeProber(), Linux, nil).Shell(); got != Unknown {
		t.Fatalf("Shell() = %q; want %q", got, Unknown)
	}
}

func TestPasswdShell(t *testing.T) {
	tests := []struct {
		uid  int
		want string
	}{
		{0, "/bin/bash"},
		{1000, "/usr/bin/fish"},
		{1001, ""},
		{4242, ""},
		{-1, ""},
	}
	for _, tc := range tests {
		if got := passwdShell(samplePasswd, tc.uid); got != tc.want {
			t.Errorf("passwdShell(uid %d) = %q; want %q", tc.uid, got, tc.want)
		}
	}
}
