//go:build freebsd || openbsd || netbsd || dragonfly

package sysinfo

import (
	"encoding/binary"
	"testing"
)

func TestDecodeSysctlUint(t *testing.T) {
	four := make([]byte, 4)
	binary.NativeEndian.PutUint32(four, 262144)
	if v, ok := decodeSysctlUint(four); !ok || v != 262144 {
		t.Fatalf("4-byte decode = (%d, %v)", v, ok)
	}

	eight := make([]byte, 8)
	binary.NativeEndian.PutUint64(eight, 8<<30)
	if v, ok := decodeSysctlUint(eight); !ok || v != 8<<30 {
		t.Fatalf("8-byte decode = (%d, %v)", v, ok)
	}

	if _, ok := decodeSysctlUint([]byte{1, 2}); ok {
		t.Fatal("2-byte payload decoded")
	}
}
