package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// hideFlags are the --no-* flags, keyed by the config key they clear.
var hideFlags = []struct {
	name, key, usage string
}{
	{"no-art", "show_art", "hide the ASCII logo"},
	{"no-colors", "show_colors", "disable colored output"},
	{"no-username", "show_username", "hide the username"},
	{"no-hostname", "show_hostname", "hide the hostname"},
	{"no-os", "show_os", "hide the OS name"},
	{"no-kernel", "show_kernel", "hide the kernel version"},
	{"no-uptime", "show_uptime", "hide the uptime"},
	{"no-packages", "show_packages", "hide the package count"},
	{"no-shell", "show_shell", "hide the shell"},
	{"no-de", "show_de", "hide the desktop environment"},
	{"no-terminal", "show_terminal", "hide the terminal"},
	{"no-cpu", "show_cpu", "hide the CPU"},
	{"no-gpu", "show_gpu", "hide the GPU"},
	{"no-memory", "show_memory", "hide the memory usage"},
}

// Flags is the parsed command line. Apply layers it over file settings.
type Flags struct {
	ConfigPath string
	Verbose    bool

	gap    int
	fs     *pflag.FlagSet
	hidden map[string]*bool
}

// ParseArgs parses args (without the program name). Errors and usage are
// written to output. The returned error is pflag.ErrHelp for -h/--help.
func ParseArgs(args []string, output io.Writer) (*Flags, error) {
	f := &Flags{hidden: map[string]*bool{}}
	fs := pflag.NewFlagSet("kfetch", pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&f.ConfigPath, "config", "", "config file (default ~/.config/kfetch.conf)")
	fs.BoolVar(&f.Verbose, "output", false, "log detection details to stderr")
	fs.IntVar(&f.gap, "gap", DefaultGap, "number of spaces between logo and info")
	for _, h := range hideFlags {
		f.hidden[h.key] = fs.Bool(h.name, false, h.usage)
	}
	fs.SortFlags = false

	if err := fs.Parse(args); err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintln(output, err)
			fs.Usage()
		}
		return nil, err
	}
	f.fs = fs
	return f, nil
}

// Apply overrides s with every flag given on the command line.
func (f *Flags) Apply(s *Settings) {
	show := s.showFlags()
	for key, hide := range f.hidden {
		if *hide {
			*show[key] = false
		}
	}
	if f.Verbose {
		s.Verbose = true
	}
	if f.fs != nil && f.fs.Changed("gap") && f.gap >= 0 {
		s.Gap = f.gap
	}
}
