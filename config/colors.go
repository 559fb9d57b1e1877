package config

var namedColors = map[string]string{
	"black":          "\033[0;30m",
	"red":            "\033[0;31m",
	"green":          "\033[0;32m",
	"yellow":         "\033[0;33m",
	"blue":           "\033[0;34m",
	"magenta":        "\033[0;35m",
	"purple":         "\033[0;35m",
	"cyan":           "\033[0;36m",
	"white":          "\033[0;37m",
	"bright_black":   "\033[1;30m",
	"gray":           "\033[1;30m",
	"grey":           "\033[1;30m",
	"bright_red":     "\033[1;31m",
	"bright_green":   "\033[1;32m",
	"bright_yellow":  "\033[1;33m",
	"bright_blue":    "\033[1;34m",
	"bright_magenta": "\033[1;35m",
	"bright_cyan":    "\033[1;36m",
	"bright_white":   "\033[1;37m",
	"reset":          "\033[0m",
}

// ColorNameToCode returns the ANSI sequence for a named color. Unknown
// names are returned unchanged so a raw escape sequence can be configured
// directly.
func ColorNameToCode(name string) string {
	if code, ok := namedColors[name]; ok {
		return code
	}
	return name
}
