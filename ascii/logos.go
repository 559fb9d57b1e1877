// Package ascii provides ASCII art logos for the operating systems kfetch
// recognizes. Logos are color-coded using ANSI escape sequences for
// terminal display.
package ascii

import "kfetch/sysinfo"

// logoFunc builds a logo from the active colors.
type logoFunc func() []string

// catalog maps canonical distro identifiers to their logo.
var catalog = map[string]logoFunc{
	"arch":        archLogo,
	"artix":       archLogo,
	"endeavouros": archLogo,
	"manjaro":     manjaroLogo,
	"debian":      debianLogo,
	"ubuntu":      ubuntuLogo,
	"pop_os":      ubuntuLogo,
	"mint":        mintLogo,
	"fedora":      fedoraLogo,
	"rhel":        fedoraLogo,
	"centos":      fedoraLogo,
	"rocky":       fedoraLogo,
	"almalinux":   fedoraLogo,
	"gentoo":      gentooLogo,
	"alpine":      alpineLogo,
	"void":        voidLogo,
	"freebsd":     freebsdLogo,
	"openbsd":     openbsdLogo,
	"netbsd":      netbsdLogo,
	"dragonfly":   dragonflyLogo,
}

// GetLogo returns the ASCII art for a canonical distro identifier.
//
// Parameters:
//   - distroID: Identifier as produced by sysinfo.CanonicalDistroID
//
// Returns:
//   - A slice of strings, one per line of ASCII art
//   - The generic Tux logo when distroID is empty or not in the catalog
func GetLogo(distroID string) []string {
	if logo, ok := catalog[distroID]; ok {
		return logo()
	}
	return genericLogo()
}

// HasLogo reports whether distroID has a dedicated logo.
func HasLogo(distroID string) bool {
	_, ok := catalog[distroID]
	return ok
}

// genericLogo is Tux, used for anything without its own entry.
func genericLogo() []string {
	w := sysinfo.ColorWhite
	y := sysinfo.ColorYellow
	r := sysinfo.ColorReset

	return []string{
		w + "        .--.     " + r,
		w + "       |o_o |    " + r,
		w + "       |" + y + ":_/" + w + " |    " + r,
		w + "      //   \\ \\   " + r,
		w + "     (|     | )  " + r,
		w + "    /'\\_   _/`\\  " + r,
		y + "    \\___)=(___/  " + r,
	}
}

func archLogo() []string {
	c := sysinfo.ColorCyan
	r := sysinfo.ColorReset

	return []string{
		c + "         /\\         " + r,
		c + "        /  \\        " + r,
		c + "       /\\   \\       " + r,
		c + "      /      \\      " + r,
		c + "     /   ,,   \\     " + r,
		c + "    /   |  |  -\\    " + r,
		c + "   /_-''    ''-_\\   " + r,
	}
}

func manjaroLogo() []string {
	g := sysinfo.ColorGreen
	r := sysinfo.ColorReset

	return []string{
		g + "||||||||| ||||  " + r,
		g + "||||||||| ||||  " + r,
		g + "||||      ||||  " + r,
		g + "|||| |||| ||||  " + r,
		g + "|||| |||| ||||  " + r,
		g + "|||| |||| ||||  " + r,
		g + "|||| |||| ||||  " + r,
	}
}

func debianLogo() []string {
	red := sysinfo.ColorRed
	r := sysinfo.ColorReset

	return []string{
		red + "    _____     " + r,
		red + "   /  __ \\    " + r,
		red + "  |  /    |   " + r,
		red + "  |  \\___-    " + r,
		red + "  -_          " + r,
		red + "    --_       " + r,
	}
}

func ubuntuLogo() []string {
	y := sysinfo.ColorYellow
	red := sysinfo.ColorRed
	r := sysinfo.ColorReset

	return []string{
		y + "          _   " + r,
		y + "      ---(_)  " + r,
		red + "  _/  ---  \\  " + r,
		red + " (_) |   |    " + r,
		red + "   \\  --- _/  " + r,
		y + "      ---(_)  " + r,
	}
}

func mintLogo() []string {
	g := sysinfo.ColorGreen
	w := sysinfo.ColorWhite
	r := sysinfo.ColorReset

	return []string{
		g + " _____________   " + r,
		g + "|_            \\  " + r,
		g + "  |" + w + " | _____ " + g + "|  " + r,
		g + "  |" + w + " | | | | " + g + "|  " + r,
		g + "  |" + w + " | | | | " + g + "|  " + r,
		g + "  |" + w + " \\_____/ " + g + "|  " + r,
		g + "  \\_________/   " + r,
	}
}

func fedoraLogo() []string {
	b := sysinfo.ColorBlue
	w := sysinfo.ColorWhite
	r := sysinfo.ColorReset

	return []string{
		b + "        _____   " + r,
		b + "       /   __)" + w + "\\ " + r,
		b + "       |  /  " + w + "\\ \\" + r,
		w + "    __" + b + "_|  |_" + w + "_/ /" + r,
		w + "   / " + b + "(_    _)" + w + "_/ " + r,
		w + "  / /  " + b + "|  |     " + r,
		w + "  \\ \\" + b + "__/  |     " + r,
		w + "   \\" + b + "(_____/     " + r,
	}
}

func gentooLogo() []string {
	p := sysinfo.ColorPurple
	w := sysinfo.ColorWhite
	r := sysinfo.ColorReset

	return []string{
		p + "   _-----_   " + r,
		p + "  (       \\  " + r,
		p + "  \\    " + w + "0" + p + "   \\ " + r,
		p + "   \\        )" + r,
		p + "   /      _/ " + r,
		p + "  (     _-   " + r,
		p + "  \\____-     " + r,
	}
}

func alpineLogo() []string {
	b := sysinfo.ColorBlue
	r := sysinfo.ColorReset

	return []string{
		b + "     /\\ /\\      " + r,
		b + "    // \\  \\     " + r,
		b + "   //   \\  \\    " + r,
		b + "  ///    \\  \\   " + r,
		b + "  //      \\  \\  " + r,
		b + "           \\    " + r,
	}
}

func voidLogo() []string {
	g := sysinfo.ColorGreen
	r := sysinfo.ColorReset

	return []string{
		g + "    _______     " + r,
		g + " _ \\______ -    " + r,
		g + "| \\  ___  \\ |   " + r,
		g + "| | /   \\ | |   " + r,
		g + "| | \\___/ | |   " + r,
		g + "| \\______ \\_|   " + r,
		g + " -_______\\      " + r,
	}
}

func freebsdLogo() []string {
	red := sysinfo.ColorRed
	w := sysinfo.ColorWhite
	r := sysinfo.ColorReset

	return []string{
		red + "/\\,-'''''-,/\\  " + r,
		red + "\\_)       (_/  " + r,
		red + "|           |  " + r,
		red + "|           |  " + r,
		red + " ;         ;   " + r,
		red + "  '-_____-'    " + r,
		w + "   FreeBSD     " + r,
	}
}

func openbsdLogo() []string {
	y := sysinfo.ColorYellow
	r := sysinfo.ColorReset

	return []string{
		y + "      _____     " + r,
		y + "    \\-     -/   " + r,
		y + " \\_/         \\  " + r,
		y + " |        O O | " + r,
		y + " |_  <   )  3 ) " + r,
		y + " / \\         /  " + r,
		y + "    /-_____-\\   " + r,
	}
}

func netbsdLogo() []string {
	o := sysinfo.ColorYellow
	w := sysinfo.ColorWhite
	r := sysinfo.ColorReset

	return []string{
		w + "\\\\" + o + "`-______,----__  " + r,
		w + " \\\\        " + o + "__,---`_" + r,
		w + "  \\\\       " + o + "`.____   " + r,
		w + "   \\\\" + o + "-______,----`-" + r,
		w + "    \\\\              " + r,
		w + "     \\\\             " + r,
		w + "      \\\\            " + r,
	}
}

func dragonflyLogo() []string {
	red := sysinfo.ColorRed
	w := sysinfo.ColorWhite
	r := sysinfo.ColorReset

	return []string{
		red + "   ,_,    " + r,
		red + "('-_" + w + "|" + red + "_-')" + r,
		red + " >--" + w + "|" + red + "--<  " + r,
		red + "(_-'" + w + "|" + red + "'-_) " + r,
		w + "    |     " + r,
		w + "    |     " + r,
		w + "    |     " + r,
	}
}
