// Package palette defines ANSI prefixes for the built-in themes.
package palette

// Attribute prefixes.
const (
	Bold      = "\x1b[1m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
)

// Palette holds per-kind ANSI color prefixes. Empty fields inherit the
// terminal's default color.
type Palette struct {
	Text    string
	Tag     string
	Mention string
	Link    string
}

func fg256(n string) string {
	return "\x1b[38;5;" + n + "m"
}

var (
	PaletteDefault       = Palette{Tag: fg256("114"), Mention: fg256("215"), Link: fg256("75")}
	PaletteDracula       = Palette{Text: fg256("253"), Tag: fg256("84"), Mention: fg256("212"), Link: fg256("117")}
	PaletteGruvbox       = Palette{Text: fg256("223"), Tag: fg256("142"), Mention: fg256("208"), Link: fg256("109")}
	PaletteNord          = Palette{Text: fg256("253"), Tag: fg256("108"), Mention: fg256("179"), Link: fg256("110")}
	PaletteSolarizedDark = Palette{Text: fg256("244"), Tag: fg256("106"), Mention: fg256("136"), Link: fg256("37")}
	PaletteGithubLight   = Palette{Tag: fg256("28"), Mention: fg256("130"), Link: fg256("26")}
)
