package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the status glyphs for one style. Each glyph includes its
// trailing separator.
type Icons struct {
	Warning string
	Success string
	Error   string
}

var (
	nerdIcons = Icons{
		Warning: "\uf071 ", // nf-fa-warning
		Success: "\uf00c ", // nf-fa-check
		Error:   "\uf057 ", // nf-fa-times_circle
	}

	unicodeIcons = Icons{
		Warning: "⚠ ",
		Success: "✔ ",
		Error:   "❌ ",
	}

	noneIcons = Icons{
		Warning: "[!] ",
		Success: "[ok] ",
		Error:   "[x] ",
	}
)

// For returns the icon set for style.
// Empty or unknown styles fall back to unicode.
func For(style string) Icons {
	switch Style(style) {
	case StyleNerd:
		return nerdIcons
	case StyleNone:
		return noneIcons
	default:
		return unicodeIcons
	}
}

// Valid reports whether style names a known icon set.
func Valid(style string) bool {
	switch Style(style) {
	case StyleNerd, StyleUnicode, StyleNone:
		return true
	}
	return false
}
