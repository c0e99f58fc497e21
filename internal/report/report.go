// Package report prints severity-tagged, colored lines for the user.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/llehouerou/albumlist/internal/catalog"
	"github.com/llehouerou/albumlist/internal/icons"
)

// Severity selects the glyph and color of a line.
type Severity int

const (
	Plain Severity = iota
	Success
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Success:
		return "success"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "plain"
	}
}

// ColorMode controls when escape sequences are emitted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Terminal palette (ANSI 0-15 so the user's theme applies).
const (
	colorError   = lipgloss.Color("1")
	colorSuccess = lipgloss.Color("2")
	colorWarning = lipgloss.Color("3")
	colorIndex   = lipgloss.Color("6")
)

// Reporter writes one line per message to w.
type Reporter struct {
	w        io.Writer
	renderer *lipgloss.Renderer
	icons    icons.Icons
	styles   map[Severity]lipgloss.Style
	index    lipgloss.Style
}

// New creates a reporter writing to w with the given glyph set.
// Colors are only emitted when w is a terminal.
func New(w io.Writer, ic icons.Icons) *Reporter {
	r := &Reporter{
		w:        w,
		renderer: lipgloss.NewRenderer(w),
		icons:    ic,
	}
	r.buildStyles()
	return r
}

// SetColorMode overrides terminal detection.
func (r *Reporter) SetColorMode(mode ColorMode) {
	switch mode {
	case ColorAlways:
		r.renderer.SetColorProfile(termenv.ANSI)
	case ColorNever:
		r.renderer.SetColorProfile(termenv.Ascii)
	default:
		return
	}
	r.buildStyles()
}

func (r *Reporter) buildStyles() {
	r.styles = map[Severity]lipgloss.Style{
		Plain:   r.renderer.NewStyle(),
		Success: r.renderer.NewStyle().Foreground(colorSuccess),
		Warning: r.renderer.NewStyle().Foreground(colorWarning),
		Error:   r.renderer.NewStyle().Foreground(colorError),
	}
	r.index = r.renderer.NewStyle().Foreground(colorIndex)
}

func (r *Reporter) glyph(sev Severity) string {
	switch sev {
	case Success:
		return r.icons.Success
	case Warning:
		return r.icons.Warning
	case Error:
		return r.icons.Error
	default:
		return ""
	}
}

// Print writes msg as a single line tagged with sev.
func (r *Reporter) Print(sev Severity, msg string) {
	msg = strings.ReplaceAll(msg, "\n", " ")
	line := r.glyph(sev) + msg
	if sev != Plain {
		line = r.styles[sev].Render(line)
	}
	fmt.Fprintln(r.w, line)
}

// Printf formats according to format and prints the result with sev.
func (r *Reporter) Printf(sev Severity, format string, args ...any) {
	r.Print(sev, fmt.Sprintf(format, args...))
}

// Blank writes an empty line.
func (r *Reporter) Blank() {
	fmt.Fprintln(r.w)
}

// Listing writes one numbered line per album, starting at 1.
func (r *Reporter) Listing(albums []catalog.Album) {
	for i, a := range albums {
		fmt.Fprintf(r.w, "%s: %s\n", r.index.Render(strconv.Itoa(i+1)), a)
	}
}
