// Package render turns mazes and search summaries into terminal output:
// colored grids through termenv and markdown reports through glamour.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/katalvlaran/lvsearch/maze"
)

// Color modes, matching the --color flag.
const (
	ModeAuto   = "auto"
	ModeAlways = "always"
	ModeNever  = "never"
)

// cellColors maps a marker to its foreground color. Empty cells stay plain.
var cellColors = map[maze.Cell]string{
	maze.Blocked: "#6b7280",
	maze.Start:   "#22c55e",
	maze.Goal:    "#ef4444",
	maze.Path:    "#eab308",
}

// Renderer writes grids and reports with a fixed color profile.
type Renderer struct {
	profile termenv.Profile
}

// New resolves mode against w: "always" forces ANSI colors, "never" disables
// them and "auto" colors only when w is a terminal.
func New(w io.Writer, mode string) *Renderer {
	return &Renderer{profile: profileFor(w, mode)}
}

func profileFor(w io.Writer, mode string) termenv.Profile {
	switch mode {
	case ModeAlways:
		return termenv.ANSI256
	case ModeNever:
		return termenv.Ascii
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return termenv.EnvColorProfile()
	}
	return termenv.Ascii
}

// Colored reports whether the renderer emits escape sequences.
func (r *Renderer) Colored() bool { return r.profile != termenv.Ascii }

// Grid renders a maze's text, coloring each marker. With colors disabled the
// output equals m.String().
func (r *Renderer) Grid(m fmt.Stringer) string {
	text := m.String()
	if !r.Colored() {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) * 4)
	for i := 0; i < len(text); i++ {
		c := maze.Cell(text[i])
		hex, ok := cellColors[c]
		if !ok {
			b.WriteByte(text[i])
			continue
		}
		s := termenv.String(c.String()).Foreground(r.profile.Color(hex))
		if c == maze.Start || c == maze.Goal {
			s = s.Bold()
		}
		b.WriteString(s.String())
	}
	return b.String()
}

// Markdown renders md for the terminal. Rendering problems fall back to the
// raw markdown so the report is never lost.
func (r *Renderer) Markdown(md string) string {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(100)}
	if r.Colored() {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle("notty"))
	}
	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return md
	}
	out, err := tr.Render(md)
	if err != nil {
		return md
	}
	return out
}
