// Package render draws the automaton grid behind a digest as text.
//
// Rendering is purely observational: it reads a frash.Grid and never feeds
// anything back into the digest.
package render

import (
	"bufio"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/forestrie/go-frash/frash"
)

// Glyphs are the characters drawn for set and clear cells.
type Glyphs struct {
	One  rune
	Zero rune
}

func DefaultGlyphs() Glyphs {
	return Glyphs{One: '#', Zero: ' '}
}

// Grid writes every row of g as one line of glyphs, row 0 first.
func Grid(w io.Writer, g frash.Grid, glyphs Glyphs) error {
	bw := bufio.NewWriter(w)
	for _, row := range g {
		for _, v := range row {
			if v != 0 {
				bw.WriteRune(glyphs.One)
			} else {
				bw.WriteRune(glyphs.Zero)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// String returns the text Grid would write.
func String(g frash.Grid, glyphs Glyphs) string {
	var sb strings.Builder
	_ = Grid(&sb, g, glyphs)
	return sb.String()
}

// OneStyle is the default style for runs of set cells in Styled output.
var OneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("62"))

// Styled is Grid with each run of set cells rendered through style. Clear
// cells are written plain so that the layout matches Grid exactly when the
// terminal has no colour support.
func Styled(w io.Writer, g frash.Grid, glyphs Glyphs, style lipgloss.Style) error {
	bw := bufio.NewWriter(w)
	for _, row := range g {
		var run strings.Builder
		flush := func() {
			if run.Len() == 0 {
				return
			}
			bw.WriteString(style.Render(run.String()))
			run.Reset()
		}
		for _, v := range row {
			if v != 0 {
				run.WriteRune(glyphs.One)
				continue
			}
			flush()
			bw.WriteRune(glyphs.Zero)
		}
		flush()
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
