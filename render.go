// render.go
//
// ANSI rendering of the puzzle board for the terminal.
// Found-word cells are green, the transient hint highlight is yellow,
// everything else is plain. The word list below the grid dims found words.

package main

import (
	"fmt"
	"strings"

	"github.com/vyevs/ansi"

	"github.com/robalobadob/wordsearch/internal/puzzle"
	"github.com/robalobadob/wordsearch/internal/session"
)

const (
	foundColor = "green"
	hintColor  = "yellow"
	dimColor   = "light gray"
)

// renderBoard draws the grid with row/column guides plus the word list.
func renderBoard(sess *session.Session) string {
	p := sess.Puzzle()
	if p == nil {
		return ""
	}

	cellColor := make(map[puzzle.Cell]string, p.Size)
	for _, pl := range p.Placements {
		if !sess.IsFound(pl.Word) {
			continue
		}
		for _, c := range pl.Cells {
			cellColor[c] = foundColor
		}
	}
	// Hint highlight wins over found coloring while it is up.
	for _, c := range sess.HintCells() {
		cellColor[c] = hintColor
	}

	var b strings.Builder
	b.WriteByte('\n')

	// Column guide (last digit keeps wide grids aligned).
	b.WriteString("    ")
	for c := 0; c < p.Size; c++ {
		fmt.Fprintf(&b, "%d ", c%10)
	}
	b.WriteByte('\n')

	for r := 0; r < p.Size; r++ {
		fmt.Fprintf(&b, "%2d  ", r)
		for c := 0; c < p.Size; c++ {
			cell := puzzle.Cell{Row: r, Col: c}
			if color, ok := cellColor[cell]; ok {
				b.WriteString(ansi.FGColorName(color))
				b.WriteRune(p.Grid[r][c])
				b.WriteString(ansi.Clear)
			} else {
				b.WriteRune(p.Grid[r][c])
			}
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}

	b.WriteString(renderWordList(sess))
	return b.String()
}

// renderWordList prints the hidden words, dimming the ones already found.
func renderWordList(sess *session.Session) string {
	p := sess.Puzzle()
	if p == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("\nFind: ")
	for i, w := range p.Words() {
		if i > 0 {
			b.WriteString("  ")
		}
		if sess.IsFound(w) {
			b.WriteString(ansi.FGColorName(dimColor))
			b.WriteString(w)
			b.WriteString(ansi.Clear)
		} else {
			b.WriteString(w)
		}
	}
	fmt.Fprintf(&b, "\n(%d found, %d to go)\n", len(sess.Found()), sess.Remaining())
	return b.String()
}
