// internal/puzzle/validator.go
//
// Selection validation: decide whether one user gesture found a hidden word.
// Responsibilities:
//   - Reject degenerate (<2 cell) selections.
//   - Check the endpoints form a straight line (axis or 45° diagonal).
//   - Reconstruct the canonical line and set-compare it against the actual
//     drag, catching strays and skipped cells.
//   - Match the traced word, forward or reversed, against exactly the cells
//     of one hidden placement.
//
// Notes:
//   - Stateless: the caller owns the found set and passes it in.
//   - All outcomes are expected user-facing conditions, never errors; a path
//     wandering off the grid falls out of the same geometry checks.
package puzzle

import "strings"

// Validate classifies one selection path against the puzzle.
// On OutcomeMatch the second return carries the matched word; it is empty for
// every other outcome. Words already in found are not matched again.
//
// A placement matches only when the selection covers exactly its cells AND
// the traced string equals the word forward or reversed. Anchoring to the
// cell set keeps a coincidental same-letters line elsewhere in the grid from
// counting as a find, and makes reverse reads work with no extra bookkeeping.
func Validate(path []Cell, p *Puzzle, found map[string]bool) (Outcome, string) {
	if len(path) < 2 {
		return OutcomeTooShort, ""
	}

	start, end := path[0], path[len(path)-1]
	dRow := end.Row - start.Row
	dCol := end.Col - start.Col
	if dRow != 0 && dCol != 0 && abs(dRow) != abs(dCol) {
		return OutcomeNotStraight, ""
	}

	// Canonical line: start, advancing one unit step per selected cell. If
	// the drag really was a clean straight line, this reproduces it exactly.
	step := Direction{DRow: sign(dRow), DCol: sign(dCol)}
	canonical := make([]Cell, len(path))
	r, c := start.Row, start.Col
	for i := range canonical {
		cell := Cell{Row: r, Col: c}
		if !p.InBounds(cell) {
			return OutcomeNotStraight, ""
		}
		canonical[i] = cell
		r += step.DRow
		c += step.DCol
	}

	if !sameCellSet(canonical, path) {
		return OutcomeImprecise, ""
	}

	var b strings.Builder
	for _, cell := range canonical {
		b.WriteRune(p.Grid[cell.Row][cell.Col])
	}
	selected := strings.ToLower(b.String())

	pathSet := cellSet(path)
	for _, pl := range p.Placements {
		if found[pl.Word] {
			continue
		}
		if !setsEqual(cellSet(pl.Cells), pathSet) {
			continue
		}
		if selected == pl.Word || selected == reverse(pl.Word) {
			return OutcomeMatch, pl.Word
		}
	}
	return OutcomeNoMatch, ""
}

// Line reconstructs the canonical cell sequence of the given length from
// start toward end, or false when the endpoints are not on a straight line.
// Exposed for callers that preview a selection while the drag is still going.
func Line(start, end Cell, length int) ([]Cell, bool) {
	dRow := end.Row - start.Row
	dCol := end.Col - start.Col
	if dRow != 0 && dCol != 0 && abs(dRow) != abs(dCol) {
		return nil, false
	}
	cells := make([]Cell, length)
	r, c := start.Row, start.Col
	for i := range cells {
		cells[i] = Cell{Row: r, Col: c}
		r += sign(dRow)
		c += sign(dCol)
	}
	return cells, true
}

// sameCellSet compares two paths as sets: duplicates collapsed, order ignored.
func sameCellSet(a, b []Cell) bool {
	return setsEqual(cellSet(a), cellSet(b))
}

func cellSet(cells []Cell) map[Cell]struct{} {
	m := make(map[Cell]struct{}, len(cells))
	for _, c := range cells {
		m[c] = struct{}{}
	}
	return m
}

func setsEqual(a, b map[Cell]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for c := range a {
		if _, ok := b[c]; !ok {
			return false
		}
	}
	return true
}

// reverse returns s with its runes in reverse order.
func reverse(s string) string {
	rs := []rune(s)
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
	return string(rs)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// sign normalizes a delta to its unit step: -1, 0 or 1.
func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
