// internal/puzzle/types.go
//
// Core type definitions for the word-search engine.
// Defines:
//   - Cell: a 0-indexed grid coordinate.
//   - Direction: one of the 8 straight-line unit vectors.
//   - Placement: a hidden word and the exact cells its letters occupy.
//   - Puzzle: the finished letter grid plus all recorded placements.
//   - Outcome: per-selection result of validation.

package puzzle

// Cell is a 0-indexed grid coordinate. Two cells are equal when both
// row and column are equal.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Direction is a straight-line unit step. Both components are in {-1,0,1}
// and never both zero.
type Direction struct {
	DRow int
	DCol int
}

// Directions enumerates the 8 straight-line directions a word may run in:
// the 4 axes, each traversable forward or backward.
var Directions = [8]Direction{
	{0, 1}, {0, -1}, // horizontal
	{1, 0}, {-1, 0}, // vertical
	{1, 1}, {-1, -1}, // main diagonal
	{1, -1}, {-1, 1}, // anti diagonal
}

// Placement records one hidden word. Cells[i] holds the cell of the word's
// i-th rune, in the order the word was written; reversing Cells reads the
// word backward.
type Placement struct {
	Word  string `json:"word"`
	Cells []Cell `json:"cells"`
}

// Puzzle is the immutable result of one generation run.
//
// Invariants:
//   - Grid is Size×Size and every cell holds exactly one rune.
//   - For every placement, Grid[c.Row][c.Col] equals the corresponding rune
//     of the word; overlapping placements always agree on the shared rune.
//   - Placements keeps insertion order, so iteration is deterministic.
type Puzzle struct {
	Size       int         // grid dimension N (grid is N×N)
	Grid       [][]rune    // final letter matrix, no unset cells
	Placements []Placement // successfully seated words only
}

// Placement looks up the recorded placement for word.
// The second return is false if the word was not seated.
func (p *Puzzle) Placement(word string) (Placement, bool) {
	for _, pl := range p.Placements {
		if pl.Word == word {
			return pl, true
		}
	}
	return Placement{}, false
}

// Words lists the seated words in placement order.
func (p *Puzzle) Words() []string {
	out := make([]string, len(p.Placements))
	for i, pl := range p.Placements {
		out[i] = pl.Word
	}
	return out
}

// InBounds reports whether c lies on the grid.
func (p *Puzzle) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < p.Size && c.Col >= 0 && c.Col < p.Size
}

// Outcome classifies one validated selection.
// Possible values:
//   - "too_short":    fewer than two cells were selected.
//   - "not_straight": the selection endpoints do not lie on a straight line.
//   - "imprecise":    the drag strayed off the line or skipped cells on it.
//   - "match":        the selection traced a hidden word (forward or reversed).
//   - "no_match":     a clean straight line, but not a hidden word.
type Outcome string

const (
	OutcomeTooShort    Outcome = "too_short"
	OutcomeNotStraight         = "not_straight"
	OutcomeImprecise           = "imprecise"
	OutcomeMatch               = "match"
	OutcomeNoMatch             = "no_match"
)
