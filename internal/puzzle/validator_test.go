package puzzle

import (
	"math/rand"
	"testing"
)

// catPuzzle builds a 5x5 puzzle with "cat" written rightward from (0,0) and
// every other cell set to 'x'.
func catPuzzle() *Puzzle {
	grid := make([][]rune, 5)
	for r := range grid {
		grid[r] = []rune("xxxxx")
	}
	grid[0][0], grid[0][1], grid[0][2] = 'c', 'a', 't'
	return &Puzzle{
		Size: 5,
		Grid: grid,
		Placements: []Placement{
			{Word: "cat", Cells: []Cell{{0, 0}, {0, 1}, {0, 2}}},
		},
	}
}

func TestValidate_Outcomes(t *testing.T) {
	p := catPuzzle()
	none := map[string]bool{}

	cases := []struct {
		name     string
		path     []Cell
		want     Outcome
		wantWord string
	}{
		{"forward match", []Cell{{0, 0}, {0, 1}, {0, 2}}, OutcomeMatch, "cat"},
		{"reversed match", []Cell{{0, 2}, {0, 1}, {0, 0}}, OutcomeMatch, "cat"},
		{"skipped middle cell", []Cell{{0, 0}, {0, 2}}, OutcomeImprecise, ""},
		{"straight line, no word", []Cell{{0, 0}, {1, 1}, {2, 2}}, OutcomeNoMatch, ""},
		{"single cell", []Cell{{0, 0}}, OutcomeTooShort, ""},
		{"empty path", nil, OutcomeTooShort, ""},
		{"L-shaped drag", []Cell{{0, 0}, {0, 1}, {1, 1}}, OutcomeNotStraight, ""},
		{"knight-move endpoints", []Cell{{0, 0}, {1, 2}}, OutcomeNotStraight, ""},
		{"off-grid path", []Cell{{0, 3}, {0, 4}, {0, 5}}, OutcomeNotStraight, ""},
		{"stray off the line", []Cell{{0, 0}, {1, 0}, {0, 1}, {0, 2}}, OutcomeImprecise, ""},
	}
	for _, tc := range cases {
		got, word := Validate(tc.path, p, none)
		if got != tc.want || word != tc.wantWord {
			t.Errorf("%s: got (%s, %q), want (%s, %q)", tc.name, got, word, tc.want, tc.wantWord)
		}
	}
}

func TestValidate_UnorderedDragOnLine(t *testing.T) {
	// Input devices may report cells out of canonical order; the visited
	// set is what matters, not the traversal order.
	p := catPuzzle()
	path := []Cell{{0, 0}, {0, 2}, {0, 1}}
	got, word := Validate(path, p, map[string]bool{})
	if got != OutcomeMatch || word != "cat" {
		t.Errorf("got (%s, %q), want (match, cat)", got, word)
	}
}

func TestValidate_AlreadyFoundSkipped(t *testing.T) {
	p := catPuzzle()
	path := []Cell{{0, 0}, {0, 1}, {0, 2}}
	got, _ := Validate(path, p, map[string]bool{"cat": true})
	if got != OutcomeNoMatch {
		t.Errorf("re-selecting a found word: got %s, want no_match", got)
	}
}

func TestValidate_SameLettersElsewhereDoNotMatch(t *testing.T) {
	// "cat" also appears, letter for letter, on row 3 — but not on the hidden
	// cells, so it must not count.
	p := catPuzzle()
	p.Grid[3][0], p.Grid[3][1], p.Grid[3][2] = 'c', 'a', 't'

	got, _ := Validate([]Cell{{3, 0}, {3, 1}, {3, 2}}, p, map[string]bool{})
	if got != OutcomeNoMatch {
		t.Errorf("coincidental letters elsewhere: got %s, want no_match", got)
	}
}

func TestValidate_Idempotent(t *testing.T) {
	p := catPuzzle()
	path := []Cell{{0, 2}, {0, 1}, {0, 0}}
	found := map[string]bool{}
	o1, w1 := Validate(path, p, found)
	o2, w2 := Validate(path, p, found)
	if o1 != o2 || w1 != w2 {
		t.Errorf("validation not idempotent: (%s,%q) then (%s,%q)", o1, w1, o2, w2)
	}
}

func TestValidate_ReverseOfEveryGeneratedPlacement(t *testing.T) {
	rng := rand.New(rand.NewSource(77))
	p := Generate([]string{"stone", "brick", "glass", "steel"}, 10, testAlphabet, rng)

	for _, pl := range p.Placements {
		reversed := make([]Cell, len(pl.Cells))
		for i, c := range pl.Cells {
			reversed[len(pl.Cells)-1-i] = c
		}
		got, word := Validate(reversed, p, map[string]bool{})
		if got != OutcomeMatch || word != pl.Word {
			t.Errorf("reversed selection of %q: got (%s, %q)", pl.Word, got, word)
		}
	}
}

func TestLine(t *testing.T) {
	cells, ok := Line(Cell{2, 2}, Cell{5, 5}, 4)
	if !ok || len(cells) != 4 {
		t.Fatalf("expected 4-cell diagonal, ok=%v len=%d", ok, len(cells))
	}
	if cells[3] != (Cell{5, 5}) {
		t.Errorf("diagonal ends at (%d,%d), want (5,5)", cells[3].Row, cells[3].Col)
	}
	if _, ok := Line(Cell{0, 0}, Cell{1, 3}, 3); ok {
		t.Error("knight-move endpoints must not form a line")
	}
}
