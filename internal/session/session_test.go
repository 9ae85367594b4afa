package session

import (
	"math/rand"
	"testing"
	"time"

	"github.com/robalobadob/wordsearch/internal/puzzle"
)

// fixedPuzzle builds a 6x6 puzzle with two hand-placed words:
// "sun" rightward from (0,0) and "moon" downward from (2,3).
func fixedPuzzle() *puzzle.Puzzle {
	grid := make([][]rune, 6)
	for r := range grid {
		grid[r] = []rune("zzzzzz")
	}
	grid[0][0], grid[0][1], grid[0][2] = 's', 'u', 'n'
	grid[2][3], grid[3][3], grid[4][3], grid[5][3] = 'm', 'o', 'o', 'n'
	return &puzzle.Puzzle{
		Size: 6,
		Grid: grid,
		Placements: []puzzle.Placement{
			{Word: "sun", Cells: []puzzle.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}},
			{Word: "moon", Cells: []puzzle.Cell{{Row: 2, Col: 3}, {Row: 3, Col: 3}, {Row: 4, Col: 3}, {Row: 5, Col: 3}}},
		},
	}
}

func newTestSession(hints int, flash time.Duration) *Session {
	s := New(rand.New(rand.NewSource(1)), hints, flash)
	s.NewPuzzle(fixedPuzzle())
	return s
}

func TestSubmit_TracksProgress(t *testing.T) {
	s := newTestSession(3, time.Minute)

	if s.Remaining() != 2 || s.Done() {
		t.Fatalf("fresh session: remaining=%d done=%v", s.Remaining(), s.Done())
	}

	out, word := s.Submit([]puzzle.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}})
	if out != puzzle.OutcomeMatch || word != "sun" {
		t.Fatalf("got (%s, %q), want (match, sun)", out, word)
	}
	if !s.IsFound("sun") || s.Remaining() != 1 {
		t.Errorf("after finding sun: found=%v remaining=%d", s.IsFound("sun"), s.Remaining())
	}

	// Same selection again must not match a found word.
	out, _ = s.Submit([]puzzle.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}})
	if out != puzzle.OutcomeNoMatch {
		t.Errorf("re-finding sun: got %s, want no_match", out)
	}

	out, word = s.Submit([]puzzle.Cell{{Row: 5, Col: 3}, {Row: 4, Col: 3}, {Row: 3, Col: 3}, {Row: 2, Col: 3}})
	if out != puzzle.OutcomeMatch || word != "moon" {
		t.Fatalf("reversed moon: got (%s, %q)", out, word)
	}
	if !s.Done() {
		t.Error("expected session done after both words found")
	}
	if got := s.Found(); len(got) != 2 || got[0] != "sun" || got[1] != "moon" {
		t.Errorf("discovery order: %v", got)
	}
}

func TestNewPuzzle_SwapsFoundSetAtomically(t *testing.T) {
	s := newTestSession(3, time.Minute)
	s.Submit([]puzzle.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}})

	s.NewPuzzle(fixedPuzzle())
	if s.IsFound("sun") {
		t.Error("found set must reset with the new puzzle")
	}
	if s.Remaining() != 2 {
		t.Errorf("remaining=%d after reset, want 2", s.Remaining())
	}
	if s.HintsLeft() != 3 {
		t.Errorf("hint budget=%d after reset, want 3", s.HintsLeft())
	}
}

func TestHint_BudgetAndHighlight(t *testing.T) {
	s := newTestSession(2, 30*time.Millisecond)

	cells, ok := s.Hint()
	if !ok || len(cells) == 0 {
		t.Fatal("expected a hint on a fresh session")
	}
	if len(s.HintCells()) != len(cells) {
		t.Error("highlight should reflect the hinted cells")
	}
	if s.HintsLeft() != 1 {
		t.Errorf("hints left=%d, want 1", s.HintsLeft())
	}

	// Highlight reverts after the flash duration.
	deadline := time.Now().Add(time.Second)
	for len(s.HintCells()) != 0 {
		if time.Now().After(deadline) {
			t.Fatal("hint highlight never cleared")
		}
		time.Sleep(5 * time.Millisecond)
	}

	s.Hint()
	if _, ok := s.Hint(); ok {
		t.Error("hint granted past the budget")
	}
}

func TestHint_PointsAtUnfoundWord(t *testing.T) {
	s := newTestSession(5, time.Minute)
	s.Submit([]puzzle.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}) // find "sun"

	cells, ok := s.Hint()
	if !ok {
		t.Fatal("expected a hint while moon is unfound")
	}
	if len(cells) != 4 || cells[0] != (puzzle.Cell{Row: 2, Col: 3}) {
		t.Errorf("hint cells %v do not trace moon", cells)
	}
}

func TestHint_NoneWhenAllFound(t *testing.T) {
	s := newTestSession(5, time.Minute)
	s.Submit([]puzzle.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}})
	s.Submit([]puzzle.Cell{{Row: 2, Col: 3}, {Row: 3, Col: 3}, {Row: 4, Col: 3}, {Row: 5, Col: 3}})

	if _, ok := s.Hint(); ok {
		t.Error("no hint should be available once everything is found")
	}
}
