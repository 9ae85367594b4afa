// internal/session/session.go
//
// Holds the state of one play session: the current puzzle, the set of words
// found so far, and the transient hint highlight.
//
// Characteristics:
//   - The puzzle and found set are swapped together under one lock, so a new
//     puzzle is never observed with the old session's found words.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive),
//     so a UI loop and the hint-revert timer can touch it at once.
//   - The puzzle itself is read-only once installed; all mutation lives here.
//   - State is ephemeral: replaced on NewPuzzle, lost when the process exits.

package session

import (
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordsearch/internal/puzzle"
)

// Session is the caller-owned handle for one puzzle round.
type Session struct {
	mu    sync.RWMutex
	puz   *puzzle.Puzzle
	found map[string]bool // words already matched
	order []string        // found words in discovery order

	rng        *rand.Rand
	hintBudget int           // hints allowed per puzzle
	hintsLeft  int
	flash      time.Duration // how long a hint highlight stays up
	hintCells  []puzzle.Cell // active highlight, nil when none
	hintSeq    int           // guards stale revert timers
}

// New constructs an empty session. A puzzle must be installed with NewPuzzle
// before selections are submitted.
func New(rng *rand.Rand, hintBudget int, flash time.Duration) *Session {
	return &Session{rng: rng, hintBudget: hintBudget, flash: flash}
}

// NewPuzzle installs p and resets the found set, hint budget and any active
// highlight in the same critical section.
func (s *Session) NewPuzzle(p *puzzle.Puzzle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puz = p
	s.found = make(map[string]bool, len(p.Placements))
	s.order = nil
	s.hintsLeft = s.hintBudget
	s.hintCells = nil
	s.hintSeq++
	log.Info().Int("size", p.Size).Int("words", len(p.Placements)).Msg("new puzzle installed")
}

// Puzzle returns the current puzzle, or nil before the first NewPuzzle.
func (s *Session) Puzzle() *puzzle.Puzzle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.puz
}

// Submit validates one selection path against the current puzzle and records
// a match into the found set. The outcome and matched word are returned as
// from puzzle.Validate.
func (s *Session) Submit(path []puzzle.Cell) (puzzle.Outcome, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.puz == nil {
		return puzzle.OutcomeNoMatch, ""
	}
	outcome, word := puzzle.Validate(path, s.puz, s.found)
	if outcome == puzzle.OutcomeMatch {
		s.found[word] = true
		s.order = append(s.order, word)
		log.Debug().Str("word", word).Int("found", len(s.order)).Msg("word found")
	}
	return outcome, word
}

// IsFound reports whether word has been found this round.
func (s *Session) IsFound(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.found[word]
}

// Found lists the found words in discovery order.
func (s *Session) Found() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.order...)
}

// Remaining counts the hidden words not yet found.
func (s *Session) Remaining() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.puz == nil {
		return 0
	}
	return len(s.puz.Placements) - len(s.order)
}

// Done reports whether every hidden word has been found.
func (s *Session) Done() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.puz != nil && len(s.order) == len(s.puz.Placements)
}

// HintsLeft returns the remaining hint budget for this puzzle.
func (s *Session) HintsLeft() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hintsLeft
}

// Hint highlights the cells of one uniformly random unfound word and arms a
// timer that clears the highlight after the flash duration. Returns the cells
// and true, or nil and false when no hint is available (budget spent, nothing
// left to find, or no puzzle yet).
func (s *Session) Hint() ([]puzzle.Cell, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.puz == nil || s.hintsLeft <= 0 {
		return nil, false
	}
	var unfound []puzzle.Placement
	for _, pl := range s.puz.Placements {
		if !s.found[pl.Word] {
			unfound = append(unfound, pl)
		}
	}
	if len(unfound) == 0 {
		return nil, false
	}

	pick := unfound[s.rng.Intn(len(unfound))]
	s.hintsLeft--
	s.hintCells = append([]puzzle.Cell(nil), pick.Cells...)
	s.hintSeq++
	seq := s.hintSeq
	time.AfterFunc(s.flash, func() { s.clearHint(seq) })
	log.Debug().Int("left", s.hintsLeft).Msg("hint shown")
	return append([]puzzle.Cell(nil), pick.Cells...), true
}

// HintCells returns the active highlight, or nil when none is up.
func (s *Session) HintCells() []puzzle.Cell {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]puzzle.Cell(nil), s.hintCells...)
}

// clearHint reverts the highlight, unless a newer hint or puzzle replaced it.
func (s *Session) clearHint(seq int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hintSeq == seq {
		s.hintCells = nil
	}
}
