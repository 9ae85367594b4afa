// internal/puzzle/generator.go
//
// Puzzle generation: hide words along straight lines in a square grid and
// fill the rest with random alphabet runes.
// Responsibilities:
//   - Seat words longest-first with bounded random retry.
//   - Allow compatible overlaps (same rune on a shared cell), reject conflicts.
//   - Drop words that cannot be seated within the attempt budget.
//   - Fill every remaining cell from the caller's alphabet.
//
// Notes:
//   - Generation is pure given its inputs; the rng is supplied by the caller
//     so daily/seeded puzzles reproduce exactly.
//   - Partial placement is a normal outcome, never an error.
package puzzle

import (
	"math/rand"
	"sort"
	"strings"
)

// attemptsPerWord is the retry budget for seating one word: every cell of the
// grid times every direction, twice over.
func attemptsPerWord(size int) int { return size * size * 8 * 2 }

// Generate builds a size×size puzzle hiding as many of words as it can.
//
// Words longer than size are skipped. Duplicates are seated once. Remaining
// candidates are sorted by descending length (stable, so equal-length words
// keep their given order): long words have the fewest valid slots and must go
// in before the grid crowds up. Each word gets attemptsPerWord(size) samples
// of a random start cell and direction; a sample is accepted iff every rune
// lands in bounds on a cell that is unset or already holds that same rune.
// Unplaceable words are silently dropped. Unset cells are then filled from
// alphabet uniformly at random.
func Generate(words []string, size int, alphabet []rune, rng *rand.Rand) *Puzzle {
	grid := make([][]rune, size)
	for r := range grid {
		grid[r] = make([]rune, size)
	}

	candidates := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" || len([]rune(w)) > size {
			continue
		}
		candidates = append(candidates, w)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return len([]rune(candidates[i])) > len([]rune(candidates[j]))
	})

	p := &Puzzle{Size: size, Grid: grid}
	for _, w := range candidates {
		if _, ok := p.Placement(w); ok {
			continue // duplicate of an already seated word
		}
		if cells, ok := seat(grid, size, []rune(w), rng); ok {
			p.Placements = append(p.Placements, Placement{Word: w, Cells: cells})
		}
	}

	// Fill pass: every still-unset cell gets a random alphabet rune.
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if grid[r][c] == 0 {
				grid[r][c] = alphabet[rng.Intn(len(alphabet))]
			}
		}
	}
	return p
}

// seat tries to place word into grid, writing its runes on success and
// returning the occupied cells in write order. Each attempt samples a start
// cell and one of the 8 directions uniformly; conflicts reject only that
// sample, not the word.
func seat(grid [][]rune, size int, word []rune, rng *rand.Rand) ([]Cell, bool) {
	for attempt := 0; attempt < attemptsPerWord(size); attempt++ {
		start := Cell{Row: rng.Intn(size), Col: rng.Intn(size)}
		dir := Directions[rng.Intn(len(Directions))]
		if cells, ok := tryPlace(grid, size, word, start, dir); ok {
			for i, c := range cells {
				grid[c.Row][c.Col] = word[i]
			}
			return cells, true
		}
	}
	return nil, false
}

// tryPlace checks one candidate start/direction without mutating the grid.
// The candidate fits iff every rune position is in bounds and its target cell
// is unset or already holds the required rune (crossings share letters,
// contradictions do not).
func tryPlace(grid [][]rune, size int, word []rune, start Cell, dir Direction) ([]Cell, bool) {
	cells := make([]Cell, len(word))
	r, c := start.Row, start.Col
	for i, ch := range word {
		if r < 0 || r >= size || c < 0 || c >= size {
			return nil, false
		}
		if got := grid[r][c]; got != 0 && got != ch {
			return nil, false
		}
		cells[i] = Cell{Row: r, Col: c}
		r += dir.DRow
		c += dir.DCol
	}
	return cells, true
}
