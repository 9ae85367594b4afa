// play.go
//
// Interactive terminal loop: the presentation-side caller of the core.
// Responsibilities:
//   - Read one command per line: a cell selection, "hint", "new", "words",
//     "help" or "quit".
//   - Turn selections into cell paths and feed them to the session.
//   - Map every validation outcome to a status message.
//
// Selections are given as "row,col" pairs: two pairs are treated as the
// endpoints of a drag and expanded to the full line; three or more are taken
// as the literal cell path.

package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordsearch/internal/puzzle"
	"github.com/robalobadob/wordsearch/internal/session"
	"github.com/robalobadob/wordsearch/internal/words"
)

// outcomeMessages maps each validation outcome to the line shown to the player.
var outcomeMessages = map[puzzle.Outcome]string{
	puzzle.OutcomeTooShort:    "Select at least two cells.",
	puzzle.OutcomeNotStraight: "Selections must follow a straight line.",
	puzzle.OutcomeImprecise:   "Stay on the line — some cells were skipped or off it.",
	puzzle.OutcomeNoMatch:     "No hidden word there. Keep looking!",
}

func play(sess *session.Session, cfg config, list []string) {
	fmt.Print(renderBoard(sess))
	fmt.Println(`Type "help" for commands.`)

	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !sc.Scan() {
			return
		}
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			continue
		case line == "quit" || line == "exit":
			return
		case line == "help":
			printHelp()
		case line == "words":
			fmt.Print(renderWordList(sess))
		case line == "hint":
			if _, ok := sess.Hint(); !ok {
				fmt.Println("No hints available.")
				continue
			}
			fmt.Print(renderBoard(sess))
			fmt.Printf("Look sharp — the highlight fades. Hints left: %d\n", sess.HintsLeft())
		case line == "new":
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))
			p := puzzle.Generate(pickWords(list, cfg.wordCount, rng), cfg.gridSize, words.Alphabet(cfg.lang), rng)
			sess.NewPuzzle(p)
			fmt.Print(renderBoard(sess))
		default:
			submit(sess, line)
			if sess.Done() {
				fmt.Print(renderBoard(sess))
				fmt.Println("You found them all! Type \"new\" for another puzzle.")
			}
		}
	}
}

// submit parses a selection line and runs it through the session.
func submit(sess *session.Session, line string) {
	path, err := parsePath(line)
	if err != nil {
		fmt.Println(err)
		return
	}
	outcome, word := sess.Submit(path)
	if outcome == puzzle.OutcomeMatch {
		fmt.Print(renderBoard(sess))
		fmt.Printf("Found %q! %d to go.\n", word, sess.Remaining())
		return
	}
	fmt.Println(outcomeMessages[outcome])
	log.Debug().Str("outcome", string(outcome)).Str("input", line).Msg("selection rejected")
}

// parsePath reads whitespace-separated "row,col" pairs. Exactly two pairs are
// drag endpoints and expand to the spanned line; more are a literal path.
func parsePath(line string) ([]puzzle.Cell, error) {
	fields := strings.Fields(line)
	cells := make([]puzzle.Cell, 0, len(fields))
	for _, f := range fields {
		c, err := parseCell(f)
		if err != nil {
			return nil, err
		}
		cells = append(cells, c)
	}
	if len(cells) != 2 {
		return cells, nil
	}

	start, end := cells[0], cells[1]
	span := max(abs(end.Row-start.Row), abs(end.Col-start.Col)) + 1
	if full, ok := puzzle.Line(start, end, span); ok {
		return full, nil
	}
	// Not a straight drag; let the validator report it.
	return cells, nil
}

func parseCell(s string) (puzzle.Cell, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return puzzle.Cell{}, fmt.Errorf("%q is not a row,col pair (try \"0,3 0,7\")", s)
	}
	row, err := strconv.Atoi(parts[0])
	if err != nil {
		return puzzle.Cell{}, fmt.Errorf("bad row in %q", s)
	}
	col, err := strconv.Atoi(parts[1])
	if err != nil {
		return puzzle.Cell{}, fmt.Errorf("bad column in %q", s)
	}
	return puzzle.Cell{Row: row, Col: col}, nil
}

func printHelp() {
	fmt.Print(`Commands:
  r,c r,c   select a word by its endpoint cells, e.g. "3,0 3,5"
  r,c ...   or give the whole cell path
  words     show the word list and progress
  hint      briefly highlight one unfound word
  new       generate a fresh puzzle
  quit      leave the game
`)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
