// internal/words/words.go
//
// Provides word list management for the puzzle generator.
//
// Responsibilities:
//   - Load per-language word lists from embedded files or an environment-provided override.
//   - Supply the fill alphabet that goes with each language.
//   - Expose utilities: Languages, ForLanguage, Alphabet, Stats.
//
// Word Lists:
//   - One embedded file per language (assets/words_<lang>.txt), lowercase,
//     any Unicode letters (ñ, ü, ß, …).
//   - WORDS_FILE replaces the list of WORDS_FILE_LANG (default "en") with a
//     custom file, one word per line.
//
// Environment variables:
//   WORDS_FILE=/path/to/list.txt
//   WORDS_FILE_LANG=en
//   WORDS_ALPHABET=abc… (fill alphabet for the custom list; defaults to the
//                        replaced language's alphabet)
//
// Constraints:
//   • Words are normalized to lowercase and must be letters only.
//   • Initialization is run once (sync.Once).

package words

import (
	"bufio"
	"errors"
	"os"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/robalobadob/wordsearch/assets"
)

// alphabets holds the fill alphabet per language: the characters drawn at
// random for cells no hidden word occupies.
var alphabets = map[string][]rune{
	"en": []rune("abcdefghijklmnopqrstuvwxyz"),
	"de": []rune("abcdefghijklmnopqrstuvwxyzäöüß"),
	"es": []rune("abcdefghijklmnñopqrstuvwxyz"),
}

var (
	initOnce   sync.Once
	lists      map[string][]string // language → word list
	initialErr error
)

// Init loads every embedded language list exactly once, then applies the
// WORDS_FILE override if present. Returns an error if any list ends up empty.
func Init() error {
	initOnce.Do(func() {
		lists = make(map[string][]string, len(alphabets))
		for lang := range alphabets {
			ws, err := assets.WordList(lang)
			if err != nil {
				initialErr = err
				return
			}
			lists[lang] = keepValid(ws)
		}

		if path := os.Getenv("WORDS_FILE"); path != "" {
			lang := os.Getenv("WORDS_FILE_LANG")
			if lang == "" {
				lang = "en"
			}
			ws, err := readWordFile(path)
			if err != nil {
				initialErr = err
				return
			}
			lists[lang] = ws
			if alpha := os.Getenv("WORDS_ALPHABET"); alpha != "" {
				alphabets[lang] = []rune(alpha)
			}
		}

		for lang, ws := range lists {
			if len(ws) == 0 {
				initialErr = errors.New("words: list for " + lang + " is empty")
				return
			}
		}
	})
	return initialErr
}

// readWordFile loads one word per line from a file, lowercases, trims, and
// keeps only letter-only words.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if isLetters(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// keepValid filters a list down to letter-only words.
func keepValid(ws []string) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		if isLetters(w) {
			out = append(out, w)
		}
	}
	return out
}

// isLetters reports whether s is non-empty and made of Unicode letters only.
func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Languages returns the known language codes, sorted.
func Languages() []string {
	out := make([]string, 0, len(alphabets))
	for lang := range alphabets {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

// ForLanguage returns the word list for a language code.
func ForLanguage(lang string) ([]string, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	ws, ok := lists[lang]
	if !ok {
		return nil, errors.New("words: unknown language " + lang)
	}
	return ws, nil
}

// Alphabet returns the fill alphabet for a language code.
// Unknown languages fall back to the English alphabet.
func Alphabet(lang string) []rune {
	if a, ok := alphabets[lang]; ok {
		return a
	}
	return alphabets["en"]
}

// Stats returns per-language word counts.
func Stats() map[string]int {
	out := make(map[string]int, len(lists))
	for lang, ws := range lists {
		out[lang] = len(ws)
	}
	return out
}
