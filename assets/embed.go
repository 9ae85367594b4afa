package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed words_en.txt words_de.txt words_es.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// WordList returns the embedded list for a language code ("en", "de", "es").
func WordList(lang string) ([]string, error) {
	return readLines("words_" + lang + ".txt")
}
