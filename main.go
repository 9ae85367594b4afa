package main

import (
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordsearch/internal/daily"
	"github.com/robalobadob/wordsearch/internal/puzzle"
	"github.com/robalobadob/wordsearch/internal/session"
	"github.com/robalobadob/wordsearch/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	cfg := configFromEnv()
	list, err := words.ForLanguage(cfg.lang)
	if err != nil {
		log.Fatal().Err(err).Str("lang", cfg.lang).Msg("unknown language")
	}

	rng := rand.New(rand.NewSource(cfg.seed))
	sess := session.New(rng, cfg.hints, cfg.flash)
	sess.NewPuzzle(puzzle.Generate(pickWords(list, cfg.wordCount, rng), cfg.gridSize, words.Alphabet(cfg.lang), rng))

	log.Info().Str("lang", cfg.lang).Int("size", cfg.gridSize).Int64("seed", cfg.seed).Msg("starting word search")
	play(sess, cfg, list)
}

// config carries the caller-side knobs; the core only ever sees them as
// plain parameters.
type config struct {
	gridSize  int
	lang      string
	wordCount int           // words offered to the generator per puzzle
	hints     int           // hint budget per puzzle
	flash     time.Duration // hint highlight duration
	seed      int64
}

func configFromEnv() config {
	seed := time.Now().UnixNano()
	if getEnv("DAILY", "") != "" {
		seed = daily.Seed(time.Now(), getEnv("DAILY_SALT", "wordsearch"))
	} else if s := getEnv("SEED", ""); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			seed = n
		}
	}
	return config{
		gridSize:  getEnvInt("GRID_SIZE", 15),
		lang:      getEnv("WORDS_LANG", "en"),
		wordCount: getEnvInt("WORD_COUNT", 8),
		hints:     getEnvInt("HINTS", 3),
		flash:     time.Duration(getEnvInt("HINT_FLASH_MS", 3000)) * time.Millisecond,
		seed:      seed,
	}
}

// pickWords samples n distinct words from list for one puzzle.
func pickWords(list []string, n int, rng *rand.Rand) []string {
	if n >= len(list) {
		return list
	}
	idx := rng.Perm(len(list))[:n]
	out := make([]string, n)
	for i, j := range idx {
		out[i] = list[j]
	}
	return out
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
