// internal/daily/daily.go
//
// Deterministic daily-puzzle seeding. Everyone who plays the daily puzzle on
// the same UTC date (with the same salt) gets the same seed, hence the same
// grid — no persistence or coordination involved.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed returns a deterministic rng seed for a date using HMAC(salt, YYYY-MM-DD).
func Seed(date time.Time, salt string) int64 {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as a non-negative int64
	return int64(binary.BigEndian.Uint64(sum[:8]) &^ (1 << 63))
}
