package queue

import (
	"fmt"
	"sync"
	"time"
)

const tokenDayFormat = "20060102"

// TokenIssuer hands out human-readable appointment tokens of the form
// PREFIX-YYYYMMDD-NNNN. The sequence is strictly increasing within a
// calendar day and resets at the day boundary.
type TokenIssuer struct {
	mu     sync.Mutex
	prefix string
	day    string
	seq    int
}

// NewTokenIssuer creates an issuer with the given fixed prefix.
func NewTokenIssuer(prefix string) *TokenIssuer {
	if prefix == "" {
		prefix = "HQ"
	}
	return &TokenIssuer{prefix: prefix}
}

// Next issues the next token for the given instant.
func (t *TokenIssuer) Next(now time.Time) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	day := now.Format(tokenDayFormat)
	if day != t.day {
		t.day = day
		t.seq = 0
	}
	t.seq++
	return fmt.Sprintf("%s-%s-%04d", t.prefix, t.day, t.seq)
}
