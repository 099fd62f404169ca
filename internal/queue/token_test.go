package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_Format(t *testing.T) {
	issuer := NewTokenIssuer("GEN")
	now := time.Date(2026, 8, 29, 9, 30, 0, 0, time.UTC)

	assert.Equal(t, "GEN-20260829-0001", issuer.Next(now))
	assert.Equal(t, "GEN-20260829-0002", issuer.Next(now))
}

func TestTokenIssuer_StrictlyIncreasingWithinDay(t *testing.T) {
	issuer := NewTokenIssuer("HQ")
	now := time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC)

	seen := make(map[string]bool)
	var prev string
	for i := 0; i < 250; i++ {
		token := issuer.Next(now.Add(time.Duration(i) * time.Minute))
		require.False(t, seen[token], "token %s issued twice", token)
		seen[token] = true
		if prev != "" {
			assert.Greater(t, token, prev, "same-day tokens must be strictly increasing")
		}
		prev = token
	}
}

func TestTokenIssuer_ResetsAtDayBoundary(t *testing.T) {
	issuer := NewTokenIssuer("HQ")

	day1 := time.Date(2026, 8, 29, 23, 55, 0, 0, time.UTC)
	issuer.Next(day1)
	issuer.Next(day1)
	last := issuer.Next(day1)
	assert.Equal(t, "HQ-20260829-0003", last)

	day2 := day1.Add(10 * time.Minute)
	assert.Equal(t, "HQ-20260830-0001", issuer.Next(day2))
}

func TestTokenIssuer_DefaultPrefix(t *testing.T) {
	issuer := NewTokenIssuer("")
	token := issuer.Next(time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, "HQ-20260829-0001", token)
}
