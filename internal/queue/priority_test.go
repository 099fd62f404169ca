package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityScorer_Score(t *testing.T) {
	scorer := NewPriorityScorer(nil)

	tests := []struct {
		name    string
		age     int
		history string
		want    float64
	}{
		{name: "adult, no history", age: 40, history: "", want: 0},
		{name: "elderly", age: 70, history: "", want: 0.2},
		{name: "age 65 is not elderly", age: 65, history: "", want: 0},
		{name: "infant", age: 3, history: "", want: 0.15},
		{name: "age 5 is not infant", age: 5, history: "", want: 0},
		{name: "emergency keyword", age: 40, history: "recurring chest pain", want: 0.1},
		{name: "keyword match is case-insensitive", age: 40, history: "SEVERE migraine", want: 0.1},
		{name: "multiple keywords count once", age: 40, history: "acute severe critical", want: 0.1},
		{name: "elderly with keyword", age: 80, history: "diabetic", want: 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, scorer.Score(tt.age, tt.history), 1e-9)
		})
	}
}

func TestPriorityScorer_ScoreRange(t *testing.T) {
	scorer := NewPriorityScorer(nil)

	for age := 0; age <= 130; age += 5 {
		for _, history := range []string{"", "heart breathing emergency severe acute critical"} {
			score := scorer.Score(age, history)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		}
	}
}

func TestPriorityScorer_ElderlyBonus(t *testing.T) {
	scorer := NewPriorityScorer(nil)

	// score(70, "") >= score(40, "") + 0.2 - eps
	assert.GreaterOrEqual(t, scorer.Score(70, ""), scorer.Score(40, "")+0.2-1e-9)
}

func TestPriorityScorer_CustomKeywords(t *testing.T) {
	scorer := NewPriorityScorer([]string{"Fracture"})

	assert.InDelta(t, 0.1, scorer.Score(40, "suspected fracture of the wrist"), 1e-9)
	assert.InDelta(t, 0.0, scorer.Score(40, "chest pain"), 1e-9)
}
