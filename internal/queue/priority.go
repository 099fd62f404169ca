package queue

import "strings"

// DefaultEmergencyKeywords are the medical-history terms that raise a
// patient's priority when no custom set is configured.
var DefaultEmergencyKeywords = []string{
	"heart", "chest pain", "breathing", "diabetic",
	"emergency", "severe", "acute", "critical",
}

// PriorityScorer computes a priority score in [0,1] from patient attributes.
// Pure and deterministic; it never fails.
type PriorityScorer struct {
	keywords []string
}

// NewPriorityScorer creates a scorer with the given emergency keyword set.
// An empty set falls back to DefaultEmergencyKeywords.
func NewPriorityScorer(keywords []string) *PriorityScorer {
	if len(keywords) == 0 {
		keywords = DefaultEmergencyKeywords
	}
	lowered := make([]string, len(keywords))
	for i, kw := range keywords {
		lowered[i] = strings.ToLower(kw)
	}
	return &PriorityScorer{keywords: lowered}
}

// Score returns the priority for a patient. Elderly and very young patients
// score higher, as does a medical history mentioning an emergency keyword.
func (s *PriorityScorer) Score(age int, medicalHistory string) float64 {
	score := 0.0

	if age > 65 {
		score += 0.2
	} else if age < 5 {
		score += 0.15
	}

	if medicalHistory != "" {
		history := strings.ToLower(medicalHistory)
		for _, kw := range s.keywords {
			if strings.Contains(history, kw) {
				score += 0.1
				break
			}
		}
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}
