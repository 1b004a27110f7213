// Package analysis provides the keyword heuristics that triage a grievance:
// category classification, urgency scoring and keyword extraction. All
// functions are pure and total; unmatched text falls back to the Other
// category and the base score, never an error.
package analysis

import (
	"strings"

	"jandarpan/backend/internal/config"
	"jandarpan/backend/internal/models"
)

// Categorize maps free text to a department category. The first rule (in
// table order) with any keyword contained in the lowercased text wins.
func Categorize(text string) models.Category {
	lowered := strings.ToLower(text)
	for _, rule := range config.CategoryRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lowered, keyword) {
				return rule.Category
			}
		}
	}
	return models.CategoryOther
}

// Score maps free text to an urgency score in [50, 100]. Each keyword list
// is tallied independently and a keyword contributes at most once per list,
// so a term present in two lists accumulates both weights. Repeat markers
// ("not resolved", "again") add a flat penalty.
func Score(text string) int {
	lowered := strings.ToLower(text)
	score := 0

	score += tally(lowered, config.UrgentKeywords, config.UrgentWeight)
	score += tally(lowered, config.MediumKeywords, config.MediumWeight)
	score += tally(lowered, config.LowKeywords, config.LowWeight)

	for _, marker := range config.RepeatMarkers {
		if strings.Contains(lowered, marker) {
			score += config.RepeatPenalty
			break
		}
	}

	score += config.BaseScore
	if score > config.MaxScore {
		return config.MaxScore
	}
	return score
}

// tally sums weight for every keyword contained in the lowered text.
// Containment, not occurrence count: a keyword scores once per list no
// matter how often it appears.
func tally(lowered string, keywords []string, weight int) int {
	total := 0
	for _, keyword := range keywords {
		if strings.Contains(lowered, keyword) {
			total += weight
		}
	}
	return total
}

// ExtractKeywords returns the lowercased whitespace-separated tokens of the
// text longer than the minimum keyword length, in original order.
func ExtractKeywords(text string) []string {
	words := strings.Fields(strings.ToLower(text))
	keywords := make([]string, 0, len(words))
	for _, word := range words {
		if len(word) > config.MinKeywordLength {
			keywords = append(keywords, word)
		}
	}
	return keywords
}
