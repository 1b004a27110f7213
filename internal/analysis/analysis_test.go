package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jandarpan/backend/internal/analysis"
	"jandarpan/backend/internal/models"
)

// TestCategorize verifies the ordered keyword table, including the Other
// fallback when nothing matches.
func TestCategorize(t *testing.T) {
	cases := []struct {
		text string
		want models.Category
	}{
		{"my tap is broken", models.CategoryWaterSupply},
		{"No WATER supply since monday", models.CategoryWaterSupply},
		{"trash piling up near the school", models.CategoryGarbage},
		{"street light not working", models.CategoryElectricity},
		{"huge pothole on the main road", models.CategoryRoadDamage},
		{"the roof leaks", models.CategoryOther},
		{"", models.CategoryOther},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, analysis.Categorize(tc.text), "text: %q", tc.text)
	}
}

// TestCategorizeTableOrder ensures the first matching rule wins when text
// mentions several departments.
func TestCategorizeTableOrder(t *testing.T) {
	// Mentions water, garbage and roads; the water rule comes first.
	got := analysis.Categorize("water mixing with garbage on the road")

	assert.Equal(t, models.CategoryWaterSupply, got)
}

// TestScoreBaseline verifies that text with no listed keyword scores
// exactly the base.
func TestScoreBaseline(t *testing.T) {
	assert.Equal(t, 50, analysis.Score(""))
	assert.Equal(t, 50, analysis.Score("my neighbours are too loud"))
}

// TestScoreRange checks the score stays in [50, 100] for a spread of
// inputs.
func TestScoreRange(t *testing.T) {
	inputs := []string{
		"",
		"urgent danger injury critical emergency fire flood accident disaster",
		"routine maintenance scheduled recheck",
		"not resolved again and again",
		"IMPORTANT: delayed complaint, damaged road, repair URGENT",
	}

	for _, text := range inputs {
		score := analysis.Score(text)
		assert.GreaterOrEqual(t, score, 50, "text: %q", text)
		assert.LessOrEqual(t, score, 100, "text: %q", text)
	}
}

// TestScoreWeighting pins the documented scoring examples.
func TestScoreWeighting(t *testing.T) {
	// Two low keywords on top of the base.
	assert.Equal(t, 60, analysis.Score("routine checkup"))

	// Three urgent keywords plus the medium-list "urgent" overlap, capped.
	assert.Equal(t, 100, analysis.Score("urgent fire emergency"))
}

// TestScoreListOverlap verifies that a keyword present in two lists
// contributes both weights. "repair" sits in the medium and low lists.
func TestScoreListOverlap(t *testing.T) {
	assert.Equal(t, 75, analysis.Score("repair needed"))
}

// TestScoreRepeatMarker verifies the flat penalty for recurring
// grievances, applied once even when both markers appear.
func TestScoreRepeatMarker(t *testing.T) {
	assert.Equal(t, 75, analysis.Score("power cut again"))
	assert.Equal(t, 75, analysis.Score("still not resolved, happening again"))
}

// TestScoreKeywordCountsOncePerList verifies substring containment
// semantics: repeating a keyword does not stack its weight.
func TestScoreKeywordCountsOncePerList(t *testing.T) {
	once := analysis.Score("flooding everywhere")
	twice := analysis.Score("flood after flood everywhere")

	assert.Equal(t, once, twice)
}

// TestExtractKeywords verifies tokenization: lowercased whitespace tokens
// longer than four characters, order preserved.
func TestExtractKeywords(t *testing.T) {
	got := analysis.ExtractKeywords("Urgent water leak not RESOLVED again")

	assert.Equal(t, []string{"urgent", "water", "resolved", "again"}, got)
}

// TestExtractKeywordsEmpty verifies short-token-only text yields an empty
// slice.
func TestExtractKeywordsEmpty(t *testing.T) {
	assert.Empty(t, analysis.ExtractKeywords("the tap is dry"))
}
