package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jandarpan/backend/internal/analysis"
	"jandarpan/backend/internal/models"
)

// TestSuggestAction verifies the urgent/routine phrasing per category
// around the priority threshold.
func TestSuggestAction(t *testing.T) {
	cases := []struct {
		category models.Category
		priority int
		want     string
	}{
		{models.CategoryWaterSupply, 80, "Forward to Jal Nigam for urgent inspection"},
		{models.CategoryWaterSupply, 50, "Forward to Jal Nigam for regular check"},
		{models.CategoryRoadDamage, 71, "Notify PWD for immediate repair"},
		{models.CategoryRoadDamage, 70, "Notify PWD for standard check"},
		{models.CategoryGarbage, 90, "Alert sanitation department for immediate cleaning"},
		{models.CategoryGarbage, 55, "Alert sanitation department for routine collection"},
		{models.CategoryElectricity, 100, "Notify electricity board for urgent check"},
		{models.CategoryElectricity, 60, "Notify electricity board for regular maintenance"},
		{models.CategoryOther, 95, "Review and assign appropriate department."},
	}

	for _, tc := range cases {
		got := analysis.SuggestAction(tc.category, tc.priority)
		assert.Equal(t, tc.want, got, "category %s priority %d", tc.category, tc.priority)
	}
}

// TestSuggestActionUnknownCategory verifies any unrecognized category gets
// the generic review action regardless of priority.
func TestSuggestActionUnknownCategory(t *testing.T) {
	got := analysis.SuggestAction(models.Category("Unknown"), 90)

	assert.Equal(t, "Review and assign appropriate department.", got)
}
