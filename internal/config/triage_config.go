package config

import "jandarpan/backend/internal/models"

const (
	// Scoring
	BaseScore        = 50
	MaxScore         = 100
	UrgentWeight     = 40
	MediumWeight     = 20
	LowWeight        = 5
	RepeatPenalty    = 25
	MinKeywordLength = 4

	// Actions
	UrgentActionThreshold = 70

	// Escalation
	EscalationAgeDays = 3
)

// CategoryRule maps one category to its trigger keywords. Order matters:
// the first rule whose keyword matches wins.
type CategoryRule struct {
	Category models.Category
	Keywords []string
}

var CategoryRules = []CategoryRule{
	{models.CategoryWaterSupply, []string{"water", "supply", "tap"}},
	{models.CategoryGarbage, []string{"garbage", "trash", "waste"}},
	{models.CategoryElectricity, []string{"electric", "light", "power"}},
	{models.CategoryRoadDamage, []string{"road", "pothole", "crack"}},
}

// Urgency keyword lists. The overlap between lists ("urgent" and "critical"
// in urgent and medium, "repair" in medium and low) is intentional: a term
// contributes its weight from every list it appears in.
var (
	UrgentKeywords = []string{"urgent", "danger", "injury", "critical", "emergency", "life-threatening", "fire", "flood", "accident", "immediate", "disaster"}
	MediumKeywords = []string{"important", "delayed", "issue", "complaint", "damaged", "repair", "malfunction", "urgent", "critical", "problem"}
	LowKeywords    = []string{"routine", "normal", "minor", "checkup", "maintenance", "scheduled", "repair", "recheck", "regular", "ongoing"}
)

// RepeatMarkers flag a grievance the submitter reports as recurring or
// previously unresolved.
var RepeatMarkers = []string{"not resolved", "again"}
