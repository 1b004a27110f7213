package analysis

import (
	"jandarpan/backend/internal/config"
	"jandarpan/backend/internal/models"
)

// SuggestAction returns the recommended next action for a grievance
// category at a given priority. Priorities above the urgent threshold get
// the urgent phrasing; anything unclassified gets a generic review action.
func SuggestAction(category models.Category, priority int) string {
	urgent := priority > config.UrgentActionThreshold
	switch category {
	case models.CategoryWaterSupply:
		if urgent {
			return "Forward to Jal Nigam for urgent inspection"
		}
		return "Forward to Jal Nigam for regular check"
	case models.CategoryRoadDamage:
		if urgent {
			return "Notify PWD for immediate repair"
		}
		return "Notify PWD for standard check"
	case models.CategoryGarbage:
		if urgent {
			return "Alert sanitation department for immediate cleaning"
		}
		return "Alert sanitation department for routine collection"
	case models.CategoryElectricity:
		if urgent {
			return "Notify electricity board for urgent check"
		}
		return "Notify electricity board for regular maintenance"
	default:
		return "Review and assign appropriate department."
	}
}
