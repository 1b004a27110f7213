package grievance

import (
	"fmt"
	"time"

	"jandarpan/backend/internal/config"
	"jandarpan/backend/internal/models"
)

// AutoEscalate escalates a record that has been pending for more than the
// configured number of calendar days, flipping Status to Escalated and the
// Escalated flag to Yes. It reports whether the rule fired. Resolved and
// already-escalated records are left untouched.
//
// The rule only runs as a side effect of an explicit staff action; there
// is no background schedule, so stale records are detected lazily.
func AutoEscalate(g *models.Grievance, today time.Time) (bool, error) {
	if g.Status != models.StatusPending {
		return false, nil
	}

	submitted, err := g.SubmittedOn()
	if err != nil {
		return false, fmt.Errorf("grievance %s: bad date: %w", g.ID, err)
	}

	if daysBetween(submitted, today) > config.EscalationAgeDays {
		g.Status = models.StatusEscalated
		g.Escalated = models.EscalatedYes
		return true, nil
	}
	return false, nil
}

// daysBetween counts whole calendar days between two moments, ignoring the
// time of day. Dates are treated as naive local calendar dates.
func daysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	f := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	t := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
