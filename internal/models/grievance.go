// Package models defines the grievance record and the closed enums it
// carries. The JSON tags match the persisted document exactly, so a
// collection written by this service round-trips byte for byte.
package models

import (
	"fmt"
	"time"
)

// Category is the department classification derived from the grievance text.
type Category string

const (
	CategoryWaterSupply Category = "Water Supply"
	CategoryGarbage     Category = "Garbage"
	CategoryElectricity Category = "Electricity"
	CategoryRoadDamage  Category = "Road Damage"
	CategoryOther       Category = "Other"
)

// Status is the lifecycle state of a grievance.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusResolved  Status = "Resolved"
	StatusEscalated Status = "Escalated"
)

// EscalatedFlag records whether the auto-escalation rule has fired for a
// grievance. It only ever flips from No to Yes.
type EscalatedFlag string

const (
	EscalatedYes EscalatedFlag = "Yes"
	EscalatedNo  EscalatedFlag = "No"
)

// DateLayout is the calendar-date format used for the Date field.
const DateLayout = "2006-01-02"

// Grievance is a single citizen-submitted complaint record.
// ID, Category, Priority and Keywords are set once at submission and never
// recomputed; Status and Escalated are the only mutable fields.
type Grievance struct {
	ID         string        `json:"ID"`
	Name       string        `json:"Name"`
	Text       string        `json:"Text"`
	Category   Category      `json:"Category"`
	Date       string        `json:"Date"`
	Priority   int           `json:"Priority"`
	Keywords   []string      `json:"Keywords"`
	Status     Status        `json:"Status"`
	Escalated  EscalatedFlag `json:"Escalated"`
	Image      *string       `json:"Image"`
	Attachment *string       `json:"Attachment"`
}

// SubmittedOn parses the record's Date as a naive calendar date.
func (g *Grievance) SubmittedOn() (time.Time, error) {
	return time.Parse(DateLayout, g.Date)
}

// ParseStatus validates a staff-supplied status string.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusResolved, StatusEscalated:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown status %q", s)
	}
}

// ParseCategory validates a category filter value.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryWaterSupply, CategoryGarbage, CategoryElectricity, CategoryRoadDamage, CategoryOther:
		return Category(s), nil
	default:
		return "", fmt.Errorf("unknown category %q", s)
	}
}
