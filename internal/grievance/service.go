// Package grievance provides the core logic for the grievance lifecycle:
// intake with derived triage fields, staff status updates with lazy
// auto-escalation, submitter tracking and the dashboard view.
package grievance

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"jandarpan/backend/internal/analysis"
	"jandarpan/backend/internal/metrics"
	"jandarpan/backend/internal/models"
	"jandarpan/backend/internal/notify"
	"jandarpan/backend/internal/storage"
)

var (
	ErrMissingFields = errors.New("name and text are required")
	ErrNotFound      = errors.New("grievance not found")
)

// Service handles the business logic for grievances. Every operation is a
// load-modify-save cycle over the whole stored collection; there is no
// locking, the last save wins.
type Service struct {
	Storage  storage.Storage
	Notifier notify.Notifier
	Logger   *zap.Logger
}

// NewService creates a new grievance service.
func NewService(s storage.Storage, n notify.Notifier, logger *zap.Logger) *Service {
	return &Service{Storage: s, Notifier: n, Logger: logger}
}

// SubmitRequest carries the raw intake form. Image and Document are
// optional; DocumentName supplies the original filename so the stored copy
// keeps its extension.
type SubmitRequest struct {
	Name         string
	Text         string
	Date         string
	Image        io.Reader
	Document     io.Reader
	DocumentName string
}

// Submit validates the request, derives the triage fields from the text
// and appends the new record to the collection. Category, priority and
// keywords are computed here once and never recomputed.
func (s *Service) Submit(req SubmitRequest) (*models.Grievance, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Text) == "" {
		return nil, ErrMissingFields
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format(models.DateLayout)
	} else if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	grievances, err := s.Storage.LoadGrievances()
	if err != nil {
		return nil, err
	}

	g := models.Grievance{
		ID:        uuid.NewString()[:8],
		Name:      req.Name,
		Text:      req.Text,
		Category:  analysis.Categorize(req.Text),
		Date:      date,
		Priority:  analysis.Score(req.Text),
		Keywords:  analysis.ExtractKeywords(req.Text),
		Status:    models.StatusPending,
		Escalated: models.EscalatedNo,
	}

	if req.Image != nil {
		path, err := s.Storage.SaveUpload(req.Name, storage.UploadRoleImage, "png", req.Image)
		if err != nil {
			return nil, err
		}
		g.Image = &path
	}
	if req.Document != nil {
		path, err := s.Storage.SaveUpload(req.Name, storage.UploadRoleDocument, documentExt(req.DocumentName), req.Document)
		if err != nil {
			return nil, err
		}
		g.Attachment = &path
	}

	grievances = append(grievances, g)
	if err := s.Storage.SaveGrievances(grievances); err != nil {
		return nil, err
	}

	metrics.RecordSubmission(string(g.Category))
	s.Logger.Info("grievance submitted",
		zap.String("id", g.ID),
		zap.String("category", string(g.Category)),
		zap.Int("priority", g.Priority))
	return &g, nil
}

// UpdateStatus applies a staff status change to one record, then runs the
// auto-escalation rule on it. Escalation can therefore override the status
// just set when the record has been pending for too long.
func (s *Service) UpdateStatus(id string, status models.Status) (*models.Grievance, bool, error) {
	grievances, err := s.Storage.LoadGrievances()
	if err != nil {
		return nil, false, err
	}

	for i := range grievances {
		if grievances[i].ID != id {
			continue
		}

		grievances[i].Status = status
		escalated, err := AutoEscalate(&grievances[i], time.Now())
		if err != nil {
			return nil, false, err
		}

		if err := s.Storage.SaveGrievances(grievances); err != nil {
			return nil, false, err
		}

		metrics.RecordStatusUpdate(string(grievances[i].Status))
		if escalated {
			metrics.RecordEscalation()
			s.Logger.Info("grievance auto-escalated", zap.String("id", id))
			if err := s.Notifier.GrievanceEscalated(&grievances[i]); err != nil {
				s.Logger.Warn("escalation alert failed", zap.String("id", id), zap.Error(err))
			}
		}

		updated := grievances[i]
		return &updated, escalated, nil
	}

	return nil, false, ErrNotFound
}

// Track returns all records submitted under the given name,
// case-insensitively. An empty result is not an error; the caller decides
// how to surface it.
func (s *Service) Track(name string) ([]models.Grievance, error) {
	grievances, err := s.Storage.LoadGrievances()
	if err != nil {
		return nil, err
	}

	var records []models.Grievance
	for _, g := range grievances {
		if strings.EqualFold(g.Name, name) {
			records = append(records, g)
		}
	}
	return records, nil
}

// DashboardRow is one dashboard entry. The suggested action is computed
// from the highest priority among the visible records of the same
// category, not from the row's own priority.
type DashboardRow struct {
	models.Grievance
	SuggestedAction string `json:"Suggested Action"`
}

// Dashboard returns the filtered collection sorted by priority descending.
// status filters exactly when non-empty and not "All"; categories, when
// given, act as a multi-select.
func (s *Service) Dashboard(status string, categories []string) ([]DashboardRow, error) {
	grievances, err := s.Storage.LoadGrievances()
	if err != nil {
		return nil, err
	}

	wanted := make(map[models.Category]bool, len(categories))
	for _, c := range categories {
		category, err := models.ParseCategory(c)
		if err != nil {
			return nil, err
		}
		wanted[category] = true
	}

	var visible []models.Grievance
	for _, g := range grievances {
		if status != "" && status != "All" && string(g.Status) != status {
			continue
		}
		if len(wanted) > 0 && !wanted[g.Category] {
			continue
		}
		visible = append(visible, g)
	}

	maxPriority := make(map[models.Category]int)
	for _, g := range visible {
		if g.Priority > maxPriority[g.Category] {
			maxPriority[g.Category] = g.Priority
		}
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Priority > visible[j].Priority
	})

	rows := make([]DashboardRow, 0, len(visible))
	for _, g := range visible {
		rows = append(rows, DashboardRow{
			Grievance:       g,
			SuggestedAction: analysis.SuggestAction(g.Category, maxPriority[g.Category]),
		})
	}
	return rows, nil
}

// Feedback acknowledges a feedback or reopen request. Feedback is not
// persisted; it is logged and counted only.
func (s *Service) Feedback(name, message string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(message) == "" {
		return ErrMissingFields
	}
	metrics.RecordFeedback()
	s.Logger.Info("feedback received", zap.String("name", name), zap.Int("length", len(message)))
	return nil
}

// documentExt mirrors the original upload naming: everything after the
// last dot, or "bin" for names without one.
func documentExt(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx >= 0 && idx < len(filename)-1 {
		return filename[idx+1:]
	}
	return "bin"
}
