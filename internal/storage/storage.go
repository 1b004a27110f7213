// Package storage persists the grievance collection as a single JSON
// document and keeps submitted attachments on disk. Every mutation is a
// whole-document rewrite; callers load, modify and save the full
// collection.
package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"jandarpan/backend/internal/models"
)

// Upload roles used in stored attachment file names.
const (
	UploadRoleImage    = "image"
	UploadRoleDocument = "doc"
)

type Storage interface {
	LoadGrievances() ([]models.Grievance, error)
	SaveGrievances(grievances []models.Grievance) error
	SaveUpload(submitter, role, ext string, r io.Reader) (string, error)
}

// Service is the flat-file implementation of Storage.
type Service struct {
	DataFile  string
	UploadDir string
}

// NewStorageService Constructor
func NewStorageService(dataFile, uploadDir string) *Service {
	return &Service{
		DataFile:  dataFile,
		UploadDir: uploadDir,
	}
}

// LoadGrievances reads the full collection. A missing document yields an
// empty collection; a malformed one is a fatal read error and propagates.
func (s *Service) LoadGrievances() ([]models.Grievance, error) {
	data, err := os.ReadFile(s.DataFile)
	if os.IsNotExist(err) {
		return []models.Grievance{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read grievance store: %w", err)
	}

	var grievances []models.Grievance
	if err := json.Unmarshal(data, &grievances); err != nil {
		return nil, fmt.Errorf("malformed grievance store %s: %w", s.DataFile, err)
	}
	return grievances, nil
}

// SaveGrievances rewrites the entire document. The output is 4-space
// indented so saving a freshly loaded collection reproduces the file byte
// for byte.
func (s *Service) SaveGrievances(grievances []models.Grievance) error {
	if grievances == nil {
		grievances = []models.Grievance{}
	}

	data, err := json.MarshalIndent(grievances, "", "    ")
	if err != nil {
		return fmt.Errorf("encode grievance store: %w", err)
	}

	if dir := filepath.Dir(s.DataFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}

	if err := os.WriteFile(s.DataFile, data, 0o644); err != nil {
		return fmt.Errorf("write grievance store: %w", err)
	}
	return nil
}

// SaveUpload stores one attachment under the upload directory, named by
// submitter, timestamp and role. Stored files are never deleted or
// validated against the collection afterwards.
func (s *Service) SaveUpload(submitter, role, ext string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.UploadDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	timestamp := time.Now().Format("20060102150405")
	path := filepath.Join(s.UploadDir, fmt.Sprintf("%s_%s_%s.%s", submitter, timestamp, role, ext))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return path, nil
}
