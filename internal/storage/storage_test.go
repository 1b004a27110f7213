package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jandarpan/backend/internal/models"
	"jandarpan/backend/internal/storage"
)

func newTestStore(t *testing.T) *storage.Service {
	t.Helper()
	dir := t.TempDir()
	return storage.NewStorageService(filepath.Join(dir, "grievances.json"), filepath.Join(dir, "uploads"))
}

// TestLoadMissingFile verifies a nonexistent document yields an empty
// collection, not an error.
func TestLoadMissingFile(t *testing.T) {
	store := newTestStore(t)

	grievances, err := store.LoadGrievances()

	require.NoError(t, err)
	assert.Empty(t, grievances)
}

// TestSaveLoadRoundTrip verifies a saved collection loads back equal,
// including null attachment fields.
func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	image := "uploads/Asha_20250101120000_image.png"
	want := []models.Grievance{
		{
			ID:        "a1b2c3d4",
			Name:      "Asha",
			Text:      "urgent water leak",
			Category:  models.CategoryWaterSupply,
			Date:      "2025-01-01",
			Priority:  100,
			Keywords:  []string{"urgent", "water"},
			Status:    models.StatusPending,
			Escalated: models.EscalatedNo,
			Image:     &image,
		},
		{
			ID:        "e5f6a7b8",
			Name:      "Ravi",
			Text:      "the roof leaks",
			Category:  models.CategoryOther,
			Date:      "2025-01-02",
			Priority:  50,
			Keywords:  []string{"leaks"},
			Status:    models.StatusResolved,
			Escalated: models.EscalatedNo,
		},
	}

	require.NoError(t, store.SaveGrievances(want))
	got, err := store.LoadGrievances()

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestSaveIsIdempotent verifies save(load()) reproduces the document byte
// for byte.
func TestSaveIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SaveGrievances([]models.Grievance{
		{ID: "a1b2c3d4", Name: "Asha", Text: "tap broken", Category: models.CategoryWaterSupply,
			Date: "2025-01-01", Priority: 50, Keywords: []string{"broken"},
			Status: models.StatusPending, Escalated: models.EscalatedNo},
	}))
	before, err := os.ReadFile(store.DataFile)
	require.NoError(t, err)

	loaded, err := store.LoadGrievances()
	require.NoError(t, err)
	require.NoError(t, store.SaveGrievances(loaded))

	after, err := os.ReadFile(store.DataFile)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

// TestLoadMalformedDocument verifies a corrupt document is a fatal read
// error that propagates.
func TestLoadMalformedDocument(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.DataFile, []byte("{not json"), 0o644))

	_, err := store.LoadGrievances()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "malformed")
}

// TestSaveNilCollection verifies a nil slice is persisted as an empty
// array, keeping the document well-formed.
func TestSaveNilCollection(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveGrievances(nil))

	data, err := os.ReadFile(store.DataFile)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

// TestSaveUpload verifies attachment naming and content.
func TestSaveUpload(t *testing.T) {
	store := newTestStore(t)

	path, err := store.SaveUpload("Asha", storage.UploadRoleDocument, "pdf", strings.NewReader("%PDF-1.4"))

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "Asha_"), "path: %s", path)
	assert.True(t, strings.HasSuffix(path, "_doc.pdf"), "path: %s", path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(content))
}
