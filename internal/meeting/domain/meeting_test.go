package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareUpsertNewRecord(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	m := &Meeting{
		UserID:      "u1",
		RecordingID: "r1",
		StartedAt:   now.Add(-45 * time.Minute),
		EndedAt:     now,
	}
	m.PrepareUpsert(nil, now)

	assert.Equal(t, 45*60, m.DurationSec)
	assert.Equal(t, MeetingSyncStatusSynced, m.SyncStatus)
	require.NotNil(t, m.LastSyncedAt)
	assert.Equal(t, now, m.CreatedAt)
	assert.Equal(t, now, m.UpdatedAt)
}

func TestPrepareUpsertClampsNegativeDuration(t *testing.T) {
	now := time.Now()
	m := &Meeting{StartedAt: now, EndedAt: now.Add(-time.Hour)}
	m.PrepareUpsert(nil, now)
	assert.Equal(t, 0, m.DurationSec)
}

// A later pass that failed to reproduce enrichment must not erase what a
// previous pass stored.
func TestPrepareUpsertKeepsEnrichmentOnEmptyIncoming(t *testing.T) {
	companyID, primaryID := "co1", "ct1"
	created := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	existing := &Meeting{
		ID:               "m1",
		CreatedAt:        created,
		ThumbnailURL:     "https://cdn.test/t.jpg",
		Summary:          "stored summary",
		CompanyID:        &companyID,
		PrimaryContactID: &primaryID,
	}

	now := time.Now()
	incoming := &Meeting{
		UserID:      "u1",
		RecordingID: "r1",
		StartedAt:   now.Add(-time.Hour),
		EndedAt:     now,
	}
	incoming.PrepareUpsert(existing, now)

	assert.Equal(t, "m1", incoming.ID)
	assert.Equal(t, created, incoming.CreatedAt)
	assert.Equal(t, "https://cdn.test/t.jpg", incoming.ThumbnailURL)
	assert.Equal(t, "stored summary", incoming.Summary)
	require.NotNil(t, incoming.CompanyID)
	assert.Equal(t, "co1", *incoming.CompanyID)
	require.NotNil(t, incoming.PrimaryContactID)
	assert.Equal(t, "ct1", *incoming.PrimaryContactID)
}

// Fresh resolution results do replace the stored references.
func TestPrepareUpsertNewValuesWin(t *testing.T) {
	oldCompany, oldPrimary := "co-old", "ct-old"
	existing := &Meeting{
		ID:               "m1",
		ThumbnailURL:     "https://cdn.test/old.jpg",
		Summary:          "old summary",
		CompanyID:        &oldCompany,
		PrimaryContactID: &oldPrimary,
	}

	newCompany, newPrimary := "co-new", "ct-new"
	now := time.Now()
	incoming := &Meeting{
		StartedAt:        now.Add(-time.Hour),
		EndedAt:          now,
		ThumbnailURL:     "https://cdn.test/new.jpg",
		Summary:          "new summary",
		CompanyID:        &newCompany,
		PrimaryContactID: &newPrimary,
	}
	incoming.PrepareUpsert(existing, now)

	assert.Equal(t, "https://cdn.test/new.jpg", incoming.ThumbnailURL)
	assert.Equal(t, "new summary", incoming.Summary)
	assert.Equal(t, "co-new", *incoming.CompanyID)
	assert.Equal(t, "ct-new", *incoming.PrimaryContactID)
}
