package domain

import "time"

// SyncStatus of an individual meeting record
const (
	MeetingSyncStatusSynced = "synced"
	MeetingSyncStatusFailed = "failed"
)

// Meeting is the canonical record for one provider recording, keyed uniquely
// by (owning user, recording id) like every other CRM entity: two users
// syncing the same workspace each get their own row. Created or updated on
// every sync pass for that recording, never duplicated.
type Meeting struct {
	ID          string `json:"id" gorm:"primaryKey"`
	UserID      string `json:"user_id" gorm:"uniqueIndex:idx_user_recording;not null"`
	RecordingID string `json:"recording_id" gorm:"uniqueIndex:idx_user_recording;not null"`

	Title       string     `json:"title"`
	StartedAt   time.Time  `json:"started_at" gorm:"index"`
	EndedAt     time.Time  `json:"ended_at"`
	DurationSec int        `json:"duration_sec"` // derived from the time range on every write

	ShareURL     string `json:"share_url,omitempty"`
	EmbedURL     string `json:"embed_url,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Summary      string `json:"summary,omitempty" gorm:"type:text"`

	PrimaryContactID *string `json:"primary_contact_id,omitempty" gorm:"index"`
	CompanyID        *string `json:"company_id,omitempty" gorm:"index"`

	SyncStatus   string     `json:"sync_status" gorm:"default:synced"`
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PrepareUpsert recomputes derived fields and stamps the sync markers. When
// an existing record is given, the incoming one merges onto it: identity and
// creation time are kept, and enrichment a later pass failed to reproduce
// (thumbnail, summary, company, primary contact) is never clobbered by an
// empty value.
func (m *Meeting) PrepareUpsert(existing *Meeting, now time.Time) {
	m.DurationSec = int(m.EndedAt.Sub(m.StartedAt).Seconds())
	if m.DurationSec < 0 {
		m.DurationSec = 0
	}
	m.SyncStatus = MeetingSyncStatusSynced
	m.LastSyncedAt = &now
	m.UpdatedAt = now

	if existing == nil {
		m.CreatedAt = now
		return
	}
	m.ID = existing.ID
	m.CreatedAt = existing.CreatedAt
	if m.ThumbnailURL == "" {
		m.ThumbnailURL = existing.ThumbnailURL
	}
	if m.Summary == "" {
		m.Summary = existing.Summary
	}
	if m.CompanyID == nil {
		m.CompanyID = existing.CompanyID
	}
	if m.PrimaryContactID == nil {
		m.PrimaryContactID = existing.PrimaryContactID
	}
}

// MeetingContact links meetings to resolved contacts. Exactly one row per
// meeting carries is_primary = true when any external contact resolved.
type MeetingContact struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	MeetingID string    `json:"meeting_id" gorm:"index:idx_meeting_contact;uniqueIndex:idx_meeting_contact_unique;not null"`
	ContactID string    `json:"contact_id" gorm:"index:idx_meeting_contact;uniqueIndex:idx_meeting_contact_unique;not null"`
	IsPrimary bool      `json:"is_primary" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
}
