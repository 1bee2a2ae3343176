package domain

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// Sync run status values
const (
	SyncStatusIdle    = "idle"
	SyncStatusSyncing = "syncing"
	SyncStatusError   = "error"
)

// Sync types select the query window
const (
	SyncTypeInitial     = "initial"
	SyncTypeIncremental = "incremental"
	SyncTypeManual      = "manual"
	SyncTypeWebhook     = "webhook"
	SyncTypeAllTime     = "all_time"
)

// MaxPersistedErrors caps how many per-call errors a SyncState keeps
const MaxPersistedErrors = 10

// SyncError is one per-call failure recorded during a run
type SyncError struct {
	CallID string `json:"call_id"`
	Error  string `json:"error"`
}

// SyncErrorList is a custom type to handle a JSON array in GORM
type SyncErrorList []SyncError

// Value implements driver.Valuer
func (l SyncErrorList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner
func (l *SyncErrorList) Scan(value interface{}) error {
	if value == nil {
		*l = SyncErrorList{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}
	if len(bytes) == 0 {
		*l = SyncErrorList{}
		return nil
	}
	return json.Unmarshal(bytes, l)
}

// SyncState is the per-user sync record. Created on the first provider
// connection and overwritten (not versioned) each run; concurrent runs for
// the same user are last-writer-wins rather than mutually excluded.
type SyncState struct {
	ID     string `json:"id" gorm:"primaryKey"`
	UserID string `json:"user_id" gorm:"uniqueIndex;not null"`

	Status             string        `json:"status" gorm:"default:idle"`
	MeetingsSynced     int           `json:"meetings_synced"`
	TotalMeetingsFound int           `json:"total_meetings_found"`
	LastErrors         SyncErrorList `json:"last_errors" gorm:"type:text"`

	LastSyncType    string     `json:"last_sync_type,omitempty"`
	LastSyncStarted *time.Time `json:"last_sync_started,omitempty"`
	LastSyncedAt    *time.Time `json:"last_synced_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
