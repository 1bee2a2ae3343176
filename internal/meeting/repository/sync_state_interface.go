package repository

import meetingdomain "meetsync-backend/internal/meeting/domain"

// SyncStateRepository persists the per-user sync record
type SyncStateRepository interface {
	GetByUser(userID string) (*meetingdomain.SyncState, error)

	// EnsureForUser creates the idle sync state on first provider
	// connection; subsequent calls return the existing record untouched.
	EnsureForUser(userID string) (*meetingdomain.SyncState, error)

	// Save overwrites the state record. Last writer wins; runs are not
	// mutually excluded.
	Save(state *meetingdomain.SyncState) error
}
