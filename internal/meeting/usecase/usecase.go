package usecase

import (
	"context"
	"time"

	meetingdomain "meetsync-backend/internal/meeting/domain"
)

// SyncOptions selects the window and scope of a sync run
type SyncOptions struct {
	SyncType  string     `json:"sync_type"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	CallID    string     `json:"call_id,omitempty"`
	Limit     int        `json:"limit,omitempty"`
}

// SyncSummary is the structured result of one sync run. Partial failures are
// reported here, never thrown: a run of N calls with M failures still counts
// as a success with N-M synced.
type SyncSummary struct {
	MeetingsSynced     int                       `json:"meetings_synced"`
	TotalMeetingsFound int                       `json:"total_meetings_found"`
	Errors             []meetingdomain.SyncError `json:"errors"`
}

// MeetingUsecase drives the sync pipeline and serves the read API
type MeetingUsecase interface {
	// Sync runs one synchronization pass for the user. Only an
	// authentication failure (or credential problem) returns a non-nil
	// error; everything else lands in the summary's error list.
	Sync(ctx context.Context, userID string, opts SyncOptions) (*SyncSummary, error)

	// HandleProviderConnected initializes sync state for a freshly linked
	// workspace and kicks off the initial sync in the background.
	HandleProviderConnected(userID string)

	// AnalyzeMeeting runs the AI analysis pass over a stored meeting,
	// deduplicating proposed action items against existing ones.
	AnalyzeMeeting(ctx context.Context, userID, meetingID string) ([]*meetingdomain.ActionItem, error)

	GetSyncState(userID string) (*meetingdomain.SyncState, error)
	GetMeetings(userID string, limit, offset int) ([]*meetingdomain.Meeting, int64, error)
	GetMeetingByID(userID, id string) (*meetingdomain.Meeting, error)
	GetMeetingActionItems(userID, meetingID string) ([]*meetingdomain.ActionItem, error)
	GetCompanies(userID string) ([]*meetingdomain.Company, error)
	GetContacts(userID string) ([]*meetingdomain.Contact, error)
}
