package repository

import (
	meetingdomain "meetsync-backend/internal/meeting/domain"
)

// MeetingRepository persists canonical meetings and their contact links
type MeetingRepository interface {
	// FindByRecordingID looks a meeting up by its provider recording id
	FindByRecordingID(userID, recordingID string) (*meetingdomain.Meeting, error)

	// Upsert creates or updates the meeting keyed on (user, recording id),
	// recomputing duration and stamping last_synced_at / sync_status.
	Upsert(meeting *meetingdomain.Meeting) error

	// ReplaceContacts rewrites the meeting-contact junction so that exactly
	// the given contacts are linked and at most one is primary.
	ReplaceContacts(meetingID string, contactIDs []string, primaryContactID *string) error

	FindByID(userID, id string) (*meetingdomain.Meeting, error)
	FindByUser(userID string, limit, offset int) ([]*meetingdomain.Meeting, int64, error)
	CountByUser(userID string) (int64, error)
}
