package repository

import meetingdomain "meetsync-backend/internal/meeting/domain"

// ContactRepository persists contacts resolved from external attendees
type ContactRepository interface {
	FindByEmail(userID, email string) (*meetingdomain.Contact, error)
	FindByID(id string) (*meetingdomain.Contact, error)
	FindByIDs(ids []string) ([]*meetingdomain.Contact, error)
	Create(contact *meetingdomain.Contact) error
	Update(contact *meetingdomain.Contact) error
	FindByUser(userID string) ([]*meetingdomain.Contact, error)
	CountByUser(userID string) (int64, error)

	// RefreshSignals recomputes meeting_count and last_meeting_at from the
	// meeting-contact junction. Derived rather than incremented so repeated
	// sync passes over the same calls leave the signals unchanged.
	RefreshSignals(contactID string) error
}
