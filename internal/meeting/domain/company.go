package domain

import "time"

// Company is keyed by (owning user, domain) when the domain is known, else
// by name. Created lazily during entity resolution, never deleted by the
// sync process, updated only to backfill missing fields.
type Company struct {
	ID     string `json:"id" gorm:"primaryKey"`
	UserID string `json:"user_id" gorm:"index:idx_user_domain;not null"`
	Name   string `json:"name" gorm:"not null"`
	Domain string `json:"domain,omitempty" gorm:"index:idx_user_domain"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Contact is keyed by (owning user, email). CompanyID is nullable and
// backfilled once known, never overwritten. Internal attendees are never
// turned into contacts.
type Contact struct {
	ID     string `json:"id" gorm:"primaryKey"`
	UserID string `json:"user_id" gorm:"index:idx_user_contact_email;not null"`
	Email  string `json:"email" gorm:"index:idx_user_contact_email;not null"`
	Name   string `json:"name"`

	CompanyID *string `json:"company_id,omitempty" gorm:"index"`

	// Signals feeding primary-contact selection
	MeetingCount  int        `json:"meeting_count" gorm:"default:0"`
	LastMeetingAt *time.Time `json:"last_meeting_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
