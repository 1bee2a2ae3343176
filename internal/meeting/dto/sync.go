package dto

import "time"

// SyncRequest triggers a manual sync run. All fields are optional; an empty
// body runs a standard manual sync over the default window.
type SyncRequest struct {
	SyncType  string     `json:"sync_type,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Limit     int        `json:"limit,omitempty"`
}

// WebhookPayload is the provider's call-completed notification
type WebhookPayload struct {
	EventType string `json:"event_type"`
	UserID    string `json:"user_id" binding:"required"`
	CallID    string `json:"call_id" binding:"required"`
}

// MeetingListResponse is a page of meetings plus the total count
type MeetingListResponse struct {
	Meetings interface{} `json:"meetings"`
	Total    int64       `json:"total"`
	Limit    int         `json:"limit"`
	Offset   int         `json:"offset"`
}
