package domain

import "time"

// ActionItem is attached to a meeting. AIGenerated distinguishes
// provider-native items from generated ones; fuzzy dedup prevents two rows
// describing the same real-world task.
type ActionItem struct {
	ID        string `json:"id" gorm:"primaryKey"`
	UserID    string `json:"user_id" gorm:"index;not null"`
	MeetingID string `json:"meeting_id" gorm:"index;not null"`

	Text        string `json:"text" gorm:"type:text;not null"`
	Assignee    string `json:"assignee,omitempty"`
	AIGenerated bool   `json:"ai_generated" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
