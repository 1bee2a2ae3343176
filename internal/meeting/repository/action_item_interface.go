package repository

import meetingdomain "meetsync-backend/internal/meeting/domain"

// ActionItemRepository persists action items attached to meetings
type ActionItemRepository interface {
	FindByMeeting(meetingID string) ([]*meetingdomain.ActionItem, error)
	Create(item *meetingdomain.ActionItem) error

	// ReplaceNative swaps out the provider-native items for a meeting in one
	// transaction. Generated items are left alone; a re-sync therefore never
	// duplicates native rows.
	ReplaceNative(meetingID string, items []*meetingdomain.ActionItem) error
}
