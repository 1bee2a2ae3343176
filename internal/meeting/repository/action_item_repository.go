package repository

import (
	"time"

	meetingdomain "meetsync-backend/internal/meeting/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// actionItemRepository implements ActionItemRepository interface
type actionItemRepository struct {
	db *gorm.DB
}

// NewActionItemRepository creates a new instance of actionItemRepository
func NewActionItemRepository(db *gorm.DB) ActionItemRepository {
	return &actionItemRepository{
		db: db,
	}
}

func (r *actionItemRepository) FindByMeeting(meetingID string) ([]*meetingdomain.ActionItem, error) {
	var items []*meetingdomain.ActionItem
	err := r.db.Where("meeting_id = ?", meetingID).Order("created_at ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *actionItemRepository) Create(item *meetingdomain.ActionItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()
	return r.db.Create(item).Error
}

func (r *actionItemRepository) ReplaceNative(meetingID string, items []*meetingdomain.ActionItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meeting_id = ? AND ai_generated = ?", meetingID, false).
			Delete(&meetingdomain.ActionItem{}).Error; err != nil {
			return err
		}

		now := time.Now()
		for _, item := range items {
			if item.ID == "" {
				item.ID = uuid.New().String()
			}
			item.MeetingID = meetingID
			item.AIGenerated = false
			item.CreatedAt = now
			item.UpdatedAt = now
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
