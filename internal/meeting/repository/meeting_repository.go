package repository

import (
	"errors"
	"time"

	meetingdomain "meetsync-backend/internal/meeting/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// meetingRepository implements MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new instance of meetingRepository
func NewMeetingRepository(db *gorm.DB) MeetingRepository {
	return &meetingRepository{
		db: db,
	}
}

func (r *meetingRepository) FindByRecordingID(userID, recordingID string) (*meetingdomain.Meeting, error) {
	var meeting meetingdomain.Meeting
	err := r.db.Where("user_id = ? AND recording_id = ?", userID, recordingID).First(&meeting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &meeting, nil
}

// Upsert writes the canonical meeting record keyed on (user, recording id).
// Duration is recomputed from the time range on every write; company and
// primary-contact references are merged without clobbering previously set
// values unless resolution produced new ones; last_synced_at and sync_status
// are always stamped.
func (r *meetingRepository) Upsert(meeting *meetingdomain.Meeting) error {
	existing, err := r.FindByRecordingID(meeting.UserID, meeting.RecordingID)
	if err != nil {
		return err
	}

	meeting.PrepareUpsert(existing, time.Now())
	if existing == nil {
		meeting.ID = uuid.New().String()
		return r.db.Create(meeting).Error
	}
	return r.db.Save(meeting).Error
}

// ReplaceContacts rewrites the junction rows for the meeting inside one
// transaction so a crashed run can simply be restarted.
func (r *meetingRepository) ReplaceContacts(meetingID string, contactIDs []string, primaryContactID *string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meeting_id = ?", meetingID).Delete(&meetingdomain.MeetingContact{}).Error; err != nil {
			return err
		}

		now := time.Now()
		for _, contactID := range contactIDs {
			link := meetingdomain.MeetingContact{
				ID:        uuid.New().String(),
				MeetingID: meetingID,
				ContactID: contactID,
				IsPrimary: primaryContactID != nil && *primaryContactID == contactID,
				CreatedAt: now,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *meetingRepository) FindByID(userID, id string) (*meetingdomain.Meeting, error) {
	var meeting meetingdomain.Meeting
	err := r.db.Where("user_id = ? AND id = ?", userID, id).First(&meeting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &meeting, nil
}

func (r *meetingRepository) FindByUser(userID string, limit, offset int) ([]*meetingdomain.Meeting, int64, error) {
	var meetings []*meetingdomain.Meeting
	var total int64

	if err := r.db.Model(&meetingdomain.Meeting{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("user_id = ?", userID).
		Order("started_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&meetings).Error
	if err != nil {
		return nil, 0, err
	}
	return meetings, total, nil
}

func (r *meetingRepository) CountByUser(userID string) (int64, error) {
	var total int64
	err := r.db.Model(&meetingdomain.Meeting{}).Where("user_id = ?", userID).Count(&total).Error
	return total, err
}
