package repository

import (
	"errors"
	"time"

	meetingdomain "meetsync-backend/internal/meeting/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// syncStateRepository implements SyncStateRepository interface
type syncStateRepository struct {
	db *gorm.DB
}

// NewSyncStateRepository creates a new instance of syncStateRepository
func NewSyncStateRepository(db *gorm.DB) SyncStateRepository {
	return &syncStateRepository{
		db: db,
	}
}

func (r *syncStateRepository) GetByUser(userID string) (*meetingdomain.SyncState, error) {
	var state meetingdomain.SyncState
	err := r.db.Where("user_id = ?", userID).First(&state).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &state, nil
}

func (r *syncStateRepository) EnsureForUser(userID string) (*meetingdomain.SyncState, error) {
	existing, err := r.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	now := time.Now()
	state := &meetingdomain.SyncState{
		ID:         uuid.New().String(),
		UserID:     userID,
		Status:     meetingdomain.SyncStatusIdle,
		LastErrors: meetingdomain.SyncErrorList{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := r.db.Create(state).Error; err != nil {
		return nil, err
	}
	return state, nil
}

func (r *syncStateRepository) Save(state *meetingdomain.SyncState) error {
	state.UpdatedAt = time.Now()
	return r.db.Save(state).Error
}
