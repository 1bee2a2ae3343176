package repository

import (
	"errors"
	"time"

	meetingdomain "meetsync-backend/internal/meeting/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// contactRepository implements ContactRepository interface
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new instance of contactRepository
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{
		db: db,
	}
}

func (r *contactRepository) FindByEmail(userID, email string) (*meetingdomain.Contact, error) {
	var contact meetingdomain.Contact
	err := r.db.Where("user_id = ? AND email = ?", userID, email).First(&contact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) FindByID(id string) (*meetingdomain.Contact, error) {
	var contact meetingdomain.Contact
	err := r.db.Where("id = ?", id).First(&contact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) FindByIDs(ids []string) ([]*meetingdomain.Contact, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var contacts []*meetingdomain.Contact
	err := r.db.Where("id IN ?", ids).Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *contactRepository) Create(contact *meetingdomain.Contact) error {
	if contact.ID == "" {
		contact.ID = uuid.New().String()
	}
	contact.CreatedAt = time.Now()
	contact.UpdatedAt = time.Now()
	return r.db.Create(contact).Error
}

func (r *contactRepository) Update(contact *meetingdomain.Contact) error {
	contact.UpdatedAt = time.Now()
	return r.db.Save(contact).Error
}

func (r *contactRepository) FindByUser(userID string) ([]*meetingdomain.Contact, error) {
	var contacts []*meetingdomain.Contact
	err := r.db.Where("user_id = ?", userID).Order("name ASC").Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *contactRepository) CountByUser(userID string) (int64, error) {
	var total int64
	err := r.db.Model(&meetingdomain.Contact{}).Where("user_id = ?", userID).Count(&total).Error
	return total, err
}

func (r *contactRepository) RefreshSignals(contactID string) error {
	var count int64
	err := r.db.Model(&meetingdomain.MeetingContact{}).
		Where("contact_id = ?", contactID).
		Count(&count).Error
	if err != nil {
		return err
	}

	var lastMeeting struct {
		StartedAt *time.Time
	}
	err = r.db.Model(&meetingdomain.Meeting{}).
		Select("MAX(meetings.started_at) AS started_at").
		Joins("JOIN meeting_contacts ON meeting_contacts.meeting_id = meetings.id").
		Where("meeting_contacts.contact_id = ?", contactID).
		Scan(&lastMeeting).Error
	if err != nil {
		return err
	}

	return r.db.Model(&meetingdomain.Contact{}).
		Where("id = ?", contactID).
		Updates(map[string]interface{}{
			"meeting_count":   count,
			"last_meeting_at": lastMeeting.StartedAt,
			"updated_at":      time.Now(),
		}).Error
}
