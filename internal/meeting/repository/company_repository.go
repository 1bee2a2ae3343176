package repository

import (
	"errors"
	"time"

	meetingdomain "meetsync-backend/internal/meeting/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// companyRepository implements CompanyRepository interface
type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new instance of companyRepository
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{
		db: db,
	}
}

func (r *companyRepository) FindByDomain(userID, domain string) (*meetingdomain.Company, error) {
	var company meetingdomain.Company
	err := r.db.Where("user_id = ? AND domain = ?", userID, domain).First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) FindByName(userID, name string) (*meetingdomain.Company, error) {
	var company meetingdomain.Company
	err := r.db.Where("user_id = ? AND name = ?", userID, name).First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) FindByID(id string) (*meetingdomain.Company, error) {
	var company meetingdomain.Company
	err := r.db.Where("id = ?", id).First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) Create(company *meetingdomain.Company) error {
	if company.ID == "" {
		company.ID = uuid.New().String()
	}
	company.CreatedAt = time.Now()
	company.UpdatedAt = time.Now()
	return r.db.Create(company).Error
}

func (r *companyRepository) Update(company *meetingdomain.Company) error {
	company.UpdatedAt = time.Now()
	return r.db.Save(company).Error
}

func (r *companyRepository) FindByUser(userID string) ([]*meetingdomain.Company, error) {
	var companies []*meetingdomain.Company
	err := r.db.Where("user_id = ?", userID).Order("name ASC").Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *companyRepository) CountByUser(userID string) (int64, error) {
	var total int64
	err := r.db.Model(&meetingdomain.Company{}).Where("user_id = ?", userID).Count(&total).Error
	return total, err
}
