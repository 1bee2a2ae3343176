package repository

import meetingdomain "meetsync-backend/internal/meeting/domain"

// CompanyRepository persists companies resolved from attendee domains
type CompanyRepository interface {
	FindByDomain(userID, domain string) (*meetingdomain.Company, error)
	FindByName(userID, name string) (*meetingdomain.Company, error)
	FindByID(id string) (*meetingdomain.Company, error)
	Create(company *meetingdomain.Company) error
	Update(company *meetingdomain.Company) error
	FindByUser(userID string) ([]*meetingdomain.Company, error)
	CountByUser(userID string) (int64, error)
}
