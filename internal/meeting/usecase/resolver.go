package usecase

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	meetingdomain "meetsync-backend/internal/meeting/domain"
	"meetsync-backend/pkg/provider"
)

// resolveAttendees maps the external attendees of a call onto contact
// records, creating companies and contacts lazily. Internal attendees and
// attendees without an email are skipped. Resolution is idempotent: running
// it twice over the same attendees creates nothing new.
func (u *meetingUsecase) resolveAttendees(userID string, attendees []provider.Attendee) ([]string, error) {
	var contactIDs []string
	seen := make(map[string]bool)

	for _, att := range attendees {
		if !att.External() {
			continue
		}
		email := strings.ToLower(strings.TrimSpace(att.Email))
		if email == "" || seen[email] {
			continue
		}
		seen[email] = true

		contact, err := u.resolveContact(userID, email, att)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve attendee %s: %w", email, err)
		}
		contactIDs = append(contactIDs, contact.ID)
	}
	return contactIDs, nil
}

func (u *meetingUsecase) resolveContact(userID, email string, att provider.Attendee) (*meetingdomain.Contact, error) {
	company, err := u.resolveCompany(userID, email, att)
	if err != nil {
		return nil, err
	}

	contact, err := u.contactRepo.FindByEmail(userID, email)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		contact = &meetingdomain.Contact{
			ID:     uuid.New().String(),
			UserID: userID,
			Email:  email,
			Name:   att.Name,
		}
		if company != nil {
			contact.CompanyID = &company.ID
		}
		if err := u.contactRepo.Create(contact); err != nil {
			return nil, err
		}
		return contact, nil
	}

	// Backfill only: fill gaps on the existing record, never overwrite
	changed := false
	if contact.Name == "" && att.Name != "" {
		contact.Name = att.Name
		changed = true
	}
	if contact.CompanyID == nil && company != nil {
		contact.CompanyID = &company.ID
		changed = true
	}
	if changed {
		if err := u.contactRepo.Update(contact); err != nil {
			return nil, err
		}
	}
	return contact, nil
}

func (u *meetingUsecase) resolveCompany(userID, email string, att provider.Attendee) (*meetingdomain.Company, error) {
	domain := domainFromEmail(email)
	if domain != "" {
		company, err := u.companyRepo.FindByDomain(userID, domain)
		if err != nil {
			return nil, err
		}
		if company != nil {
			return company, nil
		}
		company = &meetingdomain.Company{
			ID:     uuid.New().String(),
			UserID: userID,
			Name:   inferCompanyName(att, domain),
			Domain: domain,
		}
		if err := u.companyRepo.Create(company); err != nil {
			return nil, err
		}
		return company, nil
	}

	if att.CompanyName == "" {
		return nil, nil
	}
	company, err := u.companyRepo.FindByName(userID, att.CompanyName)
	if err != nil {
		return nil, err
	}
	if company != nil {
		return company, nil
	}
	company = &meetingdomain.Company{
		ID:     uuid.New().String(),
		UserID: userID,
		Name:   att.CompanyName,
	}
	if err := u.companyRepo.Create(company); err != nil {
		return nil, err
	}
	return company, nil
}

func domainFromEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return email[at+1:]
}

// inferCompanyName prefers the provider's display name and falls back to
// capitalizing the first label of the domain ("acme.com" -> "Acme")
func inferCompanyName(att provider.Attendee, domain string) string {
	if att.CompanyName != "" {
		return att.CompanyName
	}
	label := domain
	if dot := strings.Index(domain, "."); dot > 0 {
		label = domain[:dot]
	}
	if label == "" {
		return domain
	}
	return strings.ToUpper(label[:1]) + label[1:]
}
