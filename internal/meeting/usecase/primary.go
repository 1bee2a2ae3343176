package usecase

import (
	"log"
	"sort"

	meetingdomain "meetsync-backend/internal/meeting/domain"
)

// selectPrimary picks the single primary contact for a meeting from the
// resolved contacts. The ordering is a total order so the same candidate set
// always yields the same winner: meeting count desc, then last meeting desc,
// then oldest record first, then id. Returns nils when nothing resolved.
func (u *meetingUsecase) selectPrimary(contactIDs []string) (primaryID *string, companyID *string) {
	if len(contactIDs) == 0 {
		return nil, nil
	}
	contacts, err := u.contactRepo.FindByIDs(contactIDs)
	if err != nil || len(contacts) == 0 {
		if err != nil {
			log.Printf("[Sync] Failed to load contacts for primary selection: %v", err)
		}
		return nil, nil
	}

	sort.Slice(contacts, func(i, j int) bool {
		a, b := contacts[i], contacts[j]
		if a.MeetingCount != b.MeetingCount {
			return a.MeetingCount > b.MeetingCount
		}
		if !lastMeetingEqual(a, b) {
			return lastMeetingAfter(a, b)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	winner := contacts[0]
	return &winner.ID, winner.CompanyID
}

func lastMeetingEqual(a, b *meetingdomain.Contact) bool {
	if a.LastMeetingAt == nil && b.LastMeetingAt == nil {
		return true
	}
	if a.LastMeetingAt == nil || b.LastMeetingAt == nil {
		return false
	}
	return a.LastMeetingAt.Equal(*b.LastMeetingAt)
}

// lastMeetingAfter orders a set timestamp ahead of nil, later ahead of earlier
func lastMeetingAfter(a, b *meetingdomain.Contact) bool {
	if a.LastMeetingAt == nil {
		return false
	}
	if b.LastMeetingAt == nil {
		return true
	}
	return a.LastMeetingAt.After(*b.LastMeetingAt)
}
