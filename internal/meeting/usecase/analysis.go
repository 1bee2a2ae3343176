package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	meetingdomain "meetsync-backend/internal/meeting/domain"
	"meetsync-backend/pkg/fuzzy"
)

// AnalyzeMeeting runs the generator over a stored meeting's summary and
// persists the proposals that survive deduplication. Safe to call repeatedly:
// proposals matching anything already on the meeting are suppressed.
func (u *meetingUsecase) AnalyzeMeeting(ctx context.Context, userID, meetingID string) ([]*meetingdomain.ActionItem, error) {
	if u.generator == nil {
		return nil, errors.New("no analysis backend configured")
	}
	meeting, err := u.GetMeetingByID(userID, meetingID)
	if err != nil {
		return nil, err
	}
	if meeting == nil {
		return nil, errors.New("meeting not found")
	}
	if meeting.Summary == "" {
		return nil, errors.New("meeting has no summary to analyze")
	}
	return u.persistProposals(ctx, userID, meetingID, meeting.Summary)
}

// analyzeActionItems is the best-effort variant used inside the sync pass.
// Generator failures are logged and swallowed: enrichment never fails a call.
func (u *meetingUsecase) analyzeActionItems(ctx context.Context, userID, meetingID, summaryText string) {
	if _, err := u.persistProposals(ctx, userID, meetingID, summaryText); err != nil {
		log.Printf("[Analysis] Skipped for meeting %s: %v", meetingID, err)
	}
}

func (u *meetingUsecase) persistProposals(ctx context.Context, userID, meetingID, summaryText string) ([]*meetingdomain.ActionItem, error) {
	proposals, err := u.generator.ProposeActionItems(ctx, summaryText)
	if err != nil {
		return nil, err
	}

	existing, err := u.actionItemRepo.FindByMeeting(meetingID)
	if err != nil {
		return nil, err
	}
	known := make([]string, 0, len(existing))
	for _, item := range existing {
		known = append(known, item.Text)
	}

	var created []*meetingdomain.ActionItem
	for _, text := range proposals {
		if text == "" || fuzzy.IsDuplicate(text, known) {
			continue
		}
		item := &meetingdomain.ActionItem{
			ID:          uuid.New().String(),
			UserID:      userID,
			MeetingID:   meetingID,
			Text:        text,
			AIGenerated: true,
		}
		if err := u.actionItemRepo.Create(item); err != nil {
			return created, err
		}
		known = append(known, text)
		created = append(created, item)
	}
	return created, nil
}
