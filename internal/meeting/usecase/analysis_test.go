package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	meetingdomain "meetsync-backend/internal/meeting/domain"
)

type stubGenerator struct {
	summary   string
	proposals []string
	err       error
}

func (g *stubGenerator) GenerateSummary(ctx context.Context, transcript string) (string, error) {
	return g.summary, g.err
}

func (g *stubGenerator) ProposeActionItems(ctx context.Context, transcript string) ([]string, error) {
	return g.proposals, g.err
}

func analysisFixture(gen *stubGenerator) (*meetingUsecase, *memStore) {
	store := newMemStore()
	store.meetings["m1"] = &meetingdomain.Meeting{
		ID:        "m1",
		UserID:    "u1",
		Summary:   "Kickoff with Acme, pricing discussed",
		StartedAt: time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
	}
	u := &meetingUsecase{
		meetingRepo:    &memMeetingRepo{store},
		actionItemRepo: &memActionItemRepo{store},
		generator:      gen,
	}
	return u, store
}

func TestAnalyzeMeetingSuppressesDuplicates(t *testing.T) {
	u, store := analysisFixture(&stubGenerator{proposals: []string{
		"Send the pricing deck",             // duplicates the native item
		"Draft the security questionnaire",  // genuinely new
		"draft the security questionnaire!", // duplicates the previous proposal
	}})
	store.actionItems["n1"] = &meetingdomain.ActionItem{
		ID: "n1", MeetingID: "m1", UserID: "u1", Text: "Send pricing deck",
	}

	created, err := u.AnalyzeMeeting(context.Background(), "u1", "m1")
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "Draft the security questionnaire", created[0].Text)
	assert.True(t, created[0].AIGenerated)
	assert.Len(t, store.actionItems, 2)
}

// Running analysis again proposes the same items; none survive dedup.
func TestAnalyzeMeetingIdempotentAcrossPasses(t *testing.T) {
	gen := &stubGenerator{proposals: []string{"Draft the security questionnaire"}}
	u, store := analysisFixture(gen)

	first, err := u.AnalyzeMeeting(context.Background(), "u1", "m1")
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := u.AnalyzeMeeting(context.Background(), "u1", "m1")
	require.NoError(t, err)
	assert.Empty(t, second)
	assert.Len(t, store.actionItems, 1)
}

func TestAnalyzeMeetingErrors(t *testing.T) {
	u, _ := analysisFixture(&stubGenerator{err: errors.New("model overloaded")})
	_, err := u.AnalyzeMeeting(context.Background(), "u1", "m1")
	require.Error(t, err)

	// wrong owner looks like a missing meeting
	u2, _ := analysisFixture(&stubGenerator{})
	_, err = u2.AnalyzeMeeting(context.Background(), "other-user", "m1")
	require.Error(t, err)

	// no generator wired
	u3 := &meetingUsecase{}
	_, err = u3.AnalyzeMeeting(context.Background(), "u1", "m1")
	require.Error(t, err)
}
