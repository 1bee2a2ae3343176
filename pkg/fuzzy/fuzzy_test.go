package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "send the follow up email", Normalize("Send the follow-up email!"))
	assert.Equal(t, "q3 pricing", Normalize("  Q3   pricing...  "))
	assert.Equal(t, "", Normalize("?!..."))
}

func TestOverlapRatio(t *testing.T) {
	assert.Equal(t, 1.0, OverlapRatio("send pricing", "pricing send"))
	assert.Equal(t, 0.0, OverlapRatio("alpha beta", "gamma delta"))
	// {send, the, proposal} vs {send, proposal} -> 2/3
	assert.InDelta(t, 0.6667, OverlapRatio("send the proposal", "send proposal"), 0.001)
}

func TestIsSameTask(t *testing.T) {
	// exact after normalization
	assert.True(t, IsSameTask("Send follow-up email", "send follow up email."))
	// substring containment either way
	assert.True(t, IsSameTask("Send pricing", "Send pricing to the Acme team"))
	assert.True(t, IsSameTask("Send pricing to the Acme team", "Send pricing"))
	// above threshold without containment
	assert.True(t, IsSameTask("schedule demo with acme team", "schedule demo with acme engineers"))
	// well below threshold
	assert.False(t, IsSameTask("Send pricing deck", "Book travel for offsite"))
	// empty never matches
	assert.False(t, IsSameTask("", "Send pricing"))
}

func TestDuplicateThresholdBoundary(t *testing.T) {
	// 3 shared tokens of 5 union -> 0.6 exactly, which must NOT count
	a := "review alpha beta gamma"
	b := "review alpha beta delta"
	assert.InDelta(t, 0.6, OverlapRatio(a, b), 0.001)
	assert.False(t, IsSameTask(a, b))
}

func TestIsDuplicate(t *testing.T) {
	existing := []string{
		"Send the updated pricing deck",
		"Schedule a technical deep-dive",
	}
	assert.True(t, IsDuplicate("send the updated pricing deck!", existing))
	assert.True(t, IsDuplicate("Schedule a technical deep dive with their CTO", existing))
	assert.False(t, IsDuplicate("Draft the security questionnaire answers", existing))
	assert.False(t, IsDuplicate("anything", nil))
}
