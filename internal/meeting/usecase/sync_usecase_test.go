package usecase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"time"

	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authdomain "meetsync-backend/internal/auth/domain"
	meetingdomain "meetsync-backend/internal/meeting/domain"
	"meetsync-backend/pkg/config"
	"meetsync-backend/pkg/provider"
	"meetsync-backend/pkg/thumbnail"
)

// memStore is a single in-memory backing store shared by the repository
// fakes, so cross-repository behavior (junction links feeding contact
// signals) works the way the real database does.
type memStore struct {
	mu sync.Mutex

	users       map[string]*authdomain.User
	meetings    map[string]*meetingdomain.Meeting // by id
	companies   map[string]*meetingdomain.Company
	contacts    map[string]*meetingdomain.Contact
	actionItems map[string]*meetingdomain.ActionItem
	syncStates  map[string]*meetingdomain.SyncState // by user id

	links   map[string][]string // meeting id -> contact ids
	primary map[string]string   // meeting id -> primary contact id
}

func newMemStore() *memStore {
	return &memStore{
		users:       make(map[string]*authdomain.User),
		meetings:    make(map[string]*meetingdomain.Meeting),
		companies:   make(map[string]*meetingdomain.Company),
		contacts:    make(map[string]*meetingdomain.Contact),
		actionItems: make(map[string]*meetingdomain.ActionItem),
		syncStates:  make(map[string]*meetingdomain.SyncState),
		links:       make(map[string][]string),
		primary:     make(map[string]string),
	}
}

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) Create(u *authdomain.User) error { r.s.users[u.ID] = u; return nil }
func (r *memUserRepo) FindByEmail(email string) (*authdomain.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *memUserRepo) FindByID(id string) (*authdomain.User, error) { return r.s.users[id], nil }
func (r *memUserRepo) FindConnected() ([]*authdomain.User, error) {
	var out []*authdomain.User
	for _, u := range r.s.users {
		if u.ProviderConnected() {
			out = append(out, u)
		}
	}
	return out, nil
}
func (r *memUserRepo) Update(u *authdomain.User) error                        { r.s.users[u.ID] = u; return nil }
func (r *memUserRepo) SaveRefreshToken(*authdomain.RefreshToken) error        { return nil }
func (r *memUserRepo) FindRefreshToken(string) (*authdomain.RefreshToken, error) { return nil, nil }
func (r *memUserRepo) DeleteRefreshToken(string) error                        { return nil }

type memMeetingRepo struct{ s *memStore }

func (r *memMeetingRepo) FindByRecordingID(userID, recordingID string) (*meetingdomain.Meeting, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.findByRecordingLocked(userID, recordingID), nil
}

func (r *memMeetingRepo) findByRecordingLocked(userID, recordingID string) *meetingdomain.Meeting {
	for _, m := range r.s.meetings {
		if m.UserID == userID && m.RecordingID == recordingID {
			return m
		}
	}
	return nil
}

func (r *memMeetingRepo) Upsert(m *meetingdomain.Meeting) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing := r.findByRecordingLocked(m.UserID, m.RecordingID)
	m.PrepareUpsert(existing, time.Now())
	if existing == nil {
		m.ID = uuid.New().String()
	}
	cp := *m
	r.s.meetings[m.ID] = &cp
	return nil
}

func (r *memMeetingRepo) ReplaceContacts(meetingID string, contactIDs []string, primaryContactID *string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.links[meetingID] = append([]string(nil), contactIDs...)
	delete(r.s.primary, meetingID)
	if primaryContactID != nil {
		r.s.primary[meetingID] = *primaryContactID
	}
	return nil
}

func (r *memMeetingRepo) FindByID(userID, id string) (*meetingdomain.Meeting, error) {
	m := r.s.meetings[id]
	if m == nil || m.UserID != userID {
		return nil, nil
	}
	return m, nil
}

func (r *memMeetingRepo) FindByUser(userID string, limit, offset int) ([]*meetingdomain.Meeting, int64, error) {
	var out []*meetingdomain.Meeting
	for _, m := range r.s.meetings {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.After(out[j].StartedAt) })
	return out, int64(len(out)), nil
}

func (r *memMeetingRepo) CountByUser(userID string) (int64, error) {
	out, _, _ := r.FindByUser(userID, 0, 0)
	return int64(len(out)), nil
}

type memCompanyRepo struct{ s *memStore }

func (r *memCompanyRepo) FindByDomain(userID, domain string) (*meetingdomain.Company, error) {
	for _, c := range r.s.companies {
		if c.UserID == userID && c.Domain == domain {
			return c, nil
		}
	}
	return nil, nil
}
func (r *memCompanyRepo) FindByName(userID, name string) (*meetingdomain.Company, error) {
	for _, c := range r.s.companies {
		if c.UserID == userID && c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}
func (r *memCompanyRepo) FindByID(id string) (*meetingdomain.Company, error) {
	return r.s.companies[id], nil
}
func (r *memCompanyRepo) Create(c *meetingdomain.Company) error { r.s.companies[c.ID] = c; return nil }
func (r *memCompanyRepo) Update(c *meetingdomain.Company) error { r.s.companies[c.ID] = c; return nil }
func (r *memCompanyRepo) FindByUser(userID string) ([]*meetingdomain.Company, error) {
	var out []*meetingdomain.Company
	for _, c := range r.s.companies {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}
func (r *memCompanyRepo) CountByUser(userID string) (int64, error) {
	out, _ := r.FindByUser(userID)
	return int64(len(out)), nil
}

type memContactRepo struct{ s *memStore }

func (r *memContactRepo) FindByEmail(userID, email string) (*meetingdomain.Contact, error) {
	for _, c := range r.s.contacts {
		if c.UserID == userID && c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}
func (r *memContactRepo) FindByID(id string) (*meetingdomain.Contact, error) {
	return r.s.contacts[id], nil
}
func (r *memContactRepo) FindByIDs(ids []string) ([]*meetingdomain.Contact, error) {
	var out []*meetingdomain.Contact
	for _, id := range ids {
		if c, ok := r.s.contacts[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}
func (r *memContactRepo) Create(c *meetingdomain.Contact) error { r.s.contacts[c.ID] = c; return nil }
func (r *memContactRepo) Update(c *meetingdomain.Contact) error { r.s.contacts[c.ID] = c; return nil }
func (r *memContactRepo) FindByUser(userID string) ([]*meetingdomain.Contact, error) {
	var out []*meetingdomain.Contact
	for _, c := range r.s.contacts {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}
func (r *memContactRepo) CountByUser(userID string) (int64, error) {
	out, _ := r.FindByUser(userID)
	return int64(len(out)), nil
}

func (r *memContactRepo) RefreshSignals(contactID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.contacts[contactID]
	if !ok {
		return nil
	}
	count := 0
	var last *time.Time
	for meetingID, contactIDs := range r.s.links {
		for _, id := range contactIDs {
			if id != contactID {
				continue
			}
			count++
			if m, ok := r.s.meetings[meetingID]; ok {
				if last == nil || m.StartedAt.After(*last) {
					t := m.StartedAt
					last = &t
				}
			}
		}
	}
	c.MeetingCount = count
	c.LastMeetingAt = last
	return nil
}

type memActionItemRepo struct{ s *memStore }

func (r *memActionItemRepo) FindByMeeting(meetingID string) ([]*meetingdomain.ActionItem, error) {
	var out []*meetingdomain.ActionItem
	for _, it := range r.s.actionItems {
		if it.MeetingID == meetingID {
			out = append(out, it)
		}
	}
	return out, nil
}
func (r *memActionItemRepo) Create(it *meetingdomain.ActionItem) error {
	if it.ID == "" {
		it.ID = uuid.New().String()
	}
	r.s.actionItems[it.ID] = it
	return nil
}
func (r *memActionItemRepo) ReplaceNative(meetingID string, items []*meetingdomain.ActionItem) error {
	for id, it := range r.s.actionItems {
		if it.MeetingID == meetingID && !it.AIGenerated {
			delete(r.s.actionItems, id)
		}
	}
	for _, it := range items {
		if it.ID == "" {
			it.ID = uuid.New().String()
		}
		r.s.actionItems[it.ID] = it
	}
	return nil
}

type memSyncStateRepo struct{ s *memStore }

func (r *memSyncStateRepo) GetByUser(userID string) (*meetingdomain.SyncState, error) {
	return r.s.syncStates[userID], nil
}
func (r *memSyncStateRepo) EnsureForUser(userID string) (*meetingdomain.SyncState, error) {
	if st, ok := r.s.syncStates[userID]; ok {
		return st, nil
	}
	st := &meetingdomain.SyncState{
		ID:     uuid.New().String(),
		UserID: userID,
		Status: meetingdomain.SyncStatusIdle,
	}
	r.s.syncStates[userID] = st
	return st, nil
}
func (r *memSyncStateRepo) Save(st *meetingdomain.SyncState) error {
	r.s.syncStates[st.UserID] = st
	return nil
}

type stubThumbs struct{ url string }

func (s *stubThumbs) Resolve(ctx context.Context, src thumbnail.Source) string { return s.url }

type fixture struct {
	store   *memStore
	usecase *meetingUsecase
	server  *httptest.Server
	userID  string
}

func newFixture(t *testing.T, handler http.Handler) *fixture {
	t.Helper()

	store := newMemStore()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		SyncPageSize:   100,
		SyncMaxRecords: 10000,
	}
	uc := NewMeetingUsecase(
		cfg,
		&memUserRepo{store},
		&memMeetingRepo{store},
		&memCompanyRepo{store},
		&memContactRepo{store},
		&memActionItemRepo{store},
		&memSyncStateRepo{store},
		&stubThumbs{},
	)
	uc.SetClientFactory(func(*authdomain.User) (*provider.Client, error) {
		return provider.NewClient(server.URL, "test-key", 2*time.Second), nil
	})

	now := time.Now()
	user := &authdomain.User{
		ID:                  "u1",
		Email:               "owner@corp.test",
		ProviderAPIKey:      "stored",
		ProviderConnectedAt: &now,
	}
	store.users[user.ID] = user

	return &fixture{store: store, usecase: uc, server: server, userID: user.ID}
}

func callsResponse(calls string) string {
	return `{"calls":[` + calls + `],"total_count":0}`
}

// Scenario: three calls come back, one with a malformed timestamp. The run
// succeeds with two synced and exactly one recorded error; the missing
// thumbnail on the good calls is never an error.
func TestSyncPartialFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/calls", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(callsResponse(`
			{"id":"c1","title":"A","start_time":"2026-08-20T10:00:00Z","end_time":"2026-08-20T10:30:00Z","attendees":[]},
			{"id":"c2","title":"B","start_time":"not-a-timestamp","end_time":"2026-08-20T11:30:00Z","attendees":[]},
			{"id":"c3","title":"C","start_time":"2026-08-20T12:00:00Z","end_time":"2026-08-20T12:30:00Z","attendees":[]}`)))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound) // no summaries or action items
	})
	f := newFixture(t, mux)

	summary, err := f.usecase.Sync(context.Background(), f.userID, SyncOptions{SyncType: meetingdomain.SyncTypeManual})
	require.NoError(t, err, "partial failure must not fail the run")
	assert.Equal(t, 2, summary.MeetingsSynced)
	assert.Equal(t, 3, summary.TotalMeetingsFound)
	require.Len(t, summary.Errors, 1)
	assert.Equal(t, "c2", summary.Errors[0].CallID)

	state := f.store.syncStates[f.userID]
	assert.Equal(t, meetingdomain.SyncStatusIdle, state.Status)
	assert.Equal(t, 2, state.MeetingsSynced)
	assert.Equal(t, 3, state.TotalMeetingsFound)
	require.Len(t, state.LastErrors, 1)
	assert.NotNil(t, state.LastSyncedAt)
}

// Scenario: two externals sharing a domain resolve to one company and two
// contacts; the internal attendee never becomes a contact.
func TestSyncEntityResolutionSharedDomain(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/calls", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(callsResponse(`{
			"id":"c1","title":"Acme sync","start_time":"2026-08-20T10:00:00Z","end_time":"2026-08-20T10:30:00Z",
			"attendees":[
				{"name":"Host","email":"host@corp.test","scope":"internal"},
				{"name":"Ann","email":"ann@acme.com","scope":"external"},
				{"name":"Bob","email":"bob@acme.com","scope":"external"}
			],
			"summary":{"overview":"sync"}}`)))
	})
	f := newFixture(t, mux)

	summary, err := f.usecase.Sync(context.Background(), f.userID, SyncOptions{SyncType: meetingdomain.SyncTypeManual})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.MeetingsSynced)

	assert.Len(t, f.store.companies, 1)
	assert.Len(t, f.store.contacts, 2)
	for _, c := range f.store.companies {
		assert.Equal(t, "acme.com", c.Domain)
		assert.Equal(t, "Acme", c.Name)
	}
	for _, c := range f.store.contacts {
		require.NotNil(t, c.CompanyID)
	}

	// the single meeting links both contacts and exactly one primary
	require.Len(t, f.store.links, 1)
	for meetingID, linked := range f.store.links {
		assert.Len(t, linked, 2)
		_, hasPrimary := f.store.primary[meetingID]
		assert.True(t, hasPrimary)
	}
}

// Scenario: a windowed fetch that returns nothing is retried exactly once
// without the window.
func TestSyncUnwindowedRetry(t *testing.T) {
	var windowed, unwindowed int
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/calls", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("from") != "" {
			windowed++
			w.Write([]byte(`{"calls":[],"total_count":0}`))
			return
		}
		unwindowed++
		w.Write([]byte(callsResponse(`{"id":"c1","title":"Old","start_time":"2024-01-05T10:00:00Z","end_time":"2024-01-05T11:00:00Z","attendees":[],"summary":{"overview":"old"}}`)))
	})
	f := newFixture(t, mux)

	summary, err := f.usecase.Sync(context.Background(), f.userID, SyncOptions{SyncType: meetingdomain.SyncTypeIncremental})
	require.NoError(t, err)
	assert.Equal(t, 1, windowed, "exactly one windowed attempt")
	assert.Equal(t, 1, unwindowed, "exactly one unwindowed retry")
	assert.Equal(t, 1, summary.MeetingsSynced)
}

func TestSyncUnwindowedRetryNotRepeated(t *testing.T) {
	var requests int
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/calls", func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{"calls":[],"total_count":0}`))
	})
	f := newFixture(t, mux)

	summary, err := f.usecase.Sync(context.Background(), f.userID, SyncOptions{SyncType: meetingdomain.SyncTypeManual})
	require.NoError(t, err)
	assert.Equal(t, 2, requests, "empty again after the retry means stop, not loop")
	assert.Equal(t, 0, summary.TotalMeetingsFound)
}

// Re-running the same sync creates nothing new: same meeting row, same
// contacts and companies, same action items, same signals.
func TestSyncIdempotent(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/calls", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(callsResponse(goodCall("c1"))))
	})
	f := newFixture(t, mux)

	_, err := f.usecase.Sync(context.Background(), f.userID, SyncOptions{SyncType: meetingdomain.SyncTypeManual})
	require.NoError(t, err)
	_, err = f.usecase.Sync(context.Background(), f.userID, SyncOptions{SyncType: meetingdomain.SyncTypeManual})
	require.NoError(t, err)

	assert.Len(t, f.store.meetings, 1)
	assert.Len(t, f.store.companies, 1)
	assert.Len(t, f.store.contacts, 1)
	assert.Len(t, f.store.actionItems, 1)

	for _, c := range f.store.contacts {
		assert.Equal(t, 1, c.MeetingCount, "signals are derived, not incremented")
	}
}

// When the provider has no summary at all, the transcript feeds summary
// generation; a missing transcript stays a silent no-op.
func TestSyncGeneratesSummaryFromTranscript(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/calls", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(callsResponse(`{"id":"c1","title":"Acme demo","start_time":"2026-08-20T10:00:00Z","end_time":"2026-08-20T10:30:00Z","attendees":[]}`)))
	})
	mux.HandleFunc("/v1/calls/c1/transcript", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"transcript":"long transcript text"}`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound) // no summary, no action items
	})
	f := newFixture(t, mux)
	f.usecase.SetGenerator(&stubGenerator{
		summary:   "Generated: demo recap",
		proposals: []string{"Send recap notes"},
	})

	summary, err := f.usecase.Sync(context.Background(), f.userID, SyncOptions{SyncType: meetingdomain.SyncTypeManual})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.MeetingsSynced)

	require.Len(t, f.store.meetings, 1)
	for _, m := range f.store.meetings {
		assert.Equal(t, "Generated: demo recap", m.Summary)
	}
	// the generated summary also fed the action-item analysis pass
	require.Len(t, f.store.actionItems, 1)
	for _, it := range f.store.actionItems {
		assert.Equal(t, "Send recap notes", it.Text)
		assert.True(t, it.AIGenerated)
	}
}

// Two users connected to the same provider workspace each get their own
// meeting row for the same recording id; neither run errors.
func TestSyncSameRecordingTwoUsers(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/calls", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(callsResponse(goodCall("shared-rec"))))
	})
	f := newFixture(t, mux)

	now := time.Now()
	f.store.users["u2"] = &authdomain.User{
		ID:                  "u2",
		Email:               "second@corp.test",
		ProviderAPIKey:      "stored",
		ProviderConnectedAt: &now,
	}

	for _, userID := range []string{f.userID, "u2"} {
		summary, err := f.usecase.Sync(context.Background(), userID, SyncOptions{SyncType: meetingdomain.SyncTypeManual})
		require.NoError(t, err)
		assert.Equal(t, 1, summary.MeetingsSynced)
		assert.Empty(t, summary.Errors)
	}

	require.Len(t, f.store.meetings, 2)
	owners := map[string]bool{}
	for _, m := range f.store.meetings {
		assert.Equal(t, "shared-rec", m.RecordingID)
		owners[m.UserID] = true
	}
	assert.True(t, owners[f.userID])
	assert.True(t, owners["u2"])
}

// A dead credential aborts the whole run instead of burning through every
// call, and the run lands in the error state.
func TestSyncAuthFailureAborts(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/calls", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	f := newFixture(t, mux)

	_, err := f.usecase.Sync(context.Background(), f.userID, SyncOptions{SyncType: meetingdomain.SyncTypeManual})
	require.Error(t, err)
	assert.True(t, provider.IsAuthError(err))

	state := f.store.syncStates[f.userID]
	assert.Equal(t, meetingdomain.SyncStatusError, state.Status)
	require.NotEmpty(t, state.LastErrors)
}

func TestSyncWebhookSingleCall(t *testing.T) {
	var listHit bool
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/calls", func(w http.ResponseWriter, r *http.Request) { listHit = true })
	mux.HandleFunc("/v1/calls/c42", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(goodCall("c42")))
	})
	f := newFixture(t, mux)

	summary, err := f.usecase.Sync(context.Background(), f.userID, SyncOptions{
		SyncType: meetingdomain.SyncTypeWebhook,
		CallID:   "c42",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.MeetingsSynced)
	assert.Equal(t, 1, summary.TotalMeetingsFound)
	assert.False(t, listHit, "webhook sync must not page the full list")
}

func TestSyncUnknownTypeRejected(t *testing.T) {
	f := newFixture(t, http.NewServeMux())
	_, err := f.usecase.Sync(context.Background(), f.userID, SyncOptions{SyncType: "bogus"})
	require.Error(t, err)
}

func TestSyncRecordLimit(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/calls", func(w http.ResponseWriter, r *http.Request) {
		// endless pages of two calls each
		cursor := r.URL.Query().Get("cursor")
		a, b := "p"+cursor+"a", "p"+cursor+"b"
		w.Write([]byte(`{"calls":[` + goodCall(a) + `,` + goodCall(b) + `],"next_cursor":"` + cursor + `x","total_count":0}`))
	})
	f := newFixture(t, mux)

	summary, err := f.usecase.Sync(context.Background(), f.userID, SyncOptions{
		SyncType: meetingdomain.SyncTypeAllTime,
		Limit:    5,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, summary.TotalMeetingsFound)
	assert.Equal(t, 5, summary.MeetingsSynced)
}

// Persisted errors cap at ten even when the run accumulated more.
func TestSyncErrorTruncation(t *testing.T) {
	var calls []string
	for i := 0; i < 12; i++ {
		calls = append(calls, `{"id":"bad`+string(rune('a'+i))+`","title":"x","start_time":"garbage","end_time":"","attendees":[]}`)
	}
	body := `{"calls":[` + joinJSON(calls) + `],"total_count":0}`
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/calls", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	})
	f := newFixture(t, mux)

	summary, err := f.usecase.Sync(context.Background(), f.userID, SyncOptions{SyncType: meetingdomain.SyncTypeManual})
	require.NoError(t, err)
	assert.Len(t, summary.Errors, 12)
	assert.Len(t, f.store.syncStates[f.userID].LastErrors, meetingdomain.MaxPersistedErrors)
}

func goodCall(id string) string {
	return `{
		"id": "` + id + `",
		"title": "Acme kickoff",
		"start_time": "2026-08-20T10:00:00Z",
		"end_time": "2026-08-20T10:45:00Z",
		"attendees": [
			{"name": "Host", "email": "host@corp.test", "scope": "internal"},
			{"name": "Ann Buyer", "email": "ann@acme.com", "scope": "external"}
		],
		"share_url": "https://share.test/` + id + `",
		"summary": {"overview": "Kickoff with Acme", "action_items": [{"text": "Send pricing deck", "assignee": "Host"}]}
	}`
}

func joinJSON(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ","
		}
		out += p
	}
	return out
}
