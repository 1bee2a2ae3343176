package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/oauth2"

	authdomain "meetsync-backend/internal/auth/domain"
	authrepo "meetsync-backend/internal/auth/repository"
	meetingdomain "meetsync-backend/internal/meeting/domain"
	"meetsync-backend/internal/meeting/repository"
	"meetsync-backend/pkg/ai"
	"meetsync-backend/pkg/config"
	"meetsync-backend/pkg/provider"
	"meetsync-backend/pkg/thumbnail"
	"meetsync-backend/pkg/utils/crypto"
)

const (
	incrementalWindow = 24 * time.Hour
	initialWindow     = 30 * 24 * time.Hour
)

// ThumbnailResolver yields a usable thumbnail URL for a recording, or "" when
// every source is exhausted. Thumbnail failures never fail a sync.
type ThumbnailResolver interface {
	Resolve(ctx context.Context, src thumbnail.Source) string
}

// ClientFactory builds a provider client from a user's stored credentials
type ClientFactory func(user *authdomain.User) (*provider.Client, error)

// EventService pushes sync lifecycle events to connected clients
type EventService interface {
	SendToUser(userID string, eventType string, payload interface{})
}

type meetingUsecase struct {
	cfg            *config.Config
	userRepo       authrepo.UserRepository
	meetingRepo    repository.MeetingRepository
	companyRepo    repository.CompanyRepository
	contactRepo    repository.ContactRepository
	actionItemRepo repository.ActionItemRepository
	syncStateRepo  repository.SyncStateRepository
	thumbnails     ThumbnailResolver
	generator      ai.Generator
	clientFactory  ClientFactory
	eventService   EventService
}

func NewMeetingUsecase(
	cfg *config.Config,
	userRepo authrepo.UserRepository,
	meetingRepo repository.MeetingRepository,
	companyRepo repository.CompanyRepository,
	contactRepo repository.ContactRepository,
	actionItemRepo repository.ActionItemRepository,
	syncStateRepo repository.SyncStateRepository,
	thumbnails ThumbnailResolver,
) *meetingUsecase {
	u := &meetingUsecase{
		cfg:            cfg,
		userRepo:       userRepo,
		meetingRepo:    meetingRepo,
		companyRepo:    companyRepo,
		contactRepo:    contactRepo,
		actionItemRepo: actionItemRepo,
		syncStateRepo:  syncStateRepo,
		thumbnails:     thumbnails,
	}
	u.clientFactory = u.newProviderClient
	return u
}

// SetGenerator wires the optional AI analysis backend
func (u *meetingUsecase) SetGenerator(g ai.Generator) {
	u.generator = g
}

// SetEventService wires the optional realtime notifier
func (u *meetingUsecase) SetEventService(es EventService) {
	u.eventService = es
}

// SetClientFactory overrides how provider clients are built
func (u *meetingUsecase) SetClientFactory(f ClientFactory) {
	u.clientFactory = f
}

func (u *meetingUsecase) newProviderClient(user *authdomain.User) (*provider.Client, error) {
	if user.ProviderAPIKey != "" {
		apiKey, err := crypto.Decrypt(user.ProviderAPIKey, u.cfg.EncryptionKey)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt provider api key: %w", err)
		}
		return provider.NewClient(u.cfg.ProviderBaseURL, apiKey, u.cfg.ProviderTimeout), nil
	}

	accessToken, err := crypto.Decrypt(user.ProviderAccessToken, u.cfg.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt provider access token: %w", err)
	}
	refreshToken := ""
	if user.ProviderRefreshToken != "" {
		refreshToken, err = crypto.Decrypt(user.ProviderRefreshToken, u.cfg.EncryptionKey)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt provider refresh token: %w", err)
		}
	}

	userID := user.ID
	oauthCfg := provider.OAuthConfig{
		TokenURL:     u.cfg.ProviderTokenURL,
		ClientID:     u.cfg.ProviderClientID,
		ClientSecret: u.cfg.ProviderClientSecret,
	}
	ts := provider.NewOAuthTokenSource(context.Background(), oauthCfg, accessToken, refreshToken, func(t *oauth2.Token) error {
		return u.persistRefreshedTokens(userID, t.AccessToken, t.RefreshToken)
	})
	return provider.NewClientWithTokenSource(u.cfg.ProviderBaseURL, ts, u.cfg.ProviderTimeout), nil
}

func (u *meetingUsecase) persistRefreshedTokens(userID, accessToken, refreshToken string) error {
	user, err := u.userRepo.FindByID(userID)
	if err != nil || user == nil {
		return fmt.Errorf("failed to load user for token update: %w", err)
	}
	encAccess, err := crypto.Encrypt(accessToken, u.cfg.EncryptionKey)
	if err != nil {
		return err
	}
	user.ProviderAccessToken = encAccess
	if refreshToken != "" {
		encRefresh, err := crypto.Encrypt(refreshToken, u.cfg.EncryptionKey)
		if err != nil {
			return err
		}
		user.ProviderRefreshToken = encRefresh
	}
	return u.userRepo.Update(user)
}

func (u *meetingUsecase) Sync(ctx context.Context, userID string, opts SyncOptions) (*SyncSummary, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, errors.New("user not found")
	}
	if !user.ProviderConnected() {
		return nil, errors.New("provider is not connected")
	}
	if opts.SyncType == "" {
		opts.SyncType = meetingdomain.SyncTypeManual
	}

	state, err := u.syncStateRepo.EnsureForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sync state: %w", err)
	}

	started := time.Now()
	state.Status = meetingdomain.SyncStatusSyncing
	state.LastSyncType = opts.SyncType
	state.LastSyncStarted = &started
	if err := u.syncStateRepo.Save(state); err != nil {
		log.Printf("[Sync] Failed to persist syncing state for user %s: %v", userID, err)
	}

	summary, runErr := u.runSync(ctx, user, opts)

	completed := time.Now()
	state.MeetingsSynced = summary.MeetingsSynced
	state.TotalMeetingsFound = summary.TotalMeetingsFound
	state.LastErrors = truncateErrors(summary.Errors)
	state.LastSyncedAt = &completed
	if runErr != nil {
		state.Status = meetingdomain.SyncStatusError
		if len(state.LastErrors) < meetingdomain.MaxPersistedErrors {
			state.LastErrors = append(state.LastErrors, meetingdomain.SyncError{Error: runErr.Error()})
		}
	} else {
		state.Status = meetingdomain.SyncStatusIdle
	}
	if err := u.syncStateRepo.Save(state); err != nil {
		log.Printf("[Sync] Failed to persist final state for user %s: %v", userID, err)
	}

	if runErr != nil {
		log.Printf("[Sync] Run aborted for user %s (%s): %v", userID, opts.SyncType, runErr)
		return summary, runErr
	}

	log.Printf("[Sync] Completed for user %s (%s): %d/%d synced, %d errors",
		userID, opts.SyncType, summary.MeetingsSynced, summary.TotalMeetingsFound, len(summary.Errors))
	if u.eventService != nil {
		u.eventService.SendToUser(userID, "sync_completed", summary)
	}
	return summary, nil
}

func truncateErrors(errs []meetingdomain.SyncError) meetingdomain.SyncErrorList {
	if len(errs) > meetingdomain.MaxPersistedErrors {
		errs = errs[:meetingdomain.MaxPersistedErrors]
	}
	return meetingdomain.SyncErrorList(errs)
}

func (u *meetingUsecase) runSync(ctx context.Context, user *authdomain.User, opts SyncOptions) (*SyncSummary, error) {
	summary := &SyncSummary{Errors: []meetingdomain.SyncError{}}

	client, err := u.clientFactory(user)
	if err != nil {
		return summary, err
	}

	calls, err := u.collectCalls(ctx, client, opts)
	if err != nil {
		return summary, err
	}
	summary.TotalMeetingsFound = len(calls)

	for i := range calls {
		if ctx.Err() != nil {
			return summary, ctx.Err()
		}
		if err := u.processCall(ctx, user, client, &calls[i]); err != nil {
			if provider.IsAuthError(err) {
				return summary, err
			}
			log.Printf("[Sync] Call %s failed for user %s: %v", calls[i].ID, user.ID, err)
			summary.Errors = append(summary.Errors, meetingdomain.SyncError{
				CallID: calls[i].ID,
				Error:  err.Error(),
			})
			continue
		}
		summary.MeetingsSynced++
	}
	return summary, nil
}

// collectCalls resolves the fetch window from the sync type and pages through
// the provider. A windowed fetch that comes back empty is retried exactly once
// without the window, so a stale cursor never strands a workspace.
func (u *meetingUsecase) collectCalls(ctx context.Context, client *provider.Client, opts SyncOptions) ([]provider.Call, error) {
	if opts.SyncType == meetingdomain.SyncTypeWebhook {
		if opts.CallID == "" {
			return nil, errors.New("webhook sync requires a call id")
		}
		call, err := client.GetCall(ctx, opts.CallID)
		if err != nil {
			return nil, err
		}
		return []provider.Call{*call}, nil
	}

	var from, to *time.Time
	now := time.Now()
	switch opts.SyncType {
	case meetingdomain.SyncTypeIncremental:
		t := now.Add(-incrementalWindow)
		from = &t
	case meetingdomain.SyncTypeInitial, meetingdomain.SyncTypeManual:
		t := now.Add(-initialWindow)
		from = &t
	case meetingdomain.SyncTypeAllTime:
		// unbounded
	default:
		return nil, fmt.Errorf("unknown sync type: %s", opts.SyncType)
	}
	if opts.StartDate != nil {
		from = opts.StartDate
	}
	if opts.EndDate != nil {
		to = opts.EndDate
	}

	calls, err := u.fetchCalls(ctx, client, from, to, opts.Limit)
	if err != nil {
		return nil, err
	}
	if len(calls) == 0 && (from != nil || to != nil) {
		log.Printf("[Sync] Windowed fetch returned nothing, retrying without window")
		return u.fetchCalls(ctx, client, nil, nil, opts.Limit)
	}
	return calls, nil
}

func (u *meetingUsecase) fetchCalls(ctx context.Context, client *provider.Client, from, to *time.Time, limit int) ([]provider.Call, error) {
	maxRecords := u.cfg.SyncMaxRecords
	if limit > 0 && limit < maxRecords {
		maxRecords = limit
	}

	var calls []provider.Call
	cursor := ""
	for {
		page, err := client.ListCalls(ctx, provider.ListCallsParams{
			From:     from,
			To:       to,
			Cursor:   cursor,
			PageSize: u.cfg.SyncPageSize,
		})
		if err != nil {
			return nil, err
		}
		calls = append(calls, page.Calls...)
		if len(calls) >= maxRecords {
			calls = calls[:maxRecords]
			log.Printf("[Sync] Record cap of %d reached, stopping pagination", maxRecords)
			break
		}
		if page.NextCursor == "" || len(page.Calls) == 0 {
			break
		}
		cursor = page.NextCursor
	}
	return calls, nil
}

// processCall runs the full per-call pipeline: timestamps, attendee
// resolution, primary selection, thumbnail, persistence, action items.
// Any returned error is recorded against this call only.
func (u *meetingUsecase) processCall(ctx context.Context, user *authdomain.User, client *provider.Client, call *provider.Call) error {
	if call.ID == "" {
		return errors.New("call has no id")
	}

	startedAt, err := time.Parse(time.RFC3339, call.StartTime)
	if err != nil {
		return fmt.Errorf("invalid start time %q: %w", call.StartTime, err)
	}
	var endedAt time.Time
	if call.EndTime != "" {
		endedAt, err = time.Parse(time.RFC3339, call.EndTime)
		if err != nil {
			return fmt.Errorf("invalid end time %q: %w", call.EndTime, err)
		}
	} else {
		endedAt = startedAt
	}

	contactIDs, err := u.resolveAttendees(user.ID, call.Attendees)
	if err != nil {
		return err
	}

	primaryID, companyID := u.selectPrimary(contactIDs)

	summaryText := ""
	var nativeItems []provider.CallActionItem
	if call.Summary != nil {
		summaryText = call.Summary.Overview
		nativeItems = call.Summary.ActionItems
	} else {
		cs, err := client.GetSummary(ctx, call.ID)
		if err != nil {
			if provider.IsAuthError(err) {
				return err
			}
			if !provider.IsNotFound(err) {
				log.Printf("[Sync] Summary unavailable for call %s: %v", call.ID, err)
			}
		} else if cs != nil {
			summaryText = cs.Overview
			nativeItems = cs.ActionItems
		}
	}
	// No provider summary anywhere: generate one from the transcript
	if summaryText == "" && u.generator != nil {
		transcript, err := client.GetTranscript(ctx, call.ID)
		switch {
		case err != nil && provider.IsAuthError(err):
			return err
		case err != nil:
			if !provider.IsNotFound(err) {
				log.Printf("[Sync] Transcript unavailable for call %s: %v", call.ID, err)
			}
		case transcript != "":
			generated, genErr := u.generator.GenerateSummary(ctx, transcript)
			if genErr != nil {
				log.Printf("[Analysis] Summary generation failed for call %s: %v", call.ID, genErr)
			} else {
				summaryText = generated
			}
		}
	}

	if len(nativeItems) == 0 {
		items, err := client.GetActionItems(ctx, call.ID)
		if err != nil {
			if provider.IsAuthError(err) {
				return err
			}
			if !provider.IsNotFound(err) {
				log.Printf("[Sync] Action items unavailable for call %s: %v", call.ID, err)
			}
		} else {
			nativeItems = items
		}
	}

	thumbnailURL := call.ThumbnailURL
	if thumbnailURL == "" {
		thumbnailURL = u.thumbnails.Resolve(ctx, thumbnail.Source{
			RecordingID: call.ID,
			Title:       call.Title,
			ShareURL:    call.ShareURL,
			EmbedURL:    call.EmbedURL,
		})
	}

	meeting := &meetingdomain.Meeting{
		UserID:           user.ID,
		RecordingID:      call.ID,
		Title:            call.Title,
		StartedAt:        startedAt,
		EndedAt:          endedAt,
		ShareURL:         call.ShareURL,
		EmbedURL:         call.EmbedURL,
		ThumbnailURL:     thumbnailURL,
		Summary:          summaryText,
		PrimaryContactID: primaryID,
		CompanyID:        companyID,
	}
	if err := u.meetingRepo.Upsert(meeting); err != nil {
		return fmt.Errorf("failed to save meeting: %w", err)
	}

	if err := u.meetingRepo.ReplaceContacts(meeting.ID, contactIDs, primaryID); err != nil {
		return fmt.Errorf("failed to link contacts: %w", err)
	}
	for _, contactID := range contactIDs {
		if err := u.contactRepo.RefreshSignals(contactID); err != nil {
			log.Printf("[Sync] Failed to refresh signals for contact %s: %v", contactID, err)
		}
	}

	native := make([]*meetingdomain.ActionItem, 0, len(nativeItems))
	for _, item := range nativeItems {
		if strings.TrimSpace(item.Text) == "" {
			continue
		}
		native = append(native, &meetingdomain.ActionItem{
			MeetingID: meeting.ID,
			UserID:    user.ID,
			Text:      item.Text,
			Assignee:  item.Assignee,
		})
	}
	if err := u.actionItemRepo.ReplaceNative(meeting.ID, native); err != nil {
		return fmt.Errorf("failed to save action items: %w", err)
	}

	if u.generator != nil && summaryText != "" {
		u.analyzeActionItems(ctx, user.ID, meeting.ID, summaryText)
	}
	return nil
}

func (u *meetingUsecase) HandleProviderConnected(userID string) {
	if _, err := u.syncStateRepo.EnsureForUser(userID); err != nil {
		log.Printf("[Sync] Failed to initialize sync state for user %s: %v", userID, err)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()
		if _, err := u.Sync(ctx, userID, SyncOptions{SyncType: meetingdomain.SyncTypeInitial}); err != nil {
			log.Printf("[Sync] Initial sync failed for user %s: %v", userID, err)
		}
	}()
}

func (u *meetingUsecase) GetSyncState(userID string) (*meetingdomain.SyncState, error) {
	return u.syncStateRepo.EnsureForUser(userID)
}

func (u *meetingUsecase) GetMeetings(userID string, limit, offset int) ([]*meetingdomain.Meeting, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return u.meetingRepo.FindByUser(userID, limit, offset)
}

func (u *meetingUsecase) GetMeetingByID(userID, id string) (*meetingdomain.Meeting, error) {
	return u.meetingRepo.FindByID(userID, id)
}

func (u *meetingUsecase) GetMeetingActionItems(userID, meetingID string) ([]*meetingdomain.ActionItem, error) {
	meeting, err := u.GetMeetingByID(userID, meetingID)
	if err != nil {
		return nil, err
	}
	if meeting == nil {
		return nil, nil
	}
	return u.actionItemRepo.FindByMeeting(meetingID)
}

func (u *meetingUsecase) GetCompanies(userID string) ([]*meetingdomain.Company, error) {
	return u.companyRepo.FindByUser(userID)
}

func (u *meetingUsecase) GetContacts(userID string) ([]*meetingdomain.Contact, error) {
	return u.contactRepo.FindByUser(userID)
}
