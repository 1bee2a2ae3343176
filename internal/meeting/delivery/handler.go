package delivery

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	meetingdomain "meetsync-backend/internal/meeting/domain"
	meetingdto "meetsync-backend/internal/meeting/dto"
	"meetsync-backend/internal/meeting/usecase"
	"meetsync-backend/pkg/provider"

	"github.com/gin-gonic/gin"
)

type MeetingHandler struct {
	meetingUsecase usecase.MeetingUsecase
	webhookSecret  string
}

func NewMeetingHandler(meetingUsecase usecase.MeetingUsecase, webhookSecret string) *MeetingHandler {
	return &MeetingHandler{
		meetingUsecase: meetingUsecase,
		webhookSecret:  webhookSecret,
	}
}

// Sync runs a sync pass and returns its summary. Partial failures come back
// with 200 and a populated errors list; only auth/credential problems fail
// the request.
func (h *MeetingHandler) Sync(c *gin.Context) {
	userID := c.GetString("userID")

	var req meetingdto.SyncRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	syncType := req.SyncType
	if syncType == "" {
		syncType = meetingdomain.SyncTypeManual
	}
	switch syncType {
	case meetingdomain.SyncTypeInitial, meetingdomain.SyncTypeIncremental,
		meetingdomain.SyncTypeManual, meetingdomain.SyncTypeAllTime:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown sync type: " + syncType})
		return
	}

	summary, err := h.meetingUsecase.Sync(c.Request.Context(), userID, usecase.SyncOptions{
		SyncType:  syncType,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Limit:     req.Limit,
	})
	if err != nil {
		status := http.StatusBadGateway
		if provider.IsAuthError(err) {
			status = http.StatusUnauthorized
		}
		c.JSON(status, gin.H{"error": err.Error(), "summary": summary})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *MeetingHandler) SyncStatus(c *gin.Context) {
	userID := c.GetString("userID")
	state, err := h.meetingUsecase.GetSyncState(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

// Webhook receives the provider's call-completed notification. The shared
// secret gates it instead of user auth; the single-call sync runs in the
// background and the provider gets an immediate 202.
func (h *MeetingHandler) Webhook(c *gin.Context) {
	if h.webhookSecret == "" || c.GetHeader("X-Webhook-Secret") != h.webhookSecret {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid webhook secret"})
		return
	}

	var payload meetingdto.WebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		_, err := h.meetingUsecase.Sync(ctx, payload.UserID, usecase.SyncOptions{
			SyncType: meetingdomain.SyncTypeWebhook,
			CallID:   payload.CallID,
		})
		if err != nil {
			log.Printf("[Webhook] Sync failed for user %s call %s: %v", payload.UserID, payload.CallID, err)
		}
	}()
	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

func (h *MeetingHandler) GetMeetings(c *gin.Context) {
	userID := c.GetString("userID")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	meetings, total, err := h.meetingUsecase.GetMeetings(userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meetingdto.MeetingListResponse{
		Meetings: meetings,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	})
}

func (h *MeetingHandler) GetMeeting(c *gin.Context) {
	userID := c.GetString("userID")
	meeting, err := h.meetingUsecase.GetMeetingByID(userID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if meeting == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "meeting not found"})
		return
	}
	c.JSON(http.StatusOK, meeting)
}

func (h *MeetingHandler) GetMeetingActionItems(c *gin.Context) {
	userID := c.GetString("userID")
	items, err := h.meetingUsecase.GetMeetingActionItems(userID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if items == nil {
		items = []*meetingdomain.ActionItem{}
	}
	c.JSON(http.StatusOK, gin.H{"action_items": items})
}

func (h *MeetingHandler) AnalyzeMeeting(c *gin.Context) {
	userID := c.GetString("userID")
	created, err := h.meetingUsecase.AnalyzeMeeting(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if created == nil {
		created = []*meetingdomain.ActionItem{}
	}
	c.JSON(http.StatusOK, gin.H{"created": created})
}

func (h *MeetingHandler) GetCompanies(c *gin.Context) {
	userID := c.GetString("userID")
	companies, err := h.meetingUsecase.GetCompanies(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

func (h *MeetingHandler) GetContacts(c *gin.Context) {
	userID := c.GetString("userID")
	contacts, err := h.meetingUsecase.GetContacts(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}
