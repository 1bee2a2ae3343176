package provider

import (
	"context"
	"net/url"
	"strconv"
	"time"
)

// ListCallsParams narrows the list-recordings query. A nil From/To leaves the
// window unbounded on that side.
type ListCallsParams struct {
	From     *time.Time
	To       *time.Time
	Cursor   string
	PageSize int
}

// ListCalls fetches one page of recordings, date-windowed and
// cursor-paginated. The caller drives the loop and owns the safety cap.
func (c *Client) ListCalls(ctx context.Context, params ListCallsParams) (*CallPage, error) {
	query := url.Values{}
	if params.From != nil {
		query.Set("from", params.From.UTC().Format(time.RFC3339))
	}
	if params.To != nil {
		query.Set("to", params.To.UTC().Format(time.RFC3339))
	}
	if params.Cursor != "" {
		query.Set("cursor", params.Cursor)
	}
	if params.PageSize > 0 {
		query.Set("limit", strconv.Itoa(params.PageSize))
	}

	var page CallPage
	if err := c.getJSON(ctx, "/v1/calls", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetCall fetches a single recording by id (webhook-triggered syncs)
func (c *Client) GetCall(ctx context.Context, callID string) (*Call, error) {
	var call Call
	if err := c.getJSON(ctx, "/v1/calls/"+url.PathEscape(callID), nil, &call); err != nil {
		return nil, err
	}
	return &call, nil
}

// GetActionItems fetches provider-native action items for a recording
func (c *Client) GetActionItems(ctx context.Context, callID string) ([]CallActionItem, error) {
	var resp struct {
		ActionItems []CallActionItem `json:"action_items"`
	}
	if err := c.getJSON(ctx, "/v1/calls/"+url.PathEscape(callID)+"/action-items", nil, &resp); err != nil {
		return nil, err
	}
	return resp.ActionItems, nil
}

// GetTranscript fetches the transcript text for a recording. Feeds summary
// generation when the provider has no summary of its own.
func (c *Client) GetTranscript(ctx context.Context, callID string) (string, error) {
	var resp struct {
		Transcript string `json:"transcript"`
	}
	if err := c.getJSON(ctx, "/v1/calls/"+url.PathEscape(callID)+"/transcript", nil, &resp); err != nil {
		return "", err
	}
	return resp.Transcript, nil
}

// GetSummary fetches the summary for a recording. Only called lazily when the
// bulk list payload did not include one.
func (c *Client) GetSummary(ctx context.Context, callID string) (*CallSummary, error) {
	var summary CallSummary
	if err := c.getJSON(ctx, "/v1/calls/"+url.PathEscape(callID)+"/summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
