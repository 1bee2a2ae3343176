package provider

// Attendee is a participant on a recorded call as reported by the provider.
// Scope distinguishes the recording owner's teammates ("internal") from
// external counterparts; only external attendees become CRM contacts.
type Attendee struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Scope       string `json:"scope"` // "internal", "external" or "host"
	CompanyName string `json:"company_name,omitempty"`
}

// External reports whether the attendee belongs to a counterpart organization
func (a Attendee) External() bool {
	return a.Scope == "external"
}

// CallActionItem is a provider-native action item attached to a recording
type CallActionItem struct {
	Text      string `json:"text"`
	Assignee  string `json:"assignee,omitempty"`
	Timestamp int    `json:"timestamp,omitempty"` // seconds into the recording
}

// CallSummary is the provider-generated summary for a recording
type CallSummary struct {
	Overview    string           `json:"overview"`
	ActionItems []CallActionItem `json:"action_items,omitempty"`
}

// Call is the provider-shaped payload for one recorded meeting. It is
// transient: the sync pipeline maps it into canonical records and never
// stores it as-is. Timestamps stay raw strings here so a malformed value
// surfaces as a per-call data error during processing, not a decode failure
// that would poison the whole page.
type Call struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	StartTime    string     `json:"start_time"`
	EndTime      string     `json:"end_time"`
	Attendees    []Attendee `json:"attendees"`
	ShareURL     string     `json:"share_url"`
	EmbedURL     string     `json:"embed_url,omitempty"`
	ThumbnailURL string     `json:"thumbnail_url,omitempty"`
	Summary      *CallSummary `json:"summary,omitempty"`
}

// CallPage is one page of the paginated list-recordings response
type CallPage struct {
	Calls      []Call `json:"calls"`
	NextCursor string `json:"next_cursor,omitempty"`
	TotalCount int    `json:"total_count"`
}
