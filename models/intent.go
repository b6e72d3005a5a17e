package models

// MeetingIntent is the best-effort extraction from a free-text meeting request.
// Any field may be absent; downstream code applies documented defaults.
type MeetingIntent struct {
	Title           string   `json:"title,omitempty"`
	Location        string   `json:"location,omitempty"`
	ParticipantIDs  []string `json:"participantIds,omitempty"`
	DurationMinutes int      `json:"durationMinutes,omitempty"` // 0 means unspecified
	AnchorDate      string   `json:"anchorDate,omitempty"`      // "2006-01-02", already resolved
	AnchorWindow    string   `json:"anchorWindow,omitempty"`    // "HH:MM-HH:MM"
	EveningOK       bool     `json:"eveningOk,omitempty"`
	EarlyOK         bool     `json:"earlyOk,omitempty"`
	SocialCategory  string   `json:"socialCategory,omitempty"`
	MoreRequested   bool     `json:"moreRequested,omitempty"` // user asked for additional options
}

// AssistantRequest is one conversational turn from the user.
type AssistantRequest struct {
	SessionID string `json:"sessionId,omitempty"`
	Message   string `json:"message" binding:"required"`
	Timezone  string `json:"timezone,omitempty"`
}

// AssistantResponse carries the proposals for one turn.
type AssistantResponse struct {
	SessionID    string          `json:"sessionId"`
	Title        string          `json:"title,omitempty"`
	Location     string          `json:"location,omitempty"`
	Slots        []CandidateSlot `json:"slots"`
	Status       string          `json:"status"`
	ResponseText string          `json:"responseText,omitempty"`
}
