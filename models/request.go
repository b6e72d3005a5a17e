package models

import "time"

// Social categories recognised by the proposal engine.
const (
	SocialCasual       = "casual"
	SocialProfessional = "professional"
	SocialUnspecified  = "unspecified"
)

// ExplicitAnchor pins the search to a concrete calendar date, optionally
// narrowed to a sub-day window. Relative terms like "tomorrow" are resolved
// by the intent parser before an anchor reaches the engine.
type ExplicitAnchor struct {
	Date   string `json:"date"`             // "2006-01-02" in the request timezone
	Window string `json:"window,omitempty"` // "HH:MM-HH:MM", must not wrap midnight
}

// FlexibilityHints are explicit opt-ins that permit proposals outside the
// default social window.
type FlexibilityHints struct {
	EveningOK bool `json:"eveningOk"`
	EarlyOK   bool `json:"earlyOk"`
}

// SchedulingRequest is the canonical input to the proposal engine. It is
// constructed fresh per user turn and never persisted by the engine.
type SchedulingRequest struct {
	DurationMinutes int              `json:"durationMinutes"`
	ParticipantIDs  []string         `json:"participantIds"`
	Anchor          *ExplicitAnchor  `json:"anchor,omitempty"`
	Flexibility     FlexibilityHints `json:"flexibility"`
	QuietHours      []string         `json:"quietHours,omitempty"` // "HH:MM-HH:MM", wrap-aware
	SocialCategory  string           `json:"socialCategory,omitempty"`
	RequestedCount  int              `json:"requestedCount,omitempty"` // defaults to 3
	PreviousSlots   []time.Time      `json:"previousSlots,omitempty"`  // starts already surfaced to the user
	HorizonDays     int              `json:"horizonDays,omitempty"` // defaults to 30
	Timezone        string           `json:"timezone,omitempty"`    // defaults to UTC
}
