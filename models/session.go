package models

import "time"

// PlanningSession holds conversation state between assistant turns. The
// engine itself is stateless; the session owns the append-only record of
// already-surfaced slot starts that feeds the pagination floor.
type PlanningSession struct {
	SessionID     string             `json:"sessionId"`
	Timezone      string             `json:"timezone"`
	Title         string             `json:"title,omitempty"`
	Location      string             `json:"location,omitempty"`
	LastRequest   *SchedulingRequest `json:"lastRequest,omitempty"`
	ProposedSlots []time.Time        `json:"proposedSlots,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
}
