package models

import "time"

// Completeness status of a ScheduleResult. Zero results is a normal outcome,
// never an error.
const (
	StatusComplete  = "complete"  // requested number of slots found
	StatusPartial   = "partial"   // some slots found before the horizon ran out
	StatusExhausted = "exhausted" // no slot survived the permitted tiers
)

// CandidateSlot is one proposed meeting time. Tier records which step of the
// constraint-relaxation sequence admitted it, for UI transparency.
type CandidateSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Tier  int       `json:"tier"`
}

// ScheduleResult is the engine's output: up to the requested number of
// ascending, deduplicated candidate slots plus a completeness status.
type ScheduleResult struct {
	Slots  []CandidateSlot `json:"slots"`
	Status string          `json:"status"`
}
