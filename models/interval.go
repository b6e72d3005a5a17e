package models

import "time"

// TimeInterval represents a half-open [Start, End) range of UTC instants.
type TimeInterval struct {
	Start time.Time `bson:"start" json:"start"`
	End   time.Time `bson:"end" json:"end"`
}

// Valid reports whether the interval has positive length.
func (iv TimeInterval) Valid() bool {
	return iv.Start.Before(iv.End)
}

// Duration returns the interval length.
func (iv TimeInterval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Overlaps reports whether two half-open intervals share any instant.
func (iv TimeInterval) Overlaps(other TimeInterval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// BusyPeriod is an interval during which one participant is already committed.
type BusyPeriod struct {
	OwnerID string    `bson:"ownerId" json:"ownerId"`
	Start   time.Time `bson:"start" json:"start"`
	End     time.Time `bson:"end" json:"end"`
}

// Interval returns the busy period as a plain TimeInterval.
func (b BusyPeriod) Interval() TimeInterval {
	return TimeInterval{Start: b.Start, End: b.End}
}
