package intelligence

import (
	"context"
	"time"

	"meetsync/models"
)

// IntentService extracts a best-effort MeetingIntent from a free-text
// request. Every field of the result is optional; the scheduling layer
// applies documented defaults for whatever is missing. Relative day terms
// ("tomorrow", "friday") are resolved against refTime in the given timezone
// before the intent leaves this layer.
type IntentService interface {
	ParseIntent(ctx context.Context, message string, refTime time.Time, timezone string) (models.MeetingIntent, error)
}
