package calendar

import (
	"context"

	"meetsync/models"
)

// Provider supplies participants' busy periods for a bounded horizon. An
// empty result means "no known busy time". Fetch failures must surface as
// errors and are never treated as availability.
type Provider interface {
	FetchBusyPeriods(ctx context.Context, participantIDs []string, window models.TimeInterval) ([]models.BusyPeriod, error)
}
