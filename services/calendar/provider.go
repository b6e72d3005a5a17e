package calendar

import (
	"context"
	"fmt"
	"sync"
	"time"

	busyRepo "meetsync/database/repository/busy"
	"meetsync/models"

	"go.uber.org/zap"
)

// fetchTimeout bounds each participant's calendar lookup.
const fetchTimeout = 5 * time.Second

// DefaultProvider reads busy periods from the busy-period repository,
// fetching each participant in parallel.
type DefaultProvider struct {
	Repo   busyRepo.BusyPeriodRepository
	Logger *zap.Logger
}

// FetchBusyPeriods gathers every participant's busy periods for the window.
// Any participant's fetch failure fails the whole call: a missing calendar
// must never masquerade as a fully free one.
func (p *DefaultProvider) FetchBusyPeriods(ctx context.Context, participantIDs []string, window models.TimeInterval) ([]models.BusyPeriod, error) {
	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		periods  []models.BusyPeriod
		fetchErr error
	)

	for _, id := range participantIDs {
		wg.Add(1)
		go func(ownerID string) {
			defer wg.Done()

			fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
			defer cancel()

			got, err := p.Repo.GetByOwner(fetchCtx, ownerID, window)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				p.Logger.Error("Failed to fetch busy periods",
					zap.String("ownerId", ownerID), zap.Error(err))
				if fetchErr == nil {
					fetchErr = fmt.Errorf("calendar fetch for %s failed: %w", ownerID, err)
				}
				return
			}
			periods = append(periods, got...)
		}(id)
	}
	wg.Wait()

	if fetchErr != nil {
		return nil, fetchErr
	}
	return periods, nil
}
