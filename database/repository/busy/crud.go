// File: database/repository/busy/crud.go
package busyRepo

import (
	"context"
	"fmt"
	"time"

	"meetsync/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ReplaceForOwner swaps out a participant's entire stored calendar. Used when
// the upstream calendar sync provides a fresh snapshot.
func (r *mongoBusyPeriodRepo) ReplaceForOwner(ctx context.Context, ownerID string, periods []models.BusyPeriod) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"ownerId": ownerID}); err != nil {
		return fmt.Errorf("failed to clear busy periods for %s: %w", ownerID, err)
	}
	return r.insert(ctx, ownerID, periods)
}

// AddForOwner appends busy periods without touching existing ones.
func (r *mongoBusyPeriodRepo) AddForOwner(ctx context.Context, ownerID string, periods []models.BusyPeriod) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return r.insert(ctx, ownerID, periods)
}

func (r *mongoBusyPeriodRepo) insert(ctx context.Context, ownerID string, periods []models.BusyPeriod) error {
	if len(periods) == 0 {
		return nil
	}
	docs := make([]interface{}, len(periods))
	for i, p := range periods {
		p.OwnerID = ownerID
		docs[i] = p
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert busy periods for %s: %w", ownerID, err)
	}
	return nil
}

// DeleteEndedBefore purges periods that ended before the cutoff. Called by
// the background janitor; stale busy data never affects proposals but keeps
// the collection growing.
func (r *mongoBusyPeriodRepo) DeleteEndedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"end": bson.M{"$lte": cutoff}})
	if err != nil {
		return 0, fmt.Errorf("failed to purge ended busy periods: %w", err)
	}
	return res.DeletedCount, nil
}
