// File: database/repository/busy/queries.go
package busyRepo

import (
	"context"
	"fmt"
	"time"

	"meetsync/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByOwner returns a participant's busy periods overlapping the window,
// sorted by start. An empty result means "no known busy time".
func (r *mongoBusyPeriodRepo) GetByOwner(ctx context.Context, ownerID string, window models.TimeInterval) ([]models.BusyPeriod, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"ownerId": ownerID,
		"start":   bson.M{"$lt": window.End},
		"end":     bson.M{"$gt": window.Start},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch busy periods for %s: %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	var periods []models.BusyPeriod
	if err := cursor.All(ctx, &periods); err != nil {
		return nil, fmt.Errorf("error decoding busy periods for %s: %w", ownerID, err)
	}
	return periods, nil
}
