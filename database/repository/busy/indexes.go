// File: database/repository/busy/indexes.go
package busyRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the busy_periods collection.
func (r *mongoBusyPeriodRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Compound index for ownerId and start (primary query pattern).
		{
			Keys:    bson.D{{Key: "ownerId", Value: 1}, {Key: "start", Value: 1}},
			Options: options.Index().SetName("owner_start_idx"),
		},
		// Index on end for the janitor's purge query.
		{
			Keys:    bson.D{{Key: "end", Value: 1}},
			Options: options.Index().SetName("end_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create busy period indexes: %w", err)
	}
	return nil
}
