// File: database/repository/busy/interface.go
package busyRepo

import (
	"context"
	"log"
	"time"

	"meetsync/database"
	"meetsync/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BusyPeriodRepository stores participants' committed calendar intervals.
// It is the persistence half of the stand-in calendar provider.
type BusyPeriodRepository interface {
	ReplaceForOwner(ctx context.Context, ownerID string, periods []models.BusyPeriod) error
	AddForOwner(ctx context.Context, ownerID string, periods []models.BusyPeriod) error
	GetByOwner(ctx context.Context, ownerID string, window models.TimeInterval) ([]models.BusyPeriod, error)
	DeleteEndedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type mongoBusyPeriodRepo struct {
	coll *mongo.Collection
}

// NewMongoBusyPeriodRepo constructs a new MongoDB BusyPeriodRepository.
func NewMongoBusyPeriodRepo() BusyPeriodRepository {
	db := database.MongoClient.Database("meetsync")
	repo := &mongoBusyPeriodRepo{
		coll: db.Collection("busy_periods"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		log.Printf("busyRepo: failed to ensure indexes: %v", err)
	}
	return repo
}
