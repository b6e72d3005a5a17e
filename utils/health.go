package utils

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const healthCheckInterval = 60 * time.Second

// HealthStatus is the latest snapshot of the dependencies behind the
// proposal pipeline: the busy-period store, the propose result cache and
// the planning-session store.
type HealthStatus struct {
	Mongo        bool      `json:"mongo"`
	ResultCache  bool      `json:"resultCache"`
	SessionStore bool      `json:"sessionStore"`
	CheckedAt    time.Time `json:"checkedAt"`
}

func (h HealthStatus) healthy() bool {
	return h.Mongo && h.ResultCache && h.SessionStore
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the last snapshot taken by the monitor.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor pings mongo and both redis clients on an interval and
// keeps the snapshot served by /health current. Degradations are logged;
// the monitor itself never fails.
func StartHealthMonitor(mongoClient *mongo.Client) {
	logger := GetLogger()

	go func() {
		ticker := time.NewTicker(healthCheckInterval)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			status := HealthStatus{
				Mongo:        mongoClient.Ping(ctx, nil) == nil,
				ResultCache:  GetCacheClient().Ping(ctx).Err() == nil,
				SessionStore: GetSessionCacheClient().Ping(ctx).Err() == nil,
				CheckedAt:    time.Now().UTC(),
			}
			if !status.healthy() {
				logger.Warn("Dependency health degraded",
					zap.Bool("mongo", status.Mongo),
					zap.Bool("resultCache", status.ResultCache),
					zap.Bool("sessionStore", status.SessionStore))
			}

			healthMu.Lock()
			currentHealth = status
			healthMu.Unlock()
		}
	}()
}
