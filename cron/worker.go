package cron

import (
	"context"
	"log"
	"time"

	"meetsync/config"
	busyRepo "meetsync/database/repository/busy"

	"github.com/hibiken/asynq"
)

const TypeCalendarPurge = "calendar:purgeExpired"

// keepEndedFor keeps already-ended busy periods around briefly so recent
// proposals can still be audited against the data they saw.
const keepEndedFor = 24 * time.Hour

// InitJanitorWorker runs the background janitor: an async worker plus a
// scheduler that periodically purges busy periods which ended in the past.
func InitJanitorWorker(repo busyRepo.BusyPeriodRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisJanitorDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCalendarPurge, handlePurgeTask(repo))

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register("@every 6h", asynq.NewTask(TypeCalendarPurge, nil)); err != nil {
		log.Printf("[Janitor] failed to register purge schedule: %v", err)
	}

	go func() {
		log.Println("[Janitor] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[Janitor] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[Janitor] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[Janitor] scheduler stopped: %v", err)
		}
	}()
}

func handlePurgeTask(repo busyRepo.BusyPeriodRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		cutoff := time.Now().UTC().Add(-keepEndedFor)
		deleted, err := repo.DeleteEndedBefore(ctx, cutoff)
		if err != nil {
			log.Printf("[Janitor] purge failed: %v", err)
			return err
		}
		log.Printf("[Janitor] purged %d ended busy periods (cutoff %s)", deleted, cutoff.Format(time.RFC3339))
		return nil
	}
}
