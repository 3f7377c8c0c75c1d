package cron

import (
	"context"
	"log"
	"time"

	"nivelfit/config"
	bookingRepo "nivelfit/database/repository/booking"
	"nivelfit/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypePurgeCancelled = "bookings:purge_cancelled"

// InitRetentionWorker runs the async worker that purges cancelled bookings
// past the retention window, plus the scheduler that enqueues the daily task.
func InitRetentionWorker(bookings bookingRepo.BookingRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWorkerDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypePurgeCancelled, handlePurgeTask(bookings))

	go func() {
		log.Println("[RetentionWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[RetentionWorker] worker stopped: %v", err)
		}
	}()

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register("@daily", asynq.NewTask(TypePurgeCancelled, nil)); err != nil {
		log.Printf("[RetentionWorker] failed to register purge schedule: %v", err)
		return
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[RetentionWorker] scheduler stopped: %v", err)
		}
	}()
}

func handlePurgeTask(bookings bookingRepo.BookingRepository) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, t *asynq.Task) error {
		logger := utils.GetLogger()

		retentionDays := config.AppConfig.BookingRetentionDays
		if retentionDays <= 0 {
			retentionDays = 90
		}
		cutoff := time.Now().AddDate(0, 0, -retentionDays)

		removed, err := bookings.DeleteCancelledBefore(cutoff)
		if err != nil {
			logger.Error("Purge of cancelled bookings failed", zap.Error(err))
			return err
		}
		logger.Info("Purged cancelled bookings",
			zap.Int64("removed", removed),
			zap.String("cutoff", cutoff.Format("2006-01-02")))
		return nil
	}
}
