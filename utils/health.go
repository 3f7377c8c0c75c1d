package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the latest dependency snapshot served by the health
// endpoint. Each Redis client this service runs gets its own named field so
// the output says which one is down.
type HealthStatus struct {
	Mongo        bool      `json:"mongo"`
	Cache        bool      `json:"cache"`
	SessionCache bool      `json:"sessionCache"`
	CheckedAt    time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

func setHealthStatus(h HealthStatus) {
	healthMu.Lock()
	currentHealth = h
	healthMu.Unlock()
}

// StartHealthMonitor pings Mongo, the trainer cache and the booking-session
// cache every minute and keeps the latest snapshot in memory.
func StartHealthMonitor(cache, sessions *redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			setHealthStatus(HealthStatus{
				Mongo:        mongoClient.Ping(ctx, nil) == nil,
				Cache:        cache.Ping(ctx).Err() == nil,
				SessionCache: sessions.Ping(ctx).Err() == nil,
				CheckedAt:    time.Now(),
			})
		}
	}()
}
