package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
// Redis is nil when session revocation runs without Redis.
type HealthStatus struct {
	Status    string    `json:"status"`
	Mongo     bool      `json:"mongo"`
	Redis     *bool     `json:"redis,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
}

// HealthMonitor periodically pings the backing stores and keeps the latest
// snapshot in memory.
type HealthMonitor struct {
	mongoPing func(ctx context.Context) error
	redisPing func(ctx context.Context) error
	interval  time.Duration

	mu      sync.RWMutex
	current HealthStatus
}

// NewHealthMonitor builds a monitor for the given clients. redisClient may be nil.
func NewHealthMonitor(mongoClient *mongo.Client, redisClient *redis.Client, interval time.Duration) *HealthMonitor {
	var redisPing func(ctx context.Context) error
	if redisClient != nil {
		redisPing = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	}
	return NewPingMonitor(func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) }, redisPing, interval)
}

// NewPingMonitor builds a monitor from arbitrary ping functions. A nil
// redisPing leaves Redis out of the snapshot.
func NewPingMonitor(mongoPing, redisPing func(ctx context.Context) error, interval time.Duration) *HealthMonitor {
	return &HealthMonitor{mongoPing: mongoPing, redisPing: redisPing, interval: interval}
}

// Check runs one round of pings and stores the result.
func (m *HealthMonitor) Check(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status := HealthStatus{
		Mongo:     m.mongoPing(ctx) == nil,
		CheckedAt: time.Now(),
	}
	healthy := status.Mongo
	if m.redisPing != nil {
		redisHealthy := m.redisPing(ctx) == nil
		status.Redis = &redisHealthy
		healthy = healthy && redisHealthy
	}
	status.Status = "degraded"
	if healthy {
		status.Status = "ok"
	}

	m.mu.Lock()
	m.current = status
	m.mu.Unlock()
	return status
}

// Status returns latest stored health snapshot.
func (m *HealthMonitor) Status() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Start takes a first snapshot synchronously, then refreshes it on every
// tick until ctx is cancelled.
func (m *HealthMonitor) Start(ctx context.Context) {
	m.Check(ctx)
	go func() {
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Check(ctx)
			}
		}
	}()
}
