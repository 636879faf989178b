package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okPing(context.Context) error   { return nil }
func downPing(context.Context) error { return errors.New("connection refused") }

func TestHealthMonitor_Check(t *testing.T) {
	tests := []struct {
		name       string
		mongoPing  func(context.Context) error
		redisPing  func(context.Context) error
		wantStatus string
		wantRedis  *bool
	}{
		{name: "all up", mongoPing: okPing, redisPing: okPing, wantStatus: "ok", wantRedis: boolPtr(true)},
		{name: "redis disabled", mongoPing: okPing, wantStatus: "ok"},
		{name: "mongo down", mongoPing: downPing, redisPing: okPing, wantStatus: "degraded", wantRedis: boolPtr(true)},
		{name: "redis down", mongoPing: okPing, redisPing: downPing, wantStatus: "degraded", wantRedis: boolPtr(false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &HealthMonitor{mongoPing: tt.mongoPing, redisPing: tt.redisPing}

			got := m.Check(context.Background())
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantRedis, got.Redis)
			assert.False(t, got.CheckedAt.IsZero())
			assert.Equal(t, got, m.Status())
		})
	}
}

func TestHealthMonitor_StartTakesFirstSnapshot(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := &HealthMonitor{mongoPing: okPing, interval: 1 << 40}
	m.Start(ctx)

	status := m.Status()
	require.Equal(t, "ok", status.Status)
	assert.True(t, status.Mongo)
	assert.Nil(t, status.Redis)
}

func boolPtr(b bool) *bool { return &b }
