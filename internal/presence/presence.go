// Package presence tracks which identities are currently viewing a
// resource. Viewers heartbeat into a per-room Redis sorted set scored by
// timestamp; anyone seen within the TTL counts as active.
package presence

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

type Tracker struct {
	client *redis.Client
	ttl    time.Duration
}

func New(addr, password string, db int, ttl time.Duration) (*Tracker, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	err := client.Ping(context.Background()).Err()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	slog.Info("presence store connected", "addr", addr)

	return &Tracker{client: client, ttl: ttl}, nil
}

func roomKey(room string) string {
	return "presence:" + room
}

// Heartbeat marks userID as active in room.
func (t *Tracker) Heartbeat(ctx context.Context, room, userID string) error {
	key := roomKey(room)
	now := time.Now()

	err := t.client.ZAdd(ctx, key, &redis.Z{
		Score:  float64(now.Unix()),
		Member: userID,
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to record heartbeat: %w", err)
	}

	// Keep the key from outliving an abandoned room
	err = t.client.Expire(ctx, key, t.ttl*2).Err()
	if err != nil {
		slog.Warn("failed to set presence key expiry", "error", err, "room", room)
	}

	return nil
}

// Viewers returns the identities seen in room within the TTL, pruning
// stale entries as a side effect.
func (t *Tracker) Viewers(ctx context.Context, room string) ([]string, error) {
	key := roomKey(room)
	cutoff := time.Now().Add(-t.ttl).Unix()

	err := t.client.ZRemRangeByScore(ctx, key, "-inf", strconv.FormatInt(cutoff, 10)).Err()
	if err != nil {
		return nil, fmt.Errorf("failed to prune presence set: %w", err)
	}

	viewers, err := t.client.ZRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read presence set: %w", err)
	}

	return viewers, nil
}

func (t *Tracker) Close() error {
	return t.client.Close()
}
