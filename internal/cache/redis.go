// internal/cache/redis.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Rdb is the global Redis client. Connect it once at application startup.
// When it stays nil (Redis disabled), action publishing is a no-op.
var Rdb *redis.Client

// DefaultQueueName is the Redis list (queue) name for match action logs.
var DefaultQueueName = "wordmines_actions"

// MatchActionRecord holds the minimal info needed by the historian service.
type MatchActionRecord struct {
	MatchID       uuid.UUID              `json:"match_id"`
	ActionIndex   int                    `json:"action_index"`
	ActorUsername string                 `json:"actor_username"`
	ActionType    string                 `json:"action_type"`
	ActionPayload map[string]interface{} `json:"action_payload"`
	Timestamp     int64                  `json:"timestamp"`
}

// ConnectRedis initializes the global Redis client and pings it.
func ConnectRedis(addr string, db int) error {
	Rdb = redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	return nil
}

// PublishMatchAction serializes the given record to JSON, then pushes it to
// the Redis queue. This does not block the calling logic beyond a quick
// network send, and is a no-op when Redis is not connected.
func PublishMatchAction(ctx context.Context, record MatchActionRecord) error {
	if Rdb == nil {
		return nil
	}
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal MatchActionRecord: %w", err)
	}
	if err := Rdb.RPush(ctx, DefaultQueueName, data).Err(); err != nil {
		return fmt.Errorf("failed to RPush to Redis list %q: %w", DefaultQueueName, err)
	}
	return nil
}
