package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/redis/go-redis/v9"
)

// Queue accepts named job events with a small JSON payload. Delivery is
// at-least-once; emitters treat Enqueue as fire-and-forget.
type Queue interface {
	Enqueue(ctx context.Context, name string, payload any) error
}

type RedisQueue struct {
	client *redis.Client
	stream string
	logger *log.Logger
}

// NewRedisQueue writes job events onto a Redis stream. A nil client (Redis
// down at startup) yields a queue that drops events with a log line instead
// of failing the operations that emit them.
func NewRedisQueue(client *redis.Client, stream string, logger *log.Logger) *RedisQueue {
	return &RedisQueue{client: client, stream: stream, logger: logger}
}

func (q *RedisQueue) Enqueue(ctx context.Context, name string, payload any) error {
	if q == nil || q.client == nil {
		if q != nil && q.logger != nil {
			q.logger.Printf("[Jobs] queue unavailable, dropping event | name=%s", name)
		}
		return errors.New("job queue unavailable")
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	if err := q.client.XAdd(ctx, &redis.XAddArgs{
		Stream: q.stream,
		Values: map[string]any{
			"name":    name,
			"payload": string(b),
		},
	}).Err(); err != nil {
		if q.logger != nil {
			q.logger.Printf("[Jobs] enqueue failed | name=%s err=%v", name, err)
		}
		return err
	}

	return nil
}

var _ Queue = (*RedisQueue)(nil)
