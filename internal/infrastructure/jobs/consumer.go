package jobs

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Event is one consumed job event.
type Event struct {
	Name    string
	Payload []byte
}

// Handler processes a consumed event. Errors are logged and the event is
// skipped; the stream itself is the at-least-once buffer.
type Handler func(ctx context.Context, evt Event)

type Consumer struct {
	client *redis.Client
	stream string
	logger *log.Logger
}

func NewConsumer(client *redis.Client, stream string, logger *log.Logger) *Consumer {
	return &Consumer{client: client, stream: stream, logger: logger}
}

// Run blocks reading the stream until ctx is cancelled, dispatching each
// event to the handler. New consumers start at the stream tail.
func (c *Consumer) Run(ctx context.Context, handle Handler) error {
	if c == nil || c.client == nil {
		return errors.New("nil consumer")
	}
	if handle == nil {
		return errors.New("nil handler")
	}

	lastID := "$"
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		streams, err := c.client.XRead(ctx, &redis.XReadArgs{
			Streams: []string{c.stream, lastID},
			Count:   64,
			Block:   5 * time.Second,
		}).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			if c.logger != nil {
				c.logger.Printf("[Jobs] read failed, retrying | stream=%s err=%v", c.stream, err)
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Second):
			}
			continue
		}

		for _, s := range streams {
			for _, msg := range s.Messages {
				lastID = msg.ID
				handle(ctx, eventFromMessage(msg))
			}
		}
	}
}

func eventFromMessage(msg redis.XMessage) Event {
	evt := Event{}
	if v, ok := msg.Values["name"].(string); ok {
		evt.Name = v
	}
	if v, ok := msg.Values["payload"].(string); ok {
		evt.Payload = []byte(v)
	}
	return evt
}
