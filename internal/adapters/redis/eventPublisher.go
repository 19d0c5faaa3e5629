package redis

import (
	eventPort "blogapi/internal/ports/event"
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var _ eventPort.EventPublisher = (*EventPublisherRedis)(nil)

// EventPublisherRedis رویدادهای پست را روی یک کانال pub/sub منتشر می‌کند
// و همزمان در یک لیست با طول محدود (فید آخرین تغییرات) نگه می‌دارد
type EventPublisherRedis struct {
	Client   *redis.Client
	Channel  string
	FeedKey  string
	FeedSize int64
	Logger   *zap.Logger
}

func NewEventPublisherRedis(client *redis.Client, channel, feedKey string, feedSize int64, logger *zap.Logger) *EventPublisherRedis {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventPublisherRedis{
		Client:   client,
		Channel:  channel,
		FeedKey:  feedKey,
		FeedSize: feedSize,
		Logger:   logger,
	}
}

// Publish همه رویدادهای دسته در یک pipeline ارسال می‌شوند
func (r *EventPublisherRedis) Publish(ctx context.Context, events []eventPort.PostEvent) error {
	if len(events) == 0 {
		return nil
	}

	payloads, err := encodeEvents(events)
	if err != nil {
		return err
	}

	pipe := r.Client.TxPipeline()
	for _, payload := range payloads {
		pipe.Publish(ctx, r.Channel, payload)
		if r.FeedKey != "" {
			pipe.LPush(ctx, r.FeedKey, payload)
		}
	}
	if r.FeedKey != "" && r.FeedSize > 0 {
		pipe.LTrim(ctx, r.FeedKey, 0, r.FeedSize-1)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis publish %d events: %w", len(events), err)
	}

	r.Logger.Debug("Published events to redis", zap.String("channel", r.Channel), zap.Int("count", len(events)))
	return nil
}

func encodeEvents(events []eventPort.PostEvent) ([]string, error) {
	payloads := make([]string, 0, len(events))
	for _, ev := range events {
		b, err := json.Marshal(ev)
		if err != nil {
			return nil, fmt.Errorf("encode event %s: %w", ev.ID, err)
		}
		payloads = append(payloads, string(b))
	}
	return payloads, nil
}
