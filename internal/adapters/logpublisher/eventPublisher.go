package logpublisher

import (
	eventPort "blogapi/internal/ports/event"
	"context"

	"go.uber.org/zap"
)

var _ eventPort.EventPublisher = (*EventPublisherLog)(nil)

// EventPublisherLog وقتی Redis تنظیم نشده، رویدادها فقط لاگ می‌شوند
type EventPublisherLog struct {
	Logger *zap.Logger
}

func NewEventPublisherLog(logger *zap.Logger) *EventPublisherLog {
	return &EventPublisherLog{Logger: logger}
}

func (p *EventPublisherLog) Publish(ctx context.Context, events []eventPort.PostEvent) error {
	for _, ev := range events {
		p.Logger.Info("📣 Post event",
			zap.String("eventID", ev.ID.String()),
			zap.String("type", ev.Type),
			zap.Int64("postID", ev.PostID),
			zap.Time("occurredAt", ev.OccurredAt),
		)
	}
	return nil
}
