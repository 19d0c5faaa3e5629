package event

import (
	"context"
	"time"

	"github.com/gofrs/uuid"
)

const (
	PostCreated = "post.created"
	PostUpdated = "post.updated"
	PostDeleted = "post.deleted"
)

// PostEvent پیامی که بعد از هر تغییر موفق روی پست‌ها منتشر می‌شود
type PostEvent struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type"`
	PostID     int64     `json:"post_id"`
	Title      *string   `json:"title,omitempty"` // فقط در post.deleted خالی (nil) است
	Content    *string   `json:"content,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewPostEvent رویداد جدید با شناسه یکتا می‌سازد
// برای created/updated رکورد کامل ارسال می‌شود، حتی اگر فیلدی رشته خالی باشد
func NewPostEvent(eventType string, postID int64, title, content string) PostEvent {
	ev := PostEvent{
		ID:         uuid.Must(uuid.NewV4()),
		Type:       eventType,
		PostID:     postID,
		OccurredAt: time.Now().UTC(),
	}
	if eventType != PostDeleted {
		ev.Title = &title
		ev.Content = &content
	}
	return ev
}

// EventQueue سمت ورودی صف رویدادها (سرویس فقط Enqueue می‌کند)
type EventQueue interface {
	Enqueue(ev PostEvent) bool
}

// EventPublisher سمت خروجی: worker رویدادها را دسته‌ای به آن می‌دهد
type EventPublisher interface {
	Publish(ctx context.Context, events []PostEvent) error
}
