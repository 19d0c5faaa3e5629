package workers

import (
	eventPort "blogapi/internal/ports/event"
	"context"
	"time"

	"go.uber.org/zap"
)

var _ eventPort.EventQueue = (*EventWorker)(nil)

type EventWorker struct {
	Publisher     eventPort.EventPublisher
	BatchSize     int           // حداکثر تعداد رویداد در هر Publish
	FlushInterval time.Duration // فاصله ارسال دسته‌های ناقص
	Logger        *zap.Logger

	queue chan eventPort.PostEvent
}

func NewEventWorker(
	publisher eventPort.EventPublisher,
	bufferSize int,
	batchSize int,
	flushInterval time.Duration,
	logger *zap.Logger,
) *EventWorker {
	if bufferSize <= 0 {
		bufferSize = 1024
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	if flushInterval <= 0 {
		flushInterval = time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventWorker{
		Publisher:     publisher,
		BatchSize:     batchSize,
		FlushInterval: flushInterval,
		Logger:        logger,
		queue:         make(chan eventPort.PostEvent, bufferSize),
	}
}

// Enqueue بدون بلاک شدن رویداد را در صف می‌گذارد؛ اگر صف پر باشد false برمی‌گرداند
func (w *EventWorker) Enqueue(ev eventPort.PostEvent) bool {
	select {
	case w.queue <- ev:
		return true
	default:
		return false
	}
}

// Run گوش دادن به صف و ارسال دسته‌ای رویدادها تا زمان لغو ctx
func (w *EventWorker) Run(ctx context.Context) {
	w.Logger.Info("🚀 EventWorker started", zap.Int("batchSize", w.BatchSize), zap.Duration("flushInterval", w.FlushInterval))

	ticker := time.NewTicker(w.FlushInterval)
	defer ticker.Stop()

	batch := make([]eventPort.PostEvent, 0, w.BatchSize)
	for {
		select {
		case <-ctx.Done():
			// هرچه در صف مانده قبل از خروج ارسال شود
			batch = w.drain(batch)
			w.flush(context.Background(), batch)
			w.Logger.Info("🛑 EventWorker stopped")
			return
		case ev := <-w.queue:
			batch = append(batch, ev)
			if len(batch) >= w.BatchSize {
				w.flush(ctx, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				w.flush(ctx, batch)
				batch = batch[:0]
			}
		}
	}
}

func (w *EventWorker) drain(batch []eventPort.PostEvent) []eventPort.PostEvent {
	for {
		select {
		case ev := <-w.queue:
			batch = append(batch, ev)
		default:
			return batch
		}
	}
}

// flush ارسال دسته به publisher در تکه‌های BatchSize تایی
func (w *EventWorker) flush(ctx context.Context, events []eventPort.PostEvent) {
	for i := 0; i < len(events); i += w.BatchSize {
		end := min(i+w.BatchSize, len(events))
		chunk := events[i:end]

		if err := w.Publisher.Publish(ctx, chunk); err != nil {
			w.Logger.Error("❌ Error publishing events", zap.Int("count", len(chunk)), zap.Error(err))
			continue
		}
		w.Logger.Debug("📦 Published events", zap.Int("count", len(chunk)))
	}
}
