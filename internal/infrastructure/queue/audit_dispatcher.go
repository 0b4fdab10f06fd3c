package queue

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shopease/console-gateway/internal/core/domain"
)

const (
	defaultWorkers = 2
	channelBuffer  = 256
)

// AuditSink is the persistence target for audit events.
type AuditSink interface {
	Insert(ctx context.Context, event domain.AuditEvent) error
}

// AuditDispatcher decouples audit recording from the operations that produce
// events: Record never blocks the caller, workers drain a buffered channel
// into the sink. When the buffer is full the event is dropped and logged —
// the trail is best-effort and must never stall a login or a navigation.
type AuditDispatcher struct {
	events  chan domain.AuditEvent
	sink    AuditSink
	log     zerolog.Logger
	workers int
}

// NewAuditDispatcher creates a dispatcher with numWorkers drain goroutines.
// If numWorkers <= 0, defaultWorkers is used.
func NewAuditDispatcher(numWorkers int, sink AuditSink, log zerolog.Logger) *AuditDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	return &AuditDispatcher{
		events:  make(chan domain.AuditEvent, channelBuffer),
		sink:    sink,
		log:     log,
		workers: numWorkers,
	}
}

// Start launches the worker goroutines. Workers stop when ctx is cancelled.
func (d *AuditDispatcher) Start(ctx context.Context) {
	for i := 0; i < d.workers; i++ {
		go d.runWorker(ctx, i)
	}
}

// Record enqueues the event, assigning an ID and a timestamp when absent.
// A zero OccurredAt would persist as year one and sort behind every real
// event in the trail. Implements ports.AuditRecorder.
func (d *AuditDispatcher) Record(_ context.Context, event domain.AuditEvent) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	select {
	case d.events <- event:
	default:
		d.log.Warn().Str("action", event.Action).Msg("audit buffer full, event dropped")
	}
}

func (d *AuditDispatcher) runWorker(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-d.events:
			if !ok {
				return
			}
			if err := d.sink.Insert(ctx, event); err != nil {
				d.log.Error().Err(err).
					Str("action", event.Action).
					Int("worker_id", id).
					Msg("audit event persistence failed")
			}
		}
	}
}
