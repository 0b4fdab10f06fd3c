package ports

import (
	"context"

	"github.com/shopease/console-gateway/internal/core/domain"
)

// AuditRecorder appends events to the console's authorization trail. Recording
// is best-effort: failures are logged by the implementation and never fail the
// operation that produced the event.
type AuditRecorder interface {
	Record(ctx context.Context, event domain.AuditEvent)
}

// AuditReader serves the trail back to the console, newest first.
type AuditReader interface {
	Recent(ctx context.Context, limit int64) ([]domain.AuditEvent, error)
}
