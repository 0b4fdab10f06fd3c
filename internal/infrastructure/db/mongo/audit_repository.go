package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shopease/console-gateway/internal/core/domain"
)

const auditCollection = "console_audit_events"

// AuditRepository persists the console's authorization trail: logins, logouts,
// session load outcomes, and guard decisions.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type auditDoc struct {
	ID         string `bson:"_id"`
	Action     string `bson:"action"`
	Role       string `bson:"role,omitempty"`
	UserID     string `bson:"user_id,omitempty"`
	Path       string `bson:"path,omitempty"`
	Decision   string `bson:"decision,omitempty"`
	Outcome    string `bson:"outcome,omitempty"`
	OccurredAt int64  `bson:"occurred_at"`
}

// Insert appends one event.
func (r *AuditRepository) Insert(ctx context.Context, event domain.AuditEvent) error {
	doc := auditDoc{
		ID:         event.ID,
		Action:     event.Action,
		Role:       event.Role,
		UserID:     event.UserID,
		Path:       event.Path,
		Decision:   event.Decision,
		Outcome:    event.Outcome,
		OccurredAt: event.OccurredAt.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// Recent returns the newest events, most recent first.
func (r *AuditRepository) Recent(ctx context.Context, limit int64) ([]domain.AuditEvent, error) {
	if limit <= 0 {
		limit = 50
	}

	opts := options.Find().SetSort(bson.D{{Key: "occurred_at", Value: -1}}).SetLimit(limit)
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find audit events: %w", err)
	}
	defer cur.Close(ctx)

	var events []domain.AuditEvent
	for cur.Next(ctx) {
		var doc auditDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode audit event: %w", err)
		}
		events = append(events, domain.AuditEvent{
			ID:         doc.ID,
			Action:     doc.Action,
			Role:       doc.Role,
			UserID:     doc.UserID,
			Path:       doc.Path,
			Decision:   doc.Decision,
			Outcome:    doc.Outcome,
			OccurredAt: time.Unix(doc.OccurredAt, 0).UTC(),
		})
	}
	return events, cur.Err()
}
