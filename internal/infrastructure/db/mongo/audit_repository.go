package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/homeaid/care-portal/internal/core/ports"
)

const auditCollection = "audit_events"

// AuditRepository implements ports.AuditSink on the audit_events collection.
type AuditRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection), now: time.Now}
}

func (r *AuditRepository) Write(ctx context.Context, event ports.AuditEvent) error {
	if _, err := r.coll.InsertOne(ctx, r.document(event)); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

func (r *AuditRepository) document(event ports.AuditEvent) bson.M {
	doc := bson.M{
		"type":        string(event.Type),
		"email":       event.Email,
		"occurred_at": event.At.UTC(),
		"recorded_at": r.now().UTC(),
	}
	if event.Role != "" {
		doc["role"] = string(event.Role)
	}
	return doc
}
