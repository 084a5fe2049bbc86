package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/maualmeyracba/cronoapp-sub001/config"
	"github.com/maualmeyracba/cronoapp-sub001/models"
)

// AuditSink receives audit events on every shift state transition and
// replacement assignment. Emission is best-effort: a failed audit write
// must never fail the business operation it describes.
type AuditSink interface {
	Emit(ctx context.Context, event *models.AuditEvent)
}

type auditRepository struct {
	collection *mongo.Collection
	log        *logrus.Logger
}

func NewAuditRepository(db *mongo.Database, log *logrus.Logger) AuditSink {
	return &auditRepository{
		collection: db.Collection(config.AuditEventCollection),
		log:        log,
	}
}

func (r *auditRepository) Emit(ctx context.Context, event *models.AuditEvent) {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	r.log.WithFields(logrus.Fields{
		"actor":     event.ActorID,
		"action":    event.Action,
		"shift_id":  event.ShiftID,
		"objective": event.ObjectiveID,
	}).Info(event.Detail)

	if _, err := r.collection.InsertOne(ctx, event); err != nil {
		r.log.WithError(err).Warn("failed to persist audit event")
	}
}
