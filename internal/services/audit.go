package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/quizcraft/internal/logger"
	"github.com/sbilibin2017/quizcraft/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=audit.go -destination=mock_audit.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AuditService records audit events in the log and, if configured, in Kafka.
type AuditService struct {
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewAuditService creates a new AuditService. kafkaWriter may be nil.
func NewAuditService(kafkaWriter KafkaWriter) *AuditService {
	return &AuditService{
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
}

// Publish logs the event and publishes it to Kafka. Failures are logged, never returned.
func (s *AuditService) Publish(ctx context.Context, actor, action, entity string, entityID int64) {
	event := models.AuditEvent{
		EventID:   uuid.NewString(),
		Timestamp: s.now().Unix(),
		Actor:     actor,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
	}

	logger.Log.Infow("audit",
		"event_id", event.EventID,
		"actor", event.Actor,
		"action", event.Action,
		"entity", event.Entity,
		"entity_id", event.EntityID,
	)

	if s.kafkaWriter == nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal audit event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish audit event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Debugw("Audit event published to Kafka", "event_id", event.EventID, "action", event.Action)
	}
}
