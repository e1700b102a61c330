package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/quizcraft/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditService_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKafka := NewMockKafkaWriter(ctrl)
	svc := NewAuditService(mockKafka)
	svc.now = func() time.Time { return time.Unix(1700000000, 0) }

	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)

			var event models.AuditEvent
			require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
			assert.Equal(t, string(msgs[0].Key), event.EventID)
			assert.NotEmpty(t, event.EventID)
			assert.Equal(t, int64(1700000000), event.Timestamp)
			assert.Equal(t, "alice", event.Actor)
			assert.Equal(t, models.ActionQuizCreate, event.Action)
			assert.Equal(t, "quiz", event.Entity)
			assert.Equal(t, int64(7), event.EntityID)
			return nil
		})

	svc.Publish(context.Background(), "alice", models.ActionQuizCreate, "quiz", 7)
}

func TestAuditService_Publish_KafkaError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKafka := NewMockKafkaWriter(ctrl)
	svc := NewAuditService(mockKafka)

	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("kafka error")).Times(1)

	assert.NotPanics(t, func() {
		svc.Publish(context.Background(), "alice", models.ActionLogin, "user", 1)
	})
}

func TestAuditService_Publish_NoKafka(t *testing.T) {
	svc := NewAuditService(nil)

	assert.NotPanics(t, func() {
		svc.Publish(context.Background(), "alice", models.ActionRegister, "user", 1)
	})
}
