package producer

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-hrms/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeOutboxRepo struct {
	listPendingFn func(ctx context.Context, limit int) ([]kafka.OutboxEvent, error)
	markedSent    []string
	markedFailed  map[string]string
}

func (f *fakeOutboxRepo) WithTx(_ *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepo) Create(ctx context.Context, event kafka.OutboxEvent) error { return nil }

func (f *fakeOutboxRepo) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return f.listPendingFn(ctx, limit)
}

func (f *fakeOutboxRepo) MarkSent(ctx context.Context, id string) error {
	f.markedSent = append(f.markedSent, id)
	return nil
}

func (f *fakeOutboxRepo) MarkFailed(ctx context.Context, id string, reason string) error {
	if f.markedFailed == nil {
		f.markedFailed = map[string]string{}
	}
	f.markedFailed[id] = reason
	return nil
}

type fakeWriter struct {
	written   []kafkago.Message
	failTopic string
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if m.Topic == f.failTopic {
			return errors.New("broker unavailable")
		}
		f.written = append(f.written, m)
	}
	return nil
}

func pendingEvent(id, topic string) kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            id,
		RequestID:     "req-" + id,
		AggregateType: "leave",
		AggregateID:   "agg-" + id,
		EventType:     "leave.approved",
		Topic:         topic,
		Payload:       []byte(`{"leave_id":"` + id + `"}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestRelayBatch_PublishesAndMarksSent(t *testing.T) {
	repo := &fakeOutboxRepo{
		listPendingFn: func(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
			assert.Equal(t, relayBatchSize, limit)
			return []kafka.OutboxEvent{
				pendingEvent("ev-1", "hr.leave.approved.v1"),
				pendingEvent("ev-2", "hr.leave.approved.v1"),
			}, nil
		},
	}
	writer := &fakeWriter{}

	err := relayBatch(context.Background(), repo, writer, zap.NewNop())

	assert.NoError(t, err)
	assert.Len(t, writer.written, 2)
	assert.Equal(t, []string{"ev-1", "ev-2"}, repo.markedSent)
	assert.Empty(t, repo.markedFailed)

	msg := writer.written[0]
	assert.Equal(t, "hr.leave.approved.v1", msg.Topic)
	assert.Equal(t, []byte("agg-ev-1"), msg.Key)

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "leave.approved", headers["event_type"])
	assert.Equal(t, "req-ev-1", headers["request_id"])
}

func TestRelayBatch_FailureMarksFailedAndContinues(t *testing.T) {
	repo := &fakeOutboxRepo{
		listPendingFn: func(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
			return []kafka.OutboxEvent{
				pendingEvent("ev-1", "hr.broken.v1"),
				pendingEvent("ev-2", "hr.leave.approved.v1"),
			}, nil
		},
	}
	writer := &fakeWriter{failTopic: "hr.broken.v1"}

	err := relayBatch(context.Background(), repo, writer, zap.NewNop())

	assert.NoError(t, err)
	assert.Equal(t, []string{"ev-2"}, repo.markedSent)
	assert.Equal(t, "broker unavailable", repo.markedFailed["ev-1"])
	assert.Len(t, writer.written, 1)
}

func TestRelayBatch_EmptyOutboxWritesNothing(t *testing.T) {
	repo := &fakeOutboxRepo{
		listPendingFn: func(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
			return nil, nil
		},
	}
	writer := &fakeWriter{}

	err := relayBatch(context.Background(), repo, writer, zap.NewNop())

	assert.NoError(t, err)
	assert.Empty(t, writer.written)
	assert.Empty(t, repo.markedSent)
}

func TestRelayBatch_ListErrorPropagates(t *testing.T) {
	repo := &fakeOutboxRepo{
		listPendingFn: func(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
			return nil, errors.New("db down")
		},
	}

	err := relayBatch(context.Background(), repo, &fakeWriter{}, zap.NewNop())

	assert.EqualError(t, err, "db down")
}
