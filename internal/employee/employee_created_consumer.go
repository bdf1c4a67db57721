package employee

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"go-hrms/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// CreatedConsumer audits employee onboarding events. It deliberately
// does NOT seed default salary components: missing salary configuration
// must stay visible to HR rather than be papered over with defaults.
type CreatedConsumer struct {
	reader *kafkago.Reader
	logger *zap.Logger
}

func NewCreatedConsumer(broker, groupID string, logger ...*zap.Logger) *CreatedConsumer {
	l := zap.L().Named("employee.created_consumer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{broker},
		GroupID:     groupID,
		Topic:       events.EmployeeCreatedTopic,
		MinBytes:    1,
		MaxBytes:    10e6,
		MaxWait:     time.Second,
		StartOffset: kafkago.FirstOffset,
	})

	return &CreatedConsumer{reader: reader, logger: l}
}

func (c *CreatedConsumer) Run(ctx context.Context) error {
	c.logger.Info("employee created consumer started", zap.String("topic", events.EmployeeCreatedTopic))

	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				return c.reader.Close()
			}
			c.logger.Error("read message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			c.logger.Warn("dropping malformed employee created event", zap.Error(err))
			continue
		}

		c.logger.Info("employee onboarded",
			zap.String("employee_id", event.EmployeeID),
			zap.String("request_id", event.RequestID),
			zap.Time("occurred_at", event.OccurredAt),
		)
	}
}
