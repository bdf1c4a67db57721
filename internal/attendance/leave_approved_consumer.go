package attendance

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"go-hrms/internal/events"
	"go-hrms/internal/payroll"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// WorkweekSource resolves how many days per week an employee works, so
// LEAVE rows are only written for dates the employee was expected in.
type WorkweekSource interface {
	GetWorkingDaysPerWeek(ctx context.Context, employeeID string) (int, error)
}

type LeaveApprovedConsumer struct {
	reader   *kafkago.Reader
	repo     Repository
	workweek WorkweekSource
	logger   *zap.Logger
}

func NewLeaveApprovedConsumer(
	broker string,
	groupID string,
	repo Repository,
	workweek WorkweekSource,
	logger ...*zap.Logger,
) *LeaveApprovedConsumer {
	l := zap.L().Named("attendance.leave_consumer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{broker},
		GroupID:     groupID,
		Topic:       events.LeaveApprovedTopic,
		MinBytes:    1,
		MaxBytes:    10e6,
		MaxWait:     time.Second,
		StartOffset: kafkago.FirstOffset,
	})

	return &LeaveApprovedConsumer{
		reader:   reader,
		repo:     repo,
		workweek: workweek,
		logger:   l,
	}
}

func (c *LeaveApprovedConsumer) Run(ctx context.Context) error {
	c.logger.Info("leave approved consumer started", zap.String("topic", events.LeaveApprovedTopic))

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				return c.reader.Close()
			}
			c.logger.Error("fetch message failed", zap.Error(err))
			continue
		}

		if err := c.handle(ctx, msg.Value); err != nil {
			// Leave the offset uncommitted so the message is retried.
			c.logger.Error("handle leave approved event failed",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			continue
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.Error("commit message failed", zap.Error(err))
		}
	}
}

func (c *LeaveApprovedConsumer) handle(ctx context.Context, payload []byte) error {
	var event events.LeaveApprovedEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		// Malformed payloads never become processable; drop them.
		c.logger.Warn("dropping malformed leave approved event", zap.Error(err))
		return nil
	}

	start, err := time.Parse("2006-01-02", event.StartDate)
	if err != nil {
		c.logger.Warn("dropping event with bad start date", zap.String("leave_id", event.LeaveID))
		return nil
	}
	end, err := time.Parse("2006-01-02", event.EndDate)
	if err != nil {
		c.logger.Warn("dropping event with bad end date", zap.String("leave_id", event.LeaveID))
		return nil
	}

	policy, err := c.workweek.GetWorkingDaysPerWeek(ctx, event.EmployeeID)
	if err != nil {
		policy = 5
	}

	written := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if !payroll.IsWorkingDay(d.Weekday(), policy) {
			continue
		}
		if err := c.repo.UpsertLeaveDay(ctx, event.EmployeeID, d); err != nil {
			return err
		}
		written++
	}

	c.logger.Info("leave days materialized",
		zap.String("leave_id", event.LeaveID),
		zap.String("employee_id", event.EmployeeID),
		zap.Int("days", written),
	)

	return nil
}
