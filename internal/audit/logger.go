package audit

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/inshape-booking/internal/models"
)

// Sink persists one booking attempt.
type Sink interface {
	Record(ctx context.Context, attempt *models.BookingAttempt) error
}

type attemptCreator interface {
	Create(ctx context.Context, attempt *models.BookingAttempt) error
}

// Logger writes attempts to the database.
type Logger struct {
	repo attemptCreator
}

func New(repo attemptCreator) *Logger {
	return &Logger{repo: repo}
}

func (l *Logger) Record(ctx context.Context, attempt *models.BookingAttempt) error {
	return l.repo.Create(ctx, attempt)
}

// LogSink is used when no database is configured.
type LogSink struct {
	log *zap.Logger
}

func NewLogSink(log *zap.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Record(_ context.Context, a *models.BookingAttempt) error {
	s.log.Info("booking attempt",
		zap.String("request_id", a.RequestID),
		zap.String("outcome", a.Outcome),
		zap.String("stage", a.Stage),
		zap.String("event_id", a.EventID),
		zap.String("service", a.Service),
		zap.String("date", a.Date),
		zap.String("time", a.Time),
	)
	return nil
}
