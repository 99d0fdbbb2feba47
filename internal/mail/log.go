package mail

import (
	"context"
	"log/slog"
)

// Logger is the slice of slog the Log sender needs.
type Logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
}

// Log is the test-mode sender: it records what would have been sent instead
// of delivering anything. Used whenever RESEND_API_KEY is unset.
type Log struct {
	logger Logger
}

// NewLog creates a logging sender. A nil logger falls back to slog.Default.
func NewLog(logger Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{logger: logger}
}

func (s *Log) Send(ctx context.Context, msg Message) error {
	s.logger.InfoContext(ctx, "test mode: email not delivered",
		"to", msg.To,
		"subject", msg.Subject,
		"bytes", len(msg.Text)+len(msg.HTML),
	)
	return nil
}
