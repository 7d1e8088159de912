package mailer

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/resignly/pkg/logger"
)

// Sender delivers a prepared Email.
type Sender interface {
	Send(ctx context.Context, email *Email) error
}

// LogSender writes a summary of each email to a logger instead of sending
// it. It is used when no provider is configured.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender returns a LogSender writing to l.
func NewLogSender(l *slog.Logger) *LogSender {
	return &LogSender{logger: logger.Component(l, "mailer.log")}
}

// Send implements Sender.
func (s *LogSender) Send(ctx context.Context, email *Email) error {
	s.logger.InfoContext(ctx, "email not sent, no provider configured",
		slog.String("to", strings.Join(email.To, ", ")),
		slog.String("reply_to", email.ReplyTo),
		slog.String("subject", email.Subject),
		slog.Int("html_bytes", len(email.HTML)),
	)
	return nil
}
