package notify

import (
	"context"

	"go.uber.org/zap"
)

// LogMailer writes outbound notification mail to the log instead of a real
// mail provider. It stands in wherever mail is disabled in configuration.
type LogMailer struct {
	fromName string
	fromAddr string
	logger   *zap.Logger
}

func NewLogMailer(fromName, fromAddr string, logger *zap.Logger) *LogMailer {
	return &LogMailer{
		fromName: fromName,
		fromAddr: fromAddr,
		logger:   logger.Named("mailer"),
	}
}

func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	m.logger.Info("Outbound mail",
		zap.String("from", m.fromName+" <"+m.fromAddr+">"),
		zap.String("to", to),
		zap.String("subject", subject),
		zap.Int("body_bytes", len(body)))
	return nil
}
