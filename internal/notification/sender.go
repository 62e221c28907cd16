package notification

import (
	"context"

	"go.uber.org/zap"

	"vc-drover.io/drover/internal/domain"
	"vc-drover.io/drover/internal/pkg/logger"
)

// Outbound is one rendered notification bound for an external channel.
type Outbound struct {
	TenantID  domain.TenantID
	Recipient string
	Type      string
	Title     string
	Message   string
}

// Sender delivers notifications outside the inbox, typically by email. Sends
// are best-effort: the dispatcher logs a failure and moves on, so an
// implementation never gets a retry for the same event unless the whole
// projection batch is re-delivered.
type Sender interface {
	Send(ctx context.Context, out Outbound) error
}

// LogSender is the development sender. It writes the would-be email to the
// log and never fails.
type LogSender struct{}

// NewLogSender creates the log-only sender.
func NewLogSender() *LogSender { return &LogSender{} }

// Send implements Sender.
func (*LogSender) Send(_ context.Context, out Outbound) error {
	logger.Info("outbound notification",
		zap.String("tenant_id", out.TenantID.String()),
		zap.String("recipient", out.Recipient),
		zap.String("type", out.Type),
		zap.String("title", out.Title),
	)
	return nil
}
