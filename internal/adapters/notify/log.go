package notify

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"pms_marketplace/internal/adapters/observability"
	"pms_marketplace/internal/domain"
)

// Log writes every notification as a structured log line. It never fails.
type Log struct {
	l zerolog.Logger
}

func NewLog() *Log { return &Log{l: log.With().Str("component", "notify").Logger()} }

// NewLogTo is NewLog with an explicit logger.
func NewLogTo(l zerolog.Logger) *Log { return &Log{l: l} }

func (n *Log) Notify(_ context.Context, m domain.Notification) error {
	ev := n.l.Info()
	if m.Kind == domain.NotifyError {
		ev = n.l.Warn()
	}
	ev.Str("kind", string(m.Kind)).
		Str("session", m.SessionID).
		Str("subject", m.Subject).
		Msg(m.Message)
	observability.ObserveNotification("log", string(m.Kind), nil)
	return nil
}
