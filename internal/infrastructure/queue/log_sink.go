package queue

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/homeaid/care-portal/internal/core/ports"
)

// LogSink writes audit events to a logger. Used when no database is configured.
type LogSink struct {
	log zerolog.Logger
}

func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Write(_ context.Context, event ports.AuditEvent) error {
	e := s.log.Info().
		Str("audit", string(event.Type)).
		Str("email", event.Email).
		Time("at", event.At)
	if event.Role != "" {
		e = e.Str("role", string(event.Role))
	}
	e.Msg("audit event")
	return nil
}
