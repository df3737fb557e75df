package adapter

import (
	"strings"

	"github.com/MKhiriev/go-profile-keeper/internal/logger"
)

// restyLogger routes resty's internal messages into the client log, so they
// never reach the terminal the TUI draws on.
type restyLogger struct {
	log *logger.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.log.Error().Str("component", "resty").Msgf(strings.TrimSpace(format), v...)
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.log.Warn().Str("component", "resty").Msgf(strings.TrimSpace(format), v...)
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.log.Debug().Str("component", "resty").Msgf(strings.TrimSpace(format), v...)
}
