package client

import (
	"github.com/MKhiriev/go-timer-sync/internal/logger"
	"github.com/MKhiriev/go-timer-sync/models"
)

// logListener reports session notifications to the client log.
type logListener struct {
	logger *logger.Logger
}

func (l *logListener) OnStartSubscribe() {
	l.logger.Info().Msg("realtime updates enabled")
}

func (l *logListener) OnEndSubscribe() {
	l.logger.Warn().Msg("realtime updates lost, reconnecting")
}

func (l *logListener) OnError(err error) {
	l.logger.Err(err).Msg("timer sync error")
}

func (l *logListener) OnInsertEntry(entry models.Entry) {
	l.logEntry("entry inserted", entry)
}

func (l *logListener) OnUpdateEntry(entry models.Entry) {
	l.logEntry("entry updated", entry)
}

func (l *logListener) OnDeleteEntry(entry models.Entry) {
	l.logger.Info().Int64("entry_id", entry.ID).Msg("entry deleted")
}

func (l *logListener) logEntry(msg string, entry models.Entry) {
	l.logger.Info().
		Int64("entry_id", entry.ID).
		Str("description", entry.Description).
		Bool("running", entry.IsRunning()).
		Msg(msg)
}
