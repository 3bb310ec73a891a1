// Package zerolog provides an adapter from the logfan Sink interface to a
// zerolog logger.
package zerolog

import (
	"github.com/rs/zerolog"

	"github.com/logfan/logfan"
)

type zerologSink struct {
	logger *zerolog.Logger
}

// NewSink returns a logfan.Sink that forwards statements to a zerolog
// logger, mapping severities onto zerolog levels and attaching the
// category and call site as fields. Zerolog performs its own level
// filtering on top.
func NewSink(logger *zerolog.Logger) logfan.Sink {
	return zerologSink{logger: logger}
}

func (s zerologSink) Log(st logfan.Statement) error {
	var e *zerolog.Event
	switch st.Severity {
	case logfan.Debug:
		e = s.logger.Debug()
	case logfan.Info:
		e = s.logger.Info()
	case logfan.Warning:
		e = s.logger.Warn()
	case logfan.Error:
		e = s.logger.Error()
	default:
		e = s.logger.Log()
	}
	e.Str("category", string(st.Category)).
		Str("caller", st.Site.String()).
		Msg(st.Message)
	return nil
}
