// Package logrus provides an adapter from the logfan Sink interface to a
// Logrus logger.
package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/logfan/logfan"
)

type logrusSink struct {
	logrus.FieldLogger
}

// NewSink returns a logfan.Sink that forwards statements to a Logrus
// logger, mapping severities onto Logrus levels and attaching the category
// and call site as fields. Logrus performs its own level filtering on top.
func NewSink(logger logrus.FieldLogger) logfan.Sink {
	return &logrusSink{logger}
}

func (s *logrusSink) Log(st logfan.Statement) error {
	entry := s.WithFields(logrus.Fields{
		"category": string(st.Category),
		"caller":   st.Site.String(),
	})
	switch st.Severity {
	case logfan.Debug:
		entry.Debug(st.Message)
	case logfan.Info:
		entry.Info(st.Message)
	case logfan.Warning:
		entry.Warn(st.Message)
	case logfan.Error:
		entry.Error(st.Message)
	default:
		entry.Print(st.Message)
	}
	return nil
}
