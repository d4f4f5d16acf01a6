package backends

import (
	"github.com/sirupsen/logrus"

	"github.com/logtimer/logtimer"
)

// Logrus forwards timer records to a logrus.Logger.
type Logrus struct {
	logger *logrus.Logger
}

// NewLogrus creates a backend that logs through the given logger.
func NewLogrus(logger *logrus.Logger) *Logrus {
	return &Logrus{logger: logger}
}

// Enabled reports whether the logger would write at the given level.
func (b *Logrus) Enabled(level logtimer.Level, _ string) bool {
	if level >= logtimer.Disabled {
		return false
	}

	return b.logger.IsLevelEnabled(logrusLevel(level))
}

// Log writes the record with the target and origin as entry fields.
func (b *Logrus) Log(r logtimer.Record) {
	b.logger.WithFields(logrus.Fields{
		"target": r.Target,
		"module": r.Origin.Package,
		"file":   r.Origin.File,
		"line":   r.Origin.Line,
	}).Log(logrusLevel(r.Level), r.Message)
}

func logrusLevel(level logtimer.Level) logrus.Level {
	switch level {
	case logtimer.TraceLevel:
		return logrus.TraceLevel
	case logtimer.DebugLevel:
		return logrus.DebugLevel
	case logtimer.InfoLevel:
		return logrus.InfoLevel
	case logtimer.WarnLevel:
		return logrus.WarnLevel
	}

	return logrus.ErrorLevel
}
