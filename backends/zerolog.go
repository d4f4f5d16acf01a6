package backends

import (
	"github.com/rs/zerolog"

	"github.com/logtimer/logtimer"
)

// Zerolog forwards timer records to a zerolog.Logger. Enablement follows
// the logger's own level and the zerolog global level, so timers obey
// whatever filtering the host application already configured.
type Zerolog struct {
	logger zerolog.Logger
}

// NewZerolog creates a backend that logs through the given logger.
func NewZerolog(logger zerolog.Logger) *Zerolog {
	return &Zerolog{logger: logger}
}

// Enabled reports whether the logger would write at the given level.
func (b *Zerolog) Enabled(level logtimer.Level, _ string) bool {
	zl := zerologLevel(level)
	if zl == zerolog.Disabled {
		return false
	}

	return zl >= b.logger.GetLevel() && zl >= zerolog.GlobalLevel()
}

// Log writes the record with the target and origin as structured fields.
func (b *Zerolog) Log(r logtimer.Record) {
	b.logger.WithLevel(zerologLevel(r.Level)).
		Str("target", r.Target).
		Str("module", r.Origin.Package).
		Str("file", r.Origin.File).
		Int("line", r.Origin.Line).
		Msg(r.Message)
}

func zerologLevel(level logtimer.Level) zerolog.Level {
	switch level {
	case logtimer.TraceLevel:
		return zerolog.TraceLevel
	case logtimer.DebugLevel:
		return zerolog.DebugLevel
	case logtimer.InfoLevel:
		return zerolog.InfoLevel
	case logtimer.WarnLevel:
		return zerolog.WarnLevel
	case logtimer.ErrorLevel:
		return zerolog.ErrorLevel
	}

	return zerolog.Disabled
}
