package logtimer

import (
	"fmt"
	"strings"
)

// Level is the severity attached to the records a timer emits. Levels are
// ordered TraceLevel < DebugLevel < InfoLevel < WarnLevel < ErrorLevel.
type Level int8

const (
	// TraceLevel is the most verbose level.
	TraceLevel Level = iota

	// DebugLevel is the default level for new timers.
	DebugLevel

	// InfoLevel marks routine operational records.
	InfoLevel

	// WarnLevel marks records worth attention.
	WarnLevel

	// ErrorLevel is the most severe level.
	ErrorLevel

	// Disabled turns a timer off unconditionally, regardless of what the
	// backend reports as enabled.
	Disabled
)

func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "trace"
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	case Disabled:
		return "disabled"
	}

	return fmt.Sprintf("Level(%d)", int8(l))
}

// ParseLevel converts a level name such as "debug" or "WARN" into a Level.
// "never" is accepted as an alias for Disabled.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return TraceLevel, nil
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "disabled", "never", "off":
		return Disabled, nil
	}

	return Disabled, fmt.Errorf("unknown level %q", s)
}
