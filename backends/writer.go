package backends

import (
	"io"
	"log"
	"strings"

	"github.com/logtimer/logtimer"
)

// Writer renders timer records as plain text lines on an io.Writer, one
// per record:
//
//	2019/05/30 21:41:41 DEBUG [TimerFinished] [app/io.go/67] Elapsed=28.8ms, FIND FILES
//
// Unlike the Zerolog and Logrus adapters it has no logger to delegate
// filtering to, so it carries its own minimum level.
type Writer struct {
	logger *log.Logger
	min    logtimer.Level
}

// NewWriter creates a backend writing to out, consuming records at or
// above min.
func NewWriter(out io.Writer, min logtimer.Level) *Writer {
	return &Writer{
		logger: log.New(out, "", log.LstdFlags|log.LUTC),
		min:    min,
	}
}

// Enabled reports whether the given level clears the minimum.
func (b *Writer) Enabled(level logtimer.Level, _ string) bool {
	return level < logtimer.Disabled && level >= b.min
}

// Log writes one line for the record.
func (b *Writer) Log(r logtimer.Record) {
	b.logger.Printf("%s [%s] [%s] %s",
		strings.ToUpper(r.Level.String()), r.Target, r.Origin, r.Message)
}
