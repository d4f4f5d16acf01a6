package logtimer

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

// A Timer represents a single timing interval. An active timer owns its
// name, level, origin, and start instant, and emits at most one automatic
// TimerFinished record over its lifetime.
//
// A nil *Timer is the inert variant: every method on it is a no-op. The
// constructors return nil whenever the backend reports the level disabled,
// so call sites never need to branch on whether timing is on.
type Timer struct {
	level   Level
	name    string
	origin  Origin
	start   time.Time
	extra   string
	backend Backend

	// finished suppresses the automatic record once Finish has run.
	finished atomic.Bool
}

// New creates a timer that logs a single TimerFinished record when it is
// stopped, at DebugLevel. The optional msgAndArgs (a format string and its
// arguments, or a single value) are appended to every record the timer
// emits.
func New(name string, msgAndArgs ...any) *Timer {
	return newTimer(DebugLevel, name, 1, false, msgAndArgs)
}

// NewAt is New with an explicit level.
func NewAt(level Level, name string, msgAndArgs ...any) *Timer {
	return newTimer(level, name, 1, false, msgAndArgs)
}

// NewStarting creates a timer that logs a TimerStarting record immediately
// and a TimerFinished record when it is stopped, at DebugLevel.
func NewStarting(name string, msgAndArgs ...any) *Timer {
	return newTimer(DebugLevel, name, 1, true, msgAndArgs)
}

// NewStartingAt is NewStarting with an explicit level.
func NewStartingAt(level Level, name string, msgAndArgs ...any) *Timer {
	return newTimer(level, name, 1, true, msgAndArgs)
}

func newTimer(
	level Level,
	name string,
	skip int,
	announce bool,
	msgAndArgs []any,
) *Timer {
	backend := CurrentBackend()
	if level >= Disabled || !backend.Enabled(level, name) {
		return nil
	}

	nameMustNotBeEmpty(name)

	// The start instant is captured before the starting message is emitted
	// so that logging overhead does not count against the measured scope.
	t := &Timer{
		level:   level,
		name:    name,
		origin:  callerOrigin(skip + 1),
		start:   time.Now(),
		extra:   messageFromMsgAndArgs(msgAndArgs),
		backend: backend,
	}

	if announce {
		t.emit(TargetStarting, nil)
	}

	return t
}

func nameMustNotBeEmpty(name string) {
	if name == "" {
		panic("timer name must not be empty")
	}
}

// Name returns the timer name, or "" for an inert timer.
func (t *Timer) Name() string {
	if t == nil {
		return ""
	}

	return t.name
}

// Level returns the level the timer was created at, or Disabled for an
// inert timer.
func (t *Timer) Level() Level {
	if t == nil {
		return Disabled
	}

	return t.level
}

// Elapsed returns how long the timer has been running. It is always
// measured from the original start instant; neither Executing nor Finish
// moves it.
func (t *Timer) Elapsed() time.Duration {
	if t == nil {
		return 0
	}

	return time.Since(t.start)
}

// Executing logs a TimerExecuting record showing the current elapsed time
// without stopping the timer. It may be called any number of times.
func (t *Timer) Executing(msgAndArgs ...any) {
	if t == nil {
		return
	}

	t.emit(TargetExecuting, msgAndArgs)
}

// Finish logs the final TimerFinished record and suppresses the record that
// Stop would otherwise emit. It is useful when the final message should
// carry information that only exists once the computation is done. Calling
// Finish again has no effect.
func (t *Timer) Finish(msgAndArgs ...any) {
	if t == nil {
		return
	}

	if !t.finished.CompareAndSwap(false, true) {
		return
	}

	t.emit(TargetFinished, msgAndArgs)
}

// Stop ends the timer, logging a TimerFinished record unless Finish already
// did. It is meant to run on every exit path of the timed scope:
//
//	tmr := logtimer.New("LOAD")
//	defer tmr.Stop()
//
// Stop never fails the calling program: a panicking backend is absorbed.
func (t *Timer) Stop() {
	if t == nil {
		return
	}

	defer func() {
		_ = recover()
	}()

	t.Finish()
}

func (t *Timer) emit(target string, msgAndArgs []any) {
	var b strings.Builder

	b.WriteString(t.name)

	if target != TargetStarting {
		b.WriteString(", Elapsed=")
		b.WriteString(t.Elapsed().String())
	}

	if t.extra != "" {
		b.WriteString(", ")
		b.WriteString(t.extra)
	}

	if msg := messageFromMsgAndArgs(msgAndArgs); msg != "" {
		b.WriteString(", ")
		b.WriteString(msg)
	}

	t.backend.Log(Record{
		Level:   t.level,
		Target:  target,
		Origin:  t.origin,
		Message: b.String(),
	})
}

// messageFromMsgAndArgs renders optional trailing arguments: none, a single
// value, or a format string followed by its arguments.
func messageFromMsgAndArgs(msgAndArgs []any) string {
	switch len(msgAndArgs) {
	case 0:
		return ""
	case 1:
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}

		return fmt.Sprintf("%+v", msgAndArgs[0])
	default:
		if format, ok := msgAndArgs[0].(string); ok {
			return fmt.Sprintf(format, msgAndArgs[1:]...)
		}

		return fmt.Sprint(msgAndArgs...)
	}
}
