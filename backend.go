package logtimer

import "sync/atomic"

// A Backend consumes the records that timers emit. Implementations are
// expected to be safe for concurrent use; independent timers on different
// goroutines share nothing but the backend itself.
type Backend interface {
	// Enabled reports whether a timer created at the given level would have
	// its records consumed. The timer name is passed as the target string so
	// that backends can filter on it. Enabled gates the whole lifetime of a
	// timer and must be cheap: no formatting, no allocation.
	Enabled(level Level, name string) bool

	// Log consumes one record.
	Log(r Record)
}

// nopBackend drops everything. It is installed until SetBackend is called,
// so an unconfigured program pays only the enablement check.
type nopBackend struct{}

func (nopBackend) Enabled(Level, string) bool { return false }

func (nopBackend) Log(Record) {}

// backendHolder gives the atomic.Value a single consistent concrete type.
type backendHolder struct {
	b Backend
}

var globalBackend atomic.Value

func init() {
	globalBackend.Store(backendHolder{nopBackend{}})
}

// SetBackend installs the backend that timers created afterwards will log
// to. A timer keeps the backend that was installed when it was created.
// Passing nil restores the silent default.
func SetBackend(b Backend) {
	if b == nil {
		b = nopBackend{}
	}

	globalBackend.Store(backendHolder{b})
}

// CurrentBackend returns the installed backend.
func CurrentBackend() Backend {
	return globalBackend.Load().(backendHolder).b
}
