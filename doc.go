// Package logtimer provides named, scoped timers that log how long a piece
// of code took to run. A timer captures its creation site and a start
// instant when it is created, and emits a "TimerFinished" record when it is
// stopped, normally from a defer at the top of the timed scope:
//
//	func findFiles(dir string) []string {
//	    tmr := logtimer.New("FIND FILES")
//	    defer tmr.Stop()
//
//	    // expensive operation here
//
//	    return files
//	} // Stop runs here and a TimerFinished record is logged
//
// NewStarting returns a timer that additionally logs a "TimerStarting"
// record as soon as it is created, giving a pair of bracketing messages.
// Both constructors accept trailing format arguments that are appended to
// every record the timer emits:
//
//	tmr := logtimer.NewStarting("FIND FILES", "Directory = %s", dir)
//
// # Records and Backends
//
// Timers log through a Backend, installed once with SetBackend. Each record
// carries a severity level, a routing target naming the lifecycle phase
// (TimerStarting, TimerExecuting, or TimerFinished), the origin of the
// timer (package, file, and line of the creation site, not of the emitting
// call), and a formatted message body. The backends package bundles
// adapters for zerolog, logrus, and plain writers.
//
// The backend answers a single cheap question at construction time: is this
// level enabled? If not, the constructor returns a nil timer and every
// later operation on it is a no-op. The enablement decision is made exactly
// once, so a disabled timer costs one atomic load and one interface call
// over its entire lifetime. A nil *Timer is always safe to use.
//
// # Intermediate and Final Messages
//
// Executing logs a "TimerExecuting" record with the current elapsed time
// and may be called any number of times. Finish logs the final
// "TimerFinished" record early, with extra information that is often only
// available at the end of the computation, and suppresses the record that
// Stop would otherwise emit:
//
//	tmr := logtimer.New("FIND FILES")
//	defer tmr.Stop()
//
//	for _, d := range subDirs(dir) {
//	    tmr.Executing("processed %s", d)
//	}
//
//	tmr.Finish("found %d files", len(files))
//
// # Timing Whole Functions
//
// Func and StartingFunc wrap the calling function in a timer named after
// the function itself:
//
//	func loadConfig() error {
//	    defer logtimer.Func()()
//	    ...
//	}
//
// By default records are emitted at DebugLevel. The *At constructor
// variants select another level, and the Disabled level turns a timer off
// unconditionally.
package logtimer
