package logtimer

// Routing targets for the three record kinds. Backends publish the target
// with each record so that downstream log filters can select on timer
// lifecycle phase.
const (
	TargetStarting  = "TimerStarting"
	TargetExecuting = "TimerExecuting"
	TargetFinished  = "TimerFinished"
)

// A Record is one log entry produced by a timer.
type Record struct {
	// Level is the severity the timer was created with.
	Level Level

	// Target is the routing target, one of TargetStarting, TargetExecuting,
	// or TargetFinished.
	Target string

	// Origin is the creation site of the timer that produced the record.
	Origin Origin

	// Message is the formatted body: the timer name, the elapsed time where
	// applicable, and any caller-supplied text.
	Message string
}
