package logtimer

import (
	"fmt"
	"runtime"
	"strings"
)

// Func wraps the calling function in a silent timer and returns the stop
// function, for use in a defer:
//
//	func loadConfig() error {
//	    defer logtimer.Func()()
//	    ...
//	}
//
// The timer is named after the function, as "loadConfig()". An optional
// pattern overrides the name: "%s" inside it is replaced with the bare
// function name ("Config::%s" gives "Config::loadConfig"), and a pattern
// without "%s" is used verbatim.
func Func(pattern ...string) func() {
	return funcTimer(DebugLevel, false, pattern)
}

// FuncAt is Func with an explicit level.
func FuncAt(level Level, pattern ...string) func() {
	return funcTimer(level, false, pattern)
}

// StartingFunc is Func with a TimerStarting record emitted on entry.
func StartingFunc(pattern ...string) func() {
	return funcTimer(DebugLevel, true, pattern)
}

// StartingFuncAt is StartingFunc with an explicit level.
func StartingFuncAt(level Level, pattern ...string) func() {
	return funcTimer(level, true, pattern)
}

func funcTimer(level Level, announce bool, pattern []string) func() {
	name := timerName(callerFuncName(2), pattern)
	tmr := newTimer(level, name, 2, announce, nil)

	return tmr.Stop
}

func timerName(funcName string, pattern []string) string {
	if len(pattern) == 0 || pattern[0] == "" {
		return funcName + "()"
	}

	if strings.Contains(pattern[0], "%s") {
		return fmt.Sprintf(pattern[0], funcName)
	}

	return pattern[0]
}

// callerFuncName returns the name of the function skip frames above the
// caller of callerFuncName itself, without the package qualifier.
func callerFuncName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown"
	}

	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}

	name := fn.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}

	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}

	return name
}
