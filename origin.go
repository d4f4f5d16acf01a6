package logtimer

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// Origin identifies the source location where a timer was created. It is
// captured once, at construction, and shared by every record the timer
// emits, so the records of a long-running timer always point back at the
// creation site rather than at the emitting call.
type Origin struct {
	// Package is the import path of the package that created the timer.
	Package string

	// File is the base name of the source file.
	File string

	// Line is the line number inside File.
	Line int
}

// String renders the origin as "package/file/line".
func (o Origin) String() string {
	return fmt.Sprintf("%s/%s/%d", o.Package, o.File, o.Line)
}

// callerOrigin captures the origin of the caller skip frames above the
// caller of callerOrigin itself.
func callerOrigin(skip int) Origin {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Origin{}
	}

	o := Origin{File: filepath.Base(file), Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		o.Package = packageOf(fn.Name())
	}

	return o
}

// packageOf extracts the package import path from a fully qualified
// function name such as "github.com/logtimer/logtimer.New" or "main.run".
func packageOf(fn string) string {
	slash := strings.LastIndex(fn, "/")
	dot := strings.Index(fn[slash+1:], ".")
	if dot < 0 {
		return fn
	}

	return fn[:slash+1+dot]
}
