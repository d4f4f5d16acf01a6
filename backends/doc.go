// Package backends bundles adapters that connect logtimer to real logging
// libraries. Each adapter implements logtimer.Backend and is installed with
// logtimer.SetBackend:
//
//	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
//	logtimer.SetBackend(backends.NewZerolog(logger))
//
// The Zerolog and Logrus adapters defer level filtering to the wrapped
// logger. The Writer adapter carries its own minimum level and renders
// plain text lines for programs that log through an io.Writer.
package backends
