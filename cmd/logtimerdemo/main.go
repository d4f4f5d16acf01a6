// Command logtimerdemo exercises the timer API against a real logging
// backend, one scenario per timer form. Run it with:
//
//	logtimerdemo --level debug --backend zerolog
//
// The minimum level can also come from LOG_LEVEL in the environment or in
// a .env file next to the binary.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/logtimer/logtimer"
	"github.com/logtimer/logtimer/backends"
)

var (
	levelFlag   string
	backendFlag string
	outputFlag  string
	jobsFlag    int
)

var rootCmd = &cobra.Command{
	Use:   "logtimerdemo",
	Short: "Runs the logtimer demonstration scenarios against a real logging backend.",
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVar(&levelFlag, "level", "",
		"minimum level the backend consumes (default LOG_LEVEL or debug)")
	rootCmd.Flags().StringVar(&backendFlag, "backend", "zerolog",
		"backend to install: zerolog, logrus, or writer")
	rootCmd.Flags().StringVar(&outputFlag, "output", "",
		"write records to this file instead of stderr")
	rootCmd.Flags().IntVar(&jobsFlag, "jobs", 3,
		"number of jobs in the simulated workload")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

func run(_ *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	min, err := minimumLevel()
	if err != nil {
		return err
	}

	out := io.Writer(os.Stderr)
	if outputFlag != "" {
		file, err := os.Create(outputFlag)
		if err != nil {
			return err
		}

		atexit.Register(func() {
			if err := file.Close(); err != nil {
				panic(err)
			}
		})
		out = file
	}

	backend, err := newBackend(backendFlag, out, min)
	if err != nil {
		return err
	}
	logtimer.SetBackend(backend)

	mainTmr := logtimer.NewStartingAt(logtimer.ErrorLevel, "MAIN")
	defer mainTmr.Stop()

	timerWithNameOnly()
	startingTimerWithNameOnly()
	timerWithIntermediateMessages()
	timerWithExplicitFinish()
	timersAtOtherLevels()
	timedFunction()
	announcedFunction()
	processJobs(jobsFlag)

	return nil
}

func minimumLevel() (logtimer.Level, error) {
	name := levelFlag
	if name == "" {
		name = os.Getenv("LOG_LEVEL")
	}
	if name == "" {
		name = "debug"
	}

	return logtimer.ParseLevel(name)
}

func newBackend(
	kind string,
	out io.Writer,
	min logtimer.Level,
) (logtimer.Backend, error) {
	switch kind {
	case "zerolog":
		lvl, err := zerolog.ParseLevel(min.String())
		if err != nil {
			return nil, err
		}

		logger := zerolog.New(zerolog.ConsoleWriter{Out: out}).
			With().Timestamp().Logger().
			Level(lvl)

		return backends.NewZerolog(logger), nil
	case "logrus":
		logger := logrus.New()
		logger.SetOutput(out)

		if min >= logtimer.Disabled {
			logger.SetLevel(logrus.PanicLevel)
		} else {
			lvl, err := logrus.ParseLevel(min.String())
			if err != nil {
				return nil, err
			}
			logger.SetLevel(lvl)
		}

		return backends.NewLogrus(logger), nil
	case "writer":
		return backends.NewWriter(out, min), nil
	}

	return nil, fmt.Errorf("unknown backend %q", kind)
}

func timerWithNameOnly() {
	tmr := logtimer.New("NAMED_TIMER")
	defer tmr.Stop()

	work(2 * time.Millisecond)
}

func startingTimerWithNameOnly() {
	tmr := logtimer.NewStarting("NAMED_S_TIMER")
	defer tmr.Stop()

	work(2 * time.Millisecond)
}

func timerWithIntermediateMessages() {
	tmr := logtimer.NewStarting("S_TIMER_INTER_FINAL")
	defer tmr.Stop()

	work(time.Millisecond)
	tmr.Executing("stuff is happening")
	work(time.Millisecond)
	tmr.Executing("more stuff is happening")
}

func timerWithExplicitFinish() {
	tmr := logtimer.NewStarting("S_TIMER_INTER_NOFINAL",
		"expecting to process %d widgets", 20)
	defer tmr.Stop()

	work(time.Millisecond)
	tmr.Executing("processed %d widgets", 10)
	work(time.Millisecond)
	tmr.Finish("all done, frobbed %d widgets", 20)
}

func timersAtOtherLevels() {
	info := logtimer.NewAt(logtimer.InfoLevel, "TIMER_AT_INFO", "got %d widgets", 5)
	defer info.Stop()

	warn := logtimer.NewAt(logtimer.WarnLevel, "TIMER_AT_WARN")
	defer warn.Stop()

	// Nothing should be logged for this one.
	never := logtimer.NewAt(logtimer.Disabled, "TIMER_AT_NEVER")
	defer never.Stop()

	work(time.Millisecond)
}

func timedFunction() {
	defer logtimer.Func()()

	work(2 * time.Millisecond)
}

func announcedFunction() {
	defer logtimer.StartingFuncAt(logtimer.InfoLevel, "Demo::%s")()

	work(2 * time.Millisecond)
}

func processJobs(n int) {
	tmr := logtimer.NewStarting("PROCESS_JOBS", "%d jobs", n)
	defer tmr.Stop()

	for i := 0; i < n; i++ {
		job := xid.New()

		jobTmr := logtimer.New("JOB", "id=%s", job)
		work(time.Duration(i+1) * time.Millisecond)
		jobTmr.Finish("job %s complete", job)

		tmr.Executing("dispatched %d/%d", i+1, n)
	}
}

func work(d time.Duration) {
	time.Sleep(d)
}
