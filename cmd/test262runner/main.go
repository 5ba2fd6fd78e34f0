package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/example/esparse/testrunner"
)

type Option struct {
	Dir     string `long:"dir" default:"test262" description:"path to a test262 or test262-parser-tests checkout"`
	Filter  string `long:"filter" description:"only run tests whose path contains this substring"`
	Limit   int    `long:"limit" description:"maximum number of tests to run (0 = all)"`
	Jobs    int    `long:"jobs" short:"j" description:"files parsed concurrently (0 = GOMAXPROCS)"`
	Verbose bool   `short:"v" long:"verbose" description:"print every result, not only failures"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	var opt Option
	parser := flags.NewParser(&opt, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return 0
		}
		return 2
	}

	logger := newLogger(opt.Verbose)
	defer logger.Sync() //nolint:errcheck

	if info, err := os.Stat(opt.Dir); err != nil || !info.IsDir() {
		logger.Error("test suite directory not found", zap.String("dir", opt.Dir))
		fmt.Fprintf(os.Stderr, "Clone one with: git clone --depth 1 https://github.com/tc39/test262-parser-tests %s\n", opt.Dir)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, summary, err := testrunner.Run(ctx, testrunner.Config{
		Dir:    opt.Dir,
		Filter: opt.Filter,
		Limit:  opt.Limit,
		Jobs:   opt.Jobs,
		Logger: logger,
	})
	if err != nil {
		logger.Error("run failed", zap.Error(err))
		return 1
	}

	for _, r := range results {
		if !opt.Verbose && (r.Outcome == testrunner.Pass || r.Outcome == testrunner.Skip) {
			continue
		}
		msg := ""
		if r.Message != "" {
			msg = " " + r.Message
		}
		fmt.Fprintf(stdout, "%s %s%s\n", r.Outcome, r.Path, msg)
	}
	printSummary(stdout, summary)

	if summary.Failed > 0 || summary.Errors > 0 {
		return 1
	}
	return 0
}

func printSummary(w io.Writer, summary testrunner.Summary) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Conformance Summary ===")
	fmt.Fprintf(w, "Total:   %d\n", summary.Total)
	fmt.Fprintf(w, "Passed:  %d\n", summary.Passed)
	fmt.Fprintf(w, "Failed:  %d\n", summary.Failed)
	fmt.Fprintf(w, "Skipped: %d\n", summary.Skipped)
	fmt.Fprintf(w, "Errors:  %d\n", summary.Errors)
	if summary.Total > 0 {
		fmt.Fprintf(w, "Pass rate: %.1f%% (%d/%d excluding skipped)\n",
			summary.PassRate(), summary.Passed, summary.Total-summary.Skipped)
	}
	fmt.Fprintf(w, "Elapsed: %s\n", summary.Elapsed)
}

// newLogger writes to stderr so results on stdout stay machine-readable.
func newLogger(verbose bool) *zap.Logger {
	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{"stderr"}
	config.DisableStacktrace = true
	if !verbose {
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
