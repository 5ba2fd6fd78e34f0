// Package testrunner grades the parser against conformance suites: a
// test262 checkout or a test262-parser-tests checkout.
package testrunner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/example/esparse/parser"
)

type Outcome int

const (
	Pass Outcome = iota
	Fail
	Skip
	Error
)

func (o Outcome) String() string {
	switch o {
	case Pass:
		return "PASS"
	case Fail:
		return "FAIL"
	case Skip:
		return "SKIP"
	case Error:
		return "ERROR"
	}
	return "UNKNOWN"
}

type Result struct {
	Path    string
	Outcome Outcome
	Message string
	Elapsed time.Duration
}

type Summary struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
	Errors  int
	Elapsed time.Duration
}

// PassRate is the share of passing tests among those not skipped.
func (s Summary) PassRate() float64 {
	ran := s.Total - s.Skipped
	if ran <= 0 {
		return 0
	}
	return float64(s.Passed) / float64(ran) * 100
}

func (s *Summary) add(r Result) {
	switch r.Outcome {
	case Pass:
		s.Passed++
	case Fail:
		s.Failed++
	case Skip:
		s.Skipped++
	case Error:
		s.Errors++
	}
}

type Config struct {
	// Dir is the root of a test262 or test262-parser-tests checkout.
	Dir    string
	Filter string
	Limit  int
	// Jobs bounds the number of files parsed concurrently; zero means
	// GOMAXPROCS.
	Jobs   int
	Logger *zap.Logger
}

// Layout identifies the kind of suite found under Config.Dir.
type Layout int

const (
	LayoutTest262 Layout = iota
	LayoutParserTests
)

// parserTestDirs maps each test262-parser-tests directory to whether its
// files must parse.
var parserTestDirs = map[string]bool{
	"pass":          true,
	"pass-explicit": true,
	"fail":          false,
	"early":         false,
}

func detectLayout(dir string) (Layout, error) {
	if isDir(filepath.Join(dir, "test")) {
		return LayoutTest262, nil
	}
	for name := range parserTestDirs {
		if isDir(filepath.Join(dir, name)) {
			return LayoutParserTests, nil
		}
	}
	return 0, fmt.Errorf("%s is neither a test262 nor a test262-parser-tests checkout", dir)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// job is one file to grade. wantParse is only meaningful for the
// parser-tests layout; test262 files carry their expectation inline.
type job struct {
	path      string
	rel       string
	wantParse bool
}

// Run discovers and grades every matching file, returning per-file results
// in path order and a summary. The only error is a failure to read the
// suite itself or a cancelled context.
func Run(ctx context.Context, cfg Config) ([]Result, Summary, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	layout, err := detectLayout(cfg.Dir)
	if err != nil {
		return nil, Summary{}, err
	}
	jobs, err := discover(cfg, layout)
	if err != nil {
		return nil, Summary{}, err
	}
	if cfg.Limit > 0 && len(jobs) > cfg.Limit {
		jobs = jobs[:cfg.Limit]
	}

	limit := cfg.Jobs
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	start := time.Now()
	results := make([]Result, len(jobs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)
	for i, j := range jobs {
		i, j := i, j
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			switch layout {
			case LayoutParserTests:
				results[i] = runParserTest(j)
			default:
				results[i] = runTest262(j)
			}
			logger.Debug("graded",
				zap.String("path", j.rel),
				zap.Stringer("outcome", results[i].Outcome),
				zap.String("message", results[i].Message),
			)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, Summary{}, fmt.Errorf("run: %w", err)
	}

	summary := Summary{Total: len(results), Elapsed: time.Since(start)}
	for _, r := range results {
		summary.add(r)
	}
	logger.Info("summary",
		zap.Int("total", summary.Total),
		zap.Int("passed", summary.Passed),
		zap.Int("failed", summary.Failed),
		zap.Int("skipped", summary.Skipped),
		zap.Int("errors", summary.Errors),
		zap.Duration("elapsed", summary.Elapsed),
	)
	return results, summary, nil
}

func discover(cfg Config, layout Layout) ([]job, error) {
	var roots []string
	switch layout {
	case LayoutParserTests:
		for name := range parserTestDirs {
			roots = append(roots, name)
		}
		sort.Strings(roots)
	default:
		roots = []string{"test"}
	}

	var jobs []job
	for _, root := range roots {
		rootDir := filepath.Join(cfg.Dir, root)
		if !isDir(rootDir) {
			continue
		}
		err := filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(path, ".js") {
				return nil
			}
			// test262 fixtures are imported by other tests, not run alone
			if strings.HasSuffix(path, "_FIXTURE.js") {
				return nil
			}
			rel, err := filepath.Rel(cfg.Dir, path)
			if err != nil {
				return err
			}
			rel = filepath.ToSlash(rel)
			if cfg.Filter != "" && !strings.Contains(rel, cfg.Filter) {
				return nil
			}
			jobs = append(jobs, job{path: path, rel: rel, wantParse: parserTestDirs[root]})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("filepath.WalkDir(%q): %w", rootDir, err)
		}
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].rel < jobs[j].rel })
	return jobs, nil
}

// variant is one way of parsing a test file.
type variant struct {
	name   string
	source string
	module bool
}

func parse(v variant) error {
	if v.module {
		_, err := parser.ParseModule(v.source)
		return err
	}
	_, err := parser.ParseScript(v.source)
	return err
}

func runTest262(j job) Result {
	start := time.Now()
	data, err := os.ReadFile(j.path)
	if err != nil {
		return Result{Path: j.rel, Outcome: Error, Message: "read error: " + err.Error()}
	}
	source := string(data)

	meta, err := parseMetadata(source)
	if err != nil {
		return Result{Path: j.rel, Outcome: Error, Message: "frontmatter: " + err.Error()}
	}
	if feat, ok := unsupportedFeature(meta); ok {
		return Result{Path: j.rel, Outcome: Skip, Message: "unsupported feature: " + feat}
	}

	wantError := meta.ExpectsSyntaxError()
	for _, v := range test262Variants(meta, source) {
		err := parse(v)
		if msg, ok := grade(err, wantError); !ok {
			return Result{
				Path:    j.rel,
				Outcome: Fail,
				Message: fmt.Sprintf("[%s] %s", v.name, msg),
				Elapsed: time.Since(start),
			}
		}
	}
	return Result{Path: j.rel, Outcome: Pass, Elapsed: time.Since(start)}
}

// test262Variants lists the parses a test requires: modules and raw tests
// run as written, everything else once per applicable strictness.
func test262Variants(meta Metadata, source string) []variant {
	switch {
	case meta.HasFlag("module"):
		return []variant{{name: "module", source: source, module: true}}
	case meta.HasFlag("raw"), meta.HasFlag("noStrict"):
		return []variant{{name: "sloppy", source: source}}
	case meta.HasFlag("onlyStrict"):
		return []variant{{name: "strict", source: strictPrologue + source}}
	}
	return []variant{
		{name: "sloppy", source: source},
		{name: "strict", source: strictPrologue + source},
	}
}

const strictPrologue = "\"use strict\";\n"

func runParserTest(j job) Result {
	start := time.Now()
	data, err := os.ReadFile(j.path)
	if err != nil {
		return Result{Path: j.rel, Outcome: Error, Message: "read error: " + err.Error()}
	}
	v := variant{
		name:   "script",
		source: string(data),
		module: strings.HasSuffix(j.path, ".module.js"),
	}
	if v.module {
		v.name = "module"
	}
	if msg, ok := grade(parse(v), !j.wantParse); !ok {
		return Result{Path: j.rel, Outcome: Fail, Message: fmt.Sprintf("[%s] %s", v.name, msg), Elapsed: time.Since(start)}
	}
	return Result{Path: j.rel, Outcome: Pass, Elapsed: time.Since(start)}
}

// grade compares a parse outcome with the expectation and explains a
// mismatch.
func grade(err error, wantError bool) (string, bool) {
	if err == nil {
		if wantError {
			return "expected a SyntaxError, parsed successfully", false
		}
		return "", true
	}
	var perr *parser.Error
	if !errors.As(err, &perr) {
		return "unexpected failure: " + err.Error(), false
	}
	if wantError {
		return "", true
	}
	return fmt.Sprintf("unexpected %s at %d:%d: %s", perr.Kind, perr.Line, perr.Column, perr.Message), false
}
