// Package integration contains end-to-end tests for jobsummary.
package integration

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/AndreyAkinshin/jobsummary/internal/config"
	"github.com/AndreyAkinshin/jobsummary/internal/report"
	"github.com/AndreyAkinshin/jobsummary/internal/summarize"
	"github.com/AndreyAkinshin/jobsummary/internal/testparser"
	"github.com/AndreyAkinshin/jobsummary/internal/warnings"
)

var (
	fixturesDirOnce sync.Once
	fixturesDirPath string
)

// fixturesDir returns the path to the test fixtures directory.
func fixturesDir() string {
	fixturesDirOnce.Do(func() {
		_, filename, _, _ := runtime.Caller(0)
		fixturesDirPath = filepath.Join(filepath.Dir(filename), "..", "fixtures")
	})
	return fixturesDirPath
}

func TestSummarizeWithConfig(t *testing.T) {
	t.Parallel()

	cfg, msgs, err := config.LoadAndValidate(filepath.Join(fixturesDir(), "jobsummary.yaml"))
	if err != nil {
		t.Fatalf("LoadAndValidate() error = %v", err)
	}
	if len(msgs) != 0 {
		t.Errorf("unexpected config warnings: %v", msgs)
	}

	extractor, err := warnings.NewExtractor(cfg.Warnings.CodePrefixes, *cfg.Warnings.IncludeMarker)
	if err != nil {
		t.Fatalf("NewExtractor() error = %v", err)
	}

	env := report.Environment{
		OS:              cfg.Environment.OS,
		CompilerVersion: cfg.Environment.CompilerVersion,
		CMakeVersion:    cfg.Environment.CMakeVersion,
		CPUModel:        cfg.Environment.CPUModel,
	}
	outPath := filepath.Join(t.TempDir(), "summary.md")

	result, err := summarize.Run(context.Background(), summarize.Options{
		BuildLogPath: filepath.Join(fixturesDir(), "build.log"),
		TestLogPath:  filepath.Join(fixturesDir(), "ctest.log"),
		OutputPath:   outPath,
		Environment:  env,
		Extractor:    extractor,
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var ids []string
	counts := map[string]int{}
	for _, e := range result.Histogram.Entries() {
		ids = append(ids, e.ID)
		counts[e.ID] = e.Count
	}
	if diff := cmp.Diff([]string{"-Wsign-compare", "-Wunused-variable", "LNK4098", "C4996"}, ids); diff != "" {
		t.Errorf("warning identifiers mismatch (-want +got):\n%s", diff)
	}
	if counts["-Wsign-compare"] != 3 {
		t.Errorf("-Wsign-compare count = %d, want 3", counts["-Wsign-compare"])
	}
	if result.Histogram.Total() != 6 {
		t.Errorf("total warnings = %d, want 6", result.Histogram.Total())
	}

	sign, _ := result.Histogram.Get("-Wsign-compare")
	if !strings.Contains(sign.Example, "include/oneapi/dpl/pstl/algorithm_impl.h") {
		t.Errorf("example = %q, want the include/oneapi line", sign.Example)
	}

	if len(result.Excerpt.Lines) != 4 {
		t.Errorf("excerpt lines = %d, want 4", len(result.Excerpt.Lines))
	}
	if result.Excerpt.Summary != "75% tests passed, 1 tests failed out of 4" {
		t.Errorf("summary = %q", result.Excerpt.Summary)
	}

	wantCounts := testparser.TestCounts{
		Passed:  2,
		Failed:  1,
		Skipped: 1,
		Total:   4,
		Parsed:  true,
		FailedTests: []testparser.FailedTest{
			{Name: "find.pass", Reason: "Failed"},
		},
	}
	if diff := cmp.Diff(wantCounts, result.Counts); diff != "" {
		t.Errorf("counts mismatch (-want +got):\n%s", diff)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	table, rest, _ := strings.Cut(string(data), "\n\n")
	parsed, err := report.ParseEnvironmentTable(table)
	if err != nil {
		t.Fatalf("ParseEnvironmentTable() error = %v", err)
	}
	if diff := cmp.Diff(env, parsed); diff != "" {
		t.Errorf("environment round trip mismatch (-want +got):\n%s", diff)
	}

	warnIdx := strings.Index(rest, "| Warning | Count | Example |")
	detailsIdx := strings.Index(rest, "<details>")
	if warnIdx < 0 || detailsIdx < warnIdx {
		t.Errorf("sections out of order:\n%s", data)
	}
	if !strings.HasSuffix(string(data), "</details>\n") {
		t.Errorf("report does not end with the details section:\n%s", data)
	}
}

func TestSummarizeDefaults(t *testing.T) {
	t.Parallel()
	outPath := filepath.Join(t.TempDir(), "summary.md")

	result, err := summarize.Run(context.Background(), summarize.Options{
		BuildLogPath: filepath.Join(fixturesDir(), "build.log"),
		TestLogPath:  filepath.Join(fixturesDir(), "ctest.log"),
		OutputPath:   outPath,
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// The default marker is "include", so the utils.h line under test/ loses
	// to the first include/ line.
	sign, _ := result.Histogram.Get("-Wsign-compare")
	if !strings.Contains(sign.Example, "/include/") {
		t.Errorf("example = %q, want an include line", sign.Example)
	}

	data, _ := os.ReadFile(outPath)
	table, _, _ := strings.Cut(string(data), "\n\n")
	env, err := report.ParseEnvironmentTable(table)
	if err != nil {
		t.Fatalf("ParseEnvironmentTable() error = %v", err)
	}
	for _, f := range env.Fields() {
		if f.Value != report.NotAvailable {
			t.Errorf("%s = %q, want %q", f.Name, f.Value, report.NotAvailable)
		}
	}
}
