// Package testparser extracts test results from CTest execution logs.
package testparser

// FailedTest holds information about a single failed test.
type FailedTest struct {
	Name   string // Test name (e.g., "std.algorithms.find.pass")
	Reason string // Status reported by the runner (e.g., "Failed", "Timeout")
}

// TestCounts holds parsed test result counts.
type TestCounts struct {
	Passed      int
	Failed      int
	Skipped     int
	Total       int
	Parsed      bool         // true if counts were successfully extracted
	FailedTests []FailedTest // details of failed tests
}

// Add adds another TestCounts to this one, aggregating the counts.
// The Parsed flag uses "sticky true" semantics: if any added TestCounts
// has Parsed=true, the aggregate will have Parsed=true.
func (tc *TestCounts) Add(other *TestCounts) {
	if other == nil {
		return
	}
	tc.Passed += other.Passed
	tc.Failed += other.Failed
	tc.Skipped += other.Skipped
	tc.Total += other.Total
	tc.FailedTests = append(tc.FailedTests, other.FailedTests...)
	if other.Parsed {
		tc.Parsed = true
	}
}

// Parser defines the interface for test output parsers.
type Parser interface {
	// Parse extracts test counts from the test framework output.
	Parse(output string) TestCounts
	// Name returns the name of the parser.
	Name() string
}

// Excerpt is the verbatim part of a test log that goes into a report.
type Excerpt struct {
	// Lines are the per-test result lines in log order.
	Lines []string
	// Summary is the first aggregate "passed/failed" line, or "" if absent.
	Summary string
}
