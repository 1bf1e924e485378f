package testparser

import (
	"regexp"
	"strconv"
	"strings"
)

// Static regexes for CTest output parsing.
// Compiled once at package init for performance.
var (
	// A result line carries a test number marker and ends with an elapsed time.
	ctestResultLine = regexp.MustCompile(`Test\s+#\d+:.*\d+(?:\.\d+)?\s+sec\b`)

	// A summary line reports both a passed and a failed figure.
	ctestSummaryLine = regexp.MustCompile(`\d+%?\s+tests?\s+passed,.*\d+%?\s+tests?\s+failed`)

	// The name is followed by dot padding, or by "***" with no space when
	// CTest truncates a long name.
	ctestResultFields = regexp.MustCompile(`Test\s+#(\d+):\s+(\S+?)(?:\s*\.*\s*\*{3}|\s+\.*\s*)(.*?)\s+(\d+(?:\.\d+)?)\s+sec\b`)
	ctestSummaryTotal = regexp.MustCompile(`(\d+)\s+tests?\s+failed\s+out\s+of\s+(\d+)`)
)

// ExtractResults collects the result lines and the first summary line of a
// CTest log. Lines are returned exactly as they appear, without their line
// terminator.
//
// CTest prints lines like:
//
//	1/3 Test #1: SomeTest .........................   Passed    0.02 sec
//	2/3 Test #2: OtherTest ........................***Failed    1.10 sec
//	50% tests passed, 1 tests failed out of 2
func ExtractResults(testLog string) Excerpt {
	excerpt := Excerpt{Lines: []string{}}

	for _, line := range splitLines(testLog) {
		if ctestResultLine.MatchString(line) {
			excerpt.Lines = append(excerpt.Lines, line)
		}
		if excerpt.Summary == "" && ctestSummaryLine.MatchString(line) {
			excerpt.Summary = line
		}
	}

	return excerpt
}

// splitLines splits text on "\n" and drops a trailing "\r" from each line.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// CTestParser parses CTest output.
type CTestParser struct{}

// Name returns the parser name.
func (p *CTestParser) Name() string {
	return "ctest"
}

// Parse extracts test counts from CTest output.
// A log may hold several CTest runs, each closed by its own summary line;
// their counts are added together. Within a run the per-test result lines
// are authoritative, and the summary ("... N tests failed out of T") is only
// used when a run printed no result lines.
func (p *CTestParser) Parse(output string) TestCounts {
	var counts TestCounts
	var run []string

	for _, line := range splitLines(output) {
		switch {
		case ctestResultLine.MatchString(line):
			run = append(run, line)
		case ctestSummaryLine.MatchString(line):
			c := parseRun(run, line)
			counts.Add(&c)
			run = nil
		}
	}
	if len(run) > 0 {
		c := parseRun(run, "")
		counts.Add(&c)
	}

	return counts
}

// parseRun counts the result lines of one CTest run.
func parseRun(lines []string, summary string) TestCounts {
	counts := TestCounts{}

	for _, line := range lines {
		match := ctestResultFields.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		name, status := match[2], strings.TrimSpace(match[3])

		switch classifyStatus(status) {
		case statusPassed:
			counts.Passed++
		case statusSkipped:
			counts.Skipped++
		default:
			counts.Failed++
			counts.FailedTests = append(counts.FailedTests, FailedTest{
				Name:   name,
				Reason: status,
			})
		}
	}

	if total := counts.Passed + counts.Failed + counts.Skipped; total > 0 {
		counts.Total = total
		counts.Parsed = true
		return counts
	}

	return parseSummary(summary)
}

// parseSummary derives counts from a line like
// "83% tests passed, 2 tests failed out of 12".
func parseSummary(summary string) TestCounts {
	counts := TestCounts{}

	match := ctestSummaryTotal.FindStringSubmatch(summary)
	if match == nil {
		return counts
	}

	failed, err := strconv.Atoi(match[1])
	if err != nil {
		return counts
	}
	total, err := strconv.Atoi(match[2])
	if err != nil || failed > total {
		return counts
	}

	counts.Failed = failed
	counts.Passed = total - failed
	counts.Total = total
	counts.Parsed = true
	return counts
}

type testStatus int

const (
	statusPassed testStatus = iota
	statusFailed
	statusSkipped
)

// classifyStatus maps a CTest status text to a result category.
// Anything that is neither a pass nor a skip counts as a failure
// ("Failed", "Timeout", "Exception: SegFault", ...).
func classifyStatus(status string) testStatus {
	switch {
	case strings.HasPrefix(status, "Passed"):
		return statusPassed
	case strings.HasPrefix(status, "Not Run"),
		strings.HasPrefix(status, "Skipped"),
		strings.HasPrefix(status, "Disabled"):
		return statusSkipped
	default:
		return statusFailed
	}
}
