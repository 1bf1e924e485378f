package testparser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const ctestLog = `Test project /home/runner/work/oneDPL/build
    Start 1: SomeTest
1/3 Test #1: SomeTest .........................   Passed    0.02 sec
    Start 2: OtherTest
2/3 Test #2: OtherTest ........................***Failed    1.10 sec
    Start 3: DisabledTest
3/3 Test #3: DisabledTest .....................***Not Run (Disabled)   0.00 sec

67% tests passed, 1 tests failed out of 3

Total Test time (real) =   1.15 sec

The following tests did not run:
	  3 - DisabledTest (Disabled)

The following tests FAILED:
	  2 - OtherTest (Failed)
Errors while running CTest
`

func TestExtractResults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		log      string
		expected Excerpt
	}{
		{
			name: "scenario from job summary",
			log: `1/3 Test #1: SomeTest ..... Passed 0.02 sec
2/3 Test #2: OtherTest ..... Failed 1.10 sec
50% tests passed, 50% tests failed out of 2`,
			expected: Excerpt{
				Lines: []string{
					"1/3 Test #1: SomeTest ..... Passed 0.02 sec",
					"2/3 Test #2: OtherTest ..... Failed 1.10 sec",
				},
				Summary: "50% tests passed, 50% tests failed out of 2",
			},
		},
		{
			name: "full ctest log",
			log:  ctestLog,
			expected: Excerpt{
				Lines: []string{
					"1/3 Test #1: SomeTest .........................   Passed    0.02 sec",
					"2/3 Test #2: OtherTest ........................***Failed    1.10 sec",
					"3/3 Test #3: DisabledTest .....................***Not Run (Disabled)   0.00 sec",
				},
				Summary: "67% tests passed, 1 tests failed out of 3",
			},
		},
		{
			name:     "empty log",
			log:      "",
			expected: Excerpt{Lines: []string{}},
		},
		{
			name: "no summary line",
			log:  "1/1 Test #1: Only ....   Passed    0.50 sec\n",
			expected: Excerpt{
				Lines: []string{"1/1 Test #1: Only ....   Passed    0.50 sec"},
			},
		},
		{
			name: "only first summary line is kept",
			log: `100% tests passed, 0 tests failed out of 4
50% tests passed, 2 tests failed out of 4`,
			expected: Excerpt{
				Lines:   []string{},
				Summary: "100% tests passed, 0 tests failed out of 4",
			},
		},
		{
			name: "leading whitespace and carriage returns",
			log:  "  10/12 Test #10: padded ....   Passed    3.00 sec\r\n" + "100% tests passed, 0 tests failed out of 12\r\n",
			expected: Excerpt{
				Lines:   []string{"  10/12 Test #10: padded ....   Passed    3.00 sec"},
				Summary: "100% tests passed, 0 tests failed out of 12",
			},
		},
		{
			name: "lines without elapsed time are excluded",
			log: `    Start 1: SomeTest
Test #1: SomeTest still running
1: Test command: /usr/bin/some_test
Total Test time (real) =   1.15 sec`,
			expected: Excerpt{Lines: []string{}},
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ExtractResults(tt.log)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("ExtractResults() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCTestParser(t *testing.T) {
	t.Parallel()
	parser := &CTestParser{}

	tests := []struct {
		name     string
		output   string
		expected TestCounts
	}{
		{
			name:   "mixed results",
			output: ctestLog,
			expected: TestCounts{
				Passed: 1, Failed: 1, Skipped: 1, Total: 3, Parsed: true,
				FailedTests: []FailedTest{{Name: "OtherTest", Reason: "Failed"}},
			},
		},
		{
			name: "timeout and exception",
			output: `1/3 Test #1: alg.find.pass ....................***Timeout 1500.03 sec
2/3 Test #2: alg.remove.pass ..................***Exception: SegFault  0.41 sec
3/3 Test #3: alg.copy.pass ....................   Passed    2.10 sec`,
			expected: TestCounts{
				Passed: 1, Failed: 2, Total: 3, Parsed: true,
				FailedTests: []FailedTest{
					{Name: "alg.find.pass", Reason: "Timeout"},
					{Name: "alg.remove.pass", Reason: "Exception: SegFault"},
				},
			},
		},
		{
			name: "skipped",
			output: `1/2 Test #1: a ....***Skipped   0.00 sec
2/2 Test #2: b ....   Passed    0.01 sec`,
			expected: TestCounts{Passed: 1, Skipped: 1, Total: 2, Parsed: true},
		},
		{
			name: "truncated name glued to status",
			output: `1/2 Test #1: averyveryverylongtestname_that_fills***Failed  0.10 sec
2/2 Test #2: anotherverylongtestname_that_fills***Not Run (Disabled)   0.00 sec`,
			expected: TestCounts{
				Failed: 1, Skipped: 1, Total: 2, Parsed: true,
				FailedTests: []FailedTest{
					{Name: "averyveryverylongtestname_that_fills", Reason: "Failed"},
				},
			},
		},
		{
			name:   "dotted name",
			output: "1/1 Test #7: std.algorithms.find.pass ......***Failed  Required regular expression not found.  0.20 sec",
			expected: TestCounts{
				Failed: 1, Total: 1, Parsed: true,
				FailedTests: []FailedTest{
					{Name: "std.algorithms.find.pass", Reason: "Failed  Required regular expression not found."},
				},
			},
		},
		{
			name: "runs are added together",
			output: `1/2 Test #1: a ....   Passed    0.01 sec
2/2 Test #2: b ....***Failed    0.02 sec

50% tests passed, 1 tests failed out of 2

90% tests passed, 1 tests failed out of 10
1/1 Test #1: c ....   Passed    0.03 sec
`,
			expected: TestCounts{
				Passed: 11, Failed: 2, Total: 13, Parsed: true,
				FailedTests: []FailedTest{{Name: "b", Reason: "Failed"}},
			},
		},
		{
			name:     "summary only",
			output:   "83% tests passed, 2 tests failed out of 12\n",
			expected: TestCounts{Passed: 10, Failed: 2, Total: 12, Parsed: true},
		},
		{
			name:     "percentage-only summary is not countable",
			output:   "50% tests passed, 50% tests failed out of 2",
			expected: TestCounts{},
		},
		{
			name:     "empty output",
			output:   "",
			expected: TestCounts{},
		},
		{
			name:     "no test results",
			output:   "[ 10%] Building CXX object foo.o\n",
			expected: TestCounts{},
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := parser.Parse(tt.output)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCTestParserName(t *testing.T) {
	t.Parallel()
	var parser Parser = &CTestParser{}
	if parser.Name() != "ctest" {
		t.Errorf("Name: got %s, want ctest", parser.Name())
	}
}

func TestClassifyStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status   string
		expected testStatus
	}{
		{"Passed", statusPassed},
		{"Failed", statusFailed},
		{"Failed  Required regular expression not found.", statusFailed},
		{"Timeout", statusFailed},
		{"Exception: Numerical", statusFailed},
		{"Not Run", statusSkipped},
		{"Not Run (Disabled)", statusSkipped},
		{"Skipped", statusSkipped},
		{"Disabled", statusSkipped},
		{"", statusFailed},
	}

	for _, tt := range tests {

		tt := tt
		if got := classifyStatus(tt.status); got != tt.expected {
			t.Errorf("classifyStatus(%q) = %d, want %d", tt.status, got, tt.expected)
		}
	}
}
