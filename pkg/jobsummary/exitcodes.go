// Package jobsummary provides public constants for CI scripts that invoke
// the jobsummary CLI.
package jobsummary

// Exit codes returned by the jobsummary CLI.
// These constants allow external tools to check exit codes symbolically
// rather than using magic numbers.
const (
	// ExitSuccess indicates the report was written successfully.
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure (unreadable log, unwritable report, etc.).
	ExitFailure = 1

	// ExitConfigError indicates a usage or configuration error (missing flag, invalid config file, etc.).
	ExitConfigError = 2
)
