// Package golden loads reference cases that pair CI logs with the facts
// jobsummary is expected to extract from them.
package golden

// Case represents a single golden case loaded from JSON.
type Case struct {
	Name     string   // Case name (from filename)
	Suite    string   // Suite name (parent directory)
	Path     string   // Full path to the case file
	Input    Input    // Logs and extractor settings
	Expected Expected // Facts the extractors must produce
}

// Input holds the logs fed to the extractors.
type Input struct {
	BuildLog string `json:"build_log"`
	CTestLog string `json:"ctest_log"`
	// CodePrefixes and IncludeMarker override the extractor defaults when set.
	CodePrefixes  []string `json:"code_prefixes,omitempty"`
	IncludeMarker *string  `json:"include_marker,omitempty"`
}

// Expected holds the extraction results a case asserts.
type Expected struct {
	Warnings    []Warning `json:"warnings"`
	ResultLines int       `json:"result_lines"`
	Summary     string    `json:"summary"`
}

// Warning is one expected histogram entry, in first-seen order.
type Warning struct {
	ID      string `json:"id"`
	Count   int    `json:"count"`
	Example string `json:"example"`
}
