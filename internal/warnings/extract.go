package warnings

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// DefaultIncludeMarker marks lines that point into a header/include path.
const DefaultIncludeMarker = "include"

// DefaultCodePrefixes are the coded diagnostic families recognized by default:
// MSVC compiler (C4996), command line (D9025), linker (LNK4098) and MSBuild (MSB8065).
var DefaultCodePrefixes = []string{"C", "D", "LNK", "MSB"}

// flagPattern matches bracketed GCC/Clang flags such as [-Wsign-compare].
// Clang prefixes promoted warnings with "-Werror,", which is not part of the identifier.
const flagPattern = `\[(?:-Werror,)?(-W[^\]\s,]+)\]`

var codePrefixRegex = regexp.MustCompile(`^[A-Z]+$`)

var defaultExtractor = MustNewExtractor(DefaultCodePrefixes, DefaultIncludeMarker)

// Extractor scans build logs for warning identifiers.
type Extractor struct {
	pattern       *regexp.Regexp
	includeMarker string
}

// NewExtractor creates an Extractor recognizing the given code prefixes.
// Each prefix must consist of uppercase ASCII letters. An empty includeMarker
// disables the include-line preference for examples.
func NewExtractor(codePrefixes []string, includeMarker string) (*Extractor, error) {
	if len(codePrefixes) == 0 {
		return nil, fmt.Errorf("at least one diagnostic code prefix is required")
	}

	prefixes := make([]string, 0, len(codePrefixes))
	seen := make(map[string]bool)
	for _, p := range codePrefixes {
		if !codePrefixRegex.MatchString(p) {
			return nil, fmt.Errorf("invalid diagnostic code prefix %q: must be uppercase letters", p)
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		prefixes = append(prefixes, p)
	}

	// Longest first so LNK is tried before a shorter prefix could claim it.
	sort.SliceStable(prefixes, func(i, j int) bool {
		return len(prefixes[i]) > len(prefixes[j])
	})

	codePattern := `\b((?:` + strings.Join(prefixes, "|") + `)\d{4})\b`
	re, err := regexp.Compile(flagPattern + "|" + codePattern)
	if err != nil {
		return nil, fmt.Errorf("compile warning pattern: %w", err)
	}

	return &Extractor{pattern: re, includeMarker: includeMarker}, nil
}

// MustNewExtractor is like NewExtractor but panics on invalid arguments.
func MustNewExtractor(codePrefixes []string, includeMarker string) *Extractor {
	e, err := NewExtractor(codePrefixes, includeMarker)
	if err != nil {
		panic(err)
	}
	return e
}

// Extract scans buildLog with the default code prefixes and include marker.
func Extract(buildLog string) *Histogram {
	return defaultExtractor.Extract(buildLog)
}

// Extract scans buildLog and returns a histogram of warning identifiers.
// A log without recognizable warnings yields an empty histogram.
//
// Recognized shapes:
//
//	foo.h:10:5: warning: comparison of integers [-Wsign-compare]
//	bar.cpp(12): warning C4996: 'strcpy': This function may be unsafe
//	LINK : warning LNK4098: defaultlib 'MSVCRT' conflicts with use of other libs
func (e *Extractor) Extract(buildLog string) *Histogram {
	h := newHistogram()

	for _, line := range strings.Split(buildLog, "\n") {
		line = strings.TrimSuffix(line, "\r")

		matches := e.pattern.FindAllStringSubmatch(line, -1)
		if len(matches) == 0 {
			continue
		}

		included := e.includeMarker != "" && strings.Contains(line, e.includeMarker)
		for _, match := range matches {
			id := match[1]
			if id == "" {
				id = match[2]
			}
			h.record(id, line, included)
		}
	}

	return h
}
