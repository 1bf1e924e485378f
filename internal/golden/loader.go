package golden

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LoadSuite loads all cases from a suite directory.
func LoadSuite(casesDir, suite string) ([]Case, error) {
	suiteDir := filepath.Join(casesDir, suite)

	if _, err := os.Stat(suiteDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("golden suite directory not found: %s", suiteDir)
	}

	matches, err := findCaseFiles(suiteDir)
	if err != nil {
		return nil, err
	}

	var cases []Case
	for _, path := range matches {
		c, err := LoadCase(path)
		if err != nil {
			return nil, fmt.Errorf("golden suite %q: %w (file: %s)", suite, err, path)
		}
		c.Suite = suite
		cases = append(cases, *c)
	}

	// Sort by name for deterministic order
	sort.Slice(cases, func(i, j int) bool {
		return cases[i].Name < cases[j].Name
	})

	return cases, nil
}

// LoadAll loads cases from every suite directory under casesDir.
func LoadAll(casesDir string) (map[string][]Case, error) {
	entries, err := os.ReadDir(casesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read golden cases directory: %w", err)
	}

	suites := make(map[string][]Case)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		suite := entry.Name()
		cases, err := LoadSuite(casesDir, suite)
		if err != nil {
			return nil, err
		}

		if len(cases) > 0 {
			suites[suite] = cases
		}
	}

	return suites, nil
}

// LoadCase loads a single case from a JSON file. String values of the form
// {"$file": "name"} are replaced with the contents of that file, resolved
// relative to the case file.
func LoadCase(path string) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	input, ok := raw["input"]
	if !ok {
		return nil, fmt.Errorf("missing required field \"input\"")
	}
	expected, ok := raw["expected"]
	if !ok {
		return nil, fmt.Errorf("missing required field \"expected\"")
	}

	baseDir := filepath.Dir(path)
	input, err = resolveFileRefs(input, baseDir)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}

	c := &Case{
		Name: strings.TrimSuffix(filepath.Base(path), ".json"),
		Path: path,
	}
	if err := decodeStrict(input, &c.Input); err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	if err := decodeStrict(expected, &c.Expected); err != nil {
		return nil, fmt.Errorf("expected: %w", err)
	}

	return c, nil
}

// decodeStrict re-encodes a resolved JSON value into dst, rejecting
// unknown fields.
func decodeStrict(value interface{}, dst interface{}) error {
	if _, ok := value.(map[string]interface{}); !ok {
		return fmt.Errorf("must be an object")
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// findCaseFiles returns the .json files under dir in lexical order.
func findCaseFiles(dir string) ([]string, error) {
	var matches []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".json") {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(matches)
	return matches, nil
}

// resolveFileRefs recursively resolves $file references in case data.
func resolveFileRefs(value interface{}, baseDir string) (interface{}, error) {
	switch v := value.(type) {
	case map[string]interface{}:
		if fileRef, ok := v["$file"].(string); ok {
			return loadFileRef(fileRef, baseDir)
		}

		result := make(map[string]interface{})
		for key, val := range v {
			resolved, err := resolveFileRefs(val, baseDir)
			if err != nil {
				return nil, err
			}
			result[key] = resolved
		}
		return result, nil

	case []interface{}:
		result := make([]interface{}, len(v))
		for i, val := range v {
			resolved, err := resolveFileRefs(val, baseDir)
			if err != nil {
				return nil, err
			}
			result[i] = resolved
		}
		return result, nil

	default:
		return value, nil
	}
}

// loadFileRef loads a file referenced by $file as a raw string.
func loadFileRef(ref, baseDir string) (interface{}, error) {
	// Security: prevent path traversal
	if strings.Contains(ref, "..") {
		return nil, fmt.Errorf("$file path contains \"..\": %s", ref)
	}

	path := filepath.Join(baseDir, ref)

	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, err
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(absPath, absBase) {
		return nil, fmt.Errorf("$file path escapes case directory: %s", ref)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("$file %q: %w", ref, err)
	}
	return string(data), nil
}
