package golden

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeCase(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadSuite_ValidSuite_ReturnsCases(t *testing.T) {
	tmpDir := t.TempDir()
	suiteDir := filepath.Join(tmpDir, "gcc")

	writeCase(t, suiteDir, "unused.json", `{"input": {"build_log": "a [-Wunused]"}, "expected": {"warnings": [{"id": "-Wunused", "count": 1, "example": "a [-Wunused]"}]}}`)
	writeCase(t, suiteDir, "empty.json", `{"input": {}, "expected": {}}`)
	writeCase(t, suiteDir, "notes.txt", `not a case`)

	cases, err := LoadSuite(tmpDir, "gcc")
	if err != nil {
		t.Fatalf("LoadSuite() error = %v", err)
	}

	if len(cases) != 2 {
		t.Fatalf("len(cases) = %d, want 2", len(cases))
	}
	if cases[0].Name != "empty" || cases[1].Name != "unused" {
		t.Errorf("case order = [%s %s], want [empty unused]", cases[0].Name, cases[1].Name)
	}
	for _, c := range cases {
		if c.Suite != "gcc" {
			t.Errorf("Suite = %q, want %q", c.Suite, "gcc")
		}
	}

	want := []Warning{{ID: "-Wunused", Count: 1, Example: "a [-Wunused]"}}
	if diff := cmp.Diff(want, cases[1].Expected.Warnings); diff != "" {
		t.Errorf("Warnings mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSuite_NonExistentDir_ReturnsError(t *testing.T) {
	_, err := LoadSuite(t.TempDir(), "nonexistent")
	if err == nil {
		t.Error("LoadSuite() expected error for non-existent suite")
	}
}

func TestLoadSuite_InvalidCase_ReportsFile(t *testing.T) {
	tmpDir := t.TempDir()
	writeCase(t, filepath.Join(tmpDir, "bad"), "broken.json", `{"input": `)

	_, err := LoadSuite(tmpDir, "bad")
	if err == nil {
		t.Fatal("LoadSuite() expected error")
	}
	if !strings.Contains(err.Error(), "broken.json") {
		t.Errorf("error %q does not name the file", err)
	}
}

func TestLoadAll_SkipsFilesAndEmptySuites(t *testing.T) {
	tmpDir := t.TempDir()
	writeCase(t, filepath.Join(tmpDir, "msvc"), "codes.json", `{"input": {}, "expected": {}}`)
	if err := os.MkdirAll(filepath.Join(tmpDir, "empty"), 0755); err != nil {
		t.Fatal(err)
	}
	writeCase(t, tmpDir, "README.md", "# cases")

	suites, err := LoadAll(tmpDir)
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(suites) != 1 || len(suites["msvc"]) != 1 {
		t.Errorf("suites = %v, want only msvc with one case", suites)
	}
}

func TestLoadAll_MissingDir_ReturnsError(t *testing.T) {
	if _, err := LoadAll(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("LoadAll() expected error")
	}
}

func TestLoadCase_ResolvesFileRefs(t *testing.T) {
	tmpDir := t.TempDir()
	writeCase(t, tmpDir, "build.log", "x.cpp(3): warning C4996: unsafe\n")
	writeCase(t, tmpDir, "case.json", `{
		"input": {"build_log": {"$file": "build.log"}, "include_marker": ""},
		"expected": {"result_lines": 0}
	}`)

	c, err := LoadCase(filepath.Join(tmpDir, "case.json"))
	if err != nil {
		t.Fatalf("LoadCase() error = %v", err)
	}
	if c.Input.BuildLog != "x.cpp(3): warning C4996: unsafe\n" {
		t.Errorf("BuildLog = %q", c.Input.BuildLog)
	}
	if c.Input.IncludeMarker == nil || *c.Input.IncludeMarker != "" {
		t.Errorf("IncludeMarker = %v, want explicit empty string", c.Input.IncludeMarker)
	}
	if c.Name != "case" {
		t.Errorf("Name = %q, want case", c.Name)
	}
}

func TestLoadCase_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"missing input", `{"expected": {}}`, `missing required field "input"`},
		{"missing expected", `{"input": {}}`, `missing required field "expected"`},
		{"input not object", `{"input": "x", "expected": {}}`, "must be an object"},
		{"unknown input field", `{"input": {"log": "x"}, "expected": {}}`, "unknown field"},
		{"unknown expected field", `{"input": {}, "expected": {"total": 3}}`, "unknown field"},
		{"path traversal", `{"input": {"build_log": {"$file": "../secret"}}, "expected": {}}`, `contains ".."`},
		{"missing file ref", `{"input": {"build_log": {"$file": "absent.log"}}, "expected": {}}`, "absent.log"},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			writeCase(t, tmpDir, "case.json", tt.content)

			_, err := LoadCase(filepath.Join(tmpDir, "case.json"))
			if err == nil {
				t.Fatal("LoadCase() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want to contain %q", err, tt.wantErr)
			}
		})
	}
}
