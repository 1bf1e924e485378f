package report

import (
	"fmt"
	"strings"
)

// ParseEnvironmentTable reads a table produced by RenderEnvironment back
// into an Environment. Values equal to NotAvailable are kept verbatim.
func ParseEnvironmentTable(md string) (Environment, error) {
	var env Environment

	var rows []string
	for _, line := range strings.Split(md, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "|") {
			rows = append(rows, line)
		}
	}
	if len(rows) < 2 {
		return env, fmt.Errorf("environment table: missing header")
	}

	header := splitRow(rows[0])
	if len(header) != len(environmentColumns) || header[0] != environmentColumns[0] || header[1] != environmentColumns[1] {
		return env, fmt.Errorf("environment table: unexpected header %q", rows[0])
	}
	if !isDelimiterRow(rows[1]) {
		return env, fmt.Errorf("environment table: missing delimiter row")
	}

	seen := make(map[string]bool)
	for _, row := range rows[2:] {
		cells := splitRow(row)
		if len(cells) != 2 {
			return env, fmt.Errorf("environment table: row %q has %d cells, want 2", row, len(cells))
		}
		name, value := unescapeCell(cells[0]), unescapeCell(cells[1])
		if seen[name] {
			return env, fmt.Errorf("environment table: duplicate parameter %q", name)
		}
		if !env.set(name, value) {
			return env, fmt.Errorf("environment table: unknown parameter %q", name)
		}
		seen[name] = true
	}

	for _, f := range env.Fields() {
		if !seen[f.Name] {
			return env, fmt.Errorf("environment table: missing parameter %q", f.Name)
		}
	}

	return env, nil
}

func isDelimiterRow(row string) bool {
	cells := splitRow(row)
	if len(cells) == 0 {
		return false
	}
	for _, c := range cells {
		c = strings.Trim(c, ":")
		if c == "" || strings.Trim(c, "-") != "" {
			return false
		}
	}
	return true
}
