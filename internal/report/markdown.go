package report

import (
	"strings"
)

var cellEscaper = strings.NewReplacer(
	`\`, `\\`,
	`|`, `\|`,
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
)

// escapeCell makes s safe to place in a single Markdown table cell.
func escapeCell(s string) string {
	return cellEscaper.Replace(s)
}

// escapePipes escapes only pipes, for cells whose content is a code span.
// Backslashes are literal inside code spans and must stay as they are.
func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// unescapeCell reverses escapeCell for single-line values.
func unescapeCell(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && (s[i+1] == '\\' || s[i+1] == '|') {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// splitRow splits a table row on unescaped pipes, dropping the outer ones.
func splitRow(row string) []string {
	row = strings.TrimSpace(row)
	row = strings.TrimPrefix(row, "|")

	var cells []string
	var cell strings.Builder
	for i := 0; i < len(row); i++ {
		c := row[i]
		switch {
		case c == '\\' && i+1 < len(row):
			cell.WriteByte(c)
			cell.WriteByte(row[i+1])
			i++
		case c == '|':
			cells = append(cells, strings.TrimSpace(cell.String()))
			cell.Reset()
		default:
			cell.WriteByte(c)
		}
	}
	if rest := strings.TrimSpace(cell.String()); rest != "" {
		cells = append(cells, rest)
	}
	return cells
}

// tableRow formats already escaped cells as a Markdown table row.
func tableRow(cells ...string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}

// tableHeader returns the header and delimiter rows for the given columns.
func tableHeader(columns ...string) string {
	delims := make([]string, len(columns))
	for i, c := range columns {
		delims[i] = strings.Repeat("-", max(len(c), 3))
	}
	return tableRow(columns...) + "\n" + tableRow(delims...)
}

// longestRun returns the length of the longest run of c in s.
func longestRun(s string, c byte) int {
	longest, current := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			current++
			longest = max(longest, current)
		} else {
			current = 0
		}
	}
	return longest
}

// codeSpan wraps s in an inline code span that survives backticks inside s.
func codeSpan(s string) string {
	ticks := strings.Repeat("`", longestRun(s, '`')+1)
	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") {
		return ticks + " " + s + " " + ticks
	}
	return ticks + s + ticks
}

// fence returns a code fence longer than any backtick run in body.
func fence(body string) string {
	return strings.Repeat("`", max(3, longestRun(body, '`')+1))
}
