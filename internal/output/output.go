// Package output writes the jobsummary console digest, help text and
// diagnostics.
package output

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/mattn/go-isatty"
)

// ANSI escape sequences.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
)

// Tone selects the color of a metric value.
type Tone int

// Metric tones.
const (
	Neutral Tone = iota
	Good
	Bad
)

var toneColors = map[Tone]string{
	Good: green,
	Bad:  red,
}

// placeholderPattern matches argument placeholders such as <path> in help text.
var placeholderPattern = regexp.MustCompile(`<[^<>\s]+>`)

// Writer prints to the console, coloring output when enabled.
type Writer struct {
	out   io.Writer
	err   io.Writer
	color bool
	quiet bool
}

// New returns a Writer on os.Stdout and os.Stderr. Color is enabled when
// stdout is a terminal.
func New() *Writer {
	return NewWithWriters(os.Stdout, os.Stderr, stdoutIsTerminal())
}

// NewWithWriters returns a Writer on the given streams.
func NewWithWriters(out, err io.Writer, color bool) *Writer {
	return &Writer{out: out, err: err, color: color}
}

// SetQuiet enables or disables quiet mode.
func (w *Writer) SetQuiet(quiet bool) {
	w.quiet = quiet
}

// Quiet reports whether quiet mode is enabled.
func (w *Writer) Quiet() bool {
	return w.quiet
}

// Stdout returns the stream used for regular output.
func (w *Writer) Stdout() io.Writer {
	return w.out
}

// Blank prints an empty line.
func (w *Writer) Blank() {
	fmt.Fprintln(w.out)
}

// Warning prints a "warning:" diagnostic to stderr.
func (w *Writer) Warning(format string, args ...any) {
	fmt.Fprintf(w.err, "%s %s\n", w.paint(yellow, "warning:"), fmt.Sprintf(format, args...))
}

// Errorf prints a "jobsummary:" diagnostic to stderr.
func (w *Writer) Errorf(format string, args ...any) {
	fmt.Fprintf(w.err, "%s %s\n", w.paint(red, "jobsummary:"), fmt.Sprintf(format, args...))
}

// Title prints the first line of the help text.
func (w *Writer) Title(text string) {
	w.println(w.paint(bold+cyan, text))
}

// Section prints a help section header preceded by a blank line.
func (w *Writer) Section(title string) {
	w.Blank()
	w.println(w.paint(bold+yellow, title))
}

// Usage prints an indented synopsis line.
func (w *Writer) Usage(synopsis string) {
	w.println("  " + w.placeholders(synopsis))
}

// Flag prints a flag and its description, padding the flag to width.
func (w *Writer) Flag(name, description string, width int) {
	pad := strings.Repeat(" ", max(width-len(name), 0))
	w.println("  " + w.paint(yellow, w.placeholders(name)) + pad + "  " + w.paint(dim, description))
}

// Example prints a sample command line with an optional description below it.
func (w *Writer) Example(command, description string) {
	w.println("  " + w.paint(cyan, command))
	if description != "" {
		w.println("      " + w.paint(dim, description))
	}
}

// Heading opens a digest block.
func (w *Writer) Heading(title string) {
	w.Blank()
	w.println(w.paint(bold+cyan, "=== "+title+" ==="))
	w.Blank()
}

// Metric prints "label: value", coloring the value by tone.
func (w *Writer) Metric(label, value string, tone Tone) {
	w.println("  " + w.paint(dim, label+":") + " " + w.paint(toneColors[tone], value))
}

// Label prints an indented caption for the lines that follow.
func (w *Writer) Label(text string) {
	w.println("  " + w.paint(dim, text))
}

// Table prints rows as left-aligned columns under a dashed header rule.
// Cells beyond the header count are dropped.
func (w *Writer) Table(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for _, row := range append([][]string{headers}, rows...) {
		for i, n := 0, min(len(row), len(widths)); i < n; i++ {
			widths[i] = max(widths[i], len(row[i]))
		}
	}

	rule := make([]string, len(widths))
	for i, n := range widths {
		rule[i] = strings.Repeat("-", n)
	}

	w.tableRow(headers, widths)
	w.println("  " + strings.Join(rule, "  "))
	for _, row := range rows {
		w.tableRow(row, widths)
	}
}

func (w *Writer) tableRow(cells []string, widths []int) {
	var b strings.Builder
	for i, n := 0, min(len(cells), len(widths)); i < n; i++ {
		if i > 0 {
			b.WriteString("  ")
		}
		fmt.Fprintf(&b, "%-*s", widths[i], cells[i])
	}
	w.println("  " + strings.TrimRight(b.String(), " "))
}

// Done prints the closing line of a digest.
func (w *Writer) Done(format string, args ...any) {
	w.Blank()
	w.println(w.paint(green, fmt.Sprintf(format, args...)))
}

func (w *Writer) println(text string) {
	fmt.Fprintln(w.out, text)
}

// paint wraps text in an escape sequence when color is on.
func (w *Writer) paint(code, text string) string {
	if !w.color || code == "" {
		return text
	}
	return code + text + reset
}

func (w *Writer) placeholders(text string) string {
	return placeholderPattern.ReplaceAllStringFunc(text, func(p string) string {
		return w.paint(green, p)
	})
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
