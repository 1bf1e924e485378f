package report

import (
	"html"
	"strconv"
	"strings"

	"github.com/AndreyAkinshin/jobsummary/internal/testparser"
	"github.com/AndreyAkinshin/jobsummary/internal/warnings"
)

// Table headers.
var (
	environmentColumns = []string{"Parameter", "Value"}
	warningColumns     = []string{"Warning", "Count", "Example"}
)

// TestsTitle prefixes the visible summary of the collapsible test section.
const TestsTitle = "CTest results"

// RenderEnvironment renders env as a two-column table with all four
// parameters in fixed order.
func RenderEnvironment(env Environment) string {
	var b strings.Builder
	b.WriteString(tableHeader(environmentColumns...))
	for _, f := range env.Fields() {
		b.WriteString("\n")
		b.WriteString(tableRow(escapeCell(f.Name), escapeCell(f.Value)))
	}
	return b.String()
}

// RenderWarnings renders h as a three-column table in first-seen order.
// An empty histogram yields the header rows only.
func RenderWarnings(h *warnings.Histogram) string {
	var b strings.Builder
	b.WriteString(tableHeader(warningColumns...))
	for _, e := range h.Entries() {
		b.WriteString("\n")
		b.WriteString(tableRow(
			escapePipes(codeSpan(e.ID)),
			strconv.Itoa(e.Count),
			escapePipes(codeSpan(strings.TrimSpace(e.Example))),
		))
	}
	return b.String()
}

// RenderTests renders the test excerpt as a collapsible section whose
// visible title embeds the summary line. An empty summary is allowed.
func RenderTests(excerpt testparser.Excerpt) string {
	body := strings.Join(excerpt.Lines, "\n")
	ticks := fence(body)

	var b strings.Builder
	b.WriteString("<details>\n")
	b.WriteString("<summary>")
	b.WriteString(TestsTitle)
	b.WriteString(": ")
	b.WriteString(html.EscapeString(excerpt.Summary))
	b.WriteString("</summary>\n\n")
	b.WriteString(ticks)
	b.WriteString("\n")
	if len(excerpt.Lines) > 0 {
		b.WriteString(body)
		b.WriteString("\n")
	}
	b.WriteString(ticks)
	b.WriteString("\n\n")
	b.WriteString("</details>")
	return b.String()
}

// Assemble joins the environment table, the warning table and the test
// section, separated by blank lines and terminated by a newline.
func Assemble(env Environment, h *warnings.Histogram, excerpt testparser.Excerpt) string {
	return strings.Join([]string{
		RenderEnvironment(env),
		RenderWarnings(h),
		RenderTests(excerpt),
	}, "\n\n") + "\n"
}
