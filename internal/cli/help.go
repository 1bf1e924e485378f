package cli

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/AndreyAkinshin/jobsummary/internal/output"
)

type helpFlag struct {
	name        string
	description string
}

type helpGroup struct {
	title string
	flags []helpFlag
}

var helpGroups = []helpGroup{
	{
		title: "required flags",
		flags: []helpFlag{
			{"--build-log <path>", "Build log to scan for compiler warnings"},
			{"--ctest-log <path>", "CTest log to extract test results from"},
			{"--output-file <path>", "Markdown file to write the report to"},
		},
	},
	{
		title: "environment flags",
		flags: []helpFlag{
			{"--os <name>", "Operating system (default: N/A)"},
			{"--compiler-version <ver>", "Compiler version (default: N/A)"},
			{"--cmake-version <ver>", "CMake version (default: N/A)"},
			{"--cpu-model <name>", "CPU model (default: N/A)"},
			{"--detect-environment", "Fill unset OS and CPU model from the host"},
		},
	},
	{
		title: "other flags",
		flags: []helpFlag{
			{"--config <path>", "YAML file with environment and warning settings"},
			{"--append", "Append to the output file instead of replacing it"},
			{"-q, --quiet", "Suppress the console summary"},
			{"-v, --verbose", "Enable debug logging"},
			{"-h, --help", "Show this help"},
			{"--version", "Show version"},
		},
	},
}

// printUsage prints the help text.
func printUsage(w *output.Writer) {
	titleCase := cases.Title(language.English)

	w.Title("jobsummary - summarize build warnings and CTest results as Markdown")

	w.Section("Usage:")
	w.Usage("jobsummary --build-log <path> --ctest-log <path> --output-file <path> [flags]")

	width := 0
	for _, g := range helpGroups {
		for _, f := range g.flags {
			if len(f.name) > width {
				width = len(f.name)
			}
		}
	}

	for _, g := range helpGroups {
		w.Section(titleCase.String(g.title) + ":")
		for _, f := range g.flags {
			w.Flag(f.name, f.description, width)
		}
	}

	w.Section("Examples:")
	w.Example(
		"jobsummary --build-log build.log --ctest-log ctest.log --output-file $GITHUB_STEP_SUMMARY --append",
		"Add a report to the GitHub Actions job summary",
	)
	w.Example(
		"jobsummary --build-log build.log --ctest-log ctest.log --output-file summary.md --config jobsummary.yaml --os \"Ubuntu 22.04\"",
		"Take environment values from a config file, overriding the OS",
	)
}
