// Package report renders build and test facts as a Markdown job summary.
package report

import "strings"

// NotAvailable is the sentinel shown for environment values that were not supplied.
const NotAvailable = "N/A"

// Environment describes the machine a CI job ran on.
// Empty fields are rendered as NotAvailable.
type Environment struct {
	OS              string
	CompilerVersion string
	CMakeVersion    string
	CPUModel        string
}

// Parameter names in table order.
const (
	ParamOS              = "OS"
	ParamCompilerVersion = "Compiler version"
	ParamCMakeVersion    = "CMake version"
	ParamCPUModel        = "CPU model"
)

// Field is one row of the environment table.
type Field struct {
	Name  string
	Value string
}

// Fields returns the four environment parameters in table order,
// substituting NotAvailable for blank values.
func (e Environment) Fields() []Field {
	return []Field{
		{Name: ParamOS, Value: orNotAvailable(e.OS)},
		{Name: ParamCompilerVersion, Value: orNotAvailable(e.CompilerVersion)},
		{Name: ParamCMakeVersion, Value: orNotAvailable(e.CMakeVersion)},
		{Name: ParamCPUModel, Value: orNotAvailable(e.CPUModel)},
	}
}

// Merge returns e with blank fields filled in from fallback.
func (e Environment) Merge(fallback Environment) Environment {
	return Environment{
		OS:              firstNonBlank(e.OS, fallback.OS),
		CompilerVersion: firstNonBlank(e.CompilerVersion, fallback.CompilerVersion),
		CMakeVersion:    firstNonBlank(e.CMakeVersion, fallback.CMakeVersion),
		CPUModel:        firstNonBlank(e.CPUModel, fallback.CPUModel),
	}
}

// set assigns the field named by a table parameter. It reports false for
// unknown names.
func (e *Environment) set(name, value string) bool {
	switch name {
	case ParamOS:
		e.OS = value
	case ParamCompilerVersion:
		e.CompilerVersion = value
	case ParamCMakeVersion:
		e.CMakeVersion = value
	case ParamCPUModel:
		e.CPUModel = value
	default:
		return false
	}
	return true
}

func orNotAvailable(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return NotAvailable
	}
	return v
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
