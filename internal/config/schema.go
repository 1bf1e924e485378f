// Package config provides loading and validation for the optional jobsummary.yaml file.
package config

// Config represents the complete jobsummary.yaml configuration.
type Config struct {
	Environment *EnvironmentConfig `yaml:"environment,omitempty" json:"environment,omitempty"`
	Warnings    *WarningsConfig    `yaml:"warnings,omitempty" json:"warnings,omitempty"`
}

// EnvironmentConfig supplies fallback values for the environment table.
// Command-line flags take precedence over these values.
type EnvironmentConfig struct {
	OS              string `yaml:"os,omitempty" json:"os,omitempty"`
	CompilerVersion string `yaml:"compiler_version,omitempty" json:"compiler_version,omitempty"`
	CMakeVersion    string `yaml:"cmake_version,omitempty" json:"cmake_version,omitempty"`
	CPUModel        string `yaml:"cpu_model,omitempty" json:"cpu_model,omitempty"`
}

// WarningsConfig tunes the warning extractor.
type WarningsConfig struct {
	// CodePrefixes lists the diagnostic code families (e.g. "C", "LNK").
	CodePrefixes []string `yaml:"code_prefixes,omitempty" json:"code_prefixes,omitempty"`
	// IncludeMarker overrides the include-path marker. An explicit empty
	// string disables the include-line preference.
	IncludeMarker *string `yaml:"include_marker,omitempty" json:"include_marker,omitempty"`
}
