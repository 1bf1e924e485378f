package config

import "github.com/AndreyAkinshin/jobsummary/internal/warnings"

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	applyEnvironmentDefaults(cfg)
	applyWarningsDefaults(cfg)
}

func applyEnvironmentDefaults(cfg *Config) {
	if cfg.Environment == nil {
		cfg.Environment = &EnvironmentConfig{}
	}
}

func applyWarningsDefaults(cfg *Config) {
	if cfg.Warnings == nil {
		cfg.Warnings = &WarningsConfig{}
	}
	if len(cfg.Warnings.CodePrefixes) == 0 {
		cfg.Warnings.CodePrefixes = append([]string(nil), warnings.DefaultCodePrefixes...)
	}
	if cfg.Warnings.IncludeMarker == nil {
		marker := warnings.DefaultIncludeMarker
		cfg.Warnings.IncludeMarker = &marker
	}
}
