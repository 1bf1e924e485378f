package config

import (
	"fmt"
	"regexp"
)

// Diagnostic code prefix: one or more uppercase letters.
var codePrefixPattern = regexp.MustCompile(`^[A-Z]+$`)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a configuration for errors and returns warnings for non-fatal issues.
func Validate(cfg *Config) (warnings []string, err error) {
	if cfg.Warnings == nil {
		return nil, nil
	}

	seen := make(map[string]bool)
	for i, prefix := range cfg.Warnings.CodePrefixes {
		if !codePrefixPattern.MatchString(prefix) {
			return nil, &ValidationError{
				Field:   fmt.Sprintf("warnings.code_prefixes[%d]", i),
				Message: fmt.Sprintf("%q must consist of uppercase letters", prefix),
			}
		}
		if seen[prefix] {
			warnings = append(warnings, fmt.Sprintf("duplicate code prefix %q in warnings.code_prefixes (ignored)", prefix))
		}
		seen[prefix] = true
	}

	return warnings, nil
}
