package config

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in the config.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more config issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("config validation failed: %s", strings.Join(parts, "; "))
}

// Validate checks enums and required values.
func Validate(cfg *Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if cfg.Version != 1 {
		add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}
	switch cfg.UI {
	case UIAuto, UILive, UIPlain:
	default:
		add("ui", fmt.Sprintf("invalid mode %q (expected auto|live|plain)", cfg.UI))
	}
	switch cfg.Replay {
	case ReplayAsk, ReplayNever:
	default:
		add("replay", fmt.Sprintf("invalid policy %q (expected ask|never)", cfg.Replay))
	}
	if strings.TrimSpace(cfg.Bank) == "" {
		add("bank", "is required")
	}

	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: issues}
}
