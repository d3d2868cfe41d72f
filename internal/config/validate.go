package config

import (
	"fmt"
	"strings"

	"carnival/internal/session"
)

// MaxTimerSeconds bounds the per-question countdown.
const MaxTimerSeconds = 600

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a normalized config for correctness.
func Validate(cfg *Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if cfg.Version == 0 {
		add("version", "is required")
	} else if cfg.Version != 1 {
		add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if cfg.Timer.Seconds < 1 || cfg.Timer.Seconds > MaxTimerSeconds {
		add("timer.seconds", fmt.Sprintf("must be between 1 and %d", MaxTimerSeconds))
	}
	if _, err := session.ParseExpiryPolicy(cfg.Timer.OnExpire); err != nil {
		add("timer.on_expire", "must be one of pass, reveal, stop")
	}

	switch cfg.UI.Mode {
	case "auto", "live", "plain":
	default:
		add("ui.mode", "must be one of auto, live, plain")
	}

	teamIDs := map[string]struct{}{}
	for i, team := range cfg.Teams {
		prefix := fmt.Sprintf("teams[%d]", i)
		if team.ID == "" {
			add(prefix+".id", "is required")
		} else if _, exists := teamIDs[team.ID]; exists {
			add(prefix+".id", fmt.Sprintf("duplicate id %q", team.ID))
		} else {
			teamIDs[team.ID] = struct{}{}
		}
		if team.Score < 0 {
			add(prefix+".score", "must not be negative")
		}
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
