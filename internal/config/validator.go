package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "tui.search_debounce_ms")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation
// errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.SearchDebounceMs < 0 {
		errors = append(errors, ValidationError{
			Field:   "tui.search_debounce_ms",
			Value:   c.TUI.SearchDebounceMs,
			Message: "must be non-negative",
		})
	}

	// Anything beyond a few seconds makes search feel broken
	const maxDebounceMs = 5000
	if c.TUI.SearchDebounceMs > maxDebounceMs {
		errors = append(errors, ValidationError{
			Field:   "tui.search_debounce_ms",
			Value:   c.TUI.SearchDebounceMs,
			Message: fmt.Sprintf("exceeds maximum of %dms", maxDebounceMs),
		})
	}

	if c.TUI.CopyFlashMs < 0 {
		errors = append(errors, ValidationError{
			Field:   "tui.copy_flash_ms",
			Value:   c.TUI.CopyFlashMs,
			Message: "must be non-negative",
		})
	}

	const maxCopyFlashMs = 10000
	if c.TUI.CopyFlashMs > maxCopyFlashMs {
		errors = append(errors, ValidationError{
			Field:   "tui.copy_flash_ms",
			Value:   c.TUI.CopyFlashMs,
			Message: fmt.Sprintf("exceeds maximum of %dms", maxCopyFlashMs),
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	level := strings.ToLower(c.Logging.Level)
	if level != "" && !slices.Contains(ValidLogLevels(), level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}
