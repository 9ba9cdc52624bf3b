// Package errors provides centralized error definitions for the httpdex
// codebase. It defines domain-specific error types, sentinel errors, and
// a classification helper that decides which failures are shown to the
// user and which are only logged.
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Dataset-related sentinel errors
var (
	// ErrDatasetMalformed indicates that a dataset document could not be parsed.
	ErrDatasetMalformed = New("dataset document malformed")
	// ErrDatasetUnavailable indicates that a dataset source could not be read.
	ErrDatasetUnavailable = New("dataset source unavailable")
)

// DataLoadError is returned when the status code catalog cannot be loaded.
// It is user-facing: the viewer shows it in a persistent banner because an
// empty catalog makes the viewer useless without an explanation.
type DataLoadError struct {
	// Source identifies what was being read: "embedded", a file path, or
	// a URL.
	Source string
	Err    error
}

// NewDataLoadError creates a DataLoadError for the given source.
func NewDataLoadError(source string, err error) *DataLoadError {
	if source == "" {
		source = "embedded"
	}
	return &DataLoadError{Source: source, Err: err}
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("failed to load status codes from %s: %v", e.Source, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}

// ClipboardError is returned when copying a symbol to the system clipboard
// fails. It is not user-facing: the copy confirmation simply never shows
// and the failure is logged.
type ClipboardError struct {
	// Symbol is the symbol that was being copied, without the leading colon.
	Symbol string
	Err    error
}

// NewClipboardError creates a ClipboardError for the given symbol.
func NewClipboardError(symbol string, err error) *ClipboardError {
	return &ClipboardError{Symbol: symbol, Err: err}
}

func (e *ClipboardError) Error() string {
	return fmt.Sprintf("failed to copy symbol %q to clipboard: %v", e.Symbol, e.Err)
}

func (e *ClipboardError) Unwrap() error {
	return e.Err
}

// IsUserFacing reports whether err should be surfaced in the UI rather
// than only logged.
func IsUserFacing(err error) bool {
	var loadErr *DataLoadError
	return As(err, &loadErr)
}
