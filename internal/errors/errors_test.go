package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestDataLoadError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDataLoadError("https://example.com/codes.json", cause)

	if !strings.Contains(err.Error(), "https://example.com/codes.json") {
		t.Errorf("Error() = %q, want it to name the source", err.Error())
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("Error() = %q, want it to include the cause", err.Error())
	}
	if !Is(err, cause) {
		t.Error("Is(err, cause) = false, want true")
	}
}

func TestDataLoadErrorEmptySource(t *testing.T) {
	err := NewDataLoadError("", New("missing"))
	if !strings.Contains(err.Error(), "embedded") {
		t.Errorf("Error() = %q, want empty source reported as embedded", err.Error())
	}
}

func TestClipboardError(t *testing.T) {
	cause := New("no display")
	err := NewClipboardError("not_found", cause)

	if !strings.Contains(err.Error(), "not_found") {
		t.Errorf("Error() = %q, want it to name the symbol", err.Error())
	}
	if Unwrap(err) != cause {
		t.Error("Unwrap did not return the cause")
	}
}

func TestAsMatchesWrappedTypes(t *testing.T) {
	var loadErr *DataLoadError
	wrapped := Join(New("outer"), NewDataLoadError("codes.json", ErrDatasetMalformed))

	if !As(wrapped, &loadErr) {
		t.Fatal("As failed to find DataLoadError in joined error")
	}
	if loadErr.Source != "codes.json" {
		t.Errorf("Source = %q, want %q", loadErr.Source, "codes.json")
	}
	if !Is(wrapped, ErrDatasetMalformed) {
		t.Error("Is(wrapped, ErrDatasetMalformed) = false, want true")
	}
}

func TestIsUserFacing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"data load error", NewDataLoadError("codes.json", New("boom")), true},
		{"clipboard error", NewClipboardError("ok", New("boom")), false},
		{"plain error", New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUserFacing(tt.err); got != tt.want {
				t.Errorf("IsUserFacing() = %v, want %v", got, tt.want)
			}
		})
	}
}
