package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/httpdex/httpdex/internal/errors"
	"github.com/httpdex/httpdex/internal/status"
)

const sampleDoc = `{
  "generated_at": "2024-01-15T10:30:00Z",
  "status_codes": [
    {"code": 200, "message": "OK", "symbol": "ok", "category": "Success", "mdn_url": "https://example.com/200"},
    {"code": 404, "message": "Not Found", "symbol": "not_found", "category": "Client Error", "mdn_url": "https://example.com/404"},
    {"code": 418, "message": "I'm a Teapot", "symbol": "im_a_teapot", "category": "Nonsense", "mdn_url": ""}
  ]
}`

func TestLoadEmbedded(t *testing.T) {
	ds, err := Load(context.Background(), "")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(ds.Catalog) == 0 {
		t.Fatal("embedded catalog should not be empty")
	}
	if ds.GeneratedAt == "" {
		t.Error("embedded dataset should carry generated_at")
	}

	// Every embedded entry must carry a valid category and a plausible code.
	for _, c := range ds.Catalog {
		if !c.Category.Valid() {
			t.Errorf("code %d has invalid category", c.Code)
		}
		if c.Code < 100 || c.Code > 599 {
			t.Errorf("code %d out of range", c.Code)
		}
		if c.Symbol == "" {
			t.Errorf("code %d has empty symbol", c.Code)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codes.json")
	if err := os.WriteFile(path, []byte(sampleDoc), 0644); err != nil {
		t.Fatal(err)
	}

	ds, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(ds.Catalog) != 3 {
		t.Fatalf("got %d codes, want 3", len(ds.Catalog))
	}
	if ds.Catalog[0].Code != 200 || ds.Catalog[0].Category != status.CategorySuccess {
		t.Errorf("first entry = %+v, want 200/Success", ds.Catalog[0])
	}
	// Unknown labels are preserved as CategoryUnknown, not rejected.
	if ds.Catalog[2].Category != status.CategoryUnknown {
		t.Errorf("unknown category label should parse to CategoryUnknown, got %v", ds.Catalog[2].Category)
	}
}

func TestLoadFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")
	_, err := Load(context.Background(), path)
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	var loadErr *errors.DataLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("error should be a DataLoadError, got %T", err)
	}
	if loadErr.Source != path {
		t.Errorf("Source = %q, want %q", loadErr.Source, path)
	}
	if !errors.Is(err, errors.ErrDatasetUnavailable) {
		t.Error("missing file should wrap ErrDatasetUnavailable")
	}
}

func TestLoadFileInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(context.Background(), path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "parse") {
		t.Errorf("error should mention parsing, got: %v", err)
	}
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleDoc))
	}))
	defer srv.Close()

	ds, err := Load(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(ds.Catalog) != 3 {
		t.Errorf("got %d codes, want 3", len(ds.Catalog))
	}
}

func TestLoadHTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone fishing", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := Load(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected error for non-2xx response")
	}
	if !strings.Contains(err.Error(), "503") {
		t.Errorf("error should carry the response status, got: %v", err)
	}
}

func TestFormatGeneratedAt(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-01-15T10:30:00Z", "2024-01-15T10:30:00.000Z"},
		{"2024-01-15T10:30:00.000Z", "2024-01-15T10:30:00.000Z"},
		{"2024-01-15T12:30:00+02:00", "2024-01-15T10:30:00.000Z"},
		{"2024-01-15T10:30:00.123456789Z", "2024-01-15T10:30:00.123Z"},
		// Absent or malformed values pass through unchanged.
		{"", ""},
		{"yesterday", "yesterday"},
		{"2024-01-15", "2024-01-15"},
	}

	for _, tt := range tests {
		if got := FormatGeneratedAt(tt.in); got != tt.want {
			t.Errorf("FormatGeneratedAt(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
