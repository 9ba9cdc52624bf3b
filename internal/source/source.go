// Package source loads the status code dataset. A dataset is a single JSON
// document read once at startup, either from the embedded copy, a local
// file, or an HTTP(S) URL. There is no refresh or retry: a failed load is
// surfaced to the caller and the catalog stays empty.
package source

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/httpdex/httpdex/internal/errors"
	"github.com/httpdex/httpdex/internal/status"
)

//go:embed data/status_codes.json
var embedded embed.FS

// embeddedPath is the dataset shipped with the binary, used when no
// source is configured.
const embeddedPath = "data/status_codes.json"

// fetchTimeout bounds the one-time HTTP dataset fetch.
const fetchTimeout = 15 * time.Second

// Document is the wire shape of a dataset.
type Document struct {
	GeneratedAt string      `json:"generated_at"`
	StatusCodes []codeEntry `json:"status_codes"`
}

type codeEntry struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	Symbol   string `json:"symbol"`
	Category string `json:"category"`
	MDNUrl   string `json:"mdn_url"`
}

// Dataset is a parsed dataset ready for the engine.
type Dataset struct {
	// GeneratedAt is the raw generated_at value from the document.
	// May be empty. Use FormatGeneratedAt for display.
	GeneratedAt string
	Catalog     status.Catalog
}

// Load reads and parses the dataset identified by ref. An empty ref loads
// the embedded dataset; a ref starting with http:// or https:// is fetched
// with a single GET; anything else is treated as a filesystem path.
//
// The category field is taken as given. Entries whose label does not parse
// carry status.CategoryUnknown and will simply never match a category
// selection.
func Load(ctx context.Context, ref string) (*Dataset, error) {
	raw, err := read(ctx, ref)
	if err != nil {
		return nil, errors.NewDataLoadError(ref, fmt.Errorf("%w: %v", errors.ErrDatasetUnavailable, err))
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.NewDataLoadError(ref, fmt.Errorf("failed to parse dataset: %w", errors.Join(errors.ErrDatasetMalformed, err)))
	}

	catalog := make(status.Catalog, 0, len(doc.StatusCodes))
	for _, e := range doc.StatusCodes {
		catalog = append(catalog, status.Code{
			Code:         e.Code,
			Message:      e.Message,
			Symbol:       e.Symbol,
			Category:     status.ParseCategory(e.Category),
			ReferenceURL: e.MDNUrl,
		})
	}

	return &Dataset{
		GeneratedAt: doc.GeneratedAt,
		Catalog:     catalog,
	}, nil
}

func read(ctx context.Context, ref string) ([]byte, error) {
	switch {
	case ref == "":
		raw, err := embedded.ReadFile(embeddedPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded dataset: %w", err)
		}
		return raw, nil

	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return fetch(ctx, ref)

	default:
		raw, err := os.ReadFile(ref)
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset file: %w", err)
		}
		return raw, nil
	}
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build dataset request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("dataset fetch returned %s", resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset response: %w", err)
	}
	return raw, nil
}

// FormatGeneratedAt reformats a generated_at value to strict ISO-8601 UTC
// with millisecond precision (e.g. "2024-01-15T10:30:00.000Z"). Values
// that are empty or do not parse as RFC 3339 are returned unchanged.
func FormatGeneratedAt(generatedAt string) string {
	if generatedAt == "" {
		return generatedAt
	}
	t, err := time.Parse(time.RFC3339, generatedAt)
	if err != nil {
		return generatedAt
	}
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
