// Package engine implements the filter engine: it holds the loaded catalog
// and the active filter state (search term plus selected categories) and
// keeps a derived filtered catalog consistent with them.
//
// Filtering is the conjunction of two predicates:
//
//  1. Search: passes when the term is empty, the code's decimal text
//     starts with the term, or the message or symbol contains the term
//     (case-insensitive).
//  2. Category: passes when no category is selected, or the item's
//     category is among the selected ones.
//
// An empty selection means "no restriction", not "nothing passes". That
// asymmetry is deliberate and relied on by the UI's default state.
package engine

import (
	"fmt"
	"strings"

	"github.com/httpdex/httpdex/internal/status"
)

// Summary describes the current category selection for display
// (the "N Categories Selected" dropdown label).
type Summary struct {
	Count int
	Label string
}

// Engine maintains the filtered view over a catalog. It is not safe for
// concurrent use; the TUI's message loop serializes all mutations.
type Engine struct {
	catalog    status.Catalog
	searchTerm string
	selected   map[status.Category]bool
	filtered   status.Catalog

	onSelection func(Summary)
}

// New creates an engine over the given catalog with an empty search term
// and no categories selected, so the initial filtered view is the whole
// catalog.
func New(catalog status.Catalog) *Engine {
	e := &Engine{
		catalog:  catalog,
		selected: make(map[status.Category]bool),
	}
	e.recompute()
	return e
}

// SetCatalog replaces the catalog, keeping the current filter state.
// Used when the dataset finishes loading after the engine was created.
func (e *Engine) SetCatalog(catalog status.Catalog) {
	e.catalog = catalog
	e.recompute()
}

// OnSelectionChange registers a callback invoked after every category
// toggle with the new selection summary. Passing nil removes it.
func (e *Engine) OnSelectionChange(fn func(Summary)) {
	e.onSelection = fn
}

// SetSearchTerm normalizes the term to lowercase, stores it, and
// recomputes the filtered view. Callers debounce rapid input; the engine
// itself recomputes synchronously on every call.
func (e *Engine) SetSearchTerm(term string) {
	e.searchTerm = strings.ToLower(term)
	e.recompute()
}

// SearchTerm returns the current normalized search term.
func (e *Engine) SearchTerm() string {
	return e.searchTerm
}

// ToggleCategory adds the category to the selection if absent, removes it
// if present. Multiple categories may be active at once; toggling the same
// category twice restores the prior selection. Invalid categories are
// accepted and simply never match any item.
func (e *Engine) ToggleCategory(cat status.Category) {
	if e.selected[cat] {
		delete(e.selected, cat)
	} else {
		e.selected[cat] = true
	}
	e.recompute()

	if e.onSelection != nil {
		e.onSelection(e.SelectionSummary())
	}
}

// IsSelected reports whether the category is currently selected.
func (e *Engine) IsSelected(cat status.Category) bool {
	return e.selected[cat]
}

// SelectedCount returns the number of selected categories.
func (e *Engine) SelectedCount() int {
	return len(e.selected)
}

// SelectionSummary returns the count and display label for the current
// selection.
func (e *Engine) SelectionSummary() Summary {
	n := len(e.selected)
	switch n {
	case 0:
		return Summary{Count: 0, Label: "All Categories"}
	case 1:
		return Summary{Count: 1, Label: "1 Category Selected"}
	default:
		return Summary{Count: n, Label: fmt.Sprintf("%d Categories Selected", n)}
	}
}

// Filtered returns the current filtered catalog. The result preserves the
// catalog's original order and is valid (possibly empty) at all times.
func (e *Engine) Filtered() status.Catalog {
	return e.filtered
}

// recompute rebuilds the filtered catalog from the full catalog and the
// current filter state. O(n) in catalog size; order-preserving.
func (e *Engine) recompute() {
	filtered := make(status.Catalog, 0, len(e.catalog))
	for _, c := range e.catalog {
		if e.matchesSearch(c) && e.matchesCategory(c) {
			filtered = append(filtered, c)
		}
	}
	e.filtered = filtered
}

func (e *Engine) matchesSearch(c status.Code) bool {
	if e.searchTerm == "" {
		return true
	}
	if strings.HasPrefix(c.CodeText(), e.searchTerm) {
		return true
	}
	if strings.Contains(strings.ToLower(c.Message), e.searchTerm) {
		return true
	}
	return strings.Contains(strings.ToLower(c.Symbol), e.searchTerm)
}

func (e *Engine) matchesCategory(c status.Code) bool {
	if len(e.selected) == 0 {
		return true
	}
	return e.selected[c.Category]
}
