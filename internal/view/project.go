// Package view projects a filtered catalog into the structure a renderer
// consumes. Projection is pure and total: it never fails, never reorders
// items, and signals an empty result explicitly instead of handing the
// renderer a blank structure.
package view

import "github.com/httpdex/httpdex/internal/status"

// Mode selects the presentation layout. It never affects which items are
// included, only how they are arranged.
type Mode int

const (
	ModeFlat Mode = iota
	ModeCompactFlat
	ModeGrouped
)

// String returns the display name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeFlat:
		return "Flat"
	case ModeCompactFlat:
		return "Compact"
	case ModeGrouped:
		return "Grouped"
	}
	return "Unknown"
}

// Next cycles to the following mode, wrapping after Grouped.
func (m Mode) Next() Mode {
	switch m {
	case ModeFlat:
		return ModeCompactFlat
	case ModeCompactFlat:
		return ModeGrouped
	default:
		return ModeFlat
	}
}

// Group is one category bucket of a grouped projection.
type Group struct {
	Category status.Category
	Codes    status.Catalog
}

// Projection is the renderable structure for one (filtered catalog, mode)
// pair. Exactly one of Flat or Groups is populated depending on the mode;
// Empty is the explicit no-results signal.
type Projection struct {
	Mode  Mode
	Empty bool

	// Flat holds the items for ModeFlat and ModeCompactFlat, in the
	// filtered catalog's order.
	Flat status.Catalog

	// Groups holds the buckets for ModeGrouped, in canonical category
	// order. Categories with no matching items are omitted.
	Groups []Group
}

// Project converts a filtered catalog and a mode into a Projection.
func Project(filtered status.Catalog, mode Mode) Projection {
	p := Projection{Mode: mode}

	if len(filtered) == 0 {
		p.Empty = true
		return p
	}

	switch mode {
	case ModeGrouped:
		buckets := make(map[status.Category]status.Catalog)
		for _, c := range filtered {
			buckets[c.Category] = append(buckets[c.Category], c)
		}
		// Emission order is the canonical enum order, never the order
		// categories first appear in the data.
		for _, cat := range status.Categories() {
			if codes, ok := buckets[cat]; ok {
				p.Groups = append(p.Groups, Group{Category: cat, Codes: codes})
			}
		}
	default:
		p.Flat = filtered
	}

	return p
}
