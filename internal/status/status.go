// Package status defines the HTTP status code data model: the Code record,
// the closed Category enumeration, and the ordered Catalog loaded from a
// dataset. The engine and projector operate purely on these types.
package status

import "strconv"

// Category is one of the five canonical HTTP status groups.
// The declaration order is the canonical display order used by
// grouped projections.
type Category int

const (
	// CategoryUnknown is the zero value for unparseable labels.
	// It is never produced by CategoryForCode and matches no item.
	CategoryUnknown Category = iota
	CategoryInformational
	CategorySuccess
	CategoryRedirection
	CategoryClientError
	CategoryServerError
)

var categoryLabels = map[Category]string{
	CategoryInformational: "Informational",
	CategorySuccess:       "Success",
	CategoryRedirection:   "Redirection",
	CategoryClientError:   "Client Error",
	CategoryServerError:   "Server Error",
}

// String returns the display label for the category, or "Unknown"
// for values outside the enumeration.
func (c Category) String() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return "Unknown"
}

// Valid reports whether c is one of the five canonical categories.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Categories returns the five canonical categories in display order.
func Categories() []Category {
	return []Category{
		CategoryInformational,
		CategorySuccess,
		CategoryRedirection,
		CategoryClientError,
		CategoryServerError,
	}
}

// ParseCategory maps a dataset label to its Category. Unknown labels
// return CategoryUnknown rather than an error; an unknown category is
// simply never selected and never matched.
func ParseCategory(label string) Category {
	for cat, l := range categoryLabels {
		if l == label {
			return cat
		}
	}
	return CategoryUnknown
}

// CategoryForCode returns the category implied by the code's leading
// digit (1xx through 5xx). Codes outside 100-599 return CategoryUnknown.
// The dataset is trusted to agree with this; nothing re-derives or
// enforces it at load time.
func CategoryForCode(code int) Category {
	switch {
	case code >= 100 && code < 200:
		return CategoryInformational
	case code >= 200 && code < 300:
		return CategorySuccess
	case code >= 300 && code < 400:
		return CategoryRedirection
	case code >= 400 && code < 500:
		return CategoryClientError
	case code >= 500 && code < 600:
		return CategoryServerError
	}
	return CategoryUnknown
}

// Code is a single HTTP status code entry. Records are immutable after
// load; the viewer never mutates or re-sorts them.
type Code struct {
	Code         int
	Message      string
	Symbol       string
	Category     Category
	ReferenceURL string
}

// CodeText returns the decimal text of the status code, the form the
// search predicate matches prefixes against.
func (c Code) CodeText() string {
	return strconv.Itoa(c.Code)
}

// Catalog is an ordered collection of status codes. Order is the order
// the data source delivered and is preserved through filtering.
type Catalog []Code
