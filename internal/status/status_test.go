package status

import "testing"

func TestCategoryForCode(t *testing.T) {
	tests := []struct {
		code int
		want Category
	}{
		{100, CategoryInformational},
		{103, CategoryInformational},
		{200, CategorySuccess},
		{226, CategorySuccess},
		{301, CategoryRedirection},
		{404, CategoryClientError},
		{451, CategoryClientError},
		{500, CategoryServerError},
		{599, CategoryServerError},
		{99, CategoryUnknown},
		{600, CategoryUnknown},
		{0, CategoryUnknown},
		{-1, CategoryUnknown},
	}

	for _, tt := range tests {
		if got := CategoryForCode(tt.code); got != tt.want {
			t.Errorf("CategoryForCode(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		label string
		want  Category
	}{
		{"Informational", CategoryInformational},
		{"Success", CategorySuccess},
		{"Redirection", CategoryRedirection},
		{"Client Error", CategoryClientError},
		{"Server Error", CategoryServerError},
		{"client error", CategoryUnknown},
		{"Teapot", CategoryUnknown},
		{"", CategoryUnknown},
	}

	for _, tt := range tests {
		if got := ParseCategory(tt.label); got != tt.want {
			t.Errorf("ParseCategory(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}

func TestParseCategoryRoundTrip(t *testing.T) {
	for _, cat := range Categories() {
		if got := ParseCategory(cat.String()); got != cat {
			t.Errorf("ParseCategory(%q) = %v, want %v", cat.String(), got, cat)
		}
	}
}

func TestCategoriesOrder(t *testing.T) {
	want := []Category{
		CategoryInformational,
		CategorySuccess,
		CategoryRedirection,
		CategoryClientError,
		CategoryServerError,
	}

	got := Categories()
	if len(got) != len(want) {
		t.Fatalf("Categories() returned %d categories, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCategoryValid(t *testing.T) {
	for _, cat := range Categories() {
		if !cat.Valid() {
			t.Errorf("%v should be valid", cat)
		}
	}
	if CategoryUnknown.Valid() {
		t.Error("CategoryUnknown should not be valid")
	}
	if Category(42).Valid() {
		t.Error("Category(42) should not be valid")
	}
}

func TestCodeText(t *testing.T) {
	c := Code{Code: 404, Message: "Not Found", Symbol: "not_found"}
	if got := c.CodeText(); got != "404" {
		t.Errorf("CodeText() = %q, want %q", got, "404")
	}
}
