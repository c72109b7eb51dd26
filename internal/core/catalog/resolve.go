package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/example/hostgen/internal/models"
)

// NormalizeName returns the catalog key for a user-typed name: trimmed and lowercased.
func NormalizeName(name string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(name))
}

// NormalizeCode returns the stored form of a code. Type codes are uppercased
// (L, D, S); every other category keeps the code exactly as typed, minus
// surrounding space.
func NormalizeCode(category models.Category, code string) string {
	code = strings.TrimSpace(code)
	if category == models.CategoryType {
		return cases.Upper(language.Und).String(code)
	}
	return code
}

// Resolve looks up name case-insensitively in entries and reports whether
// it was found. Keys stored with capitals by older or hand-edited documents
// still match.
func Resolve(entries map[string]string, name string) (string, bool) {
	key := NormalizeName(name)
	if code, ok := entries[key]; ok {
		return code, true
	}
	// Fall back to a scan; sorted so duplicate spellings resolve the same way every run.
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if NormalizeName(k) == key {
			return entries[k], true
		}
	}
	return "", false
}

// Codes holds the resolved code of each category for one hostname.
type Codes struct {
	Supplier string
	Type     string
	Sector   string
	Location string
}

// Prefix concatenates the codes in hostname order.
func (c Codes) Prefix() string {
	return c.Supplier + c.Type + c.Sector + c.Location
}

// Names holds the user-supplied name of each category for one hostname.
type Names struct {
	Supplier string
	Type     string
	Sector   string
	Location string
}

// Get returns the name supplied for category.
func (n Names) Get(category models.Category) string {
	switch category {
	case models.CategorySupplier:
		return n.Supplier
	case models.CategoryType:
		return n.Type
	case models.CategorySector:
		return n.Sector
	case models.CategoryLocation:
		return n.Location
	}
	return ""
}

// Missing identifies the first category name that did not resolve.
type Missing struct {
	Category models.Category
	Name     string
}

// ResolveAll resolves every name in hostname order. It stops at the first
// absent name and returns it as Missing; no partial Codes are meaningful then.
func ResolveAll(c *models.Catalog, names Names) (Codes, *Missing) {
	var codes Codes
	for _, category := range models.Categories {
		name := names.Get(category)
		code, ok := Resolve(c.Entries(category), name)
		if !ok {
			return Codes{}, &Missing{Category: category, Name: NormalizeName(name)}
		}
		switch category {
		case models.CategorySupplier:
			codes.Supplier = code
		case models.CategoryType:
			codes.Type = code
		case models.CategorySector:
			codes.Sector = code
		case models.CategoryLocation:
			codes.Location = code
		}
	}
	return codes, nil
}
