package models

import (
	"fmt"
	"strings"
)

// Category identifies one of the four name-to-code maps of the catalog.
type Category string

// Catalog categories, in hostname composition order.
const (
	CategorySupplier Category = "supplier"
	CategoryType     Category = "type"
	CategorySector   Category = "sector"
	CategoryLocation Category = "location"
)

// Categories lists every category in hostname composition order.
var Categories = []Category{CategorySupplier, CategoryType, CategorySector, CategoryLocation}

// ParseCategory accepts a category name, its plural, or the key used in the
// persisted document.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "supplier", "suppliers", "fornecedor", "fornecedores":
		return CategorySupplier, nil
	case "type", "types", "tipo", "tipos":
		return CategoryType, nil
	case "sector", "sectors", "setor", "setores":
		return CategorySector, nil
	case "location", "locations", "local", "locais":
		return CategoryLocation, nil
	}
	return "", fmt.Errorf("unknown category %q (want supplier, type, sector or location)", s)
}

// Catalog is the whole persisted document: four category maps and the
// machine registry. Field keys match the documents written by earlier
// releases so existing stores keep loading.
type Catalog struct {
	Suppliers map[string]string `json:"fornecedores" yaml:"fornecedores"`
	Sectors   map[string]string `json:"setores" yaml:"setores"`
	Types     map[string]string `json:"tipos" yaml:"tipos"`
	Locations map[string]string `json:"locais" yaml:"locais"`

	// Machines maps sector name -> zero-padded sequence number -> hostname.
	Machines map[string]map[string]string `json:"maquinas" yaml:"maquinas"`
}

// NewCatalog returns an empty catalog with every map allocated.
func NewCatalog() *Catalog {
	return &Catalog{
		Suppliers: map[string]string{},
		Sectors:   map[string]string{},
		Types:     map[string]string{},
		Locations: map[string]string{},
		Machines:  map[string]map[string]string{},
	}
}

// Normalize allocates any map a decoded document left nil.
func (c *Catalog) Normalize() {
	if c.Suppliers == nil {
		c.Suppliers = map[string]string{}
	}
	if c.Sectors == nil {
		c.Sectors = map[string]string{}
	}
	if c.Types == nil {
		c.Types = map[string]string{}
	}
	if c.Locations == nil {
		c.Locations = map[string]string{}
	}
	if c.Machines == nil {
		c.Machines = map[string]map[string]string{}
	}
	for sector, bucket := range c.Machines {
		if bucket == nil {
			c.Machines[sector] = map[string]string{}
		}
	}
}

// Entries returns the live name->code map for a category, or nil for an
// unknown category.
func (c *Catalog) Entries(category Category) map[string]string {
	switch category {
	case CategorySupplier:
		return c.Suppliers
	case CategoryType:
		return c.Types
	case CategorySector:
		return c.Sectors
	case CategoryLocation:
		return c.Locations
	}
	return nil
}

// MachineCount returns the number of hostnames issued across all sectors.
func (c *Catalog) MachineCount() int {
	n := 0
	for _, bucket := range c.Machines {
		n += len(bucket)
	}
	return n
}
