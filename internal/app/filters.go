package app

import (
	"strings"

	"pms_marketplace/internal/domain"
)

// FilterProperties keeps, in order, the properties whose title or description contains search
// and whose location contains location (when non-empty). Matching is case-insensitive.
func FilterProperties(props []domain.Property, search, location string) []domain.Property {
	q := strings.ToLower(search)
	loc := strings.ToLower(location)
	out := make([]domain.Property, 0, len(props))
	for _, p := range props {
		matchesSearch := strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Description), q)
		matchesLocation := loc == "" || strings.Contains(strings.ToLower(p.Location), loc)
		if matchesSearch && matchesLocation {
			out = append(out, p)
		}
	}
	return out
}

// FilterVendors returns every vendor for "all", otherwise the vendors whose category equals c.
func FilterVendors(vendors []domain.Vendor, c domain.Category) []domain.Vendor {
	if c == domain.CategoryAll {
		out := make([]domain.Vendor, len(vendors))
		copy(out, vendors)
		return out
	}
	out := make([]domain.Vendor, 0, len(vendors))
	for _, v := range vendors {
		if v.Category == c {
			out = append(out, v)
		}
	}
	return out
}

func Featured(props []domain.Property) []domain.Property {
	out := make([]domain.Property, 0, len(props))
	for _, p := range props {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// ParseCategory accepts "all" or any vendor category; blank means "all".
func ParseCategory(s string) (domain.Category, error) {
	c := domain.Category(strings.ToLower(strings.TrimSpace(s)))
	if c == "" || c == domain.CategoryAll {
		return domain.CategoryAll, nil
	}
	if !c.Valid() {
		return "", domain.ErrInvalidCategory
	}
	return c, nil
}

type CategoryOption struct {
	ID       domain.Category `json:"id"`
	Name     string          `json:"name"`
	Count    int             `json:"count"`
	Selected bool            `json:"selected"`
}

// selectorCategories are the entries offered by the vendor category selector.
var selectorCategories = []struct {
	id   domain.Category
	name string
}{
	{domain.CategoryAll, "All Vendors"},
	{domain.CategoryMaintenance, "Maintenance"},
	{domain.CategoryCleaning, "Cleaning"},
	{domain.CategorySupplies, "Supplies"},
	{domain.CategoryRenovation, "Renovation"},
}

// CategoryCounts builds the selector entries with their vendor counts.
func CategoryCounts(vendors []domain.Vendor, selected domain.Category) []CategoryOption {
	out := make([]CategoryOption, 0, len(selectorCategories))
	for _, c := range selectorCategories {
		out = append(out, CategoryOption{
			ID:       c.id,
			Name:     c.name,
			Count:    len(FilterVendors(vendors, c.id)),
			Selected: c.id == selected,
		})
	}
	return out
}

func findProperty(props []domain.Property, id string) int {
	for i := range props {
		if props[i].ID == id {
			return i
		}
	}
	return -1
}

func findVendor(vendors []domain.Vendor, id string) (domain.Vendor, bool) {
	for _, v := range vendors {
		if v.ID == id {
			return v, true
		}
	}
	return domain.Vendor{}, false
}
