package app_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pms_marketplace/internal/app"
	"pms_marketplace/internal/domain"
	"pms_marketplace/internal/storage/memory"
)

func ids[T any](xs []T, id func(T) string) []string {
	out := []string{}
	for _, x := range xs {
		out = append(out, id(x))
	}
	return out
}

func propID(p domain.Property) string { return p.ID }
func vendorID(v domain.Vendor) string { return v.ID }

func TestFilterProperties(t *testing.T) {
	props := memory.SeedProperties()
	cases := []struct {
		name, search, location string
		want                   []string
	}{
		{"empty inputs keep all", "", "", []string{"prop-001", "prop-002", "prop-003"}},
		{"title match", "villa", "", []string{"prop-001"}},
		{"case insensitive", "BOUTIQUE", "", []string{"prop-003"}},
		{"description match", "beach access", "", []string{"prop-001"}},
		{"location only", "", "limassol", []string{"prop-002"}},
		{"search and location", "apartment", "Limassol", []string{"prop-002"}},
		{"villa in Paphos", "villa", "Paphos", []string{"prop-001"}},
		{"disjoint", "villa", "limassol", []string{}},
		{"no match", "castle", "", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := app.FilterProperties(props, tc.search, tc.location)
			assert.Equal(t, tc.want, ids(got, propID))
		})
	}
}

// Every kept property satisfies both predicates, every dropped one fails one, and order is preserved.
func TestFilterProperties_Exhaustive(t *testing.T) {
	props := memory.SeedProperties()
	terms := []string{"", "a", "Villa", "city", "pool", "zzz", "-", " "}
	locs := []string{"", "cyprus", "PAPHOS", "ayia", "nicosia"}

	for _, q := range terms {
		for _, l := range locs {
			got := app.FilterProperties(props, q, l)
			kept := map[string]bool{}
			for _, p := range got {
				kept[p.ID] = true
			}
			last := -1
			for i, p := range props {
				match := (strings.Contains(strings.ToLower(p.Title), strings.ToLower(q)) ||
					strings.Contains(strings.ToLower(p.Description), strings.ToLower(q))) &&
					(l == "" || strings.Contains(strings.ToLower(p.Location), strings.ToLower(l)))
				require.Equal(t, match, kept[p.ID], "q=%q loc=%q id=%s", q, l, p.ID)
				if match {
					require.Greater(t, i, last)
					last = i
				}
			}
		}
	}
}

func TestFilterVendors(t *testing.T) {
	vendors := memory.SeedVendors()

	assert.Equal(t, []string{"vendor-001", "vendor-002", "vendor-003", "vendor-004"}, ids(app.FilterVendors(vendors, domain.CategoryAll), vendorID))
	assert.Equal(t, []string{"vendor-002"}, ids(app.FilterVendors(vendors, domain.CategoryMaintenance), vendorID))
	assert.Equal(t, []string{}, ids(app.FilterVendors(vendors, domain.CategoryCatering), vendorID))

	for _, c := range domain.Categories {
		for _, v := range app.FilterVendors(vendors, c) {
			assert.Equal(t, c, v.Category)
		}
	}
}

func TestParseCategory(t *testing.T) {
	for in, want := range map[string]domain.Category{
		"":            domain.CategoryAll,
		"all":         domain.CategoryAll,
		" Cleaning ":  domain.CategoryCleaning,
		"renovation":  domain.CategoryRenovation,
		"TRANSPORT":   domain.CategoryTransport,
		"maintenance": domain.CategoryMaintenance,
	} {
		got, err := app.ParseCategory(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := app.ParseCategory("plumbing")
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestCategoryCounts(t *testing.T) {
	opts := app.CategoryCounts(memory.SeedVendors(), domain.CategorySupplies)
	require.Len(t, opts, 5)

	names := []string{}
	for _, o := range opts {
		names = append(names, o.Name)
		if o.ID == domain.CategoryAll {
			assert.Equal(t, 4, o.Count)
		} else {
			assert.Equal(t, 1, o.Count, o.ID)
		}
		assert.Equal(t, o.ID == domain.CategorySupplies, o.Selected)
	}
	assert.Equal(t, []string{"All Vendors", "Maintenance", "Cleaning", "Supplies", "Renovation"}, names)
}

func TestFeatured(t *testing.T) {
	assert.Equal(t, []string{"prop-001", "prop-003"}, ids(app.Featured(memory.SeedProperties()), propID))
}
