package memory

import (
	"context"
	"fmt"
	"sync"

	"pms_marketplace/internal/domain"
)

// Catalog is an ordered in-memory CatalogRepository. Upserts replace in place and append new IDs.
type Catalog struct {
	mu      sync.RWMutex
	props   []domain.Property
	vendors []domain.Vendor
}

func NewCatalog(props []domain.Property, vendors []domain.Vendor) *Catalog {
	return &Catalog{props: props, vendors: vendors}
}

// NewSeedCatalog returns a catalog holding the sample listings.
func NewSeedCatalog() *Catalog { return NewCatalog(SeedProperties(), SeedVendors()) }

func (c *Catalog) UpsertProperty(ctx context.Context, p domain.Property) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.props {
		if c.props[i].ID == p.ID {
			c.props[i] = p.Clone()
			return nil
		}
	}
	c.props = append(c.props, p.Clone())
	return nil
}

func (c *Catalog) UpsertVendor(ctx context.Context, v domain.Vendor) error {
	if !v.Category.Valid() {
		return fmt.Errorf("vendor %s: %w", v.ID, domain.ErrInvalidCategory)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.vendors {
		if c.vendors[i].ID == v.ID {
			c.vendors[i] = v
			return nil
		}
	}
	c.vendors = append(c.vendors, v)
	return nil
}

func (c *Catalog) ListProperties(ctx context.Context) ([]domain.Property, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Property, len(c.props))
	for i, p := range c.props {
		out[i] = p.Clone()
	}
	return out, nil
}

func (c *Catalog) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Vendor, len(c.vendors))
	copy(out, c.vendors)
	return out, nil
}
