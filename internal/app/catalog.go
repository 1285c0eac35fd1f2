package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"pms_marketplace/internal/domain"
)

const (
	propertiesKey = "catalog:properties"
	vendorsKey    = "catalog:vendors"
)

// CatalogService is the read side of the listing store, with a read-through cache.
type CatalogService struct {
	repo     domain.CatalogRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewCatalogService(r domain.CatalogRepository, c domain.Cache, ttl time.Duration) *CatalogService {
	return &CatalogService{repo: r, cache: c, cacheTTL: ttl}
}

func (s *CatalogService) ListProperties(ctx context.Context) ([]domain.Property, error) {
	var out []domain.Property
	if s.cached(ctx, propertiesKey, &out) {
		return out, nil
	}
	ps, err := s.repo.ListProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	s.store(ctx, propertiesKey, ps)
	return ps, nil
}

func (s *CatalogService) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	var out []domain.Vendor
	if s.cached(ctx, vendorsKey, &out) {
		return out, nil
	}
	vs, err := s.repo.ListVendors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	s.store(ctx, vendorsKey, vs)
	return vs, nil
}

func (s *CatalogService) GetProperty(ctx context.Context, id string) (domain.Property, error) {
	ps, err := s.ListProperties(ctx)
	if err != nil {
		return domain.Property{}, err
	}
	if i := findProperty(ps, id); i >= 0 {
		return ps[i], nil
	}
	return domain.Property{}, fmt.Errorf("property %s: %w", id, domain.ErrNotFound)
}

func (s *CatalogService) GetVendor(ctx context.Context, id string) (domain.Vendor, error) {
	vs, err := s.ListVendors(ctx)
	if err != nil {
		return domain.Vendor{}, err
	}
	if v, ok := findVendor(vs, id); ok {
		return v, nil
	}
	return domain.Vendor{}, fmt.Errorf("vendor %s: %w", id, domain.ErrNotFound)
}

// SearchProperties applies the search/location predicate to the catalog.
func (s *CatalogService) SearchProperties(ctx context.Context, search, location string) ([]domain.Property, error) {
	ps, err := s.ListProperties(ctx)
	if err != nil {
		return nil, err
	}
	return FilterProperties(ps, search, location), nil
}

func (s *CatalogService) FeaturedProperties(ctx context.Context) ([]domain.Property, error) {
	ps, err := s.ListProperties(ctx)
	if err != nil {
		return nil, err
	}
	return Featured(ps), nil
}

// VendorsByCategory applies the category predicate; c must already be parsed.
func (s *CatalogService) VendorsByCategory(ctx context.Context, c domain.Category) ([]domain.Vendor, error) {
	vs, err := s.ListVendors(ctx)
	if err != nil {
		return nil, err
	}
	return FilterVendors(vs, c), nil
}

// Invalidate drops cached catalog lists after writes.
func (s *CatalogService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	for _, k := range []string{propertiesKey, vendorsKey} {
		if err := s.cache.Del(ctx, k); err != nil {
			log.Warn().Err(err).Str("key", k).Msg("cache del failed")
		}
	}
}

func (s *CatalogService) cached(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	ok, err := s.cache.Get(ctx, key, dst)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache get failed")
		return false
	}
	return ok
}

func (s *CatalogService) store(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, v, int(s.cacheTTL.Seconds())); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}
