package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pms_marketplace/internal/app"
	"pms_marketplace/internal/domain"
	"pms_marketplace/internal/storage/memory"
)

// ---- fakes ----

type countingRepo struct {
	domain.CatalogRepository
	propCalls, vendorCalls int
	err                    error
}

func (r *countingRepo) ListProperties(ctx context.Context) ([]domain.Property, error) {
	r.propCalls++
	if r.err != nil {
		return nil, r.err
	}
	return r.CatalogRepository.ListProperties(ctx)
}

func (r *countingRepo) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	r.vendorCalls++
	if r.err != nil {
		return nil, r.err
	}
	return r.CatalogRepository.ListVendors(ctx)
}

type fakeCache struct {
	store map[string][]byte
	err   error
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.err != nil {
		return false, c.err
	}
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.err != nil {
		return c.err
	}
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	c.store[key] = b
	return err
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

// ---- tests ----

func TestCatalog_CacheMissThenHit(t *testing.T) {
	repo := &countingRepo{CatalogRepository: memory.NewSeedCatalog()}
	cache := &fakeCache{}
	svc := app.NewCatalogService(repo, cache, 10*time.Minute)
	ctx := context.Background()

	first, err := svc.ListProperties(ctx)
	require.NoError(t, err)
	second, err := svc.ListProperties(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.propCalls)
	assert.Equal(t, first, second)

	svc.Invalidate(ctx)
	_, err = svc.ListProperties(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.propCalls)
}

func TestCatalog_CacheErrorsFallBackToRepo(t *testing.T) {
	repo := &countingRepo{CatalogRepository: memory.NewSeedCatalog()}
	svc := app.NewCatalogService(repo, &fakeCache{err: errors.New("redis down")}, time.Minute)

	vs, err := svc.ListVendors(context.Background())
	require.NoError(t, err)
	assert.Len(t, vs, 4)
}

func TestCatalog_RepoErrorIsWrapped(t *testing.T) {
	boom := errors.New("db gone")
	svc := app.NewCatalogService(&countingRepo{err: boom}, nil, time.Minute)

	_, err := svc.ListProperties(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestCatalog_Lookups(t *testing.T) {
	svc := app.NewCatalogService(memory.NewSeedCatalog(), nil, time.Minute)
	ctx := context.Background()

	p, err := svc.GetProperty(ctx, "prop-002")
	require.NoError(t, err)
	assert.Equal(t, "Limassol, Cyprus", p.Location)

	_, err = svc.GetProperty(ctx, "prop-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	v, err := svc.GetVendor(ctx, "vendor-004")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryRenovation, v.Category)

	_, err = svc.GetVendor(ctx, "vendor-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	found, err := svc.SearchProperties(ctx, "hotel", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"prop-003"}, ids(found, propID))

	byCat, err := svc.VendorsByCategory(ctx, domain.CategoryCleaning)
	require.NoError(t, err)
	assert.Equal(t, []string{"vendor-001"}, ids(byCat, vendorID))
}
