package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"pms_marketplace/internal/domain"
)

// SeedService writes listing records into a catalog repository.
type SeedService struct {
	repo    domain.CatalogRepository
	catalog *CatalogService // optional; its cache is dropped after a run
	workers int
}

type SeedReport struct {
	Properties int
	Vendors    int
	Failed     int
}

func NewSeedService(r domain.CatalogRepository, c *CatalogService, workers int) *SeedService {
	if workers <= 0 {
		workers = 4
	}
	return &SeedService{repo: r, catalog: c, workers: workers}
}

// Seed upserts props and vendors with at most s.workers writes in flight.
// Individual failures are logged and counted; the first one is returned after all writes finish.
func (s *SeedService) Seed(ctx context.Context, props []domain.Property, vendors []domain.Vendor) (SeedReport, error) {
	sem := semaphore.NewWeighted(int64(s.workers))
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		rep   SeedReport
		first error
	)
	record := func(kind, id string, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			rep.Failed++
			if first == nil {
				first = fmt.Errorf("seed %s %s: %w", kind, id, err)
			}
			log.Warn().Str("kind", kind).Str("id", id).Err(err).Msg("seed failed")
			return
		}
		if kind == "property" {
			rep.Properties++
		} else {
			rep.Vendors++
		}
		log.Debug().Str("kind", kind).Str("id", id).Msg("seed ok")
	}

	run := func(kind, id string, fn func() error) error {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			return err
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			record(kind, id, fn())
		}()
		return nil
	}

	for _, p := range props {
		p := p
		if err := run("property", p.ID, func() error { return s.repo.UpsertProperty(ctx, p) }); err != nil {
			wg.Wait()
			return rep, err
		}
	}
	for _, v := range vendors {
		v := v
		if !v.Category.Valid() {
			record("vendor", v.ID, domain.ErrInvalidCategory)
			continue
		}
		if err := run("vendor", v.ID, func() error { return s.repo.UpsertVendor(ctx, v) }); err != nil {
			wg.Wait()
			return rep, err
		}
	}
	wg.Wait()

	if s.catalog != nil {
		s.catalog.Invalidate(ctx)
	}
	return rep, first
}
