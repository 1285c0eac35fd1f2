//go:build integration || !unit

package mysql_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"pms_marketplace/internal/domain"
	"pms_marketplace/internal/storage/memory"
	mysqlrepo "pms_marketplace/internal/storage/mysql"
)

// startMySQL runs an isolated MySQL and returns a migrated handle.
func startMySQL(t *testing.T) *sql.DB {
	t.Helper()
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("dockertest: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker not reachable: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=marketplace",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/marketplace?parseTime=true&charset=utf8mb4&loc=UTC",
		resource.GetPort("3306/tcp"))

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := mysqlrepo.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	// second run must be a no-op
	if err := mysqlrepo.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate again: %v", err)
	}
	return db
}

func TestRepo_MySQL_UpsertAndList(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	for _, p := range memory.SeedProperties() {
		if err := repo.UpsertProperty(ctx, p); err != nil {
			t.Fatalf("UpsertProperty %s: %v", p.ID, err)
		}
	}
	for _, v := range memory.SeedVendors() {
		if err := repo.UpsertVendor(ctx, v); err != nil {
			t.Fatalf("UpsertVendor %s: %v", v.ID, err)
		}
	}

	// update in place keeps id order
	first := memory.SeedProperties()[0]
	first.Title = "Renamed Villa"
	if err := repo.UpsertProperty(ctx, first); err != nil {
		t.Fatalf("re-upsert: %v", err)
	}

	props, err := repo.ListProperties(ctx)
	if err != nil {
		t.Fatalf("ListProperties: %v", err)
	}
	if len(props) != 3 || props[0].ID != "prop-001" || props[0].Title != "Renamed Villa" || props[2].ID != "prop-003" {
		t.Fatalf("unexpected properties: %+v", props)
	}
	if props[1].Bedrooms == nil || *props[1].Bedrooms != *memory.SeedProperties()[1].Bedrooms {
		t.Fatalf("bedrooms lost in round trip: %+v", props[1])
	}

	vendors, err := repo.ListVendors(ctx)
	if err != nil {
		t.Fatalf("ListVendors: %v", err)
	}
	if len(vendors) != 4 || vendors[1].Category != domain.CategoryMaintenance {
		t.Fatalf("unexpected vendors: %+v", vendors)
	}

	bad := memory.SeedVendors()[0]
	bad.ID, bad.Category = "vendor-x", "plumbing"
	if err := repo.UpsertVendor(ctx, bad); err == nil {
		t.Fatalf("expected invalid category error")
	}
}
