package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	redisad "pms_marketplace/internal/adapters/redis"
	"pms_marketplace/internal/app"
	"pms_marketplace/internal/domain"
	"pms_marketplace/internal/shared"
	"pms_marketplace/internal/storage/memory"
	mysqlrepo "pms_marketplace/internal/storage/mysql"
)

func openDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}

// catalogFor opens the configured catalog. The returned func releases it.
func catalogFor(ctx context.Context, cfg shared.Config) (*app.CatalogService, func(), error) {
	if cfg.CatalogSource != "mysql" {
		return app.NewCatalogService(memory.NewSeedCatalog(), nil, cfg.CacheTTL), func() {}, nil
	}
	db, err := openDB(ctx, cfg.MySQLDSN)
	if err != nil {
		return nil, nil, err
	}
	return app.NewCatalogService(mysqlrepo.New(db), nil, cfg.CacheTTL), func() { _ = db.Close() }, nil
}

func MigrateCmd(cfg shared.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded SQL migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB(cmd.Context(), cfg.MySQLDSN)
			if err != nil {
				return err
			}
			defer db.Close()
			return mysqlrepo.Migrate(cmd.Context(), db)
		},
	}
}

func SeedCmd(cfg shared.Config) *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Upsert the sample catalog into MySQL",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, err := openDB(ctx, cfg.MySQLDSN)
			if err != nil {
				return err
			}
			defer db.Close()
			if migrate {
				if err := mysqlrepo.Migrate(ctx, db); err != nil {
					return err
				}
			}

			repo := mysqlrepo.New(db)
			var cache domain.Cache
			if cfg.RedisAddr != "" {
				rc := redisad.NewClient(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
				defer rc.Close()
				cache = redisad.NewCache(rc, "marketplace:")
			}
			catalog := app.NewCatalogService(repo, cache, cfg.CacheTTL)

			log.Info().Int("workers", cfg.SeedWorkers).Msg("seed starting")
			rep, err := app.NewSeedService(repo, catalog, cfg.SeedWorkers).
				Seed(ctx, memory.SeedProperties(), memory.SeedVendors())
			log.Info().
				Int("properties", rep.Properties).
				Int("vendors", rep.Vendors).
				Int("failed", rep.Failed).
				Msg("seed completed")
			return err
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", true, "apply migrations first")
	return cmd
}

func SearchCmd(cfg shared.Config) *cobra.Command {
	var q, location string
	cmd := &cobra.Command{
		Use:   "search",
		Short: "List properties matching a search term and location",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, done, err := catalogFor(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer done()
			ps, err := catalog.SearchProperties(cmd.Context(), q, location)
			if err != nil {
				return err
			}
			cards := make([]app.PropertyCard, 0, len(ps))
			for _, p := range ps {
				cards = append(cards, app.NewPropertyCard(p))
			}
			return printJSON(cmd.OutOrStdout(), cards)
		},
	}
	cmd.Flags().StringVar(&q, "q", "", "search term (title or description)")
	cmd.Flags().StringVar(&location, "location", "", "location substring")
	return cmd
}

func VendorsCmd(cfg shared.Config) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "vendors",
		Short: "List vendors in a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.ParseCategory(category)
			if err != nil {
				return fmt.Errorf("category %q: %w", category, err)
			}
			catalog, done, err := catalogFor(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer done()
			vs, err := catalog.ListVendors(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), app.BuildVendorsSection(vs, c))
		},
	}
	cmd.Flags().StringVar(&category, "category", "all", "all, maintenance, cleaning, supplies, renovation, catering or transport")
	return cmd
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
