package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	server "pms_marketplace/internal/adapters/http_server"
	"pms_marketplace/internal/adapters/notify"
	"pms_marketplace/internal/adapters/observability"
	redisad "pms_marketplace/internal/adapters/redis"
	"pms_marketplace/internal/app"
	"pms_marketplace/internal/domain"
	"pms_marketplace/internal/shared"
	"pms_marketplace/internal/storage/memory"
	mysqlrepo "pms_marketplace/internal/storage/mysql"
)

func main() {
	_ = godotenv.Load()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)
	for _, w := range cfg.Warnings {
		log.Warn().Msg(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	// catalog
	var repo domain.CatalogRepository = memory.NewSeedCatalog()
	if cfg.CatalogSource == "mysql" {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		if err := mysqlrepo.Migrate(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("migrate failed")
		}
		log.Info().Msg("database connection ok")
		repo = mysqlrepo.New(db)
	}

	// cache and sessions
	var (
		cache    domain.Cache
		sessions domain.SessionStore = memory.NewSessions()
	)
	if cfg.RedisAddr != "" {
		rc := redisad.NewClient(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer rc.Close()
		if err := rc.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Msg("redis ping failed")
		}
		cache = redisad.NewCache(rc, "marketplace:")
		if cfg.SessionBackend == "redis" {
			sessions = redisad.NewSessions(rc, "marketplace:")
		}
	}

	// notifications: always logged, published when a broker is configured
	sinks := notify.Fanout{notify.NewLog()}
	if cfg.AMQPURL != "" {
		b, err := notify.DialBroker(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			log.Error().Err(err).Msg("amqp unavailable, notifications will only be logged")
		} else {
			defer b.Close()
			sinks = append(sinks, b)
		}
	}

	catalog := app.NewCatalogService(repo, cache, cfg.CacheTTL)
	svc := app.NewSessionService(catalog, sessions, sinks, cfg.SessionTTL)

	// http
	srv := server.New()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(server.NewHandlers(catalog, svc), server.RateLimit(cfg.ActionRPS))

	log.Info().
		Str("addr", cfg.HTTPAddr).
		Str("catalog", cfg.CatalogSource).
		Str("sessions", cfg.SessionBackend).
		Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("http shutdown failed")
		}
	}()

	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("API stopped")
}
