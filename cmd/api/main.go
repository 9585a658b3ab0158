package main

import (
	"context"
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"eduquote/internal/adapters/gemini"
	server "eduquote/internal/adapters/http_server"
	"eduquote/internal/adapters/observability"
	redisad "eduquote/internal/adapters/redis"
	"eduquote/internal/app"
	"eduquote/internal/domain"
	"eduquote/internal/shared"
	"eduquote/internal/storage/blob"
	mysqlrepo "eduquote/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// deps
	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	store, err := blob.New(cfg.BlobDir, cfg.BlobBaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("blob store init failed")
	}

	var drafter domain.Drafter
	if cfg.GeminiKey != "" {
		d, err := gemini.New(ctx, cfg.GeminiKey, cfg.GeminiModel, float64(cfg.GeminiRPS))
		if err != nil {
			log.Warn().Err(err).Msg("gemini init failed; drafting runs degraded")
		} else {
			drafter = d
		}
	}

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.Mount("/images/*", http.StripPrefix("/images/", http.FileServer(http.Dir(store.Dir()))))
	srv.MountHandlers(&server.Handlers{
		Q:         app.NewQueryService(repo, cache, cfg.CacheTTL),
		Catalog:   app.NewCatalogService(repo, cache),
		Settings:  app.NewSettingsService(repo),
		Drafts:    app.NewDraftService(drafter),
		Blob:      store,
		AdminPass: cfg.AdminPass,
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
