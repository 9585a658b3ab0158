// Command seeder reconciles portal catalogs against the factory dataset from
// the command line: restore fills gaps, seed inserts unconditionally, reset
// wipes and reseeds.
package main

import (
	"context"
	"database/sql"
	"flag"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"eduquote/internal/adapters/observability"
	redisad "eduquote/internal/adapters/redis"
	"eduquote/internal/app"
	"eduquote/internal/domain"
	"eduquote/internal/shared"
	mysqlrepo "eduquote/internal/storage/mysql"
)

func main() {
	mode := flag.String("mode", "restore", "restore | seed | reset")
	portalKey := flag.String("portal", "all", "portal key (YL_GROUPS, YL_INDIVIDUAL, ADULTS) or all")
	confirm := flag.Bool("confirm", false, "required for -mode=reset")
	flag.Parse()

	ctx := context.Background()
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	if *mode != "restore" && *mode != "seed" && *mode != "reset" {
		log.Fatal().Str("mode", *mode).Msg("unknown mode")
	}
	if *mode == "reset" && !*confirm {
		log.Fatal().Msg("reset wipes portals; rerun with -confirm")
	}

	portals := domain.Portals()
	if *portalKey != "all" {
		p, err := domain.ParsePortal(*portalKey)
		if err != nil {
			log.Fatal().Err(err).Msg("unknown portal")
		}
		portals = []domain.Portal{p}
	}

	log.Info().
		Str("mode", *mode).
		Int("portals", len(portals)).
		Int("workers", cfg.SeedWorkers).
		Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	svc := app.NewCatalogService(repo, cache)

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, p := range portals {
		p := p

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(portal domain.Portal) {
			defer wg.Done()
			defer sem.Release(1)

			if err := run(ctx, svc, *mode, portal); err != nil {
				log.Warn().Str("portal", portal.Key()).Err(err).Msg("reconcile failed")
				return
			}
			log.Info().Str("portal", portal.Key()).Msg("reconcile ok")
		}(p)
	}

	wg.Wait()
	log.Info().Msg("seeder completed")
}

func run(ctx context.Context, svc *app.CatalogService, mode string, portal domain.Portal) error {
	switch mode {
	case "seed":
		n, err := svc.Seed(ctx, portal)
		if err != nil {
			return err
		}
		log.Info().Str("portal", portal.Key()).Int("inserted", n).Msg("seeded")
		return nil
	case "reset":
		return svc.ResetAndSeed(ctx, portal)
	default:
		restored, err := svc.RestoreMissing(ctx, portal)
		if err != nil {
			return err
		}
		if !restored {
			log.Info().Str("portal", portal.Key()).Msg("nothing missing")
		}
		return nil
	}
}
