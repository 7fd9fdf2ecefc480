// catalog-svc: servicio del catálogo. Un proceso, dos listeners sobre el
// mismo store: el endpoint mutante (create/edit) y el read-only
// (lookup/search/browse/detail). El read path cachea browse/lookup; las
// mutaciones invalidan antes de responder.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dropDatabas3/recetario/internal/cache"
	"github.com/dropDatabas3/recetario/internal/catalog"
	"github.com/dropDatabas3/recetario/internal/config"
	httpx "github.com/dropDatabas3/recetario/internal/http"
	"github.com/dropDatabas3/recetario/internal/observability/logger"
	"github.com/dropDatabas3/recetario/internal/store"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "path al config YAML")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logger.L().Fatal("config load failed", logger.Err(err))
	}

	logger.Init(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, ServiceName: "catalog-svc"})
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, store.Config{
		Driver:      cfg.Storage.Driver,
		Root:        cfg.Storage.Root,
		PostgresDSN: cfg.Storage.Postgres.DSN,
	})
	if err != nil {
		logger.L().Fatal("store open failed", logger.Driver(cfg.Storage.Driver), logger.Err(err))
	}
	defer st.Close()

	cacheCfg := cache.Config{Kind: cfg.Cache.Kind, DefaultTTL: cfg.CacheTTL()}
	cacheCfg.Redis.Addr = cfg.Cache.Redis.Addr
	cacheCfg.Redis.DB = cfg.Cache.Redis.DB
	cacheCfg.Redis.Prefix = cfg.Cache.Redis.Prefix

	cacheClient, err := cache.New(cacheCfg)
	if err != nil {
		logger.L().Fatal("cache init failed", logger.Err(err))
	}
	defer cacheClient.Close()

	svc := catalog.NewService(st.Recipes(), cacheClient, cfg.CacheTTL())
	manage := catalog.NewManageController(svc)
	read := catalog.NewReadController(svc)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpx.Serve(ctx, cfg.Catalog.Addr, httpx.NewRouter("catalog", manage.Handle))
	})
	g.Go(func() error {
		return httpx.Serve(ctx, cfg.Catalog.ReadAddr, httpx.NewRouter("catalog-read", read.Handle))
	})

	logger.L().Info("catalog-svc listening",
		logger.Addr(cfg.Catalog.Addr),
		logger.String("read_addr", cfg.Catalog.ReadAddr),
		logger.Driver(cfg.Storage.Driver),
		logger.String("cache", cfg.Cache.Kind))

	if err := g.Wait(); err != nil {
		logger.L().Fatal("server failed", logger.Err(err))
	}
}
