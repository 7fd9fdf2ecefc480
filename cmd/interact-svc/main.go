// interact-svc: servicio de interacción (rate/tag) sobre el store de
// interacciones. Los records son independientes del catálogo.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/dropDatabas3/recetario/internal/config"
	httpx "github.com/dropDatabas3/recetario/internal/http"
	"github.com/dropDatabas3/recetario/internal/interaction"
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

	logger.Init(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, ServiceName: "interact-svc"})
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

	ctrl := interaction.NewController(interaction.NewService(st.Interactions()))
	handler := httpx.NewRouter("interaction", ctrl.Handle)

	logger.L().Info("interact-svc listening",
		logger.Addr(cfg.Interaction.Addr), logger.Driver(cfg.Storage.Driver))

	if err := httpx.Serve(ctx, cfg.Interaction.Addr, handler); err != nil {
		logger.L().Fatal("server failed", logger.Err(err))
	}
}
