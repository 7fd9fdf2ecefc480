// auth-svc: servicio de autenticación (register/login) sobre el store de
// credenciales. Una dirección, un request a la vez, reply siempre.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/dropDatabas3/recetario/internal/auth"
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

	logger.Init(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, ServiceName: "auth-svc"})
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

	ctrl := auth.NewController(auth.NewService(st.Users()))
	handler := httpx.NewRouter("auth", ctrl.Handle)

	logger.L().Info("auth-svc listening",
		logger.Addr(cfg.Auth.Addr), logger.Driver(cfg.Storage.Driver))

	if err := httpx.Serve(ctx, cfg.Auth.Addr, handler); err != nil {
		logger.L().Fatal("server failed", logger.Err(err))
	}
}
