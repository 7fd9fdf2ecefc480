package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dropDatabas3/recetario/internal/observability/logger"
)

// Serve levanta un http.Server en addr y lo apaga graceful cuando ctx se
// cancela. Bloquea hasta que el server termina. Pensado para correr dentro
// de un errgroup junto con el handler de señales del main.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.L().Warn("shutdown forced", logger.Addr(addr), logger.Err(err))
			_ = srv.Close()
		}
		<-errc // siempre ErrServerClosed después de Shutdown
		return nil
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
