package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dropDatabas3/recetario/internal/http/middlewares"
)

// NewRouter arma el router estándar de un listener: el envelope entra por
// POST / (el equivalente HTTP del reply socket original: un endpoint, un
// objeto por request), más /healthz y /metrics.
func NewRouter(service string, handle http.HandlerFunc) http.Handler {
	r := chi.NewRouter()

	r.Use(middlewares.WithRequestID())
	r.Use(middlewares.WithLogging())
	r.Use(middlewares.WithRecover())
	r.Use(WithMetrics(service))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", MetricsHandler())
	r.Post("/", handle)

	return r
}
