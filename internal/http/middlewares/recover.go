package middlewares

import (
	"encoding/json"
	"net/http"

	"github.com/dropDatabas3/recetario/internal/observability/logger"
)

// WithRecover captura panics y responde el envelope de error genérico en
// lugar de tirar el proceso. Un fault interno nunca debe matar el servicio:
// el contrato es responder SIEMPRE un objeto estructurado.
func WithRecover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.From(r.Context()).Error("panic recovered",
						logger.Op("recover"),
						logger.Any("panic", rec),
					)
					w.Header().Set("Content-Type", "application/json; charset=utf-8")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"Error": "An internal error occurred.",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
