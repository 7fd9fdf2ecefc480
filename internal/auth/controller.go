package auth

import (
	"errors"
	"net/http"

	"github.com/dropDatabas3/recetario/internal/domain"
	httpx "github.com/dropDatabas3/recetario/internal/http"
	"github.com/dropDatabas3/recetario/internal/observability/logger"
	"github.com/dropDatabas3/recetario/internal/wire"
)

// Controller despacha el envelope de auth por action tag.
type Controller struct {
	service *Service
}

func NewController(service *Service) *Controller {
	return &Controller{service: service}
}

// Handle procesa POST /.
func (c *Controller) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req wire.AuthRequest
	if !httpx.ReadJSON(w, r, &req) {
		httpx.WriteJSON(w, http.StatusBadRequest, wire.Err("Invalid request format."))
		return
	}

	switch req.Action {
	case "register":
		msg, err := c.service.Register(ctx, req.Username, req.Password)
		if err != nil {
			c.writeError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, wire.Msg(msg))

	case "login":
		msg, err := c.service.Login(ctx, req.Username, req.Password)
		if err != nil {
			c.writeError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, wire.Msg(msg))

	default:
		httpx.WriteJSON(w, http.StatusBadRequest, wire.Err("Invalid action specified."))
	}
}

// writeError mapea errores del service al envelope de error.
// Los strings están congelados (compatibilidad de protocolo).
func (c *Controller) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrUserExists):
		httpx.WriteJSON(w, http.StatusConflict, wire.Err("User already exists."))
	case errors.Is(err, domain.ErrInvalidCredentials):
		httpx.WriteJSON(w, http.StatusUnauthorized, wire.Err("Invalid credentials."))
	default:
		// fault de persistencia u otro error interno: respuesta genérica,
		// el detalle va solo al log
		logger.From(r.Context()).Error("auth request failed", logger.Layer("controller"), logger.Err(err))
		httpx.WriteJSON(w, http.StatusInternalServerError, wire.Err("An internal error occurred."))
	}
}
