package interaction

import (
	"errors"
	"net/http"

	"github.com/dropDatabas3/recetario/internal/domain"
	httpx "github.com/dropDatabas3/recetario/internal/http"
	"github.com/dropDatabas3/recetario/internal/observability/logger"
	"github.com/dropDatabas3/recetario/internal/wire"
)

// Controller despacha el envelope de interacción por action tag.
type Controller struct {
	service *Service
}

func NewController(service *Service) *Controller {
	return &Controller{service: service}
}

// Handle procesa POST /.
func (c *Controller) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req wire.InteractRequest
	if !httpx.ReadJSON(w, r, &req) {
		httpx.WriteJSON(w, http.StatusBadRequest, wire.Err("Invalid request format."))
		return
	}

	switch req.Action {
	case "rate":
		// mensajes de validación específicos por campo, antes del service
		if req.ID == "" {
			httpx.WriteJSON(w, http.StatusBadRequest, wire.Err("Recipe ID is required."))
			return
		}
		if req.Rating < 1 || req.Rating > 5 {
			httpx.WriteJSON(w, http.StatusBadRequest, wire.Err("Rating must be an integer between 1 and 5."))
			return
		}
		msg, avg, err := c.service.Rate(ctx, req.ID, req.Rating)
		if err != nil {
			c.writeError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, wire.RatingAck{Message: msg, AverageRating: avg})

	case "tag":
		if req.ID == "" || req.Tag == "" {
			httpx.WriteJSON(w, http.StatusBadRequest, wire.Err("Recipe ID and tag are required."))
			return
		}
		msg, err := c.service.Tag(ctx, req.ID, req.Tag)
		if err != nil {
			c.writeError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, wire.Msg(msg))

	default:
		httpx.WriteJSON(w, http.StatusBadRequest, wire.Err("Invalid action specified."))
	}
}

func (c *Controller) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		httpx.WriteJSON(w, http.StatusBadRequest, wire.Err("Recipe ID and a rating between 1 and 5 are required."))
	default:
		logger.From(r.Context()).Error("interaction request failed", logger.Layer("controller"), logger.Err(err))
		httpx.WriteJSON(w, http.StatusInternalServerError, wire.Err("An internal error occurred."))
	}
}
