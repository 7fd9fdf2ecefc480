package catalog

import (
	"errors"
	"net/http"

	"github.com/dropDatabas3/recetario/internal/domain"
	httpx "github.com/dropDatabas3/recetario/internal/http"
	"github.com/dropDatabas3/recetario/internal/observability/logger"
	"github.com/dropDatabas3/recetario/internal/wire"
)

// ManageController despacha el envelope mutante (create/edit) por action tag.
type ManageController struct {
	service *Service
}

func NewManageController(service *Service) *ManageController {
	return &ManageController{service: service}
}

// Handle procesa POST / del endpoint mutante.
func (c *ManageController) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req wire.ManageRequest
	if !httpx.ReadJSON(w, r, &req) {
		httpx.WriteJSON(w, http.StatusBadRequest, wire.Err("Invalid request format."))
		return
	}

	recipe := domain.Recipe{
		ID:           req.ID,
		Name:         req.Name,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		CookingTime:  req.CookingTime,
	}

	var msg string
	var err error
	switch req.Action {
	case "create":
		msg, err = c.service.Create(ctx, recipe)
	case "edit":
		msg, err = c.service.Edit(ctx, recipe)
	default:
		httpx.WriteJSON(w, http.StatusBadRequest, wire.Err("Invalid action specified."))
		return
	}

	if err != nil {
		writeManageError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, wire.Msg(msg))
}

func writeManageError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrDuplicateID):
		httpx.WriteJSON(w, http.StatusConflict, wire.Err("Recipe ID already exists."))
	case errors.Is(err, domain.ErrRecipeNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, wire.Err("Recipe not found."))
	case errors.Is(err, domain.ErrInvalidInput):
		httpx.WriteJSON(w, http.StatusBadRequest,
			wire.Err("Invalid data. Name, ingredients, instructions, and cooking time are required."))
	default:
		logger.From(r.Context()).Error("catalog request failed", logger.Layer("controller"), logger.Err(err))
		httpx.WriteJSON(w, http.StatusInternalServerError, wire.Err("An internal error occurred."))
	}
}

// ReadController despacha el envelope read-only. No hay action tag: se
// resuelve por cuál campo viene seteado, en el orden histórico
// recipeID → searchQuery → browse → recipeDetailsID.
type ReadController struct {
	service *Service
}

func NewReadController(service *Service) *ReadController {
	return &ReadController{service: service}
}

// Handle procesa POST / del endpoint read-only.
func (c *ReadController) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req wire.ReadRequest
	if !httpx.ReadJSON(w, r, &req) {
		httpx.WriteJSON(w, http.StatusBadRequest, wire.Err("Invalid request format."))
		return
	}

	switch {
	case req.RecipeID != "":
		recipe, err := c.service.Lookup(ctx, req.RecipeID)
		if err != nil {
			writeReadError(w, r, err, "Could not find specified recipe.")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, recipe)

	case req.SearchQuery != "":
		results, err := c.service.Search(ctx, req.SearchQuery)
		if err != nil {
			writeReadError(w, r, err, "")
			return
		}
		if len(results) == 0 {
			// resultado vacío es un Message, no un Error
			httpx.WriteJSON(w, http.StatusOK, wire.Msg("No matching recipes found."))
			return
		}
		httpx.WriteJSON(w, http.StatusOK, results)

	case req.Browse:
		all, err := c.service.Browse(ctx)
		if err != nil {
			writeReadError(w, r, err, "")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, all)

	case req.RecipeDetailsID != "":
		details, err := c.service.Detail(ctx, req.RecipeDetailsID)
		if err != nil {
			writeReadError(w, r, err, "Could not find specified recipe details.")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, details)

	default:
		httpx.WriteJSON(w, http.StatusBadRequest,
			wire.Err("No valid recipe ID, search query, browse request, or recipe details ID was provided."))
	}
}

// writeReadError: notFoundMsg es el string congelado de cada operación de
// lectura ("recipe" vs "recipe details").
func writeReadError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	if errors.Is(err, domain.ErrRecipeNotFound) && notFoundMsg != "" {
		httpx.WriteJSON(w, http.StatusNotFound, wire.Err(notFoundMsg))
		return
	}
	logger.From(r.Context()).Error("catalog read failed", logger.Layer("controller"), logger.Err(err))
	httpx.WriteJSON(w, http.StatusInternalServerError, wire.Err("An internal error occurred."))
}
