// Package interaction implementa el servicio de interacción: ratings y tags
// por receta, append-only.
//
// A propósito NO se valida que el recipe id exista en el catálogo: los
// stores son independientes y agregar esa validación crearía una dependencia
// runtime entre servicios que el diseño no tiene.
package interaction

import (
	"context"
	"fmt"

	"github.com/dropDatabas3/recetario/internal/domain"
	"github.com/dropDatabas3/recetario/internal/observability/logger"
)

// Service es la lógica de rate/tag.
type Service struct {
	interactions domain.InteractionRepository
}

func NewService(interactions domain.InteractionRepository) *Service {
	return &Service{interactions: interactions}
}

// Rate agrega el rating al record del id (lazy create) y devuelve el
// promedio recalculado sobre TODOS los ratings históricos.
// Rechaza defensivamente id vacío o rating fuera de [1,5], aunque el
// dispatcher ya valida en el borde.
func (s *Service) Rate(ctx context.Context, recipeID string, rating int) (string, float64, error) {
	if recipeID == "" || rating < 1 || rating > 5 {
		return "", 0, domain.ErrInvalidInput
	}
	rec, err := s.interactions.AddRating(ctx, recipeID, rating)
	if err != nil {
		return "", 0, err
	}
	logger.From(ctx).Info("recipe rated",
		logger.Layer("service"), logger.RecipeID(recipeID), logger.Rating(rating))
	return fmt.Sprintf("Recipe '%s' rated successfully.", recipeID), rec.AverageRating(), nil
}

// Tag agrega el tag al record del id (duplicados permitidos).
func (s *Service) Tag(ctx context.Context, recipeID, tag string) (string, error) {
	if recipeID == "" || tag == "" {
		return "", domain.ErrInvalidInput
	}
	if err := s.interactions.AddTag(ctx, recipeID, tag); err != nil {
		return "", err
	}
	logger.From(ctx).Info("recipe tagged",
		logger.Layer("service"), logger.RecipeID(recipeID), logger.Tag(tag))
	return fmt.Sprintf("Tag '%s' added to recipe '%s'.", tag, recipeID), nil
}
