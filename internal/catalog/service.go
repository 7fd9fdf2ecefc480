// Package catalog implementa el servicio del catálogo de recetas: el
// endpoint mutante (create/edit) y el read-only (lookup/search/browse/detail)
// comparten este service y su store.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dropDatabas3/recetario/internal/cache"
	"github.com/dropDatabas3/recetario/internal/domain"
	"github.com/dropDatabas3/recetario/internal/observability/logger"
)

// Keys de cache del read path. Search no se cachea (keyspace abierto).
const (
	cacheKeyAll    = "recipes:all"
	cacheKeyRecipe = "recipes:id:" // + id
)

// Service es la lógica del catálogo. El cache es opcional (nil ⇒ sin cache);
// las mutaciones invalidan las keys afectadas antes de responder.
type Service struct {
	recipes domain.RecipeRepository
	cache   cache.Client
	ttl     time.Duration
}

func NewService(recipes domain.RecipeRepository, c cache.Client, ttl time.Duration) *Service {
	return &Service{recipes: recipes, cache: c, ttl: ttl}
}

// validate chequea los cinco campos requeridos. Ingredients tiene que ser
// una lista no vacía con al menos un elemento no vacío (los elementos vacíos
// restantes se conservan tal cual: así los guardaba siempre el sistema).
func validate(r domain.Recipe) error {
	if r.ID == "" || r.Name == "" || r.Instructions == "" || r.CookingTime == "" {
		return domain.ErrInvalidInput
	}
	ok := false
	for _, ing := range r.Ingredients {
		if ing != "" {
			ok = true
			break
		}
	}
	if !ok {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create agrega una receta nueva. El chequeo de colisión va primero (el id
// lo asigna el caller); después la validación de campos.
func (s *Service) Create(ctx context.Context, r domain.Recipe) (string, error) {
	if r.ID != "" {
		if _, err := s.recipes.GetByID(ctx, r.ID); err == nil {
			return "", domain.ErrDuplicateID
		}
	}
	if err := validate(r); err != nil {
		return "", err
	}
	if err := s.recipes.Create(ctx, r); err != nil {
		return "", err
	}
	s.invalidate(ctx, r.ID)
	logger.From(ctx).Info("recipe created", logger.Layer("service"), logger.RecipeID(r.ID))
	return fmt.Sprintf("Recipe '%s' created successfully.", r.ID), nil
}

// Edit reemplaza los campos no-clave de una receta existente.
// La validación corre recién después de encontrar la receta.
func (s *Service) Edit(ctx context.Context, r domain.Recipe) (string, error) {
	if _, err := s.recipes.GetByID(ctx, r.ID); err != nil {
		return "", err
	}
	if err := validate(r); err != nil {
		return "", err
	}
	if err := s.recipes.Update(ctx, r); err != nil {
		return "", err
	}
	s.invalidate(ctx, r.ID)
	logger.From(ctx).Info("recipe updated", logger.Layer("service"), logger.RecipeID(r.ID))
	return fmt.Sprintf("Recipe '%s' updated successfully.", r.ID), nil
}

// Lookup devuelve la receta completa por id.
func (s *Service) Lookup(ctx context.Context, id string) (*domain.Recipe, error) {
	if s.cache != nil {
		if b, err := s.cache.Get(ctx, cacheKeyRecipe+id); err == nil {
			var r domain.Recipe
			if json.Unmarshal(b, &r) == nil {
				return &r, nil
			}
		}
	}
	r, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, cacheKeyRecipe+id, r)
	return r, nil
}

// Detail es lookup proyectado a {name, ingredients, instructions}.
func (s *Service) Detail(ctx context.Context, id string) (*domain.RecipeDetails, error) {
	r, err := s.Lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	d := r.Details()
	return &d, nil
}

// Search: substring case-insensitive contra nombre o cualquier ingrediente,
// en orden de store. Lista vacía si no hay matches (no es un error).
func (s *Service) Search(ctx context.Context, query string) ([]domain.Recipe, error) {
	all, err := s.Browse(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	var out []domain.Recipe
	for _, r := range all {
		if matches(r, q) {
			out = append(out, r)
		}
	}
	return out, nil
}

func matches(r domain.Recipe, q string) bool {
	if strings.Contains(strings.ToLower(r.Name), q) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), q) {
			return true
		}
	}
	return false
}

// Browse devuelve el catálogo completo en orden de creación.
func (s *Service) Browse(ctx context.Context) ([]domain.Recipe, error) {
	if s.cache != nil {
		if b, err := s.cache.Get(ctx, cacheKeyAll); err == nil {
			var all []domain.Recipe
			if json.Unmarshal(b, &all) == nil {
				return all, nil
			}
		}
	}
	all, err := s.recipes.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, cacheKeyAll, all)
	return all, nil
}

func (s *Service) cacheSet(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	if b, err := json.Marshal(v); err == nil {
		if err := s.cache.Set(ctx, key, b, s.ttl); err != nil {
			logger.From(ctx).Warn("cache set failed", logger.Err(err))
		}
	}
}

// invalidate borra las keys afectadas por una mutación. Best-effort: un
// cache caído no bloquea la escritura (el TTL acota la ventana de stale).
func (s *Service) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cacheKeyAll); err != nil {
		logger.From(ctx).Warn("cache invalidate failed", logger.Err(err))
	}
	if err := s.cache.Delete(ctx, cacheKeyRecipe+id); err != nil {
		logger.From(ctx).Warn("cache invalidate failed", logger.Err(err))
	}
}
