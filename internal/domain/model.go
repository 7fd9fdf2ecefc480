// Package domain define los modelos y contratos de repositorio del catálogo.
// Los tags JSON están congelados: son el formato de snapshot en disco Y el
// formato de respuesta del endpoint de lectura (mismo objeto en ambos lados).
package domain

// Credential es un usuario registrado. El hash es sha256 hex del password,
// sin salt (compatibilidad con los snapshots existentes; ver auth.HashPassword).
type Credential struct {
	Username     string
	PasswordHash string
}

// Recipe es la unidad canónica del catálogo. El id lo asigna el caller,
// el servicio solo chequea colisión.
type Recipe struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	CookingTime  string   `json:"cooking_time"`
}

// RecipeDetails es la vista reducida que devuelve recipeDetailsID:
// sin id ni cooking_time, a propósito.
type RecipeDetails struct {
	Name         string   `json:"name"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
}

// Details proyecta la receta a su vista de detalle.
func (r Recipe) Details() RecipeDetails {
	return RecipeDetails{
		Name:         r.Name,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
	}
}

// InteractionRecord acumula ratings y tags de una receta. Ambas listas son
// append-only: nunca se deduplica ni se borra. La existencia del record es
// independiente de que la receta exista en el catálogo (decisión de diseño,
// no se valida cross-service).
type InteractionRecord struct {
	Ratings []int    `json:"ratings"`
	Tags    []string `json:"tags"`
}

// AverageRating es la media aritmética de todos los ratings registrados.
// Derivada, nunca persistida. Retorna 0 si no hay ratings.
func (rec InteractionRecord) AverageRating() float64 {
	if len(rec.Ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range rec.Ratings {
		sum += r
	}
	return float64(sum) / float64(len(rec.Ratings))
}
