package domain

import "context"

// UserRepository es el store de credenciales, keyed por username.
type UserRepository interface {
	// Create guarda username → hash. ErrUserExists si ya está.
	Create(ctx context.Context, username, passwordHash string) error

	// GetHash devuelve el hash guardado. found=false si el username no existe
	// (no es un error: login lo trata como mismatch).
	GetHash(ctx context.Context, username string) (hash string, found bool, err error)
}

// RecipeRepository es el store canónico de recetas. El orden de inserción se
// preserva: List devuelve siempre el orden de creación.
type RecipeRepository interface {
	// List devuelve el catálogo completo en orden de creación.
	List(ctx context.Context) ([]Recipe, error)

	// GetByID busca una receta. ErrRecipeNotFound si no está.
	GetByID(ctx context.Context, id string) (*Recipe, error)

	// Create agrega al final. ErrDuplicateID si el id ya existe.
	Create(ctx context.Context, r Recipe) error

	// Update reemplaza los campos no-clave in place (la posición en el orden
	// no cambia). ErrRecipeNotFound si el id no existe.
	Update(ctx context.Context, r Recipe) error
}

// InteractionRepository es el store de ratings/tags por receta. El record se
// crea lazy en el primer AddRating/AddTag para un id dado.
type InteractionRepository interface {
	// AddRating agrega el rating al record del id (creándolo si no existe),
	// persiste y devuelve el record actualizado.
	AddRating(ctx context.Context, recipeID string, rating int) (*InteractionRecord, error)

	// AddTag agrega el tag (duplicados permitidos), persiste.
	AddTag(ctx context.Context, recipeID, tag string) error

	// Get devuelve el record del id, o found=false si nunca se interactuó.
	Get(ctx context.Context, recipeID string) (rec *InteractionRecord, found bool, err error)
}
