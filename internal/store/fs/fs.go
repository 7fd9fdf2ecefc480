// Package fs implementa el driver de storage sobre snapshots JSON en disco.
//
// Formato congelado (compatibilidad con los archivos históricos):
//   - users.json:        {"username": "sha256hex", ...}
//   - recipes.json:      [ {recipe}, ... ]  (orden de creación)
//   - interactions.json: {"recipeID": {"ratings":[...], "tags":[...]}, ...}
//
// Disciplina reload-per-request: cada operación lee el snapshot fresco y cada
// mutación reescribe el archivo COMPLETO (atómico, fsync antes del rename)
// antes de devolver. Un mutex serializa el ciclo load→mutate→persist, que es
// la garantía lock-step del sistema: un request a la vez por store.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dropDatabas3/recetario/internal/domain"
	"github.com/dropDatabas3/recetario/internal/util/atomicwrite"
)

const (
	usersFile        = "users.json"
	recipesFile      = "recipes.json"
	interactionsFile = "interactions.json"
)

// Store es una conexión al data dir.
type Store struct {
	root string
	mu   sync.Mutex
}

// Open prepara el data dir (lo crea si no existe).
func Open(root string) (*Store, error) {
	if root == "" {
		root = "data"
	}
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			if mkErr := os.MkdirAll(root, 0o755); mkErr != nil {
				return nil, fmt.Errorf("fs: create root %s: %w", root, mkErr)
			}
		} else {
			return nil, fmt.Errorf("fs: root path error: %w", err)
		}
	} else if !info.IsDir() {
		return nil, fmt.Errorf("fs: root path is not a directory: %s", root)
	}
	return &Store{root: filepath.Clean(root)}, nil
}

func (s *Store) Users() domain.UserRepository               { return &userRepo{s} }
func (s *Store) Recipes() domain.RecipeRepository           { return &recipeRepo{s} }
func (s *Store) Interactions() domain.InteractionRepository { return &interactionRepo{s} }

func (s *Store) Ping(ctx context.Context) error {
	_, err := os.Stat(s.root)
	return err
}

func (s *Store) Close() error { return nil }

func (s *Store) path(name string) string { return filepath.Join(s.root, name) }

// readJSON carga un snapshot. Archivo ausente NO es error: el caller recibe
// su zero value (mapa/lista vacíos), igual que el sistema original.
func readJSON[T any](path string, out *T) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("fs: decode %s: %w", filepath.Base(path), err)
	}
	return nil
}

// writeJSON persiste el snapshot completo, con indent (el formato de siempre).
func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return atomicwrite.AtomicWriteFile(path, b, 0o600)
}

// ─── UserRepository ───

type userRepo struct{ s *Store }

func (r *userRepo) Create(ctx context.Context, username, passwordHash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	users := map[string]string{}
	if err := readJSON(r.s.path(usersFile), &users); err != nil {
		return err
	}
	if _, ok := users[username]; ok {
		return domain.ErrUserExists
	}
	users[username] = passwordHash
	return writeJSON(r.s.path(usersFile), users)
}

func (r *userRepo) GetHash(ctx context.Context, username string) (string, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	users := map[string]string{}
	if err := readJSON(r.s.path(usersFile), &users); err != nil {
		return "", false, err
	}
	h, ok := users[username]
	return h, ok, nil
}

// ─── RecipeRepository ───

type recipeRepo struct{ s *Store }

func (r *recipeRepo) load() ([]domain.Recipe, error) {
	var recipes []domain.Recipe
	if err := readJSON(r.s.path(recipesFile), &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepo) List(ctx context.Context) ([]domain.Recipe, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	recipes, err := r.load()
	if err != nil {
		return nil, err
	}
	if recipes == nil {
		recipes = []domain.Recipe{}
	}
	return recipes, nil
}

func (r *recipeRepo) GetByID(ctx context.Context, id string) (*domain.Recipe, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	recipes, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range recipes {
		if recipes[i].ID == id {
			rec := recipes[i]
			return &rec, nil
		}
	}
	return nil, domain.ErrRecipeNotFound
}

func (r *recipeRepo) Create(ctx context.Context, rec domain.Recipe) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	recipes, err := r.load()
	if err != nil {
		return err
	}
	for i := range recipes {
		if recipes[i].ID == rec.ID {
			return domain.ErrDuplicateID
		}
	}
	recipes = append(recipes, rec)
	return writeJSON(r.s.path(recipesFile), recipes)
}

func (r *recipeRepo) Update(ctx context.Context, rec domain.Recipe) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	recipes, err := r.load()
	if err != nil {
		return err
	}
	for i := range recipes {
		if recipes[i].ID == rec.ID {
			// reemplazo in place: la posición en el orden no cambia
			recipes[i] = rec
			return writeJSON(r.s.path(recipesFile), recipes)
		}
	}
	return domain.ErrRecipeNotFound
}

// ─── InteractionRepository ───

type interactionRepo struct{ s *Store }

func (r *interactionRepo) load() (map[string]domain.InteractionRecord, error) {
	recs := map[string]domain.InteractionRecord{}
	if err := readJSON(r.s.path(interactionsFile), &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// getOrCreate es el default-dict del original, explícito.
func getOrCreate(recs map[string]domain.InteractionRecord, id string) domain.InteractionRecord {
	if rec, ok := recs[id]; ok {
		return rec
	}
	return domain.InteractionRecord{Ratings: []int{}, Tags: []string{}}
}

func (r *interactionRepo) AddRating(ctx context.Context, recipeID string, rating int) (*domain.InteractionRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	recs, err := r.load()
	if err != nil {
		return nil, err
	}
	rec := getOrCreate(recs, recipeID)
	rec.Ratings = append(rec.Ratings, rating)
	recs[recipeID] = rec
	if err := writeJSON(r.s.path(interactionsFile), recs); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *interactionRepo) AddTag(ctx context.Context, recipeID, tag string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	recs, err := r.load()
	if err != nil {
		return err
	}
	rec := getOrCreate(recs, recipeID)
	rec.Tags = append(rec.Tags, tag)
	recs[recipeID] = rec
	return writeJSON(r.s.path(interactionsFile), recs)
}

func (r *interactionRepo) Get(ctx context.Context, recipeID string) (*domain.InteractionRecord, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	recs, err := r.load()
	if err != nil {
		return nil, false, err
	}
	rec, ok := recs[recipeID]
	if !ok {
		return nil, false, nil
	}
	return &rec, true, nil
}
