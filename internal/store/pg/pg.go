// Package pg implementa el driver de storage sobre Postgres (pgx).
//
// Mismo comportamiento observable que el driver fs: keys únicas, orden de
// inserción preservado para el catálogo (columna position) y listas
// append-only para interacciones. El schema se asegura al conectar; no hay
// migraciones versionadas (los tres stores son deliberadamente chicos).
package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dropDatabas3/recetario/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS credentials (
    username      TEXT PRIMARY KEY,
    password_hash TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS recipes (
    position     BIGSERIAL,
    id           TEXT PRIMARY KEY,
    name         TEXT NOT NULL,
    ingredients  TEXT[] NOT NULL,
    instructions TEXT NOT NULL,
    cooking_time TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS interactions (
    recipe_id TEXT PRIMARY KEY,
    ratings   INT[]  NOT NULL DEFAULT '{}',
    tags      TEXT[] NOT NULL DEFAULT '{}'
);`

// Store es una conexión al backend Postgres.
type Store struct {
	pool *pgxpool.Pool
}

// Open conecta y asegura el schema.
func Open(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, errors.New("pg: empty dsn")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pg: connect: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pg: ensure schema: %w", err)
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Users() domain.UserRepository               { return &userRepo{s.pool} }
func (s *Store) Recipes() domain.RecipeRepository           { return &recipeRepo{s.pool} }
func (s *Store) Interactions() domain.InteractionRepository { return &interactionRepo{s.pool} }

func (s *Store) Ping(ctx context.Context) error { return s.pool.Ping(ctx) }

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// ─── UserRepository ───

type userRepo struct{ db *pgxpool.Pool }

func (r *userRepo) Create(ctx context.Context, username, passwordHash string) error {
	tag, err := r.db.Exec(ctx,
		`INSERT INTO credentials (username, password_hash) VALUES ($1, $2)
		 ON CONFLICT (username) DO NOTHING`,
		username, passwordHash,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserExists
	}
	return nil
}

func (r *userRepo) GetHash(ctx context.Context, username string) (string, bool, error) {
	var h string
	err := r.db.QueryRow(ctx,
		`SELECT password_hash FROM credentials WHERE username = $1`, username,
	).Scan(&h)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return h, true, nil
}

// ─── RecipeRepository ───

type recipeRepo struct{ db *pgxpool.Pool }

func scanRecipe(row pgx.Row) (*domain.Recipe, error) {
	var rec domain.Recipe
	if err := row.Scan(&rec.ID, &rec.Name, &rec.Ingredients, &rec.Instructions, &rec.CookingTime); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *recipeRepo) List(ctx context.Context) ([]domain.Recipe, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, ingredients, instructions, cooking_time
		   FROM recipes ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Recipe{}
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

func (r *recipeRepo) GetByID(ctx context.Context, id string) (*domain.Recipe, error) {
	rec, err := scanRecipe(r.db.QueryRow(ctx,
		`SELECT id, name, ingredients, instructions, cooking_time
		   FROM recipes WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (r *recipeRepo) Create(ctx context.Context, rec domain.Recipe) error {
	tag, err := r.db.Exec(ctx,
		`INSERT INTO recipes (id, name, ingredients, instructions, cooking_time)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO NOTHING`,
		rec.ID, rec.Name, rec.Ingredients, rec.Instructions, rec.CookingTime,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDuplicateID
	}
	return nil
}

func (r *recipeRepo) Update(ctx context.Context, rec domain.Recipe) error {
	// position no se toca: el orden de browse es el de creación
	tag, err := r.db.Exec(ctx,
		`UPDATE recipes
		    SET name = $2, ingredients = $3, instructions = $4, cooking_time = $5
		  WHERE id = $1`,
		rec.ID, rec.Name, rec.Ingredients, rec.Instructions, rec.CookingTime,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

// ─── InteractionRepository ───

type interactionRepo struct{ db *pgxpool.Pool }

func (r *interactionRepo) AddRating(ctx context.Context, recipeID string, rating int) (*domain.InteractionRecord, error) {
	var ratings []int32
	var tags []string
	err := r.db.QueryRow(ctx,
		`INSERT INTO interactions (recipe_id, ratings) VALUES ($1, ARRAY[$2::int])
		 ON CONFLICT (recipe_id) DO UPDATE
		    SET ratings = interactions.ratings || $2::int
		 RETURNING ratings, tags`,
		recipeID, rating,
	).Scan(&ratings, &tags)
	if err != nil {
		return nil, err
	}
	return recordFrom(ratings, tags), nil
}

func (r *interactionRepo) AddTag(ctx context.Context, recipeID, tag string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO interactions (recipe_id, tags) VALUES ($1, ARRAY[$2::text])
		 ON CONFLICT (recipe_id) DO UPDATE
		    SET tags = interactions.tags || $2::text`,
		recipeID, tag,
	)
	return err
}

func (r *interactionRepo) Get(ctx context.Context, recipeID string) (*domain.InteractionRecord, bool, error) {
	var ratings []int32
	var tags []string
	err := r.db.QueryRow(ctx,
		`SELECT ratings, tags FROM interactions WHERE recipe_id = $1`, recipeID,
	).Scan(&ratings, &tags)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return recordFrom(ratings, tags), true, nil
}

func recordFrom(ratings []int32, tags []string) *domain.InteractionRecord {
	rec := &domain.InteractionRecord{
		Ratings: make([]int, len(ratings)),
		Tags:    tags,
	}
	for i, v := range ratings {
		rec.Ratings[i] = int(v)
	}
	if rec.Tags == nil {
		rec.Tags = []string{}
	}
	return rec
}
