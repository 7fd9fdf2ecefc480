// Package store expone el data access layer detrás de un factory por driver.
//
// Drivers:
//   - fs: snapshots JSON en disco (default; es el formato histórico de los
//     stores users.json / recipes.json / interactions.json)
//   - postgres: mismas interfaces sobre pgx
//
// Cada servicio abre SOLO los repositorios que le pertenecen; ningún proceso
// toca el store de otro.
package store

import (
	"context"
	"errors"

	"github.com/dropDatabas3/recetario/internal/domain"
	"github.com/dropDatabas3/recetario/internal/store/fs"
	"github.com/dropDatabas3/recetario/internal/store/pg"
)

// Store agrupa los repositorios de dominio de un driver.
type Store interface {
	Users() domain.UserRepository
	Recipes() domain.RecipeRepository
	Interactions() domain.InteractionRepository

	// Ping verifica que el backend esté accesible.
	Ping(ctx context.Context) error
	Close() error
}

// Config selecciona e inicializa el driver.
type Config struct {
	Driver      string // "fs" | "postgres"
	Root        string // data dir (driver fs)
	PostgresDSN string // DSN (driver postgres)
}

// Open crea el store según el driver configurado.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Driver {
	case "fs", "":
		return fs.Open(cfg.Root)
	case "postgres":
		return pg.Open(ctx, cfg.PostgresDSN)
	default:
		return nil, errors.New("store: unknown driver " + cfg.Driver)
	}
}
