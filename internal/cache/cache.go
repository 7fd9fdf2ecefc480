// Package cache provee una abstracción de caching con soporte multi-backend.
//
// Soporta:
//   - Memory (in-process, para desarrollo/testing)
//   - Redis (distribuido)
//
// Lo usa el endpoint de lectura del catálogo para browse/lookup; las
// mutaciones invalidan por key.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indica que la key no existe (miss).
var ErrNotFound = errors.New("cache: key not found")

// Client define las operaciones de cache.
type Client interface {
	// Get obtiene un valor. Retorna ErrNotFound si no existe.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set guarda un valor con TTL. Si ttl es 0 usa el default del driver.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete elimina una key. No es error si no existía.
	Delete(ctx context.Context, key string) error

	// Close cierra la conexión.
	Close() error
}

// Config configuración para crear un cliente de cache.
type Config struct {
	Kind       string // "memory" | "redis" | "off"
	DefaultTTL time.Duration
	Redis      struct {
		Addr   string
		DB     int
		Prefix string
	}
}

// New crea un cliente según la configuración. Kind vacío => memory.
// "off" retorna un cliente no-op (todo miss).
func New(cfg Config) (Client, error) {
	switch cfg.Kind {
	case "redis":
		return newRedis(cfg), nil
	case "off":
		return noop{}, nil
	case "memory", "":
		return newMemory(cfg.DefaultTTL), nil
	default:
		return nil, errors.New("cache: unknown kind " + cfg.Kind)
	}
}

type noop struct{}

func (noop) Get(context.Context, string) ([]byte, error)              { return nil, ErrNotFound }
func (noop) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (noop) Delete(context.Context, string) error                     { return nil }
func (noop) Close() error                                             { return nil }
