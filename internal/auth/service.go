// Package auth implementa el servicio de autenticación: register y login
// contra el store de credenciales.
package auth

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/dropDatabas3/recetario/internal/domain"
	"github.com/dropDatabas3/recetario/internal/observability/logger"
)

// HashPassword es sha256 hex del password crudo, sin salt.
//
// Debilidad conocida y deliberada: es el digest histórico de users.json y
// cambiarlo invalidaría todas las credenciales guardadas. Un upgrade de
// seguridad requiere un path de migración de hashes, fuera de alcance.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Service es la lógica de register/login. Stateless salvo el repo.
type Service struct {
	users domain.UserRepository
}

func NewService(users domain.UserRepository) *Service {
	return &Service{users: users}
}

// Register crea la credencial si el username está libre.
// ErrUserExists si ya está tomado; no hay update path.
func (s *Service) Register(ctx context.Context, username, password string) (string, error) {
	if err := s.users.Create(ctx, username, HashPassword(password)); err != nil {
		return "", err
	}
	logger.From(ctx).Info("user registered", logger.Layer("service"), logger.Username(username))
	return fmt.Sprintf("User '%s' registered successfully.", username), nil
}

// Login compara el hash del password contra el guardado. Username ausente y
// password incorrecto son indistinguibles: ambos ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	stored, found, err := s.users.GetHash(ctx, username)
	if err != nil {
		return "", err
	}
	candidate := HashPassword(password)
	if !found || subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) != 1 {
		return "", domain.ErrInvalidCredentials
	}
	logger.From(ctx).Info("user logged in", logger.Layer("service"), logger.Username(username))
	return fmt.Sprintf("User '%s' logged in successfully.", username), nil
}
