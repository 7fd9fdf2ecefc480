package domain

import "errors"

// Errores sentinel del dominio. Los services los devuelven tal cual y los
// controllers los mapean al envelope de error del wire (ver cada controller).
var (
	// ErrUserExists: register con username ya tomado. No hay update path.
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidCredentials cubre tanto "no existe el usuario" como "password
	// incorrecto". No se distingue a propósito (no revelar existencia de users).
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicateID: create con un id ya presente en el catálogo.
	ErrDuplicateID = errors.New("recipe id already exists")

	// ErrRecipeNotFound: edit/lookup/detail sobre un id ausente.
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrInvalidInput: campo requerido vacío o fuera de rango.
	ErrInvalidInput = errors.New("invalid input")
)
