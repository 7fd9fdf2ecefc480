package logger

import (
	"time"

	"go.uber.org/zap"
)

// ─── Campos estándar - HTTP ───

// RequestID crea un campo para el ID del request.
func RequestID(v string) zap.Field { return zap.String("request_id", v) }

// Method crea un campo para el método HTTP.
func Method(v string) zap.Field { return zap.String("method", v) }

// Path crea un campo para el path del request.
func Path(v string) zap.Field { return zap.String("path", v) }

// Status crea un campo para el status code HTTP.
func Status(v int) zap.Field { return zap.Int("status", v) }

// Duration crea un campo para la duración del request.
func Duration(v time.Duration) zap.Field { return zap.Duration("duration", v) }

// DurationMs crea un campo para la duración en milisegundos.
func DurationMs(v int64) zap.Field { return zap.Int64("duration_ms", v) }

// Bytes crea un campo para los bytes de respuesta.
func Bytes(v int) zap.Field { return zap.Int("bytes", v) }

// ─── Campos estándar - negocio ───

// Action crea un campo para el action tag del envelope.
func Action(v string) zap.Field { return zap.String("action", v) }

// Username crea un campo para el username.
func Username(v string) zap.Field { return zap.String("username", v) }

// RecipeID crea un campo para el id de receta.
func RecipeID(v string) zap.Field { return zap.String("recipe_id", v) }

// Query crea un campo para el término de búsqueda.
func Query(v string) zap.Field { return zap.String("query", v) }

// Tag crea un campo para un tag de receta.
func Tag(v string) zap.Field { return zap.String("tag", v) }

// Rating crea un campo para un rating.
func Rating(v int) zap.Field { return zap.Int("rating", v) }

// ─── Campos estándar - sistema ───

// Component crea un campo para el componente/módulo.
func Component(v string) zap.Field { return zap.String("component", v) }

// Op crea un campo para la operación actual.
func Op(v string) zap.Field { return zap.String("op", v) }

// Layer crea un campo para la capa (controller, service, store).
func Layer(v string) zap.Field { return zap.String("layer", v) }

// Err crea un campo para un error.
func Err(err error) zap.Field { return zap.Error(err) }

// Count crea un campo para un conteo.
func Count(v int) zap.Field { return zap.Int("count", v) }

// Driver crea un campo para el driver de storage/cache.
func Driver(v string) zap.Field { return zap.String("driver", v) }

// Addr crea un campo para una dirección de listen.
func Addr(v string) zap.Field { return zap.String("addr", v) }

// Any crea un campo genérico para cualquier tipo.
func Any(key string, v any) zap.Field { return zap.Any(key, v) }

// String crea un campo string genérico.
func String(key, v string) zap.Field { return zap.String(key, v) }
