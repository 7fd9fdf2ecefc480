// Package logger provee el logger estructurado (zap) compartido por todos
// los binarios: singleton con Init/L, propagación por contexto (ToContext/From)
// y helpers de campos tipados para mantener nombres consistentes en los logs.
package logger
