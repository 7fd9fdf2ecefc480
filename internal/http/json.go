// Package http concentra el plumbing HTTP compartido por los tres servicios:
// helpers JSON, server con graceful shutdown y métricas Prometheus.
package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// WriteJSON: respuesta JSON estándar.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ReadJSON decodifica el body de forma tolerante (NO falla por campos
// desconocidos: los envelopes comparten keys entre acciones). Limita el body
// a 1MB. Retorna false si el body no es JSON válido; el caller decide qué
// envelope de error escribir.
func ReadJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if ct := strings.ToLower(r.Header.Get("Content-Type")); ct != "" && !strings.Contains(ct, "application/json") {
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil && err != io.EOF {
		return false
	}
	return true
}
