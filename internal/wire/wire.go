// Package wire define los envelopes JSON del protocolo request/reply.
//
// Los nombres de campo están CONGELADOS: son el contrato histórico entre
// cliente y servicios (incluido "Average Rating", con espacio). Cambiarlos
// rompe compatibilidad con clientes y snapshots existentes.
package wire

// AuthRequest es el envelope del servicio de autenticación.
type AuthRequest struct {
	Action   string `json:"action"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// ManageRequest es el envelope del endpoint mutante del catálogo.
type ManageRequest struct {
	Action       string   `json:"action"`
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	CookingTime  string   `json:"cooking_time"`
}

// InteractRequest es el envelope del servicio de interacción.
type InteractRequest struct {
	Action string `json:"action"`
	ID     string `json:"id"`
	Rating int    `json:"rating"`
	Tag    string `json:"tag"`
}

// ReadRequest es el envelope del endpoint read-only del catálogo.
// No lleva action: se despacha por cuál campo viene seteado, en este orden:
// recipeID, searchQuery, browse, recipeDetailsID.
type ReadRequest struct {
	RecipeID        string `json:"recipeID,omitempty"`
	SearchQuery     string `json:"searchQuery,omitempty"`
	Browse          bool   `json:"browse,omitempty"`
	RecipeDetailsID string `json:"recipeDetailsID,omitempty"`
}

// Ack es la respuesta genérica: exactamente uno de los dos campos viene seteado.
type Ack struct {
	Message string `json:"Message,omitempty"`
	Error   string `json:"Error,omitempty"`
}

// RatingAck es la respuesta de rate: mensaje + promedio recalculado.
type RatingAck struct {
	Message       string  `json:"Message"`
	AverageRating float64 `json:"Average Rating"`
}

// ErrCommunication es la respuesta uniforme del dispatcher ante cualquier
// falla de transporte (servicio caído, timeout, reply malformado).
const ErrCommunication = "Communication failed with the server."

// Msg construye un Ack de éxito.
func Msg(m string) Ack { return Ack{Message: m} }

// Err construye un Ack de error.
func Err(e string) Ack { return Ack{Error: e} }
