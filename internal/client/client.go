// Package client implementa el dispatcher: mapea cada intención del usuario
// al servicio correcto, arma el envelope y devuelve la respuesta cruda.
//
// Disciplina lock-step: un send bloquea hasta recibir su reply (o hasta el
// timeout del http.Client); no hay pipelining, reintentos ni inspección de
// la respuesta más allá de chequear que sea JSON.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dropDatabas3/recetario/internal/domain"
	"github.com/dropDatabas3/recetario/internal/wire"
)

// Config son las direcciones base de los cuatro endpoints y el timeout de
// cada rendezvous.
type Config struct {
	AuthURL        string
	CatalogURL     string
	CatalogReadURL string
	InteractionURL string
	Timeout        time.Duration
}

// Dispatcher es el cliente de los tres servicios + read path del catálogo.
type Dispatcher struct {
	cfg  Config
	http *http.Client
}

func New(cfg Config) *Dispatcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &Dispatcher{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// commFailure es el envelope uniforme para cualquier falla de transporte.
func commFailure() json.RawMessage {
	b, _ := json.Marshal(wire.Err(wire.ErrCommunication))
	return b
}

// send serializa el envelope, lo POSTea al endpoint y devuelve el body tal
// cual. Cualquier falla de transporte (conexión, timeout, reply no-JSON) se
// convierte en el envelope CommunicationError: nunca se propaga como fault.
func (d *Dispatcher) send(ctx context.Context, baseURL string, payload any) json.RawMessage {
	body, err := json.Marshal(payload)
	if err != nil {
		return commFailure()
	}

	url := strings.TrimRight(baseURL, "/") + "/"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return commFailure()
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.http.Do(req)
	if err != nil {
		return commFailure()
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil || !json.Valid(b) {
		return commFailure()
	}
	// la respuesta se releva verbatim, sin mirar el status code
	return b
}

// ─── Auth ───

// Register valida no-vacíos en el borde y despacha al servicio de auth.
func (d *Dispatcher) Register(ctx context.Context, username, password string) (json.RawMessage, error) {
	if username == "" || password == "" {
		return nil, errors.New("username and password cannot be empty")
	}
	return d.send(ctx, d.cfg.AuthURL, wire.AuthRequest{
		Action: "register", Username: username, Password: password,
	}), nil
}

func (d *Dispatcher) Login(ctx context.Context, username, password string) (json.RawMessage, error) {
	if username == "" || password == "" {
		return nil, errors.New("username and password cannot be empty")
	}
	return d.send(ctx, d.cfg.AuthURL, wire.AuthRequest{
		Action: "login", Username: username, Password: password,
	}), nil
}

// ─── Catálogo (mutante) ───

func (d *Dispatcher) CreateRecipe(ctx context.Context, r domain.Recipe) (json.RawMessage, error) {
	if err := checkRecipe(r); err != nil {
		return nil, err
	}
	return d.send(ctx, d.cfg.CatalogURL, manageRequest("create", r)), nil
}

func (d *Dispatcher) EditRecipe(ctx context.Context, r domain.Recipe) (json.RawMessage, error) {
	if err := checkRecipe(r); err != nil {
		return nil, err
	}
	return d.send(ctx, d.cfg.CatalogURL, manageRequest("edit", r)), nil
}

func manageRequest(action string, r domain.Recipe) wire.ManageRequest {
	return wire.ManageRequest{
		Action:       action,
		ID:           r.ID,
		Name:         r.Name,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		CookingTime:  r.CookingTime,
	}
}

// checkRecipe es el chequeo de no-vacíos del borde; la validación de verdad
// la hace el servicio.
func checkRecipe(r domain.Recipe) error {
	if r.ID == "" || r.Name == "" || r.Instructions == "" || r.CookingTime == "" {
		return errors.New("all fields are required")
	}
	for _, ing := range r.Ingredients {
		if ing != "" {
			return nil
		}
	}
	return errors.New("all fields are required")
}

// ─── Interacción ───

func (d *Dispatcher) Rate(ctx context.Context, recipeID string, rating int) (json.RawMessage, error) {
	if recipeID == "" {
		return nil, errors.New("recipe ID cannot be empty")
	}
	if rating < 1 || rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}
	return d.send(ctx, d.cfg.InteractionURL, wire.InteractRequest{
		Action: "rate", ID: recipeID, Rating: rating,
	}), nil
}

func (d *Dispatcher) Tag(ctx context.Context, recipeID, tag string) (json.RawMessage, error) {
	if recipeID == "" || tag == "" {
		return nil, errors.New("recipe ID and tag cannot be empty")
	}
	return d.send(ctx, d.cfg.InteractionURL, wire.InteractRequest{
		Action: "tag", ID: recipeID, Tag: tag,
	}), nil
}

// ─── Catálogo (read-only) ───

func (d *Dispatcher) Lookup(ctx context.Context, recipeID string) (json.RawMessage, error) {
	if recipeID == "" {
		return nil, errors.New("recipe ID cannot be empty")
	}
	return d.send(ctx, d.cfg.CatalogReadURL, wire.ReadRequest{RecipeID: recipeID}), nil
}

// Search lowercasea el término en el borde (como hizo siempre el cliente);
// el servicio igual busca case-insensitive.
func (d *Dispatcher) Search(ctx context.Context, query string) (json.RawMessage, error) {
	if query == "" {
		return nil, errors.New("search term cannot be empty")
	}
	return d.send(ctx, d.cfg.CatalogReadURL, wire.ReadRequest{SearchQuery: strings.ToLower(query)}), nil
}

func (d *Dispatcher) Browse(ctx context.Context) json.RawMessage {
	return d.send(ctx, d.cfg.CatalogReadURL, wire.ReadRequest{Browse: true})
}

func (d *Dispatcher) Details(ctx context.Context, recipeID string) (json.RawMessage, error) {
	if recipeID == "" {
		return nil, errors.New("recipe ID cannot be empty")
	}
	return d.send(ctx, d.cfg.CatalogReadURL, wire.ReadRequest{RecipeDetailsID: recipeID}), nil
}
