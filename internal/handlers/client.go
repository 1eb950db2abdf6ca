package handlers

import (
	"context"
	"net/http"

	"github.com/diewo77/quotemaster/internal/httpx"
	"github.com/diewo77/quotemaster/internal/models"
)

// ClientStore is the subset of the record store the client routes use.
type ClientStore interface {
	ListClients(ctx context.Context) ([]models.Client, error)
	GetClient(ctx context.Context, id uint) (*models.Client, error)
	AddClient(ctx context.Context, client models.Client) (uint, error)
	UpdateClient(ctx context.Context, id uint, client models.Client) error
	DeleteClient(ctx context.Context, id uint) error
}

type ClientHandler struct {
	store ClientStore
}

func NewClientHandler(s ClientStore) *ClientHandler {
	return &ClientHandler{store: s}
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.store.ListClients(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, clients)
}

func (h *ClientHandler) View(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	client, err := h.store.GetClient(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, client)
}

// Create stores the client as given; only the JSON shape is checked.
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var client models.Client
	if !decode(w, r, &client) {
		return
	}
	id, err := h.store.AddClient(r.Context(), client)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, createdResponse{ID: id})
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var client models.Client
	if !decode(w, r, &client) {
		return
	}
	if err := h.store.UpdateClient(r.Context(), id, client); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.NoContent(w)
}

func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.store.DeleteClient(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.NoContent(w)
}

