package handlers

import (
	"context"
	"net/http"

	"github.com/diewo77/quotemaster/internal/httpx"
	"github.com/diewo77/quotemaster/internal/models"
)

type SettingsStore interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
	UpdateSettings(ctx context.Context, settings models.Settings) error
}

type SettingsHandler struct {
	store SettingsStore
}

func NewSettingsHandler(s SettingsStore) *SettingsHandler {
	return &SettingsHandler{store: s}
}

// Edit returns the business settings.
func (h *SettingsHandler) Edit(w http.ResponseWriter, r *http.Request) {
	settings, err := h.store.GetSettings(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, settings)
}

// Update replaces the business settings with the request body as given.
// Fields left out of the body are stored as their zero value.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var settings models.Settings
	if !decode(w, r, &settings) {
		return
	}

	if err := h.store.UpdateSettings(r.Context(), settings); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.NoContent(w)
}
