package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/diewo77/quotemaster/internal/httpx"
	"github.com/diewo77/quotemaster/internal/logger"
	"github.com/diewo77/quotemaster/internal/store"
	"github.com/diewo77/quotemaster/internal/validation"
	"go.uber.org/zap"
)

// writeError maps store errors onto HTTP statuses. The body always carries
// the error message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, store.ErrClientHasRevenue), errors.Is(err, store.ErrDuplicate):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		logger.FromContext(r.Context()).Error("request failed", zap.Error(err))
	}
	httpx.JSONError(w, status, err.Error(), nil)
}

func writeViolations(w http.ResponseWriter, v validation.Violations) {
	httpx.JSONError(w, http.StatusBadRequest, "validation failed", v)
}

// pathID parses the {id} path segment. On failure it writes a 400 and
// returns false.
func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := r.PathValue("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		httpx.JSONError(w, http.StatusBadRequest, fmt.Sprintf("invalid id %q", raw), nil)
		return 0, false
	}
	return uint(id), true
}

// decode reads the JSON body into dst, writing a 400 on failure.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := httpx.DecodeJSON(w, r, dst); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error(), nil)
		return false
	}
	return true
}

type createdResponse struct {
	ID uint `json:"id"`
}
