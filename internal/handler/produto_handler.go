package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"produtos-api/internal/model"
	"produtos-api/internal/service"
	"produtos-api/internal/validation"

	"github.com/rs/zerolog"
)

// ProdutoHandler handles produto-related HTTP requests.
type ProdutoHandler struct {
	service service.ProdutoService
	logger  zerolog.Logger
}

// NewProdutoHandler creates a new produto handler.
func NewProdutoHandler(service service.ProdutoService, logger zerolog.Logger) *ProdutoHandler {
	return &ProdutoHandler{
		service: service,
		logger:  logger.With().Str("handler", "produto").Logger(),
	}
}

// List handles GET /produtos requests with pagination.
func (h *ProdutoHandler) List(w http.ResponseWriter, r *http.Request) {
	pageStr := r.URL.Query().Get("page")
	limitStr := r.URL.Query().Get("limit")

	page := 1 // default
	if pageStr != "" {
		var err error
		page, err = strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			writeError(w, http.StatusBadRequest, "invalid page parameter", h.logger)
			return
		}
	}

	limit := 10 // default
	if limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			writeError(w, http.StatusBadRequest, "invalid limit parameter", h.logger)
			return
		}
	}

	produtos, err := h.service.List(r.Context(), page, limit)
	if err != nil {
		writeStoreError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, produtos)
}

// Create handles POST /produtos requests.
func (h *ProdutoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateProdutoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	// Validation short-circuits before any store access.
	if fieldErrors := validation.CheckStruct(req); fieldErrors != nil {
		writeValidationError(w, fieldErrors, h.logger)
		return
	}

	produto, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeStoreError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, model.CreateProdutoResponse{
		Message: "produto criado com sucesso",
		Produto: *produto,
	})
}

// Update handles PUT /produtos/{id} requests.
func (h *ProdutoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.produtoID(w, r)
	if !ok {
		return
	}

	var req model.UpdateProdutoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	produto, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		writeStoreError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, produto)
}

// Delete handles DELETE /produtos/{id} requests.
func (h *ProdutoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.produtoID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeStoreError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// produtoID extracts the produto id from a /produtos/{id} path.
// Expecting path: /produtos/{id}
func (h *ProdutoHandler) produtoID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	path := r.URL.Path
	if len(path) <= len("/produtos/") {
		writeError(w, http.StatusBadRequest, "produto ID is required", h.logger)
		return 0, false
	}
	idStr := path[len("/produtos/"):]

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid produto ID", h.logger)
		return 0, false
	}

	return id, true
}
