package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"produtos-api/internal/model"
	"produtos-api/internal/sqlerr"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent; nothing useful left to do.
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: message})
}

// writeValidationError writes a 400 response enumerating each failing field.
func writeValidationError(w http.ResponseWriter, fieldErrors []model.FieldError, logger zerolog.Logger) {
	logger.Warn().Int("fields", len(fieldErrors)).Msg("request validation failed")
	writeJSON(w, http.StatusBadRequest, model.ErrorResponse{
		Error:  "validation failed",
		Errors: fieldErrors,
	})
}

// writeStoreError is the single mapping from store failures to HTTP
// responses. Every handler funnels repository errors through here.
func writeStoreError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	switch {
	case errors.Is(err, model.ErrProdutoNotFound):
		writeError(w, http.StatusNotFound, "produto not found", logger)
		return
	case errors.Is(err, model.ErrNoProdutos):
		writeError(w, http.StatusNotFound, "no produtos found", logger)
		return
	}

	switch sqlerr.KindOf(err) {
	case sqlerr.KindUniqueViolation:
		writeError(w, http.StatusBadRequest, "produto with this descricao already exists", logger)
	case sqlerr.KindForeignKeyViolation:
		writeError(w, http.StatusBadRequest, "produto cannot be deleted because it is referenced by other records", logger)
	case sqlerr.KindConnectionRefused:
		writeError(w, http.StatusInternalServerError, "database connection refused", logger)
	default:
		logger.Error().Err(err).Msg("unclassified store error")
		writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{
			Error:   "internal server error",
			Details: err.Error(),
		})
	}
}
