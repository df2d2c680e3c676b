package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"produtos-api/internal/handler"
	"produtos-api/internal/model"
	"produtos-api/internal/repository"
	"produtos-api/internal/router"
	"produtos-api/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestServer(t *testing.T, testDB *TestDB) http.Handler {
	t.Helper()

	logger := zerolog.Nop()

	produtoRepo := repository.NewProdutoRepository(testDB.Pool, logger)
	produtoService := service.NewProdutoService(produtoRepo, logger)
	produtoHandler := handler.NewProdutoHandler(produtoService, logger)

	// Rate limiting disabled so tests can hammer the API freely.
	return router.New(produtoHandler, nil, 10*time.Second, logger)
}

func TestProdutoAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	t.Run("GET /produtos returns seeded produtos", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProdutos(t, testDB.Pool)

		req := httptest.NewRequest(http.MethodGet, "/produtos", nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var produtos []model.Produto
		require.NoError(t, json.NewDecoder(w.Body).Decode(&produtos))
		assert.Len(t, produtos, 5)
	})

	t.Run("GET /produtos respects limit and offset", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		ids := SeedProdutos(t, testDB.Pool)

		req := httptest.NewRequest(http.MethodGet, "/produtos?page=2&limit=2", nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var produtos []model.Produto
		require.NoError(t, json.NewDecoder(w.Body).Decode(&produtos))
		require.Len(t, produtos, 2)
		// Page 2 with limit 2 skips the first two seeded rows.
		assert.Equal(t, ids[2], produtos[0].ID)
		assert.Equal(t, ids[3], produtos[1].ID)
	})

	t.Run("GET /produtos on empty table returns 404", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		req := httptest.NewRequest(http.MethodGet, "/produtos", nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("GET /produtos rejects non-positive pagination", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProdutos(t, testDB.Pool)

		for _, query := range []string{"?page=0", "?page=-1", "?limit=0", "?limit=-5"} {
			req := httptest.NewRequest(http.MethodGet, "/produtos"+query, nil)
			w := httptest.NewRecorder()

			server.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code, "query: %s", query)
		}
	})

	t.Run("GET /produtos past the last page returns 404", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProdutos(t, testDB.Pool)

		req := httptest.NewRequest(http.MethodGet, "/produtos?page=99&limit=10", nil)
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("full CRUD lifecycle", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		// Create
		body := bytes.NewBufferString(`{"descricao":"Teste","rating":3}`)
		req := httptest.NewRequest(http.MethodPost, "/produtos", body)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var created model.CreateProdutoResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
		assert.NotEmpty(t, created.Message)
		assert.NotZero(t, created.Produto.ID)
		assert.Equal(t, "Teste", created.Produto.Descricao)
		assert.Equal(t, 3, created.Produto.Rating)

		id := created.Produto.ID

		// Read back
		req = httptest.NewRequest(http.MethodGet, "/produtos?page=1&limit=10", nil)
		w = httptest.NewRecorder()
		server.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var produtos []model.Produto
		require.NoError(t, json.NewDecoder(w.Body).Decode(&produtos))
		require.Len(t, produtos, 1)
		assert.Equal(t, created.Produto, produtos[0])

		// Update
		body = bytes.NewBufferString(`{"descricao":"Teste2","rating":5}`)
		req = httptest.NewRequest(http.MethodPut, fmt.Sprintf("/produtos/%d", id), body)
		w = httptest.NewRecorder()
		server.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var updated model.Produto
		require.NoError(t, json.NewDecoder(w.Body).Decode(&updated))
		assert.Equal(t, id, updated.ID)
		assert.Equal(t, "Teste2", updated.Descricao)
		assert.Equal(t, 5, updated.Rating)

		// Delete
		req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/produtos/%d", id), nil)
		w = httptest.NewRecorder()
		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.Bytes())

		// Gone
		req = httptest.NewRequest(http.MethodGet, "/produtos", nil)
		w = httptest.NewRecorder()
		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("POST /produtos rejects invalid payloads without touching the store", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		for _, payload := range []string{
			`{"descricao":"","rating":3}`,
			`{"descricao":"Teste","rating":0}`,
			`{"descricao":"Teste","rating":6}`,
		} {
			req := httptest.NewRequest(http.MethodPost, "/produtos", bytes.NewBufferString(payload))
			w := httptest.NewRecorder()
			server.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code, "payload: %s", payload)

			var resp model.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.NotEmpty(t, resp.Errors)
		}

		// No row was inserted by any of the rejected payloads.
		var count int
		require.NoError(t, testDB.Pool.QueryRow(t.Context(),
			"SELECT COUNT(*) FROM produtos").Scan(&count))
		assert.Zero(t, count)
	})

	t.Run("POST /produtos rejects duplicate descricao", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		body := `{"descricao":"Unico","rating":3}`
		req := httptest.NewRequest(http.MethodPost, "/produtos", bytes.NewBufferString(body))
		server.ServeHTTP(httptest.NewRecorder(), req)

		req = httptest.NewRequest(http.MethodPost, "/produtos", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp model.ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Contains(t, resp.Error, "already exists")
	})

	t.Run("PUT /produtos rejects colliding descricao and keeps the row intact", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		ids := SeedProdutos(t, testDB.Pool)

		// Rename Produto B to Produto A, which already exists.
		body := bytes.NewBufferString(`{"descricao":"Produto A","rating":2}`)
		req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/produtos/%d", ids[1]), body)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var descricao string
		require.NoError(t, testDB.Pool.QueryRow(t.Context(),
			"SELECT descricao FROM produtos WHERE id = $1", ids[1]).Scan(&descricao))
		assert.Equal(t, "Produto B", descricao)
	})

	t.Run("PUT /produtos/{id} returns 404 for missing row", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		body := bytes.NewBufferString(`{"descricao":"Teste","rating":3}`)
		req := httptest.NewRequest(http.MethodPut, "/produtos/999999", body)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("DELETE /produtos/{id} returns 404 for missing row", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		req := httptest.NewRequest(http.MethodDelete, "/produtos/999999", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("DELETE /produtos/{id} rejects referenced produto and keeps it", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		ids := SeedProdutos(t, testDB.Pool)
		ReferenceProduto(t, testDB.Pool, ids[0])

		req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/produtos/%d", ids[0]), nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var count int
		require.NoError(t, testDB.Pool.QueryRow(t.Context(),
			"SELECT COUNT(*) FROM produtos WHERE id = $1", ids[0]).Scan(&count))
		assert.Equal(t, 1, count)
	})

	t.Run("GET / reports healthy", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var health model.HealthResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&health))
		assert.Equal(t, "healthy", health.Status)
	})
}
