package router

import (
	"net/http"
	"time"

	"produtos-api/internal/handler"
	"produtos-api/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
// A nil limiter disables rate limiting.
func New(
	produtoHandler *handler.ProdutoHandler,
	limiter *middleware.RateLimiter,
	requestTimeout time.Duration,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health root. ServeMux routes every unmatched path here, so anything
	// other than "/" is a 404.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error": "not found"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy", "message": "produtos-api is running"}`))
	})

	// API documentation
	mux.HandleFunc("/openapi.json", handler.ServeOpenAPI)
	mux.HandleFunc("/docs", handler.ServeDocs)

	// Produto handler function
	produtoRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		// Collection routes: list and create
		if r.URL.Path == "/produtos" || r.URL.Path == "/produtos/" {
			switch r.Method {
			case http.MethodGet:
				produtoHandler.List(w, r)
			case http.MethodPost:
				produtoHandler.Create(w, r)
			default:
				methodNotAllowed(w)
			}
			return
		}

		// Item routes: update and delete by id
		switch r.Method {
		case http.MethodPut:
			produtoHandler.Update(w, r)
		case http.MethodDelete:
			produtoHandler.Delete(w, r)
		default:
			methodNotAllowed(w)
		}
	}

	// Register produto routes (both with and without trailing slash)
	mux.HandleFunc("/produtos", produtoRouteHandler)
	mux.HandleFunc("/produtos/", produtoRouteHandler)

	// Apply middleware, innermost first:
	// Recovery -> RequestID -> Logging -> SecurityHeaders -> CORS -> RateLimit -> Timeout
	var h http.Handler = mux
	h = middleware.Timeout(requestTimeout)(h)
	if limiter != nil {
		h = limiter.Middleware(h)
	}
	h = middleware.CORS(h)
	h = middleware.SecurityHeaders(h)
	h = middleware.Logging(logger)(h)
	h = middleware.RequestID(h)
	h = middleware.Recovery(logger)(h)

	return h
}

func methodNotAllowed(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusMethodNotAllowed)
	w.Write([]byte(`{"error": "method not allowed"}`))
}
