// internal/api/router.go
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"commentbox/internal/api/handler"
	"commentbox/internal/api/types"
)

// Handlers bundles the endpoint handlers the router mounts.
type Handlers struct {
	Comment *handler.CommentHandler
	User    *handler.UserHandler
	Test    *handler.TestHandler
	Site    *handler.SiteHandler
}

// NewRouter sets up and returns the HTTP router. When storeAvailable is
// false the unmatched-route position answers 503 "Database down" instead of
// the usual 404, mirroring a catch-all registered after the API routes;
// registered routes stay mounted and fail per request.
func NewRouter(h Handlers, logger *slog.Logger, storeAvailable bool) http.Handler {
	r := chi.NewRouter()

	// The widget embeds on arbitrary third-party sites, so CORS is open;
	// authorization comes from the origin header itself, not from blocking
	// cross-origin calls.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:         int((12 * time.Hour).Seconds()),
	}))

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(instrument)
	r.Use(handler.WithRequestContext)

	// Health check and metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Embed demo + widget assets
	r.Get("/", handler.Define(h.Site.Home))
	r.Get("/embed/preview", handler.Define(h.Site.Preview))
	r.Get("/commentbox.js", h.Site.Script)

	// Comment API
	r.Route("/api/comment", func(r chi.Router) {
		r.Get("/", handler.Define(h.Comment.List))
		r.Post("/", handler.Define(h.Comment.Create))
	})

	// User API
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", handler.Define(h.User.Register))
	})

	// Diagnostics
	r.Route("/api/test", func(r chi.Router) {
		r.Use(handler.DefineMiddleware(h.Test.LogMiddleware))
		r.Get("/", handler.Define(h.Test.Diagnostics))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if !storeAvailable {
			body, _ := json.Marshal(types.Envelope{
				Error:   true,
				Message: "Database down",
			})
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write(body)
			return
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("NOT FOUND"))
	})

	return r
}

// requestLogger logs one line per request through the structured logger.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Info("Request handled",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start).String(),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
