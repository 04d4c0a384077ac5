package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/fragbase/fragbase"
	apimiddleware "github.com/fragbase/fragbase/infrastructure/api/middleware"
	v1 "github.com/fragbase/fragbase/infrastructure/api/v1"
)

// APIServer provides an HTTP API backed by a fragbase Client.
type APIServer struct {
	client *fragbase.Client
	server *Server
	router chi.Router
}

// NewAPIServer creates a new APIServer wired to the given fragbase Client.
func NewAPIServer(client *fragbase.Client) *APIServer {
	return &APIServer{client: client}
}

// mountRoutes wires up all v1 API routes on the given router.
func (a *APIServer) mountRoutes(router chi.Router) {
	logger := a.client.Logger()

	router.Use(apimiddleware.Logging(logger))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	fragmentsRouter := v1.NewFragmentsRouter(a.client)
	tagsRouter := v1.NewTagsRouter(a.client)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(chimiddleware.Timeout(60 * time.Second))
		r.Mount("/fragments", fragmentsRouter.Routes())
		r.Mount("/tags", tagsRouter.Routes())
	})

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		apimiddleware.WriteJSON(w, http.StatusOK, map[string]string{
			"name": "fragbase",
			"api":  "/api/v1",
		})
	})

	healthHandler := func(w http.ResponseWriter, r *http.Request) {
		apimiddleware.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
	router.Get("/health", healthHandler)
	router.Get("/healthz", healthHandler)
}

// ListenAndServe starts the HTTP server on the given address.
func (a *APIServer) ListenAndServe(addr string) error {
	server := NewServer(addr, a.client.Logger())
	a.server = &server

	a.mountRoutes(server.Router())
	return server.Start()
}

// Shutdown gracefully shuts down the server.
func (a *APIServer) Shutdown(ctx context.Context) error {
	if a.server == nil {
		return nil
	}
	return a.server.Shutdown(ctx)
}

// Handler returns the routes as an http.Handler for use with custom servers.
func (a *APIServer) Handler() http.Handler {
	if a.router == nil {
		a.router = chi.NewRouter()
		a.mountRoutes(a.router)
	}
	return a.router
}
