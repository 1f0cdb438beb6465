// Package handlers provides the HTTP server for the company and employee
// services, bridging the transport layer and business logic and
// translating between JSON payloads and domain models.
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Server wraps the chi router and the HTTP server that exposes it.
type Server struct {
	router       *chi.Mux
	httpServer   *http.Server
	logger       *zap.Logger
	httpEndpoint string
}

// NewServer constructs a Server listening on httpPort with the common
// middleware stack and the health endpoint installed.
func NewServer(httpPort int, logger *zap.Logger) *Server {
	logger = logger.Named("http_server")

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(requestLogger(logger))
	r.Use(recoverer(logger))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no route for %s %s", r.Method, r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, fmt.Sprintf("method %s not allowed on %s", r.Method, r.URL.Path))
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	endpoint := fmt.Sprintf(":%d", httpPort)
	return &Server{
		router: r,
		httpServer: &http.Server{
			Addr:              endpoint,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger:       logger,
		httpEndpoint: endpoint,
	}
}

// RegisterCompanyHandler mounts the /companies routes.
func (s *Server) RegisterCompanyHandler(h *CompanyHandler) {
	s.router.Route("/companies", h.Routes)
}

// RegisterEmployeeHandler mounts the /employees routes.
func (s *Server) RegisterEmployeeHandler(h *EmployeeHandler) {
	s.router.Route("/employees", h.Routes)
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves HTTP until Stop is called. It returns nil on a clean shutdown.
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", zap.String("endpoint", s.httpEndpoint))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP serve error: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() {
	s.logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	s.logger.Info("Server stopped")
}
