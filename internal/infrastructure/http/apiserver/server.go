// Package apiserver provides the JSON API HTTP server
package apiserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/pantryloom/v1/internal/infrastructure/config"
	"github.com/pantryloom/v1/internal/infrastructure/http/handlers"
	"github.com/pantryloom/v1/internal/infrastructure/http/middleware"
	"github.com/pantryloom/v1/internal/ports/inbound"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// APIServer represents the JSON API HTTP server
type APIServer struct {
	config            *config.Config
	logger            *zap.Logger
	server            *http.Server
	router            *chi.Mux
	catalogService    inbound.CatalogService
	pantryService     inbound.PantryService
	recipeService     inbound.RecipeService
	generationService inbound.GenerationService
}

// NewAPIServer creates a new API server instance
func NewAPIServer(
	cfg *config.Config,
	log *zap.Logger,
	catalogService inbound.CatalogService,
	pantryService inbound.PantryService,
	recipeService inbound.RecipeService,
	generationService inbound.GenerationService,
) *APIServer {
	server := &APIServer{
		config:            cfg,
		logger:            log,
		catalogService:    catalogService,
		pantryService:     pantryService,
		recipeService:     recipeService,
		generationService: generationService,
	}

	server.router = server.setupRoutes()
	server.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      server.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return server
}

// setupRoutes configures the JSON API routes
func (s *APIServer) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	r.Use(chimiddleware.Timeout(s.config.Server.RequestTimeout))
	r.Use(middleware.JSONOnly())

	if s.config.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		r.Use(middleware.NewMetrics(registry).Handler())
		r.Method(http.MethodGet, s.config.Metrics.Path, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	// Health check endpoint
	r.Get("/health", s.handleHealthCheck)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		s.setupAPIV1Routes(r)
	})

	return r
}

// setupAPIV1Routes configures API v1 endpoints
func (s *APIServer) setupAPIV1Routes(r chi.Router) {
	catalogH := handlers.NewCatalogHandlers(s.catalogService, s.logger)
	pantryH := handlers.NewPantryHandlers(s.pantryService, s.logger)
	recipeH := handlers.NewRecipeHandlers(s.recipeService, s.generationService, s.logger)

	// Unit catalog routes
	r.Route("/units", func(r chi.Router) {
		r.Get("/", catalogH.ListUnits)
		r.Post("/", catalogH.AddUnit)
		r.Delete("/{name}", catalogH.RemoveUnit)
	})

	// Ingredient catalog routes
	r.Route("/ingredients", func(r chi.Router) {
		r.Get("/", catalogH.ListIngredients)
		r.Post("/", catalogH.AddIngredient)
		r.Get("/{name}", catalogH.GetIngredient)
		r.Put("/{name}", catalogH.UpdateIngredient)
		r.Delete("/{name}", catalogH.RemoveIngredient)
	})

	// Pantry ledger routes
	r.Route("/pantry", func(r chi.Router) {
		r.Get("/", pantryH.ListEntries)
		r.Post("/", pantryH.AddEntry)
		r.Get("/expiring", pantryH.GetExpiring)
		r.Get("/expired", pantryH.GetExpired)
		r.Get("/summary", pantryH.GetSummary)
		r.Delete("/{id}", pantryH.RemoveEntry)
	})

	// Recipe routes
	r.Route("/recipes", func(r chi.Router) {
		r.Get("/", recipeH.ListRecipes)
		r.Post("/", recipeH.AddRecipe)
		r.Get("/names", recipeH.ListRecipeNames)
		r.Post("/generate", recipeH.GenerateRecipe)
		r.Get("/{name}", recipeH.GetRecipe)
		r.Delete("/{name}", recipeH.RemoveRecipe)
	})
}

// Start starts the API HTTP server
func (s *APIServer) Start() error {
	s.logger.Info("Starting JSON API server",
		zap.String("address", s.server.Addr),
	)

	return s.server.ListenAndServe()
}

// Server returns the underlying HTTP server instance
func (s *APIServer) Server() *http.Server {
	return s.server
}

// Shutdown gracefully shuts down the API server
func (s *APIServer) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server...")
	return s.server.Shutdown(ctx)
}

// handleHealthCheck provides health check endpoint
func (s *APIServer) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	fmt.Fprintf(w, `{"status":"healthy","service":"%s","version":"%s","timestamp":%d}`,
		s.config.App.Name, s.config.App.Version, time.Now().Unix())
}
