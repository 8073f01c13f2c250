package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chiMid "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"lancelocker.dev/internal/config"
	"lancelocker.dev/internal/logging"
	"lancelocker.dev/internal/middleware"
	"lancelocker.dev/internal/services"
	"lancelocker.dev/internal/views"
)

const (
	staticMaxAge = "3600"
	assetsMaxAge = "604800"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, lockers *services.LockerService, logger *zap.Logger) (http.Handler, error) {
	renderer, err := views.NewRenderer(cfg.Templates.Dir, cfg.Dev)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(chiMid.RequestID)
	r.Use(chiMid.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery)
	r.Use(chiMid.Compress(5))
	r.Use(chiMid.Timeout(30 * time.Second))

	// Initialize handlers
	assets := services.AssetPaths{Dir: cfg.Assets.Dir, Prefix: cfg.Assets.Prefix}
	pageHandler := NewPageHandler(lockers, renderer, cfg.Site, assets)
	projectHandler := NewProjectHandler(lockers)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/profile", projectHandler.GetProfile)
		r.Get("/tags", projectHandler.ListTags)

		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Embedded stylesheet
	r.Handle("/static/*", http.StripPrefix("/static", middleware.AssetsWithCache(views.Static(), staticMaxAge)))

	// Models and images referenced by the locker
	if prefix := strings.TrimRight(cfg.Assets.Prefix, "/"); prefix != "" {
		r.Handle(prefix+"/*", http.StripPrefix(prefix, middleware.AssetsDir(cfg.Assets.Dir, assetsMaxAge)))
	}

	// Gallery and detail pages
	r.Get("/", pageHandler.Page)

	return r, nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.FromContext(r.Context()).Error("encode json response", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	respondJSON(w, r, status, map[string]string{"error": message})
}

// filterOptions reads the gallery filter state from the query string
func filterOptions(r *http.Request) services.FilterOptions {
	q := r.URL.Query()
	var tags []string
	for _, tag := range q["tag"] {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return services.FilterOptions{
		Tags:  tags,
		Query: q.Get("q"),
		Sort:  services.ParseSortKey(q.Get("sort")),
	}
}
