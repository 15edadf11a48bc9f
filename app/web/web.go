// Package web implements the JSON API server for the pitwall application
package web

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/didip/tollbooth/v8"
	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/pitwall-app/pitwall/app/preset"
	"github.com/pitwall-app/pitwall/app/setting"
	"github.com/pitwall-app/pitwall/app/setting/request"
	"github.com/pitwall-app/pitwall/app/stats"
	"github.com/pitwall-app/pitwall/app/telemetry"
)

//go:generate moq -out mocks/engine.go -pkg mocks -skip-ensure -fmt goimports . Engine
//go:generate moq -out mocks/settings.go -pkg mocks -skip-ensure -fmt goimports . Settings
//go:generate moq -out mocks/presets.go -pkg mocks -skip-ensure -fmt goimports . Presets
//go:generate moq -out mocks/telemetry.go -pkg mocks -skip-ensure -fmt goimports . Telemetry
//go:generate moq -out mocks/stats.go -pkg mocks -skip-ensure -fmt goimports . Stats

// Engine exposes the state of the save queue and lets handlers drain it
type Engine interface {
	Status() setting.Status
	Wait(ctx context.Context) error
}

// Settings provides access to the categories of the active preset
type Settings interface {
	ActivePreset() string
	Get(cat setting.Category) (map[string]any, error)
	Update(cat setting.Category, patch map[string]any) error
	SaveAll(debounce time.Duration)
	Load(preset string) error
	PrimaryPreset(sim string) string
	SetPrimaryPreset(sim, name string) error
}

// Presets lists and manipulates the preset files on disk
type Presets interface {
	List() []preset.Info
	Exists(name string) bool
	Create(name string) error
	Duplicate(ctx context.Context, src, dst string) error
	Rename(ctx context.Context, src, dst string) error
	Delete(ctx context.Context, name string) error
}

// Telemetry provides the latest snapshot collected from the simulator
type Telemetry interface {
	Get() telemetry.Snapshot
}

// Stats reads accumulated driver records and save history
type Stats interface {
	ListDriverStats(ctx context.Context, track string) ([]stats.DriverRecord, error)
	ListTracks(ctx context.Context) ([]string, error)
	ListSaveEvents(ctx context.Context, limit int) ([]request.SaveEvent, error)
}

// session represents an active user session
type session struct {
	token     string
	createdAt time.Time
}

// Server represents the web server
type Server struct {
	engine         Engine
	settings       Settings
	presets        Presets
	telemetry      Telemetry // optional, nil disables the telemetry endpoints
	stats          Stats     // optional, nil disables the stats endpoints
	baseURL        string    // base URL path for reverse proxy (e.g., /pitwall), empty for root
	version        string
	passwordHash   string                      // bcrypt hash for basic auth
	loginTTL       time.Duration               // session TTL
	csrfProtection *http.CrossOriginProtection // csrf protection for mutating endpoints
	sessions       map[string]session          // active user sessions
	sessionsMu     sync.Mutex                  // protects sessions map
}

// Config holds server configuration
type Config struct {
	Engine       Engine
	Settings     Settings
	Presets      Presets
	Telemetry    Telemetry // optional, nil disables the telemetry endpoints
	Stats        Stats     // optional, nil disables the stats endpoints
	BaseURL      string    // base URL path for reverse proxy (e.g., /pitwall), empty for root
	Version      string
	PasswordHash string        // bcrypt hash for basic auth (empty to disable)
	LoginTTL     time.Duration // session TTL, defaults to 24h if not set
}

// New creates a new web server
func New(cfg Config) (*Server, error) {
	// validate required dependencies
	if cfg.Engine == nil {
		return nil, fmt.Errorf("web server initialization failed: Engine is required")
	}
	if cfg.Settings == nil {
		return nil, fmt.Errorf("web server initialization failed: Settings is required")
	}
	if cfg.Presets == nil {
		return nil, fmt.Errorf("web server initialization failed: Presets is required")
	}

	// set default LoginTTL if not specified
	loginTTL := cfg.LoginTTL
	if loginTTL == 0 {
		loginTTL = 24 * time.Hour
	}

	s := &Server{
		engine:         cfg.Engine,
		settings:       cfg.Settings,
		presets:        cfg.Presets,
		telemetry:      cfg.Telemetry,
		stats:          cfg.Stats,
		baseURL:        cfg.BaseURL,
		version:        cfg.Version,
		passwordHash:   cfg.PasswordHash,
		loginTTL:       loginTTL,
		csrfProtection: http.NewCrossOriginProtection(),
		sessions:       make(map[string]session),
	}
	return s, nil
}

// Run starts the web server
func (s *Server) Run(ctx context.Context, address string) error {
	server := &http.Server{
		Addr:              address,
		Handler:           s.handler(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] failed to shutdown server: %v", err)
		}
	}()

	log.Printf("[INFO] starting web server on %s", address)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("web server failed: %w", err)
	}
	return nil
}

// handler returns the http.Handler with base URL wrapping applied
func (s *Server) handler() http.Handler {
	routes := s.routes()
	if s.baseURL == "" {
		return routes
	}

	// create a mux that handles the redirect and then the stripped routes
	mux := http.NewServeMux()
	// handle base URL without trailing slash - redirect to with trailing slash
	mux.HandleFunc(s.baseURL, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, s.baseURL+"/", http.StatusMovedPermanently)
	})
	// handle all other routes under base URL with StripPrefix
	mux.Handle(s.baseURL+"/", http.StripPrefix(s.baseURL, routes))
	return mux
}

// routes returns the http.Handler with all routes configured
func (s *Server) routes() http.Handler {
	router := routegroup.New(http.NewServeMux())

	// global middleware - applied to all routes
	router.Use(
		rest.RealIP,
		rest.Recoverer(log.Default()),
		rest.Throttle(1000),
		rest.AppInfo("pitwall", "pitwall-app", s.version),
		rest.Ping,
		rest.Trace,
		rest.SizeLimit(1024*1024), // 1MB max request size, style payloads are large
		logger.New(logger.Log(log.Default()), logger.Prefix("[DEBUG]")).Handler,
	)

	// add auth middleware if password hash is configured
	// must be done before any routes are defined
	if s.passwordHash != "" {
		log.Printf("[INFO] authentication enabled for api")
		router.Use(s.authMiddleware)
		router.With(s.csrfProtection.Handler, tollbooth.HTTPMiddleware(loginLimiter)).HandleFunc("POST /login", s.handleLogin)
		router.HandleFunc("GET /logout", s.handleLogout)
	}

	router.Mount("/api/v1").Route(func(api *routegroup.Bundle) {
		api.Use(rest.NoCache)             // prevent caching of API responses
		api.Use(s.csrfProtection.Handler) // CSRF protection for mutating endpoints

		api.HandleFunc("GET /status", s.handleStatus)
		api.HandleFunc("GET /telemetry", s.handleTelemetry)
		api.HandleFunc("GET /settings/{category}", s.handleGetSettings)
		api.HandleFunc("PATCH /settings/{category}", s.handleUpdateSettings)
		api.HandleFunc("POST /save", s.handleSave)
		api.HandleFunc("GET /presets", s.handleListPresets)
		api.HandleFunc("POST /presets", s.handleCreatePreset)
		api.HandleFunc("GET /presets/primary", s.handleGetPrimaryPreset)
		api.HandleFunc("POST /presets/{name}/activate", s.handleActivatePreset)
		api.HandleFunc("POST /presets/{name}/duplicate", s.handleDuplicatePreset)
		api.HandleFunc("POST /presets/{name}/rename", s.handleRenamePreset)
		api.HandleFunc("POST /presets/{name}/primary", s.handleSetPrimaryPreset)
		api.HandleFunc("DELETE /presets/{name}", s.handleDeletePreset)
		api.HandleFunc("GET /stats/drivers", s.handleDriverStats)
		api.HandleFunc("GET /stats/tracks", s.handleTracks)
		api.HandleFunc("GET /stats/saves", s.handleSaveHistory)
	})

	return router
}
