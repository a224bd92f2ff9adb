// Package httpapi serves the portfolio content as JSON and exposes the
// password-gated admin API used to edit it.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/termfolio/internal/auth"
	"github.com/vovakirdan/termfolio/internal/content"
	"github.com/vovakirdan/termfolio/internal/storage"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// SecureCookies marks the session cookie as HTTPS-only.
	SecureCookies bool

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address:         ":8080",
		ShutdownTimeout: 10 * time.Second,
	}
}

// Server is the HTTP API server.
type Server struct {
	config Config
	store  *storage.Store
	auth   *auth.Authenticator
	logger *log.Logger
	engine *gin.Engine
	http   *http.Server
}

// New creates a server and registers all routes.
func New(cfg Config, store *storage.Store, authn *auth.Authenticator, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		config: cfg,
		store:  store,
		auth:   authn,
		logger: logger,
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(logger))
	s.engine = engine
	s.routes()

	s.http = &http.Server{
		Addr:              cfg.Address,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.config.Address
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting HTTP server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("httpapi: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	timeout := s.config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

func (s *Server) routes() {
	api := s.engine.Group("/api")
	api.GET("/health", s.health)
	api.GET("/portfolio", s.getPortfolio)
	api.GET("/scores/:game", s.getScores)
	api.POST("/contact", s.postContact)

	admin := api.Group("/admin")
	admin.POST("/login", s.login)
	admin.POST("/logout", s.logout)

	guarded := admin.Group("", s.requireAdmin())
	guarded.GET("/session", s.session)
	guarded.GET("/profile", s.getProfile)
	guarded.PUT("/profile", s.putProfile)

	registerResource(guarded, "/experience", resource[content.Experience]{
		get:    s.store.GetExperience,
		create: s.store.CreateExperience,
		update: s.store.UpdateExperience,
		remove: s.store.DeleteExperience,
		setID:  func(e *content.Experience, id int64) { e.ID = id },
	}, s)
	registerResource(guarded, "/education", resource[content.Education]{
		get:    s.store.GetEducation,
		create: s.store.CreateEducation,
		update: s.store.UpdateEducation,
		remove: s.store.DeleteEducation,
		setID:  func(e *content.Education, id int64) { e.ID = id },
	}, s)
	registerResource(guarded, "/skills", resource[content.Skill]{
		get:    s.store.GetSkill,
		create: s.store.CreateSkill,
		update: s.store.UpdateSkill,
		remove: s.store.DeleteSkill,
		setID:  func(sk *content.Skill, id int64) { sk.ID = id },
	}, s)
	registerResource(guarded, "/projects", resource[content.Project]{
		get:    s.store.GetProject,
		create: s.store.CreateProject,
		update: s.store.UpdateProject,
		remove: s.store.DeleteProject,
		setID:  func(p *content.Project, id int64) { p.ID = id },
	}, s)

	guarded.GET("/messages", s.listMessages)
	guarded.DELETE("/messages/:id", s.deleteMessage)
}
