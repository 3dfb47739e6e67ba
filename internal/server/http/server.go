// Package http exposes the storefront API over HTTP: item inventory
// CRUD/search, user registration, and the password-for-token login exchange.
// Protected routes require a bearer token issued by POST /token.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"storefront/internal/logging"
	"storefront/internal/server/config"
	"storefront/internal/server/models"
	"storefront/internal/server/services"
)

// UserService is the account surface the handlers depend on.
type UserService interface {
	Register(ctx context.Context, username, email string, fullName *string, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// ItemService is the inventory surface the handlers depend on.
type ItemService interface {
	List(ctx context.Context, skip, limit int) ([]*models.Item, error)
	Get(ctx context.Context, id int64) (*models.Item, error)
	Create(ctx context.Context, fields services.NewItem, ownerID int64) (*models.Item, error)
	Update(ctx context.Context, id, ownerID int64, patch services.ItemPatch) (*models.Item, error)
	Delete(ctx context.Context, id, ownerID int64) (string, error)
	Search(ctx context.Context, f services.ItemFilter) ([]*models.Item, error)
	ListOwned(ctx context.Context, ownerID int64) ([]*models.Item, error)
}

// Server hosts the gin engine and its dependencies.
type Server struct {
	address   string
	users     UserService
	items     ItemService
	logger    logging.Logger
	jwtSecret []byte
	engine    *gin.Engine
}

// NewServer wires the routes and middleware onto a fresh gin engine.
func NewServer(cfg *config.Config, l logging.Logger, us UserService, is ItemService) *Server {
	s := &Server{
		address:   cfg.EndpointAddr,
		users:     us,
		items:     is,
		logger:    l.With("module", "http_server"),
		jwtSecret: []byte(cfg.SecretKey),
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(s.requestIDMiddleware())
	engine.Use(s.loggingMiddleware())

	authRequired := s.authMiddleware()

	engine.GET("/", s.root)
	engine.GET("/hello/:name", s.hello)

	engine.GET("/items/", s.listItems)
	engine.POST("/items/", authRequired, s.createItem)
	engine.GET("/items/search/", s.searchItems)
	engine.GET("/items/:id", s.getItem)
	engine.PUT("/items/:id", authRequired, s.updateItem)
	engine.DELETE("/items/:id", authRequired, s.deleteItem)

	engine.POST("/users/", s.register)
	engine.POST("/token", s.login)
	engine.GET("/users/me/", authRequired, s.whoami)
	engine.GET("/users/me/items/", authRequired, s.listOwnItems)
	engine.POST("/users/me/items/", authRequired, s.createItem)

	s.engine = engine
	return s
}

// Handler returns the root http.Handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.engine,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
