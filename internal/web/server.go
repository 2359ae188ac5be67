// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stackboard Contributors

package web

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/samber/oops"

	"github.com/stackboard/stackboard/internal/auth"
	"github.com/stackboard/stackboard/internal/board"
	"github.com/stackboard/stackboard/internal/observability"
)

// handler bundles the services the routes dispatch into.
type handler struct {
	auth    *auth.Service
	boards  *board.Service
	metrics *observability.Metrics
}

// Config holds dependencies for the API server.
type Config struct {
	// Addr is the listen address in "host:port" form.
	Addr string

	// Auth handles registration, login, and token resolution.
	Auth *auth.Service

	// Boards handles all board, list, and card operations.
	Boards *board.Service

	// Metrics receives request and auth-failure counts.
	Metrics *observability.Metrics
}

// Server is the public HTTP API.
type Server struct {
	addr       string
	echo       *echo.Echo
	listener   net.Listener
	httpServer *http.Server
	running    atomic.Bool
}

// NewServer creates the API server and registers all routes.
func NewServer(cfg Config) *Server {
	h := &handler{
		auth:    cfg.Auth,
		boards:  cfg.Boards,
		metrics: cfg.Metrics,
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger())

	e.POST("/auth/register", h.register)
	e.POST("/auth/login", h.login)

	g := e.Group("", h.requireAuth)

	g.GET("/users/:id", h.getUser)
	g.GET("/users/by-username/:username", h.getUserByUsername)
	g.PUT("/users/:id", h.updateUser)
	g.DELETE("/users/:id", h.deleteUser)

	g.POST("/boards", h.createBoard)
	g.GET("/boards/owner/:id", h.listBoards)
	g.GET("/boards/:id", h.getBoard)
	g.PUT("/boards/:id", h.updateBoard)
	g.DELETE("/boards/:id", h.deleteBoard)

	g.POST("/lists", h.createList)
	g.GET("/lists/board/:id", h.listsByBoard)
	g.GET("/lists/:id", h.getList)
	g.PUT("/lists/:id", h.updateList)
	g.DELETE("/lists/:id", h.deleteList)

	g.POST("/cards", h.createCard)
	g.GET("/cards/list/:id", h.cardsByList)
	g.GET("/cards/:id", h.getCard)
	g.PUT("/cards/:id", h.updateCard)
	g.DELETE("/cards/:id", h.deleteCard)

	return &Server{
		addr: cfg.Addr,
		echo: e,
	}
}

// Handler exposes the routing tree, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start begins serving the API. It returns an error channel that receives
// any error from the HTTP server after startup; the channel is closed on
// graceful shutdown. Callers should monitor it to detect server failures.
func (s *Server) Start() (<-chan error, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, oops.Errorf("api server already running")
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		s.running.Store(false)
		return nil, oops.With("addr", s.addr).Wrap(err)
	}
	s.listener = listener

	httpSrv := &http.Server{
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.httpServer = httpSrv

	errCh := make(chan error, 1)

	go func() {
		defer close(errCh)
		if serveErr := httpSrv.Serve(listener); serveErr != nil && serveErr != http.ErrServerClosed {
			slog.Error("api server error", "error", serveErr)
			errCh <- serveErr
		}
	}()

	slog.Info("api server started", "addr", listener.Addr().String())
	return errCh, nil
}

// Stop gracefully shuts down the API server, letting in-flight requests
// finish within the context deadline.
func (s *Server) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.running.Store(true)
			return oops.With("operation", "shutdown_api_server").Wrap(err)
		}
	}

	slog.Info("api server stopped")
	return nil
}

// Addr returns the address the server is listening on, or empty if not
// running.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return ""
}

// requestLogger logs one line per request through the default slog logger.
func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			slog.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			)
			return nil
		},
	})
}
