// Package web hosts the browser-facing HTTP service.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Thijsn04/QuestLog/internal/ai"
	"github.com/Thijsn04/QuestLog/internal/platform/timeouts"
	"github.com/Thijsn04/QuestLog/internal/storage"
	module "github.com/Thijsn04/QuestLog/internal/web/module"
	"github.com/Thijsn04/QuestLog/internal/web/modules"
	"github.com/Thijsn04/QuestLog/internal/web/platform/httpx"
	"github.com/Thijsn04/QuestLog/internal/web/platform/observability"
	webstatic "github.com/Thijsn04/QuestLog/internal/web/static"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr string
	Store    storage.Store
	AI       ai.Collaborator
	Now      func() time.Time
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Store == nil {
		return nil, errors.New("store is required")
	}
	if cfg.AI == nil {
		return nil, errors.New("ai collaborator is required")
	}
	deps := module.Dependencies{
		Store: cfg.Store,
		AI:    cfg.AI,
		Now:   cfg.Now,
	}

	rootMux := http.NewServeMux()
	for _, feature := range modules.DefaultModules() {
		if feature == nil {
			return nil, errors.New("module is nil")
		}
		if err := feature.Register(rootMux, deps); err != nil {
			return nil, fmt.Errorf("register module %q: %w", feature.ID(), err)
		}
	}
	rootMux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webstatic.FS))))
	rootMux.HandleFunc("GET /up", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(log.Default()),
	), nil
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
