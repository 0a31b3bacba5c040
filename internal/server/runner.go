// Package server runs the daemon's long-lived components.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/cpexport/internal/export"
)

const (
	defaultShutdownTimeout   = 10 * time.Second
	defaultReadHeaderTimeout = 10 * time.Second
)

// Config for the runner.
type Config struct {
	Addr            string
	RefreshInterval time.Duration // 0 = discover custom types at start only
	ShutdownTimeout time.Duration
}

// Refresher rediscovers custom content types.
type Refresher interface {
	Refresh(ctx context.Context, src export.TypeSource) (int, error)
}

// Runner serves the API and keeps the type registry current.
type Runner struct {
	config   Config
	handler  http.Handler
	registry Refresher
	source   export.TypeSource
	logger   *slog.Logger
	ready    chan struct{}
	addr     net.Addr
}

// NewRunner creates a new runner. registry and source may be nil, in which
// case no type discovery happens.
func NewRunner(cfg Config, handler http.Handler, registry Refresher, source export.TypeSource, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	return &Runner{
		config:   cfg,
		handler:  handler,
		registry: registry,
		source:   source,
		logger:   logger,
		ready:    make(chan struct{}),
	}
}

// Ready is closed once the listener is bound.
func (r *Runner) Ready() <-chan struct{} {
	return r.ready
}

// Addr returns the bound listen address. Valid after Ready is closed.
func (r *Runner) Addr() net.Addr {
	return r.addr
}

// Run starts all components.
// It blocks until the context is canceled or a component fails. A clean
// shutdown returns nil.
func (r *Runner) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", r.config.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", r.config.Addr, err)
	}
	r.addr = ln.Addr()
	close(r.ready)

	srv := &http.Server{
		Handler:           r.handler,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r.logger.Info("http server listening", "addr", r.addr.String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), r.config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		r.logger.Info("http server stopped")
		return nil
	})

	if r.registry != nil && r.source != nil {
		g.Go(func() error {
			r.refreshTypes(gctx)
			if r.config.RefreshInterval <= 0 {
				return nil
			}

			ticker := time.NewTicker(r.config.RefreshInterval)
			defer ticker.Stop()
			for {
				select {
				case <-gctx.Done():
					return nil
				case <-ticker.C:
					r.refreshTypes(gctx)
				}
			}
		})
	}

	return g.Wait()
}

// refreshTypes logs discovery failures and carries on.
func (r *Runner) refreshTypes(ctx context.Context) {
	n, err := r.registry.Refresh(ctx, r.source)
	if err != nil {
		if ctx.Err() == nil {
			r.logger.Warn("custom type discovery failed", "error", err)
		}
		return
	}
	r.logger.Debug("custom types discovered", "count", n)
}
