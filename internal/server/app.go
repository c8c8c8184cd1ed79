// Package server wires the relay together: registry, transfer service,
// HTTP boundary and the optional gRPC health endpoint. It handles OS
// signals and bounds graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/skicka/internal/logging"
	"github.com/dmitrijs2005/skicka/internal/server/config"
	"github.com/dmitrijs2005/skicka/internal/server/httpapi"
	"github.com/dmitrijs2005/skicka/internal/server/names"
	"github.com/dmitrijs2005/skicka/internal/server/registry"
	"github.com/dmitrijs2005/skicka/internal/server/transfer"

	gs "github.com/dmitrijs2005/skicka/internal/server/grpc"
)

const readHeaderTimeout = 10 * time.Second

// App owns the relay's servers for one process lifetime.
type App struct {
	config  *config.Config
	logger  logging.Logger
	service *transfer.Service
	http    *http.Server
	grpc    *gs.GRPCServer

	healthMu sync.Mutex
}

func NewApp(c *config.Config) (*App, error) {
	return newApp(c, logging.NewJSON(os.Stdout, slog.LevelInfo))
}

func newApp(c *config.Config, logger logging.Logger) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	reg := registry.New(c.MaxConnections, names.NewWords())
	svc := transfer.NewService(reg, transfer.Options{
		IntentTimeout:   c.IntentTimeout,
		ChunkTimeout:    c.ChunkTimeout,
		MaxTransferSize: uint64(c.MaxTransferSize),
	}, logger)

	api := httpapi.NewServer(svc, httpapi.Options{
		RemoteURL:        c.RemoteURL,
		Motto:            c.Motto,
		MaxRequestLength: c.MaxRequestLength,
		ChunkTimeout:     c.ChunkTimeout,
	}, logger)

	app := &App{
		config:  c,
		logger:  logger,
		service: svc,
		http: &http.Server{
			Addr:              c.ListenAddr,
			Handler:           api.Handler(),
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}

	if c.EndpointAddrGRPC != "" {
		app.grpc = gs.NewGRPCServer(c.EndpointAddrGRPC, logger, c.ShutdownTimeout)
		svc.OnChange(app.updateHealth)
	}

	return app, nil
}

// updateHealth reports NOT_SERVING while no further upload can be admitted.
func (app *App) updateHealth() {
	app.healthMu.Lock()
	defer app.healthMu.Unlock()
	app.grpc.SetAccepting(app.service.Pending() < app.service.Capacity())
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is canceled or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	lis, err := net.Listen("tcp", app.config.ListenAddr)
	if err != nil {
		return err
	}

	return app.serve(ctx, lis)
}

func (app *App) serve(ctx context.Context, lis net.Listener) error {
	app.logger.Info(ctx, "Starting app...",
		"intent_timeout", app.config.IntentTimeout.String(),
		"chunk_timeout", app.config.ChunkTimeout.String(),
		"max_transfer_size", humanize.Bytes(uint64(app.config.MaxTransferSize)),
		"max_connections", app.config.MaxConnections,
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return app.serveHTTP(gctx, lis)
	})

	if app.grpc != nil {
		g.Go(func() error {
			return app.grpc.Run(gctx)
		})
	}

	err := g.Wait()
	app.logger.Info(context.WithoutCancel(ctx), "App stopped")
	return err
}

func (app *App) serveHTTP(ctx context.Context, lis net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.http.Serve(lis)
	}()

	app.logger.Info(ctx, "Starting HTTP server", "address", lis.Addr().String())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "Stopping HTTP server...", "pending", app.service.Pending())

	sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), app.config.ShutdownTimeout)
	defer cancel()

	if err := app.http.Shutdown(sctx); err != nil {
		app.logger.Warn(ctx, "shutdown grace period elapsed, closing open transfers", "error", err)
		if err := app.http.Close(); err != nil {
			return err
		}
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
