// Package grpc serves the standard gRPC health protocol next to the HTTP
// relay so orchestrators can tell whether the relay accepts new uploads.
package grpc

import (
	"context"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dmitrijs2005/skicka/internal/logging"
)

// RelayService is the health service name reporting upload admission.
const RelayService = "skicka.Relay"

// GRPCServer serves the health service on its own listener.
type GRPCServer struct {
	address string
	logger  logging.Logger
	health  *health.Server
	grace   time.Duration
}

// NewGRPCServer prepares a health server listening on a. grace bounds the
// graceful stop before open streams are cut.
func NewGRPCServer(a string, l logging.Logger, grace time.Duration) *GRPCServer {
	h := health.NewServer()
	h.SetServingStatus(RelayService, healthpb.HealthCheckResponse_SERVING)

	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		health:  h,
		grace:   grace,
	}
}

// SetAccepting flips the relay service between SERVING and NOT_SERVING.
func (s *GRPCServer) SetAccepting(ok bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if ok {
		st = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus(RelayService, st)
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve runs on an existing listener until ctx is done.
func (s *GRPCServer) Serve(ctx context.Context, listen net.Listener) error {

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))
	healthpb.RegisterHealthServer(srv, s.health)

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")

		// watchers see NOT_SERVING before the listener goes away
		s.health.Shutdown()

		done := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(s.grace):
			s.logger.Warn(ctx, "graceful stop timed out, closing open streams")
			srv.Stop()
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	<-stopped
	return nil
}
