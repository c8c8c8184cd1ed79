package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dmitrijs2005/skicka/internal/logging"
)

func startServer(t *testing.T) (*GRPCServer, healthpb.HealthClient, context.CancelFunc, <-chan error) {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := NewGRPCServer(lis.Addr().String(), logging.Nop{}, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(ctx, lis)
	}()

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return srv, healthpb.NewHealthClient(conn), cancel, done
}

func check(t *testing.T, c healthpb.HealthClient) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	resp, err := c.Check(ctx, &healthpb.HealthCheckRequest{Service: RelayService})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHealth_ReflectsAccepting(t *testing.T) {
	srv, client, cancel, _ := startServer(t)
	defer cancel()

	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client))

	srv.SetAccepting(false)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client))

	srv.SetAccepting(true)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client))
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	_, client, cancel, done := startServer(t)
	check(t, client)

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err, "Run returned error on graceful stop")
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", logging.Nop{}, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Error(t, srv.Run(ctx))
}
