package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/skicka/internal/logging"
)

type entry struct {
	msg  string
	args []any
}

type recordingLogger struct {
	logging.Nop
	entries *[]entry
}

func (r recordingLogger) Debug(ctx context.Context, msg string, args ...any) {
	*r.entries = append(*r.entries, entry{msg: msg, args: append(args, "request_id", logging.RequestID(ctx))})
}
func (r recordingLogger) With(...any) logging.Logger { return r }

func argValue(args []any, key string) any {
	for i := 0; i+1 < len(args); i += 2 {
		if args[i] == key {
			return args[i+1]
		}
	}
	return nil
}

func TestInterceptor_UsesInboundRequestID(t *testing.T) {
	var got []entry
	s := &GRPCServer{logger: recordingLogger{entries: &got}}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(requestIDKey, "trace-7"))
	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

	var seen string
	h := func(ctx context.Context, req any) (any, error) {
		seen = logging.RequestID(ctx)
		return "ok", nil
	}

	resp, err := s.loggingInterceptor(ctx, nil, info, h)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	assert.Equal(t, "trace-7", seen)

	require.Len(t, got, 1)
	assert.Equal(t, "call served", got[0].msg)
	assert.Equal(t, "/grpc.health.v1.Health/Check", argValue(got[0].args, "method"))
	assert.Equal(t, "OK", argValue(got[0].args, "code"))
	assert.Equal(t, "trace-7", argValue(got[0].args, "request_id"))
}

func TestInterceptor_GeneratesRequestIDAndKeepsError(t *testing.T) {
	var got []entry
	s := &GRPCServer{logger: recordingLogger{entries: &got}}

	info := &grpc.UnaryServerInfo{FullMethod: "/pkg.Service/Other"}
	wantErr := status.Error(codes.NotFound, "unknown service")

	var seen string
	h := func(ctx context.Context, req any) (any, error) {
		seen = logging.RequestID(ctx)
		return nil, wantErr
	}

	_, err := s.loggingInterceptor(context.Background(), nil, info, h)
	assert.True(t, errors.Is(err, wantErr))
	assert.Len(t, seen, 36)

	require.Len(t, got, 1)
	assert.Equal(t, "NotFound", argValue(got[0].args, "code"))
}
