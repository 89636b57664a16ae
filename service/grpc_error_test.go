package service

import (
	"context"
	"errors"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMeshErrorToGRPC_Nil(t *testing.T) {
	assert.NoError(t, MeshErrorToGRPC(nil))
}

func TestMeshErrorToGRPC(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode codes.Code
		wantMsg  string
	}{
		{name: "malformed input", err: NewMalformedInputError("bad lat", nil), wantCode: codes.InvalidArgument, wantMsg: "bad lat"},
		{name: "pool exhausted", err: NewPoolExhaustedError("geo pool exhausted", nil), wantCode: codes.Unavailable, wantMsg: "geo pool exhausted"},
		{name: "downstream unavailable", err: NewDownstreamUnavailableError("geo unavailable", nil), wantCode: codes.Unavailable, wantMsg: "geo unavailable"},
		{name: "malformed response", err: NewMalformedResponseError("bad body", nil), wantCode: codes.Internal, wantMsg: "bad body"},
		{name: "request timeout", err: NewRequestTimeoutError("budget exceeded", nil), wantCode: codes.DeadlineExceeded, wantMsg: "budget exceeded"},
		{name: "entity not found", err: NewEntityNotFoundError("no hotel", nil), wantCode: codes.NotFound, wantMsg: "no hotel"},
		{name: "context deadline", err: context.DeadlineExceeded, wantCode: codes.DeadlineExceeded, wantMsg: "request timed out"},
		{name: "plain error", err: errors.New("x"), wantCode: codes.Unknown, wantMsg: "internal error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, ok := status.FromError(MeshErrorToGRPC(tt.err))
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, st.Code())
			assert.Equal(t, tt.wantMsg, st.Message())
		})
	}
}

func TestMeshErrorFromGRPC(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{name: "deadline", err: status.Error(codes.DeadlineExceeded, "x"), check: IsRequestTimeout},
		{name: "invalid argument", err: status.Error(codes.InvalidArgument, "x"), check: IsMalformedInput},
		{name: "not found", err: status.Error(codes.NotFound, "x"), check: IsEntityNotFound},
		{name: "unavailable", err: status.Error(codes.Unavailable, "x"), check: IsDownstreamUnavailable},
		{name: "internal", err: status.Error(codes.Internal, "x"), check: IsDownstreamUnavailable},
		{name: "non status error", err: errors.New("connection reset"), check: IsDownstreamUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(MeshErrorFromGRPC(tt.err, "/hotelmesh.Geo/Nearby")))
		})
	}
	assert.NoError(t, MeshErrorFromGRPC(nil, "/hotelmesh.Geo/Nearby"))
}

func TestMeshErrorToGRPCInterceptor(t *testing.T) {
	interceptor := MeshErrorToGRPCInterceptor(log.NewNopLogger())
	info := &grpc.UnaryServerInfo{FullMethod: "/hotelmesh.Geo/Nearby"}

	t.Run("success passes response through", func(t *testing.T) {
		resp, err := interceptor(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
			return "resp", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "resp", resp)
	})

	t.Run("mesh error is converted", func(t *testing.T) {
		_, err := interceptor(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
			return nil, NewMalformedInputError("bad lat", nil)
		})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("plain error is converted", func(t *testing.T) {
		_, err := interceptor(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
			return nil, errors.New("boom")
		})
		assert.Equal(t, codes.Unknown, status.Code(err))
	})
}
