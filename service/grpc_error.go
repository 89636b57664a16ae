package service

import (
	"context"
	"errors"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// meshErrorCodeToGRPCCode maps MeshError codes to gRPC status codes.
func meshErrorCodeToGRPCCode(code string) codes.Code {
	switch code {
	case ErrMalformedInput:
		return codes.InvalidArgument
	case ErrPoolExhausted, ErrDownstreamUnavailable:
		return codes.Unavailable
	case ErrMalformedResponse:
		return codes.Internal
	case ErrRequestTimeout:
		return codes.DeadlineExceeded
	case ErrEntityNotFound:
		return codes.NotFound
	case ErrInternalServerError:
		return codes.Internal
	default:
		return codes.Unknown
	}
}

// MeshErrorToGRPC converts an error to a gRPC status error. MeshError is mapped to the
// corresponding code and message; other errors become codes.Unknown with "internal error".
func MeshErrorToGRPC(err error) error {
	if err == nil {
		return nil
	}
	if meshErr, ok := ToMeshError(err); ok {
		return status.Error(meshErrorCodeToGRPCCode(meshErr.Code), meshErr.Message)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, "request timed out")
	}
	return status.Error(codes.Unknown, "internal error")
}

// MeshErrorFromGRPC is the client-side inverse of MeshErrorToGRPC: a status returned by a
// downstream peer becomes a MeshError. DeadlineExceeded keeps its timeout meaning,
// InvalidArgument and NotFound are the caller's fault, everything else means the peer could
// not serve the call.
func MeshErrorFromGRPC(err error, method string) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.DeadlineExceeded:
		return NewRequestTimeoutError(method+" timed out", err)
	case codes.InvalidArgument:
		return NewMalformedInputError(st.Message(), err)
	case codes.NotFound:
		return NewEntityNotFoundError(st.Message(), err)
	default:
		return NewDownstreamUnavailableError(method+" unavailable", err)
	}
}

// MeshErrorToGRPCInterceptor returns a unary server interceptor that converts handler
// errors to gRPC status errors and logs them.
func MeshErrorToGRPCInterceptor(logger log.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err != nil {
			if meshErr, ok := ToMeshError(err); ok {
				level.Info(logger).Log(
					"msg", "gRPC handler error",
					"method", info.FullMethod,
					"error_code", meshErr.Code,
					"error_message", meshErr.Message,
					"error", err,
				)
			} else {
				level.Error(logger).Log(
					"msg", "gRPC handler error",
					"method", info.FullMethod,
					"err", err,
				)
			}
			err = MeshErrorToGRPC(err)
		}
		return resp, err
	}
}
