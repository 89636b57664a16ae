package transport

import (
	"context"

	"hotelmesh/helpers"

	"go.opentelemetry.io/otel"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// TraceClientInterceptor injects the active trace context into outgoing metadata.
func TraceClientInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		md, ok := metadata.FromOutgoingContext(ctx)
		if ok {
			md = md.Copy()
		} else {
			md = metadata.MD{}
		}
		otel.GetTextMapPropagator().Inject(ctx, helpers.MetadataCarrier(md))
		return invoker(metadata.NewOutgoingContext(ctx, md), method, req, reply, cc, opts...)
	}
}

// TraceServerInterceptor extracts the caller's trace context from incoming metadata so server
// spans join the caller's trace.
func TraceServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			ctx = otel.GetTextMapPropagator().Extract(ctx, helpers.MetadataCarrier(md))
		}
		return handler(ctx, req)
	}
}

// RequestIDServerInterceptor forwards the caller's request id to the calls the handler makes
// downstream, so one frontend request keeps one id across the mesh.
func RequestIDServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		md, _ := metadata.FromIncomingContext(ctx)
		if id, ok := helpers.GetHeaderValue(md, helpers.HeaderRequestID); ok {
			ctx = metadata.AppendToOutgoingContext(ctx, helpers.HeaderRequestID, id)
		}
		return handler(ctx, req)
	}
}
