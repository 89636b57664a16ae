package transport

import (
	"context"
	"strings"

	"google.golang.org/grpc"
)

// Handler serves one mesh method: it receives the request payload and returns the response payload.
type Handler func(ctx context.Context, payload []byte) ([]byte, error)

// NewServiceDesc builds a gRPC service description for serviceName whose methods are served by
// routes (method name → handler). Register it with grpc.Server.RegisterService(desc, nil).
func NewServiceDesc(serviceName string, routes map[string]Handler) *grpc.ServiceDesc {
	desc := &grpc.ServiceDesc{
		ServiceName: serviceName,
		HandlerType: (*any)(nil),
		Streams:     []grpc.StreamDesc{},
	}
	for name, h := range routes {
		desc.Methods = append(desc.Methods, methodDesc(serviceName, name, h))
	}
	return desc
}

func methodDesc(serviceName, methodName string, h Handler) grpc.MethodDesc {
	fullMethod := "/" + serviceName + "/" + methodName
	return grpc.MethodDesc{
		MethodName: methodName,
		Handler: func(_ any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			var in []byte
			if err := dec(&in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return h(ctx, in)
			}
			info := &grpc.UnaryServerInfo{FullMethod: fullMethod}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return h(ctx, req.([]byte))
			})
		},
	}
}

// MethodName returns the last path element of a full method ("/svc/Method" → "Method").
func MethodName(fullMethod string) string {
	if i := strings.LastIndex(fullMethod, "/"); i >= 0 {
		return fullMethod[i+1:]
	}
	return fullMethod
}
