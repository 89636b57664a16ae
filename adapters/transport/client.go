package transport

import (
	"context"
	"fmt"

	"hotelmesh/helpers"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// grpcClient implements interfaces.TransportClient over one *grpc.ClientConn. Each client owns
// its own connection, so the clients of a pool are independent.
type grpcClient struct {
	target string
	conn   *grpc.ClientConn
}

// Dial creates a client for target. The connection is established lazily by gRPC on the first
// call; opts are appended after the defaults (insecure credentials, raw codec, tracing).
func Dial(target string, opts ...grpc.DialOption) (*grpcClient, error) {
	helpers.StrPanic(target, "adapters.transport.client.go: target is required")
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(CodecName)),
		grpc.WithChainUnaryInterceptor(TraceClientInterceptor()),
	}, opts...)
	conn, err := grpc.NewClient(target, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("grpc new client %s: %w", target, err)
	}
	return &grpcClient{target: target, conn: conn}, nil
}

func (c *grpcClient) Call(ctx context.Context, method string, payload []byte) ([]byte, error) {
	var out []byte
	if err := c.conn.Invoke(ctx, method, payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *grpcClient) Target() string {
	return c.target
}

func (c *grpcClient) Close() error {
	return c.conn.Close()
}
