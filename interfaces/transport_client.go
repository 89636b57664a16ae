package interfaces

import "context"

// TransportClient is one outbound connection to a fixed peer address. It moves opaque
// payloads; encoding is the caller's concern.
//
// Implemented by adapters/transport (gRPC with a raw payload codec).
//
//go:generate moq -stub -out mock/transport_client.go -pkg mock . TransportClient
type TransportClient interface {
	// Call sends payload to method ("/<service>/<Method>") and returns the response payload.
	// Returns: (payload, nil) on success; (nil, err) on transport failure or non-OK status (err carries the gRPC status).
	Call(ctx context.Context, method string, payload []byte) ([]byte, error)

	// Target returns the peer address the client was dialed to.
	Target() string

	// Close releases the underlying connection.
	Close() error
}
