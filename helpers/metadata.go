package helpers

import (
	"strings"

	"google.golang.org/grpc/metadata"
)

// HeaderRequestID carries the frontend request id through the mesh.
const HeaderRequestID = "x-request-id"

// GetHeaderValue returns the first non-empty value of key in md. Keys are lowercased as gRPC
// canonicalizes them.
func GetHeaderValue(md metadata.MD, key string) (string, bool) {
	if md == nil {
		return "", false
	}
	vals := md.Get(strings.ToLower(key))
	if len(vals) == 0 || vals[0] == "" {
		return "", false
	}
	return vals[0], true
}

// MetadataCarrier adapts gRPC metadata to propagation.TextMapCarrier so trace context can ride
// on mesh calls.
type MetadataCarrier metadata.MD

func (c MetadataCarrier) Get(key string) string {
	v, _ := GetHeaderValue(metadata.MD(c), key)
	return v
}

func (c MetadataCarrier) Set(key, value string) {
	metadata.MD(c).Set(key, value)
}

func (c MetadataCarrier) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	return keys
}
