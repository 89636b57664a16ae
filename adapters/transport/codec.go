// Package transport carries opaque mesh payloads over gRPC. Payload encoding is done by the
// api package; this codec only frames bytes, so a body that fails to decode surfaces at the
// caller as a malformed response rather than as a transport error.
package transport

import (
	"fmt"

	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content-subtype of mesh calls ("application/grpc+hotelmesh-raw").
const CodecName = "hotelmesh-raw"

func init() {
	encoding.RegisterCodec(rawCodec{})
}

// rawCodec passes []byte payloads through unchanged.
type rawCodec struct{}

func (rawCodec) Marshal(v any) ([]byte, error) {
	switch b := v.(type) {
	case []byte:
		return b, nil
	case *[]byte:
		return *b, nil
	default:
		return nil, fmt.Errorf("%s codec: cannot marshal %T", CodecName, v)
	}
}

func (rawCodec) Unmarshal(data []byte, v any) error {
	b, ok := v.(*[]byte)
	if !ok {
		return fmt.Errorf("%s codec: cannot unmarshal into %T", CodecName, v)
	}
	*b = append((*b)[:0], data...)
	return nil
}

func (rawCodec) Name() string {
	return CodecName
}
