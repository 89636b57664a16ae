package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEmptyPayload is returned by Unmarshal for a zero-length payload.
var ErrEmptyPayload = errors.New("empty payload")

// Marshal encodes a wire message.
func Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", v, err)
	}
	return data, nil
}

// Unmarshal decodes a wire message into v.
func Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return ErrEmptyPayload
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("unmarshal %T: %w", v, err)
	}
	return nil
}
