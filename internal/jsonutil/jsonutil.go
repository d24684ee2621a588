// Package jsonutil provides shared helpers for JSON request and response
// bodies: encoding, decoding, and error wrapping with context.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v any, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// DecodeBody reads r to the end and unmarshals it into v.
// An empty or whitespace-only body is an error.
func DecodeBody(r io.Reader, v any, context string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%s: read body: %w", context, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("%s: empty body", context)
	}
	return UnmarshalWithContext(data, v, context)
}

// EncodeBody marshals v into a reader suitable for an HTTP request body.
func EncodeBody(v any, context string) (*bytes.Reader, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%s: encode body: %w", context, err)
	}
	return bytes.NewReader(data), nil
}
