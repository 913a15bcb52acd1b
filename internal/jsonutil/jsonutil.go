// Package jsonutil provides shared helpers for decoding JSON payloads
// with contextual error messages.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"io"
)

// MaxBodyBytes caps how much of a response body DecodeBody will read.
const MaxBodyBytes = 4 << 20

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// UnmarshalObject unmarshals a single JSON object into a value of type T.
// Returns an error if the payload is empty, is not an object, or fails to parse.
func UnmarshalObject[T any](data []byte, context string) (T, error) {
	var out T
	if len(data) == 0 {
		return out, fmt.Errorf("%s: empty body", context)
	}
	if !json.Valid(data) {
		return out, fmt.Errorf("%s: invalid JSON", context)
	}
	if firstNonSpace(data) != '{' {
		return out, fmt.Errorf("%s: expected JSON object", context)
	}
	if err := UnmarshalWithContext(data, &out, context); err != nil {
		return out, err
	}
	return out, nil
}

// DecodeBody reads at most MaxBodyBytes from r and decodes it as a JSON
// object of type T.
func DecodeBody[T any](r io.Reader, context string) (T, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxBodyBytes))
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%s: read body: %w", context, err)
	}
	return UnmarshalObject[T](data, context)
}

func firstNonSpace(data []byte) byte {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b
	}
	return 0
}
