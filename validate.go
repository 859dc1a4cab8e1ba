package formvalidation

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// Result holds the outcome of one validation call: the typed record on
// success, the failures otherwise.
type Result struct {
	Value  map[string]any
	Errors Errors
}

// OK reports whether validation succeeded.
func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// Err returns the failures as an error, or nil on success.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return r.Errors
}

// Decode copies the validated record into dst, typically a struct with json
// tags. Dates decode into time.Time fields.
func (r Result) Decode(dst any) error {
	if !r.OK() {
		return r.Errors
	}
	b, err := json.Marshal(r.Value)
	if err != nil {
		return fmt.Errorf("encode validated record: %w", err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("decode validated record: %w", err)
	}
	return nil
}

// Validate checks an untyped record against s. On failure the error is
// always [Errors].
func Validate(s *Schema, input map[string]any) (map[string]any, error) {
	return s.Validate(RecordFrom(input))
}

// UnmarshalAndValidate decodes a JSON object from b, then validates it.
// Decoding errors are returned as is; validation failures as [Errors].
func UnmarshalAndValidate(s *Schema, b []byte) (map[string]any, error) {
	return DecodeAndValidate(s, bytes.NewReader(b))
}

// DecodeAndValidate reads a JSON object from r using a streaming decoder,
// then validates it. Use this instead of [UnmarshalAndValidate] when reading
// directly from an [io.Reader] such as an HTTP request body.
func DecodeAndValidate(s *Schema, r io.Reader) (map[string]any, error) {
	rec, err := DecodeJSON(r)
	if err != nil {
		return nil, err
	}
	return s.Validate(rec)
}
