package formvalidation

import (
	"bytes"
	"fmt"
	"io"
	"net/url"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// RecordFromJSON decodes a JSON object into a Record. Numbers keep their
// full precision until a rule reads them.
func RecordFromJSON(b []byte) (Record, error) {
	return DecodeJSON(bytes.NewReader(b))
}

// DecodeJSON reads one JSON object from r.
func DecodeJSON(r io.Reader) (Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("decode json record: %w", err)
	}
	return RecordFrom(m), nil
}

// RecordFromYAML decodes a YAML mapping into a Record. Timestamps become
// RFC 3339 strings.
func RecordFromYAML(b []byte) (Record, error) {
	var m map[string]any
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("decode yaml record: %w", err)
	}
	return RecordFrom(m), nil
}

// RecordFromForm converts submitted form values. A key with one value
// becomes a string, a key with several becomes a list of strings. An
// unchecked checkbox is simply missing, which reads as false.
func RecordFromForm(form url.Values) Record {
	r := make(Record, len(form))
	for k, vals := range form {
		switch len(vals) {
		case 0:
		case 1:
			r[k] = StringValue(vals[0])
		default:
			r[k] = FromAny(vals)
		}
	}
	return r
}
