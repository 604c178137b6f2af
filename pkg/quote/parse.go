package quote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/swiftstream/site/pkg/llm"
)

// ParseResponse decodes raw model output, checking it against schema first:
// required keys present and non-null, declared types, no undeclared keys.
// Any deviation is reported as ErrMalformedResponse.
func ParseResponse(raw string, schema llm.Schema) (Response, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Response{}, ErrEmptyResponse
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	for _, key := range schema.Required {
		v, ok := fields[key]
		if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return Response{}, fmt.Errorf("%w: missing %q", ErrMalformedResponse, key)
		}
	}
	for key, v := range fields {
		prop, ok := schema.Properties[key]
		if !ok {
			return Response{}, fmt.Errorf("%w: unexpected key %q", ErrMalformedResponse, key)
		}
		if err := checkType(v, prop.Type); err != nil {
			return Response{}, fmt.Errorf("%w: field %q: %v", ErrMalformedResponse, key, err)
		}
	}

	var out Response
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if out.EstimatedCost < 0 {
		return Response{}, fmt.Errorf("%w: negative estimatedCost %v", ErrMalformedResponse, out.EstimatedCost)
	}
	return out, nil
}

func checkType(v json.RawMessage, typ string) error {
	switch typ {
	case llm.TypeNumber, llm.TypeInteger:
		dec := json.NewDecoder(bytes.NewReader(v))
		dec.UseNumber()
		var anyV any
		if err := dec.Decode(&anyV); err != nil {
			return err
		}
		n, ok := anyV.(json.Number)
		if !ok {
			return fmt.Errorf("expected %s, got %s", typ, string(v))
		}
		if typ == llm.TypeInteger {
			if _, err := n.Int64(); err != nil {
				return fmt.Errorf("expected integer, got %s", n)
			}
		}
	case llm.TypeString:
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return fmt.Errorf("expected string, got %s", string(v))
		}
	case llm.TypeBoolean:
		var b bool
		if err := json.Unmarshal(v, &b); err != nil {
			return fmt.Errorf("expected boolean, got %s", string(v))
		}
	}
	return nil
}
