package jsonx

import (
	"bytes"
	"encoding/json"

	"github.com/rs/zerolog/log"
)

const snippetLen = 200

// ArrayResult is the outcome of parsing a response that should be a JSON
// array. When OK is false, Data is always the empty slice, never a partial
// parse: callers treat failure as "discard and regenerate".
type ArrayResult[T any] struct {
	Data       []T
	OK         bool
	RawSnippet string
}

// ObjectResult is the outcome of parsing a response that should be a JSON
// object. When OK is false, Data is the zero value.
type ObjectResult[T any] struct {
	Data       T
	OK         bool
	RawSnippet string
}

// Array extracts and parses an array-shaped response. An object wrapping an
// array (e.g. {"itinerary":[...]}) is unwrapped to its first array-valued
// field in document order, since models do that despite instructions.
// Elements that do not decode as T are dropped rather than failing the whole
// array.
func Array[T any](raw string, mode Mode) ArrayResult[T] {
	fail := func() ArrayResult[T] {
		logSnippet("array", raw)
		return ArrayResult[T]{Data: []T{}, OK: false, RawSnippet: snippet(raw)}
	}
	if raw == "" {
		return ArrayResult[T]{Data: []T{}, OK: false}
	}

	cleaned := Extract(raw, ShapeArray, mode)

	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &elems); err != nil {
		inner, ok := firstArrayField([]byte(cleaned))
		if !ok {
			return fail()
		}
		if err := json.Unmarshal(inner, &elems); err != nil {
			return fail()
		}
	}

	out := make([]T, 0, len(elems))
	for _, e := range elems {
		var v T
		if err := json.Unmarshal(e, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return ArrayResult[T]{Data: out, OK: true}
}

// Object extracts and parses an object-shaped response. Arrays and scalars
// are rejected.
func Object[T any](raw string, mode Mode) ObjectResult[T] {
	var zero T
	fail := func() ObjectResult[T] {
		logSnippet("object", raw)
		return ObjectResult[T]{Data: zero, OK: false, RawSnippet: snippet(raw)}
	}
	if raw == "" {
		return ObjectResult[T]{Data: zero, OK: false}
	}

	cleaned := []byte(Extract(raw, ShapeObject, mode))
	trimmed := bytes.TrimSpace(cleaned)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fail()
	}

	var v T
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return fail()
	}
	return ObjectResult[T]{Data: v, OK: true}
}

// NonEmpty demotes an OK array result holding zero elements to a failure.
// An empty itinerary is indistinguishable from total generation failure and
// must trigger regeneration instead of rendering a blank trip.
func NonEmpty[T any](r ArrayResult[T], raw string) ArrayResult[T] {
	if r.OK && len(r.Data) == 0 {
		logSnippet("array", raw)
		return ArrayResult[T]{Data: []T{}, OK: false, RawSnippet: snippet(raw)}
	}
	return r
}

// firstArrayField walks the top-level keys of a JSON object in document order
// and returns the first array-valued field.
func firstArrayField(b []byte) (json.RawMessage, bool) {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return nil, false
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, false
	}
	for dec.More() {
		if _, err := dec.Token(); err != nil { // key
			return nil, false
		}
		var val json.RawMessage
		if err := dec.Decode(&val); err != nil {
			return nil, false
		}
		t := bytes.TrimSpace(val)
		if len(t) > 0 && t[0] == '[' {
			return val, true
		}
	}
	return nil, false
}

func snippet(raw string) string {
	if len(raw) > snippetLen {
		return raw[:snippetLen]
	}
	return raw
}

func logSnippet(shape, raw string) {
	log.Warn().Str("shape", shape).Str("snippet", snippet(raw)).Msg("failed to parse model response")
}
