// Package jsonx makes LLM text output safely consumable as structured data.
//
// Models sometimes prepend conversation ("Sure! Here's your itinerary:") or
// wrap JSON in markdown fences even when told not to. A bare json.Unmarshal
// then fails and the handler has nothing to render. This package strips the
// wrapping, locates the JSON payload, and parses it behind a typed result
// that callers can always act on without a nil check or a recover.
package jsonx

import (
	"regexp"
	"strings"
)

// Shape selects the expected top-level JSON container.
type Shape int

const (
	ShapeArray Shape = iota
	ShapeObject
)

// Mode selects the payload-location strategy.
type Mode int

const (
	// Greedy matches from the first opening bracket to the last closing
	// bracket. It can over-capture when a reply holds several JSON blocks
	// and under-capture on pathological string content, which is the
	// documented tolerance: downstream parsing fails and the fallback
	// applies.
	Greedy Mode = iota
	// Strict scans for the first balanced bracket pair, aware of string
	// literals and escapes. Safer against multiple or nested blocks.
	Strict
)

var (
	jsonFenceRx  = regexp.MustCompile("(?i)```json\\s*")
	plainFenceRx = regexp.MustCompile("```\\s*")
	arrayRx      = regexp.MustCompile(`(?s)\[.*\]`)
	objectRx     = regexp.MustCompile(`(?s)\{.*\}`)
)

// Extract strips markdown fences and returns the substring most likely to be
// the JSON payload of the given shape. It never fails; when no candidate is
// found it returns the cleaned string and lets the parser reject it.
func Extract(raw string, shape Shape, mode Mode) string {
	s := jsonFenceRx.ReplaceAllString(raw, "")
	s = plainFenceRx.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)

	if mode == Strict {
		if block, ok := scanBalanced(s, shape); ok {
			return block
		}
	} else {
		rx := arrayRx
		if shape == ShapeObject {
			rx = objectRx
		}
		if m := rx.FindString(s); m != "" {
			return m
		}
	}

	open := "["
	if shape == ShapeObject {
		open = "{"
	}
	if strings.HasPrefix(s, open) {
		return s
	}
	return s
}

// scanBalanced returns the first balanced bracket block of the wanted shape,
// skipping over string literals and escaped characters.
func scanBalanced(s string, shape Shape) (string, bool) {
	open, close := byte('['), byte(']')
	if shape == ShapeObject {
		open, close = '{', '}'
	}

	start := strings.IndexByte(s, open)
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case inString:
			if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
		case c == '"':
			inString = true
		case c == open:
			depth++
		case c == close:
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
