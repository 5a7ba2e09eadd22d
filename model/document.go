// Package model defines the document representation shared by the indexing
// and retrieval packages.
package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Document is a flexible map representing a structured record. Documents are
// owned by the caller; the index only holds references to them, keyed by a
// caller-supplied unique identifier. Nested values are represented as nested
// maps, e.g. doc["author"].(map[string]any)["name"].
type Document map[string]any

// FieldPath addresses a value inside a Document: a single segment names a
// top-level field, multiple segments walk nested maps in order.
type FieldPath []string

// Path builds a FieldPath from explicit segments.
func Path(segments ...string) FieldPath {
	return FieldPath(segments)
}

// ParseField converts a flat field name into a FieldPath. Names containing
// dots are treated as paths into nested maps ("author.name" resolves the
// same as Path("author", "name")).
func ParseField(name string) FieldPath {
	if name == "" {
		return nil
	}
	return FieldPath(strings.Split(name, "."))
}

// Resolve walks the path segment by segment and returns the value it lands
// on. It returns false as soon as a segment is missing or an intermediate
// value is not a nested map; it never fails.
func (d Document) Resolve(path FieldPath) (any, bool) {
	var current any = map[string]any(d)
	for _, segment := range path {
		node, ok := asMap(current)
		if !ok {
			return nil, false
		}
		value, ok := node[segment]
		if !ok || value == nil {
			return nil, false
		}
		current = value
	}
	return current, true
}

func asMap(v any) (map[string]any, bool) {
	switch node := v.(type) {
	case map[string]any:
		return node, true
	case Document:
		return map[string]any(node), true
	default:
		return nil, false
	}
}

// Stringify coerces a field value to its textual representation for
// indexing. Slices of strings are joined with spaces so every element is
// tokenized. Values with no usable textual representation report false and
// are skipped by the caller.
func Stringify(v any) (string, bool) {
	switch value := v.(type) {
	case string:
		return value, true
	case []string:
		return strings.Join(value, " "), true
	case []any: // JSON arrays unmarshal to []any
		parts := make([]string, 0, len(value))
		for _, item := range value {
			if s, ok := Stringify(item); ok {
				parts = append(parts, s)
			}
		}
		if len(parts) == 0 {
			return "", false
		}
		return strings.Join(parts, " "), true
	case int:
		return strconv.Itoa(value), true
	case int32:
		return strconv.FormatInt(int64(value), 10), true
	case int64:
		return strconv.FormatInt(value, 10), true
	case uint32:
		return strconv.FormatUint(uint64(value), 10), true
	case uint64:
		return strconv.FormatUint(value, 10), true
	case float32:
		return strconv.FormatFloat(float64(value), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(value), true
	case fmt.Stringer:
		return value.String(), true
	default:
		return "", false
	}
}
