// internal/app/system/sections/content.go

// Package sections implements the page section content model: typed tags over
// schemaless content documents, a renderer per tag for the public site, form
// descriptors per tag for the admin editor, and order mutations.
//
// Everything here is defensive about content shape. Sections arrive from the
// database with Content possibly nil, empty, or carrying wrongly typed
// fields, and all of those must render (to an empty state), never panic.
package sections

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
)

// str reads a string field, falling back to def when missing or not a string.
func str(m bson.M, key, def string) string {
	if m == nil {
		return def
	}
	if v, ok := m[key].(string); ok && v != "" {
		return v
	}
	return def
}

// num reads a numeric field, tolerating the int/int32/int64/float64 variants
// BSON and JSON decoding produce.
func num(m bson.M, key string, def int) int {
	if m == nil {
		return def
	}
	switch v := m[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	}
	return def
}

// boolean reads a bool field with a default.
func boolean(m bson.M, key string, def bool) bool {
	if m == nil {
		return def
	}
	if v, ok := m[key].(bool); ok {
		return v
	}
	return def
}

// list reads a field holding a list of sub-documents. Entries that are not
// documents are skipped. Both bson.A (from Mongo) and []any (from JSON) are
// accepted.
func list(m bson.M, key string) []bson.M {
	if m == nil {
		return nil
	}
	var raw []any
	switch v := m[key].(type) {
	case bson.A:
		raw = v
	case []any:
		raw = v
	default:
		return nil
	}
	out := make([]bson.M, 0, len(raw))
	for _, e := range raw {
		switch doc := e.(type) {
		case bson.M:
			out = append(out, doc)
		case map[string]any:
			out = append(out, bson.M(doc))
		}
	}
	return out
}
