// Package jsonpath extracts values from JSON documents using gjson path
// syntax (e.g. "users.0.name", "items.#").
package jsonpath

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Lookup extracts the value at path from a JSON document. The value is
// returned in its string form; null is reported as "null".
func Lookup(doc, path string) (string, error) {
	if doc == "" {
		return "", fmt.Errorf("empty JSON document")
	}
	if path == "" {
		return "", fmt.Errorf("empty path")
	}
	if !gjson.Valid(doc) {
		return "", fmt.Errorf("invalid JSON document")
	}

	result := gjson.Get(doc, path)
	if !result.Exists() {
		return "", fmt.Errorf("path not found: %s", path)
	}
	if result.Type == gjson.Null {
		return "null", nil
	}
	return result.String(), nil
}

// Exists reports whether path resolves to a value in the document
func Exists(doc, path string) bool {
	return gjson.Valid(doc) && gjson.Get(doc, path).Exists()
}
