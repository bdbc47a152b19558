package jsonpath

import (
	"testing"
)

const doc = `{
	"users": [
		{"name": "alice", "admin": true},
		{"name": "bob", "admin": false}
	],
	"count": 2,
	"owner": null
}`

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		path    string
		want    string
		wantErr bool
	}{
		{
			name: "nested field",
			doc:  doc,
			path: "users.0.name",
			want: "alice",
		},
		{
			name: "number",
			doc:  doc,
			path: "count",
			want: "2",
		},
		{
			name: "boolean",
			doc:  doc,
			path: "users.1.admin",
			want: "false",
		},
		{
			name: "null value",
			doc:  doc,
			path: "owner",
			want: "null",
		},
		{
			name: "array count",
			doc:  doc,
			path: "users.#",
			want: "2",
		},
		{
			name:    "missing path",
			doc:     doc,
			path:    "users.5.name",
			wantErr: true,
		},
		{
			name:    "empty document",
			doc:     "",
			path:    "count",
			wantErr: true,
		},
		{
			name:    "empty path",
			doc:     doc,
			path:    "",
			wantErr: true,
		},
		{
			name:    "invalid JSON",
			doc:     "{nope",
			path:    "count",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lookup(tt.doc, tt.path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestExists(t *testing.T) {
	if !Exists(doc, "users.0.name") {
		t.Error("Expected path to exist")
	}
	if Exists(doc, "users.9") {
		t.Error("Expected path to be missing")
	}
	if Exists("{bad", "x") {
		t.Error("Invalid JSON must not report existing paths")
	}
}
