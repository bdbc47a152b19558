package output

import (
	"strings"
	"testing"
	"time"

	"github.com/riposte-dev/riposte/request"
)

func TestFormatter_FormatRequest(t *testing.T) {
	f := NewFormatter(true, true)

	out := f.FormatRequest("POST", "https://example.com/users", &request.Options{
		Headers: map[string]string{"Authorization": "Bearer x"},
		Body:    `{"name":"bob"}`,
	})

	if !strings.Contains(out, "POST https://example.com/users") {
		t.Errorf("Missing request line: %s", out)
	}
	if !strings.Contains(out, "Authorization: Bearer x") {
		t.Errorf("Missing header: %s", out)
	}
	if !strings.Contains(out, `"name": "bob"`) {
		t.Errorf("Body not pretty-printed: %s", out)
	}
}

func TestFormatter_FormatResponse(t *testing.T) {
	f := NewFormatter(false, true)

	resp := &request.Response{
		Status:     200,
		StatusText: "OK",
		Headers:    map[string]string{"content-type": "application/json"},
		Duration:   42 * time.Millisecond,
	}

	out := f.FormatResponse(resp)
	if !strings.Contains(out, "200 OK") {
		t.Errorf("Missing status: %s", out)
	}
	if !strings.Contains(out, "(42ms)") {
		t.Errorf("Missing duration: %s", out)
	}
	if strings.Contains(out, "content-type") {
		t.Errorf("Headers should only appear in verbose mode: %s", out)
	}

	verbose := NewFormatter(true, true).FormatResponse(resp)
	if !strings.Contains(verbose, "content-type: application/json") {
		t.Errorf("Missing header in verbose mode: %s", verbose)
	}
}

func TestPrettyJSON(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		wants string
	}{
		{
			name:  "object is indented",
			in:    `{"a":1}`,
			wants: "\"a\": 1",
		},
		{
			name:  "plain text untouched",
			in:    "hello world",
			wants: "hello world",
		},
		{
			name:  "scalar untouched",
			in:    "42",
			wants: "42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := prettyJSON(tt.in); !strings.Contains(got, tt.wants) {
				t.Errorf("prettyJSON(%q) = %q, want it to contain %q", tt.in, got, tt.wants)
			}
		})
	}
}
