// Package output renders requests and responses for the terminal.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/riposte-dev/riposte/request"
)

// Formatter renders requests and responses as human-readable text
type Formatter struct {
	Verbose bool
	NoColor bool

	scheme *ColorScheme
}

// NewFormatter creates a formatter with the given options
func NewFormatter(verbose, noColor bool) *Formatter {
	scheme := DefaultColorScheme()
	if noColor {
		scheme = NoColorScheme()
	}
	return &Formatter{
		Verbose: verbose,
		NoColor: noColor,
		scheme:  scheme,
	}
}

// FormatRequest renders the outgoing request line, headers, and body
func (f *Formatter) FormatRequest(method, url string, opts *request.Options) string {
	var buf strings.Builder

	buf.WriteString(fmt.Sprintf("▶ REQUEST: %s %s\n",
		f.scheme.Method.Sprint(method),
		f.scheme.URL.Sprint(url)))

	if opts == nil {
		return buf.String()
	}

	if f.Verbose && len(opts.Headers) > 0 {
		buf.WriteString("  Headers:\n")
		for _, key := range sortedKeys(opts.Headers) {
			buf.WriteString(fmt.Sprintf("    %s: %s\n", f.scheme.HeaderKey.Sprint(key), opts.Headers[key]))
		}
	}

	switch body := opts.Body.(type) {
	case nil:
	case string:
		buf.WriteString("  Body: ")
		buf.WriteString(prettyJSON(body))
		buf.WriteString("\n")
	case []byte:
		buf.WriteString("  Body: ")
		buf.WriteString(prettyJSON(string(body)))
		buf.WriteString("\n")
	}

	return buf.String()
}

// FormatResponse renders the status line, headers, and body
func (f *Formatter) FormatResponse(resp *request.Response) string {
	var buf strings.Builder

	statusColor := f.scheme.StatusError
	if resp.IsSuccess() {
		statusColor = f.scheme.StatusOK
	} else if resp.IsRedirect() {
		statusColor = f.scheme.StatusWarn
	}

	buf.WriteString(fmt.Sprintf("◀ RESPONSE: %s (%dms)\n",
		statusColor.Sprintf("%d %s", resp.Status, resp.StatusText),
		resp.Duration.Milliseconds()))

	if f.Verbose {
		buf.WriteString("  Headers:\n")
		for _, key := range sortedKeys(resp.Headers) {
			buf.WriteString(fmt.Sprintf("    %s: %s\n", f.scheme.HeaderKey.Sprint(key), resp.Headers[key]))
		}
	}

	if body := resp.Text(); body != "" {
		buf.WriteString("  Body:\n")
		buf.WriteString(indent(prettyJSON(body), "    "))
		buf.WriteString("\n")
	}

	return buf.String()
}

// FormatError renders a terminal failure
func (f *Formatter) FormatError(err error) string {
	return fmt.Sprintf("%s %v\n", f.scheme.Error.Sprint("✗ ERROR:"), err)
}

// prettyJSON indents valid JSON and returns anything else untouched
func prettyJSON(s string) string {
	trimmed := strings.TrimSpace(s)
	if !gjson.Valid(trimmed) {
		return s
	}
	// Plain scalars are valid JSON too but gain nothing from indentation
	if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
		return s
	}
	var out bytes.Buffer
	if err := json.Indent(&out, []byte(trimmed), "", "  "); err != nil {
		return s
	}
	return out.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
