package request

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Response is the terminal result of a successful call.
type Response struct {
	// Data is the decoded body: a string for TypeText, the unmarshalled
	// value for TypeJSON, or the raw []byte for TypeBinary.
	Data interface{}

	// Status is the numeric HTTP status code
	Status int

	// StatusText is the reason phrase reported by the server
	StatusText string

	// Headers maps lowercased header names to values. When the server sends
	// the same header name more than once, the last occurrence wins.
	Headers map[string]string

	// URL is the originally requested URL, not the final redirected one
	URL string

	// Duration is the wall-clock time from issuing the request to the last
	// body byte
	Duration time.Duration

	raw []byte
}

// Bytes returns the raw accumulated body regardless of ResponseType
func (r *Response) Bytes() []byte {
	return r.raw
}

// Text returns the body as a string regardless of ResponseType
func (r *Response) Text() string {
	return string(r.raw)
}

// Decode unmarshals the raw body as JSON into v
func (r *Response) Decode(v interface{}) error {
	if err := json.Unmarshal(r.raw, v); err != nil {
		return &ParseError{Err: err}
	}
	return nil
}

// IsSuccess returns true if the status code is in the 2xx range
func (r *Response) IsSuccess() bool {
	return r.Status >= 200 && r.Status < 300
}

// IsRedirect returns true if the status code is in the 3xx range
func (r *Response) IsRedirect() bool {
	return r.Status >= 300 && r.Status < 400
}

// decodeBody produces the typed Data value for the accumulated body
func decodeBody(raw []byte, typ ResponseType) (interface{}, error) {
	switch typ {
	case TypeText, "":
		return string(raw), nil
	case TypeJSON:
		var v interface{}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, &ParseError{Err: err}
		}
		return v, nil
	case TypeBinary:
		return raw, nil
	default:
		return nil, &ParseError{Err: errUnknownType(typ)}
	}
}

type errUnknownType ResponseType

func (e errUnknownType) Error() string {
	return "unknown response type: " + strconv.Quote(string(e))
}

// flattenHeaders lowercases header names and keeps the last value when a
// name repeats.
func flattenHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for name, values := range h {
		if len(values) == 0 {
			continue
		}
		out[strings.ToLower(name)] = values[len(values)-1]
	}
	return out
}

// statusText extracts the reason phrase from a "200 OK" style status line
func statusText(status string, code int) string {
	text := strings.TrimPrefix(status, strconv.Itoa(code))
	return strings.TrimSpace(text)
}
