package request

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Get executes a GET request
func (c *Client) Get(ctx context.Context, url string, opts *Options) (*Response, error) {
	o := opts.clone()
	o.Method = http.MethodGet
	return c.Do(ctx, url, o)
}

// Delete executes a DELETE request
func (c *Client) Delete(ctx context.Context, url string, opts *Options) (*Response, error) {
	o := opts.clone()
	o.Method = http.MethodDelete
	return c.Do(ctx, url, o)
}

// Post executes a POST request carrying data (see Payload rules)
func (c *Client) Post(ctx context.Context, url string, data interface{}, opts *Options) (*Response, error) {
	o, err := withPayload(opts, http.MethodPost, data)
	if err != nil {
		return nil, err
	}
	return c.Do(ctx, url, o)
}

// Put executes a PUT request carrying data (see Payload rules)
func (c *Client) Put(ctx context.Context, url string, data interface{}, opts *Options) (*Response, error) {
	o, err := withPayload(opts, http.MethodPut, data)
	if err != nil {
		return nil, err
	}
	return c.Do(ctx, url, o)
}

// Patch executes a PATCH request carrying data (see Payload rules)
func (c *Client) Patch(ctx context.Context, url string, data interface{}, opts *Options) (*Response, error) {
	o, err := withPayload(opts, http.MethodPatch, data)
	if err != nil {
		return nil, err
	}
	return c.Do(ctx, url, o)
}

// withPayload fixes the method and derives the body from an arbitrary value.
// Payload rules: a string is sent verbatim and a []byte is sent as-is; any
// other value is JSON-serialized and, unless the caller already supplied a
// content-type header, "content-type: application/json" is injected.
func withPayload(opts *Options, method string, data interface{}) (*Options, error) {
	o := opts.clone()
	o.Method = method

	switch d := data.(type) {
	case nil:
		return o, nil
	case string:
		o.Body = d
	case []byte:
		o.Body = d
	default:
		encoded, err := json.Marshal(d)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		o.Body = encoded
		if !hasContentType(o.Headers) {
			if o.Headers == nil {
				o.Headers = make(map[string]string, 1)
			}
			o.Headers["content-type"] = "application/json"
		}
	}

	return o, nil
}

// hasContentType reports whether a content-type header was supplied, matching
// the key case-insensitively.
func hasContentType(headers map[string]string) bool {
	for key := range headers {
		if strings.EqualFold(key, "content-type") {
			return true
		}
	}
	return false
}

// defaultClient backs the package-level helpers
var defaultClient = New()

// Do executes a request using the package default client
func Do(ctx context.Context, url string, opts *Options) (*Response, error) {
	return defaultClient.Do(ctx, url, opts)
}

// Get executes a GET request using the package default client
func Get(ctx context.Context, url string, opts *Options) (*Response, error) {
	return defaultClient.Get(ctx, url, opts)
}

// Post executes a POST request using the package default client
func Post(ctx context.Context, url string, data interface{}, opts *Options) (*Response, error) {
	return defaultClient.Post(ctx, url, data, opts)
}

// Put executes a PUT request using the package default client
func Put(ctx context.Context, url string, data interface{}, opts *Options) (*Response, error) {
	return defaultClient.Put(ctx, url, data, opts)
}

// Patch executes a PATCH request using the package default client
func Patch(ctx context.Context, url string, data interface{}, opts *Options) (*Response, error) {
	return defaultClient.Patch(ctx, url, data, opts)
}

// Delete executes a DELETE request using the package default client
func Delete(ctx context.Context, url string, opts *Options) (*Response, error) {
	return defaultClient.Delete(ctx, url, opts)
}
