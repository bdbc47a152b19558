package request

import (
	"time"
)

const (
	// DefaultTimeout is applied when Options.Timeout is zero
	DefaultTimeout = 30 * time.Second
	// DefaultMaxRedirects is applied when Options.MaxRedirects is zero
	DefaultMaxRedirects = 20
)

// ResponseType selects how the accumulated response body is decoded
type ResponseType string

const (
	// TypeText decodes the body as a UTF-8 string (the default)
	TypeText ResponseType = "text"
	// TypeJSON decodes the body as a UTF-8 string and parses it as JSON
	TypeJSON ResponseType = "json"
	// TypeBinary returns the raw body bytes unmodified
	TypeBinary ResponseType = "binary"
)

// ProxyConfig describes a proxy the request should be routed through.
// Protocol must be one of "http", "https", or "socks5".
type ProxyConfig struct {
	Protocol string
	Host     string
	Port     int
}

// Options controls a single request. The zero value is a plain GET with the
// default timeout, redirects followed, and the body decoded as text.
type Options struct {
	// Method is the HTTP method. Empty means GET.
	Method string

	// Headers are applied to the outgoing request, key case preserved as
	// supplied. Matching against defaults set on the Client is performed by
	// net/http's canonical form, so "content-type" and "Content-Type" refer
	// to the same wire header.
	Headers map[string]string

	// Body is the request body: a string (sent as UTF-8) or []byte (sent
	// as-is). Nil means no body.
	Body interface{}

	// Proxy routes this call through an isolated transport. Nil uses the
	// client's shared default transport and session cookie store.
	Proxy *ProxyConfig

	// Timeout bounds the whole call, from dialing to the last body byte.
	// Zero means DefaultTimeout; a negative value disables the timeout.
	Timeout time.Duration

	// ResponseType selects body decoding. Empty means TypeText.
	ResponseType ResponseType

	// DisableRedirect surfaces a redirect response as the terminal response
	// instead of following it.
	DisableRedirect bool

	// MaxRedirects caps how many redirects are followed before the call
	// fails with a RedirectError. Zero means DefaultMaxRedirects.
	MaxRedirects int
}

// clone returns a shallow copy of the options with the headers map copied,
// so wrappers can inject headers without mutating the caller's Options.
func (o *Options) clone() *Options {
	if o == nil {
		return &Options{}
	}
	out := *o
	if o.Headers != nil {
		out.Headers = make(map[string]string, len(o.Headers))
		for k, v := range o.Headers {
			out.Headers[k] = v
		}
	}
	return &out
}

// timeout resolves the effective timeout for the call
func (o *Options) timeout() time.Duration {
	if o.Timeout == 0 {
		return DefaultTimeout
	}
	if o.Timeout < 0 {
		return 0
	}
	return o.Timeout
}

// maxRedirects resolves the effective redirect cap for the call
func (o *Options) maxRedirects() int {
	if o.MaxRedirects == 0 {
		return DefaultMaxRedirects
	}
	return o.MaxRedirects
}
