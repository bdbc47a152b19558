package request

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

// Client issues requests through an explicit default transport and session
// cookie store. The zero-config New() client mirrors a browser-like shared
// network context; proxied calls get an isolated one.
type Client struct {
	transport http.RoundTripper
	jar       http.CookieJar
	userAgent string
	headers   map[string]string
}

// ClientOption is a function that configures a Client
type ClientOption func(*Client)

// New creates a client with the given options
func New(options ...ClientOption) *Client {
	jar, _ := cookiejar.New(nil)
	client := &Client{
		transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
		jar:     jar,
		headers: make(map[string]string),
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// WithTransport sets the default transport, replacing the built-in shared one.
// Tests substitute a fake through this.
func WithTransport(rt http.RoundTripper) ClientOption {
	return func(c *Client) {
		c.transport = rt
	}
}

// WithCookieJar sets the session cookie store used by non-proxied calls
func WithCookieJar(jar http.CookieJar) ClientOption {
	return func(c *Client) {
		c.jar = jar
	}
}

// WithUserAgent sets the User-Agent header for all requests
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithDefaultHeader adds a header applied to every request; per-request
// headers with the same name take precedence.
func WithDefaultHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// Do executes a single request and returns the decoded response. A call
// settles exactly once: it returns either a Response or one of the typed
// errors described in the package documentation.
func (c *Client) Do(ctx context.Context, rawURL string, opts *Options) (*Response, error) {
	if opts == nil {
		opts = &Options{}
	}

	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	// Pick the network context: the shared default, or an isolated one when
	// a proxy is requested. The isolated transport and its session cookie
	// store live only for this call and are torn down on every exit path.
	transport := c.transport
	jar := c.jar
	if opts.Proxy != nil {
		proxyTransport, err := newProxyTransport(opts.Proxy)
		if err != nil {
			return nil, &ProxyError{Err: err}
		}
		defer proxyTransport.CloseIdleConnections()
		transport = proxyTransport

		jar, err = cookiejar.New(nil)
		if err != nil {
			return nil, &ProxyError{Err: err}
		}
	}

	maxRedirects := opts.maxRedirects()
	httpClient := &http.Client{
		Transport: transport,
		Jar:       jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if opts.DisableRedirect {
				// Manual mode: the redirect response is the terminal response
				return http.ErrUseLastResponse
			}
			if len(via) > maxRedirects {
				return &RedirectError{Max: maxRedirects}
			}
			return nil
		},
	}

	timeout := opts.timeout()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	body, err := requestBody(opts.Body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, err
	}

	// Client defaults first, then per-request headers on top
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	start := time.Now()
	httpResp, err := httpClient.Do(req)
	if err != nil {
		return nil, mapCallError(err, timeout)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, mapCallError(err, timeout)
	}
	duration := time.Since(start)

	data, err := decodeBody(raw, opts.ResponseType)
	if err != nil {
		return nil, err
	}

	return &Response{
		Data:       data,
		Status:     httpResp.StatusCode,
		StatusText: statusText(httpResp.Status, httpResp.StatusCode),
		Headers:    flattenHeaders(httpResp.Header),
		URL:        rawURL,
		Duration:   duration,
		raw:        raw,
	}, nil
}

// requestBody converts the options body into a reader. Strings are sent as
// UTF-8; byte slices are written as-is.
func requestBody(body interface{}) (io.Reader, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case string:
		return strings.NewReader(b), nil
	case []byte:
		return bytes.NewReader(b), nil
	default:
		return nil, fmt.Errorf("unsupported body type %T (want string or []byte)", body)
	}
}

// mapCallError translates transport-level failures into the typed errors of
// this package. Anything unrecognized is propagated as-is.
func mapCallError(err error, timeout time.Duration) error {
	// CheckRedirect errors come back wrapped in *url.Error
	var redirectErr *RedirectError
	if errors.As(err, &redirectErr) {
		return redirectErr
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Timeout: timeout}
	}
	if errors.Is(err, context.Canceled) {
		return &AbortError{Err: context.Canceled}
	}

	// Unwrap the url.Error envelope so callers see the transport cause
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return &TimeoutError{Timeout: timeout}
	}

	return err
}
