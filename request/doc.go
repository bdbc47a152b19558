// Package request provides a small HTTP request helper on top of net/http.
//
// It exposes a single Do operation plus convenience wrappers for the common
// verbs, with per-request control over proxying, timeouts, redirect handling,
// and typed response body decoding.
//
// Basic Usage:
//
//	client := request.New(
//	    request.WithUserAgent("riposte/0.1"),
//	)
//
//	resp, err := client.Do(context.Background(), "https://api.example.com/users", &request.Options{
//	    ResponseType: request.TypeJSON,
//	    Timeout:      10 * time.Second,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Status: %d\n", resp.Status)
//	fmt.Printf("Data: %v\n", resp.Data)
//
// Proxied Request:
//
// Supplying a proxy routes that single call through an isolated transport with
// its own session cookie store; the transport is torn down when the call
// settles and never shares connections with the client's default transport.
//
//	resp, err := client.Get(ctx, "https://example.com", &request.Options{
//	    Proxy: &request.ProxyConfig{Protocol: "socks5", Host: "127.0.0.1", Port: 1080},
//	})
//
// Error Handling:
//
// Failures are reported as typed errors so callers can branch on the failure
// kind rather than on message text:
//
//	var timeoutErr *request.TimeoutError
//	if errors.As(err, &timeoutErr) {
//	    fmt.Printf("gave up after %v\n", timeoutErr.Timeout)
//	}
//
// Thread Safety:
//
// Client is safe for concurrent use. Multiple goroutines may invoke methods
// on a Client simultaneously.
package request
