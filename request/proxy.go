package request

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"

	xproxy "golang.org/x/net/proxy"
)

// newProxyTransport builds an isolated transport for a single proxied call.
// The transport shares no connections with the client's default transport;
// the caller is responsible for closing its idle connections once the call
// settles.
func newProxyTransport(p *ProxyConfig) (*http.Transport, error) {
	if p.Host == "" {
		return nil, fmt.Errorf("proxy host is required")
	}
	if p.Port <= 0 || p.Port > 65535 {
		return nil, fmt.Errorf("invalid proxy port: %d", p.Port)
	}

	addr := net.JoinHostPort(p.Host, strconv.Itoa(p.Port))
	transport := &http.Transport{
		// Isolated per-call transport: keep the pool minimal
		MaxIdleConns:      2,
		DisableKeepAlives: false,
	}

	switch p.Protocol {
	case "http", "https":
		transport.Proxy = http.ProxyURL(&url.URL{
			Scheme: p.Protocol,
			Host:   addr,
		})
	case "socks5":
		dialer, err := xproxy.SOCKS5("tcp", addr, nil, xproxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("socks5 dialer: %w", err)
		}
		if cd, ok := dialer.(xproxy.ContextDialer); ok {
			transport.DialContext = cd.DialContext
		} else {
			transport.DialContext = func(ctx context.Context, network, address string) (net.Conn, error) {
				return dialer.Dial(network, address)
			}
		}
	default:
		return nil, fmt.Errorf("unsupported proxy protocol: %q", p.Protocol)
	}

	return transport, nil
}
