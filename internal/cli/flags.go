package cli

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/riposte-dev/riposte/request"
)

// addCommonFlags registers the flags shared by every request command
func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("header", "H", nil, "HTTP header to include, as 'Key: Value' (repeatable)")
	cmd.Flags().DurationP("timeout", "t", 0, "Request timeout (0 uses the default, negative disables)")
	cmd.Flags().String("proxy", "", "Proxy to route through, as scheme://host:port (http, https, socks5)")
	cmd.Flags().Bool("no-follow", false, "Do not follow redirects; print the redirect response")
	cmd.Flags().Int("max-redirects", 0, "Maximum redirects to follow (0 uses the default)")
	cmd.Flags().StringP("output", "o", "text", "Response decoding: text, json, or binary")
	cmd.Flags().String("extract", "", "Print only the value at this gjson path")
	cmd.Flags().String("schema", "", "Validate the response body against this JSON Schema file")
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	cmd.Flags().String("profile", "", "Config profile to apply")
	cmd.Flags().String("config", "", "Config file path (default ~/.riposte.yaml)")
}

// parseHeaders turns repeated 'Key: Value' flags into a header map
func parseHeaders(list []string) (map[string]string, error) {
	if len(list) == 0 {
		return nil, nil
	}
	headers := make(map[string]string, len(list))
	for _, entry := range list {
		parts := strings.SplitN(entry, ":", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" {
			return nil, fmt.Errorf("invalid header %q (want 'Key: Value')", entry)
		}
		headers[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return headers, nil
}

// parseProxy turns a scheme://host:port flag into a proxy descriptor
func parseProxy(s string) (*request.ProxyConfig, error) {
	if s == "" {
		return nil, nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy %q: %w", s, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid proxy %q: missing host", s)
	}

	portStr := u.Port()
	if portStr == "" {
		switch u.Scheme {
		case "http":
			portStr = "80"
		case "https":
			portStr = "443"
		case "socks5":
			portStr = "1080"
		default:
			return nil, fmt.Errorf("invalid proxy %q: unsupported scheme", s)
		}
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy port %q", portStr)
	}

	return &request.ProxyConfig{
		Protocol: u.Scheme,
		Host:     u.Hostname(),
		Port:     port,
	}, nil
}

// parseResponseType maps the --output flag to a library response type
func parseResponseType(s string) (request.ResponseType, error) {
	switch s {
	case "", "text":
		return request.TypeText, nil
	case "json":
		return request.TypeJSON, nil
	case "binary":
		return request.TypeBinary, nil
	default:
		return "", fmt.Errorf("invalid output type %q (want text, json, or binary)", s)
	}
}

// requestFlags is the resolved flag set for one invocation
type requestFlags struct {
	headers      map[string]string
	timeout      time.Duration
	proxy        *request.ProxyConfig
	noFollow     bool
	maxRedirects int
	responseType request.ResponseType
	extract      string
	schemaPath   string
	verbose      bool
	noColor      bool
	profile      string
	configPath   string
}

// collectFlags reads and validates the common flags
func collectFlags(cmd *cobra.Command) (*requestFlags, error) {
	rawHeaders, _ := cmd.Flags().GetStringArray("header")
	headers, err := parseHeaders(rawHeaders)
	if err != nil {
		return nil, err
	}

	proxyStr, _ := cmd.Flags().GetString("proxy")
	proxy, err := parseProxy(proxyStr)
	if err != nil {
		return nil, err
	}

	outputStr, _ := cmd.Flags().GetString("output")
	responseType, err := parseResponseType(outputStr)
	if err != nil {
		return nil, err
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	noFollow, _ := cmd.Flags().GetBool("no-follow")
	maxRedirects, _ := cmd.Flags().GetInt("max-redirects")
	extract, _ := cmd.Flags().GetString("extract")
	schemaPath, _ := cmd.Flags().GetString("schema")
	verbose, _ := cmd.Flags().GetBool("verbose")
	noColor, _ := cmd.Flags().GetBool("no-color")
	profile, _ := cmd.Flags().GetString("profile")
	configPath, _ := cmd.Flags().GetString("config")

	return &requestFlags{
		headers:      headers,
		timeout:      timeout,
		proxy:        proxy,
		noFollow:     noFollow,
		maxRedirects: maxRedirects,
		responseType: responseType,
		extract:      extract,
		schemaPath:   schemaPath,
		verbose:      verbose,
		noColor:      noColor,
		profile:      profile,
		configPath:   configPath,
	}, nil
}
