package config

import (
	"fmt"
	"net/url"
	"time"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Path    string
	Message string
}

// Error returns the error message
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Validate checks the profile file and returns every problem found
func Validate(config *Config) []ValidationError {
	var errors []ValidationError

	if config.DefaultProfile != "" {
		if _, ok := config.Profiles[config.DefaultProfile]; !ok {
			errors = append(errors, ValidationError{
				Path:    "defaultProfile",
				Message: fmt.Sprintf("unknown profile: %s", config.DefaultProfile),
			})
		}
	}

	for name, profile := range config.Profiles {
		if profile.Timeout != "" {
			if _, err := time.ParseDuration(profile.Timeout); err != nil {
				errors = append(errors, ValidationError{
					Path:    fmt.Sprintf("profiles.%s.timeout", name),
					Message: fmt.Sprintf("invalid duration: %s", profile.Timeout),
				})
			}
		}

		if profile.Proxy != "" {
			u, err := url.Parse(profile.Proxy)
			if err != nil || u.Host == "" {
				errors = append(errors, ValidationError{
					Path:    fmt.Sprintf("profiles.%s.proxy", name),
					Message: fmt.Sprintf("invalid proxy URL: %s", profile.Proxy),
				})
			} else if u.Scheme != "http" && u.Scheme != "https" && u.Scheme != "socks5" {
				errors = append(errors, ValidationError{
					Path:    fmt.Sprintf("profiles.%s.proxy", name),
					Message: fmt.Sprintf("unsupported proxy scheme: %s", u.Scheme),
				})
			}
		}

		if profile.MaxRedirects < 0 {
			errors = append(errors, ValidationError{
				Path:    fmt.Sprintf("profiles.%s.maxRedirects", name),
				Message: "must not be negative",
			})
		}
	}

	return errors
}
