// Package config loads and validates riposte profile files.
//
// A profile file is YAML, by default ~/.riposte.yaml, and defines named
// profiles carrying request defaults applied before command-line flags:
//
//	defaultProfile: work
//	profiles:
//	  work:
//	    headers:
//	      Authorization: Bearer xyz
//	    timeout: 10s
//	    proxy: http://127.0.0.1:8080
//	    maxRedirects: 5
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the user's home directory when no --config
// flag is given.
const DefaultFileName = ".riposte.yaml"

// Config represents the top-level profile file
type Config struct {
	DefaultProfile string             `yaml:"defaultProfile,omitempty"`
	Profiles       map[string]Profile `yaml:"profiles"`
}

// Profile holds request defaults for one named profile
type Profile struct {
	Headers      map[string]string `yaml:"headers,omitempty"`
	Timeout      string            `yaml:"timeout,omitempty"`
	Proxy        string            `yaml:"proxy,omitempty"`
	MaxRedirects int               `yaml:"maxRedirects,omitempty"`
	NoFollow     bool              `yaml:"noFollow,omitempty"`
}

// TimeoutDuration parses the profile timeout; empty means zero (use the
// library default).
func (p *Profile) TimeoutDuration() (time.Duration, error) {
	if p.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(p.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", p.Timeout, err)
	}
	return d, nil
}

// Load reads and parses a profile file
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return &config, nil
}

// DefaultPath returns the profile file location in the user's home directory
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultFileName), nil
}

// Profile resolves a profile by name; an empty name falls back to the file's
// defaultProfile, and to no profile at all when neither is set.
func (c *Config) Profile(name string) (*Profile, error) {
	if name == "" {
		name = c.DefaultProfile
	}
	if name == "" {
		return nil, nil
	}
	profile, ok := c.Profiles[name]
	if !ok {
		return nil, fmt.Errorf("profile not found: %s", name)
	}
	return &profile, nil
}
