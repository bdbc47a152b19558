package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/riposte-dev/riposte/internal/config"
	"github.com/riposte-dev/riposte/internal/output"
	"github.com/riposte-dev/riposte/pkg/jsonpath"
	"github.com/riposte-dev/riposte/pkg/jsonschema"
	"github.com/riposte-dev/riposte/request"
)

// runRequest executes one request command: resolve flags and profile, issue
// the call, render or extract the response, and validate it if asked.
func runRequest(cmd *cobra.Command, method, url string, data interface{}) error {
	flags, err := collectFlags(cmd)
	if err != nil {
		return err
	}

	profile, err := loadProfile(flags)
	if err != nil {
		return err
	}
	opts, err := buildOptions(flags, profile)
	if err != nil {
		return err
	}
	opts.Method = method

	noColor := flags.noColor || !output.IsTerminal(os.Stdout)
	formatter := output.NewFormatter(flags.verbose, noColor)

	client := request.New()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var resp *request.Response
	switch method {
	case "POST":
		resp, err = client.Post(ctx, url, data, opts)
	case "PUT":
		resp, err = client.Put(ctx, url, data, opts)
	case "PATCH":
		resp, err = client.Patch(ctx, url, data, opts)
	default:
		resp, err = client.Do(ctx, url, opts)
	}
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), formatter.FormatError(err))
		return err
	}

	if flags.schemaPath != "" {
		validator, err := jsonschema.NewValidatorFromFile(flags.schemaPath)
		if err != nil {
			return err
		}
		if err := validator.Validate(resp.Bytes()); err != nil {
			fmt.Fprint(cmd.ErrOrStderr(), formatter.FormatError(err))
			return err
		}
	}

	if flags.extract != "" {
		value, err := jsonpath.Lookup(resp.Text(), flags.extract)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	}

	if flags.verbose {
		fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRequest(method, url, opts))
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatResponse(resp))
	return nil
}

// loadProfile resolves the config profile for this invocation. A missing
// default config file is fine; an explicitly given one must exist.
func loadProfile(flags *requestFlags) (*config.Profile, error) {
	path := flags.configPath
	explicit := path != ""
	if !explicit {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return nil, nil
		}
		if _, err := os.Stat(defaultPath); err != nil {
			return nil, nil
		}
		path = defaultPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if errs := config.Validate(cfg); len(errs) > 0 {
		return nil, fmt.Errorf("invalid config %s: %v", path, errs[0])
	}
	return cfg.Profile(flags.profile)
}

// buildOptions merges profile defaults under the explicit flags
func buildOptions(flags *requestFlags, profile *config.Profile) (*request.Options, error) {
	opts := &request.Options{
		Headers:         flags.headers,
		Timeout:         flags.timeout,
		Proxy:           flags.proxy,
		DisableRedirect: flags.noFollow,
		MaxRedirects:    flags.maxRedirects,
		ResponseType:    flags.responseType,
	}

	if profile == nil {
		return opts, nil
	}

	if len(profile.Headers) > 0 {
		merged := make(map[string]string, len(profile.Headers)+len(opts.Headers))
		for k, v := range profile.Headers {
			merged[k] = v
		}
		for k, v := range opts.Headers {
			merged[k] = v
		}
		opts.Headers = merged
	}

	if opts.Timeout == 0 {
		d, err := profile.TimeoutDuration()
		if err != nil {
			return nil, err
		}
		opts.Timeout = d
	}

	if opts.Proxy == nil && profile.Proxy != "" {
		proxy, err := parseProxy(profile.Proxy)
		if err != nil {
			return nil, err
		}
		opts.Proxy = proxy
	}

	if opts.MaxRedirects == 0 {
		opts.MaxRedirects = profile.MaxRedirects
	}
	if !opts.DisableRedirect {
		opts.DisableRedirect = profile.NoFollow
	}

	return opts, nil
}
