package common

import (
	"context"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"regexp"

	"github.com/Bornholm/amatl/pkg/resolver"
	"github.com/kirsle/configdir"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
	"gopkg.in/yaml.v2"
)

const AppName = "procuradoria"

// DefaultConfigFile is the configuration loaded when no --config flag is given,
// i.e. cli.yml in the user configuration directory.
func DefaultConfigFile() string {
	return filepath.Join(configdir.LocalConfig(AppName), "cli.yml")
}

// NewResolverSourceFromFlagFunc loads flag values from the configuration
// file referenced by the given flag. The reference can be any url the amatl
// resolver knows about (file path, http url or '-' for stdin).
func NewResolverSourceFromFlagFunc(flag string) func(cCtx *cli.Context) (altsrc.InputSourceContext, error) {
	return func(cCtx *cli.Context) (altsrc.InputSourceContext, error) {
		rawURL := cCtx.String(flag)
		if rawURL == "" {
			defaultFile := DefaultConfigFile()
			if _, err := os.Stat(defaultFile); err != nil {
				return altsrc.NewMapInputSource("", map[any]any{}), nil
			}

			rawURL = defaultFile
		}

		return NewResolvedInputSource(cCtx.Context, rawURL)
	}
}

func NewResolvedInputSource(ctx context.Context, rawURL string) (altsrc.InputSourceContext, error) {
	sourceURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse url '%s'", rawURL)
	}

	data, err := readResolved(ctx, sourceURL)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	switch ext := filepath.Ext(sourceURL.Path); ext {
	case ".json", ".yaml", ".yml":
		var values map[any]any

		if err := yaml.Unmarshal(data, &values); err != nil {
			return nil, errors.Wrapf(err, "could not parse configuration '%s'", rawURL)
		}

		if err := resolveRelativePaths(sourceURL, values); err != nil {
			return nil, errors.WithStack(err)
		}

		return altsrc.NewMapInputSource(rawURL, values), nil

	default:
		return nil, errors.Errorf("no parser associated with '%s' file extension", ext)
	}
}

func readResolved(ctx context.Context, sourceURL *url.URL) ([]byte, error) {
	reader, err := resolver.Resolve(ctx, sourceURL)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}

// resolveRelativePaths makes path values (an --output file for example)
// relative to the configuration file instead of the working directory.
func resolveRelativePaths(sourceURL *url.URL, values map[any]any) error {
	dir, err := filepath.Abs(filepath.Dir(sourceURL.Path))
	if err != nil {
		return errors.WithStack(err)
	}

	base := *sourceURL
	base.Path = dir

	for key, rawValue := range values {
		value, ok := rawValue.(string)
		if !ok || isURL(value) || !isPath(value) || filepath.IsAbs(value) {
			continue
		}

		values[key] = base.JoinPath(value).String()
	}

	return nil
}

var filepathRegExp = regexp.MustCompile(`^(?i)(?:\/[^\/]+)+\/?[^\s]+(?:\.[^\s]+)+|[^\s]+(?:\.[^\s]+)+$`)

func isPath(str string) bool {
	return filepathRegExp.MatchString(str)
}

func isURL(str string) bool {
	_, err := url.ParseRequestURI(str)
	return err == nil
}
