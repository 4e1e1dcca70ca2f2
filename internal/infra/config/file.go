// Where: internal/infra/config/file.go
// What: YAML configuration loader for kong flags.
// Why: Let kda-fetch.yaml supply defaults below flags and env vars.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

var errConfigNotMapping = errors.New("config file must be a mapping of flag names to values")

var lookupEnv = os.LookupEnv

// LoadYAML is a kong.ConfigurationLoader. Keys are flag names; underscores and
// nested mappings are accepted, so `network_url` and `s3: {bucket: x}` resolve
// the --network-url and --s3-bucket flags. A flag whose env var is set is left
// to the environment.
func LoadYAML(r io.Reader) (kong.Resolver, error) {
	values, err := DecodeYAML(r)
	if err != nil {
		return nil, err
	}
	var resolver kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		value, ok := values[flag.Name]
		if !ok || envSet(flag) {
			return nil, nil
		}
		return value, nil
	}
	return resolver, nil
}

func envSet(flag *kong.Flag) bool {
	if flag == nil || flag.Value == nil || flag.Tag == nil {
		return false
	}
	for _, name := range flag.Tag.Envs {
		if _, ok := lookupEnv(name); ok {
			return true
		}
	}
	return false
}

// DecodeYAML reads a config document into a flat flag-name to string map.
func DecodeYAML(r io.Reader) (map[string]string, error) {
	var raw any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("decode config file: %w", err)
	}
	if raw == nil {
		return map[string]string{}, nil
	}
	root, ok := raw.(map[string]any)
	if !ok {
		return nil, errConfigNotMapping
	}

	out := map[string]string{}
	if err := flatten("", root, out); err != nil {
		return nil, err
	}
	return out, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) error {
	for key, value := range node {
		name := normalizeKey(key)
		if prefix != "" {
			name = prefix + "-" + name
		}
		switch v := value.(type) {
		case map[string]any:
			if err := flatten(name, v, out); err != nil {
				return err
			}
		case []any:
			return fmt.Errorf("config key %q: lists are not supported", name)
		case nil:
			continue
		case time.Time:
			out[name] = v.Format(time.RFC3339)
		default:
			out[name] = fmt.Sprint(v)
		}
	}
	return nil
}

func normalizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "_", "-")
}
