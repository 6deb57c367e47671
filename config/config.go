// Package config loads paramspec settings from defaults, an optional YAML file
// and PARAMSPEC_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/gaborage/paramspec/annotation"
)

// EnvPrefix prefixes every environment variable the loader reads.
const EnvPrefix = "PARAMSPEC_"

// listKeys are split on commas when they come from the environment.
var listKeys = map[string]bool{
	"descriptions.patterns": true,
}

// Load loads configuration from multiple sources with priority:
// 1. Environment variables (highest priority)
// 2. The YAML file at path, when path is non-empty and the file exists
// 3. Default values (lowest priority)
func Load(path string) (*Config, error) {
	return load(func(k *koanf.Koanf) error {
		if path == "" {
			return nil
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
		return nil
	})
}

// LoadBytes is Load with the YAML document given in memory.
func LoadBytes(data []byte) (*Config, error) {
	return load(func(k *koanf.Koanf) error {
		if len(data) == 0 {
			return nil
		}
		if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
			return fmt.Errorf("failed to parse config: %w", err)
		}
		return nil
	})
}

func load(loadFile func(*koanf.Koanf) error) (*Config, error) {
	k := koanf.New(".")

	if err := loadDefaults(k); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := loadFile(k); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: transformEnv,
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.k = k

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// transformEnv maps PARAMSPEC_SERVER_TIMEOUT_READ to server.timeout.read.
func transformEnv(key, value string) (string, any) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	key = strings.ReplaceAll(key, "_", ".")
	if listKeys[key] {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return key, out
	}
	return key, value
}

// EnvVar returns the environment variable that overrides key.
func EnvVar(key string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func loadDefaults(k *koanf.Koanf) error {
	defaults := map[string]any{
		"app.name":    "paramspec",
		"app.version": "v1.0.0",
		"app.env":     EnvDevelopment,

		"params.adapter":   "grape",
		"params.paramtype": "body",

		"descriptions.root":     "",
		"descriptions.patterns": append([]string(nil), annotation.DefaultPatterns...),

		"contracts.dir": "contracts",

		"server.host":             "0.0.0.0",
		"server.port":             8080,
		"server.timeout.read":     "15s",
		"server.timeout.write":    "30s",
		"server.timeout.shutdown": "10s",
		"server.rate.limit":       100,
		"server.rate.burst":       200,

		"log.level":  "info",
		"log.pretty": false,
	}

	return k.Load(confmap.Provider(defaults, "."), nil)
}
