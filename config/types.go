package config

import (
	"time"

	"github.com/knadh/koanf/v2"
)

// Config represents the overall application configuration structure.
// The embedded koanf.Koanf instance allows for flexible access to keys not
// explicitly defined in the struct.
type Config struct {
	App          AppConfig          `koanf:"app" json:"app" yaml:"app" mapstructure:"app"`
	Params       ParamsConfig       `koanf:"params" json:"params" yaml:"params" mapstructure:"params"`
	Descriptions DescriptionsConfig `koanf:"descriptions" json:"descriptions" yaml:"descriptions" mapstructure:"descriptions"`
	Contracts    ContractsConfig    `koanf:"contracts" json:"contracts" yaml:"contracts" mapstructure:"contracts"`
	Server       ServerConfig       `koanf:"server" json:"server" yaml:"server" mapstructure:"server"`
	Log          LogConfig          `koanf:"log" json:"log" yaml:"log" mapstructure:"log"`

	k *koanf.Koanf `json:"-" yaml:"-" mapstructure:"-"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name    string `koanf:"name" json:"name" yaml:"name" mapstructure:"name" validate:"required"`
	Version string `koanf:"version" json:"version" yaml:"version" mapstructure:"version" validate:"required"`
	Env     string `koanf:"env" json:"env" yaml:"env" mapstructure:"env" validate:"required,oneof=development staging production"`
}

// ParamsConfig selects how schemas are rendered by default.
type ParamsConfig struct {
	// Adapter is the resolver's default adapter.
	Adapter string `koanf:"adapter" json:"adapter" yaml:"adapter" mapstructure:"adapter" validate:"required,oneof=grape rails"`
	// ParamType is the Grape documentation param_type.
	ParamType string `koanf:"paramtype" json:"paramtype" yaml:"paramtype" mapstructure:"paramtype" validate:"required"`
}

// DescriptionsConfig locates annotated contract source files.
// An empty Root disables description lookup.
type DescriptionsConfig struct {
	Root     string   `koanf:"root" json:"root" yaml:"root" mapstructure:"root"`
	Patterns []string `koanf:"patterns" json:"patterns" yaml:"patterns" mapstructure:"patterns" validate:"dive,contains=%s"`
}

// ContractsConfig points at the directory of YAML contract files served and
// generated from.
type ContractsConfig struct {
	Dir string `koanf:"dir" json:"dir" yaml:"dir" mapstructure:"dir"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host    string        `koanf:"host" json:"host" yaml:"host" mapstructure:"host"`
	Port    int           `koanf:"port" json:"port" yaml:"port" mapstructure:"port" validate:"min=1,max=65535"`
	Timeout TimeoutConfig `koanf:"timeout" json:"timeout" yaml:"timeout" mapstructure:"timeout"`
	Rate    RateConfig    `koanf:"rate" json:"rate" yaml:"rate" mapstructure:"rate"`
}

// TimeoutConfig holds server timeouts.
type TimeoutConfig struct {
	Read     time.Duration `koanf:"read" json:"read" yaml:"read" mapstructure:"read" validate:"required"`
	Write    time.Duration `koanf:"write" json:"write" yaml:"write" mapstructure:"write" validate:"required"`
	Shutdown time.Duration `koanf:"shutdown" json:"shutdown" yaml:"shutdown" mapstructure:"shutdown" validate:"required"`
}

// RateConfig holds rate limiting settings. A zero Limit disables the limiter.
type RateConfig struct {
	Limit int `koanf:"limit" json:"limit" yaml:"limit" mapstructure:"limit" validate:"gte=0"`
	Burst int `koanf:"burst" json:"burst" yaml:"burst" mapstructure:"burst" validate:"gte=0"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `koanf:"level" json:"level" yaml:"level" mapstructure:"level" validate:"required,oneof=trace debug info warn error disabled"`
	Pretty bool   `koanf:"pretty" json:"pretty" yaml:"pretty" mapstructure:"pretty"`
}

// Koanf returns the underlying koanf instance. It is nil for configs that
// were not produced by Load or LoadBytes.
func (c *Config) Koanf() *koanf.Koanf {
	return c.k
}

// String returns the raw value stored at key, or def when it is unset.
func (c *Config) String(key, def string) string {
	if c.k == nil || !c.k.Exists(key) {
		return def
	}
	return c.k.String(key)
}
