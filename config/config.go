package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/mohae/deepcopy"
	"gopkg.in/yaml.v2"
)

var defaultConfig = Config{
	MaxPending: 100,
}

// Config describes per-key pending-item limits.
// The simplest configuration consists of a single `max_pending` value
// applied to every key; the `keys` section overrides it per key.
type Config struct {
	// Whether to print debug logs
	LogDebug bool `yaml:"log_debug,omitempty"`

	// Default limit of pending items per key
	// If zero - no limit is applied beyond the counter range
	MaxPending uint32 `yaml:"max_pending,omitempty"`

	// Per-key limit overrides
	Keys []Key `yaml:"keys,omitempty"`

	// Catches all undefined fields
	XXX map[string]interface{} `yaml:",inline"`
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (c *Config) UnmarshalYAML(unmarshal func(interface{}) error) error {
	*c = defaultConfig

	// set c to the defaults and then overwrite it with the input.
	type plain Config
	if err := unmarshal((*plain)(c)); err != nil {
		return err
	}

	return checkOverflow(c.XXX, "config")
}

// Validates the parsed configuration: key names must be unique.
func (c *Config) Validate() error {
	seen := make(map[string]struct{}, len(c.Keys))
	for _, k := range c.Keys {
		if _, ok := seen[k.Name]; ok {
			return fmt.Errorf("key %q is duplicated in `keys` section", k.Name)
		}
		seen[k.Name] = struct{}{}
	}
	return nil
}

// MaxPendingFor returns the pending-item limit for the given key,
// falling back to the default `max_pending` when no override exists.
// A returned zero means unlimited.
func (c *Config) MaxPendingFor(name string) uint32 {
	for _, k := range c.Keys {
		if k.Name == name {
			return k.MaxPending
		}
	}
	return c.MaxPending
}

// Clone returns a deep copy of the config, so a running pool keeps its
// own snapshot while the original is reloaded or mutated.
func (c *Config) Clone() *Config {
	return deepcopy.Copy(c).(*Config)
}

// Key overrides the default pending limit for a single key.
type Key struct {
	// Key name
	Name string `yaml:"name"`

	// Maximum number of pending items for this key
	// If zero - no limit is applied beyond the counter range
	MaxPending uint32 `yaml:"max_pending,omitempty"`

	// Catches all undefined fields
	XXX map[string]interface{} `yaml:",inline"`
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (k *Key) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type plain Key
	if err := unmarshal((*plain)(k)); err != nil {
		return err
	}

	if len(k.Name) == 0 {
		return fmt.Errorf("field `name` must be set for each entry in `keys` section")
	}

	return checkOverflow(k.XXX, "keys")
}

// Loads and validates configuration from provided .yml file
func LoadFile(filename string) (*Config, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func checkOverflow(m map[string]interface{}, ctx string) error {
	if len(m) > 0 {
		var keys []string
		for k := range m {
			keys = append(keys, k)
		}
		return fmt.Errorf("unknown fields in %s: %s", ctx, strings.Join(keys, ", "))
	}
	return nil
}
