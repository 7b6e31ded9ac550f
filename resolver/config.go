package resolver

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ConfigPrefix marks argument keys read from configuration.
const ConfigPrefix = "config:"

// Config resolves "config:path.to.value" keys against a viper instance.
type Config struct {
	v *viper.Viper
}

// NewConfig creates a configuration resolver backed by v.
func NewConfig(v *viper.Viper) *Config {
	return &Config{v: v}
}

func (c *Config) CanResolve(key string) bool {
	return strings.HasPrefix(key, ConfigPrefix)
}

func (c *Config) Resolve(key string) (any, error) {
	path := strings.TrimPrefix(key, ConfigPrefix)
	if !c.Validate(key) {
		return nil, fmt.Errorf("resolver: configuration key %s is not set", path)
	}
	return c.v.Get(path), nil
}

func (c *Config) Validate(key string) bool {
	path := strings.TrimPrefix(key, ConfigPrefix)
	return path != "" && c.v.IsSet(path)
}
