package config

import (
	"strconv"
	"strings"
	"time"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "VIMOTION_"

// LookupFunc looks up an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// envSetter applies one environment variable to a config.
type envSetter func(cfg *Config, value string) error

// envMapping maps environment variables to settings.
// Note: Empty string values are treated as valid values, not as unset.
var envMapping = map[string]envSetter{
	EnvPrefix + "LOG_LEVEL": func(cfg *Config, v string) error {
		cfg.Log.Level = strings.ToLower(v)
		return nil
	},
	EnvPrefix + "LOG_FILE": func(cfg *Config, v string) error {
		cfg.Log.File = v
		return nil
	},
	EnvPrefix + "BLINK": func(cfg *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		cfg.Cursor.Blink = b
		return nil
	},
	EnvPrefix + "BLINK_INTERVAL": func(cfg *Config, v string) error {
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		cfg.Cursor.BlinkInterval = Duration(d)
		return nil
	},
}

// EnvNames returns the recognized environment variable names.
func EnvNames() []string {
	names := make([]string, 0, len(envMapping))
	for name := range envMapping {
		names = append(names, name)
	}
	return names
}

// ApplyEnv applies environment overrides found by lookup to cfg.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	if lookup == nil {
		return nil
	}
	for name, set := range envMapping {
		v, ok := lookup(name)
		if !ok {
			continue
		}
		if err := set(cfg, v); err != nil {
			return &EnvError{Name: name, Value: v, Err: err}
		}
	}
	return nil
}
