package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dshills/vimotion/internal/renderer/backend"
)

// Config holds all settings.
type Config struct {
	Document DocumentConfig `toml:"document" yaml:"document"`
	Cursor   CursorConfig   `toml:"cursor" yaml:"cursor"`
	Theme    ThemeConfig    `toml:"theme" yaml:"theme"`
	Log      LogConfig      `toml:"log" yaml:"log"`
}

// DocumentConfig holds the initial document.
type DocumentConfig struct {
	// Lines seeds the buffer, one element per line.
	Lines []string `toml:"lines" yaml:"lines"`
}

// CursorConfig holds cursor display settings.
type CursorConfig struct {
	// Blink enables the blinking cursor cell.
	Blink bool `toml:"blink" yaml:"blink"`
	// BlinkInterval is the time between blinks.
	BlinkInterval Duration `toml:"blink_interval" yaml:"blink_interval"`
}

// ThemeConfig holds colors as names or #rrggbb values.
type ThemeConfig struct {
	CursorForeground string `toml:"cursor_fg" yaml:"cursor_fg"`
	CursorBackground string `toml:"cursor_bg" yaml:"cursor_bg"`
	StatusForeground string `toml:"status_fg" yaml:"status_fg"`
	StatusBackground string `toml:"status_bg" yaml:"status_bg"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" yaml:"level"`
	// File is the log destination. Empty means stderr, or no logging for
	// interactive sessions.
	File string `toml:"file" yaml:"file"`
}

// DefaultLines is the document shown when none is configured.
var DefaultLines = []string{
	"Lorem e ipsum dolor sit amet, ut mei errem constituto,",
	"illud errem vidisse nam te. Nam quis scripserit at,",
	"pro posse mediocrem no, per illud dolorem ad. Ne mei",
	"diceret appetere. Ex ius malorum nominavi.",
	"",
	"Reque scriptorem no cum, in per impetus vocibus convenire.",
	"Sale splendide eam et, in atqui voluptua conclusionemque sea,",
	"eu usu quando platonem. Quodsi diceret eam eu, vel ea exerci",
	"appellantur. Labore eligendi partiendo cum no, nobis delicata",
	"qui ut, his dictas virtute ex.",
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Document: DocumentConfig{
			Lines: append([]string(nil), DefaultLines...),
		},
		Cursor: CursorConfig{
			Blink:         true,
			BlinkInterval: Duration(650 * time.Millisecond),
		},
		Theme: ThemeConfig{
			CursorForeground: "#2c3331",
			CursorBackground: "white",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// logLevels are the accepted log level names.
var logLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// Validate checks every setting and returns all failures joined.
func (c *Config) Validate() error {
	var errs []error

	if len(c.Document.Lines) == 0 {
		errs = append(errs, &ValidationError{Path: "document.lines", Message: "must have at least one line"})
	}
	if c.Cursor.BlinkInterval <= 0 {
		errs = append(errs, &ValidationError{
			Path:    "cursor.blink_interval",
			Message: "must be positive",
			Value:   c.Cursor.BlinkInterval,
		})
	}
	if !logLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, &ValidationError{
			Path:    "log.level",
			Message: "must be one of debug, info, warn, error",
			Value:   c.Log.Level,
		})
	}

	colors := []struct {
		path  string
		value string
	}{
		{"theme.cursor_fg", c.Theme.CursorForeground},
		{"theme.cursor_bg", c.Theme.CursorBackground},
		{"theme.status_fg", c.Theme.StatusForeground},
		{"theme.status_bg", c.Theme.StatusBackground},
	}
	for _, col := range colors {
		if !backend.ValidColor(col.value) {
			errs = append(errs, &ValidationError{Path: col.path, Message: "unknown color", Value: col.value})
		}
	}

	return errors.Join(errs...)
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	cp := *c
	cp.Document.Lines = append([]string(nil), c.Document.Lines...)
	return &cp
}

// Duration is a time.Duration written as a string such as "650ms".
type Duration time.Duration

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// String returns the duration string.
func (d Duration) String() string {
	return time.Duration(d).String()
}
