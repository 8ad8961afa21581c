// Package config provides the configuration system for vimotion.
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority (applied by main)
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← VIMOTION_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # File Format
//
//	[document]
//	lines = ["first line", "", "third line"]
//
//	[cursor]
//	blink = true
//	blink_interval = "650ms"
//
//	[theme]
//	cursor_fg = "#2c3331"
//	cursor_bg = "white"
//
//	[log]
//	level = "info"
//	file = "/tmp/vimotion.log"
//
// Files ending in .yaml or .yml are read as YAML with the same keys.
// A missing file is not an error. Unknown keys are.
//
// # Live Reload
//
// Watcher observes the config file with fsnotify and hands each successfully
// reloaded Config to a callback. Rapid successive writes are debounced into
// a single reload.
package config
