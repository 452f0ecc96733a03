// Package runconfig loads the CLI/benchmark binaries' configuration
// file with viper, hot-reloading it on change the same way the
// teacher's service configs do, trimmed down to the settings a local
// scoring tool actually needs (no network, database, or service
// discovery sections — this binary has none of those).
package runconfig

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Conf is the process-wide configuration, populated by Init.
var Conf *Config

// Config is the full configuration file shape.
type Config struct {
	AppName string    `mapstructure:"appName"`
	Log     LogConf   `mapstructure:"log"`
	Ruleset string    `mapstructure:"ruleset"`
	Cache   CacheConf `mapstructure:"cache"`
}

// LogConf controls obslog.Init.
type LogConf struct {
	Level string `mapstructure:"level"`
}

// CacheConf sizes the decomposer memoization cache in scorecache.
type CacheConf struct {
	MaxCostBytes int64 `mapstructure:"maxCostBytes"`
	TTLSeconds   int   `mapstructure:"ttlSeconds"`
}

// Init reads configFile and keeps Conf synced to it for the life of
// the process via fsnotify.
func Init(configFile string) error {
	Conf = &Config{
		AppName: "fivesou",
		Log:     LogConf{Level: "info"},
		Ruleset: "Default",
		Cache:   CacheConf{MaxCostBytes: 1 << 26, TTLSeconds: 300},
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.WatchConfig()
	v.OnConfigChange(func(in fsnotify.Event) {
		if err := v.Unmarshal(Conf); err != nil {
			obslogFatal("runconfig: failed to reload %s: %v", configFile, err)
		}
	})

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("runconfig: reading %s: %w", configFile, err)
	}
	if err := v.Unmarshal(Conf); err != nil {
		return fmt.Errorf("runconfig: parsing %s: %w", configFile, err)
	}
	return nil
}

// obslogFatal is indirected so this package doesn't import obslog
// directly (avoiding a config<->log import cycle if obslog ever wants
// config-driven behavior); it just panics, which a OnConfigChange
// callback running on its own goroutine can't otherwise surface.
func obslogFatal(format string, args ...any) {
	panic(fmt.Sprintf(format, args...))
}
