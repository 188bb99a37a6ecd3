package config

import (
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"twofifty-server/internal/util"
)

// Config provides configuration for the Two-Fifty server
type Config struct {
	loaded bool

	Redis struct {
		Addr     string `yaml:"addr" envconfig:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	Room struct {
		// TTLMinutes is how long an inactive room survives in the external store
		TTLMinutes int `yaml:"ttlMinutes" envconfig:"ttl_minutes"`
		MinPlayers int `yaml:"minPlayers" envconfig:"min_players"`
	} `yaml:"room"`

	Log struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
}

var config Config

// DefaultConfig returns the configuration defaults before any file or
// environment overrides are applied
func DefaultConfig() Config {
	var c Config
	c.Redis.Addr = "localhost:6379"
	c.Room.TTLMinutes = 120
	c.Room.MinPlayers = 4
	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration, starting with defaults, then the YAML
// file (if one exists), and finally environment overrides
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("TWOFIFTY_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("twofifty", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

// RoomTTL returns the room expiry as a duration
func (c Config) RoomTTL() time.Duration {
	return time.Duration(c.Room.TTLMinutes) * time.Minute
}
