package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"peerholdem/internal/util"
	"peerholdem/pkg/poker/texasholdem"
)

// Config provides configuration for the peerholdem binaries
type Config struct {
	loaded bool
	Addr   string `yaml:"addr" envconfig:"addr"`
	Log    struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	} `yaml:"cors"`
	Table texasholdem.Options `yaml:"table"`
}

var config Config

// DefaultConfig returns the configuration used when no file or environment overrides it
func DefaultConfig() Config {
	cfg := Config{
		Addr:  ":5000",
		Table: texasholdem.DefaultOptions(),
	}

	cfg.Log.Level = "info"
	cfg.CORS.AllowedOrigins = []string{"*"}

	return cfg
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

// Load will load the configuration
// The file named by PEERHOLDEM_CONFIG_FILE (config.yaml by default) is optional; PEERHOLDEM_* environment
// variables take precedence over it.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("PEERHOLDEM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return err
	default:
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("peerholdem", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
