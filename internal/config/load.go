package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. KVIZ_BANK.
const EnvPrefix = "KVIZ"

// Load reads the config file at path, applies .env and environment
// overrides, then normalizes and validates the result. An empty path loads
// defaults and environment only.
func Load(path string) (Config, error) {
	v := newViper()
	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := applyDotEnv(v, RootFromConfigPath(path)); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.UnmarshalExact(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.Path = path

	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Discover finds the nearest config file from startDir and loads it. When
// none exists the defaults are returned.
func Discover(startDir string) (Config, error) {
	path, err := FindConfigPath(startDir)
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			return Load("")
		}
		return Config{}, err
	}
	return Load(path)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("version", 1)
	v.SetDefault("env", "local")
	v.SetDefault("bank", DefaultBank)
	v.SetDefault("ui", UIAuto)
	v.SetDefault("no_color", false)
	v.SetDefault("replay", ReplayAsk)
	v.SetDefault("seed", 0)
	v.SetDefault("log_file", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}
