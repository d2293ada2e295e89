package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"kviz/internal/config"
)

// loadConfig loads an explicit config file or discovers one from CWD.
func loadConfig(configPath string) (config.Config, error) {
	if strings.TrimSpace(configPath) == "" {
		return config.Discover("")
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("resolve config path: %w", err)
	}
	return config.Load(abs)
}

// resolveBankPath picks the bank argument over the configured bank.
func resolveBankPath(cfg config.Config, arg string) (string, error) {
	if strings.TrimSpace(arg) == "" {
		return cfg.Bank, nil
	}
	abs, err := filepath.Abs(arg)
	if err != nil {
		return "", fmt.Errorf("resolve bank path: %w", err)
	}
	return abs, nil
}
