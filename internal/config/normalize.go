package config

import (
	"path/filepath"
	"strings"
)

// Normalize trims values, lowercases enums and resolves relative paths.
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}
	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))
	cfg.UI = strings.ToLower(strings.TrimSpace(cfg.UI))
	if cfg.UI == "" {
		cfg.UI = UIAuto
	}
	cfg.Replay = strings.ToLower(strings.TrimSpace(cfg.Replay))
	if cfg.Replay == "" {
		cfg.Replay = ReplayAsk
	}
	cfg.Bank = resolvePath(cfg.Root(), cfg.Bank)
	cfg.LogFile = resolvePath(cfg.Root(), cfg.LogFile)
}

func resolvePath(root, value string) string {
	value = strings.TrimSpace(value)
	if value == "" || filepath.IsAbs(value) || root == "." {
		return value
	}
	return filepath.Join(root, value)
}
