package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `version: 1
env: local
bank: "questions.txt"
ui: auto
no_color: false
replay: ask
seed: 0
`

const sampleBank = `What is 2+2?
3
4
5
1

Which planet is known as the red planet?
Venus
Mars
Jupiter
1

Which of these is a prime number?\nPick one.
9
21
7
2
`

// Scaffold writes a starter config under root and a sample bank unless one
// already exists. It returns the files it wrote.
func Scaffold(root string) ([]string, error) {
	if root == "" {
		return nil, fmt.Errorf("root directory is required")
	}
	configPath := ConfigPath(root)
	if err := ensureAbsent(configPath); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return nil, fmt.Errorf("write config file: %w", err)
	}
	written := []string{configPath}

	bankPath := filepath.Join(root, DefaultBank)
	if _, err := os.Stat(bankPath); os.IsNotExist(err) {
		if err := os.WriteFile(bankPath, []byte(sampleBank), 0o644); err != nil {
			return written, fmt.Errorf("write sample bank: %w", err)
		}
		written = append(written, bankPath)
	} else if err != nil {
		return written, fmt.Errorf("stat sample bank: %w", err)
	}
	return written, nil
}

func ensureAbsent(path string) error {
	info, err := os.Stat(path)
	if err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", path)
		}
		return fmt.Errorf("config file already exists at %q", path)
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return nil
}
