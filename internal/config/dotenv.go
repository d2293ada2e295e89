package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DotEnvFileName is read from the project root for KVIZ_* overrides.
const DotEnvFileName = ".env"

// applyDotEnv feeds KVIZ_* entries from root/.env into v. Variables already
// present in the process environment win.
func applyDotEnv(v *viper.Viper, root string) error {
	path := filepath.Join(root, DotEnvFileName)
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	prefix := EnvPrefix + "_"
	for name, value := range values {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if _, set := os.LookupEnv(name); set {
			continue
		}
		v.Set(strings.ToLower(strings.TrimPrefix(name, prefix)), value)
	}
	return nil
}
