package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Lists Lists `yaml:"lists"`
	Log   Log   `yaml:"log"`
}

type Lists struct {
	Delimiter string `yaml:"delimiter" env:"LISTOPS_DELIMITER" env-default:","`
	DataDir   string `yaml:"dataDir" env:"LISTOPS_DATA_DIR" env-default:""`
}

type Log struct {
	Level string `yaml:"level" env:"LISTOPS_LOG_LEVEL" env-default:"info"`
}

// ReadConfig loads the config file named by CONFIG_FILE (default
// config.yaml), with env vars overriding file values. A missing file is not
// an error: env vars and defaults apply alone.
func ReadConfig() (*Config, error) {
	filename := getenv("CONFIG_FILE", "config.yaml")

	var cfg Config
	err := cleanenv.ReadConfig(filename, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("config file not found, using env/defaults", "file", filename)
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read config from env: %w", err)
		}
		return &cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	return &cfg, nil
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if len(value) == 0 {
		return fallback
	}
	return value
}
