package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config is the only persisted config file schema. It carries display
// preferences for the transcript UI; engine settings live elsewhere.
type Config struct {
	Spinner  string `toml:"spinner"`
	LogPath  string `toml:"log_path"`
	Model    string `toml:"model"`
	Provider string `toml:"provider"`
	Source   string `toml:"-"`
}

func Default() Config {
	return Config{Spinner: "diamond"}
}

func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".coder", "config.toml")
}

func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, errors.New("config path is empty and $HOME is not set")
	}
	cfg.Source = path

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(cfg), nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return cfg, err
	}
	return applyEnv(cfg), nil
}

func applyEnv(cfg Config) Config {
	if env := strings.TrimSpace(os.Getenv("CODER_SPINNER")); env != "" {
		cfg.Spinner = env
	}
	if env := strings.TrimSpace(os.Getenv("CODER_LOG_PATH")); env != "" {
		cfg.LogPath = env
	}
	return cfg
}

// ApplyKVOverrides applies free-form -c key=value overrides.
func ApplyKVOverrides(cfg Config, overrides []string) Config {
	if len(overrides) == 0 {
		return cfg
	}
	for _, raw := range overrides {
		parts := strings.SplitN(raw, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		switch key {
		case "spinner":
			cfg.Spinner = val
		case "log_path":
			cfg.LogPath = val
		case "model":
			cfg.Model = val
		case "provider":
			cfg.Provider = val
		}
	}
	return cfg
}
