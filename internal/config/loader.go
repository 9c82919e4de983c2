package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"wsld/internal/common/fsutil"
)

// Config holds runtime parameters for the daemon.
// Zero values mean "unspecified" and will be replaced by defaults in main.
type Config struct {
	Addr                string `json:"addr" yaml:"addr" toml:"addr" envconfig:"ADDR"`
	HostBackend         string `json:"host_backend" yaml:"host_backend" toml:"host_backend" envconfig:"HOST_BACKEND"`
	WSLBinary           string `json:"wsl_binary" yaml:"wsl_binary" toml:"wsl_binary" envconfig:"WSL_BINARY"`
	DefinitionsPath     string `json:"definitions_path" yaml:"definitions_path" toml:"definitions_path" envconfig:"DEFINITIONS_PATH"`
	PollIntervalSeconds int    `json:"poll_interval_seconds" yaml:"poll_interval_seconds" toml:"poll_interval_seconds" envconfig:"POLL_INTERVAL_SECONDS"`
	LogLevel            string `json:"log_level" yaml:"log_level" toml:"log_level" envconfig:"LOG_LEVEL"`
	LogFormat           string `json:"log_format" yaml:"log_format" toml:"log_format" envconfig:"LOG_FORMAT"`
	CORSOrigins         string `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins" envconfig:"CORS_ORIGINS"`
	MaxBodyBytes        int64  `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes" envconfig:"MAX_BODY_BYTES"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	path, err := fsutil.ExpandHome(path)
	if err != nil {
		return cfg, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

// FromEnv overlays WSLD_* environment variables onto cfg. Variables that are
// set win over file values; unset ones leave cfg untouched.
func FromEnv(cfg Config) (Config, error) {
	if err := envconfig.Process("WSLD", &cfg); err != nil {
		return cfg, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
