package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/calumma/wfctl/internal/output"
)

// configFile is the global configuration file name under Dir().
const configFile = "config.yml"

// Config is the user's global configuration. All fields are optional;
// command-line flags take precedence over anything set here.
type Config struct {
	// DefaultBackend is used by `wfctl init` when --backend is omitted.
	DefaultBackend string `yaml:"default_backend,omitempty"`
	// Committer is the default identity recorded on saves.
	Committer CommitterConfig `yaml:"committer,omitempty"`
}

// CommitterConfig is the configured commit identity.
type CommitterConfig struct {
	Name  string `yaml:"name,omitempty"`
	Email string `yaml:"email,omitempty"`
}

// Load reads the global configuration. A missing file yields the zero
// Config; a malformed file is a user error.
func Load() (*Config, error) {
	return loadFrom(filepath.Join(Dir(), configFile))
}

func loadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, output.NewSystemErrorWithCause("failed to read config file: "+path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, output.NewUserError("failed to parse config file " + path + ": " + err.Error())
	}
	return &cfg, nil
}

// Save writes the global configuration, creating Dir() if needed.
func Save(cfg *Config) error {
	dir := Dir()
	if dir == "" {
		return output.NewSystemError("cannot determine config directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return output.NewSystemErrorWithCause("failed to create config directory", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return output.NewSystemError("failed to serialize config: " + err.Error())
	}
	if err := atomicWrite(filepath.Join(dir, configFile), data); err != nil {
		return output.NewSystemErrorWithCause("failed to write config file", err)
	}
	return nil
}
