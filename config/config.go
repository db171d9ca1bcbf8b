// Package config loads service configuration from an optional YAML file
// with environment variable overrides on top of built-in defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hadeel-ghalieah/vulnerabilities/util"
	"gopkg.in/yaml.v2"
)

// Config holds the runtime settings for the service
type Config struct {
	ListenAddr        string   `yaml:"listen_addr"`
	OSVAPIURL         string   `yaml:"osv_api_url"`
	DefaultEcosystems []string `yaml:"default_ecosystems"`
}

// Load reads config.yaml (or $CONFIG_FILE) when present and applies
// environment overrides. The server binds to loopback unless configured
// otherwise.
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:        "127.0.0.1:8000",
		OSVAPIURL:         "https://api.osv.dev/v1/query",
		DefaultEcosystems: []string{"Ubuntu"},
	}

	path := util.GetEnvDefault("CONFIG_FILE", "config.yaml")
	if content, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.ListenAddr = util.GetEnvDefault("LISTEN_ADDR", cfg.ListenAddr)
	cfg.OSVAPIURL = util.GetEnvDefault("OSV_API_URL", cfg.OSVAPIURL)
	if ecosystems := os.Getenv("DEFAULT_ECOSYSTEMS"); ecosystems != "" {
		cfg.DefaultEcosystems = util.SplitList(strings.Split(ecosystems, ","))
	}
	if len(cfg.DefaultEcosystems) == 0 {
		cfg.DefaultEcosystems = []string{"Ubuntu"}
	}

	return cfg, nil
}
