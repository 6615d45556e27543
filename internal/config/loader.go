package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the conventional config file location, relative to the
// working directory.
const DefaultPath = "config.yaml"

// Load reads and parses the configuration file at path. Any failure here is
// fatal to the caller: the dashboard cannot run without a node endpoint and
// an application list, so errors are propagated rather than defaulted.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if f.Config == nil {
		return Config{}, fmt.Errorf("config file %s has no top-level \"config\" key", path)
	}

	cfg := *f.Config
	if err := validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.RPCEndpoint == "" {
		return fmt.Errorf("rpc_endpoint must be set")
	}
	if len(cfg.Gateways) == 0 {
		return fmt.Errorf("at least one gateway must be configured")
	}
	return nil
}
