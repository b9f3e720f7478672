package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// DefaultBackendURL is the public execution service instance.
const DefaultBackendURL = "https://tio.run"

// configFileUsed tracks the config file picked up by the last Load call.
var configFileUsed string

// findConfigFile finds the config file to use.
// Priority: explicit path > ./quickrun.yaml > $XDG_CONFIG_HOME/quickrun/
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	candidates := []string{
		"quickrun.yaml",
		"quickrun.yml",
		filepath.Join(xdg.ConfigHome, "quickrun", "quickrun.yaml"),
		filepath.Join(xdg.ConfigHome, "quickrun", "quickrun.yml"),
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// Load loads configuration from file, environment variables, and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"database":      DefaultDatabasePath(),
		"backend_url":   DefaultBackendURL,
		"history_limit": DefaultHistoryLimit,
		"verbose":       false,
		"color":         DefaultColor,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Environment variables: QUICKRUN_BACKEND_URL -> backend_url
	if err := k.Load(env.Provider("QUICKRUN_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "QUICKRUN_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags (highest priority, only ones explicitly set)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}

// FileUsed returns the path of the config file picked up by the last Load
// call, if any.
func FileUsed() string {
	return configFileUsed
}
