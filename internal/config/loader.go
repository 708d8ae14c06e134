package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "chainblast.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.chainblast/configs/chainblast.yaml ->
// ./configs/chainblast.yaml -> embedded default.
// Files only need to contain the keys they override.
func Load(customPath string) (ChainBlastConfig, error) {
	cfg := embeddedDefault()

	// A custom path must exist and parse.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Other locations are best effort; unreadable files fall through.
	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		overlay := cfg
		if err := yaml.Unmarshal(data, &overlay); err != nil {
			continue
		}
		return overlay, overlay.Validate()
	}

	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg ChainBlastConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

func embeddedDefault() ChainBlastConfig {
	var cfg ChainBlastConfig
	if err := yaml.Unmarshal(defaultChainBlastYAML, &cfg); err != nil {
		return DefaultChainBlastConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chainblast", "configs", filename)
}
