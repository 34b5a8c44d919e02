// Package config reads the optional portal settings file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/sporteventsagency-netizen/futbalito-sub001/model"
	"gopkg.in/yaml.v3"
)

// LoadPortalConfig reads the YAML file at path on top of the default portal
// settings. An empty path or a missing file yields the defaults.
func LoadPortalConfig(path string) (model.PortalConfig, error) {
	cfg := model.DefaultPortalConfig()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("error reading portal config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return model.DefaultPortalConfig(), fmt.Errorf("error parsing portal config %s: %w", path, err)
	}
	return cfg, nil
}
