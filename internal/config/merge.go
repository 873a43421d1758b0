package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectOverlayFile is the per-directory overlay merged over the global config.
const ProjectOverlayFile = ".pagenav.yaml"

// Top-level YAML config key names used for shallow merge.
const (
	keySchemaVersion = "schema_version"
	keyPagination    = "pagination"
	keyLogging       = "logging"
)

// knownTopLevelKeys lists the YAML keys that correspond to exported Config fields.
// Keys not in this list are silently ignored during merge.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var knownTopLevelKeys = map[string]bool{
	keySchemaVersion: true,
	keyPagination:    true,
	keyLogging:       true,
}

// ShallowMergeYAML loads a YAML file and merges its top-level keys onto
// the target Config. Keys present in the overlay replace entire sections
// in the target. Keys absent in the overlay are left unchanged.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	var overlay map[string]interface{}
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	// Empty or comment-only file: nothing to merge.
	if len(overlay) == 0 {
		return nil
	}

	for key, value := range overlay {
		if !knownTopLevelKeys[key] {
			continue
		}

		sectionBytes, marshalErr := yaml.Marshal(value)
		if marshalErr != nil {
			return fmt.Errorf("re-marshalling overlay section %q: %w", key, marshalErr)
		}

		if err = unmarshalSection(target, key, sectionBytes); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, err)
		}
	}

	return nil
}

// unmarshalSection unmarshals one section into a fresh zero value and
// assigns it, so the overlay replaces the section instead of merging into it.
func unmarshalSection(target *Config, key string, data []byte) error {
	switch key {
	case keySchemaVersion:
		var v string
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.SchemaVersion = v
		return nil
	case keyPagination:
		var v PaginationConfig
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Pagination = v
		return nil
	case keyLogging:
		var v LoggingConfig
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Logging = v
		return nil
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
}

// LoadWithOverlay is LoadWithEnv followed by a shallow merge of the overlay
// in dir, when one exists. Environment overrides from lookupEnv still win
// over both files.
func LoadWithOverlay(path, dir string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg, err := LoadWithEnv(path, lookupEnv)
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return cfg, nil
	}

	overlayPath := filepath.Join(dir, ProjectOverlayFile)
	if _, statErr := os.Stat(overlayPath); statErr != nil {
		return cfg, nil
	}
	if err = ShallowMergeYAML(cfg, overlayPath); err != nil {
		return nil, err
	}
	if err = cfg.ApplyEnv(lookupEnv); err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
