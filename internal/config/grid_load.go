package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadGrid loads the most relevant GridConfig.
//
// If the override file exists it is the only source tried; if it cannot be
// read or parsed, an error is logged and the built-in GridConfig{} is used.
// Without an override file the default file is tried the same way.
func LoadGrid(p Paths, logger *slog.Logger) GridConfig {
	cfg, path := loadLayered(p, GridFile, logger, ReadGrid, func() GridConfig { return GridConfig{} })
	for _, slot := range cfg.Equipped.OutOfBounds() {
		r, _ := cfg.Equipped.Slot(slot)
		loggerOrDefault(logger).Warn("equipment slot lies outside its panel",
			"path", path, "slot", slot.String(), "region", r.String(), "panel", cfg.Equipped.Coords.String())
	}
	return cfg
}

// ReadGrid parses one grid source. Unknown fields, missing fields, negative
// cells and unknown slot names are all errors.
func ReadGrid(path string) (GridConfig, error) {
	data, err := readSource(path)
	if err != nil {
		return GridConfig{}, err
	}
	var cfg GridConfig
	if err := decodeStrict(data, &cfg); err != nil {
		return GridConfig{}, &LoadError{Path: path, Err: err}
	}
	if err := validateGridDocument(data); err != nil {
		return GridConfig{}, &LoadError{Path: path, Err: err}
	}
	return cfg, nil
}

// WriteGrid serialises cfg to path, creating parent directories.
func WriteGrid(path string, cfg GridConfig) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode grid config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode grid config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write grid config: %w", err)
	}
	return nil
}
