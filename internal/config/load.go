package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfigDir overrides the base directory holding default/ and override/.
const EnvConfigDir = "DUNGEON_CONFIG_DIR"

// DefaultBaseDir is used when EnvConfigDir is unset.
const DefaultBaseDir = "config"

// Paths locates the two configuration sources.
type Paths struct {
	Default  string // shipped sources
	Override string // player or modder edits; preferred when a file exists
}

// ResolvePaths returns the default and override directories under base.
func ResolvePaths(base string) Paths {
	return Paths{
		Default:  filepath.Join(base, "default"),
		Override: filepath.Join(base, "override"),
	}
}

// PathsFromEnv resolves Paths from EnvConfigDir, falling back to DefaultBaseDir.
func PathsFromEnv() Paths {
	base := os.Getenv(EnvConfigDir)
	if base == "" {
		base = DefaultBaseDir
	}
	return ResolvePaths(base)
}

// LoadError reports a source that could not be read or did not match its schema.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string { return fmt.Sprintf("load %s: %v", e.Path, e.Err) }

func (e *LoadError) Unwrap() error { return e.Err }

// source picks the file to load: the override if it exists, otherwise the
// default. An override that exists is never combined with the default.
func (p Paths) source(file string) string {
	if p.Override != "" {
		override := filepath.Join(p.Override, file)
		if _, err := os.Stat(override); err == nil {
			return override
		}
	}
	return filepath.Join(p.Default, file)
}

// loadLayered reads file from the preferred source with read, or logs the
// failure and returns fallback().
func loadLayered[T any](p Paths, file string, logger *slog.Logger, read func(path string) (T, error), fallback func() T) (T, string) {
	path := p.source(file)
	v, err := read(path)
	if err != nil {
		loggerOrDefault(logger).Error("failed to load config file, falling back to built-in defaults",
			"path", path, "error", err)
		return fallback(), path
	}
	return v, path
}

// decodeStrict decodes exactly one YAML document into out. Unknown fields,
// empty input and trailing documents are all errors.
func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty document")
		}
		return err
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return err
		}
		return errors.New("unexpected second document")
	}
	return nil
}

func readSource(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return data, nil
}

func loggerOrDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
