package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLLoader loads blueprints from YAML files. The document shape mirrors
// the TOML format.
type YAMLLoader struct {
	fs   FileSystem
	path string
}

// NewYAMLLoader creates a new YAML loader for the given path.
func NewYAMLLoader(path string) *YAMLLoader {
	return &YAMLLoader{fs: DefaultFS(), path: path}
}

// NewYAMLLoaderWithFS creates a YAML loader with a custom file system.
func NewYAMLLoaderWithFS(fs FileSystem, path string) *YAMLLoader {
	return &YAMLLoader{fs: fs, path: path}
}

// Load reads the blueprint from the configured path.
func (l *YAMLLoader) Load() (*Blueprint, error) {
	data, err := l.fs.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, l.path)
		}
		return nil, fmt.Errorf("reading blueprint %s: %w", l.path, err)
	}
	return l.parse(l.path, data)
}

// LoadFromReader reads a blueprint from an io.Reader.
func (l *YAMLLoader) LoadFromReader(r io.Reader) (*Blueprint, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading blueprint: %w", err)
	}
	return l.parse("<reader>", data)
}

// parse parses YAML data into a Blueprint.
func (l *YAMLLoader) parse(source string, data []byte) (*Blueprint, error) {
	var bp Blueprint
	if err := yaml.Unmarshal(data, &bp); err != nil {
		return nil, &ParseError{
			Path:    source,
			Message: err.Error(),
			Err:     err,
		}
	}
	return &bp, nil
}
