package config

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Loader is the interface for blueprint loaders.
type Loader interface {
	// Load reads a blueprint from the source.
	Load() (*Blueprint, error)
}

// ReaderLoader is the interface for loaders that read from an io.Reader.
type ReaderLoader interface {
	// LoadFromReader reads a blueprint from a reader.
	LoadFromReader(r io.Reader) (*Blueprint, error)
}

// FileSystem is an abstraction for file system operations, allowing
// in-memory file systems in tests.
type FileSystem interface {
	fs.FS
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// Open implements fs.FS.
func (OSFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}

// LoadFile loads a blueprint, picking the format by file extension.
// Lua blueprints are not handled here; the script package owns them.
func LoadFile(path string) (*Blueprint, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return NewTOMLLoader(path).Load()
	case ".yaml", ".yml":
		return NewYAMLLoader(path).Load()
	default:
		return nil, &ParseError{Path: path, Message: "unsupported blueprint format", Err: ErrUnsupportedFormat}
	}
}
