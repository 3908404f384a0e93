package config

import (
	"errors"
	"fmt"
)

// Errors returned by blueprint loading and plan building.
var (
	// ErrFileNotFound indicates the blueprint file doesn't exist.
	ErrFileNotFound = errors.New("blueprint file not found")

	// ErrUnsupportedFormat indicates an unrecognized blueprint extension.
	ErrUnsupportedFormat = errors.New("unsupported blueprint format")

	// ErrUnknownLayer indicates a button references an undeclared layer.
	ErrUnknownLayer = errors.New("unknown layer")

	// ErrUnknownBehaviorName indicates an unrecognized behavior name.
	ErrUnknownBehaviorName = errors.New("unknown behavior name")
)

// ParseError represents an error while parsing a blueprint file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// EntryError describes an invalid blueprint entry.
type EntryError struct {
	// Section is the blueprint section ("layers" or "buttons").
	Section string
	// Index is the entry's position within the section.
	Index int
	// Message describes what is wrong.
	Message string
	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	return fmt.Sprintf("%s[%d]: %s", e.Section, e.Index, e.Message)
}

// Unwrap returns the underlying error.
func (e *EntryError) Unwrap() error {
	return e.Err
}
