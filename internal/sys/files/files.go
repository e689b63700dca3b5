// Package files provides utilities for working with files/directories.
package files

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DirPerm  = 0o755
	FilePerm = 0o644
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrFileExists   = errors.New("file already exists")
	ErrPathEmpty    = errors.New("path is empty")
)

// Exists checks if a file exists.
func Exists(s string) bool {
	_, err := os.Stat(s)
	return !os.IsNotExist(err)
}

// mkdir creates a new directory at the specified path.
func mkdir(s string) error {
	if Exists(s) {
		return nil
	}

	slog.Debug("creating path", "path", s)
	if err := os.MkdirAll(s, DirPerm); err != nil {
		return fmt.Errorf("creating %s: %w", s, err)
	}

	return nil
}

// MkdirAll creates all the given paths.
func MkdirAll(s ...string) error {
	for _, path := range s {
		if err := mkdir(path); err != nil {
			return err
		}
	}

	return nil
}

// YamlWrite marshals v into the file at p, creating parent dirs.
func YamlWrite[T any](p string, v *T, force bool) error {
	if p == "" {
		return ErrPathEmpty
	}

	if Exists(p) && !force {
		return fmt.Errorf("%w: %q", ErrFileExists, p)
	}

	if err := MkdirAll(filepath.Dir(p)); err != nil {
		return err
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("error marshalling YAML: %w", err)
	}

	if err := os.WriteFile(p, data, FilePerm); err != nil {
		return fmt.Errorf("error writing to file: %w", err)
	}

	slog.Debug("YamlWrite: file saved", "path", p)

	return nil
}

// YamlRead unmarshals the YAML file at p into v.
func YamlRead[T any](p string, v *T) error {
	if !Exists(p) {
		return fmt.Errorf("%w: %q", ErrFileNotFound, p)
	}

	content, err := os.ReadFile(p)
	if err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}

	if err := yaml.Unmarshal(content, v); err != nil {
		return fmt.Errorf("error unmarshalling YAML: %w", err)
	}

	slog.Debug("YamlRead", "path", p)

	return nil
}
