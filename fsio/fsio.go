// Package fsio is the byte source/sink used by Document file
// operations. It is deliberately small: whole-file reads and writes,
// with intermediate directories created on write.
package fsio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	ErrNotFound = errors.New("file not found")
	ErrIO       = errors.New("i/o error")
)

func ReadAll(path string) ([]byte, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrIO, path, err)
	}
	return d, nil
}

func WriteAll(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrIO, dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrIO, path, err)
	}
	return nil
}
