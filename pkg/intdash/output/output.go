// Package output writes report artifacts to disk.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrWriteFailed indicates the artifact could not be written.
var ErrWriteFailed = errors.New("write failed")

// WriteError records which step of writing path failed.
type WriteError struct {
	Path string
	Op   string // "create", "write", "sync", "close", "chmod", "rename"
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns both ErrWriteFailed and the underlying cause.
func (e *WriteError) Unwrap() []error {
	return []error{ErrWriteFailed, e.Err}
}

// NewWriteError creates a new WriteError.
func NewWriteError(path, op string, err error) *WriteError {
	return &WriteError{
		Path: path,
		Op:   op,
		Err:  err,
	}
}

// WriteFile replaces path with data. The data goes to a temporary file in
// the same directory which is renamed over path once synced, so a failed
// write leaves any previous file untouched.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return NewWriteError(path, "create", err)
	}
	tmpName := tmp.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return NewWriteError(path, "write", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return NewWriteError(path, "sync", err)
	}
	if err := tmp.Close(); err != nil {
		return NewWriteError(path, "close", err)
	}
	// CreateTemp uses 0600; reports are meant to be shared.
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return NewWriteError(path, "chmod", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return NewWriteError(path, "rename", err)
	}
	cleanup = false
	return nil
}

// ToJSON serializes v to JSON. Pretty output is indented by two spaces.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
