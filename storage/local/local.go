// Package local implements storage.Storage on the local filesystem.
package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/shrutlekh/shrutlekh/storage"
	"github.com/shrutlekh/shrutlekh/util"
)

// Storage stores uploaded files in a single directory under unique keys.
type Storage struct {
	basePath string
}

// NewStorage creates a local filesystem store rooted at basePath.
func NewStorage(basePath string) (*Storage, error) {
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve base path: %w", err)
	}
	if err := os.MkdirAll(abs, 0o750); err != nil {
		return nil, fmt.Errorf("storage: create base directory: %w", err)
	}
	return &Storage{basePath: abs}, nil
}

// BasePath returns the absolute root directory of the store.
func (s *Storage) BasePath() string { return s.basePath }

// Save writes reader to a new file whose key is a UUID joined with the
// sanitized original name. Keys never contain path separators, so a
// hostile upload name cannot escape the base directory.
func (s *Storage) Save(_ context.Context, name string, reader io.Reader) (*storage.FileInfo, error) {
	suffix := util.SanitizeFilename(name)
	if suffix == "" {
		suffix = "upload"
	}
	key := uuid.NewString() + "_" + suffix

	fullPath := filepath.Join(s.basePath, key)
	f, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("storage: create file: %w", err)
	}

	size, err := io.Copy(f, reader)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(fullPath)
		return nil, fmt.Errorf("storage: write file: %w", err)
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		return nil, fmt.Errorf("storage: stat file: %w", err)
	}

	return &storage.FileInfo{
		Key:     key,
		Path:    fullPath,
		Size:    size,
		ModTime: info.ModTime(),
	}, nil
}

// Open returns a reader for the object with the given key.
func (s *Storage) Open(_ context.Context, key string) (io.ReadCloser, error) {
	fullPath, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("storage: object not found: %s", key)
		}
		return nil, fmt.Errorf("storage: open file: %w", err)
	}
	return f, nil
}

// Delete removes the object with the given key. A missing key is not an error.
func (s *Storage) Delete(_ context.Context, key string) error {
	fullPath, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: delete file: %w", err)
	}
	return nil
}

// Exists checks whether an object exists under the given key.
func (s *Storage) Exists(_ context.Context, key string) (bool, error) {
	fullPath, err := s.resolve(key)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(fullPath); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("storage: stat file: %w", err)
	}
	return true, nil
}

// List returns metadata for all stored objects, oldest first.
func (s *Storage) List(_ context.Context) ([]storage.FileInfo, error) {
	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		return nil, fmt.Errorf("storage: list files: %w", err)
	}

	files := make([]storage.FileInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, storage.FileInfo{
			Key:     e.Name(),
			Path:    filepath.Join(s.basePath, e.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].ModTime.Before(files[j].ModTime)
	})
	return files, nil
}

// resolve maps a key to an absolute path inside the base directory,
// rejecting keys that would escape it.
func (s *Storage) resolve(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key != filepath.Base(key) {
		return "", fmt.Errorf("storage: invalid key: %q", key)
	}
	return filepath.Join(s.basePath, key), nil
}

// compile-time check
var _ storage.Storage = (*Storage)(nil)
