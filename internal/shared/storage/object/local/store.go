package local

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"jobfit-backend/internal/shared/storage/object"
)

// Store keeps objects on the local filesystem under a root directory.
// Content type is stored in a sidecar .meta file next to each object.
type Store struct {
	root string
}

type sidecar struct {
	ContentType string `json:"contentType"`
}

func New(root string) (*Store, error) {
	if strings.TrimSpace(root) == "" {
		root = "data/objects"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create object store root: %w", err)
	}
	return &Store{root: root}, nil
}

func (s *Store) Put(ctx context.Context, key string, contentType string, body io.Reader) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create object dir: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create object file: %w", err)
	}
	defer file.Close()
	if _, err := io.Copy(file, body); err != nil {
		return fmt.Errorf("write object file: %w", err)
	}
	meta, err := json.Marshal(sidecar{ContentType: contentType})
	if err != nil {
		return err
	}
	if err := os.WriteFile(path+".meta", meta, 0o644); err != nil {
		return fmt.Errorf("write object meta: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) (io.ReadCloser, string, error) {
	path, err := s.resolve(key)
	if err != nil {
		return nil, "", err
	}
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", object.ErrNotFound
		}
		return nil, "", fmt.Errorf("open object file: %w", err)
	}
	contentType := ""
	if raw, err := os.ReadFile(path + ".meta"); err == nil {
		var meta sidecar
		if json.Unmarshal(raw, &meta) == nil {
			contentType = meta.ContentType
		}
	}
	return file, contentType, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete object file: %w", err)
	}
	if err := os.Remove(path + ".meta"); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete object meta: %w", err)
	}
	return nil
}

func (s *Store) resolve(key string) (string, error) {
	clean := filepath.Clean(strings.TrimSpace(key))
	if clean == "" || clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	return filepath.Join(s.root, clean), nil
}
