package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// assetsPrefix is the URL path under which the API serves stored objects.
const assetsPrefix = "/assets/"

// LocalStore is a filesystem-backed ObjectStore. Objects live under baseDir
// and are served at <baseURL>/assets/<path>.
type LocalStore struct {
	baseDir string
	baseURL string
}

func NewLocalStore(baseDir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create assets directory: %w", err)
	}
	return &LocalStore{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (s *LocalStore) Save(ctx context.Context, storagePath string, r io.Reader) (string, error) {
	filePath, err := s.safeJoin(storagePath)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create object directory: %w", err)
	}

	f, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create object file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(filePath)
		return "", fmt.Errorf("failed to write object: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(filePath)
		return "", fmt.Errorf("failed to close object file: %w", err)
	}

	return s.baseURL + assetsPrefix + path.Clean(storagePath), nil
}

func (s *LocalStore) Delete(ctx context.Context, storagePath string) error {
	filePath, err := s.safeJoin(storagePath)
	if err != nil {
		return err
	}
	if err := os.Remove(filePath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("object not found: %s", storagePath)
		}
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// PathFromURL parses a retrieval URL back into a storage path. Malformed
// input yields "" rather than an error: asset deletion is always a cleanup
// side effect and must never fail the operation that triggered it.
func (s *LocalStore) PathFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	idx := strings.Index(u.Path, assetsPrefix)
	if idx < 0 {
		return ""
	}
	p := u.Path[idx+len(assetsPrefix):]
	if p == "" || strings.Contains(p, "..") {
		return ""
	}
	return p
}

// safeJoin resolves storagePath relative to baseDir and rejects traversal.
func (s *LocalStore) safeJoin(storagePath string) (string, error) {
	absBase, err := filepath.Abs(s.baseDir)
	if err != nil {
		return "", fmt.Errorf("invalid base path: %w", err)
	}

	absPath, err := filepath.Abs(filepath.Join(s.baseDir, filepath.FromSlash(storagePath)))
	if err != nil {
		return "", fmt.Errorf("invalid object path: %w", err)
	}

	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid object path: %s", storagePath)
	}
	return absPath, nil
}
