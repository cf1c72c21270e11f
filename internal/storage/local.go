package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// LocalDir archives uploads under a directory on disk. Used when no
// R2 credentials are configured.
type LocalDir struct {
	root string
}

func NewLocalDir(root string) *LocalDir {
	return &LocalDir{root: root}
}

func (l *LocalDir) Upload(ctx context.Context, key string, body io.Reader) (string, error) {
	path := filepath.Join(l.root, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		os.Remove(path)
		return "", err
	}

	return path, nil
}
