package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

// Local stores uploads in a single shared directory on disk. Concurrent
// writes to the same name (the resume case) are last write wins.
type Local struct {
	dir string
}

func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory, %w", err)
	}
	return &Local{dir: dir}, nil
}

func (l *Local) Save(_ context.Context, fh *multipart.FileHeader, name string) (string, error) {
	name = filepath.Base(name)

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(l.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return PublicPath(name), nil
}

func (l *Local) Resolve(name string) (Location, error) {
	name = filepath.Clean(name)
	if name == "." || strings.Contains(name, "..") || filepath.IsAbs(name) {
		return Location{}, ErrNotExist
	}

	p := filepath.Join(l.dir, name)
	info, err := os.Stat(p)
	if err != nil || info.IsDir() {
		return Location{}, ErrNotExist
	}
	return Location{FilePath: p}, nil
}

func (l *Local) Remove(_ context.Context, name string) error {
	return os.Remove(filepath.Join(l.dir, filepath.Base(name)))
}
