// Package storage persists uploaded files and maps them to the public
// /uploads/ paths stored in content records.
package storage

import (
	"context"
	"errors"
	"mime/multipart"
	"path"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// PublicPrefix is the URL prefix every stored file is served under.
const PublicPrefix = "/uploads/"

var ErrNotExist = errors.New("file does not exist")

// Location tells the static responder how to answer: a filesystem path to
// serve directly, or a URL to redirect to.
type Location struct {
	FilePath    string
	RedirectURL string
}

type Store interface {
	// Save persists the uploaded file under name and returns its public path.
	Save(ctx context.Context, fh *multipart.FileHeader, name string) (string, error)
	Resolve(name string) (Location, error)
	Remove(ctx context.Context, name string) error
}

// NewName produces a non-colliding storage name for an upload: a random id
// plus the original extension. The original name is not trusted.
func NewName(original string) string {
	return gonanoid.Must(12) + strings.ToLower(path.Ext(original))
}

// ResumeName is fixed on purpose: each new resume overwrites the previous
// one, there is no version history.
func ResumeName(original string) string {
	return "resume" + strings.ToLower(path.Ext(original))
}

// PublicPath maps a stored name to the externally served path. This is the
// string that gets persisted into content records.
func PublicPath(name string) string {
	return PublicPrefix + name
}
