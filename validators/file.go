// Package validators checks inbound request payloads before they reach
// the store.
package validators

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/viper"
)

var (
	ErrFileTooLarge        = errors.New("file too large")
	ErrFileTypeUnsupported = errors.New("unsupported file type")
	ErrNoFile              = errors.New("no file provided")
)

// FileValidator accepts any upload by default; the acceptance criterion is
// that the multipart field is present. When upload.allowed_types is
// configured the file's real content type must match one of its
// comma-separated prefixes. Returns the HTTP status to respond with on
// failure.
func FileValidator(fh *multipart.FileHeader) (int, error) {
	if fh == nil {
		return http.StatusBadRequest, ErrNoFile
	}

	if max := viper.GetInt64("upload.max_size"); max > 0 && fh.Size > max {
		return http.StatusRequestEntityTooLarge, ErrFileTooLarge
	}

	allowed := viper.GetString("upload.allowed_types")
	if allowed == "" {
		return 0, nil
	}

	// Sniff the actual bytes instead of trusting the client's header
	f, err := fh.Open()
	if err != nil {
		return http.StatusInternalServerError, err
	}
	defer f.Close()

	mime, err := mimetype.DetectReader(f)
	if err != nil {
		return http.StatusInternalServerError, err
	}

	for _, prefix := range strings.Split(allowed, ",") {
		if strings.HasPrefix(mime.String(), strings.TrimSpace(prefix)) {
			return 0, nil
		}
	}
	return http.StatusBadRequest, ErrFileTypeUnsupported
}
