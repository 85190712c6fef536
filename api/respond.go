package api

import (
	"mime/multipart"
	"net/http"
	"time"

	"github.com/Tanz2024/Portfolio/storage"
	"github.com/Tanz2024/Portfolio/validators"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func abortJSON(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error":     msg,
		"requestID": c.GetString("requestID"),
	})
}

// storeError surfaces the raw error message to the caller. There is no
// retry path: a failed statement is terminal for the request.
func (a *API) storeError(c *gin.Context, err error) {
	zap.L().Error("Store operation failed", zap.Error(err), zap.String("requestID", c.GetString("requestID")))

	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"error":     err.Error(),
		"requestID": c.GetString("requestID"),
	})
}

// formValue returns the first value for key and whether the key was present
// at all. Presence is what distinguishes "leave unchanged" from "set empty"
// in partial updates.
func formValue(form *multipart.Form, key string) (string, bool) {
	if form == nil {
		return "", false
	}
	vs, ok := form.Value[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// saveUpload stores the first file under key and returns its public path,
// or "" when the field is absent. The returned status is only meaningful on
// error.
func (a *API) saveUpload(c *gin.Context, form *multipart.Form, key string) (string, int, error) {
	if form == nil {
		return "", 0, nil
	}
	fhs := form.File[key]
	if len(fhs) == 0 {
		return "", 0, nil
	}
	return a.saveOne(c, fhs[0])
}

// saveUploads stores at most max files under key.
func (a *API) saveUploads(c *gin.Context, form *multipart.Form, key string, max int) ([]string, int, error) {
	if form == nil {
		return nil, 0, nil
	}
	fhs := form.File[key]
	if len(fhs) > max {
		fhs = fhs[:max]
	}

	paths := make([]string, 0, len(fhs))
	for _, fh := range fhs {
		p, code, err := a.saveOne(c, fh)
		if err != nil {
			return nil, code, err
		}
		paths = append(paths, p)
	}
	return paths, 0, nil
}

func (a *API) saveOne(c *gin.Context, fh *multipart.FileHeader) (string, int, error) {
	if code, err := validators.FileValidator(fh); err != nil {
		return "", code, err
	}

	p, err := a.Store.Save(c.Request.Context(), fh, storage.NewName(fh.Filename))
	if err != nil {
		return "", http.StatusInternalServerError, err
	}
	return p, 0, nil
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
