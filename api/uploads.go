package api

import (
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
)

// ServeUpload serves a previously uploaded file. Content type comes from
// the extension; anything unrecognized falls back to a generic binary type.
func (a *API) ServeUpload(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("filepath"), "/")

	loc, err := a.Store.Resolve(name)
	if err != nil {
		abortJSON(c, http.StatusNotFound, "File not found.")
		return
	}

	if loc.RedirectURL != "" {
		c.Redirect(http.StatusFound, loc.RedirectURL)
		return
	}

	c.Header("Content-Type", contentTypeByExt(name))
	c.File(loc.FilePath)
}

func contentTypeByExt(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
