package api

import (
	"errors"
	"net/http"

	"github.com/Tanz2024/Portfolio/storage"
	"github.com/Tanz2024/Portfolio/validators"
	"github.com/gin-gonic/gin"
)

// UploadResume stores the file under a fixed name so each upload replaces
// the previous resume; there is no version history.
func (a *API) UploadResume(c *gin.Context) {
	fh, err := c.FormFile("resume")
	if err != nil {
		abortJSON(c, http.StatusBadRequest, "No file uploaded.")
		return
	}

	if code, err := validators.FileValidator(fh); err != nil {
		abortJSON(c, code, err.Error())
		return
	}

	if _, err := a.Store.Save(c.Request.Context(), fh, storage.ResumeName(fh.Filename)); err != nil {
		a.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Resume updated successfully."})
}

func (a *API) DownloadResume(c *gin.Context) {
	loc, err := a.Store.Resolve("resume.pdf")
	if errors.Is(err, storage.ErrNotExist) {
		abortJSON(c, http.StatusNotFound, "Resume not found.")
		return
	}
	if err != nil {
		a.storeError(c, err)
		return
	}

	if loc.RedirectURL != "" {
		c.Redirect(http.StatusFound, loc.RedirectURL)
		return
	}
	c.FileAttachment(loc.FilePath, "Resume.pdf")
}
