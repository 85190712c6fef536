package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Tanz2024/Portfolio/model"
	"github.com/gin-gonic/gin"
)

// Projects carry up to five screenshot files per request.
const maxScreenshots = 5

func projectResource(a *API) *resource[model.Project] {
	return newResource(a, resourceSpec[model.Project]{
		orderBy:    "created_at DESC",
		notFound:   "Project not found.",
		deletedMsg: "Project deleted successfully.",
		deletedKey: "project",
		bindCreate: bindProjectCreate,
		bindUpdate: bindProjectUpdate,
	})
}

func bindProjectCreate(c *gin.Context, a *API) (*model.Project, int, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, http.StatusBadRequest, errors.New("Invalid multipart form")
	}

	title, _ := formValue(form, "title")
	description, _ := formValue(form, "description")
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return nil, http.StatusBadRequest, errors.New("Title and description are required.")
	}

	shots, code, err := a.saveUploads(c, form, "screenshots", maxScreenshots)
	if err != nil {
		return nil, code, err
	}

	p := &model.Project{
		Title:       title,
		Description: description,
		Screenshots: model.StringArray(shots),
	}
	p.Year, _ = formValue(form, "year")
	p.Category, _ = formValue(form, "category")

	return p, 0, nil
}

// Screenshots are replaced wholesale and only when new files are attached;
// text fields coalesce by form-key presence.
func bindProjectUpdate(c *gin.Context, a *API) (map[string]any, int, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, http.StatusBadRequest, errors.New("Invalid multipart form")
	}

	updates := map[string]any{}
	for _, key := range []string{"title", "year", "category", "description"} {
		if v, ok := formValue(form, key); ok {
			updates[key] = v
		}
	}

	shots, code, err := a.saveUploads(c, form, "screenshots", maxScreenshots)
	if err != nil {
		return nil, code, err
	}
	if len(shots) > 0 {
		updates["screenshots"] = model.StringArray(shots)
	}

	return updates, 0, nil
}
