package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Tanz2024/Portfolio/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func blogResource(a *API) *resource[model.Blog] {
	return newResource(a, resourceSpec[model.Blog]{
		orderBy:    "date DESC",
		notFound:   "Blog post not found.",
		deletedMsg: "Blog deleted",
		deletedKey: "blog",
		publicScope: func(tx *gorm.DB) *gorm.DB {
			return tx.Where("published = ?", true)
		},
		bindCreate: bindBlogCreate,
		bindUpdate: bindBlogUpdate,
	})
}

// Creation is multipart: text fields plus optional "image" and "video"
// file parts.
func bindBlogCreate(c *gin.Context, a *API) (*model.Blog, int, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, http.StatusBadRequest, errors.New("Invalid multipart form")
	}

	title, _ := formValue(form, "title")
	if strings.TrimSpace(title) == "" {
		return nil, http.StatusBadRequest, errors.New("Title is required.")
	}

	b := &model.Blog{
		Title:     title,
		Date:      time.Now(),
		Published: true,
	}

	if v, ok := formValue(form, "date"); ok {
		if t, ok := parseDate(v); ok {
			b.Date = t
		}
	}
	b.Tools, _ = formValue(form, "tools")
	b.Summary, _ = formValue(form, "summary")
	b.DocURL, _ = formValue(form, "doc_url")
	if v, ok := formValue(form, "featured"); ok {
		b.Featured = v == "true"
	}
	if v, ok := formValue(form, "published"); ok {
		b.Published = v == "true"
	}

	if p, code, err := a.saveUpload(c, form, "image"); err != nil {
		return nil, code, err
	} else if p != "" {
		b.ImageURL = p
	}
	if p, code, err := a.saveUpload(c, form, "video"); err != nil {
		return nil, code, err
	} else if p != "" {
		b.VideoURL = p
	}

	return b, 0, nil
}

// Updates arrive as JSON; a nil field means "leave unchanged", not "clear".
func bindBlogUpdate(c *gin.Context, _ *API) (map[string]any, int, error) {
	var body struct {
		Title     *string `json:"title"`
		Date      *string `json:"date"`
		Tools     *string `json:"tools"`
		Summary   *string `json:"summary"`
		Content   *string `json:"content"`
		DocURL    *string `json:"doc_url"`
		ImageURL  *string `json:"image_url"`
		VideoURL  *string `json:"video_url"`
		Featured  *bool   `json:"featured"`
		Published *bool   `json:"published"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, errors.New("Invalid request body")
	}

	updates := map[string]any{}
	if body.Title != nil {
		updates["title"] = *body.Title
	}
	if body.Date != nil {
		if t, ok := parseDate(*body.Date); ok {
			updates["date"] = t
		}
	}
	if body.Tools != nil {
		updates["tools"] = *body.Tools
	}
	if body.Summary != nil {
		updates["summary"] = *body.Summary
	}
	if body.Content != nil {
		updates["content"] = *body.Content
	}
	if body.DocURL != nil {
		updates["doc_url"] = *body.DocURL
	}
	if body.ImageURL != nil {
		updates["image_url"] = *body.ImageURL
	}
	if body.VideoURL != nil {
		updates["video_url"] = *body.VideoURL
	}
	if body.Featured != nil {
		updates["featured"] = *body.Featured
	}
	if body.Published != nil {
		updates["published"] = *body.Published
	}
	return updates, 0, nil
}
