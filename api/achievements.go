package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Tanz2024/Portfolio/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func achievementResource(a *API) *resource[model.Achievement] {
	return newResource(a, resourceSpec[model.Achievement]{
		orderBy:    "created_at DESC",
		notFound:   "Achievement not found",
		successKey: "achievement",
		bindCreate: bindAchievementCreate,
		bindUpdate: bindAchievementUpdate,
	})
}

func bindAchievementCreate(c *gin.Context, a *API) (*model.Achievement, int, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, http.StatusBadRequest, errors.New("Invalid multipart form")
	}

	title, _ := formValue(form, "title")
	description, _ := formValue(form, "description")
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return nil, http.StatusBadRequest, errors.New("Title and description are required.")
	}

	item := &model.Achievement{
		Title:       title,
		Description: description,
		Reactions:   model.CountMap{},
	}
	item.Category, _ = formValue(form, "category")
	item.Year, _ = formValue(form, "year")
	item.Tags, _ = formValue(form, "tags")

	if p, code, err := a.saveUpload(c, form, "certificatePDF"); err != nil {
		return nil, code, err
	} else if p != "" {
		item.CertificatePDF = p
	}
	if p, code, err := a.saveUpload(c, form, "image"); err != nil {
		return nil, code, err
	} else if p != "" {
		item.Image = p
	}
	if p, code, err := a.saveUpload(c, form, "video"); err != nil {
		return nil, code, err
	} else if p != "" {
		item.Video = p
	}

	return item, 0, nil
}

// The certificate can arrive either as an uploaded "certificatePDF" file or
// as a "certificateUrl" text field; the file wins when both are present.
func bindAchievementUpdate(c *gin.Context, a *API) (map[string]any, int, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, http.StatusBadRequest, errors.New("Invalid multipart form")
	}

	updates := map[string]any{}
	for _, key := range []string{"title", "description", "category", "year", "tags"} {
		if v, ok := formValue(form, key); ok {
			updates[key] = v
		}
	}

	if v, ok := formValue(form, "certificateUrl"); ok {
		updates["certificate_pdf"] = v
	}
	if p, code, err := a.saveUpload(c, form, "certificatePDF"); err != nil {
		return nil, code, err
	} else if p != "" {
		updates["certificate_pdf"] = p
	}
	if p, code, err := a.saveUpload(c, form, "image"); err != nil {
		return nil, code, err
	} else if p != "" {
		updates["image"] = p
	}
	if p, code, err := a.saveUpload(c, form, "video"); err != nil {
		return nil, code, err
	} else if p != "" {
		updates["video"] = p
	}

	return updates, 0, nil
}

// ReactAchievement increments a single label in the reaction map. Repeat
// calls from the same visitor keep counting; there is no per-caller dedup.
func (a *API) ReactAchievement(c *gin.Context) {
	var body struct {
		Reaction string `json:"reaction"`
	}
	_ = c.ShouldBindJSON(&body)
	if body.Reaction == "" {
		abortJSON(c, http.StatusBadRequest, "Reaction not provided")
		return
	}

	id := c.Param("id")

	if a.DB.Dialector.Name() == "postgres" {
		// Single-statement atomic increment inside the jsonb column.
		res := a.DB.Model(&model.Achievement{}).Where("id = ?", id).
			UpdateColumn("reactions", gorm.Expr(
				`jsonb_set(COALESCE(reactions, '{}'::jsonb), ARRAY[?], to_jsonb(COALESCE((reactions->>?)::int, 0) + 1), true)`,
				body.Reaction, body.Reaction,
			))
		if res.Error != nil {
			a.storeError(c, res.Error)
			return
		}
		if res.RowsAffected == 0 {
			abortJSON(c, http.StatusNotFound, "Achievement not found")
			return
		}
	} else {
		// SQLite serializes writers, so a read-modify-write transaction is
		// equivalent to the jsonb expression above.
		err := a.DB.Transaction(func(tx *gorm.DB) error {
			var item model.Achievement
			if err := tx.First(&item, "id = ?", id).Error; err != nil {
				return err
			}
			if item.Reactions == nil {
				item.Reactions = model.CountMap{}
			}
			item.Reactions[body.Reaction]++
			return tx.Model(&item).UpdateColumn("reactions", item.Reactions).Error
		})
		if errors.Is(err, gorm.ErrRecordNotFound) {
			abortJSON(c, http.StatusNotFound, "Achievement not found")
			return
		}
		if err != nil {
			a.storeError(c, err)
			return
		}
	}

	var item model.Achievement
	if err := a.DB.First(&item, "id = ?", id).Error; err != nil {
		a.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "achievement": item})
}
