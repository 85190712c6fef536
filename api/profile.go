package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Tanz2024/Portfolio/auth"
	"github.com/Tanz2024/Portfolio/middleware"
	"github.com/Tanz2024/Portfolio/model"
	"github.com/Tanz2024/Portfolio/storage"
	"github.com/Tanz2024/Portfolio/validators"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PublicProfile returns the administrator's name and bio without
// authentication.
func (a *API) PublicProfile(c *gin.Context) {
	a.profileFor(c, adminUserID)
}

// UserProfile returns the profile of whoever the token identifies.
func (a *API) UserProfile(c *gin.Context) {
	a.profileFor(c, middleware.Claims(c).UserID)
}

func (a *API) profileFor(c *gin.Context, userID uint) {
	var p model.Profile
	err := a.DB.Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		abortJSON(c, http.StatusNotFound, "Profile not found.")
		return
	}
	if err != nil {
		a.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateProfile upserts the caller's profile row; the request's
// "description" field is stored as the bio.
func (a *API) UpdateProfile(c *gin.Context) {
	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		abortJSON(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	p := model.Profile{
		UserID: middleware.Claims(c).UserID,
		Name:   body.Name,
		Bio:    body.Description,
	}
	err := a.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "bio", "updated_at"}),
	}).Create(&p).Error
	if err != nil {
		a.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully.",
		"name":    p.Name,
		"bio":     p.Bio,
	})
}

// UploadProfileImage stores a new profile image and points the caller's
// user row at it. The replaced image is removed best-effort; a failed
// removal only leaves an orphan behind.
func (a *API) UploadProfileImage(c *gin.Context) {
	fh, err := c.FormFile("profileImage")
	if err != nil {
		abortJSON(c, http.StatusBadRequest, "No file uploaded.")
		return
	}

	if code, err := validators.FileValidator(fh); err != nil {
		abortJSON(c, code, err.Error())
		return
	}

	var u model.User
	err = a.DB.First(&u, "id = ?", middleware.Claims(c).UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		abortJSON(c, http.StatusNotFound, "User not found.")
		return
	}
	if err != nil {
		a.storeError(c, err)
		return
	}

	p, err := a.Store.Save(c.Request.Context(), fh, storage.NewName(fh.Filename))
	if err != nil {
		a.storeError(c, err)
		return
	}

	prev := u.ProfileImageURL
	err = a.DB.Model(&u).Update("profile_image_url", p).Error
	if err != nil {
		a.storeError(c, err)
		return
	}

	if old := strings.TrimPrefix(prev, storage.PublicPrefix); old != "" && prev != p {
		if err := a.Store.Remove(c.Request.Context(), old); err != nil {
			zap.L().Warn("Failed to remove replaced profile image", zap.Error(err), zap.String("requestID", c.GetString("requestID")))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"profileImageURL": p,
		"message":         "Profile image updated successfully!",
	})
}

// PublicProfileImage serves the admin's current profile image path without
// authentication.
func (a *API) PublicProfileImage(c *gin.Context) {
	var u model.User
	err := a.DB.Where("role = ?", auth.RoleAdmin).First(&u).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		a.storeError(c, err)
		return
	}
	if u.ProfileImageURL == "" {
		abortJSON(c, http.StatusNotFound, "Profile image not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"profileImageURL": u.ProfileImageURL})
}
