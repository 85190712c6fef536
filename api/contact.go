package api

import (
	"net/http"
	"strings"

	"github.com/Tanz2024/Portfolio/model"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactCreate stores an inbound message from a site visitor. The response
// shape differs from the other resources: success/data on 201,
// success=false on failure.
func (a *API) ContactCreate(c *gin.Context) {
	var body struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	_ = c.ShouldBindJSON(&body)

	if strings.TrimSpace(body.Name) == "" ||
		strings.TrimSpace(body.Email) == "" ||
		strings.TrimSpace(body.Message) == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "All fields are required.",
		})
		return
	}

	msg := model.Contact{Name: body.Name, Email: body.Email, Message: body.Message}
	if err := a.DB.Create(&msg).Error; err != nil {
		zap.L().Error("Failed to save contact message", zap.Error(err), zap.String("requestID", c.GetString("requestID")))

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": msg})
}
