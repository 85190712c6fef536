package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Tanz2024/Portfolio/model"
	"github.com/gin-gonic/gin"
)

func testimonialResource(a *API) *resource[model.Testimonial] {
	return newResource(a, resourceSpec[model.Testimonial]{
		orderBy:    "created_at DESC",
		notFound:   "Testimonial not found.",
		deletedMsg: "Testimonial deleted successfully.",
		deletedKey: "testimonial",
		bindCreate: bindTestimonialCreate,
	})
}

// Testimonial creation is open to site visitors, no token required.
func bindTestimonialCreate(c *gin.Context, _ *API) (*model.Testimonial, int, error) {
	var body struct {
		Name    string `json:"name"`
		Comment string `json:"comment"`
		Rating  int    `json:"rating"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, errors.New("Invalid request body")
	}

	if strings.TrimSpace(body.Name) == "" || strings.TrimSpace(body.Comment) == "" {
		return nil, http.StatusBadRequest, errors.New("Name and comment are required.")
	}

	return &model.Testimonial{
		Name:    body.Name,
		Comment: body.Comment,
		Rating:  body.Rating,
	}, 0, nil
}
