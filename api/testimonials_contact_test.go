package api

import (
	"net/http"
	"testing"

	"github.com/Tanz2024/Portfolio/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestimonialPublicCreateAdminDelete(t *testing.T) {
	a := newTestAPI(t)

	// Visitors submit without a token.
	rec := doJSON(t, a, http.MethodPost, "/api/testimonials", gin.H{
		"name":    "A happy client",
		"comment": "Great work on the site",
		"rating":  5,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeJSON[model.Testimonial](t, rec)
	assert.NotZero(t, created.ID)
	assert.Equal(t, 5, created.Rating)

	rec = doJSON(t, a, http.MethodGet, "/api/testimonials", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeJSON[[]model.Testimonial](t, rec), 1)

	// Deletion is admin-only.
	rec = doJSON(t, a, http.MethodDelete, pathID("/api/testimonials", created.ID), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, a, http.MethodDelete, pathID("/api/testimonials", created.ID), nil, viewerCookie(t, a))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, a, http.MethodDelete, pathID("/api/testimonials", created.ID), nil, adminCookie(t, a))
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[struct {
		Message     string            `json:"message"`
		Testimonial model.Testimonial `json:"testimonial"`
	}](t, rec)
	assert.Equal(t, "Testimonial deleted successfully.", resp.Message)
	assert.Equal(t, created.ID, resp.Testimonial.ID)

	rec = doJSON(t, a, http.MethodGet, "/api/testimonials", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeJSON[[]model.Testimonial](t, rec))
}

func TestTestimonialCreateValidation(t *testing.T) {
	a := newTestAPI(t)

	for _, body := range []gin.H{
		{"comment": "no name"},
		{"name": "no comment"},
		{"name": "  ", "comment": "blank name"},
	} {
		rec := doJSON(t, a, http.MethodPost, "/api/testimonials", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeJSON[map[string]any](t, rec)
		assert.Equal(t, "Name and comment are required.", resp["error"])
	}
}

func TestContactCreateAndValidation(t *testing.T) {
	a := newTestAPI(t)

	rec := doJSON(t, a, http.MethodPost, "/api/contact", gin.H{
		"name":    "Recruiter",
		"email":   "recruiter@example.com",
		"message": "Let's talk about a role",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeJSON[struct {
		Success bool          `json:"success"`
		Data    model.Contact `json:"data"`
	}](t, rec)
	assert.True(t, resp.Success)
	assert.NotZero(t, resp.Data.ID)
	assert.Equal(t, "recruiter@example.com", resp.Data.Email)

	// Any missing field fails with the same catch-all message.
	for _, body := range []gin.H{
		{"email": "a@b.c", "message": "hi"},
		{"name": "x", "message": "hi"},
		{"name": "x", "email": "a@b.c"},
		{},
	} {
		rec := doJSON(t, a, http.MethodPost, "/api/contact", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"success":false,"error":"All fields are required."}`, rec.Body.String())
	}
}
