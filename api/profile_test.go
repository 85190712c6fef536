package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileUpsertRoundTrip(t *testing.T) {
	a := newTestAPI(t)
	ck := adminCookie(t, a)

	// No row yet.
	rec := doJSON(t, a, http.MethodGet, "/api/user/profile", nil, ck)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeJSON[map[string]any](t, rec)
	assert.Equal(t, "Profile not found.", resp["error"])

	rec = doJSON(t, a, http.MethodPut, "/api/user/profile", gin.H{
		"name":        "Tanzim",
		"description": "Software engineer",
	}, ck)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeJSON[map[string]any](t, rec)
	assert.Equal(t, "Profile updated successfully.", updated["message"])
	assert.Equal(t, "Tanzim", updated["name"])
	assert.Equal(t, "Software engineer", updated["bio"])

	// A second PUT updates the same row instead of inserting another.
	rec = doJSON(t, a, http.MethodPut, "/api/user/profile", gin.H{
		"name":        "Tanzim",
		"description": "Backend engineer",
	}, ck)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, a, http.MethodGet, "/api/user/profile", nil, ck)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"Tanzim","bio":"Backend engineer"}`, rec.Body.String())

	// The public view exposes the same fields without a token.
	rec = doJSON(t, a, http.MethodGet, "/api/public/profile", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"Tanzim","bio":"Backend engineer"}`, rec.Body.String())
}

func TestProfileRoutesRequireAdmin(t *testing.T) {
	a := newTestAPI(t)

	rec := doJSON(t, a, http.MethodPut, "/api/user/profile", gin.H{"name": "x"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, a, http.MethodGet, "/api/user/profile", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// A valid viewer token is still not enough; the profile is admin-only.
	ck := viewerCookie(t, a)
	rec = doJSON(t, a, http.MethodPut, "/api/user/profile", gin.H{"name": "x"}, ck)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, a, http.MethodGet, "/api/user/profile", nil, ck)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestProfileImageUploadAndPublicRead(t *testing.T) {
	a := newTestAPI(t)
	ck := adminCookie(t, a)

	rec := doMultipart(t, a, http.MethodPost, "/api/profile-image", nil, map[string][]testFile{
		"profileImage": {{name: "me.jpg", content: []byte("jpeg bytes")}},
	}, ck)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeJSON[map[string]any](t, rec)
	assert.Equal(t, "Profile image updated successfully!", resp["message"])
	url, _ := resp["profileImageURL"].(string)
	require.NotEmpty(t, url)

	rec = doJSON(t, a, http.MethodGet, "/api/public/profile-image", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	pub := decodeJSON[map[string]any](t, rec)
	assert.Equal(t, url, pub["profileImageURL"])
}

func TestProfileImageReplacementRemovesOldFile(t *testing.T) {
	a := newTestAPI(t)
	ck := adminCookie(t, a)

	rec := doMultipart(t, a, http.MethodPost, "/api/profile-image", nil, map[string][]testFile{
		"profileImage": {{name: "first.jpg", content: []byte("v1")}},
	}, ck)
	require.Equal(t, http.StatusOK, rec.Code)
	firstURL, _ := decodeJSON[map[string]any](t, rec)["profileImageURL"].(string)
	require.NotEmpty(t, firstURL)

	firstOnDisk := filepath.Join(uploadDir(), strings.TrimPrefix(firstURL, "/uploads/"))
	_, err := os.Stat(firstOnDisk)
	require.NoError(t, err)

	rec = doMultipart(t, a, http.MethodPost, "/api/profile-image", nil, map[string][]testFile{
		"profileImage": {{name: "second.jpg", content: []byte("v2")}},
	}, ck)
	require.Equal(t, http.StatusOK, rec.Code)
	secondURL, _ := decodeJSON[map[string]any](t, rec)["profileImageURL"].(string)
	require.NotEmpty(t, secondURL)
	require.NotEqual(t, firstURL, secondURL)

	// The superseded file is gone, the current one is on disk.
	_, err = os.Stat(firstOnDisk)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(uploadDir(), strings.TrimPrefix(secondURL, "/uploads/")))
	assert.NoError(t, err)
}

func TestProfileImageMissingFile(t *testing.T) {
	a := newTestAPI(t)

	rec := doMultipart(t, a, http.MethodPost, "/api/profile-image", map[string]string{
		"unrelated": "field",
	}, nil, adminCookie(t, a))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeJSON[map[string]any](t, rec)
	assert.Equal(t, "No file uploaded.", resp["error"])
}

func TestPublicProfileImageAbsent(t *testing.T) {
	a := newTestAPI(t)

	rec := doJSON(t, a, http.MethodGet, "/api/public/profile-image", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeJSON[map[string]any](t, rec)
	assert.Equal(t, "Profile image not found.", resp["error"])
}
