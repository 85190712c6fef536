package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/Tanz2024/Portfolio/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectCreateValidation(t *testing.T) {
	a := newTestAPI(t)
	ck := adminCookie(t, a)

	rec := doMultipart(t, a, http.MethodPost, "/api/projects", map[string]string{
		"title": "No description",
	}, nil, ck)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeJSON[map[string]any](t, rec)
	assert.Equal(t, "Title and description are required.", resp["error"])

	// A rejected create leaves the store untouched.
	rec = doJSON(t, a, http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeJSON[[]model.Project](t, rec))
}

func TestProjectCreateWithScreenshots(t *testing.T) {
	a := newTestAPI(t)
	ck := adminCookie(t, a)

	rec := doMultipart(t, a, http.MethodPost, "/api/projects", map[string]string{
		"title":       "Portfolio site",
		"description": "Full stack build",
		"year":        "2026",
		"category":    "web",
	}, map[string][]testFile{
		"screenshots": {
			{name: "one.png", content: []byte("shot-1")},
			{name: "two.jpg", content: []byte("shot-2")},
		},
	}, ck)
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decodeJSON[model.Project](t, rec)
	assert.NotZero(t, created.ID)
	require.Len(t, created.Screenshots, 2)
	for _, s := range created.Screenshots {
		assert.True(t, strings.HasPrefix(s, "/uploads/"))
	}

	rec = doJSON(t, a, http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeJSON[[]model.Project](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, created.Screenshots, list[0].Screenshots)
}

func TestProjectUpdateKeepsScreenshotsWithoutNewFiles(t *testing.T) {
	a := newTestAPI(t)
	ck := adminCookie(t, a)

	rec := doMultipart(t, a, http.MethodPost, "/api/projects", map[string]string{
		"title":       "CLI tool",
		"description": "Command line helper",
		"category":    "tools",
	}, map[string][]testFile{
		"screenshots": {{name: "term.png", content: []byte("terminal")}},
	}, ck)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeJSON[model.Project](t, rec)

	rec = doMultipart(t, a, http.MethodPut, pathID("/api/projects", created.ID), map[string]string{
		"category": "infra",
	}, nil, ck)
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decodeJSON[model.Project](t, rec)
	assert.Equal(t, "infra", updated.Category)
	assert.Equal(t, "CLI tool", updated.Title)
	assert.Equal(t, created.Screenshots, updated.Screenshots)

	// New files replace the set wholesale.
	rec = doMultipart(t, a, http.MethodPut, pathID("/api/projects", created.ID), nil, map[string][]testFile{
		"screenshots": {{name: "new.png", content: []byte("fresh")}},
	}, ck)
	require.Equal(t, http.StatusOK, rec.Code)

	updated = decodeJSON[model.Project](t, rec)
	require.Len(t, updated.Screenshots, 1)
	assert.NotEqual(t, created.Screenshots, updated.Screenshots)
}

func TestProjectDeleteMissingLeavesStore(t *testing.T) {
	a := newTestAPI(t)
	ck := adminCookie(t, a)

	rec := doMultipart(t, a, http.MethodPost, "/api/projects", map[string]string{
		"title":       "Keeper",
		"description": "Stays around",
	}, nil, ck)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, a, http.MethodDelete, "/api/projects/9999", nil, ck)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeJSON[map[string]any](t, rec)
	assert.Equal(t, "Project not found.", resp["error"])

	rec = doJSON(t, a, http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeJSON[[]model.Project](t, rec), 1)
}
