package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T) *API {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	viper.Reset()
	viper.Set("app.log_level", "error")
	viper.Set("jwt.secret", "test-secret")
	viper.Set("admin.username", "admin")
	viper.Set("admin.password", "hunter2")
	viper.Set("db.driver", "sqlite")
	viper.Set("db.dsn", filepath.Join(dir, "test.db"))
	viper.Set("storage.type", "local")
	viper.Set("storage.upload_dir", filepath.Join(dir, "uploads"))
	viper.Set("upload.max_size", int64(25<<20))
	viper.Set("ratelimit.enabled", false)
	viper.Set("cors.allowed_origins", []string{"http://localhost:5173"})

	a, err := NewRouter()
	require.NoError(t, err)

	// A single pooled connection keeps SQLite writers serialized.
	sqlDB, err := a.DB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	return a
}

func uploadDir() string {
	return viper.GetString("storage.upload_dir")
}

func doJSON(t *testing.T, a *API, method, target string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, target, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	return rec
}

type testFile struct {
	name    string
	content []byte
}

func doMultipart(t *testing.T, a *API, method, target string, fields map[string]string, files map[string][]testFile, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for key, fs := range files {
		for _, f := range fs {
			fw, err := w.CreateFormFile(key, f.name)
			require.NoError(t, err)
			_, err = fw.Write(f.content)
			require.NoError(t, err)
		}
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, target, buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	return rec
}

func tokenCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "token" {
			return ck
		}
	}
	return nil
}

func adminCookie(t *testing.T, a *API) *http.Cookie {
	t.Helper()
	rec := doJSON(t, a, http.MethodPost, "/login/admin", gin.H{
		"username": "admin",
		"password": "hunter2",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	ck := tokenCookie(t, rec)
	require.NotNil(t, ck)
	return ck
}

func viewerCookie(t *testing.T, a *API) *http.Cookie {
	t.Helper()
	rec := doJSON(t, a, http.MethodPost, "/login/user", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	ck := tokenCookie(t, rec)
	require.NotNil(t, ck)
	return ck
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func pathID(base string, id uint) string {
	return base + "/" + strconv.FormatUint(uint64(id), 10)
}
