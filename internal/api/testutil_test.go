package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"stock_portal/internal/config"
	"stock_portal/internal/db"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testConfig is the fixed configuration used by every handler test
func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:   "test-secret",
		JWTTTLHours: 1,
	}
}

// newTestRouter builds a router over an isolated in-memory store
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	// Named in-memory database so the whole pool shares one store per test
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.CreateTables(conn))
	return SetupRouter(conn, testConfig()), conn
}

// doRequest performs a JSON request against the router, optionally with a bearer token
func doRequest(router *gin.Engine, method, url, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a recorded JSON response body
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// registerAndLogin creates a user and returns a valid bearer token for it
func registerAndLogin(t *testing.T, router *gin.Engine, username, password, email string) string {
	t.Helper()
	w := doRequest(router, http.MethodPost, "/api/register", "", gin.H{
		"username": username, "password": password, "email": email,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = doRequest(router, http.MethodPost, "/api/login", "", gin.H{
		"username": username, "password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, ok := decodeBody(t, w)["access_token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}
