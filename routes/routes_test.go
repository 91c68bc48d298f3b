package routes

import (
	"Playroom/services/directory"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(dir *directory.Directory) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router, dir)
	return router
}

func TestHealth(t *testing.T) {
	router := setupTestRouter(directory.New())

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGuestTokenEndpoint(t *testing.T) {
	router := setupTestRouter(directory.New())

	body := bytes.NewBufferString(`{"username":"alice"}`)
	req, _ := http.NewRequest("POST", "/api/v1/auth/guest", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "alice", response["username"])
	assert.NotEmpty(t, response["token"])
}

func TestGuestTokenRejectsTakenName(t *testing.T) {
	dir := directory.New()
	require.NoError(t, dir.Join("alice"))
	router := setupTestRouter(dir)

	body := bytes.NewBufferString(`{"username":"alice"}`)
	req, _ := http.NewRequest("POST", "/api/v1/auth/guest", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGuestTokenRequiresUsername(t *testing.T) {
	router := setupTestRouter(directory.New())

	body := bytes.NewBufferString(`{}`)
	req, _ := http.NewRequest("POST", "/api/v1/auth/guest", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
