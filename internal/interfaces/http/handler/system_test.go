package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vena/backend/internal/interfaces/http/dto"
)

func systemRequest(t *testing.T, handle gin.HandlerFunc, path string) map[string]any {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, path, nil)

	handle(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	return data
}

func TestSystemHandlerGetSystemInfo(t *testing.T) {
	h := NewSystemHandler()
	data := systemRequest(t, h.GetSystemInfo, "/api/v1/system/info")

	assert.Equal(t, "Vena Backend API", data["name"])
	assert.Equal(t, Version, data["version"])
	assert.NotEmpty(t, data["go_version"])
	assert.NotEmpty(t, data["uptime"])
}

func TestSystemHandlerPing(t *testing.T) {
	h := NewSystemHandler()
	data := systemRequest(t, h.Ping, "/api/v1/system/ping")

	assert.Equal(t, "pong", data["message"])

	ts, ok := data["timestamp"].(string)
	require.True(t, ok)
	_, err := time.Parse(time.RFC3339, ts)
	assert.NoError(t, err)
}
