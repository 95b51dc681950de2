package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func accessLine(logs []observer.LoggedEntry) *observer.LoggedEntry {
	for i := range logs {
		if logs[i].Message == "HTTP Request" {
			return &logs[i]
		}
	}
	return nil
}

func TestGinMiddlewareLogsRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, recorded := observer.New(zapcore.InfoLevel)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("request_id", "req-42")
	})
	router.Use(GinMiddleware(zap.New(core)))
	router.GET("/api/v1/clients", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/clients?status=Aktif", nil)
	req.Header.Set("User-Agent", "vena-dashboard/1.0")
	router.ServeHTTP(w, req)

	entry := accessLine(recorded.All())
	require.NotNil(t, entry)
	assert.Equal(t, zapcore.InfoLevel, entry.Level)

	fields := entry.ContextMap()
	assert.Equal(t, "req-42", fields["request_id"])
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/api/v1/clients", fields["path"])
	assert.Equal(t, "status=Aktif", fields["query"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	assert.Equal(t, "vena-dashboard/1.0", fields["user_agent"])
	assert.Contains(t, fields, "latency")
	assert.Contains(t, fields, "client_ip")
}

func TestGinMiddlewareInstallsContextLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, recorded := observer.New(zapcore.InfoLevel)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("request_id", "req-77")
	})
	router.Use(GinMiddleware(zap.New(core)))
	router.GET("/api/v1/projects", func(c *gin.Context) {
		ctx := c.Request.Context()
		assert.Equal(t, "req-77", GetRequestID(ctx))
		FromContext(ctx).Info("loading projects")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/projects", nil)
	router.ServeHTTP(w, req)

	logs := recorded.All()
	var handlerLine *observer.LoggedEntry
	for i := range logs {
		if logs[i].Message == "loading projects" {
			handlerLine = &logs[i]
		}
	}
	require.NotNil(t, handlerLine, "handler log line missing")
	assert.Equal(t, "req-77", handlerLine.ContextMap()["request_id"])
}

func TestGinMiddlewareIncludesAuthenticatedUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, recorded := observer.New(zapcore.InfoLevel)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("jwt_user_id", "vendor-7")
	})
	router.Use(GinMiddleware(zap.New(core)))
	router.GET("/api/v1/projects", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/projects", nil)
	router.ServeHTTP(w, req)

	entry := accessLine(recorded.All())
	require.NotNil(t, entry)
	assert.Equal(t, "vendor-7", entry.ContextMap()["user_id"])
}

func TestGinMiddlewareLevelTracksStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		status int
		level  zapcore.Level
	}{
		{"success", http.StatusOK, zapcore.InfoLevel},
		{"client error", http.StatusNotFound, zapcore.WarnLevel},
		{"server error", http.StatusInternalServerError, zapcore.ErrorLevel},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			core, recorded := observer.New(zapcore.InfoLevel)

			router := gin.New()
			router.Use(GinMiddleware(zap.New(core)))
			router.GET("/api/v1/transactions", func(c *gin.Context) {
				c.Status(tc.status)
			})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/api/v1/transactions", nil)
			router.ServeHTTP(w, req)

			entry := accessLine(recorded.All())
			require.NotNil(t, entry)
			assert.Equal(t, tc.level, entry.Level)
		})
	}
}

func TestRecoveryLogsPanicAndReturns500(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, recorded := observer.New(zapcore.ErrorLevel)

	router := gin.New()
	router.Use(Recovery(zap.New(core)))
	router.GET("/api/v1/packages", func(c *gin.Context) {
		panic("pricing table missing")
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/packages", nil)

	assert.NotPanics(t, func() {
		router.ServeHTTP(w, req)
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	logs := recorded.All()
	require.NotEmpty(t, logs)
	assert.Equal(t, "Panic recovered", logs[0].Message)
	assert.Equal(t, "pricing table missing", logs[0].ContextMap()["error"])
}

func TestGetGinLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	// Without the middleware the fallback is a usable no-op logger.
	fallback := GetGinLogger(c)
	require.NotNil(t, fallback)
	assert.NotPanics(t, func() { fallback.Info("noop") })

	scoped := zap.NewNop().With(zap.String("request_id", "req-9"))
	c.Set("logger", scoped)
	assert.Same(t, scoped, GetGinLogger(c))
}
