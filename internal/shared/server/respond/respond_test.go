package respond

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

	"resume-scoring/internal/shared/telemetry"
)

func TestErrorEnvelopeAndLogLevel(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := telemetry.SetLogger(zap.New(core))
	t.Cleanup(func() { telemetry.SetLogger(prev) })

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/assets/:id", func(c *gin.Context) {
		c.Set("assetId", c.Param("id"))
		Error(c, http.StatusNotFound, "not_found", "asset not found", nil)
	})
	r.GET("/boom", func(c *gin.Context) {
		Error(c, http.StatusInternalServerError, "internal_error", "failed", gin.H{"retry": false})
	})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/assets/a1", nil))
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.JSONEq(t, `{"error":{"code":"not_found","message":"asset not found"}}`, resp.Body.String())

	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.JSONEq(t, `{"error":{"code":"internal_error","message":"failed","details":{"retry":false}}}`, resp.Body.String())

	entries := logs.FilterMessage("http.error").All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "a1", entries[0].ContextMap()["asset_id"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}

func TestCreatedSetsLocation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/assets", func(c *gin.Context) {
		Created(c, "/assets/a1", gin.H{"assetId": "a1"})
	})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/assets", nil))
	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.Equal(t, "/assets/a1", resp.Header().Get("Location"))
}
