package v1

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/shenikar/traffic_ops_console/internal/config"
)

func newAuthRouter(keys []string) *gin.Engine {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{APIKeys: keys}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func TestAPIKeyAuth_OpenWhenNoKeysConfigured(t *testing.T) {
	router := newAuthRouter(nil)

	w := makeRequest(router, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuth_MissingKey(t *testing.T) {
	router := newAuthRouter([]string{"secret-key"})

	w := makeRequest(router, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPIKeyAuth_InvalidKey(t *testing.T) {
	router := newAuthRouter([]string{"secret-key"})

	w := makeRequest(router, http.MethodGet, "/ping", nil, map[string]string{"X-API-Key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPIKeyAuth_HeaderKey(t *testing.T) {
	router := newAuthRouter([]string{"secret-key"})

	w := makeRequest(router, http.MethodGet, "/ping", nil, map[string]string{"X-API-Key": "secret-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuth_BearerKey(t *testing.T) {
	router := newAuthRouter([]string{"secret-key"})

	w := makeRequest(router, http.MethodGet, "/ping", nil, map[string]string{"Authorization": "Bearer secret-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}
