package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func realIPFor(t *testing.T, headers map[string]string) string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RealIP())

	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = c.GetString("real_ip")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(httptest.NewRecorder(), req)
	return seen
}

func TestRealIPCloudflareHeader(t *testing.T) {
	ip := realIPFor(t, map[string]string{"CF-Connecting-IP": "203.0.113.7"})
	require.Equal(t, "203.0.113.7", ip)
}

func TestRealIPForwardedForLeftMost(t *testing.T) {
	ip := realIPFor(t, map[string]string{"X-Forwarded-For": "198.51.100.4, 10.0.0.1"})
	require.Equal(t, "198.51.100.4", ip)
}

func TestRealIPInvalidHeaderFallsBack(t *testing.T) {
	ip := realIPFor(t, map[string]string{"X-Forwarded-For": "not-an-ip"})
	require.NotEmpty(t, ip)
	require.NotEqual(t, "not-an-ip", ip)
}
