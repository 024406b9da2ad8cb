package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

func TestRateLimitPerClient(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(rate.Every(time.Hour), 2))
	r.POST("/login", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

	login := func(ip string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = ip + ":5000"
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, login("10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, login("10.0.0.1").Code)

	w := login("10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "fail", gjson.Get(w.Body.String(), "status").String())
	assert.Equal(t, MSG_TOO_MANY_REQUESTS, gjson.Get(w.Body.String(), "message").String())
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusOK, login("10.0.0.2").Code)
}
