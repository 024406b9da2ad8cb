package middlewares

import (
	"cafe/src/utils"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const MSG_TOO_MANY_REQUESTS = "Too many requests"

// RateLimit throttles each client IP with its own token bucket.
func RateLimit(limit rate.Limit, burst int) gin.HandlerFunc {
	var mu sync.Mutex
	clients := map[string]*rate.Limiter{}

	return func(ctx *gin.Context) {
		ip := ctx.ClientIP()
		mu.Lock()
		limiter, ok := clients[ip]
		if !ok {
			limiter = rate.NewLimiter(limit, burst)
			clients[ip] = limiter
		}
		mu.Unlock()

		if !limiter.Allow() {
			ctx.Header("Retry-After", "60")
			utils.SendFail(ctx, http.StatusTooManyRequests, MSG_TOO_MANY_REQUESTS, nil)
			return
		}
		ctx.Next()
	}
}
