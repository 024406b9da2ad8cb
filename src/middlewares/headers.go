package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const REQUEST_ID_HEADER = "X-Request-ID"

func SecureHeaders(ctx *gin.Context) {
	h := ctx.Writer.Header()
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("X-Frame-Options", "DENY")
	h.Set("Referrer-Policy", "no-referrer")
	ctx.Next()
}

// RequestID keeps a caller supplied X-Request-ID or issues a new one.
func RequestID(ctx *gin.Context) {
	id := ctx.GetHeader(REQUEST_ID_HEADER)
	if id == "" || len(id) > 64 {
		id = uuid.NewString()
	}
	ctx.Set("request_id", id)
	ctx.Writer.Header().Set(REQUEST_ID_HEADER, id)
	ctx.Next()
}
