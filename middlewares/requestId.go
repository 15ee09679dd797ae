package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mishti/sweetshop-api/utils"
)

var logger = utils.NewLogger("http")

// RequestID tags every request with an id and writes one access-log line.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestId := ctx.GetHeader("X-Request-ID")
		if requestId == "" {
			requestId = uuid.NewString()
		}
		ctx.Set("requestId", requestId)
		ctx.Writer.Header().Set("X-Request-ID", requestId)

		start := time.Now()
		ctx.Next()

		logger.Info().
			Str("requestId", requestId).
			Str("method", ctx.Request.Method).
			Str("path", ctx.Request.URL.Path).
			Int("status", ctx.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request completed")
	}
}
