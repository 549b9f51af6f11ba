package middleware

import (
	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	"go.uber.org/zap"
)

// RateLimiter builds a per-client-IP limiter from a formatted rate
// such as "100-S" (100 requests per second) or "1000-M".
func RateLimiter(format string) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(format)
	if err != nil {
		zap.L().Warn("invalid rate limit format, rate limiting disabled",
			zap.String("format", format), zap.Error(err))
		return func(c *gin.Context) { c.Next() }
	}

	store := memory.NewStore()
	return mgin.NewMiddleware(limiter.New(store, rate))
}
