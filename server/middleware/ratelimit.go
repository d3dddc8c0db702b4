package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// GinRateLimitMiddleware ограничивает частоту запросов к API
// rps — устойчивая скорость, burst — допустимый кратковременный всплеск
func GinRateLimitMiddleware(rps float64, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			WriteGinError(c, http.StatusTooManyRequests, "Слишком много запросов, повторите позже")
			return
		}

		c.Next()
	}
}
