package middleware

import (
	"net/http"
	"time"

	"github.com/bvqadmin/montos-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimiter limits each client IP to max requests per window, with an
// in-memory store. Excess requests receive a 429 envelope.
func RateLimiter(window time.Duration, max int64) gin.HandlerFunc {
	rate := limiter.Rate{
		Period: window,
		Limit:  max,
	}
	instance := limiter.New(memory.NewStore(), rate)

	return mgin.NewMiddleware(instance, mgin.WithLimitReachedHandler(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, models.APIResponse{
			Success: false,
			Message: "Demasiadas solicitudes desde esta IP, intenta de nuevo más tarde.",
		})
	}))
}
