package middleware

import (
	"runtime/debug"

	"github.com/Tapanx4/Pregnancy-Risk-Predictor/pkg/api"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// HTTPRecovery converts deferred api errors and panics into JSON error responses
func HTTPRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if len(c.Errors) > 0 {
				err := c.Errors.Last().Err
				if apiErr, ok := err.(*api.Error); ok {
					c.JSON(apiErr.StatusCode, gin.H{"error": apiErr.Message})
					c.Abort()
				}
			}
			if err := recover(); err != nil {
				log.Error().Msgf("Panic occurred: %v\n%s", err, debug.Stack())
				c.JSON(500, gin.H{"error": "An unexpected error occurred during prediction."})
				c.Abort()
			}
		}()
		c.Next()
	}
}
