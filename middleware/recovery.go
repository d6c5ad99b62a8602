package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"main/utils"
)

// RecoveryMiddleware keeps a panicking handler from killing the
// process; the failing request gets a 500 and everything else goes on.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic recovered: %v", err)
				utils.TrackError("panic", "handler")
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}
