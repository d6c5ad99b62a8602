package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"main/services"
	"main/utils"
)

// AuthMiddleware resolves the bearer token to a user identity and
// stores it in the context as "user_id". Requests without a
// resolvable identity never reach a handler.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.TrackAuthAttempt("failure", "token")
			utils.Unauthorized(c, "Missing or invalid token")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if services.IsTokenBlacklisted(tokenString) {
			utils.TrackAuthAttempt("failure", "token")
			utils.Unauthorized(c, "Token has been invalidated")
			c.Abort()
			return
		}

		userID, err := services.ParseToken(tokenString)
		if err != nil {
			utils.TrackAuthAttempt("failure", "token")
			utils.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		utils.TrackAuthAttempt("success", "token")
		c.Set("user_id", userID)
		c.Next()
	}
}
