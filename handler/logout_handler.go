package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"main/services"
	"main/utils"
)

// Logout revokes the presented token for the remainder of its
// lifetime. Without a configured blacklist the token simply expires
// on its own.
func (h *UserHandler) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	if err := services.BlacklistToken(tokenString); err != nil {
		utils.TrackError("auth", "blacklist")
		utils.InternalError(c, "failed to log out")
		return
	}

	utils.Success(c, gin.H{"message": "logged out"})
}
