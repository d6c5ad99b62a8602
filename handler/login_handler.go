package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"main/dto"
	"main/model"
	"main/services"
	"main/utils"
)

// Login exchanges a username/password pair for an access token.
// Unknown usernames and wrong passwords produce the same response.
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackAuthAttempt("failure", "login")
		utils.BadRequest(c, "invalid request body")
		return
	}

	user, err := h.UserService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			utils.TrackAuthAttempt("failure", "login")
			utils.Unauthorized(c, "invalid username or password")
			return
		}
		utils.TrackError("auth", "login_lookup")
		utils.InternalError(c, "failed to log in")
		return
	}

	token, err := services.GenerateToken(user.UserID)
	if err != nil {
		utils.TrackError("auth", "token_generation")
		utils.InternalError(c, "failed to generate token")
		return
	}

	utils.TrackAuthAttempt("success", "login")
	utils.Success(c, gin.H{
		"token": token,
		"user":  dto.ToUserResponse(user),
	})
}
