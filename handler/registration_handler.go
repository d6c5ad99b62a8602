package handler

import (
	"github.com/gin-gonic/gin"

	"main/dto"
	"main/usecase"
	"main/utils"
)

type UserHandler struct {
	UserService *usecase.UserService
}

func NewUserHandler(userService *usecase.UserService) *UserHandler {
	return &UserHandler{UserService: userService}
}

// Register creates a new account. Validation failures come back as a
// 400 with the field to messages mapping; the response never includes
// the credential.
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body")
		return
	}

	user, err := h.UserService.Register(c.Request.Context(), req)
	if err != nil {
		if ve, ok := usecase.AsValidationErrors(err); ok {
			utils.ValidationFailed(c, ve)
			return
		}
		utils.TrackError("registration", "internal")
		utils.InternalError(c, "failed to register user")
		return
	}

	utils.Created(c, dto.ToUserResponse(user))
}
