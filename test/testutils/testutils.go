package testutils

import (
	"os"

	"github.com/gin-gonic/gin"

	"main/handler"
	"main/middleware"
	"main/usecase"
	"main/utils"
)

// SetupTestEnvironment points the auth settings at fixed test values.
func SetupTestEnvironment() {
	os.Setenv("GO_ENV", "test")
	utils.JWTSecretKey = "test-secret-key"
	utils.JWTExpirationTime = 3600
	gin.SetMode(gin.TestMode)
}

// NewRouter wires the API routes the way main does, over whatever
// repositories the caller provides.
func NewRouter(userRepo usecase.UserRepository, noteRepo usecase.NoteRepository) *gin.Engine {
	userHandler := handler.NewUserHandler(&usecase.UserService{UsersRepo: userRepo})
	noteHandler := handler.NewNoteHandler(&usecase.NoteService{NotesRepo: noteRepo})

	router := gin.New()

	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", userHandler.Register)
			auth.POST("/login", userHandler.Login)
		}
	}

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/auth/logout", userHandler.Logout)

		notes := protected.Group("/notes")
		{
			notes.GET("", noteHandler.ListNotes)
			notes.POST("", noteHandler.CreateNote)
			notes.DELETE("/:id", noteHandler.DeleteNote)
		}
	}

	return router
}
