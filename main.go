package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"
)

func setupRouter(userHandler *handler.UserHandler, noteHandler *handler.NoteHandler) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestLogMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	public := router.Group("/api")
	{
		public.GET("/health", handler.HealthHandler)

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

func main() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := config.Load()

	if cfg.Auth.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY environment variable not set")
	}
	utils.JWTSecretKey = cfg.Auth.JWTSecretKey
	utils.JWTExpirationTime = cfg.Auth.JWTExpirationTime

	utils.InitMongoClient(cfg.Database.URI, cfg.Database.MaxPoolSize,
		cfg.Database.MinPoolSize, cfg.Database.MaxConnIdleTime)

	db := utils.MongoClient.Database(cfg.Database.DatabaseName)
	if err := repository.SetupIndexes(db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	if cfg.Redis.URL != "" {
		blacklist, err := services.NewTokenBlacklist(cfg.Redis.URL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		services.TokenBlacklist = blacklist
	} else {
		log.Println("REDIS_URL not set, token revocation disabled")
	}

	userService := &usecase.UserService{UsersRepo: repository.GetUserRepo(utils.MongoClient)}
	notesService := &usecase.NoteService{NotesRepo: repository.GetNotesRepo(utils.MongoClient)}

	router := setupRouter(
		handler.NewUserHandler(userService),
		handler.NewNoteHandler(notesService),
	)

	serverAddr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
