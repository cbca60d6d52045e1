package main

import (
	"context"
	"log"
	"time"

	"eco-quiz-backend/internal/config"
	"eco-quiz-backend/internal/db"
	"eco-quiz-backend/internal/event"
	"eco-quiz-backend/internal/handlers"
	"eco-quiz-backend/internal/llm"
	"eco-quiz-backend/internal/middleware"
	"eco-quiz-backend/internal/repository"
	"eco-quiz-backend/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig

	gin.SetMode(cfg.GinMode)

	db.InitMongo(cfg.MongoURI)
	database := db.Client.Database(cfg.MongoDatabase)

	indexCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := db.EnsureIndexes(indexCtx, database); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	// RabbitMQ event publisher, optional
	var publisher event.Publisher
	if cfg.RabbitMQURI != "" && cfg.RabbitMQExchange != "" {
		p, err := event.NewEventPublisher(cfg.RabbitMQURI, cfg.RabbitMQExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer p.Close()
		publisher = p
	} else {
		log.Println("RabbitMQ not configured, domain events will not be published")
	}

	var generator *llm.Client
	if cfg.LLMAPIKey != "" {
		generator = llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)
	} else {
		log.Println("LLM not configured, AI quizzes will use the sample question set")
	}

	userRepo := repository.NewUserRepository(database)
	quizRepo := repository.NewQuizRepository(database)
	resultRepo := repository.NewResultRepository(database)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, publisher)
	quizService := service.NewQuizService(quizRepo, generator, publisher)
	resultService := service.NewResultService(resultRepo, quizRepo, userRepo, publisher)

	authHandler := handlers.NewAuthHandler(authService)
	quizHandler := handlers.NewQuizHandler(quizService)
	resultHandler := handlers.NewResultHandler(resultService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	protect := middleware.Protect(authService)

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/profile", protect, authHandler.Profile)
	}

	quiz := r.Group("/api/quiz")
	{
		quiz.POST("/", protect, middleware.TeacherOnly(), quizHandler.CreateQuiz)
		quiz.POST("/ai", protect, middleware.TeacherOnly(), quizHandler.CreateAIQuiz)
		quiz.GET("/", protect, quizHandler.ListQuizzes)
		quiz.GET("/:id", protect, quizHandler.GetQuiz)
	}

	results := r.Group("/api/results")
	{
		results.POST("/:quizId/attempt", protect, middleware.StudentOnly(), resultHandler.SubmitAttempt)
		results.GET("/my-results", protect, middleware.StudentOnly(), resultHandler.GetMyResults)
		results.GET("/leaderboard", protect, resultHandler.GetLeaderboard)
		results.GET("/:quizId/results", protect, middleware.TeacherOnly(), resultHandler.GetQuizResults)
	}

	r.GET("/test", func(c *gin.Context) {
		c.String(200, "test route working")
	})

	log.Printf("Server running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
