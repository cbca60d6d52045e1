package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	GinMode          string
	MongoURI         string
	MongoDatabase    string
	JWTSecret        string
	RabbitMQURI      string
	RabbitMQExchange string
	LLMBaseURL       string
	LLMAPIKey        string
	LLMModel         string
	AllowedOrigins   []string
}

var AppConfig *Config

func LoadConfig() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Port:             getEnvOrDefault("PORT", "8080"),
		GinMode:          getEnvOrDefault("GIN_MODE", "debug"),
		MongoURI:         os.Getenv("MONGO_URI"),
		MongoDatabase:    getEnvOrDefault("MONGO_DATABASE", "eco_quiz"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		RabbitMQURI:      os.Getenv("RABBITMQ_URI"),
		RabbitMQExchange: os.Getenv("RABBITMQ_EXCHANGE"),
		LLMBaseURL:       getEnvOrDefault("LLM_BASE_URL", "https://api.openai.com/v1"),
		LLMAPIKey:        os.Getenv("LLM_API_KEY"),
		LLMModel:         getEnvOrDefault("LLM_MODEL", "gpt-4o-mini"),
		AllowedOrigins:   splitOrigins(getEnvOrDefault("ALLOWED_ORIGINS", "http://localhost:3000")),
	}

	if AppConfig.MongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	if AppConfig.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
