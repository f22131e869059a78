package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Keys      APIKeys
	Ai        AIConfig
	Retrieval RetrievalConfig
	Costing   CostingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	RedisURL           string
	APISecret          string
	RateLimitPerMinute int
}

type DatabaseConfig struct {
	Connection string
}

type APIKeys struct {
	Groq         string
	GoogleGemini string
	IngestTopic  string // Manual chunk embedding topic
	ChatTopic    string // Chat usage event topic
}

type AIConfig struct {
	EmbeddingProvider string // "gemini" or "ollama"
	OllamaBaseURL     string
	OllamaModel       string
	LLMProvider       string // "groq" or "ollama"
	LLMModel          string // e.g. "llama-3.3-70b-versatile"
	VisionModel       string
	Temperature       float64
}

type RetrievalConfig struct {
	ManualThreshold float64
	ManualLimit     int
	IssueThreshold  float64
	IssueLimit      int
	CatalogLimit    int
}

// CostingConfig holds the installation markup bands applied on top of summed
// part prices. Defaults follow the workshop rule of thumb: 20% of the summed
// minimum, 30% of the summed maximum.
type CostingConfig struct {
	InstallMinRate float64
	InstallMaxRate float64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			APISecret:          getEnv("API_SECRET", ""),
			RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 20),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Keys: APIKeys{
			Groq:         getEnv("GROQ_API_KEY", ""),
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
			IngestTopic:  getEnv("EMBED_MANUAL_TOPIC_NAME", "EMBED_MANUAL_CHUNK"),
			ChatTopic:    getEnv("CHAT_PROCESSED_TOPIC_NAME", "CHAT_PROCESSED"),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "gemini"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:       getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMProvider:       getEnv("LLM_PROVIDER", "groq"),
			LLMModel:          getEnv("LLM_MODEL", "llama-3.3-70b-versatile"),
			VisionModel:       getEnv("VISION_MODEL", "llama-3.2-90b-vision-preview"),
			Temperature:       getEnvAsFloat("LLM_TEMPERATURE", 0.3),
		},
		Retrieval: RetrievalConfig{
			ManualThreshold: getEnvAsFloat("MANUAL_MATCH_THRESHOLD", 0.5),
			ManualLimit:     getEnvAsInt("MANUAL_MATCH_COUNT", 5),
			IssueThreshold:  getEnvAsFloat("ISSUE_MATCH_THRESHOLD", 0.5),
			IssueLimit:      getEnvAsInt("ISSUE_MATCH_COUNT", 3),
			CatalogLimit:    getEnvAsInt("CATALOG_LIMIT", 20),
		},
		Costing: CostingConfig{
			InstallMinRate: getEnvAsFloat("INSTALL_MIN_RATE", 0.2),
			InstallMaxRate: getEnvAsFloat("INSTALL_MAX_RATE", 0.3),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
