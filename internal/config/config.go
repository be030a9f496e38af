package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration. Business logic never reads the
// environment directly; everything is injected from here.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	Port        string
	SecretKey   string
	FrontendURL string
	LogLevel    string

	DBType     string
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string
	DBPath     string

	Chat     ChatConfig
	Speech   SpeechConfig
	SmartSQL SmartSQLConfig
}

// ChatConfig configures the Cerebras completion client.
type ChatConfig struct {
	APIKey  string
	BaseURL string
}

// SpeechConfig configures the ElevenLabs text-to-speech client.
type SpeechConfig struct {
	APIKey         string
	BaseURL        string
	DefaultVoiceID string
}

// SmartSQLConfig configures the natural-language-to-SQL backends. The bridge
// takes strict precedence over the fallback API when both are set.
type SmartSQLConfig struct {
	BridgeURL       string
	BridgeAPIKey    string
	BridgeTimeout   time.Duration
	FallbackAPIKey  string
	FallbackBaseURL string
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:     getenv("APP_SERVICE", "SmartBiz SA Backend"),
		AppVersion:  getenv("APP_VERSION", "1.0.0"),
		Environment: getenv("ENVIRONMENT", "development"),
		Port:        getenv("PORT", "5000"),
		SecretKey:   getenv("SECRET_KEY", "dev-secret-key"),
		FrontendURL: getenv("FRONTEND_URL", "http://localhost:5173"),
		LogLevel:    getenv("LOG_LEVEL", "info"),

		DBType:     getenv("DATABASE_TYPE", "sqlite"),
		DBHost:     getenv("DATABASE_HOST", "localhost"),
		DBPort:     getenv("DATABASE_PORT", "5432"),
		DBName:     getenv("DATABASE_NAME", "smartbiz"),
		DBUser:     getenv("DATABASE_USER", "postgres"),
		DBPassword: getenv("DATABASE_PASSWORD", ""),
		DBSSLMode:  getenv("DATABASE_SSLMODE", "disable"),
		DBPath:     getenv("DATABASE_PATH", "smartbiz.db"),

		Chat: ChatConfig{
			APIKey:  strings.TrimSpace(getenv("CEREBRAS_API_KEY", "")),
			BaseURL: getenv("CEREBRAS_BASE_URL", "https://api.cerebras.ai/v1"),
		},
		Speech: SpeechConfig{
			APIKey:         strings.TrimSpace(getenv("ELEVENLABS_API_KEY", "")),
			BaseURL:        getenv("ELEVENLABS_BASE_URL", "https://api.elevenlabs.io/v1"),
			DefaultVoiceID: getenv("ELEVENLABS_VOICE_ID", "rachel"),
		},
		SmartSQL: SmartSQLConfig{
			BridgeURL:       strings.TrimSpace(getenv("RAINDROP_BRIDGE_URL", "")),
			BridgeAPIKey:    strings.TrimSpace(getenv("RAINDROP_API_KEY", "")),
			BridgeTimeout:   time.Duration(getenvInt("RAINDROP_TIMEOUT", 30)) * time.Second,
			FallbackAPIKey:  strings.TrimSpace(getenv("LIQUIDMETAL_API_KEY", "")),
			FallbackBaseURL: getenv("LIQUIDMETAL_BASE_URL", "https://api.liquidmetal.ai/v1"),
		},
	}
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}
