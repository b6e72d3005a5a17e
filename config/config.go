package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisJanitorDB int    `mapstructure:"REDIS_JANITOR_DB"`

	// Gemini API key for the intent parser. When empty the LLM path is
	// disabled and the keyword fallback parser is used instead.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// Scheduling defaults.
	DefaultHorizonDays    int `mapstructure:"DEFAULT_HORIZON_DAYS"`
	DefaultRequestedCount int `mapstructure:"DEFAULT_REQUESTED_COUNT"`
	SessionTTLMinutes     int `mapstructure:"SESSION_TTL_MINUTES"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	// Empty means the logger picks its environment default.
	viper.SetDefault("LOG_LEVEL", "")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_SESSION_DB", 1)
	viper.SetDefault("REDIS_JANITOR_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("DEFAULT_HORIZON_DAYS", 30)
	viper.SetDefault("DEFAULT_REQUESTED_COUNT", 3)
	viper.SetDefault("SESSION_TTL_MINUTES", 120)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
