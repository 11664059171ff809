package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Logger     LoggerConfig
	Auth       AuthConfig
	Store      StoreConfig
	Redis      RedisConfig
	Database   DatabaseConfig
	Generation GenerationConfig
	WordOfDay  WordOfDayConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

type AuthConfig struct {
	JWTSecret string
}

// StoreConfig selects the document-store implementation at construction time.
type StoreConfig struct {
	Driver string // "redis" or "postgres"
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type DatabaseConfig struct {
	DSN string
}

// GenerationConfig selects and configures the text-generation backend.
// Each backend carries two model tiers: a standard one for quiz batches and a
// lite one for the word-of-day lookup.
type GenerationConfig struct {
	Source   string // "googleai" or "openai"
	GoogleAI GenerationModelConfig
	OpenAI   GenerationModelConfig
}

type GenerationModelConfig struct {
	APIKey        string
	StandardModel string
	LiteModel     string
}

type WordOfDayConfig struct {
	CacheTTL time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("store.driver", "redis")
	viper.SetDefault("generation.source", "googleai")
	viper.SetDefault("generation.googleai.standard_model", "gemini-1.5-pro")
	viper.SetDefault("generation.googleai.lite_model", "gemini-1.5-flash")
	viper.SetDefault("generation.openai.standard_model", "gpt-4o")
	viper.SetDefault("generation.openai.lite_model", "gpt-4o-mini")
	viper.SetDefault("wordofday.cache_ttl_hours", 168)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		Auth: AuthConfig{
			JWTSecret: viper.GetString("auth.jwt_secret"),
		},
		Store: StoreConfig{
			Driver: viper.GetString("store.driver"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Database: DatabaseConfig{
			DSN: viper.GetString("database.dsn"),
		},
		Generation: GenerationConfig{
			Source: viper.GetString("generation.source"),
			GoogleAI: GenerationModelConfig{
				APIKey:        viper.GetString("generation.googleai.api_key"),
				StandardModel: viper.GetString("generation.googleai.standard_model"),
				LiteModel:     viper.GetString("generation.googleai.lite_model"),
			},
			OpenAI: GenerationModelConfig{
				APIKey:        viper.GetString("generation.openai.api_key"),
				StandardModel: viper.GetString("generation.openai.standard_model"),
				LiteModel:     viper.GetString("generation.openai.lite_model"),
			},
		},
		WordOfDay: WordOfDayConfig{
			CacheTTL: viper.GetDuration("wordofday.cache_ttl_hours") * time.Hour,
		},
	}

	// Environment overrides for secrets
	if key := os.Getenv("GOOGLEAI_API_KEY"); key != "" {
		config.Generation.GoogleAI.APIKey = key
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		config.Generation.OpenAI.APIKey = key
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		config.Auth.JWTSecret = secret
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		config.Database.DSN = dsn
	}

	return config, nil
}
