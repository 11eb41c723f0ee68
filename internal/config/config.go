// internal/config/config.go
package config

import (
	"os"
	"time"
)

type Config struct {
	Database struct {
		Host       string `json:"host"`
		Port       string `json:"port"`
		User       string `json:"user"`
		Password   string `json:"password"`
		Name       string `json:"name"`
		SSLMode    string `json:"sslmode"`
		SearchPath string `json:"schema"`
	} `json:"database"`
	JWT struct {
		Secret       string        `json:"secret"`
		ExpiryPeriod time.Duration `json:"expiry_period"`
	} `json:"jwt"`
	Server struct {
		Port         string        `json:"port"`
		ReadTimeout  time.Duration `json:"read_timeout"`
		WriteTimeout time.Duration `json:"write_timeout"`
	}
	Temporal struct {
		HostPort  string `json:"host_port"`
		Namespace string `json:"namespace"`
		TaskQueue string `json:"task_queue"`
	} `json:"temporal"`
	OpenAI struct {
		APIKey string `json:"api_key"`
		// The assistant-provisioning and reply workflows are pinned to
		// separate model identifiers on purpose; they can diverge.
		AssistantModel string `json:"assistant_model"`
		ResponseModel  string `json:"response_model"`
	} `json:"openai"`
}

func Load() *Config {
	cfg := &Config{}

	// Database configuration
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnv("DB_PORT", "5432")
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "")
	cfg.Database.Name = getEnv("DB_NAME", "personia")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.SearchPath = getEnv("DB_SCHEMA", "public")

	// JWT configuration
	cfg.JWT.Secret = getEnv("JWT_SECRET", "your-secret-key")
	cfg.JWT.ExpiryPeriod = time.Hour * 24

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.ReadTimeout = time.Second * 15
	cfg.Server.WriteTimeout = time.Second * 15

	// Temporal configuration
	cfg.Temporal.HostPort = getEnv("TEMPORAL_HOST_PORT", "localhost:7233")
	cfg.Temporal.Namespace = getEnv("TEMPORAL_NAMESPACE", "default")
	cfg.Temporal.TaskQueue = getEnv("TEMPORAL_TASK_QUEUE", "personia")

	// OpenAI configuration
	cfg.OpenAI.APIKey = getEnv("OPENAI_API_KEY", "")
	cfg.OpenAI.AssistantModel = getEnv("OPENAI_ASSISTANT_MODEL", "gpt-4.1-nano")
	cfg.OpenAI.ResponseModel = getEnv("OPENAI_RESPONSE_MODEL", "gpt-4.1-nano")

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
