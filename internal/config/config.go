package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Model provider identifiers. The provider is chosen once at startup; there
// is no per-call fallback between SDK and REST paths.
const (
	ProviderGoogleAI = "googleai"
	ProviderRest     = "rest"
	ProviderOpenAI   = "openai"
)

type Config struct {
	Server ServerConfig
	Logger LoggerConfig
	LLM    LLMConfig
	Redis  RedisConfig
	Cache  CacheConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimit    int
}

type LoggerConfig struct {
	Level string
	Env   string
}

type LLMConfig struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
	MaxAttempts int
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type CacheConfig struct {
	SessionTTL    time.Duration
	EvaluationTTL time.Duration
}

// Enabled reports whether a model credential is configured. Without one the
// service runs the deterministic heuristic path only.
func (c LLMConfig) Enabled() bool {
	return c.APIKey != ""
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")

	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("server.body_limit_mb", 10)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("llm.provider", ProviderGoogleAI)
	viper.SetDefault("llm.model", "gemini-2.5-flash-lite")
	viper.SetDefault("llm.temperature", 0.6)
	viper.SetDefault("llm.max_tokens", 2048)
	viper.SetDefault("llm.timeout", 20)
	viper.SetDefault("llm.max_attempts", 2)
	viper.SetDefault("cache.session_ttl", 2*3600)
	viper.SetDefault("cache.evaluation_ttl", 24*3600)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A config file is optional; defaults plus env vars are enough.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
			BodyLimit:    viper.GetInt("server.body_limit_mb") * 1024 * 1024,
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		LLM: LLMConfig{
			Provider:    viper.GetString("llm.provider"),
			APIKey:      viper.GetString("llm.api_key"),
			Model:       viper.GetString("llm.model"),
			BaseURL:     viper.GetString("llm.base_url"),
			Temperature: viper.GetFloat64("llm.temperature"),
			MaxTokens:   viper.GetInt("llm.max_tokens"),
			Timeout:     viper.GetDuration("llm.timeout") * time.Second,
			MaxAttempts: viper.GetInt("llm.max_attempts"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Cache: CacheConfig{
			SessionTTL:    viper.GetDuration("cache.session_ttl") * time.Second,
			EvaluationTTL: viper.GetDuration("cache.evaluation_ttl") * time.Second,
		},
	}

	// Override with environment variables if set
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		config.LLM.APIKey = apiKey
	}
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" && config.LLM.Provider == ProviderOpenAI {
		config.LLM.APIKey = apiKey
	}
	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		config.LLM.Provider = provider
	}
	if model := os.Getenv("LLM_MODEL"); model != "" {
		config.LLM.Model = model
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}

	switch config.LLM.Provider {
	case ProviderGoogleAI, ProviderRest, ProviderOpenAI:
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", config.LLM.Provider)
	}

	return config, nil
}
