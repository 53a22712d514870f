package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// Storage
	Mongo MongoConfig
	Redis RedisConfig

	// Auth
	JWT    JWTConfig
	Cookie CookieConfig

	// Extraction pipeline
	LLM      LLMConfig
	LangFlow LangFlowConfig

	App AppConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
	// TrustedProxies may set X-Forwarded-For. Empty trusts none.
	TrustedProxies []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

// RateLimitConfig applies to the endpoints that call external AI services.
type RateLimitConfig struct {
	RequestsPerMin int
}

type MongoConfig struct {
	URI                    string
	Database               string
	MaxPoolSize            uint64
	ServerSelectionTimeout time.Duration
	SocketTimeout          time.Duration
}

// RedisConfig is optional: an empty Addr disables the analytics cache.
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	AnalyticsTTL time.Duration
}

type JWTConfig struct {
	AccessSecret  string
	AccessTTL     time.Duration
	RefreshSecret string
	RefreshTTL    time.Duration
}

type CookieConfig struct {
	Secure   bool
	HTTPOnly bool
	Domain   string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
	Temperature     float64          `yaml:"temperature"`
	MaxTokens       int              `yaml:"max_tokens"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

type LangFlowConfig struct {
	APIKey  string
	URL     string
	Timeout time.Duration
}

type AppConfig struct {
	Timezone string
}

// Load loads configuration using Viper.
// A .env file in the working directory is loaded first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	if port := viper.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.TrustedProxies = splitList(viper.GetString("http_server.trusted_proxies"))
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Mongo
	cfg.Mongo.URI = viper.GetString("mongo.uri")
	if uri := viper.GetString("mongo_uri"); uri != "" {
		cfg.Mongo.URI = uri
	}
	cfg.Mongo.Database = viper.GetString("mongo.database")
	if name := viper.GetString("mongo_db_name"); name != "" {
		cfg.Mongo.Database = name
	}
	cfg.Mongo.MaxPoolSize = uint64(viper.GetInt("mongo.max_pool_size"))
	cfg.Mongo.ServerSelectionTimeout = viper.GetDuration("mongo.server_selection_timeout")
	cfg.Mongo.SocketTimeout = viper.GetDuration("mongo.socket_timeout")

	// Redis
	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.AnalyticsTTL = viper.GetDuration("redis.analytics_ttl")

	// Auth
	cfg.JWT.AccessSecret = viper.GetString("jwt.access_secret")
	if secret := viper.GetString("access_token_secret"); secret != "" {
		cfg.JWT.AccessSecret = secret
	}
	cfg.JWT.AccessTTL = viper.GetDuration("jwt.access_ttl")
	cfg.JWT.RefreshSecret = viper.GetString("jwt.refresh_secret")
	if secret := viper.GetString("refresh_token_secret"); secret != "" {
		cfg.JWT.RefreshSecret = secret
	}
	cfg.JWT.RefreshTTL = viper.GetDuration("jwt.refresh_ttl")
	cfg.Cookie.Secure = viper.GetBool("cookie.secure")
	cfg.Cookie.HTTPOnly = viper.GetBool("cookie.http_only")
	cfg.Cookie.Domain = viper.GetString("cookie.domain")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	cfg.LLM.Temperature = viper.GetFloat64("llm.temperature")
	cfg.LLM.MaxTokens = viper.GetInt("llm.max_tokens")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// Without a providers list, OPENAI_API_KEY and GEMINI_API_KEY enable the
	// default providers, OpenAI first.
	if len(cfg.LLM.Providers) == 0 {
		if key := viper.GetString("openai_api_key"); key != "" {
			cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
				Name:     "openai",
				Enabled:  true,
				Priority: 1,
				APIKey:   key,
				Model:    viper.GetString("openai_model"),
			})
		}
		if key := viper.GetString("gemini_api_key"); key != "" {
			cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
				Name:     "gemini",
				Enabled:  true,
				Priority: len(cfg.LLM.Providers) + 1,
				APIKey:   key,
				Model:    viper.GetString("gemini_model"),
			})
		}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	// LangFlow
	cfg.LangFlow.APIKey = viper.GetString("langflow.api_key")
	if key := viper.GetString("langflow_api_key"); key != "" {
		cfg.LangFlow.APIKey = key
	}
	cfg.LangFlow.URL = viper.GetString("langflow.url")
	if url := viper.GetString("langflow_url"); url != "" {
		cfg.LangFlow.URL = url
	}
	cfg.LangFlow.Timeout = viper.GetDuration("langflow.timeout")

	cfg.App.Timezone = viper.GetString("app.timezone")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.trusted_proxies", "")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("cors.allowed_origins", "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173")
	viper.SetDefault("rate_limit.requests_per_min", 30)

	viper.SetDefault("mongo.uri", "mongodb://localhost:27017")
	viper.SetDefault("mongo.database", "taskmint")
	viper.SetDefault("mongo.max_pool_size", 10)
	viper.SetDefault("mongo.server_selection_timeout", "5s")
	viper.SetDefault("mongo.socket_timeout", "45s")

	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.analytics_ttl", "5m")

	viper.SetDefault("jwt.access_ttl", "24h")
	viper.SetDefault("jwt.refresh_ttl", "240h")
	viper.SetDefault("cookie.secure", true)
	viper.SetDefault("cookie.http_only", true)

	// LLM defaults: one provider call per extraction request.
	viper.SetDefault("llm.fallback_enabled", false)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
	viper.SetDefault("llm.temperature", 0.3)
	viper.SetDefault("llm.max_tokens", 1024)

	viper.SetDefault("langflow.timeout", "60s")

	viper.SetDefault("app.timezone", "UTC")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration. An empty provider list is
// allowed: the voice endpoint then reports a misconfigured service.
func validateLLMConfig(cfg *LLMConfig) error {
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = 1
	}

	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
