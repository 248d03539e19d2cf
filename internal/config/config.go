package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the classroom backend
type Config struct {
	LLM     LLMConfig     `json:"llm"`
	LiveKit LiveKitConfig `json:"livekit"`
	Server  ServerConfig  `json:"server"`
	Log     LogConfig     `json:"log"`
	Tracing TracingConfig `json:"tracing"`
}

// LLMConfig holds the chat-completion API configuration (Groq or any OpenAI-compatible endpoint)
type LLMConfig struct {
	URL          string        `json:"url"`
	APIKey       string        `json:"api_key"`
	Model        string        `json:"model"`
	Temperature  float64       `json:"temperature"`
	Timeout      time.Duration `json:"timeout"`
	SystemPrompt string        `json:"system_prompt"`
}

// LiveKitConfig holds LiveKit server configuration
type LiveKitConfig struct {
	URL       string        `json:"url"`        // WebSocket URL handed to clients (e.g., wss://example.livekit.cloud)
	APIKey    string        `json:"api_key"`    // LiveKit API key
	APISecret string        `json:"api_secret"` // LiveKit API secret
	TokenTTL  time.Duration `json:"token_ttl"`  // Validity of issued access tokens
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host        string   `json:"host"`
	Port        int      `json:"port"`
	CORSOrigins []string `json:"cors_origins"` // "*" allows any origin
}

// LogConfig selects the zap encoder setup
type LogConfig struct {
	Mode string `json:"mode"` // "production" or "development"
}

// TracingConfig toggles the stdout OpenTelemetry exporter
type TracingConfig struct {
	Enabled     bool   `json:"enabled"`
	ServiceName string `json:"service_name"`
}

// DefaultSystemPrompt is sent ahead of every relayed question
const DefaultSystemPrompt = "You are a teacher assistant. Answer clearly in short or medium length."

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			URL:          "https://api.groq.com/openai/v1",
			APIKey:       "",
			Model:        "llama-3.1-8b-instant",
			Temperature:  0.3,
			Timeout:      60 * time.Second,
			SystemPrompt: DefaultSystemPrompt,
		},
		LiveKit: LiveKitConfig{
			TokenTTL: 6 * time.Hour,
		},
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        3001,
			CORSOrigins: []string{"*"},
		},
		Log: LogConfig{
			Mode: "development",
		},
		Tracing: TracingConfig{
			Enabled:     false,
			ServiceName: "classroom-api",
		},
	}
}

// envString loads a string environment variable into the target pointer if set
func envString(key string, target *string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

// envInt loads an integer environment variable into the target pointer if set and valid
func envInt(key string, target *int) {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			*target = i
		}
	}
}

// envFloat loads a float64 environment variable into the target pointer if set and valid
func envFloat(key string, target *float64) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*target = f
		}
	}
}

// envBool loads a boolean environment variable into the target pointer if set and valid
func envBool(key string, target *bool) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*target = b
		}
	}
}

// envDuration accepts Go duration strings ("90s") or plain seconds ("90")
func envDuration(key string, target *time.Duration) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	if d, err := time.ParseDuration(v); err == nil {
		*target = d
		return
	}
	if secs, err := strconv.Atoi(v); err == nil {
		*target = time.Duration(secs) * time.Second
	}
}

// envStringSlice loads a comma-separated environment variable into a string slice
func envStringSlice(key string, target *[]string) {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			*target = result
		}
	}
}

// Load loads configuration from a .env file, an optional JSON config file and environment variables
func Load() (*Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if configPath := os.Getenv("CLASSROOM_CONFIG"); configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	// LLM configuration
	envString("GROQ_BASE_URL", &cfg.LLM.URL)
	envString("GROQ_API_KEY", &cfg.LLM.APIKey)
	envString("GROQ_MODEL", &cfg.LLM.Model)
	envFloat("GROQ_TEMPERATURE", &cfg.LLM.Temperature)
	envDuration("GROQ_TIMEOUT", &cfg.LLM.Timeout)

	// LiveKit configuration
	envString("LIVEKIT_URL", &cfg.LiveKit.URL)
	envString("LIVEKIT_API_KEY", &cfg.LiveKit.APIKey)
	envString("LIVEKIT_API_SECRET", &cfg.LiveKit.APISecret)
	envDuration("LIVEKIT_TOKEN_TTL", &cfg.LiveKit.TokenTTL)

	// Server configuration
	envString("SERVER_HOST", &cfg.Server.Host)
	envInt("PORT", &cfg.Server.Port)
	envStringSlice("CORS_ORIGINS", &cfg.Server.CORSOrigins)

	envString("LOG_MODE", &cfg.Log.Mode)
	envBool("TRACING_ENABLED", &cfg.Tracing.Enabled)
}

// IsLiveKitConfigured returns true if all three LiveKit values are present
func (c *Config) IsLiveKitConfigured() bool {
	return c.LiveKit.URL != "" && c.LiveKit.APIKey != "" && c.LiveKit.APISecret != ""
}

// Addr returns the listen address of the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// isValidURL validates that a URL has proper format
func isValidURL(urlStr string) bool {
	u, err := url.Parse(urlStr)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// Validate checks that the configuration has valid values.
// Missing LiveKit credentials are not an error here: /token reports them per request.
func (c *Config) Validate() error {
	var errs []string

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, "server port must be between 1 and 65535")
	}

	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		errs = append(errs, "LLM temperature must be between 0 and 2")
	}
	if c.LLM.URL == "" {
		errs = append(errs, "LLM URL is required")
	} else if !isValidURL(c.LLM.URL) {
		errs = append(errs, "LLM URL must be a valid URL")
	}
	if c.LLM.Model == "" {
		errs = append(errs, "LLM model is required")
	}
	if c.LLM.Timeout <= 0 {
		errs = append(errs, "LLM timeout must be positive")
	}

	if c.LiveKit.URL != "" && !isValidURL(c.LiveKit.URL) {
		errs = append(errs, "LiveKit URL must be a valid URL")
	}
	if c.LiveKit.TokenTTL <= 0 {
		errs = append(errs, "LiveKit token TTL must be positive")
	}

	if c.Log.Mode != "production" && c.Log.Mode != "development" {
		errs = append(errs, "log mode must be 'production' or 'development'")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}
	return nil
}
