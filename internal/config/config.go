package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
)

// Config aggregates every setting the service needs.
type Config struct {
	Server    ServerConfig
	AI        AIConfig
	Interview InterviewConfig
}

// Load reads configuration from environment variables. A missing LLM
// credential is a startup failure: the interviewer cannot run without it.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	interview, err := loadInterviewConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, AI: ai, Interview: interview}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Allow ":8080" or "127.0.0.1:8080" verbatim.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// AIConfig holds the Ark chat-model settings.
type AIConfig struct {
	APIKey      string
	AccessKey   string
	SecretKey   string
	Model       string
	BaseURL     string
	Region      string
	Temperature *float64
	TopP        *float64
	MaxTokens   *int
	Timeout     time.Duration
}

// NewChatModel builds a chat model instance from the configuration.
func (c AIConfig) NewChatModel(ctx context.Context) (model.ChatModel, error) {
	var temperature *float32
	if c.Temperature != nil {
		val := float32(*c.Temperature)
		temperature = &val
	}

	var topP *float32
	if c.TopP != nil {
		val := float32(*c.TopP)
		topP = &val
	}

	cfg := &ark.ChatModelConfig{
		BaseURL:     c.BaseURL,
		Region:      c.Region,
		APIKey:      c.APIKey,
		AccessKey:   c.AccessKey,
		SecretKey:   c.SecretKey,
		Model:       c.Model,
		MaxTokens:   c.MaxTokens,
		Temperature: temperature,
		TopP:        topP,
	}

	return ark.NewChatModel(ctx, cfg)
}

func loadAIConfig() (AIConfig, error) {
	apiKey := strings.TrimSpace(os.Getenv("ARK_API_KEY"))
	accessKey := strings.TrimSpace(os.Getenv("ARK_ACCESS_KEY"))
	secretKey := strings.TrimSpace(os.Getenv("ARK_SECRET_KEY"))
	modelName := strings.TrimSpace(os.Getenv("ARK_MODEL"))

	if modelName == "" {
		return AIConfig{}, fmt.Errorf("ARK_MODEL is required")
	}
	if apiKey == "" && (accessKey == "" || secretKey == "") {
		return AIConfig{}, fmt.Errorf("LLM credential missing: set ARK_API_KEY or the ARK_ACCESS_KEY/ARK_SECRET_KEY pair")
	}

	temperature, err := parseOptionalFloatEnv("ARK_TEMPERATURE")
	if err != nil {
		return AIConfig{}, err
	}

	topP, err := parseOptionalFloatEnv("ARK_TOP_P")
	if err != nil {
		return AIConfig{}, err
	}

	maxTokens, err := parseOptionalIntEnv("ARK_MAX_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}

	timeoutSeconds := 30
	if override, err := parseOptionalIntEnv("ARK_TIMEOUT_SECONDS"); err != nil {
		return AIConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return AIConfig{}, fmt.Errorf("ARK_TIMEOUT_SECONDS must be positive, got %d", *override)
		}
		timeoutSeconds = *override
	}

	return AIConfig{
		APIKey:      apiKey,
		AccessKey:   accessKey,
		SecretKey:   secretKey,
		Model:       modelName,
		BaseURL:     getEnvOrDefault("ARK_BASE_URL", "https://ark.cn-beijing.volces.com/api/v3"),
		Region:      getEnvOrDefault("ARK_REGION", "cn-beijing"),
		Temperature: temperature,
		TopP:        topP,
		MaxTokens:   maxTokens,
		Timeout:     time.Duration(timeoutSeconds) * time.Second,
	}, nil
}

// InterviewConfig holds interview flow and logbook settings.
type InterviewConfig struct {
	DefaultMaxTurns int
	LogDir          string
	RetentionDays   int
}

func loadInterviewConfig() (InterviewConfig, error) {
	maxTurns := 5
	if override, err := parseOptionalIntEnv("INTERVIEW_QUESTIONS"); err != nil {
		return InterviewConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return InterviewConfig{}, fmt.Errorf("INTERVIEW_QUESTIONS must be positive, got %d", *override)
		}
		maxTurns = *override
	}

	retention := 7
	if override, err := parseOptionalIntEnv("LOG_RETENTION_DAYS"); err != nil {
		return InterviewConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return InterviewConfig{}, fmt.Errorf("LOG_RETENTION_DAYS must be positive, got %d", *override)
		}
		retention = *override
	}

	return InterviewConfig{
		DefaultMaxTurns: maxTurns,
		LogDir:          getEnvOrDefault("LOG_DIR", "logs"),
		RetentionDays:   retention,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
