// Package config loads the process configuration from environment
// variables.
package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
)

// Config aggregates all runtime settings.
type Config struct {
	AI   AIConfig
	Game GameConfig
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	gameCfg, err := loadGameConfig()
	if err != nil {
		return nil, err
	}

	return &Config{AI: ai, Game: gameCfg}, nil
}

// AIConfig describes the completion capability.
type AIConfig struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens *int
	Timeout   time.Duration
}

// GameConfig carries the shell's startup defaults.
type GameConfig struct {
	Rounds      int
	Username    string
	LogDir      string
	TypingDelay time.Duration
}

// NewChatModel builds the completion client from the configured credential.
// The credential is explicit configuration scoped to this client, not
// ambient process state.
func (c AIConfig) NewChatModel(ctx context.Context) (model.BaseChatModel, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key missing: set OPENAI_API_KEY or use 'configure token'")
	}

	cfg := &openai.ChatModelConfig{
		APIKey:    c.APIKey,
		BaseURL:   c.BaseURL,
		Model:     c.Model,
		MaxTokens: c.MaxTokens,
		Timeout:   c.Timeout,
	}

	return openai.NewChatModel(ctx, cfg)
}

func loadAIConfig() (AIConfig, error) {
	maxTokens, err := parseOptionalIntEnv("OPENAI_MAX_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}

	timeoutSeconds, err := parseOptionalIntEnv("OPENAI_TIMEOUT")
	if err != nil {
		return AIConfig{}, err
	}
	var timeout time.Duration
	if timeoutSeconds != nil {
		timeout = time.Duration(*timeoutSeconds) * time.Second
	}

	return AIConfig{
		APIKey:    strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		BaseURL:   strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")),
		Model:     getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
		MaxTokens: maxTokens,
		Timeout:   timeout,
	}, nil
}

func loadGameConfig() (GameConfig, error) {
	rounds := 3
	if override, err := parseOptionalIntEnv("RTT_ROUNDS"); err != nil {
		return GameConfig{}, err
	} else if override != nil {
		if *override < 1 || *override > 5 {
			return GameConfig{}, fmt.Errorf("RTT_ROUNDS must be between 1 and 5, got %d", *override)
		}
		rounds = *override
	}

	typingDelay := 10 * time.Millisecond
	if override, err := parseOptionalIntEnv("RTT_TYPING_DELAY_MS"); err != nil {
		return GameConfig{}, err
	} else if override != nil {
		if *override < 0 {
			return GameConfig{}, fmt.Errorf("RTT_TYPING_DELAY_MS must not be negative, got %d", *override)
		}
		typingDelay = time.Duration(*override) * time.Millisecond
	}

	return GameConfig{
		Rounds:      rounds,
		Username:    getEnvOrDefault("RTT_USERNAME", "default"),
		LogDir:      getEnvOrDefault("RTT_LOG_DIR", "logs"),
		TypingDelay: typingDelay,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
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
