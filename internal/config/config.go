package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"dialogen/domain/persona"
	"dialogen/domain/scenario"
	"dialogen/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	LLM        LLMConfig
	Generation GenerationConfig
	Mining     MiningConfig
	Output     OutputConfig
	Database   DatabaseConfig
	Server     ServerConfig
}

// LLMConfig holds model collaborator settings. An Azure endpoint switches the
// client into Azure mode; empty endpoint means api.openai.com.
type LLMConfig struct {
	APIKey      string
	Endpoint    string
	Model       string
	APIVersion  string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// GenerationConfig holds batch-driver settings. Retry count and base delay are
// configuration, not hard-coded constants.
type GenerationConfig struct {
	MaxRetries      int
	RetryDelay      time.Duration
	PersonaPresets  []string
	ScenarioTypes   []string
	Strict          bool
	IncludeMetadata bool
}

// MiningConfig holds miner settings.
type MiningConfig struct {
	SamplesPerLabel int
	Seed            int64
}

// OutputConfig holds dataset sink settings.
type OutputConfig struct {
	Dir    string
	Format string // "json" or "jsonl"
}

// DatabaseConfig holds the optional Postgres persistence settings.
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds the API server settings.
type ServerConfig struct {
	Port string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		LLM: LLMConfig{
			APIKey:      os.Getenv("OPENAI_API_KEY"),
			Endpoint:    os.Getenv("OPENAI_ENDPOINT"),
			Model:       envOr("OPENAI_MODEL", "gpt-4.1"),
			APIVersion:  envOr("OPENAI_API_VERSION", "2025-03-01-preview"),
			Temperature: envFloat("LLM_TEMPERATURE", 0.7),
			MaxTokens:   envInt("LLM_MAX_TOKENS", 2048),
			Timeout:     time.Duration(envInt("LLM_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Generation: GenerationConfig{
			MaxRetries:      envInt("GEN_MAX_RETRIES", 3),
			RetryDelay:      time.Duration(envInt("GEN_RETRY_DELAY_MS", 1000)) * time.Millisecond,
			PersonaPresets:  envList("GEN_PERSONA_PRESETS", []string{"basic_chinese_customer", "business_customer", "tech_support_user"}),
			ScenarioTypes:   envList("GEN_SCENARIO_TYPES", scenario.Categories()),
			Strict:          envBool("GEN_STRICT_LOOKUPS", false),
			IncludeMetadata: envBool("GEN_INCLUDE_METADATA", true),
		},
		Mining: MiningConfig{
			SamplesPerLabel: envInt("MINE_SAMPLES_PER_LABEL", 100),
			Seed:            int64(envInt("MINE_SEED", 42)),
		},
		Output: OutputConfig{
			Dir:    envOr("OUTPUT_DIR", "./output"),
			Format: envOr("OUTPUT_FORMAT", "jsonl"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Server: ServerConfig{
			Port: envOr("SERVER_PORT", "8080"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Output.Format != "json" && c.Output.Format != "jsonl" {
		return errors.New(errors.CodeConfig, "OUTPUT_FORMAT must be json or jsonl")
	}
	if c.Generation.MaxRetries < 1 {
		return errors.New(errors.CodeConfig, "GEN_MAX_RETRIES must be at least 1")
	}
	if c.Generation.Strict {
		// Fail fast on misconfigured preset/scenario lists in strict mode.
		known := make(map[string]bool)
		for _, name := range persona.PresetNames() {
			known[name] = true
		}
		for _, name := range c.Generation.PersonaPresets {
			if !known[name] {
				return errors.New(errors.CodeConfig, "unknown persona preset "+name)
			}
		}
		cats := make(map[string]bool)
		for _, cat := range scenario.Categories() {
			cats[cat] = true
		}
		for _, cat := range c.Generation.ScenarioTypes {
			if !cats[cat] {
				return errors.New(errors.CodeConfig, "unknown scenario category "+cat)
			}
		}
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
