package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gafferbot/fplgaffer/internal/platform/logging"
)

// Config stores runtime configuration for one gaffer invocation.
type Config struct {
	TeamID                 int64
	FPLBaseURL             string
	FPLTimeout             time.Duration
	FPLMaxRetries          int
	FPLCircuitEnabled      bool
	FPLCircuitFailureCount int
	FPLCircuitOpenTimeout  time.Duration
	FPLCircuitHalfOpenReq  int

	FixtureHorizon   int
	ReplacementLimit int
	RatingStrategy   string
	ReportDir        string

	GroqBaseURL    string
	GroqFreeAPIKey string
	GroqPaidAPIKey string
	AIModel        string
	AITimeout      time.Duration
	AIMaxTokens    int

	LogLevel logging.Level
}

const (
	StrategyWeighted = "weighted"
	StrategyQuantile = "quantile"
)

// AIEnabled reports whether any Groq key is configured. Missing keys
// disable AI features rather than failing the run.
func (c Config) AIEnabled() bool {
	return c.GroqFreeAPIKey != "" || c.GroqPaidAPIKey != ""
}

func Load() (Config, error) {
	teamID, err := getEnvAsInt64("FPL_TEAM_ID", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse FPL_TEAM_ID: %w", err)
	}
	if teamID < 0 {
		return Config{}, fmt.Errorf("FPL_TEAM_ID must be >= 0")
	}

	fplTimeout, err := time.ParseDuration(getEnv("FPL_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FPL_TIMEOUT: %w", err)
	}
	if fplTimeout <= 0 {
		return Config{}, fmt.Errorf("FPL_TIMEOUT must be > 0")
	}

	fplMaxRetries, err := getEnvAsInt("FPL_MAX_RETRIES", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse FPL_MAX_RETRIES: %w", err)
	}
	if fplMaxRetries < 0 {
		return Config{}, fmt.Errorf("FPL_MAX_RETRIES must be >= 0")
	}

	circuitEnabled, err := strconv.ParseBool(getEnv("FPL_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FPL_CIRCUIT_ENABLED: %w", err)
	}
	circuitFailureCount, err := getEnvAsInt("FPL_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse FPL_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if circuitFailureCount < 1 {
		return Config{}, fmt.Errorf("FPL_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	circuitOpenTimeout, err := time.ParseDuration(getEnv("FPL_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FPL_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if circuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("FPL_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	circuitHalfOpenReq, err := getEnvAsInt("FPL_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse FPL_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if circuitHalfOpenReq < 1 {
		return Config{}, fmt.Errorf("FPL_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	fixtureHorizon, err := getEnvAsInt("FIXTURE_HORIZON", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse FIXTURE_HORIZON: %w", err)
	}
	if fixtureHorizon < 1 {
		return Config{}, fmt.Errorf("FIXTURE_HORIZON must be >= 1")
	}

	replacementLimit, err := getEnvAsInt("REPLACEMENT_LIMIT", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse REPLACEMENT_LIMIT: %w", err)
	}
	if replacementLimit < 1 {
		return Config{}, fmt.Errorf("REPLACEMENT_LIMIT must be >= 1")
	}

	ratingStrategy := strings.ToLower(strings.TrimSpace(getEnv("RATING_STRATEGY", StrategyWeighted)))
	switch ratingStrategy {
	case StrategyWeighted, StrategyQuantile:
	default:
		return Config{}, fmt.Errorf("invalid RATING_STRATEGY %q: valid values are %s, %s",
			ratingStrategy, StrategyWeighted, StrategyQuantile)
	}

	aiTimeout, err := time.ParseDuration(getEnv("AI_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse AI_TIMEOUT: %w", err)
	}
	if aiTimeout <= 0 {
		return Config{}, fmt.Errorf("AI_TIMEOUT must be > 0")
	}

	aiMaxTokens, err := getEnvAsInt("AI_MAX_TOKENS", 600)
	if err != nil {
		return Config{}, fmt.Errorf("parse AI_MAX_TOKENS: %w", err)
	}
	if aiMaxTokens < 1 {
		return Config{}, fmt.Errorf("AI_MAX_TOKENS must be >= 1")
	}

	return Config{
		TeamID:                 teamID,
		FPLBaseURL:             strings.TrimSpace(getEnv("FPL_BASE_URL", "https://fantasy.premierleague.com/api")),
		FPLTimeout:             fplTimeout,
		FPLMaxRetries:          fplMaxRetries,
		FPLCircuitEnabled:      circuitEnabled,
		FPLCircuitFailureCount: circuitFailureCount,
		FPLCircuitOpenTimeout:  circuitOpenTimeout,
		FPLCircuitHalfOpenReq:  circuitHalfOpenReq,
		FixtureHorizon:         fixtureHorizon,
		ReplacementLimit:       replacementLimit,
		RatingStrategy:         ratingStrategy,
		ReportDir:              getEnv("REPORT_DIR", "reports"),
		GroqBaseURL:            strings.TrimSpace(getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1")),
		GroqFreeAPIKey:         strings.TrimSpace(getEnv("GROQ_API_KEY_FREE", "")),
		GroqPaidAPIKey:         strings.TrimSpace(getEnv("GROQ_API_KEY_PAID", "")),
		AIModel:                strings.TrimSpace(getEnv("AI_MODEL", "llama-3.3-70b-versatile")),
		AITimeout:              aiTimeout,
		AIMaxTokens:            aiMaxTokens,
		LogLevel:               parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}
	return strconv.Atoi(value)
}

func getEnvAsInt64(key string, fallback int64) (int64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}
	return strconv.ParseInt(value, 10, 64)
}
