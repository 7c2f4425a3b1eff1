package config

import (
	"os"
	"time"

	"riftmates/internal/constants"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	// RiotAPIKey may legitimately be empty at startup; comparisons report
	// it as a configuration fault per request instead of killing the app.
	RiotAPIKey string

	// RiotBaseURL overrides cluster routing when set (proxies, tests).
	RiotBaseURL string

	DBPath     string
	ServerPort string
	LogLevel   string

	CacheTTL          time.Duration
	HistoryBatchDelay time.Duration
	DetailFetchDelay  time.Duration
	RateLimitBackoff  time.Duration
}

func Load(logger zerolog.Logger) *Config {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		RiotAPIKey:        getEnv("RIOT_API_KEY", ""),
		RiotBaseURL:       getEnv("RIOT_BASE_URL", ""),
		DBPath:            getEnv("DB_PATH", "riftmates.db"),
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		CacheTTL:          constants.MatchCacheTTL,
		HistoryBatchDelay: constants.HistoryBatchDelay,
		DetailFetchDelay:  constants.DetailFetchDelay,
		RateLimitBackoff:  constants.RateLimitBackoff,
	}

	if cfg.RiotAPIKey == "" {
		logger.Warn().Msg("RIOT_API_KEY is not set, comparisons will fail until it is configured")
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Dur("cache_ttl", cfg.CacheTTL).
		Msg("configuration loaded")

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var Module = fx.Provide(Load)
