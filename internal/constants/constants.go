package constants

import "time"

const (
	// MatchHistoryBatchSize is the upstream page size for match-ID requests.
	MatchHistoryBatchSize = 100

	// MaxMatchHistory caps how many recent match IDs are pulled per player.
	MaxMatchHistory = 500
)

const (
	// HistoryBatchDelay spaces consecutive history pages for one player.
	HistoryBatchDelay = 120 * time.Millisecond

	// DetailFetchDelay spaces consecutive match-detail fetches.
	DetailFetchDelay = 120 * time.Millisecond

	// RateLimitBackoff is how long a 429'd history page waits before the
	// same page is requested again.
	RateLimitBackoff = 2 * time.Second
)

const (
	// MatchCacheTTL bounds how long a cached match record may be reused.
	// Finished matches are immutable upstream, so this can be generous.
	MatchCacheTTL = 24 * time.Hour
)

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 120 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)
