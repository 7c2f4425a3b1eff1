package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"riftmates/internal/config"
	"riftmates/internal/constants"
	"riftmates/internal/domain"
	"riftmates/internal/riot"

	"github.com/rs/zerolog"
)

// MatchCacheRepository keeps raw upstream match records so repeated
// comparisons over the same matches don't refetch immutable data.
type MatchCacheRepository struct {
	db     *sql.DB
	ttl    time.Duration
	logger zerolog.Logger
}

func NewMatchCacheRepository(sqlDB *sql.DB, cfg *config.Config, logger zerolog.Logger) *MatchCacheRepository {
	return &MatchCacheRepository{
		db:     sqlDB,
		ttl:    cfg.CacheTTL,
		logger: logger,
	}
}

// Get returns the cached record for a match, or nil when absent or expired.
func (r *MatchCacheRepository) Get(ctx context.Context, matchID string, mode domain.Mode) (*riot.MatchDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	var payload string
	var fetchedAt time.Time
	err := r.db.QueryRowContext(ctx,
		"SELECT payload, fetched_at FROM match_cache WHERE match_id = ? AND mode = ?",
		matchID, string(mode),
	).Scan(&payload, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read match cache: %w", err)
	}

	if time.Since(fetchedAt) > r.ttl {
		r.logger.Debug().Str("match_id", matchID).Msg("cached match record expired")
		return nil, nil
	}

	var detail riot.MatchDetail
	if err := json.Unmarshal([]byte(payload), &detail); err != nil {
		return nil, fmt.Errorf("failed to decode cached match %s: %w", matchID, err)
	}
	return &detail, nil
}

// Put stores a fetched record, replacing any previous row for the match.
func (r *MatchCacheRepository) Put(ctx context.Context, matchID string, mode domain.Mode, detail *riot.MatchDetail) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	payload, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("failed to encode match %s: %w", matchID, err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO match_cache (match_id, mode, payload, fetched_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (match_id, mode) DO UPDATE SET
		   payload = excluded.payload,
		   fetched_at = excluded.fetched_at`,
		matchID, string(mode), string(payload), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to write match cache: %w", err)
	}
	return nil
}
