package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"riftmates/internal/config"
	"riftmates/internal/constants"
	"riftmates/internal/domain"
	"riftmates/internal/riot"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// CompareService runs the full reconciliation pipeline: resolve both
// accounts, pull both histories, intersect, then enrich each shared match.
type CompareService struct {
	api    RiotAPI
	cache  MatchDetailCache
	cfg    *config.Config
	logger zerolog.Logger
}

func NewCompareService(api RiotAPI, cache MatchDetailCache, cfg *config.Config, logger zerolog.Logger) *CompareService {
	return &CompareService{api: api, cache: cache, cfg: cfg, logger: logger}
}

func (s *CompareService) Compare(ctx context.Context, player1, player2, region string, mode domain.Mode) (*domain.ComparisonResult, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	name1, tag1, err := splitRiotID(player1)
	if err != nil {
		return nil, err
	}
	name2, tag2, err := splitRiotID(player2)
	if err != nil {
		return nil, err
	}

	if s.cfg.RiotAPIKey == "" {
		return nil, &domain.ConfigurationError{Msg: "Riot API credential is not configured"}
	}

	comparisonID, _ := gonanoid.New()
	log := s.logger.With().
		Str("comparison_id", comparisonID).
		Str("region", region).
		Str("mode", string(mode)).
		Logger()

	log.Info().Str("player1", player1).Str("player2", player2).Msg("starting comparison")

	acc1, acc2, err := s.resolveAccounts(ctx, name1, tag1, name2, tag2, region)
	if err != nil {
		log.Error().Err(err).Msg("account resolution failed")
		return nil, err
	}

	ids1, ids2, err := s.fetchHistories(ctx, acc1.PUUID, acc2.PUUID, region, mode)
	if err != nil {
		log.Error().Err(err).Msg("history fetch failed")
		return nil, err
	}

	shared := intersect(ids1, ids2)
	log.Info().
		Int("player1_matches", len(ids1)).
		Int("player2_matches", len(ids2)).
		Int("shared", len(shared)).
		Msg("match histories reconciled")

	summaries, err := s.buildSummaries(ctx, log, shared, acc1.PUUID, acc2.PUUID, region, mode)
	if err != nil {
		log.Error().Err(err).Msg("match enrichment failed")
		return nil, err
	}

	log.Info().Int("matches", len(summaries)).Msg("comparison completed")

	return &domain.ComparisonResult{
		Player1: domain.PlayerRef{GameName: acc1.GameName, TagLine: acc1.TagLine},
		Player2: domain.PlayerRef{GameName: acc2.GameName, TagLine: acc2.TagLine},
		Matches: summaries,
	}, nil
}

// splitRiotID separates an identifier at its first '#'. Both halves must be
// non-empty; a tag containing further '#' characters is fine.
func splitRiotID(id string) (string, string, error) {
	name, tag, ok := strings.Cut(id, "#")
	if !ok || name == "" || tag == "" {
		return "", "", &domain.ValidationError{Msg: "Invalid player format. Use: Name#TAG"}
	}
	return name, tag, nil
}

// resolveAccounts runs both account lookups concurrently. Either failure
// fails the whole comparison; there is no partial result.
func (s *CompareService) resolveAccounts(ctx context.Context, name1, tag1, name2, tag2, region string) (*riot.Account, *riot.Account, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	g, gCtx := errgroup.WithContext(apiCtx)
	var acc1, acc2 *riot.Account

	g.Go(func() error {
		var err error
		acc1, err = s.api.ResolveAccount(gCtx, name1, tag1, region)
		return err
	})

	g.Go(func() error {
		var err error
		acc2, err = s.api.ResolveAccount(gCtx, name2, tag2, region)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("failed to resolve accounts: %w", err)
	}
	return acc1, acc2, nil
}

// fetchHistories pulls both players' recent match IDs concurrently. No
// tight timeout here: a throttled history page may legitimately wait out
// several backoff rounds.
func (s *CompareService) fetchHistories(ctx context.Context, puuid1, puuid2, region string, mode domain.Mode) ([]string, []string, error) {
	g, gCtx := errgroup.WithContext(ctx)
	var ids1, ids2 []string

	g.Go(func() error {
		var err error
		ids1, err = s.api.FetchMatchHistory(gCtx, puuid1, region, mode, constants.MaxMatchHistory)
		return err
	})

	g.Go(func() error {
		var err error
		ids2, err = s.api.FetchMatchHistory(gCtx, puuid2, region, mode, constants.MaxMatchHistory)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("failed to fetch match histories: %w", err)
	}
	return ids1, ids2, nil
}

// intersect keeps the IDs present in both lists, in player 1's order.
func intersect(ids1, ids2 []string) []string {
	inSecond := make(map[string]struct{}, len(ids2))
	for _, id := range ids2 {
		inSecond[id] = struct{}{}
	}

	shared := make([]string, 0)
	for _, id := range ids1 {
		if _, ok := inSecond[id]; ok {
			shared = append(shared, id)
		}
	}
	return shared
}

// buildSummaries enriches each shared match in order. Upstream fetches are
// sequential and paced; cache hits skip the pacing sleep because they cost
// the upstream nothing. Output order always matches the shared-ID order.
func (s *CompareService) buildSummaries(ctx context.Context, log zerolog.Logger, shared []string, puuid1, puuid2, region string, mode domain.Mode) ([]domain.MatchSummary, error) {
	summaries := make([]domain.MatchSummary, 0, len(shared))

	for i, matchID := range shared {
		detail, cached, err := s.matchDetail(ctx, log, matchID, region, mode)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, projectSummary(detail, matchID, mode, puuid1, puuid2))

		if !cached && i < len(shared)-1 {
			select {
			case <-time.After(s.cfg.DetailFetchDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	return summaries, nil
}

// matchDetail consults the cache before going upstream. Cache failures are
// logged and treated as misses; a failed Put never fails the comparison.
func (s *CompareService) matchDetail(ctx context.Context, log zerolog.Logger, matchID, region string, mode domain.Mode) (*riot.MatchDetail, bool, error) {
	cached, err := s.cache.Get(ctx, matchID, mode)
	if err != nil {
		log.Warn().Err(err).Str("match_id", matchID).Msg("match cache lookup failed")
	}
	if cached != nil {
		log.Debug().Str("match_id", matchID).Msg("match detail served from cache")
		return cached, true, nil
	}

	detail, err := s.api.FetchMatchDetail(ctx, matchID, region, mode)
	if err != nil {
		return nil, false, fmt.Errorf("failed to fetch match detail: %w", err)
	}

	if err := s.cache.Put(ctx, matchID, mode, detail); err != nil {
		log.Warn().Err(err).Str("match_id", matchID).Msg("failed to cache match detail")
	}
	return detail, false, nil
}
