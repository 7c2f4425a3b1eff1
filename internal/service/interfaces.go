package service

import (
	"context"

	"riftmates/internal/domain"
	"riftmates/internal/riot"
)

// RiotAPI defines the upstream operations the comparison pipeline needs
type RiotAPI interface {
	// ResolveAccount turns a gameName/tagLine pair into an account record
	ResolveAccount(ctx context.Context, gameName, tagLine, region string) (*riot.Account, error)

	// FetchMatchHistory returns up to maxCount recent match IDs, newest first
	FetchMatchHistory(ctx context.Context, puuid, region string, mode domain.Mode, maxCount int) ([]string, error)

	// FetchMatchDetail returns the full record for one match
	FetchMatchDetail(ctx context.Context, matchID, region string, mode domain.Mode) (*riot.MatchDetail, error)
}

// MatchDetailCache reuses previously fetched match records
type MatchDetailCache interface {
	// Get returns the cached record for a match, or nil on a miss
	Get(ctx context.Context, matchID string, mode domain.Mode) (*riot.MatchDetail, error)

	// Put stores a freshly fetched record
	Put(ctx context.Context, matchID string, mode domain.Mode, detail *riot.MatchDetail) error
}
