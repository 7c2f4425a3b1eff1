package service

import (
	"testing"

	"riftmates/internal/domain"
	"riftmates/internal/riot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "N/A"},
		{-5, "N/A"},
		{59, "0m 59s"},
		{60, "1m 0s"},
		{1422, "23m 42s"},
		{3600, "60m 0s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDuration(tt.seconds))
	}
}

func TestNormalizeMillis(t *testing.T) {
	// second-resolution values are scaled, millisecond ones pass through
	assert.Equal(t, int64(1700000000000), normalizeMillis(1700000000))
	assert.Equal(t, int64(1700000000000), normalizeMillis(1700000000000))
	assert.Equal(t, int64(0), normalizeMillis(0))
	assert.Equal(t, int64(-1), normalizeMillis(-1))
}

func TestTopTraitsOrdering(t *testing.T) {
	traits := []riot.Trait{
		{Name: "Duelist", NumUnits: 2, Style: 1},
		{Name: "Sorcerer", NumUnits: 6, Style: 3},
		{Name: "Bruiser", NumUnits: 8, Style: 2},
		{Name: "Vanguard", NumUnits: 4, Style: 2},
	}
	assert.Equal(t, "Sorcerer, Bruiser, Vanguard", topTraits(traits, 3))
}

func TestTopTraitsFiltersInactive(t *testing.T) {
	traits := []riot.Trait{
		{Name: "Dormant", NumUnits: 1, Style: 0},
		{Name: "Active", NumUnits: 3, Style: 1},
		{Name: "", NumUnits: 2, Style: 2},
	}
	assert.Equal(t, "Active", topTraits(traits, 3))
}

func TestTopTraitsEmpty(t *testing.T) {
	assert.Equal(t, "", topTraits(nil, 3))
	assert.Equal(t, "", topTraits([]riot.Trait{{Name: "Dormant", Style: 0}}, 3))
}

func TestTopTraitsCapsAtLimit(t *testing.T) {
	traits := []riot.Trait{
		{Name: "A", NumUnits: 9, Style: 4},
		{Name: "B", NumUnits: 8, Style: 4},
		{Name: "C", NumUnits: 7, Style: 3},
		{Name: "D", NumUnits: 6, Style: 2},
	}
	assert.Equal(t, "A, B, C", topTraits(traits, 3))
}

func TestClassicStatsMissingParticipant(t *testing.T) {
	stats := classicStats(nil)
	assert.Equal(t, "N/A", stats.Champion)
	assert.Nil(t, stats.Team)
}

func TestClassicStatsTeams(t *testing.T) {
	blue := classicStats(&riot.Participant{ChampionName: "Ahri", TeamID: 100})
	require.NotNil(t, blue.Team)
	assert.Equal(t, "Ahri", blue.Champion)
	assert.Equal(t, "Blue", *blue.Team)

	red := classicStats(&riot.Participant{ChampionName: "Garen", TeamID: 200})
	require.NotNil(t, red.Team)
	assert.Equal(t, "Red", *red.Team)

	unknown := classicStats(&riot.Participant{ChampionName: "Lux", TeamID: 300})
	assert.Equal(t, "Lux", unknown.Champion)
	assert.Nil(t, unknown.Team, "unrecognized team IDs stay null")
}

func TestAutoBattlerStatsMissingParticipant(t *testing.T) {
	stats := autoBattlerStats(nil)
	assert.Nil(t, stats.Placement)
	assert.Equal(t, "N/A", stats.Traits)
}

func TestAutoBattlerStatsZeroPlacement(t *testing.T) {
	stats := autoBattlerStats(&riot.Participant{Placement: 0})
	assert.Nil(t, stats.Placement)
	assert.Equal(t, "N/A", stats.Traits)
}

func TestProjectSummaryClassic(t *testing.T) {
	detail := &riot.MatchDetail{}
	detail.Info.GameCreation = 1699999999 // second resolution
	detail.Info.GameDuration = 1422
	detail.Info.GameMode = "ARAM"
	detail.Info.Participants = []riot.Participant{
		{PUUID: "p1", ChampionName: "Jinx", TeamID: 100},
		{PUUID: "p2", ChampionName: "Thresh", TeamID: 200},
	}

	summary := projectSummary(detail, "NA1_100", domain.ModeClassic, "p1", "p2")
	assert.Equal(t, "NA1_100", summary.MatchID)
	assert.Equal(t, "ARAM", summary.GameMode)
	assert.Equal(t, int64(1699999999000), summary.Timestamp)
	assert.Equal(t, "23m 42s", summary.Duration)

	p1 := summary.Players.Player1.(domain.ClassicStats)
	require.NotNil(t, p1.Team)
	assert.Equal(t, "Jinx", p1.Champion)
	assert.Equal(t, "Blue", *p1.Team)

	p2 := summary.Players.Player2.(domain.ClassicStats)
	require.NotNil(t, p2.Team)
	assert.Equal(t, "Thresh", p2.Champion)
	assert.Equal(t, "Red", *p2.Team)
}

func TestProjectSummaryEmptyDetail(t *testing.T) {
	summary := projectSummary(&riot.MatchDetail{}, "NA1_0", domain.ModeClassic, "p1", "p2")
	assert.Equal(t, "classic", summary.GameMode, "mode label falls back to the requested mode")
	assert.Equal(t, int64(0), summary.Timestamp)
	assert.Equal(t, "N/A", summary.Duration)

	stats := summary.Players.Player1.(domain.ClassicStats)
	assert.Equal(t, "N/A", stats.Champion)
	assert.Nil(t, stats.Team)
}

func TestProjectSummaryAutoBattlerFallbackLabel(t *testing.T) {
	summary := projectSummary(&riot.MatchDetail{}, "T_0", domain.ModeAutoBattler, "p1", "p2")
	assert.Equal(t, "auto-battler", summary.GameMode)

	stats := summary.Players.Player1.(domain.AutoBattlerStats)
	assert.Nil(t, stats.Placement)
	assert.Equal(t, "N/A", stats.Traits)
}
