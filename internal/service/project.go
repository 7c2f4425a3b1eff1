package service

import (
	"fmt"
	"sort"
	"strings"

	"riftmates/internal/domain"
	"riftmates/internal/riot"
)

// Timestamps below this are second-resolution and get scaled to millis.
const millisThreshold = 100_000_000_000

const topTraitCount = 3

// projectSummary reshapes one raw match record into the mode-specific
// summary. It never fails: unknown or missing fields degrade to null/"N/A"
// placeholders so one malformed match can't abort a comparison.
func projectSummary(detail *riot.MatchDetail, matchID string, mode domain.Mode, puuid1, puuid2 string) domain.MatchSummary {
	summary := domain.MatchSummary{
		MatchID:   matchID,
		GameMode:  gameModeLabel(detail, mode),
		Timestamp: normalizeMillis(matchTimestamp(detail, mode)),
		Duration:  formatDuration(matchDuration(detail, mode)),
	}

	p1 := findParticipant(detail.Info.Participants, puuid1)
	p2 := findParticipant(detail.Info.Participants, puuid2)

	if mode == domain.ModeAutoBattler {
		summary.Players = domain.MatchPlayers{
			Player1: autoBattlerStats(p1),
			Player2: autoBattlerStats(p2),
		}
		return summary
	}

	summary.Players = domain.MatchPlayers{
		Player1: classicStats(p1),
		Player2: classicStats(p2),
	}
	return summary
}

func gameModeLabel(detail *riot.MatchDetail, mode domain.Mode) string {
	if mode == domain.ModeAutoBattler {
		if detail.Info.TFTGameType != "" {
			return detail.Info.TFTGameType
		}
		return string(mode)
	}
	if detail.Info.GameMode != "" {
		return detail.Info.GameMode
	}
	return string(mode)
}

func matchTimestamp(detail *riot.MatchDetail, mode domain.Mode) int64 {
	if mode == domain.ModeAutoBattler {
		return detail.Info.GameDatetime
	}
	return detail.Info.GameCreation
}

// normalizeMillis scales second-resolution timestamps up to milliseconds so
// both modes agree on the unit.
func normalizeMillis(ts int64) int64 {
	if ts > 0 && ts < millisThreshold {
		return ts * 1000
	}
	return ts
}

func matchDuration(detail *riot.MatchDetail, mode domain.Mode) int64 {
	if mode == domain.ModeAutoBattler {
		return int64(detail.Info.GameLength)
	}
	return detail.Info.GameDuration
}

func formatDuration(seconds int64) string {
	if seconds <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
}

func findParticipant(participants []riot.Participant, puuid string) *riot.Participant {
	for i := range participants {
		if participants[i].PUUID == puuid {
			return &participants[i]
		}
	}
	return nil
}

func classicStats(p *riot.Participant) domain.ClassicStats {
	stats := domain.ClassicStats{Champion: "N/A"}
	if p == nil {
		return stats
	}

	if p.ChampionName != "" {
		stats.Champion = p.ChampionName
	}
	switch p.TeamID {
	case 100:
		team := "Blue"
		stats.Team = &team
	case 200:
		team := "Red"
		stats.Team = &team
	}
	return stats
}

func autoBattlerStats(p *riot.Participant) domain.AutoBattlerStats {
	stats := domain.AutoBattlerStats{Traits: "N/A"}
	if p == nil {
		return stats
	}

	if p.Placement > 0 {
		placement := p.Placement
		stats.Placement = &placement
	}
	if traits := topTraits(p.Traits, topTraitCount); traits != "" {
		stats.Traits = traits
	}
	return stats
}

// topTraits ranks active traits by style tier, then unit count, and joins
// the strongest few into a display string.
func topTraits(traits []riot.Trait, limit int) string {
	active := make([]riot.Trait, 0, len(traits))
	for _, t := range traits {
		if t.Style > 0 && t.Name != "" {
			active = append(active, t)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		if active[i].Style != active[j].Style {
			return active[i].Style > active[j].Style
		}
		return active[i].NumUnits > active[j].NumUnits
	})

	if len(active) > limit {
		active = active[:limit]
	}

	names := make([]string, len(active))
	for i, t := range active {
		names[i] = t.Name
	}
	return strings.Join(names, ", ")
}
