package domain

// Mode selects which of the two supported game modes a comparison runs
// against. It picks the upstream API family and the projection shape.
type Mode string

const (
	ModeClassic     Mode = "classic"
	ModeAutoBattler Mode = "auto-battler"
)

// ParseMode maps a request's mode value to a known Mode. Empty or
// unrecognized values fall back to classic, mirroring the best-effort
// posture of region routing.
func ParseMode(s string) Mode {
	if s == string(ModeAutoBattler) {
		return ModeAutoBattler
	}
	return ModeClassic
}
