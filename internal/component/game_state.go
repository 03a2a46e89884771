package component

import "grid-tower-defense/internal/defs"

// Phase — фаза матча
type Phase int

const (
	PhasePlaying Phase = iota
	PhasePlacing
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePlacing:
		return "placing"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Match aggregates the economy and the overall phase of a match.
type Match struct {
	Phase       Phase
	Cash        int
	Score       int
	BaseHealth  int
	PendingKind defs.TowerKind // выбранная для покупки башня, пусто если нет
	Message     string
	Won         bool
}
