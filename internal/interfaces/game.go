package interfaces

import (
	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/defs"
)

// MatchController is the command surface a host drives a match through.
type MatchController interface {
	SelectTower(kind defs.TowerKind) bool
	CancelPlacement()
	PlacePending(x, y float64) bool
	Restart()
	Phase() component.Phase
}
