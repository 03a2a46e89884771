// internal/app/tower_management.go
package app

import (
	log "github.com/sirupsen/logrus"

	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/event"
	"grid-tower-defense/pkg/gridmap"
)

// PlaceTower attempts to build a tower of the given kind on the build slot
// under the pixel point. It fails, leaving state unchanged, when the match is
// over, the kind is unaffordable or the point is not an open slot.
func (g *Game) PlaceTower(x, y float64, kind defs.TowerKind) bool {
	if !g.canPlaceTower(kind) {
		return false
	}
	cell, ok := g.Grid.SlotAt(x, y)
	if !ok {
		log.WithFields(log.Fields{"x": x, "y": y}).Warn("no open build slot under point")
		return false
	}

	tower := g.createTowerEntity(cell, kind)
	g.Grid.Occupy(cell, tower.ID)
	g.Match.Cash -= defs.TowerLibrary[kind].Cost
	g.Match.Phase = component.PhasePlaying
	g.Match.PendingKind = ""

	log.WithFields(log.Fields{"kind": kind, "cell": cell, "cash": g.Match.Cash}).Info("tower placed")
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.TowerPayload{ID: tower.ID, Kind: kind},
	})
	return true
}

func (g *Game) canPlaceTower(kind defs.TowerKind) bool {
	if g.Match.Phase == component.PhaseOver {
		return false
	}
	def, ok := defs.TowerLibrary[kind]
	if !ok {
		log.WithField("kind", kind).Warn("unknown tower kind")
		return false
	}
	if g.Match.Cash < def.Cost {
		log.WithFields(log.Fields{"kind": kind, "cost": def.Cost, "cash": g.Match.Cash}).Warn("not enough cash")
		return false
	}
	return true
}

// CanAfford reports whether a tower of this kind may be bought right now.
func (g *Game) CanAfford(kind defs.TowerKind) bool {
	def, ok := defs.TowerLibrary[kind]
	return ok && g.Match.Phase != component.PhaseOver && g.Match.Cash >= def.Cost
}

// SelectTower enters the placing phase for an affordable kind.
func (g *Game) SelectTower(kind defs.TowerKind) bool {
	if !g.CanAfford(kind) {
		return false
	}
	g.Match.Phase = component.PhasePlacing
	g.Match.PendingKind = kind
	return true
}

// CancelPlacement drops the pending purchase.
func (g *Game) CancelPlacement() {
	if g.Match.Phase != component.PhasePlacing {
		return
	}
	g.Match.Phase = component.PhasePlaying
	g.Match.PendingKind = ""
}

// PlacePending builds the selected kind at the point. A miss keeps the
// selection so the player can click again.
func (g *Game) PlacePending(x, y float64) bool {
	if g.Match.Phase != component.PhasePlacing || g.Match.PendingKind == "" {
		return false
	}
	return g.PlaceTower(x, y, g.Match.PendingKind)
}

func (g *Game) createTowerEntity(cell gridmap.Point, kind defs.TowerKind) *component.Tower {
	def := defs.TowerLibrary[kind]
	x, y := g.Grid.CellOrigin(cell)
	tower := &component.Tower{
		ID:       g.World.NewEntity(),
		Kind:     kind,
		Cell:     cell,
		Position: component.Position{X: x, Y: y},
		Size:     g.Grid.BlockSize,
		Combat: component.Combat{
			Range:        def.Range,
			FireInterval: def.FireInterval,
			Cooldown:     def.FireInterval,
		},
		Targeting: def.Targeting,
		Attack:    def.Attack,
	}
	g.World.AddTower(tower)
	return tower
}
