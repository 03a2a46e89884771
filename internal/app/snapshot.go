package app

import (
	"image/color"

	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/types"
	"grid-tower-defense/pkg/gridmap"
)

// EnemyView is a read-only copy of an enemy for renderers.
type EnemyView struct {
	ID            types.EntityID
	Kind          defs.EnemyKind
	X, Y          float64
	Size          float64
	HealthPercent int
	Slowed        bool
}

type TowerView struct {
	ID    types.EntityID
	Kind  defs.TowerKind
	Cell  gridmap.Point
	X, Y  float64
	Size  float64
	Range float64
}

type ProjectileView struct {
	X, Y  float64
	Color color.RGBA
}

// Snapshot — копия состояния матча для отрисовки. Хосты не трогают живые сущности.
type Snapshot struct {
	Width, Height int
	BlockSize     float64
	Cells         []gridmap.Cell
	Path          []gridmap.Waypoint
	Enemies       []EnemyView
	Towers        []TowerView
	Projectiles   []ProjectileView

	Cash        int
	Score       int
	BaseHealth  int
	Phase       component.Phase
	PendingKind defs.TowerKind
	Message     string
	Won         bool

	PendingInstructions int
	Spawned             int
}

// Snapshot copies everything a renderer needs out of the live state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Width:       g.Grid.Width,
		Height:      g.Grid.Height,
		BlockSize:   g.Grid.BlockSize,
		Cells:       g.Grid.Cells(),
		Path:        append([]gridmap.Waypoint(nil), g.Grid.Path.Waypoints...),
		Cash:        g.Match.Cash,
		Score:       g.Match.Score,
		BaseHealth:  g.Match.BaseHealth,
		Phase:       g.Match.Phase,
		PendingKind: g.Match.PendingKind,
		Message:     g.Match.Message,
		Won:         g.Match.Won,

		PendingInstructions: len(g.PopulationSystem.Spawner().Pending()),
		Spawned:             g.PopulationSystem.Spawned(),
	}

	for _, e := range g.World.Enemies() {
		if e.Expired() {
			continue
		}
		s.Enemies = append(s.Enemies, EnemyView{
			ID:            e.ID,
			Kind:          e.Kind,
			X:             e.Position.X,
			Y:             e.Position.Y,
			Size:          e.Size,
			HealthPercent: e.Health.Percent(),
			Slowed:        e.HasEffect(defs.EffectSlow),
		})
	}
	for _, t := range g.World.Towers() {
		s.Towers = append(s.Towers, TowerView{
			ID:    t.ID,
			Kind:  t.Kind,
			Cell:  t.Cell,
			X:     t.Position.X,
			Y:     t.Position.Y,
			Size:  t.Size,
			Range: t.Combat.Range,
		})
		for _, p := range t.Projectiles {
			s.Projectiles = append(s.Projectiles, ProjectileView{X: p.Position.X, Y: p.Position.Y, Color: p.Color})
		}
	}
	return s
}
