// component/tower.go
package component

import (
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/types"
	"grid-tower-defense/pkg/gridmap"
)

type Tower struct {
	ID          types.EntityID
	Kind        defs.TowerKind
	Cell        gridmap.Point // Клетка, на которой стоит башня
	Position    Position
	Size        float64
	Combat      Combat
	Targeting   defs.TargetingType
	Attack      defs.AttackType
	Projectiles []*Projectile
}

// Center returns the point projectiles are fired from and range is measured to.
func (t *Tower) Center() Position {
	return Position{X: t.Position.X + t.Size/2, Y: t.Position.Y + t.Size/2}
}
