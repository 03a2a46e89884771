// internal/component/projectile.go
package component

import (
	"image/color"

	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/types"
)

// Projectile представляет летящий снаряд. Цель хранится по ID:
// снаряд не владеет врагом и узнаёт о его исчезновении через мир.
type Projectile struct {
	Position Position
	TargetID types.EntityID
	Speed    float64
	Attack   defs.AttackType
	Color    color.RGBA
	Expired  bool
}
