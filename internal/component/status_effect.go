// internal/component/status_effect.go
package component

import (
	"time"

	"grid-tower-defense/internal/defs"
)

// StatusEffect is a timed modifier attached to an enemy.
type StatusEffect struct {
	Type      defs.EffectType
	Duration  time.Duration // full length, restored on refresh
	Remaining time.Duration
}

// Expired reports whether the effect has run out.
func (e StatusEffect) Expired() bool {
	return e.Remaining <= 0
}
