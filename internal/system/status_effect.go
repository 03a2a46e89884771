package system

import (
	"time"

	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/config"
	"grid-tower-defense/internal/defs"
)

// StatusEffectSystem управляет жизненным циклом эффектов, таких как замедление.
type StatusEffectSystem struct{}

func NewStatusEffectSystem() *StatusEffectSystem {
	return &StatusEffectSystem{}
}

// Update advances every effect on the enemy and drops the expired ones.
// Modifiers are derived from the active set, so dropping an effect reverts it.
func (s *StatusEffectSystem) Update(enemy *component.Enemy, deltaTime time.Duration) {
	kept := enemy.Effects[:0]
	for _, effect := range enemy.Effects {
		effect.Remaining -= deltaTime
		if effect.Expired() {
			continue
		}
		kept = append(kept, effect)
	}
	enemy.Effects = kept
}

// ApplyEffect attaches an effect, or refreshes the one of the same type.
func ApplyEffect(enemy *component.Enemy, effectType defs.EffectType, duration time.Duration) {
	for i := range enemy.Effects {
		if enemy.Effects[i].Type == effectType {
			enemy.Effects[i].Duration = duration
			enemy.Effects[i].Remaining = duration
			return
		}
	}
	enemy.Effects = append(enemy.Effects, component.StatusEffect{
		Type:      effectType,
		Duration:  duration,
		Remaining: duration,
	})
}

// SpeedMultiplier returns the factor the active effects apply to base speed.
func SpeedMultiplier(enemy *component.Enemy) float64 {
	multiplier := 1.0
	for _, effect := range enemy.Effects {
		switch effect.Type {
		case defs.EffectSlow:
			multiplier *= config.SlowFactor
		}
	}
	return multiplier
}
