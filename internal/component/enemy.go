package component

import (
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/types"
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	ID         types.EntityID
	Kind       defs.EnemyKind
	Position   Position
	Size       float64
	Velocity   Velocity
	Health     Health
	Path       PathFollower
	Effects    []StatusEffect
	Alive      bool
	ReachedEnd bool // Достиг ли враг конца пути
}

// Center returns the middle of the enemy's square.
func (e *Enemy) Center() Position {
	return Position{X: e.Position.X + e.Size/2, Y: e.Position.Y + e.Size/2}
}

// Expired reports whether the enemy should leave the live set.
func (e *Enemy) Expired() bool {
	return !e.Alive || e.ReachedEnd
}

// HasEffect reports whether an effect of the given type is active.
func (e *Enemy) HasEffect(t defs.EffectType) bool {
	for _, effect := range e.Effects {
		if effect.Type == t {
			return true
		}
	}
	return false
}
