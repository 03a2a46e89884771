// internal/defs/types.go
package defs

// AttackType defines what happens when a tower's projectile lands.
type AttackType string

const (
	AttackSingle AttackType = "SINGLE" // урон одной цели
	AttackArea   AttackType = "AREA"   // урон по площади вокруг точки попадания
	AttackSlow   AttackType = "SLOW"   // замедление вместо урона
)

// TargetingType defines how a tower picks enemies to shoot at.
type TargetingType string

const (
	TargetSingleClosest TargetingType = "SINGLE_CLOSEST"
	TargetAllInRange    TargetingType = "ALL_IN_RANGE"
)

// EffectType identifies a timed status effect. One active effect per type per enemy.
type EffectType string

const (
	EffectSlow EffectType = "SLOW"
)
