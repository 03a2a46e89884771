// internal/event/types.go
package event

import (
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/types"
)

const (
	EnemySpawned    EventType = "EnemySpawned"    // Враг появился
	EnemyKilled     EventType = "EnemyKilled"     // Враг уничтожен, Data: EnemyPayload
	EnemyReachedEnd EventType = "EnemyReachedEnd" // Враг дошёл до базы, Data: EnemyPayload
	ProjectileHit   EventType = "ProjectileHit"   // Снаряд попал, Data: HitPayload
	TowerPlaced     EventType = "TowerPlaced"     // Башня построена, Data: TowerPayload
	WavesExhausted  EventType = "WavesExhausted"  // Скрипт волн закончился
	MatchOver       EventType = "MatchOver"       // Матч окончен, Data: bool (победа)
	MatchRestarted  EventType = "MatchRestarted"
)

// EnemyPayload identifies the enemy an event is about.
type EnemyPayload struct {
	ID   types.EntityID
	Kind defs.EnemyKind
}

// HitPayload describes where and how a projectile landed.
type HitPayload struct {
	Target types.EntityID
	Attack defs.AttackType
	X, Y   float64
}

// TowerPayload describes a freshly placed tower.
type TowerPayload struct {
	ID   types.EntityID
	Kind defs.TowerKind
}
