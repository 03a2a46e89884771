package system

import (
	"grid-tower-defense/internal/entity"
	"grid-tower-defense/internal/event"
	"grid-tower-defense/internal/types"
)

// ApplyDamage наносит урон врагу. Мёртвые и ушедшие враги урон не получают;
// здоровье не опускается ниже нуля, а событие убийства отправляется ровно один раз.
func ApplyDamage(world *entity.World, enemyID types.EntityID, damage int, eventDispatcher *event.Dispatcher) {
	if damage <= 0 {
		return
	}
	enemy, ok := world.LiveEnemy(enemyID)
	if !ok {
		return
	}

	enemy.Health.Value -= damage
	if enemy.Health.Value > 0 {
		return
	}
	enemy.Health.Value = 0
	enemy.Alive = false
	eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.EnemyPayload{ID: enemy.ID, Kind: enemy.Kind},
	})
}
