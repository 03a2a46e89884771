// internal/system/movement.go
package system

import (
	"time"

	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/event"
	"grid-tower-defense/internal/utils"
	"grid-tower-defense/pkg/gridmap"
)

// MovementSystem ведёт врагов по точкам маршрута
type MovementSystem struct {
	path            *gridmap.Path
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(path *gridmap.Path, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{path: path, eventDispatcher: eventDispatcher}
}

// Update moves one enemy toward its current waypoint. Arriving at the last
// waypoint dispatches EnemyReachedEnd; the enemy is marked ReachedEnd on its
// next update, so it stays targetable for the rest of the arrival tick.
func (s *MovementSystem) Update(enemy *component.Enemy, deltaTime time.Duration) {
	if enemy.Path.Target < 0 {
		enemy.ReachedEnd = true
		return
	}

	wp := s.path.At(enemy.Path.Target)
	target := component.Position{X: wp.X, Y: wp.Y}
	moveDistance := enemy.Velocity.Speed * SpeedMultiplier(enemy) * deltaTime.Seconds()

	enemy.Position = utils.StepTowards(enemy.Position, target, moveDistance)
	if utils.Distance(enemy.Position, target) > moveDistance {
		return
	}

	// Точка достигнута: встаём ровно на неё и берём следующую
	enemy.Position = target
	enemy.Path.Target = s.path.Next(enemy.Path.Target)
	if enemy.Path.Target < 0 {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.EnemyReachedEnd,
			Data: event.EnemyPayload{ID: enemy.ID, Kind: enemy.Kind},
		})
	}
}
