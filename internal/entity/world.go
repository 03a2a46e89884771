// internal/entity/world.go
package entity

import (
	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/types"
)

// World holds every simulated entity. Enemies and towers keep insertion
// order so that iteration, and with it the whole simulation, is deterministic.
type World struct {
	NextID types.EntityID

	enemies    map[types.EntityID]*component.Enemy
	enemyOrder []types.EntityID
	towers     []*component.Tower
}

func NewWorld() *World {
	return &World{
		NextID:  1,
		enemies: make(map[types.EntityID]*component.Enemy),
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// AddEnemy puts an enemy into the live set.
func (w *World) AddEnemy(e *component.Enemy) {
	w.enemies[e.ID] = e
	w.enemyOrder = append(w.enemyOrder, e.ID)
}

// Enemy looks up an enemy that is still in the live set, dead or not.
func (w *World) Enemy(id types.EntityID) (*component.Enemy, bool) {
	e, ok := w.enemies[id]
	return e, ok
}

// LiveEnemy returns the enemy only if it is in the set and not expired.
// Это проверка "слабой ссылки" снаряда на цель.
func (w *World) LiveEnemy(id types.EntityID) (*component.Enemy, bool) {
	e, ok := w.enemies[id]
	if !ok || e.Expired() {
		return nil, false
	}
	return e, true
}

// Enemies returns the live set in spawn order.
func (w *World) Enemies() []*component.Enemy {
	out := make([]*component.Enemy, 0, len(w.enemyOrder))
	for _, id := range w.enemyOrder {
		out = append(out, w.enemies[id])
	}
	return out
}

// EnemyCount returns the size of the live set.
func (w *World) EnemyCount() int {
	return len(w.enemyOrder)
}

// RemoveExpiredEnemies drops dead enemies and those that reached the end,
// returning how many were removed.
func (w *World) RemoveExpiredEnemies() int {
	kept := w.enemyOrder[:0]
	removed := 0
	for _, id := range w.enemyOrder {
		if w.enemies[id].Expired() {
			delete(w.enemies, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	w.enemyOrder = kept
	return removed
}

// AddTower registers a placed tower.
func (w *World) AddTower(t *component.Tower) {
	w.towers = append(w.towers, t)
}

// Towers returns the placed towers in placement order.
func (w *World) Towers() []*component.Tower {
	return w.towers
}

// Clear removes every entity. IDs keep increasing so stale references
// from before the clear never resolve.
func (w *World) Clear() {
	w.enemies = make(map[types.EntityID]*component.Enemy)
	w.enemyOrder = nil
	w.towers = nil
}
