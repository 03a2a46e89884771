package system

import (
	"time"

	"grid-tower-defense/internal/entity"
	"grid-tower-defense/internal/event"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	world       *entity.World
	projectiles *ProjectileSystem
}

func NewCombatSystem(world *entity.World, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		world:       world,
		projectiles: NewProjectileSystem(world, eventDispatcher),
	}
}

// Update runs every tower in placement order: cooldown, a volley when it is
// ready, then the tower's projectiles.
func (s *CombatSystem) Update(deltaTime time.Duration) {
	enemies := s.world.Enemies()
	for _, tower := range s.world.Towers() {
		combat := &tower.Combat
		combat.Cooldown -= deltaTime
		if combat.Cooldown <= 0 {
			// Залп (даже пустой) перезапускает таймер
			combat.Cooldown = combat.FireInterval
			targets := ChooseTargets(tower.Targeting, enemies, tower.Center(), combat.Range)
			tower.Projectiles = append(tower.Projectiles, Fire(tower, targets)...)
		}
		s.projectiles.Update(tower, deltaTime)
	}
}
