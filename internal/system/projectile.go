// internal/system/projectile.go
package system

import (
	"time"

	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/entity"
	"grid-tower-defense/internal/event"
	"grid-tower-defense/internal/utils"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(world *entity.World, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
	}
}

// Update advances every projectile of the tower and drops the spent ones.
func (s *ProjectileSystem) Update(tower *component.Tower, deltaTime time.Duration) {
	kept := tower.Projectiles[:0]
	for _, proj := range tower.Projectiles {
		s.Advance(proj, deltaTime)
		if !proj.Expired {
			kept = append(kept, proj)
		}
	}
	// хвост обнуляем, чтобы не держать ссылки на снаряды
	for i := len(kept); i < len(tower.Projectiles); i++ {
		tower.Projectiles[i] = nil
	}
	tower.Projectiles = kept
}

// Advance moves one projectile toward its target's centre. A projectile whose
// target has died or left the field expires without effect.
func (s *ProjectileSystem) Advance(proj *component.Projectile, deltaTime time.Duration) {
	if proj.Expired {
		return
	}
	target, ok := s.world.LiveEnemy(proj.TargetID)
	if !ok {
		proj.Expired = true
		return
	}

	aim := target.Center()
	step := proj.Speed * deltaTime.Seconds()
	proj.Position = utils.StepTowards(proj.Position, aim, step)
	if utils.Distance(proj.Position, aim) <= step {
		OnHit(s.world, proj.Attack, target, s.eventDispatcher)
		proj.Expired = true
	}
}
