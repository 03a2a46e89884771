// internal/system/attack.go
package system

import (
	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/config"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/entity"
	"grid-tower-defense/internal/event"
	"grid-tower-defense/internal/utils"
)

// Fire creates one projectile per target, starting at the tower centre
// and carrying the tower's attack.
func Fire(tower *component.Tower, targets []*component.Enemy) []*component.Projectile {
	if len(targets) == 0 {
		return nil
	}
	def := defs.TowerLibrary[tower.Kind]
	projectiles := make([]*component.Projectile, 0, len(targets))
	for _, target := range targets {
		projectiles = append(projectiles, &component.Projectile{
			Position: tower.Center(),
			TargetID: target.ID,
			Speed:    config.ProjectileSpeed,
			Attack:   tower.Attack,
			Color:    def.Visuals.ProjectileColor,
		})
	}
	return projectiles
}

// OnHit применяет эффект атаки к цели, в которую попал снаряд.
func OnHit(world *entity.World, attack defs.AttackType, target *component.Enemy, eventDispatcher *event.Dispatcher) {
	center := target.Center()

	switch attack {
	case defs.AttackSingle:
		ApplyDamage(world, target.ID, config.SingleTargetDamage, eventDispatcher)
	case defs.AttackArea:
		// Сплэш считается от центра поражённой цели, включая её саму
		for _, enemy := range world.Enemies() {
			if enemy.Expired() {
				continue
			}
			if utils.Distance(center, enemy.Center()) <= config.SplashRadius {
				ApplyDamage(world, enemy.ID, config.AreaDamage, eventDispatcher)
			}
		}
	case defs.AttackSlow:
		if !target.Expired() {
			ApplyEffect(target, defs.EffectSlow, config.SlowDuration)
		}
	}

	eventDispatcher.Dispatch(event.Event{
		Type: event.ProjectileHit,
		Data: event.HitPayload{Target: target.ID, Attack: attack, X: center.X, Y: center.Y},
	})
}
