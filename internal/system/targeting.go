package system

import (
	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/utils"
)

// ChooseTargets picks the enemies a tower at origin would fire at this tick.
// Range is measured between centres and is inclusive.
func ChooseTargets(targeting defs.TargetingType, enemies []*component.Enemy, origin component.Position, radius float64) []*component.Enemy {
	switch targeting {
	case defs.TargetAllInRange:
		var targets []*component.Enemy
		for _, enemy := range enemies {
			if enemy.Expired() {
				continue
			}
			if utils.Distance(origin, enemy.Center()) <= radius {
				targets = append(targets, enemy)
			}
		}
		return targets
	case defs.TargetSingleClosest:
		var closest *component.Enemy
		best := radius
		for _, enemy := range enemies {
			if enemy.Expired() {
				continue
			}
			// строгое сравнение: при равенстве остаётся ранний по порядку появления
			d := utils.Distance(origin, enemy.Center())
			if d <= radius && (closest == nil || d < best) {
				closest = enemy
				best = d
			}
		}
		if closest == nil {
			return nil
		}
		return []*component.Enemy{closest}
	default:
		return nil
	}
}
