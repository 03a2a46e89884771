// internal/system/population.go
package system

import (
	"time"

	log "github.com/sirupsen/logrus"

	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/config"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/entity"
	"grid-tower-defense/internal/event"
	"grid-tower-defense/pkg/gridmap"
)

// PopulationSystem владеет живыми врагами: выпускает их по скрипту,
// двигает, обновляет эффекты и убирает выбывших.
type PopulationSystem struct {
	world           *entity.World
	path            *gridmap.Path
	eventDispatcher *event.Dispatcher
	spawner         *SpawnSystem
	movement        *MovementSystem
	effects         *StatusEffectSystem
	spawned         int
}

func NewPopulationSystem(world *entity.World, path *gridmap.Path, script []defs.SpawnInstruction, eventDispatcher *event.Dispatcher) *PopulationSystem {
	ps := &PopulationSystem{
		world:           world,
		path:            path,
		eventDispatcher: eventDispatcher,
		movement:        NewMovementSystem(path, eventDispatcher),
		effects:         NewStatusEffectSystem(),
	}
	ps.spawner = NewSpawnSystem(ps, script)
	return ps
}

// Reset reloads the script. The world itself is cleared by the owner.
func (s *PopulationSystem) Reset(script []defs.SpawnInstruction) {
	s.spawner.Load(script)
	s.spawned = 0
}

// Update runs one population tick: spawner, then every live enemy, then cleanup.
func (s *PopulationSystem) Update(deltaTime time.Duration) {
	hadInstructions := s.spawner.HasMoreInstructions()
	s.spawner.Update(deltaTime)
	if hadInstructions && !s.spawner.HasMoreInstructions() {
		s.eventDispatcher.Dispatch(event.Event{Type: event.WavesExhausted})
	}

	for _, enemy := range s.world.Enemies() {
		if enemy.Expired() {
			continue
		}
		s.effects.Update(enemy, deltaTime)
		s.movement.Update(enemy, deltaTime)
	}

	s.world.RemoveExpiredEnemies()
}

// SpawnEnemy places a new enemy of the given kind on the first waypoint.
func (s *PopulationSystem) SpawnEnemy(kind defs.EnemyKind) {
	def, ok := defs.EnemyLibrary[kind]
	if !ok {
		log.WithField("kind", kind).Error("enemy definition not found")
		return
	}

	start := s.path.Start()
	enemy := &component.Enemy{
		ID:       s.world.NewEntity(),
		Kind:     kind,
		Position: component.Position{X: start.X, Y: start.Y},
		Size:     config.BlockSize,
		Velocity: component.Velocity{Speed: def.Speed},
		Health:   component.Health{Value: def.Health, Max: def.Health},
		Path:     component.PathFollower{Target: 0},
		Alive:    true,
	}
	s.world.AddEnemy(enemy)
	s.spawned++

	log.WithFields(log.Fields{"id": enemy.ID, "kind": kind}).Debug("enemy spawned")
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EnemyPayload{ID: enemy.ID, Kind: kind},
	})
}

// HasEnded reports that the script is exhausted and nobody is left alive.
func (s *PopulationSystem) HasEnded() bool {
	return !s.spawner.HasMoreInstructions() && s.world.EnemyCount() == 0
}

// Spawner exposes the script interpreter for inspection.
func (s *PopulationSystem) Spawner() *SpawnSystem {
	return s.spawner
}

// Spawned returns how many enemies were released since the last reset.
func (s *PopulationSystem) Spawned() int {
	return s.spawned
}
