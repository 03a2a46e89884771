// internal/system/spawner.go
package system

import (
	"time"

	log "github.com/sirupsen/logrus"

	"grid-tower-defense/internal/config"
	"grid-tower-defense/internal/defs"
)

// EnemySpawner creates one enemy of the given kind at the path start.
type EnemySpawner interface {
	SpawnEnemy(kind defs.EnemyKind)
}

// SpawnSystem исполняет скрипт волн: одна инструкция за срабатывание таймера.
type SpawnSystem struct {
	spawner EnemySpawner
	queue   []defs.SpawnInstruction
	period  time.Duration
	elapsed time.Duration
}

func NewSpawnSystem(spawner EnemySpawner, script []defs.SpawnInstruction) *SpawnSystem {
	s := &SpawnSystem{spawner: spawner}
	s.Load(script)
	return s
}

// Load replaces the queue with a copy of script and restarts the timer.
func (s *SpawnSystem) Load(script []defs.SpawnInstruction) {
	s.queue = append([]defs.SpawnInstruction(nil), script...)
	s.period = config.InitialSpawnPeriod
	s.elapsed = 0
}

// Update advances the timer and executes the head instruction when it fires.
func (s *SpawnSystem) Update(deltaTime time.Duration) {
	s.elapsed += deltaTime
	if s.elapsed < s.period {
		return
	}
	s.elapsed = 0
	s.execute()
}

func (s *SpawnSystem) execute() {
	if len(s.queue) == 0 {
		return
	}
	head := &s.queue[0]

	if head.Op == defs.OpSetInterval {
		s.period = time.Duration(head.Count) * time.Millisecond
		log.WithField("period", s.period).Debug("spawn interval changed")
		s.queue = s.queue[1:]
		return
	}

	kind, ok := head.Op.EnemyKind()
	if !ok {
		log.WithField("op", head.Op).Warn("unknown spawn instruction dropped")
		s.queue = s.queue[1:]
		return
	}
	if head.Count > 0 {
		s.spawner.SpawnEnemy(kind)
		head.Count--
	}
	if head.Count <= 0 {
		s.queue = s.queue[1:]
	}
}

// HasMoreInstructions reports whether anything is left in the queue.
func (s *SpawnSystem) HasMoreInstructions() bool {
	return len(s.queue) > 0
}

// Period returns the current interval between instructions.
func (s *SpawnSystem) Period() time.Duration {
	return s.period
}

// Pending returns a copy of the instructions not yet completed.
func (s *SpawnSystem) Pending() []defs.SpawnInstruction {
	return append([]defs.SpawnInstruction(nil), s.queue...)
}
