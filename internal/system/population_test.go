package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/entity"
	"grid-tower-defense/internal/event"
)

func TestPopulationSpawnsAtPathStart(t *testing.T) {
	w := entity.NewWorld()
	d := event.NewDispatcher()
	rec := record(d, event.EnemySpawned)
	ps := NewPopulationSystem(w, straightPath(), nil, d)

	ps.SpawnEnemy(defs.EnemyFast)

	enemies := w.Enemies()
	require.Len(t, enemies, 1)
	e := enemies[0]
	assert.Equal(t, 0.0, e.Position.X)
	assert.Equal(t, 0, e.Path.Target)
	assert.Equal(t, 300, e.Health.Value)
	assert.Equal(t, 200.0, e.Velocity.Speed)
	assert.True(t, e.Alive)
	assert.Equal(t, 1, rec.count(event.EnemySpawned))
	assert.False(t, ps.HasEnded())
}

func TestPopulationWalksEnemyToTheEnd(t *testing.T) {
	w := entity.NewWorld()
	d := event.NewDispatcher()
	rec := record(d, event.EnemyReachedEnd, event.WavesExhausted)
	ps := NewPopulationSystem(w, straightPath(), mustScript(t, "N,1"), d)

	n := 0
	for ; n < 1000 && !ps.HasEnded(); n++ {
		ps.Update(tick)
	}

	assert.True(t, ps.HasEnded())
	assert.Equal(t, 1, ps.Spawned())
	assert.Equal(t, 1, rec.count(event.EnemyReachedEnd))
	assert.Equal(t, 1, rec.count(event.WavesExhausted))
	// тик появления, по 99 шагов на каждый отрезок в 300px
	// (последний шаг защёлкивается), и ещё тик на снятие с поля
	assert.Equal(t, 1+99+99+1, n)
	assert.Zero(t, w.EnemyCount())
}

func TestPopulationRemovesDeadEnemies(t *testing.T) {
	w := entity.NewWorld()
	d := event.NewDispatcher()
	rec := record(d, event.EnemyReachedEnd)
	ps := NewPopulationSystem(w, straightPath(), nil, d)
	ps.SpawnEnemy(defs.EnemyNormal)
	ps.SpawnEnemy(defs.EnemyBoss)

	w.Enemies()[0].Alive = false
	ps.Update(tick)

	require.Equal(t, 1, w.EnemyCount())
	assert.Equal(t, defs.EnemyBoss, w.Enemies()[0].Kind)
	assert.Zero(t, rec.count(event.EnemyReachedEnd))
}

func TestPopulationResetReloadsScript(t *testing.T) {
	w := entity.NewWorld()
	ps := NewPopulationSystem(w, straightPath(), mustScript(t, "B,1"), event.NewDispatcher())
	ps.Update(tick)
	require.Equal(t, 1, ps.Spawned())
	assert.False(t, ps.Spawner().HasMoreInstructions())

	w.Clear()
	ps.Reset(mustScript(t, "B,1"))

	assert.Zero(t, ps.Spawned())
	assert.True(t, ps.Spawner().HasMoreInstructions())
	assert.False(t, ps.HasEnded())
}
