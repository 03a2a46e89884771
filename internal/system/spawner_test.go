package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grid-tower-defense/internal/defs"
)

type spawnLog struct {
	kinds []defs.EnemyKind
}

func (l *spawnLog) SpawnEnemy(kind defs.EnemyKind) {
	l.kinds = append(l.kinds, kind)
}

func mustScript(t *testing.T, s string) []defs.SpawnInstruction {
	t.Helper()
	script, err := defs.ParseSpawnScript(s)
	require.NoError(t, err)
	return script
}

func TestSpawnSystemIntervalThenSpawns(t *testing.T) {
	spawned := &spawnLog{}
	ss := NewSpawnSystem(spawned, mustScript(t, "T,2000,N,3"))

	// первый тик срабатывает по начальному периоду 5мс и выставляет интервал
	ss.Update(tick)
	assert.Empty(t, spawned.kinds)
	assert.Equal(t, ticks(100), ss.Period())

	var spawnTicks []int
	for i := 2; i <= 400 && ss.HasMoreInstructions(); i++ {
		before := len(spawned.kinds)
		ss.Update(tick)
		if len(spawned.kinds) > before {
			spawnTicks = append(spawnTicks, i)
		}
	}

	assert.Equal(t, []int{101, 201, 301}, spawnTicks)
	assert.Equal(t, []defs.EnemyKind{defs.EnemyNormal, defs.EnemyNormal, defs.EnemyNormal}, spawned.kinds)
	assert.False(t, ss.HasMoreInstructions(), "queue is empty right after the last spawn")
}

func TestSpawnSystemOneInstructionPerFiring(t *testing.T) {
	spawned := &spawnLog{}
	ss := NewSpawnSystem(spawned, mustScript(t, "N,1,F,1,B,1"))

	ss.Update(tick)
	assert.Equal(t, []defs.EnemyKind{defs.EnemyNormal}, spawned.kinds)
	assert.Len(t, ss.Pending(), 2)

	ss.Update(tick)
	ss.Update(tick)
	assert.Equal(t, []defs.EnemyKind{defs.EnemyNormal, defs.EnemyFast, defs.EnemyBoss}, spawned.kinds)
	assert.False(t, ss.HasMoreInstructions())
}

func TestSpawnSystemZeroCountIsDropped(t *testing.T) {
	spawned := &spawnLog{}
	ss := NewSpawnSystem(spawned, mustScript(t, "N,0,B,1"))

	ss.Update(tick)
	assert.Empty(t, spawned.kinds)
	require.Len(t, ss.Pending(), 1)
	assert.Equal(t, defs.OpSpawnBoss, ss.Pending()[0].Op)

	ss.Update(tick)
	assert.Equal(t, []defs.EnemyKind{defs.EnemyBoss}, spawned.kinds)
}

func TestSpawnSystemEmptyScript(t *testing.T) {
	spawned := &spawnLog{}
	ss := NewSpawnSystem(spawned, nil)

	assert.False(t, ss.HasMoreInstructions())
	ss.Update(ticks(10))
	assert.Empty(t, spawned.kinds)
}

func TestSpawnSystemLoadDoesNotShareScript(t *testing.T) {
	script := mustScript(t, "N,2")
	ss := NewSpawnSystem(&spawnLog{}, script)

	ss.Update(tick)
	assert.Equal(t, 2, script[0].Count, "caller's script is untouched")
	assert.Equal(t, 1, ss.Pending()[0].Count)

	ss.Load(script)
	assert.Equal(t, 2, ss.Pending()[0].Count)
}
