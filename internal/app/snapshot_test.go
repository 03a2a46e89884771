package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/config"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/pkg/gridmap"
)

func TestSnapshotCopiesState(t *testing.T) {
	g, err := NewGame(levelWith("N,1", 0))
	require.NoError(t, err)
	require.True(t, g.SelectTower(defs.TowerNormal))
	require.True(t, g.PlacePending(75, 25))
	g.Update(config.TickInterval)

	s := g.Snapshot()

	assert.Equal(t, 10, s.Width)
	assert.Equal(t, 10, s.Height)
	assert.Len(t, s.Cells, 100)
	assert.Len(t, s.Path, 9)
	assert.Equal(t, 100, s.Cash)
	assert.Equal(t, component.PhasePlaying, s.Phase)
	assert.Zero(t, s.PendingInstructions)
	assert.Equal(t, 1, s.Spawned)

	require.Len(t, s.Towers, 1)
	assert.Equal(t, gridmap.Point{X: 1, Y: 0}, s.Towers[0].Cell)
	assert.Equal(t, 200.0, s.Towers[0].Range)

	require.Len(t, s.Enemies, 1)
	assert.Equal(t, defs.EnemyNormal, s.Enemies[0].Kind)
	assert.Equal(t, 100, s.Enemies[0].HealthPercent)
	assert.False(t, s.Enemies[0].Slowed)

	// snapshot is detached from the live state
	s.Cells[1].Tower = 0
	s.Path[0].X = -1
	cell, _ := g.Grid.Cell(1, 0)
	assert.True(t, cell.Occupied())
	assert.Equal(t, 500.0, g.Grid.Path.Start().X)
}

func TestSnapshotShowsSlowAndProjectiles(t *testing.T) {
	g, err := NewGame(levelWith("N,1", 0))
	require.NoError(t, err)
	g.Update(config.TickInterval)
	enemy := g.World.Enemies()[0]
	enemy.Effects = append(enemy.Effects, component.StatusEffect{Type: defs.EffectSlow, Duration: config.SlowDuration, Remaining: config.SlowDuration})
	enemy.Health.Value = 100

	s := g.Snapshot()

	require.Len(t, s.Enemies, 1)
	assert.True(t, s.Enemies[0].Slowed)
	assert.Equal(t, 25, s.Enemies[0].HealthPercent)
	assert.Empty(t, s.Projectiles)
}
