package entity

import (
	"testing"

	"grid-tower-defense/internal/component"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnemy(w *World) *component.Enemy {
	e := &component.Enemy{ID: w.NewEntity(), Alive: true}
	w.AddEnemy(e)
	return e
}

func TestWorldKeepsSpawnOrder(t *testing.T) {
	w := NewWorld()
	a, b, c := newEnemy(w), newEnemy(w), newEnemy(w)

	got := w.Enemies()
	require.Len(t, got, 3)
	assert.Same(t, a, got[0])
	assert.Same(t, b, got[1])
	assert.Same(t, c, got[2])
}

func TestRemoveExpiredEnemies(t *testing.T) {
	w := NewWorld()
	a, b, c := newEnemy(w), newEnemy(w), newEnemy(w)
	a.Alive = false
	c.ReachedEnd = true

	assert.Equal(t, 2, w.RemoveExpiredEnemies())
	assert.Equal(t, 1, w.EnemyCount())

	_, ok := w.Enemy(a.ID)
	assert.False(t, ok)
	got, ok := w.LiveEnemy(b.ID)
	require.True(t, ok)
	assert.Same(t, b, got)
}

func TestLiveEnemyRejectsDeadButPresent(t *testing.T) {
	w := NewWorld()
	a := newEnemy(w)
	a.Alive = false

	_, ok := w.Enemy(a.ID)
	assert.True(t, ok)
	_, ok = w.LiveEnemy(a.ID)
	assert.False(t, ok)
}

func TestClearKeepsIDsMonotonic(t *testing.T) {
	w := NewWorld()
	a := newEnemy(w)
	w.AddTower(&component.Tower{ID: w.NewEntity()})

	w.Clear()
	assert.Zero(t, w.EnemyCount())
	assert.Empty(t, w.Towers())

	b := newEnemy(w)
	assert.Greater(t, uint64(b.ID), uint64(a.ID))
	_, ok := w.LiveEnemy(a.ID)
	assert.False(t, ok)
}
