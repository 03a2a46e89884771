package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/entity"
)

// Враги размером 50, поэтому центр смещён на 25 от позиции.
func TestChooseTargetsSingleClosest(t *testing.T) {
	w := entity.NewWorld()
	far := newEnemy(w, defs.EnemyNormal, 150, -25)
	near := newEnemy(w, defs.EnemyNormal, 75, -25)
	newEnemy(w, defs.EnemyNormal, 500, -25)
	origin := component.Position{X: 25, Y: 0}

	targets := ChooseTargets(defs.TargetSingleClosest, w.Enemies(), origin, 200)

	require.Len(t, targets, 1)
	assert.Equal(t, near.ID, targets[0].ID)
	assert.NotEqual(t, far.ID, targets[0].ID)
}

func TestChooseTargetsSingleClosestTieKeepsSpawnOrder(t *testing.T) {
	w := entity.NewWorld()
	first := newEnemy(w, defs.EnemyNormal, 75, -25)
	newEnemy(w, defs.EnemyFast, -125, -25)
	origin := component.Position{X: 0, Y: 0}

	targets := ChooseTargets(defs.TargetSingleClosest, w.Enemies(), origin, 200)

	require.Len(t, targets, 1)
	assert.Equal(t, first.ID, targets[0].ID)
}

func TestChooseTargetsAllInRangeInclusive(t *testing.T) {
	w := entity.NewWorld()
	edge := newEnemy(w, defs.EnemyNormal, 125, -25) // центр ровно на 150
	inside := newEnemy(w, defs.EnemyNormal, 0, -25) // центр на 25
	newEnemy(w, defs.EnemyNormal, 126, -25)         // 151, снаружи
	dead := newEnemy(w, defs.EnemyNormal, 10, -25)
	dead.Alive = false
	origin := component.Position{X: 0, Y: 0}

	targets := ChooseTargets(defs.TargetAllInRange, w.Enemies(), origin, 150)

	require.Len(t, targets, 2)
	assert.Equal(t, edge.ID, targets[0].ID)
	assert.Equal(t, inside.ID, targets[1].ID)
}

func TestChooseTargetsNothingInRange(t *testing.T) {
	w := entity.NewWorld()
	newEnemy(w, defs.EnemyNormal, 1000, 1000)

	assert.Empty(t, ChooseTargets(defs.TargetSingleClosest, w.Enemies(), component.Position{}, 200))
	assert.Empty(t, ChooseTargets(defs.TargetAllInRange, w.Enemies(), component.Position{}, 200))
}
