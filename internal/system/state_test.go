package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/entity"
	"grid-tower-defense/internal/event"
)

func newMatch() *component.Match {
	return &component.Match{Phase: component.PhasePlaying, Cash: 150, BaseHealth: 100}
}

func TestStateSystemRewardsKills(t *testing.T) {
	d := event.NewDispatcher()
	match := newMatch()
	NewStateSystem(match, NewPopulationSystem(entity.NewWorld(), straightPath(), nil, d), d)

	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyPayload{ID: 1, Kind: defs.EnemyNormal}})
	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyPayload{ID: 2, Kind: defs.EnemyBoss}})

	assert.Equal(t, 170, match.Cash)
	assert.Equal(t, 3, match.Score)
}

func TestStateSystemBaseDamageClampsAtZero(t *testing.T) {
	d := event.NewDispatcher()
	match := newMatch()
	match.BaseHealth = 7
	NewStateSystem(match, NewPopulationSystem(entity.NewWorld(), straightPath(), nil, d), d)

	d.Dispatch(event.Event{Type: event.EnemyReachedEnd, Data: event.EnemyPayload{ID: 1, Kind: defs.EnemyFast}})
	assert.Equal(t, 2, match.BaseHealth)
	assert.Equal(t, component.PhasePlaying, match.Phase)
	d.Dispatch(event.Event{Type: event.EnemyReachedEnd, Data: event.EnemyPayload{ID: 2, Kind: defs.EnemyFast}})
	assert.Equal(t, 0, match.BaseHealth)
	assert.Equal(t, component.PhaseOver, match.Phase, "base at zero ends the match at once")
	assert.Equal(t, LoseMessage, match.Message)
}

func TestStateSystemLossTakesPrecedence(t *testing.T) {
	d := event.NewDispatcher()
	rec := record(d, event.MatchOver)
	match := newMatch()
	match.BaseHealth = 0
	// пустой скрипт и пустое поле: условие победы тоже выполнено
	ss := NewStateSystem(match, NewPopulationSystem(entity.NewWorld(), straightPath(), nil, d), d)

	ss.Update()
	ss.Update()

	assert.Equal(t, component.PhaseOver, match.Phase)
	assert.False(t, match.Won)
	assert.Equal(t, LoseMessage, match.Message)
	assert.Equal(t, 1, rec.count(event.MatchOver))
}

func TestStateSystemWinWhenPopulationEnds(t *testing.T) {
	d := event.NewDispatcher()
	w := entity.NewWorld()
	match := newMatch()
	ps := NewPopulationSystem(w, straightPath(), mustScript(t, "N,1"), d)
	ss := NewStateSystem(match, ps, d)

	ss.Update()
	assert.Equal(t, component.PhasePlaying, match.Phase, "script still pending")

	ps.Update(tick)
	ss.Update()
	assert.Equal(t, component.PhasePlaying, match.Phase, "enemy still alive")

	w.Enemies()[0].Alive = false
	ps.Update(tick)
	ss.Update()
	assert.Equal(t, component.PhaseOver, match.Phase)
	assert.True(t, match.Won)
	assert.Equal(t, WinMessage, match.Message)
}
