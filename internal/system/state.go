// internal/system/state.go
package system

import (
	log "github.com/sirupsen/logrus"

	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/config"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/event"
)

const (
	WinMessage  = "Game Won!"
	LoseMessage = "Game Over! You Lost! :("
)

// StateSystem ведёт экономику матча и решает, когда он окончен.
type StateSystem struct {
	match           *component.Match
	population      *PopulationSystem
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(match *component.Match, population *PopulationSystem, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		match:           match,
		population:      population,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.EnemyKilled, ss)
	eventDispatcher.Subscribe(event.EnemyReachedEnd, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	payload, _ := e.Data.(event.EnemyPayload)
	switch e.Type {
	case event.EnemyKilled:
		s.GainCash(config.KillReward)
		s.GainScore(payload.Kind)
	case event.EnemyReachedEnd:
		s.DamageBase(config.DamagePerEnemy)
		log.WithFields(log.Fields{"id": payload.ID, "base": s.match.BaseHealth}).Debug("enemy reached the base")
	}
}

// DamageBase lowers base health, never below zero. A base at zero ends the match.
func (s *StateSystem) DamageBase(amount int) {
	if amount <= 0 {
		return
	}
	s.match.BaseHealth = max(0, s.match.BaseHealth-amount)
	if s.match.BaseHealth == 0 && s.match.Phase != component.PhaseOver {
		s.finish(false, LoseMessage)
	}
}

func (s *StateSystem) GainCash(amount int) {
	s.match.Cash += amount
}

// GainScore adds the score value of a killed enemy kind.
func (s *StateSystem) GainScore(kind defs.EnemyKind) {
	s.match.Score += defs.EnemyLibrary[kind].Score
}

// Update checks the end conditions once the tick's simulation has run.
// Loss is checked first: a base at zero loses even if the field is empty.
func (s *StateSystem) Update() {
	if s.match.Phase == component.PhaseOver {
		return
	}
	switch {
	case s.match.BaseHealth <= 0:
		s.finish(false, LoseMessage)
	case s.population.HasEnded():
		s.finish(true, WinMessage)
	}
}

func (s *StateSystem) finish(won bool, message string) {
	s.match.Phase = component.PhaseOver
	s.match.Won = won
	s.match.Message = message
	s.match.PendingKind = ""
	log.WithFields(log.Fields{"won": won, "score": s.match.Score}).Info(message)
	s.eventDispatcher.Dispatch(event.Event{Type: event.MatchOver, Data: won})
}
