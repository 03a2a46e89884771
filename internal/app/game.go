// internal/app/game.go
package app

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/config"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/entity"
	"grid-tower-defense/internal/event"
	"grid-tower-defense/internal/interfaces"
	"grid-tower-defense/internal/system"
	"grid-tower-defense/pkg/gridmap"
)

var _ interfaces.MatchController = (*Game)(nil)

// Game holds the main game state and logic.
type Game struct {
	Level            defs.Level
	Grid             *gridmap.Grid
	World            *entity.World
	Match            *component.Match
	EventDispatcher  *event.Dispatcher
	PopulationSystem *system.PopulationSystem
	CombatSystem     *system.CombatSystem
	StateSystem      *system.StateSystem

	script       []defs.SpawnInstruction
	startingCash int
	baseHealth   int
	elapsed      time.Duration
}

// NewGame builds a match from a level. Map and script errors are returned
// wrapped; nothing is half-initialised on failure.
func NewGame(level defs.Level) (*Game, error) {
	grid, err := gridmap.Parse(level.Map, config.BlockSize)
	if err != nil {
		return nil, fmt.Errorf("failed to parse map %q: %w", level.Name, err)
	}
	script, err := defs.ParseSpawnScript(level.Spawns)
	if err != nil {
		return nil, fmt.Errorf("failed to parse spawns of %q: %w", level.Name, err)
	}
	if err := defs.ValidateEconomy(level.StartingCash, level.BaseHealth); err != nil {
		return nil, fmt.Errorf("level %q: %w", level.Name, err)
	}

	world := entity.NewWorld()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Level:           level,
		Grid:            grid,
		World:           world,
		Match:           &component.Match{},
		EventDispatcher: eventDispatcher,
		script:          script,
		startingCash:    level.StartingCash,
		baseHealth:      level.BaseHealth,
	}
	if g.startingCash == 0 {
		g.startingCash = config.StartingCash
	}
	if g.baseHealth == 0 {
		g.baseHealth = config.BaseHealth
	}

	g.PopulationSystem = system.NewPopulationSystem(world, grid.Path, script, eventDispatcher)
	g.CombatSystem = system.NewCombatSystem(world, eventDispatcher)
	g.StateSystem = system.NewStateSystem(g.Match, g.PopulationSystem, eventDispatcher)
	g.resetMatch()

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.EnemyKilled, listener)
	eventDispatcher.Subscribe(event.MatchOver, listener)

	log.WithFields(log.Fields{
		"level":     level.Name,
		"waypoints": grid.Path.Len(),
		"slots":     len(grid.OpenSlots()),
	}).Info("match created")
	return g, nil
}

// Update advances the simulation by one tick: population, towers, then the
// end-of-match check. A finished match ignores updates.
func (g *Game) Update(deltaTime time.Duration) {
	if g.Match.Phase == component.PhaseOver {
		return
	}
	g.elapsed += deltaTime
	g.PopulationSystem.Update(deltaTime)
	g.CombatSystem.Update(deltaTime)
	g.StateSystem.Update()
}

// Restart returns the match to its initial state: counters, phase, towers,
// enemies, build slots and the spawn script.
func (g *Game) Restart() {
	g.World.Clear()
	g.Grid.Reset()
	g.PopulationSystem.Reset(g.script)
	g.resetMatch()
	g.elapsed = 0
	log.WithField("level", g.Level.Name).Info("match restarted")
	g.EventDispatcher.Dispatch(event.Event{Type: event.MatchRestarted})
}

func (g *Game) resetMatch() {
	*g.Match = component.Match{
		Phase:      component.PhasePlaying,
		Cash:       g.startingCash,
		BaseHealth: g.baseHealth,
	}
}

// DamageBase subtracts from base health; reaching zero loses the match.
func (g *Game) DamageBase(amount int) {
	g.StateSystem.DamageBase(amount)
}

func (g *Game) GainCash(amount int) {
	g.StateSystem.GainCash(amount)
}

func (g *Game) GainScore(kind defs.EnemyKind) {
	g.StateSystem.GainScore(kind)
}

// Subscribe lets a host listen to simulation events.
func (g *Game) Subscribe(eventType event.EventType, listener event.Listener) {
	g.EventDispatcher.Subscribe(eventType, listener)
}

// Phase returns the current match phase.
func (g *Game) Phase() component.Phase {
	return g.Match.Phase
}

// IsOver reports whether the match has been decided.
func (g *Game) IsOver() bool {
	return g.Match.Phase == component.PhaseOver
}

// Elapsed returns simulated time since the last restart.
func (g *Game) Elapsed() time.Duration {
	return g.elapsed
}

// GameEventListener handles events for the Game.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		if p, ok := e.Data.(event.EnemyPayload); ok {
			log.WithFields(log.Fields{"id": p.ID, "kind": p.Kind, "cash": l.game.Match.Cash}).Debug("enemy killed")
		}
	case event.MatchOver:
		log.WithFields(log.Fields{
			"elapsed": l.game.Elapsed(),
			"spawned": l.game.PopulationSystem.Spawned(),
		}).Info("match over")
	}
}
