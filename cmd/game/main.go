// cmd/game/main.go
package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	game "grid-tower-defense/internal/app"
	"grid-tower-defense/internal/config"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/state"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

// Update вызывается ebiten с частотой TPS, поэтому шаг симуляции фиксирован.
func (a *AppGame) Update() error {
	a.stateMachine.Update(config.TickInterval)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	levelPath := flag.String("level", "", "path to a YAML level file (built-in map when empty)")
	showMenu := flag.Bool("menu", false, "start from the title screen")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	level := defs.DefaultLevel()
	if *levelPath != "" {
		var err error
		level, err = defs.LoadLevel(*levelPath)
		if err != nil {
			log.WithError(err).Fatal("failed to load level")
		}
	}

	gameLogic, err := game.NewGame(level)
	if err != nil {
		log.WithError(err).Fatal("failed to create game")
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	if *showMenu {
		sm.SetState(state.NewMenuState(sm, gameLogic))
	} else {
		sm.SetState(state.NewGameState(sm, gameLogic))
	}

	ebiten.SetTPS(config.TicksPerSec)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Tower Defence - " + level.Name)
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil {
		log.WithError(err).Fatal("game loop stopped")
	}
}
