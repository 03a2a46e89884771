// cmd/tdterm/main.go
package main

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	game "grid-tower-defense/internal/app"
	"grid-tower-defense/internal/config"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/internal/event"
	"grid-tower-defense/internal/tui"
)

func main() {
	levelPath := flag.String("level", "", "path to a YAML level file (built-in map when empty)")
	logPath := flag.String("log", "", "write logs to this file (discarded when empty)")
	mute := flag.Bool("mute", false, "disable the kill tone")
	flag.Parse()

	// Терминал занят картой, поэтому логи уходят в файл или никуда
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.WithError(err).Fatal("failed to open log file")
		}
		defer f.Close()
		log.SetOutput(f)
		log.SetLevel(log.DebugLevel)
	}

	level := defs.DefaultLevel()
	if *levelPath != "" {
		var err error
		level, err = defs.LoadLevel(*levelPath)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.WithError(err).Fatal("failed to load level")
		}
	}

	gameLogic, err := game.NewGame(level)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.WithError(err).Fatal("failed to create game")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.WithError(err).Fatal("failed to create screen")
	}
	if err := screen.Init(); err != nil {
		log.SetOutput(os.Stderr)
		log.WithError(err).Fatal("failed to init screen")
	}
	screen.EnableMouse()
	defer screen.Fini()

	tone := &killTone{}
	if !*mute {
		if err := tone.init(); err != nil {
			// без звука играть можно
			log.WithError(err).Warn("audio initialization failed")
		}
		defer tone.close()
	}
	gameLogic.Subscribe(event.EnemyKilled, event.ListenerFunc(func(event.Event) {
		tone.play()
	}))

	run(screen, gameLogic)
}

func run(screen tcell.Screen, gameLogic *game.Game) {
	renderer := tui.NewRenderer(screen)
	controller := tui.NewController(gameLogic, gameLogic.Grid)

	ticker := time.NewTicker(config.TickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// экран закрыт
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			if !controller.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			gameLogic.Update(config.TickInterval)
			renderer.Draw(gameLogic.Snapshot(), controller.Cursor)
		}
	}
}
