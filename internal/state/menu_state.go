// internal/state/menu_state.go
package state

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	game "grid-tower-defense/internal/app"
	"grid-tower-defense/internal/config"
)

// MenuState — заставка перед матчем
type MenuState struct {
	sm   *StateMachine
	game *game.Game
}

func NewMenuState(sm *StateMachine, gameLogic *game.Game) *MenuState {
	return &MenuState{sm: sm, game: gameLogic}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime time.Duration) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewGameState(m.sm, m.game))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.TextDarkColor)
	face := basicfont.Face7x13
	lines := []string{
		m.game.Level.Name,
		"",
		"1/2/3 - buy tower, click a T slot to build",
		"Esc - cancel, R - restart, P - pause",
		"",
		"Press SPACE to start",
	}
	for i, line := range lines {
		bounds := text.BoundString(face, line)
		y := config.ScreenHeight/3 + i*18
		text.Draw(screen, line, face, (config.ScreenWidth-bounds.Dx())/2, y, config.TextLightColor)
	}
	text.Draw(screen, fmt.Sprintf("Starting cash $%d", m.game.Match.Cash), face, 8, config.ScreenHeight-12, config.SlotColor)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
