package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"grid-tower-defense/internal/app"
	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/config"
)

// StatusBar отображает деньги, очки, здоровье базы и прогресс волн.
type StatusBar struct {
	X, Y int
	Font font.Face
}

func NewStatusBar(x, y int) *StatusBar {
	return &StatusBar{X: x, Y: y, Font: basicfont.Face7x13}
}

// Draw отрисовывает строку статуса и подсказку текущей фазы.
func (b *StatusBar) Draw(screen *ebiten.Image, s app.Snapshot) {
	line := fmt.Sprintf("Cash: $%d   Score: %d   Base: %d   Spawned: %d   Queue: %d",
		s.Cash, s.Score, s.BaseHealth, s.Spawned, s.PendingInstructions)
	text.Draw(screen, line, b.Font, b.X, b.Y, config.TextLightColor)

	hint := ""
	switch s.Phase {
	case component.PhasePlacing:
		hint = fmt.Sprintf("Placing %s tower: click a T slot", s.PendingKind)
	case component.PhaseOver:
		hint = "R to restart"
	}
	if hint != "" {
		text.Draw(screen, hint, b.Font, b.X, b.Y+16, config.SlotColor)
	}
}
