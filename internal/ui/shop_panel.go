package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"grid-tower-defense/internal/app"
	"grid-tower-defense/internal/component"
	"grid-tower-defense/internal/config"
	"grid-tower-defense/internal/defs"
)

// ShopActionType is what a click on the panel asks for.
type ShopActionType int

const (
	ShopNone ShopActionType = iota
	ShopBuy
	ShopCancel
	ShopRestart
)

type ShopAction struct {
	Type  ShopActionType
	Tower defs.TowerKind
}

// ShopPanel — правая панель с кнопками покупки, отмены и рестарта.
type ShopPanel struct {
	X, Y, Width, Height float32
	buyButtons          map[defs.TowerKind]*Button
	cancelButton        *Button
	restartButton       *Button
}

func NewShopPanel(x, y, width, height float32) *ShopPanel {
	const (
		buttonHeight = 44
		gap          = 12
		margin       = 10
	)
	p := &ShopPanel{
		X: x, Y: y, Width: width, Height: height,
		buyButtons: make(map[defs.TowerKind]*Button),
	}
	bx := x + margin
	bw := width - 2*margin
	by := y + margin
	for i, kind := range defs.TowerKinds {
		def := defs.TowerLibrary[kind]
		label := fmt.Sprintf("%d. %s $%d", i+1, def.Name, def.Cost)
		p.buyButtons[kind] = NewButton(bx, by, bw, buttonHeight, label)
		by += buttonHeight + gap
	}
	p.cancelButton = NewButton(bx, by, bw, buttonHeight, "Cancel (Esc)")
	by += buttonHeight + gap
	p.restartButton = NewButton(bx, by, bw, buttonHeight, "Restart (R)")
	return p
}

// Update syncs button states with the match.
func (p *ShopPanel) Update(s app.Snapshot) {
	for kind, b := range p.buyButtons {
		b.Enabled = s.Phase != component.PhaseOver && s.Cash >= defs.TowerLibrary[kind].Cost
		b.Selected = s.Phase == component.PhasePlacing && s.PendingKind == kind
	}
	p.cancelButton.Enabled = s.Phase == component.PhasePlacing
}

// Contains reports whether the point is over the panel.
func (p *ShopPanel) Contains(mx, my int) bool {
	x, y := float32(mx), float32(my)
	return x >= p.X && x < p.X+p.Width && y >= p.Y && y < p.Y+p.Height
}

// Click maps a click to a shop action. Disabled buttons do nothing.
func (p *ShopPanel) Click(mx, my int) ShopAction {
	for _, kind := range defs.TowerKinds {
		if b := p.buyButtons[kind]; b.Enabled && b.Contains(mx, my) {
			return ShopAction{Type: ShopBuy, Tower: kind}
		}
	}
	if p.cancelButton.Enabled && p.cancelButton.Contains(mx, my) {
		return ShopAction{Type: ShopCancel}
	}
	if p.restartButton.Contains(mx, my) {
		return ShopAction{Type: ShopRestart}
	}
	return ShopAction{Type: ShopNone}
}

func (p *ShopPanel) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, p.X, p.Y, p.Width, p.Height, config.PanelColor, false)
	for _, kind := range defs.TowerKinds {
		p.buyButtons[kind].Draw(screen)
	}
	p.cancelButton.Draw(screen)
	p.restartButton.Draw(screen)
}
