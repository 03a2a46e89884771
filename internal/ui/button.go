// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"grid-tower-defense/internal/config"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	X, Y          float32
	Width, Height float32
	Text          string
	TextColor     color.RGBA
	BgColor       color.RGBA
	Enabled       bool
	Selected      bool
	Font          font.Face
}

// NewButton создает новую кнопку.
func NewButton(x, y, width, height float32, label string) *Button {
	return &Button{
		X:         x,
		Y:         y,
		Width:     width,
		Height:    height,
		Text:      label,
		TextColor: config.TextDarkColor,
		BgColor:   config.ButtonColor,
		Enabled:   true,
		Font:      basicfont.Face7x13,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(mx, my int) bool {
	x, y := float32(mx), float32(my)
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := b.BgColor
	if !b.Enabled {
		bg = config.ButtonDisabled
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, bg, false)

	stroke := color.RGBA{80, 80, 80, 255}
	if b.Selected {
		stroke = config.SlotActiveColor
	}
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, 2, stroke, false)

	bounds := text.BoundString(b.Font, b.Text)
	textX := int(b.X+b.Width/2) - bounds.Dx()/2
	textY := int(b.Y+b.Height/2) + bounds.Dy()/2
	text.Draw(screen, b.Text, b.Font, textX, textY, b.TextColor)
}
