package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"grid-tower-defense/internal/config"
)

const bannerHeight = 60

// GameOverBanner выезжает сверху, когда матч решён.
type GameOverBanner struct {
	Width   float32
	Font    font.Face
	message string
	y       float32
	tween   *gween.Tween
	visible bool
}

func NewGameOverBanner(width float32) *GameOverBanner {
	return &GameOverBanner{Width: width, Font: basicfont.Face7x13}
}

// Show starts the slide-in. Repeated calls with the same message are ignored.
func (b *GameOverBanner) Show(message string) {
	if b.visible && b.message == message {
		return
	}
	b.message = message
	b.visible = true
	target := float32(config.ScreenHeight)/2 - bannerHeight/2
	b.tween = gween.New(-bannerHeight, target, config.BannerSlideSeconds, ease.OutBounce)
	b.y = -bannerHeight
}

func (b *GameOverBanner) Hide() {
	b.visible = false
	b.tween = nil
	b.message = ""
}

func (b *GameOverBanner) Update(deltaTime time.Duration) {
	if b.tween == nil {
		return
	}
	y, finished := b.tween.Update(float32(deltaTime.Seconds()))
	b.y = y
	if finished {
		b.tween = nil
	}
}

func (b *GameOverBanner) Draw(screen *ebiten.Image) {
	if !b.visible {
		return
	}
	vector.DrawFilledRect(screen, 0, b.y, b.Width, bannerHeight, config.BannerColor, false)
	bounds := text.BoundString(b.Font, b.message)
	x := int(b.Width/2) - bounds.Dx()/2
	y := int(b.y+bannerHeight/2) + bounds.Dy()/2
	text.Draw(screen, b.message, b.Font, x, y, config.TextDarkColor)
}
