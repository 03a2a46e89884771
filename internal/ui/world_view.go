// internal/ui/world_view.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"grid-tower-defense/internal/app"
	"grid-tower-defense/internal/config"
	"grid-tower-defense/internal/defs"
	"grid-tower-defense/pkg/render"
)

// WorldView рисует сущности поверх карты
type WorldView struct {
	OffsetX, OffsetY float32
	Font             font.Face
}

func NewWorldView(offsetX, offsetY float32) *WorldView {
	return &WorldView{OffsetX: offsetX, OffsetY: offsetY, Font: basicfont.Face7x13}
}

func (v *WorldView) Draw(screen *ebiten.Image, s app.Snapshot) {
	for _, t := range s.Towers {
		def := defs.TowerLibrary[t.Kind]
		x, y := v.OffsetX+float32(t.X), v.OffsetY+float32(t.Y)
		size := float32(t.Size)
		vector.DrawFilledRect(screen, x+4, y+4, size-8, size-8, def.Visuals.Color, true)
		vector.StrokeRect(screen, x+4, y+4, size-8, size-8, 2, render.DarkenColor(def.Visuals.Color), true)
		text.Draw(screen, string(def.Visuals.Glyph), v.Font, int(x+size/2)-3, int(y+size/2)+4, config.TextDarkColor)
	}

	for _, e := range s.Enemies {
		def := defs.EnemyLibrary[e.Kind]
		size := float32(e.Size)
		cx := v.OffsetX + float32(e.X) + size/2
		cy := v.OffsetY + float32(e.Y) + size/2
		vector.DrawFilledCircle(screen, cx, cy, size/2-4, def.Color, true)
		if e.Slowed {
			vector.StrokeCircle(screen, cx, cy, size/2-2, 3, defs.TowerLibrary[defs.TowerSlow].Visuals.Color, true)
		}

		// Полоска здоровья над врагом
		bx := v.OffsetX + float32(e.X)
		by := v.OffsetY + float32(e.Y) - config.HealthBarHeight
		vector.DrawFilledRect(screen, bx, by, size, config.HealthBarHeight, config.HealthBarBack, false)
		vector.DrawFilledRect(screen, bx, by, size*float32(e.HealthPercent)/100, config.HealthBarHeight, config.HealthBarFront, false)
	}

	for _, p := range s.Projectiles {
		px, py := v.OffsetX+float32(p.X), v.OffsetY+float32(p.Y)
		vector.DrawFilledCircle(screen, px, py, config.ProjectileRadius+1, config.ProjectileStroke, true)
		vector.DrawFilledCircle(screen, px, py, config.ProjectileRadius, p.Color, true)
	}
}
