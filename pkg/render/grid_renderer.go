package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"grid-tower-defense/pkg/gridmap"
)

// GridRenderer рисует карту: статичный задник один раз, слоты каждый кадр.
type GridRenderer struct {
	blockSize float32
	offsetX   float64
	offsetY   float64
	colors    *MapColors
	fontFace  font.Face
	mapImage  *ebiten.Image // предрендеренный задник
}

func NewGridRenderer(cells []gridmap.Cell, path []gridmap.Waypoint, width, height int, blockSize, offsetX, offsetY float64, colors *MapColors) *GridRenderer {
	r := &GridRenderer{
		blockSize: float32(blockSize),
		offsetX:   offsetX,
		offsetY:   offsetY,
		colors:    colors,
		fontFace:  basicfont.Face7x13,
		// на одну клетку шире: S лежит за правым краем
		mapImage: ebiten.NewImage(int(blockSize)*(width+1), int(blockSize)*height),
	}
	r.RenderMapImage(cells, path)
	return r
}

// RenderMapImage redraws the static background: floor, walls and waypoints.
func (r *GridRenderer) RenderMapImage(cells []gridmap.Cell, path []gridmap.Waypoint) {
	r.mapImage.Clear()
	r.mapImage.Fill(r.colors.BackgroundColor)

	for _, cell := range cells {
		if cell.Kind != gridmap.Wall {
			continue
		}
		x, y := r.cellPos(cell.X, cell.Y)
		vector.DrawFilledRect(r.mapImage, x, y, r.blockSize, r.blockSize, r.colors.WallColor, false)
	}

	for i, wp := range path {
		x, y := float32(wp.X), float32(wp.Y)
		vector.StrokeRect(r.mapImage, x+2, y+2, r.blockSize-4, r.blockSize-4, r.colors.StrokeWidth, r.colors.WaypointColor, false)
		label := "W"
		switch i {
		case 0:
			label = "S"
		case len(path) - 1:
			label = "E"
		}
		r.drawLabel(r.mapImage, label, x, y, r.colors.TextColorFor(r.colors.BackgroundColor))
	}
}

// Draw blits the background and draws every build slot. Slots light up
// while the player is choosing where to build.
func (r *GridRenderer) Draw(screen *ebiten.Image, cells []gridmap.Cell, placing bool) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(r.offsetX, r.offsetY)
	screen.DrawImage(r.mapImage, op)

	for _, cell := range cells {
		if cell.Kind != gridmap.BuildSlot {
			continue
		}
		x, y := r.cellPos(cell.X, cell.Y)
		x += float32(r.offsetX)
		y += float32(r.offsetY)

		stroke := r.colors.SlotColor
		if cell.Occupied() {
			stroke = DarkenColor(stroke)
		} else if placing {
			stroke = r.colors.SlotActiveColor
		}
		vector.StrokeRect(screen, x+1, y+1, r.blockSize-2, r.blockSize-2, r.colors.StrokeWidth, stroke, false)
		if !cell.Occupied() {
			r.drawLabel(screen, "T", x, y, stroke)
		}
	}
}

// ScreenToMap converts a screen point to map pixels.
func (r *GridRenderer) ScreenToMap(x, y int) (float64, float64) {
	return float64(x) - r.offsetX, float64(y) - r.offsetY
}

func (r *GridRenderer) cellPos(cx, cy int) (float32, float32) {
	return float32(cx) * r.blockSize, float32(cy) * r.blockSize
}

func (r *GridRenderer) drawLabel(target *ebiten.Image, label string, x, y float32, clr color.Color) {
	bounds := text.BoundString(r.fontFace, label)
	tx := int(x+r.blockSize/2) - bounds.Dx()/2
	ty := int(y+r.blockSize/2) + bounds.Dy()/2
	text.Draw(target, label, r.fontFace, tx, ty, clr)
}
