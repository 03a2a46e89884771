// pkg/render/color.go
package render

import "image/color"

// MapColors holds all the color definitions needed to render the map.
type MapColors struct {
	BackgroundColor color.RGBA
	WallColor       color.RGBA
	SlotColor       color.RGBA
	SlotActiveColor color.RGBA
	WaypointColor   color.RGBA
	TextDarkColor   color.RGBA
	TextLightColor  color.RGBA
	StrokeWidth     float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// TextColorFor picks dark or light text for readability on the fill.
func (c *MapColors) TextColorFor(fill color.RGBA) color.RGBA {
	if (int(fill.R)+int(fill.G)+int(fill.B))/3 > 128 {
		return c.TextDarkColor
	}
	return c.TextLightColor
}
