// pkg/render/color.go
package render

import "image/color"

// SceneColors holds all the color definitions needed to render a match frame.
type SceneColors struct {
	Background color.RGBA
	TerrainTop color.RGBA
	Terrain    color.RGBA
	Projectile color.RGBA
	Beam       color.RGBA
	Well       color.RGBA
	Explosion  color.RGBA
	Shield     color.RGBA
	Team       []color.RGBA
}

// TeamColor returns the palette entry for a team, wrapping around.
func (c *SceneColors) TeamColor(team int) color.RGBA {
	if len(c.Team) == 0 {
		return color.RGBA{255, 255, 255, 255}
	}
	return c.Team[team%len(c.Team)]
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
