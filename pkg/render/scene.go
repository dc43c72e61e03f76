// pkg/render/scene.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-artillery/internal/app"
)

// SceneRenderer рисует кадр матча по снапшоту симуляции. Рендерер ничего не
// мутирует: вся игра для него — набор прочитанных значений.
type SceneRenderer struct {
	screenWidth  int
	screenHeight int
	colors       *SceneColors
}

// NewSceneRenderer создаёт рендерер сцены под фиксированный размер экрана.
func NewSceneRenderer(screenWidth, screenHeight int, colors *SceneColors) *SceneRenderer {
	return &SceneRenderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		colors:       colors,
	}
}

// Draw отрисовывает снапшот: ландшафт, юниты, снаряды, эффекты.
func (r *SceneRenderer) Draw(screen *ebiten.Image, snap app.Snapshot) {
	screen.Fill(r.colors.Background)
	r.drawTerrain(screen, snap)

	for _, well := range snap.Wells {
		// воронка пульсирует, затухая к концу жизни
		radius := float32(14 + 4*math.Sin(well.TTL*9))
		vector.DrawFilledCircle(screen, float32(well.X), float32(well.Y), radius, r.colors.Well, true)
	}

	for _, unit := range snap.Units {
		if !unit.Alive {
			continue
		}
		teamColor := r.colors.TeamColor(unit.Team)
		if unit.ID == snap.ActingUnit && !snap.MatchOver {
			vector.DrawFilledCircle(screen, float32(unit.X), float32(unit.Y), 15, color.RGBA{255, 255, 255, 90}, true)
		}
		vector.DrawFilledCircle(screen, float32(unit.X), float32(unit.Y), 12, teamColor, true)
		if unit.Shielded {
			vector.StrokeCircle(screen, float32(unit.X), float32(unit.Y), 16, 2, r.colors.Shield, true)
		}
		r.drawHealthBar(screen, unit)
		// направление взгляда
		vector.StrokeLine(screen,
			float32(unit.X), float32(unit.Y),
			float32(unit.X+float64(unit.Facing)*16), float32(unit.Y),
			2, DarkenColor(teamColor), true)
	}

	for _, proj := range snap.Projectiles {
		radius := float32(proj.Radius)
		if radius <= 0 {
			radius = 4
		}
		vector.DrawFilledCircle(screen, float32(proj.X), float32(proj.Y), radius,
			color.RGBA{proj.ColorR, proj.ColorG, proj.ColorB, 255}, true)
	}

	for _, beam := range snap.Beams {
		vector.StrokeLine(screen, float32(beam.X1), float32(beam.Y1), float32(beam.X2), float32(beam.Y2),
			3, r.colors.Beam, true)
	}

	for _, expl := range snap.Explosions {
		radius := float32(expl.Radius * expl.Progress)
		flash := r.colors.Explosion
		flash.A = uint8(220 * (1 - expl.Progress))
		vector.DrawFilledCircle(screen, float32(expl.X), float32(expl.Y), radius, flash, true)
	}

	r.drawAimGuide(screen, snap)
}

// drawTerrain рисует столбики сегментов с травяной кромкой сверху.
func (r *SceneRenderer) drawTerrain(screen *ebiten.Image, snap app.Snapshot) {
	w := float32(snap.SegmentWidth)
	for i, h := range snap.TerrainHeights {
		if h <= 0 {
			continue
		}
		x := float32(i) * w
		top := float32(r.screenHeight) - float32(h)
		vector.DrawFilledRect(screen, x, top, w, float32(h), r.colors.Terrain, false)
		vector.DrawFilledRect(screen, x, top, w, 3, r.colors.TerrainTop, false)
	}
}

func (r *SceneRenderer) drawHealthBar(screen *ebiten.Image, unit app.UnitSnapshot) {
	const barWidth, barHeight = 26.0, 4.0
	x := float32(unit.X) - barWidth/2
	y := float32(unit.Y) - 24
	vector.DrawFilledRect(screen, x, y, barWidth, barHeight, color.RGBA{40, 40, 40, 200}, false)
	frac := float32(unit.Health) / float32(unit.MaxHealth)
	vector.DrawFilledRect(screen, x, y, barWidth*frac, barHeight, color.RGBA{70, 220, 80, 230}, false)
}

// drawAimGuide рисует линию прицеливания действующего юнита.
func (r *SceneRenderer) drawAimGuide(screen *ebiten.Image, snap app.Snapshot) {
	if snap.MatchOver {
		return
	}
	for _, unit := range snap.Units {
		if unit.ID != snap.ActingUnit || !unit.Alive {
			continue
		}
		rad := snap.AimAngle * math.Pi / 180
		length := 24 + snap.Power*0.6
		dx := math.Cos(rad) * float64(unit.Facing) * length
		dy := -math.Sin(rad) * length
		vector.StrokeLine(screen,
			float32(unit.X), float32(unit.Y),
			float32(unit.X+dx), float32(unit.Y+dy),
			1, color.RGBA{255, 255, 255, 160}, true)
		return
	}
}
