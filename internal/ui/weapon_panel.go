// internal/ui/weapon_panel.go
package ui

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-artillery/internal/config"
	"go-artillery/internal/defs"
)

// WeaponPanel показывает арсенал действующего юнита: выбранное оружие,
// остаток боезапаса и перезарядку.
type WeaponPanel struct {
	X, Y     float32
	fontFace font.Face
}

func NewWeaponPanel(x, y float32, fontFace font.Face) *WeaponPanel {
	return &WeaponPanel{X: x, Y: y, fontFace: fontFace}
}

// Draw отрисовывает список оружия. ammo содержит только учитываемые оружия,
// cooldowns — только активные перезарядки (миллисекунды).
func (p *WeaponPanel) Draw(screen *ebiten.Image, selected string, ammo map[string]int, cooldowns map[string]float64) {
	ids := make([]string, 0, len(defs.WeaponDefs))
	for id := range defs.WeaponDefs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	y := int(p.Y) + 14
	for _, id := range ids {
		def := defs.WeaponDefs[id]

		line := def.Name
		if n, tracked := ammo[id]; tracked {
			line = fmt.Sprintf("%s x%d", line, n)
		}
		if left, active := cooldowns[id]; active {
			line = fmt.Sprintf("%s (%.1fs)", line, left/1000)
		}

		clr := config.TextLightColor
		if id == selected {
			vector.DrawFilledRect(screen, p.X-4, float32(y)-11, 170, 14, config.TextDarkColor, false)
			clr = config.PowerBarColor
		}
		text.Draw(screen, line, p.fontFace, int(p.X), y, clr)
		y += 16
	}
}
