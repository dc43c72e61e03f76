// internal/ui/power_bar.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-artillery/internal/config"
)

// PowerBar показывает мощность выстрела и угол прицеливания.
type PowerBar struct {
	X, Y     float32
	fontFace font.Face
}

func NewPowerBar(x, y float32, fontFace font.Face) *PowerBar {
	return &PowerBar{X: x, Y: y, fontFace: fontFace}
}

func (p *PowerBar) Draw(screen *ebiten.Image, power, angle float64) {
	vector.StrokeRect(screen, p.X, p.Y, config.PowerBarWidth, config.PowerBarHeight, 1, config.TextLightColor, true)
	frac := float32((power - config.PowerMin) / (config.PowerMax - config.PowerMin))
	vector.DrawFilledRect(screen, p.X+1, p.Y+1, (config.PowerBarWidth-2)*frac, config.PowerBarHeight-2, config.PowerBarColor, false)

	label := fmt.Sprintf("pow %3.0f  ang %2.0f", power, angle)
	text.Draw(screen, label, p.fontFace, int(p.X), int(p.Y)+26, config.TextLightColor)
}
