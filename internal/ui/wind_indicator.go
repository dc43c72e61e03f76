// internal/ui/wind_indicator.go
package ui

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-artillery/internal/config"
)

// WindIndicator показывает направление и силу ветра в верхней части экрана.
type WindIndicator struct {
	X, Y     float32
	HalfSpan float32
	fontFace font.Face
}

func NewWindIndicator(x, y, halfSpan float32, fontFace font.Face) *WindIndicator {
	return &WindIndicator{X: x, Y: y, HalfSpan: halfSpan, fontFace: fontFace}
}

// Draw отрисовывает шкалу ветра. wind в диапазоне [-1, 1].
func (w *WindIndicator) Draw(screen *ebiten.Image, wind float64) {
	// шкала
	vector.StrokeLine(screen, w.X-w.HalfSpan, w.Y, w.X+w.HalfSpan, w.Y, 1, config.TextLightColor, true)
	vector.StrokeLine(screen, w.X, w.Y-4, w.X, w.Y+4, 1, config.TextLightColor, true)

	// стрелка от центра, длина пропорциональна силе
	tip := w.X + float32(wind)*w.HalfSpan
	vector.StrokeLine(screen, w.X, w.Y, tip, w.Y, 3, config.WindColor, true)
	dir := float32(1)
	if wind < 0 {
		dir = -1
	}
	if math.Abs(wind) > 0.03 {
		vector.StrokeLine(screen, tip, w.Y, tip-dir*6, w.Y-4, 3, config.WindColor, true)
		vector.StrokeLine(screen, tip, w.Y, tip-dir*6, w.Y+4, 3, config.WindColor, true)
	}

	label := fmt.Sprintf("wind %+.2f", wind)
	text.Draw(screen, label, w.fontFace, int(w.X)-len(label)*3, int(w.Y)+18, config.TextLightColor)
}
