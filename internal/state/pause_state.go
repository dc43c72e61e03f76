// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"go-artillery/internal/config"
)

// PauseState замораживает матч и рисует его последний кадр под затемнением.
type PauseState struct {
	sm     *StateMachine
	paused *GameState
}

func NewPauseState(sm *StateMachine, paused *GameState) *PauseState {
	return &PauseState{sm: sm, paused: paused}
}

func (p *PauseState) Enter() {}

func (p *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		p.sm.SetState(p.paused)
	}
}

func (p *PauseState) Draw(screen *ebiten.Image) {
	p.paused.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight,
		colorWithAlpha(config.BackgroundColor, 160), false)
	text.Draw(screen, "PAUSED", basicfont.Face7x13, config.ScreenWidth/2-21, config.ScreenHeight/2, config.TextLightColor)
}

func (p *PauseState) Exit() {}

func colorWithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}
