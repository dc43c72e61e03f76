// internal/state/game_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-artillery/internal/app"
	"go-artillery/internal/config"
	"go-artillery/internal/physics"
	"go-artillery/internal/ui"
	"go-artillery/pkg/render"
)

const (
	aimSpeed   = 45.0 // градусов в секунду при зажатой стрелке
	powerSpeed = 55.0
)

// GameState — состояние матча: владеет симуляцией, читает ввод игрока и
// переводит его в дискретные запросы к ядру.
type GameState struct {
	sm          *StateMachine
	game        *app.Game
	renderer    *render.SceneRenderer
	windUI      *ui.WindIndicator
	powerUI     *ui.PowerBar
	weaponPanel *ui.WeaponPanel
}

func NewGameState(sm *StateMachine) *GameState {
	engine := physics.NewWorld(config.Gravity)
	gameLogic := app.NewGame(engine, 0)
	gameLogic.StartMatch()

	colors := &render.SceneColors{
		Background: config.BackgroundColor,
		TerrainTop: config.TerrainTopColor,
		Terrain:    config.TerrainColor,
		Projectile: config.ProjectileColor,
		Beam:       config.BeamColor,
		Well:       config.WellColor,
		Explosion:  config.ExplosionColor,
		Shield:     config.ShieldColor,
		Team:       config.TeamColors,
	}

	face := basicfont.Face7x13
	return &GameState{
		sm:          sm,
		game:        gameLogic,
		renderer:    render.NewSceneRenderer(config.ScreenWidth, config.ScreenHeight, colors),
		windUI:      ui.NewWindIndicator(config.ScreenWidth/2, 20, 60, face),
		powerUI:     ui.NewPowerBar(12, config.ScreenHeight-46, face),
		weaponPanel: ui.NewWeaponPanel(12, config.WeaponPanelY, face),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.handleInput(deltaTime)
	g.game.Update(deltaTime)

	if over, _ := g.game.MatchOver(); over && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.game.Teardown()
		g.sm.SetState(NewGameState(g.sm))
	}
}

// handleInput переводит клавиатуру в запросы ядра: непрерывные стрелки —
// в подстройку угла/мощности, дискретные клавиши — в смену оружия и выстрел.
func (g *GameState) handleInput(deltaTime float64) {
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		g.game.SetAimAngle(g.game.AimAngle() + aimSpeed*deltaTime)
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		g.game.SetAimAngle(g.game.AimAngle() - aimSpeed*deltaTime)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		g.game.SetPower(g.game.Power() + powerSpeed*deltaTime)
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		g.game.SetPower(g.game.Power() - powerSpeed*deltaTime)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.game.SelectNextWeapon()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.game.RequestFire()
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()
	g.renderer.Draw(screen, snap)

	g.windUI.Draw(screen, snap.Wind)
	g.powerUI.Draw(screen, snap.Power, snap.AimAngle)
	g.weaponPanel.Draw(screen, snap.SelectedWeapon, snap.Ammo, snap.Cooldowns)

	if snap.MatchOver {
		face := basicfont.Face7x13
		msg := fmt.Sprintf("team %d wins - press R to restart", snap.WinnerTeam)
		if snap.WinnerTeam < 0 {
			msg = "draw - press R to restart"
		}
		text.Draw(screen, msg, face, config.ScreenWidth/2-100, config.ScreenHeight/2, config.TextLightColor)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("actor: %d", snap.ActingUnit))
}

func (g *GameState) Exit() {}
