// internal/app/snapshot.go
package app

import (
	"sort"

	"go-artillery/internal/component"
	"go-artillery/internal/types"
)

// Снапшот — единственное, что слой рендера читает из симуляции. Дискретные
// события (взрывы, трассы, выбывание) приходят отдельно через диспетчер.

type UnitSnapshot struct {
	ID        types.EntityID
	Team      int
	X, Y      float64
	Facing    int
	Health    int
	MaxHealth int
	Alive     bool
	Shielded  bool
}

type ProjectileSnapshot struct {
	X, Y   float64
	Radius float64
	ColorR uint8
	ColorG uint8
	ColorB uint8
}

type WellSnapshot struct {
	X, Y float64
	TTL  float64
}

type BeamSnapshot struct {
	X1, Y1, X2, Y2 float64
}

type ExplosionSnapshot struct {
	X, Y     float64
	Radius   float64
	Progress float64 // [0..1] — доля прожитой длительности вспышки
}

type Snapshot struct {
	Units          []UnitSnapshot
	Projectiles    []ProjectileSnapshot
	Wells          []WellSnapshot
	Beams          []BeamSnapshot
	Explosions     []ExplosionSnapshot
	TerrainHeights []float64
	SegmentWidth   float64

	ActingUnit     types.EntityID
	Wind           float64
	AimAngle       float64
	Power          float64
	SelectedWeapon string
	// учёт для действующего юнита; оружие без записи — неограниченно
	Ammo      map[string]int
	Cooldowns map[string]float64

	MatchOver  bool
	WinnerTeam int
}

// Snapshot собирает снимок состояния для рендерера. Юниты отсортированы по
// id, чтобы порядок отрисовки был стабилен от кадра к кадру.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		TerrainHeights: g.Terrain.Heights(),
		SegmentWidth:   g.Terrain.SegmentWidth(),
		AimAngle:       g.aimAngle,
		Power:          g.power,
		SelectedWeapon: g.selectedWeapon,
		Ammo:           make(map[string]int),
		Cooldowns:      make(map[string]float64),
		MatchOver:      g.matchOver,
		WinnerTeam:     g.winnerTeam,
	}

	unitIDs := make([]types.EntityID, 0, len(g.ECS.Units))
	for id := range g.ECS.Units {
		unitIDs = append(unitIDs, id)
	}
	sort.Slice(unitIDs, func(i, j int) bool { return unitIDs[i] < unitIDs[j] })
	for _, id := range unitIDs {
		unit := g.ECS.Units[id]
		snap.Units = append(snap.Units, UnitSnapshot{
			ID:        id,
			Team:      unit.Team,
			X:         unit.X,
			Y:         unit.Y,
			Facing:    unit.Facing,
			Health:    unit.Health,
			MaxHealth: unit.MaxHealth,
			Alive:     unit.Alive(),
			Shielded:  unit.HasStatus(component.StatusShield),
		})
	}

	for _, proj := range g.ECS.Projectiles {
		snap.Projectiles = append(snap.Projectiles, ProjectileSnapshot{
			X: proj.X, Y: proj.Y,
			Radius: proj.Weapon.Visuals.Radius,
			ColorR: proj.Weapon.Visuals.ColorR,
			ColorG: proj.Weapon.Visuals.ColorG,
			ColorB: proj.Weapon.Visuals.ColorB,
		})
	}
	for _, well := range g.ECS.Wells {
		snap.Wells = append(snap.Wells, WellSnapshot{X: well.X, Y: well.Y, TTL: well.TTL})
	}
	for _, beam := range g.ECS.Beams {
		snap.Beams = append(snap.Beams, BeamSnapshot{X1: beam.X1, Y1: beam.Y1, X2: beam.X2, Y2: beam.Y2})
	}
	for _, expl := range g.ECS.Explosions {
		progress := 0.0
		if expl.Duration > 0 {
			progress = expl.CurrentTimer / expl.Duration
		}
		snap.Explosions = append(snap.Explosions, ExplosionSnapshot{
			X: expl.X, Y: expl.Y,
			Radius:   expl.MaxRadius,
			Progress: progress,
		})
	}

	if g.Turn != nil {
		snap.ActingUnit = g.Turn.ActingUnit()
		snap.Wind = g.Turn.Wind
		for _, weaponID := range g.weaponOrder {
			if n, tracked := g.Turn.AmmoLeft(snap.ActingUnit, weaponID); tracked {
				snap.Ammo[weaponID] = n
			}
			if left := g.Turn.CooldownLeft(snap.ActingUnit, weaponID); left > 0 {
				snap.Cooldowns[weaponID] = left
			}
		}
	}

	return snap
}
