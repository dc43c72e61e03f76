// internal/event/types.go
package event

import (
	"image/color"

	"go-artillery/internal/types"
)

const (
	ExplosionSpawned  EventType = "ExplosionSpawned"  // Взрыв в точке
	BeamFired         EventType = "BeamFired"         // Выстрел лучом
	UnitDamaged       EventType = "UnitDamaged"       // Юнит получил урон
	UnitEliminated    EventType = "UnitEliminated"    // Юнит выбыл из матча
	ProjectileSpawned EventType = "ProjectileSpawned" // Снаряд создан
	TerrainDeformed   EventType = "TerrainDeformed"   // Ландшафт разрушен
	TurnAdvanced      EventType = "TurnAdvanced"      // Ход перешёл к следующему юниту
	MatchEnded        EventType = "MatchEnded"        // Матч завершён
)

// ExplosionData описывает взрыв для рендерера.
type ExplosionData struct {
	X, Y   float64
	Radius float64
	Color  color.RGBA
}

// BeamData описывает трассу луча для рендерера.
type BeamData struct {
	X1, Y1 float64
	X2, Y2 float64
}

// DamageData — нанесённый юниту урон.
type DamageData struct {
	ID     types.EntityID
	Amount int
}

// TurnData — кому перешёл ход.
type TurnData struct {
	ActorID types.EntityID
}

// MatchEndData — победившая команда.
type MatchEndData struct {
	WinnerTeam int
}
