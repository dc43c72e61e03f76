// internal/system/utils.go
package system

import (
	"math"

	"go-artillery/internal/component"
	"go-artillery/internal/config"
	"go-artillery/internal/entity"
	"go-artillery/internal/event"
	"go-artillery/internal/types"
)

// ApplyDamage наносит урон юниту с учётом щита и брони. Здоровье зажимается
// в 0; при обнулении отправляется событие UnitEliminated — дальнейшую уборку
// (тело, ротация ходов) делает подписчик. Повторное событие для уже мёртвого
// юнита не отправляется.
func ApplyDamage(ecs *entity.ECS, dispatcher *event.Dispatcher, entityID types.EntityID, damage int) {
	unit, ok := ecs.Units[entityID]
	if !ok || !unit.Alive() {
		return
	}

	finalDamage := damage
	// Активный щит гасит 40% урона (множитель 0.6).
	if unit.HasStatus(component.StatusShield) {
		finalDamage = int(math.Round(float64(finalDamage) * config.ShieldMultiplier))
	}
	if unit.Armor > 0 {
		finalDamage = int(math.Round(float64(finalDamage) * (1 - unit.Armor)))
	}
	if finalDamage < 0 {
		finalDamage = 0
	}
	if finalDamage == 0 {
		return
	}

	unit.Health -= finalDamage
	if unit.Health < 0 {
		unit.Health = 0
	}

	dispatcher.Dispatch(event.Event{Type: event.UnitDamaged, Data: event.DamageData{ID: entityID, Amount: finalDamage}})
	if unit.Health == 0 {
		dispatcher.Dispatch(event.Event{Type: event.UnitEliminated, Data: entityID})
	}
}
