// internal/physics/engine.go
package physics

import "go-artillery/internal/types"

// BodyDef описывает создаваемое динамическое тело (круг).
type BodyDef struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Mass   float64
}

// BodyState — текущее состояние тела. Для статических тел W/H задают
// прямоугольник, для динамических используется Radius.
type BodyState struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Mass   float64
	W, H   float64
	Static bool

	// накопленная сила на текущий шаг
	fx, fy float64
}

// Contact — пара тел, соприкоснувшихся на шаге интеграции.
type Contact struct {
	A, B types.BodyID
}

// Engine — инжектируемая способность твердотельной физики. Ядро симуляции
// не зависит от конкретного движка: для тестов достаточно детерминированной
// реализации World.
type Engine interface {
	CreateBody(def BodyDef) types.BodyID
	AddStaticBox(x, y, w, h float64) types.BodyID
	RemoveBody(id types.BodyID)
	Body(id types.BodyID) (*BodyState, bool)
	ApplyForce(id types.BodyID, fx, fy float64)
	ApplyImpulse(id types.BodyID, vx, vy float64)
	SetVelocity(id types.BodyID, vx, vy float64)
	SetPosition(id types.BodyID, x, y float64)
	Step(dt float64) []Contact
}
