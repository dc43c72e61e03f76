// internal/system/wells.go
package system

import (
	"math"

	"go-artillery/internal/config"
	"go-artillery/internal/entity"
	"go-artillery/internal/physics"
	"go-artillery/internal/types"
)

// WellSystem управляет гравитационными воронками: каждый тик все динамические
// тела получают силу к центру воронки, обратную квадрату расстояния.
type WellSystem struct {
	ecs     *entity.ECS
	engine  physics.Engine
	pending func(delta int)
}

func NewWellSystem(ecs *entity.ECS, engine physics.Engine, pending func(delta int)) *WellSystem {
	return &WellSystem{ecs: ecs, engine: engine, pending: pending}
}

func (s *WellSystem) Update(deltaTime float64) {
	for id, well := range s.ecs.Wells {
		well.TTL -= deltaTime
		if well.TTL <= 0 {
			delete(s.ecs.Wells, id)
			s.pending(-1)
			continue
		}

		for _, unit := range s.ecs.Units {
			if unit.Alive() {
				s.attract(well.X, well.Y, well.Strength, unit.BodyID)
			}
		}
		for _, proj := range s.ecs.Projectiles {
			s.attract(well.X, well.Y, well.Strength, proj.BodyID)
		}
	}
}

// attract прикладывает силу F = strength/d^2 к телу в направлении воронки.
// Расстояние зажимается снизу, чтобы у центра не возникала сингулярность.
func (s *WellSystem) attract(wx, wy, strength float64, bodyID types.BodyID) {
	body, ok := s.engine.Body(bodyID)
	if !ok {
		return
	}
	dx := wx - body.X
	dy := wy - body.Y
	dist := math.Hypot(dx, dy)
	if dist < config.WellMinDistance {
		dist = config.WellMinDistance
	}
	force := strength / (dist * dist)
	s.engine.ApplyForce(bodyID, force*dx/dist, force*dy/dist)
}
