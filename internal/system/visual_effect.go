// internal/system/visual_effect.go
package system

import "go-artillery/internal/entity"

// VisualEffectSystem гасит кратковременные эффекты: вспышки взрывов и трассы
// лучей. Чисто визуальное состояние, на симуляцию не влияет.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, expl := range s.ecs.Explosions {
		expl.CurrentTimer += deltaTime
		if expl.CurrentTimer >= expl.Duration {
			delete(s.ecs.Explosions, id)
		}
	}
	for id, beam := range s.ecs.Beams {
		beam.TTL -= deltaTime
		if beam.TTL <= 0 {
			delete(s.ecs.Beams, id)
		}
	}
}
