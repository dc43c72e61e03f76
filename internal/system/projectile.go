// internal/system/projectile.go
package system

import (
	"go-artillery/internal/config"
	"go-artillery/internal/entity"
	"go-artillery/internal/physics"
)

// ProjectileSystem синхронизирует видимую позицию снарядов с физическими
// телами и убирает снаряды по таймауту или вылету за пределы поля.
type ProjectileSystem struct {
	ecs      *entity.ECS
	engine   physics.Engine
	resolver *CombatResolver
}

func NewProjectileSystem(ecs *entity.ECS, engine physics.Engine, resolver *CombatResolver) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, engine: engine, resolver: resolver}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for id, proj := range s.ecs.Projectiles {
		body, ok := s.engine.Body(proj.BodyID)
		if !ok {
			// Тело уже убрано другим событием этого тика
			s.resolver.ResolveDud(id)
			continue
		}
		proj.X = body.X
		proj.Y = body.Y

		proj.TTL -= deltaTime
		outOfBounds := body.X < -config.BoundsMargin ||
			body.X > config.ScreenWidth+config.BoundsMargin ||
			body.Y > config.ScreenHeight+config.BoundsMargin
		if proj.TTL <= 0 || outOfBounds {
			s.resolver.ResolveDud(id)
		}
	}
}
