// internal/entity/ecs.go
package entity

import (
	"go-artillery/internal/component"
	"go-artillery/internal/types"
)

type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Units       map[types.EntityID]*component.Unit
	Projectiles map[types.EntityID]*component.Projectile
	Wells       map[types.EntityID]*component.Well
	Beams       map[types.EntityID]*component.BeamTrace
	Explosions  map[types.EntityID]*component.Explosion
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Units:       make(map[types.EntityID]*component.Unit),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Wells:       make(map[types.EntityID]*component.Well),
		Beams:       make(map[types.EntityID]*component.BeamTrace),
		Explosions:  make(map[types.EntityID]*component.Explosion),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}
