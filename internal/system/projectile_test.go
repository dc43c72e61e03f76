package system

import (
	"testing"

	"go-artillery/internal/config"
	"go-artillery/internal/defs"
)

func TestProjectileDudOnTTL(t *testing.T) {
	f := newCombatFixture(1)
	ps := NewProjectileSystem(f.ecs, f.world, f.resolver)

	proj := f.resolver.FireProjectile(0, blastWeapon(30, 40), 400, 300, 0, -100, false)
	heightsBefore := f.terrain.Heights()

	ps.Update(config.ProjectileTTL + 1)

	if _, ok := f.ecs.Projectiles[proj]; ok {
		t.Error("projectile survived past its TTL")
	}
	if f.pending != 0 {
		t.Errorf("pending = %d after dud, want 0", f.pending)
	}
	// холостой снаряд не взрывается
	for i, h := range f.terrain.Heights() {
		if h != heightsBefore[i] {
			t.Fatal("dud carved terrain")
		}
	}
	if len(f.ecs.Explosions) != 0 {
		t.Error("dud spawned an explosion")
	}
}

func TestProjectileDudOutOfBounds(t *testing.T) {
	f := newCombatFixture(1)
	ps := NewProjectileSystem(f.ecs, f.world, f.resolver)

	proj := f.resolver.FireProjectile(0, blastWeapon(30, 40),
		config.ScreenWidth+config.BoundsMargin+10, 300, 0, 0, false)
	ps.Update(0.016)

	if _, ok := f.ecs.Projectiles[proj]; ok {
		t.Error("out-of-bounds projectile not culled")
	}
	if f.pending != 0 {
		t.Errorf("pending = %d, want 0", f.pending)
	}
}

func TestProjectileSyncsPositionFromBody(t *testing.T) {
	f := newCombatFixture(1)
	ps := NewProjectileSystem(f.ecs, f.world, f.resolver)

	proj := f.resolver.FireProjectile(0, blastWeapon(30, 40), 400, 300, 50, -50, false)
	f.world.Step(0.1)
	ps.Update(0.1)

	p := f.ecs.Projectiles[proj]
	body, _ := f.world.Body(p.BodyID)
	if p.X != body.X || p.Y != body.Y {
		t.Errorf("projectile at (%v, %v), body at (%v, %v)", p.X, p.Y, body.X, body.Y)
	}
}

func TestVisualEffectsDecay(t *testing.T) {
	f := newCombatFixture(1)
	vs := NewVisualEffectSystem(f.ecs)

	proj := f.resolver.FireProjectile(0, blastWeapon(30, 40), 400, 550, 0, 0, false)
	f.resolver.ResolveImpact(proj, true)
	weapon := blastWeapon(25, 0)
	weapon.Effect = defs.EffectBeam
	f.resolver.ResolveBeam(0, weapon, 0, 500, 1000, 500)

	if len(f.ecs.Explosions) != 1 || len(f.ecs.Beams) != 1 {
		t.Fatalf("explosions=%d beams=%d, want 1/1", len(f.ecs.Explosions), len(f.ecs.Beams))
	}

	vs.Update(config.ExplosionFlashDuration / 2)
	if len(f.ecs.Explosions) != 1 {
		t.Error("explosion flash died too early")
	}
	vs.Update(config.ExplosionFlashDuration)
	if len(f.ecs.Explosions) != 0 {
		t.Error("explosion flash never expired")
	}
	vs.Update(config.BeamTraceLifetime)
	if len(f.ecs.Beams) != 0 {
		t.Error("beam trace never expired")
	}
}
