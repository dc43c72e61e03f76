// internal/system/resolver.go
package system

import (
	"image/color"
	"math"

	"go-artillery/internal/component"
	"go-artillery/internal/config"
	"go-artillery/internal/defs"
	"go-artillery/internal/entity"
	"go-artillery/internal/event"
	"go-artillery/internal/physics"
	"go-artillery/internal/terrain"
	"go-artillery/internal/types"
	"go-artillery/internal/utils"
)

// CombatResolver переводит столкновения и мгновенные эффекты оружия в урон,
// разрушение ландшафта и порождение дочерних снарядов. Каждый путь
// разрешения — чистая функция от (точка попадания, оружие, состояние мира).
//
// pending — колбэк учёта незавершённых под-эффектов выстрела: +1 на каждый
// живой снаряд или воронку, -1 при их разрешении. Ход переходит дальше ровно
// один раз, когда счётчик возвращается к нулю.
type CombatResolver struct {
	ecs        *entity.ECS
	engine     physics.Engine
	terrain    *terrain.Terrain
	dispatcher *event.Dispatcher
	prng       *utils.PRNGService
	pending    func(delta int)
}

func NewCombatResolver(ecs *entity.ECS, engine physics.Engine, t *terrain.Terrain,
	dispatcher *event.Dispatcher, prng *utils.PRNGService, pending func(delta int)) *CombatResolver {
	return &CombatResolver{
		ecs:        ecs,
		engine:     engine,
		terrain:    t,
		dispatcher: dispatcher,
		prng:       prng,
		pending:    pending,
	}
}

// FireProjectile создаёт снаряд с физическим телом и регистрирует его в
// счётчике незавершённых эффектов.
func (r *CombatResolver) FireProjectile(ownerID types.EntityID, weapon defs.WeaponDefinition,
	x, y, vx, vy float64, fragment bool) types.EntityID {
	bodyID := r.engine.CreateBody(physics.BodyDef{
		X: x, Y: y, VX: vx, VY: vy,
		Radius: config.ProjectileRadius,
		Mass:   config.ProjectileMass,
	})
	id := r.ecs.NewEntity()
	r.ecs.Projectiles[id] = &component.Projectile{
		Weapon:   weapon,
		OwnerID:  ownerID,
		BodyID:   bodyID,
		TTL:      config.ProjectileTTL,
		Fragment: fragment,
		X:        x,
		Y:        y,
	}
	r.pending(+1)
	r.dispatcher.Dispatch(event.Event{Type: event.ProjectileSpawned, Data: id})
	return id
}

// ResolveImpact разрешает столкновение снаряда. hitTerrain сообщает, было ли
// контактным телом ландшафт — это нужно проверке рикошета, которая идёт до
// общей логики попадания. Снаряд, уже разрешённый другим событием того же
// тика, молча пропускается.
func (r *CombatResolver) ResolveImpact(projID types.EntityID, hitTerrain bool) {
	proj, ok := r.ecs.Projectiles[projID]
	if !ok {
		return
	}

	body, hasBody := r.engine.Body(proj.BodyID)
	x, y := proj.X, proj.Y
	if hasBody {
		x, y = body.X, body.Y
	}

	// Рикошет: снаряд BLAST юнита со статусом RICOCHET отскакивает от
	// ландшафта вместо взрыва — горизонтальная скорость инвертируется,
	// вертикальная гасится, снаряд остаётся в игре.
	if hitTerrain && hasBody && proj.Weapon.Effect == defs.EffectBlast {
		if owner, ok := r.ecs.Units[proj.OwnerID]; ok && owner.HasStatus(component.StatusRicochet) {
			r.engine.SetVelocity(proj.BodyID, -body.VX, body.VY*config.RicochetDamping)
			return
		}
	}

	r.removeProjectile(projID, proj)

	switch proj.Weapon.Effect {
	case defs.EffectBlast:
		r.applyBlast(x, y, proj.Weapon)
	case defs.EffectCluster:
		r.applyBlast(x, y, proj.Weapon)
		r.splitCluster(x, y, proj)
	case defs.EffectWell:
		r.spawnWell(x, y, proj.Weapon)
	default:
		// Лучи, телепорт и джетпак разрешаются мгновенно при выстреле и
		// никогда не существуют как снаряд; сюда попадать нечему.
	}

	r.pending(-1)
}

// ResolveDud убирает снаряд без эффекта (таймаут или вылет за границы поля).
func (r *CombatResolver) ResolveDud(projID types.EntityID) {
	proj, ok := r.ecs.Projectiles[projID]
	if !ok {
		return
	}
	r.removeProjectile(projID, proj)
	r.pending(-1)
}

func (r *CombatResolver) removeProjectile(projID types.EntityID, proj *component.Projectile) {
	r.engine.RemoveBody(proj.BodyID)
	delete(r.ecs.Projectiles, projID)
}

// applyBlast наносит площадной урон с линейным затуханием и вырезает воронку.
// Дистанции считаются по позициям, снятым до каких-либо изменений здоровья:
// урон не зависит от того, что другой юнит уже выбыл этим же взрывом.
func (r *CombatResolver) applyBlast(x, y float64, weapon defs.WeaponDefinition) {
	type target struct {
		id   types.EntityID
		dist float64
	}
	var targets []target
	for id, unit := range r.ecs.Units {
		if !unit.Alive() {
			continue
		}
		dist := utils.Dist(x, y, unit.X, unit.Y)
		if dist <= weapon.Radius {
			targets = append(targets, target{id: id, dist: dist})
		}
	}

	for _, tg := range targets {
		falloff := 1 - tg.dist/weapon.Radius
		// от 50% урона на краю радиуса до 100% в эпицентре
		dealt := int(math.Round(float64(weapon.Damage) * (config.BlastEdgeFactor + (1-config.BlastEdgeFactor)*falloff)))
		ApplyDamage(r.ecs, r.dispatcher, tg.id, dealt)
	}

	if r.terrain.DestroyAt(x, y, weapon.Radius) {
		r.dispatcher.Dispatch(event.Event{Type: event.TerrainDeformed, Data: x})
	}

	flashID := r.ecs.NewEntity()
	r.ecs.Explosions[flashID] = &component.Explosion{
		X: x, Y: y,
		MaxRadius: weapon.Radius,
		Duration:  config.ExplosionFlashDuration,
	}
	r.dispatcher.Dispatch(event.Event{Type: event.ExplosionSpawned, Data: event.ExplosionData{
		X: x, Y: y, Radius: weapon.Radius,
		Color: color.RGBA{weapon.Visuals.ColorR, weapon.Visuals.ColorG, weapon.Visuals.ColorB, 255},
	}})
}

// splitCluster порождает веер осколков из точки падения. Каждый осколок —
// полноценный снаряд с ослабленным определением BLAST, поэтому повторного
// разделения не бывает.
func (r *CombatResolver) splitCluster(x, y float64, proj *component.Projectile) {
	if proj.Fragment || proj.Weapon.Cluster == nil {
		return
	}
	frag := proj.Weapon.Derated()
	count := proj.Weapon.Cluster.Fragments
	for i := 0; i < count; i++ {
		angle := -math.Pi/2 + r.prng.Symmetric(config.ClusterFanSpread/2)
		speed := r.prng.Range(config.ClusterSpeedMin, config.ClusterSpeedMax)
		vx := math.Cos(angle) * speed
		vy := math.Sin(angle) * speed
		// старт чуть выше точки падения, чтобы не родиться внутри воронки
		r.FireProjectile(proj.OwnerID, frag, x, y-config.ProjectileRadius*3, vx, vy, true)
	}
}

// ResolveBeam наносит мгновенный урон вдоль прямой от среза ствола до дальней
// точки. Попадание — перпендикулярное расстояние юнита до прямой в пределах
// допуска, урон плоский, без затухания. Физическое тело не создаётся, остаётся
// только затухающая трасса для рендерера.
func (r *CombatResolver) ResolveBeam(ownerID types.EntityID, weapon defs.WeaponDefinition,
	x1, y1, x2, y2 float64) {
	type target struct{ id types.EntityID }
	var targets []target
	for id, unit := range r.ecs.Units {
		if id == ownerID || !unit.Alive() {
			continue
		}
		if utils.PointToLineDistance(unit.X, unit.Y, x1, y1, x2, y2) <= config.BeamHalfWidth {
			targets = append(targets, target{id: id})
		}
	}
	for _, tg := range targets {
		ApplyDamage(r.ecs, r.dispatcher, tg.id, weapon.Damage)
	}

	traceID := r.ecs.NewEntity()
	r.ecs.Beams[traceID] = &component.BeamTrace{
		X1: x1, Y1: y1, X2: x2, Y2: y2,
		TTL: config.BeamTraceLifetime,
	}
	r.dispatcher.Dispatch(event.Event{Type: event.BeamFired, Data: event.BeamData{X1: x1, Y1: y1, X2: x2, Y2: y2}})
}

// ResolveTeleport переносит юнита в случайную точку в безопасных отступах от
// краёв поля; вертикаль берётся с поверхности ландшафта, юнит никогда не
// оказывается внутри породы.
func (r *CombatResolver) ResolveTeleport(unitID types.EntityID) {
	unit, ok := r.ecs.Units[unitID]
	if !ok || !unit.Alive() {
		return
	}
	x := r.prng.Range(config.TeleportSafeMargin, config.ScreenWidth-config.TeleportSafeMargin)
	y := r.terrain.SurfaceY(x) - config.UnitRadius
	r.engine.SetPosition(unit.BodyID, x, y)
	r.engine.SetVelocity(unit.BodyID, 0, 0)
	unit.X = x
	unit.Y = y
}

// ResolveJetpack даёт юниту одноразовый импульс: горизонталь по направлению
// взгляда, вертикаль вверх. Снаряд не расходуется.
func (r *CombatResolver) ResolveJetpack(unitID types.EntityID, weapon defs.WeaponDefinition) {
	unit, ok := r.ecs.Units[unitID]
	if !ok || !unit.Alive() {
		return
	}
	ix, iy := config.JetpackImpulseX, config.JetpackImpulseY
	if weapon.Jetpack != nil {
		ix, iy = weapon.Jetpack.ImpulseX, weapon.Jetpack.ImpulseY
	}
	r.engine.ApplyImpulse(unit.BodyID, ix*float64(unit.Facing), iy)
}

func (r *CombatResolver) spawnWell(x, y float64, weapon defs.WeaponDefinition) {
	lifetime := config.WellLifetime
	strength := config.WellStrength
	if weapon.Well != nil {
		if weapon.Well.Lifetime > 0 {
			lifetime = weapon.Well.Lifetime
		}
		if weapon.Well.Strength > 0 {
			strength = weapon.Well.Strength
		}
	}
	id := r.ecs.NewEntity()
	r.ecs.Wells[id] = &component.Well{
		X: x, Y: y,
		TTL:      lifetime,
		Strength: strength,
	}
	// воронка удерживает ход до истечения своего времени жизни
	r.pending(+1)
}
