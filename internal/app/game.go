// internal/app/game.go
package app

import (
	"log"
	"math"
	"sort"

	"go-artillery/internal/component"
	"go-artillery/internal/config"
	"go-artillery/internal/defs"
	"go-artillery/internal/entity"
	"go-artillery/internal/event"
	"go-artillery/internal/physics"
	"go-artillery/internal/system"
	"go-artillery/internal/terrain"
	"go-artillery/internal/types"
	"go-artillery/internal/utils"
)

// ActionPhase — фазы одного выстрела. Resolving может входить в себя повторно
// (разделение кластера, время жизни воронки), но всегда сходится ровно к
// одному переходу хода.
type ActionPhase int

const (
	PhaseIdle ActionPhase = iota
	PhaseAiming
	PhaseFiring
	PhaseResolving
	PhaseTurnAdvance
)

// scheduledEvent — отложенный колбэк, привязанный к игровому времени тика.
// Никаких таймеров: очередь обрабатывается самим циклом симуляции.
type scheduledEvent struct {
	at float64
	fn func()
}

// Game владеет всем состоянием матча: физическим миром, ландшафтом, ECS,
// состоянием ходов и системами. Слой рендера читает только снапшоты и
// события; весь ввод игрока проходит через явные методы-запросы.
type Game struct {
	Engine          physics.Engine
	Terrain         *terrain.Terrain
	ECS             *entity.ECS
	Turn            *component.TurnState
	Resolver        *system.CombatResolver
	WellSystem      *system.WellSystem
	ProjectileSys   *system.ProjectileSystem
	VisualEffectSys *system.VisualEffectSystem
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	weaponOrder []string // порядок перебора оружия в UI

	aimAngle       float64
	power          float64
	selectedWeapon string

	phase           ActionPhase
	pendingEffects  int
	advanceQueued   bool
	scheduled       []scheduledEvent
	gameTime        float64
	matchOver       bool
	winnerTeam      int
	rosterOverrides []string
}

// NewGame собирает матч поверх инжектированного физического движка.
// Сид 0 означает недетерминированный матч (см. utils.NewPRNGService).
func NewGame(engine physics.Engine, seed int64) *Game {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)

	g := &Game{
		Engine:          engine,
		ECS:             ecs,
		EventDispatcher: dispatcher,
		Rng:             rng,
		power:           (config.PowerMin + config.PowerMax) / 2,
		aimAngle:        45,
		winnerTeam:      -1,
	}

	g.Terrain = terrain.New(engine, terrain.GenerateProfile(rng, config.TerrainSegments))
	g.Resolver = system.NewCombatResolver(ecs, engine, g.Terrain, dispatcher, rng, g.trackPending)
	g.WellSystem = system.NewWellSystem(ecs, engine, g.trackPending)
	g.ProjectileSys = system.NewProjectileSystem(ecs, engine, g.Resolver)
	g.VisualEffectSys = system.NewVisualEffectSystem(ecs)

	for id := range defs.WeaponDefs {
		g.weaponOrder = append(g.weaponOrder, id)
	}
	sort.Strings(g.weaponOrder)
	if len(g.weaponOrder) > 0 {
		g.selectedWeapon = g.weaponOrder[0]
	}

	dispatcher.Subscribe(event.UnitEliminated, g)

	return g
}

// SelectUnits задаёт состав команд на этапе подготовки матча: по одному
// идентификатору корпуса на юнита, команды чередуются. Неизвестные
// идентификаторы молча заменяются первым доступным корпусом.
func (g *Game) SelectUnits(defIDs []string) {
	g.rosterOverrides = append([]string{}, defIDs...)
}

// StartMatch расставляет юнитов по ландшафту и запускает ротацию ходов.
func (g *Game) StartMatch() {
	roster := g.rosterOverrides
	if len(roster) == 0 {
		roster = g.defaultRoster()
	}

	order := make([]types.EntityID, 0, len(roster))
	teams := make(map[types.EntityID]int)
	for i, defID := range roster {
		team := i % 2
		id := g.spawnUnit(defID, team, i, len(roster))
		order = append(order, id)
		teams[id] = team
	}

	g.Turn = component.NewTurnState(order, teams)
	g.Turn.Wind = g.Rng.Symmetric(1.0)
	g.seedAmmo(order)
	g.phase = PhaseIdle
	g.matchOver = false
	g.winnerTeam = -1
}

func (g *Game) defaultRoster() []string {
	defID := ""
	ids := make([]string, 0, len(defs.UnitDefs))
	for id := range defs.UnitDefs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	if len(ids) > 0 {
		defID = ids[0]
	}
	roster := make([]string, 0, config.DefaultUnitCount*2)
	for i := 0; i < config.DefaultUnitCount*2; i++ {
		roster = append(roster, defID)
	}
	return roster
}

func (g *Game) spawnUnit(defID string, team, index, total int) types.EntityID {
	def, ok := defs.UnitDefs[defID]
	if !ok {
		// неизвестный корпус — дефолтные параметры, матч не падает
		def = defs.UnitDefinition{
			ID:        defID,
			MaxHealth: 100,
			Radius:    config.UnitRadius,
			Mass:      config.UnitMass,
		}
	}

	// равномерно по ширине поля, с отступами от краёв
	span := config.ScreenWidth - 2*config.TeleportSafeMargin
	x := config.TeleportSafeMargin + span*(float64(index)+0.5)/float64(total)
	y := g.Terrain.SurfaceY(x) - def.Radius

	facing := 1
	if x > config.ScreenWidth/2 {
		facing = -1
	}

	bodyID := g.Engine.CreateBody(physics.BodyDef{
		X: x, Y: y,
		Radius: def.Radius,
		Mass:   def.Mass,
	})

	id := g.ECS.NewEntity()
	g.ECS.Units[id] = &component.Unit{
		DefID:     defID,
		Team:      team,
		Health:    def.MaxHealth,
		MaxHealth: def.MaxHealth,
		Armor:     def.Armor,
		Facing:    facing,
		BodyID:    bodyID,
		X:         x,
		Y:         y,
	}
	return id
}

// seedAmmo переводит в режим учёта все оружия с ограниченным боезапасом.
func (g *Game) seedAmmo(order []types.EntityID) {
	for _, unitID := range order {
		for weaponID, def := range defs.WeaponDefs {
			if def.Ammo != nil {
				g.Turn.SetAmmo(unitID, weaponID, *def.Ammo)
			}
		}
	}
}

// Update продвигает симуляцию на один тик. Вся мутация состояния матча
// происходит здесь, синхронно: интеграция, контакты, урон, отложенные
// события, переход хода.
func (g *Game) Update(deltaTime float64) {
	g.gameTime += deltaTime
	g.ECS.GameTime = g.gameTime

	g.VisualEffectSys.Update(deltaTime)
	if g.Turn == nil {
		return
	}

	g.Turn.TickCooldowns(deltaTime * 1000)
	g.runScheduled()

	if !g.matchOver {
		g.applyWind()
		g.WellSystem.Update(deltaTime)
		contacts := g.Engine.Step(deltaTime)
		g.dispatchContacts(contacts)
		g.ProjectileSys.Update(deltaTime)
		g.syncUnits()
		g.checkResolution()
	}
}

// applyWind прикладывает постоянную боковую силу ко всем достаточно лёгким
// телам пропорционально текущему ветру. Юниты тяжелее порога и ветром не
// сдвигаются.
func (g *Game) applyWind() {
	if g.Turn.Wind == 0 {
		return
	}
	force := g.Turn.Wind * config.WindForceFactor
	for _, proj := range g.ECS.Projectiles {
		if body, ok := g.Engine.Body(proj.BodyID); ok && body.Mass < config.WindMassThreshold {
			g.Engine.ApplyForce(proj.BodyID, force, 0)
		}
	}
}

// dispatchContacts передаёт резолверу каждую контактную пару ровно один раз.
// Контакты юнит-ландшафт и юнит-юнит — дело физики, резолверу интересны
// только снаряды.
func (g *Game) dispatchContacts(contacts []physics.Contact) {
	if len(contacts) == 0 {
		return
	}
	byBody := make(map[types.BodyID]types.EntityID, len(g.ECS.Projectiles))
	for id, proj := range g.ECS.Projectiles {
		byBody[proj.BodyID] = id
	}
	ownerBody := make(map[types.BodyID]types.EntityID, len(g.ECS.Units))
	for id, unit := range g.ECS.Units {
		ownerBody[unit.BodyID] = id
	}

	for _, c := range contacts {
		projID, aIsProj := byBody[c.A]
		other := c.B
		if !aIsProj {
			var bIsProj bool
			projID, bIsProj = byBody[c.B]
			if !bIsProj {
				continue
			}
			other = c.A
		}

		proj, ok := g.ECS.Projectiles[projID]
		if !ok {
			continue // уже разрешён этим же тиком
		}
		// собственный стрелок не подрывает снаряд на срезе ствола
		if unitID, isUnit := ownerBody[other]; isUnit && unitID == proj.OwnerID {
			continue
		}
		g.Resolver.ResolveImpact(projID, g.Terrain.IsTerrainBody(other))
	}
}

// syncUnits переносит позиции из физических тел в компоненты юнитов для
// рендерера и боевой системы.
func (g *Game) syncUnits() {
	for _, unit := range g.ECS.Units {
		if body, ok := g.Engine.Body(unit.BodyID); ok {
			unit.X = body.X
			unit.Y = body.Y
		}
	}
}

// trackPending — учёт незавершённых под-эффектов текущего выстрела.
func (g *Game) trackPending(delta int) {
	g.pendingEffects += delta
	if g.pendingEffects < 0 {
		g.pendingEffects = 0
	}
}

// checkResolution завершает фазу Resolving: когда все снаряды и воронки
// выстрела разрешены, планируется ровно один переход хода.
func (g *Game) checkResolution() {
	if g.phase != PhaseResolving || g.pendingEffects > 0 || g.advanceQueued {
		return
	}
	g.advanceQueued = true
	g.phase = PhaseTurnAdvance
	// короткая пауза, чтобы вспышка взрыва успела погаснуть
	g.schedule(config.ExplosionFlashDuration, g.advanceTurn)
}

func (g *Game) advanceTurn() {
	g.advanceQueued = false
	g.phase = PhaseIdle

	if !g.Turn.NextTurn(g.Rng) {
		g.endMatch()
		return
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.TurnAdvanced, Data: event.TurnData{ActorID: g.Turn.ActingUnit()}})
}

func (g *Game) endMatch() {
	if g.matchOver {
		return
	}
	g.matchOver = true
	_, g.winnerTeam = g.Turn.MatchOver()
	g.EventDispatcher.Dispatch(event.Event{Type: event.MatchEnded, Data: event.MatchEndData{WinnerTeam: g.winnerTeam}})
}

// schedule ставит колбэк в очередь отложенных событий цикла.
func (g *Game) schedule(delay float64, fn func()) {
	g.scheduled = append(g.scheduled, scheduledEvent{at: g.gameTime + delay, fn: fn})
}

// runScheduled исполняет дозревшие отложенные события. Колбэк может ставить
// новые события; они исполнятся не раньше следующего тика.
func (g *Game) runScheduled() {
	if len(g.scheduled) == 0 {
		return
	}
	var due []func()
	rest := g.scheduled[:0]
	for _, ev := range g.scheduled {
		if ev.at <= g.gameTime {
			due = append(due, ev.fn)
		} else {
			rest = append(rest, ev)
		}
	}
	g.scheduled = rest
	for _, fn := range due {
		fn()
	}
}

// OnEvent реализует event.Listener: уборка выбывшего юнита.
func (g *Game) OnEvent(e event.Event) {
	if e.Type != event.UnitEliminated {
		return
	}
	id, ok := e.Data.(types.EntityID)
	if !ok {
		return
	}
	unit, exists := g.ECS.Units[id]
	if !exists {
		return
	}
	g.Engine.RemoveBody(unit.BodyID)
	if g.Turn != nil {
		g.Turn.MarkEliminated(id)
		if over, _ := g.Turn.MatchOver(); over {
			g.endMatch()
		}
	}
	log.Printf("Unit %d eliminated (team %d)", id, unit.Team)
}

// --- Входящий интерфейс UI (spec: дискретные запросы, не записи полей) ---

// SetAimAngle задаёт угол прицеливания в градусах, зажимается в [0, 90].
func (g *Game) SetAimAngle(degrees float64) {
	g.aimAngle = utils.Clamp(degrees, config.AimAngleMin, config.AimAngleMax)
	if g.phase == PhaseIdle {
		g.phase = PhaseAiming
	}
}

// SetPower задаёт мощность выстрела, зажимается в [10, 100].
func (g *Game) SetPower(value float64) {
	g.power = utils.Clamp(value, config.PowerMin, config.PowerMax)
	if g.phase == PhaseIdle {
		g.phase = PhaseAiming
	}
}

// SelectWeapon выбирает оружие по идентификатору; неизвестный id игнорируется.
func (g *Game) SelectWeapon(weaponID string) {
	if _, ok := defs.WeaponDefs[weaponID]; ok {
		g.selectedWeapon = weaponID
	}
}

// SelectNextWeapon циклически переключает оружие (Tab в UI).
func (g *Game) SelectNextWeapon() {
	if len(g.weaponOrder) == 0 {
		return
	}
	idx := 0
	for i, id := range g.weaponOrder {
		if id == g.selectedWeapon {
			idx = (i + 1) % len(g.weaponOrder)
			break
		}
	}
	g.selectedWeapon = g.weaponOrder[idx]
}

// AimAngle возвращает текущий угол прицеливания.
func (g *Game) AimAngle() float64 { return g.aimAngle }

// Power возвращает текущую мощность.
func (g *Game) Power() float64 { return g.power }

// SelectedWeapon возвращает id выбранного оружия.
func (g *Game) SelectedWeapon() string { return g.selectedWeapon }

// MatchOver сообщает, завершён ли матч, и номер победившей команды.
func (g *Game) MatchOver() (bool, int) { return g.matchOver, g.winnerTeam }

// RequestFire выполняет выстрел текущим оружием от имени действующего юнита.
// При нехватке боезапаса или активной перезарядке запрос — no-op: состояние
// не меняется, ход не переходит.
func (g *Game) RequestFire() {
	if g.Turn == nil || g.matchOver {
		return
	}
	if g.phase != PhaseIdle && g.phase != PhaseAiming {
		return // выстрел уже разрешается
	}

	actorID := g.Turn.ActingUnit()
	actor, ok := g.ECS.Units[actorID]
	if !ok || !actor.Alive() {
		return
	}

	weapon, ok := defs.WeaponDefs[g.selectedWeapon]
	if !ok {
		return
	}
	if !g.Turn.CanFire(actorID, weapon.ID) {
		return
	}
	if !g.Turn.ConsumeAmmo(actorID, weapon.ID) {
		return
	}
	g.Turn.SetCooldown(actorID, weapon.ID, float64(weapon.CooldownMs))

	g.phase = PhaseFiring
	g.fire(actorID, actor, weapon)
	g.phase = PhaseResolving
}

// fire запускает выбранный эффект. Траекторные оружия порождают снаряд,
// мгновенные разрешаются на месте и оставляют счётчик эффектов нулевым —
// ход перейдёт в конце этого же тика.
func (g *Game) fire(actorID types.EntityID, actor *component.Unit, weapon defs.WeaponDefinition) {
	rad := g.aimAngle * math.Pi / 180
	dirX := math.Cos(rad) * float64(actor.Facing)
	dirY := -math.Sin(rad)
	muzzleOffset := config.UnitRadius + config.ProjectileRadius + 4
	mx := actor.X + dirX*muzzleOffset
	my := actor.Y + dirY*muzzleOffset

	switch weapon.Effect {
	case defs.EffectBlast, defs.EffectCluster, defs.EffectWell:
		speed := g.power * config.PowerScale
		g.Resolver.FireProjectile(actorID, weapon, mx, my, dirX*speed, dirY*speed, false)
	case defs.EffectBeam, defs.EffectLineOfSight:
		farX := mx + dirX*2000
		farY := my + dirY*2000
		g.Resolver.ResolveBeam(actorID, weapon, mx, my, farX, farY)
	case defs.EffectTeleport:
		g.Resolver.ResolveTeleport(actorID)
	case defs.EffectJetpack:
		g.Resolver.ResolveJetpack(actorID, weapon)
	}
}

// Teardown освобождает все физические тела и формы ландшафта.
func (g *Game) Teardown() {
	for _, unit := range g.ECS.Units {
		g.Engine.RemoveBody(unit.BodyID)
	}
	for id, proj := range g.ECS.Projectiles {
		g.Engine.RemoveBody(proj.BodyID)
		delete(g.ECS.Projectiles, id)
	}
	g.Terrain.Release()
}
