// internal/physics/world.go
package physics

import (
	"math"

	"go-artillery/internal/types"
)

// World — встроенная реализация Engine: полунеявный Эйлер для динамических
// кругов и неподвижные прямоугольники для ландшафта. Полностью
// детерминирована, используется и в игре, и в тестах.
type World struct {
	Gravity float64

	nextID types.BodyID
	bodies map[types.BodyID]*BodyState
}

// NewWorld создаёт пустой мир с указанным ускорением свободного падения.
func NewWorld(gravity float64) *World {
	return &World{
		Gravity: gravity,
		nextID:  1,
		bodies:  make(map[types.BodyID]*BodyState),
	}
}

func (w *World) CreateBody(def BodyDef) types.BodyID {
	id := w.nextID
	w.nextID++
	w.bodies[id] = &BodyState{
		X: def.X, Y: def.Y,
		VX: def.VX, VY: def.VY,
		Radius: def.Radius,
		Mass:   def.Mass,
	}
	return id
}

func (w *World) AddStaticBox(x, y, width, height float64) types.BodyID {
	id := w.nextID
	w.nextID++
	w.bodies[id] = &BodyState{
		X: x, Y: y,
		W: width, H: height,
		Static: true,
	}
	return id
}

// RemoveBody удаляет тело. Повторное удаление — no-op: событие того же тика
// могло убрать тело раньше нас.
func (w *World) RemoveBody(id types.BodyID) {
	delete(w.bodies, id)
}

func (w *World) Body(id types.BodyID) (*BodyState, bool) {
	b, ok := w.bodies[id]
	return b, ok
}

func (w *World) ApplyForce(id types.BodyID, fx, fy float64) {
	if b, ok := w.bodies[id]; ok && !b.Static {
		b.fx += fx
		b.fy += fy
	}
}

func (w *World) ApplyImpulse(id types.BodyID, vx, vy float64) {
	if b, ok := w.bodies[id]; ok && !b.Static {
		b.VX += vx
		b.VY += vy
	}
}

func (w *World) SetVelocity(id types.BodyID, vx, vy float64) {
	if b, ok := w.bodies[id]; ok && !b.Static {
		b.VX = vx
		b.VY = vy
	}
}

func (w *World) SetPosition(id types.BodyID, x, y float64) {
	if b, ok := w.bodies[id]; ok {
		b.X = x
		b.Y = y
	}
}

// Step продвигает интегратор на dt секунд и возвращает список контактных пар.
// Каждая пересекающаяся пара попадает в список ровно один раз за шаг.
func (w *World) Step(dt float64) []Contact {
	// v = v + (g + F/m)*dt; p = p + v*dt
	for _, b := range w.bodies {
		if b.Static {
			continue
		}
		ay := w.Gravity
		ax := 0.0
		if b.Mass > 0 {
			ax += b.fx / b.Mass
			ay += b.fy / b.Mass
		}
		b.VX += ax * dt
		b.VY += ay * dt
		b.X += b.VX * dt
		b.Y += b.VY * dt
		b.fx = 0
		b.fy = 0
	}

	var contacts []Contact
	ids := w.sortedIDs()
	for i, idA := range ids {
		a := w.bodies[idA]
		for _, idB := range ids[i+1:] {
			b := w.bodies[idB]
			if a.Static && b.Static {
				continue
			}
			if w.overlap(a, b) {
				contacts = append(contacts, Contact{A: idA, B: idB})
				w.resolve(a, b)
			}
		}
	}
	return contacts
}

// sortedIDs даёт стабильный порядок перебора пар независимо от итерации map.
func (w *World) sortedIDs() []types.BodyID {
	ids := make([]types.BodyID, 0, len(w.bodies))
	for id := range w.bodies {
		ids = append(ids, id)
	}
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j] < ids[j-1]; j-- {
			ids[j], ids[j-1] = ids[j-1], ids[j]
		}
	}
	return ids
}

func (w *World) overlap(a, b *BodyState) bool {
	if a.Static {
		a, b = b, a
	}
	if b.Static {
		return circleBoxOverlap(a, b)
	}
	dist := math.Hypot(a.X-b.X, a.Y-b.Y)
	return dist < a.Radius+b.Radius
}

func circleBoxOverlap(c, box *BodyState) bool {
	cx := clampf(c.X, box.X, box.X+box.W)
	cy := clampf(c.Y, box.Y, box.Y+box.H)
	return math.Hypot(c.X-cx, c.Y-cy) < c.Radius
}

// resolve выталкивает динамическое тело из статического по минимальной оси и
// гасит нормальную составляющую скорости. Пары динамика-динамика не
// разрешаются: их судьбу решает боевая система.
func (w *World) resolve(a, b *BodyState) {
	if a.Static {
		a, b = b, a
	}
	if !b.Static {
		return
	}

	// проникновение по каждой оси
	left := (a.X + a.Radius) - b.X
	right := (b.X + b.W) - (a.X - a.Radius)
	top := (a.Y + a.Radius) - b.Y
	bottom := (b.Y + b.H) - (a.Y - a.Radius)

	min := left
	axis := 0 // 0: влево, 1: вправо, 2: вверх, 3: вниз
	if right < min {
		min = right
		axis = 1
	}
	if top < min {
		min = top
		axis = 2
	}
	if bottom < min {
		min = bottom
		axis = 3
	}

	switch axis {
	case 0:
		a.X -= min
		if a.VX > 0 {
			a.VX = 0
		}
	case 1:
		a.X += min
		if a.VX < 0 {
			a.VX = 0
		}
	case 2:
		a.Y -= min
		if a.VY > 0 {
			a.VY = 0
		}
	case 3:
		a.Y += min
		if a.VY < 0 {
			a.VY = 0
		}
	}
}

func clampf(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
