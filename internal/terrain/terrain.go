// internal/terrain/terrain.go
package terrain

import (
	"go-artillery/internal/config"
	"go-artillery/internal/physics"
	"go-artillery/internal/types"
)

// Terrain — разрушаемый ландшафт из N вертикальных сегментов фиксированной
// ширины. Высота хранится как расстояние от нижней кромки экрана; каждый
// сегмент владеет собственной статической формой в физическом мире.
// Количество сегментов и их ширина фиксируются при создании и не меняются.
type Terrain struct {
	engine   physics.Engine
	segWidth float64
	floorY   float64 // экранная координата нижней кромки

	heights []float64
	shapes  []types.BodyID // 0 — сегмент полностью разрушен, формы нет
	shapeSet map[types.BodyID]int
}

// New создаёт ландшафт по готовому профилю высот и регистрирует формы
// сегментов в физическом мире.
func New(engine physics.Engine, heights []float64) *Terrain {
	t := &Terrain{
		engine:   engine,
		segWidth: config.TerrainSegmentWidth,
		floorY:   config.ScreenHeight,
		heights:  make([]float64, len(heights)),
		shapes:   make([]types.BodyID, len(heights)),
		shapeSet: make(map[types.BodyID]int),
	}
	copy(t.heights, heights)
	for i := range t.heights {
		if t.heights[i] < 0 {
			t.heights[i] = 0
		}
		t.insertShape(i)
	}
	return t
}

// Segments возвращает число сегментов.
func (t *Terrain) Segments() int {
	return len(t.heights)
}

// SegmentWidth возвращает ширину сегмента.
func (t *Terrain) SegmentWidth() float64 {
	return t.segWidth
}

// HeightAt возвращает высоту сегмента, содержащего x. Для координат вне
// ландшафта возвращается 0. Поиск сегмента — целочисленное деление, O(1).
func (t *Terrain) HeightAt(x float64) float64 {
	idx := int(x / t.segWidth)
	if x < 0 || idx < 0 || idx >= len(t.heights) {
		return 0
	}
	return t.heights[idx]
}

// SurfaceY возвращает экранную Y-координату поверхности над точкой x.
func (t *Terrain) SurfaceY(x float64) float64 {
	return t.floorY - t.HeightAt(x)
}

// DestroyAt вырезает воронку: каждый сегмент, чей центр по горизонтали
// отстоит от x не более чем на radius, теряет radius-dist высоты (линейное
// затухание — полный радиус в эпицентре, ноль на краю), с зажимом в 0.
// Вычитание идёт от текущей сохранённой высоты, поэтому повторный вызов с
// теми же аргументами даёт тот же результат, а не двойную просадку.
// Возвращает true, если хотя бы один сегмент изменился.
func (t *Terrain) DestroyAt(x, y, radius float64) bool {
	if radius <= 0 {
		return false
	}
	changed := false
	for i := range t.heights {
		cx := (float64(i) + 0.5) * t.segWidth
		dist := cx - x
		if dist < 0 {
			dist = -dist
		}
		if dist > radius {
			continue
		}
		newHeight := t.heights[i] - (radius - dist)
		if newHeight < 0 {
			newHeight = 0
		}
		if newHeight == t.heights[i] {
			continue
		}
		t.heights[i] = newHeight
		t.replaceShape(i)
		changed = true
	}
	return changed
}

// IsTerrainBody сообщает, принадлежит ли тело ландшафту.
func (t *Terrain) IsTerrainBody(id types.BodyID) bool {
	_, ok := t.shapeSet[id]
	return ok
}

// Heights возвращает копию профиля высот для снапшота рендерера.
func (t *Terrain) Heights() []float64 {
	out := make([]float64, len(t.heights))
	copy(out, t.heights)
	return out
}

// Regenerate заменяет профиль высот на новый (новый матч). Единственный
// случай, когда высоты могут расти.
func (t *Terrain) Regenerate(heights []float64) {
	n := len(t.heights)
	for i := 0; i < n; i++ {
		h := 0.0
		if i < len(heights) {
			h = heights[i]
		}
		if h < 0 {
			h = 0
		}
		if h == t.heights[i] {
			continue
		}
		t.heights[i] = h
		t.replaceShape(i)
	}
}

// Release убирает все формы из физического мира (окончание матча).
func (t *Terrain) Release() {
	for i, id := range t.shapes {
		if id != 0 {
			t.engine.RemoveBody(id)
			delete(t.shapeSet, id)
			t.shapes[i] = 0
		}
	}
}

func (t *Terrain) replaceShape(i int) {
	if old := t.shapes[i]; old != 0 {
		t.engine.RemoveBody(old)
		delete(t.shapeSet, old)
		t.shapes[i] = 0
	}
	t.insertShape(i)
}

func (t *Terrain) insertShape(i int) {
	h := t.heights[i]
	if h <= 0 {
		return
	}
	id := t.engine.AddStaticBox(float64(i)*t.segWidth, t.floorY-h, t.segWidth, h)
	t.shapes[i] = id
	t.shapeSet[id] = i
}
