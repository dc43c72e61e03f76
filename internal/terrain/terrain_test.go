package terrain

import (
	"math"
	"testing"

	"go-artillery/internal/physics"
	"go-artillery/internal/types"
	"go-artillery/internal/utils"
)

// recordingEngine считает операции над статическими формами, чтобы проверить
// замену форм сегментов при разрушении.
type recordingEngine struct {
	nextID  types.BodyID
	boxes   map[types.BodyID]bool
	added   int
	removed int
}

func newRecordingEngine() *recordingEngine {
	return &recordingEngine{nextID: 1, boxes: make(map[types.BodyID]bool)}
}

func (e *recordingEngine) CreateBody(def physics.BodyDef) types.BodyID {
	id := e.nextID
	e.nextID++
	return id
}

func (e *recordingEngine) AddStaticBox(x, y, w, h float64) types.BodyID {
	id := e.nextID
	e.nextID++
	e.boxes[id] = true
	e.added++
	return id
}

func (e *recordingEngine) RemoveBody(id types.BodyID) {
	if e.boxes[id] {
		delete(e.boxes, id)
		e.removed++
	}
}

func (e *recordingEngine) Body(id types.BodyID) (*physics.BodyState, bool) { return nil, false }
func (e *recordingEngine) ApplyForce(id types.BodyID, fx, fy float64)      {}
func (e *recordingEngine) ApplyImpulse(id types.BodyID, vx, vy float64)    {}
func (e *recordingEngine) SetVelocity(id types.BodyID, vx, vy float64)     {}
func (e *recordingEngine) SetPosition(id types.BodyID, x, y float64)       {}
func (e *recordingEngine) Step(dt float64) []physics.Contact               { return nil }

func flatProfile(segments int, height float64) []float64 {
	heights := make([]float64, segments)
	for i := range heights {
		heights[i] = height
	}
	return heights
}

func TestHeightAtSegmentLookup(t *testing.T) {
	tr := New(newRecordingEngine(), flatProfile(10, 100))

	if got := tr.HeightAt(0); got != 100 {
		t.Errorf("HeightAt(0) = %v, want 100", got)
	}
	if got := tr.HeightAt(9.9); got != 100 {
		t.Errorf("HeightAt(9.9) = %v, want 100 (same first segment)", got)
	}
	// координаты вне ландшафта — 0, без паники
	if got := tr.HeightAt(-5); got != 0 {
		t.Errorf("HeightAt(-5) = %v, want 0", got)
	}
	if got := tr.HeightAt(1e6); got != 0 {
		t.Errorf("HeightAt(1e6) = %v, want 0", got)
	}
}

func TestDestroyAtLinearFalloff(t *testing.T) {
	tr := New(newRecordingEngine(), flatProfile(40, 100))

	// эпицентр над центром сегмента 20: x = 20.5 * 5
	epicenter := 20.5 * tr.SegmentWidth()
	tr.DestroyAt(epicenter, 0, 30)

	// в эпицентре срезается весь радиус
	if got := tr.HeightAt(epicenter); got != 70 {
		t.Errorf("height at epicenter = %v, want 70", got)
	}
	// сегмент в 25px от эпицентра теряет 30-25=5
	side := epicenter + 25
	if got := tr.HeightAt(side); got != 95 {
		t.Errorf("height 25px off = %v, want 95", got)
	}
	// за радиусом — нетронуто
	far := epicenter + 60
	if got := tr.HeightAt(far); got != 100 {
		t.Errorf("height outside radius = %v, want 100", got)
	}
}

func TestDestroyAtMonotonicNeverNegative(t *testing.T) {
	prng := utils.NewPRNGService(7)
	tr := New(newRecordingEngine(), flatProfile(60, 80))

	prev := tr.Heights()
	for i := 0; i < 200; i++ {
		x := prng.Range(0, 300)
		r := prng.Range(5, 90)
		tr.DestroyAt(x, 0, r)

		cur := tr.Heights()
		for seg := range cur {
			if cur[seg] < 0 {
				t.Fatalf("segment %d height negative: %v", seg, cur[seg])
			}
			if cur[seg] > prev[seg] {
				t.Fatalf("segment %d height grew: %v -> %v", seg, prev[seg], cur[seg])
			}
		}
		prev = cur
	}
}

func TestHeightAtStableBetweenReads(t *testing.T) {
	tr := New(newRecordingEngine(), flatProfile(20, 100))
	tr.DestroyAt(50, 0, 40)

	first := tr.HeightAt(50)
	second := tr.HeightAt(50)
	if first != second {
		t.Errorf("repeated reads drifted: %v then %v", first, second)
	}
}

func TestDestroyAtReplacesCollisionShapes(t *testing.T) {
	engine := newRecordingEngine()
	tr := New(engine, flatProfile(20, 100))
	addedAtStart := engine.added

	tr.DestroyAt(50, 0, 12)

	if engine.removed == 0 {
		t.Error("expected old segment shapes to be retracted")
	}
	if engine.added == addedAtStart {
		t.Error("expected replacement shapes to be inserted")
	}

	// полностью срезанный сегмент не получает новой формы
	tr2 := New(engine, flatProfile(4, 10))
	addedBefore := engine.added
	removedBefore := engine.removed
	tr2.DestroyAt(10, 0, 200)
	for i, h := range tr2.Heights() {
		if h != 0 {
			t.Fatalf("segment %d not fully destroyed: %v", i, h)
		}
	}
	if engine.added != addedBefore {
		t.Errorf("destroyed segments got replacement shapes: %d new", engine.added-addedBefore)
	}
	if engine.removed != removedBefore+4 {
		t.Errorf("removed %d shapes, want 4", engine.removed-removedBefore)
	}
}

func TestDestroyAtOutOfRangeIgnored(t *testing.T) {
	tr := New(newRecordingEngine(), flatProfile(10, 50))
	// воронка целиком вне поля — ни паники, ни изменений
	tr.DestroyAt(-500, 0, 40)
	tr.DestroyAt(5000, 0, 40)
	for i, h := range tr.Heights() {
		if h != 50 {
			t.Errorf("segment %d changed by out-of-range destroy: %v", i, h)
		}
	}
}

func TestGenerateProfileBounds(t *testing.T) {
	prng := utils.NewPRNGService(42)
	for trial := 0; trial < 5; trial++ {
		heights := GenerateProfile(prng, 240)
		if len(heights) != 240 {
			t.Fatalf("profile length = %d, want 240", len(heights))
		}
		for i, h := range heights {
			if math.IsNaN(h) || h < 60 || h > 320 {
				t.Fatalf("segment %d out of bounds: %v", i, h)
			}
		}
	}
}

func TestRegenerateRestoresHeights(t *testing.T) {
	tr := New(newRecordingEngine(), flatProfile(10, 100))
	tr.DestroyAt(25, 0, 60)
	tr.Regenerate(flatProfile(10, 120))
	for i, h := range tr.Heights() {
		if h != 120 {
			t.Errorf("segment %d = %v after regenerate, want 120", i, h)
		}
	}
}
