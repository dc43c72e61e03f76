package physics

import (
	"math"
	"testing"
)

func TestStepIntegratesGravity(t *testing.T) {
	w := NewWorld(100)
	id := w.CreateBody(BodyDef{X: 0, Y: 0, VX: 50, VY: 0, Radius: 4, Mass: 1})

	w.Step(0.1)

	b, ok := w.Body(id)
	if !ok {
		t.Fatal("body disappeared after step")
	}
	// полунеявный Эйлер: сначала скорость, потом позиция
	if math.Abs(b.VY-10) > 1e-9 {
		t.Errorf("VY = %v, want 10", b.VY)
	}
	if math.Abs(b.X-5) > 1e-9 {
		t.Errorf("X = %v, want 5", b.X)
	}
	if math.Abs(b.Y-1) > 1e-9 {
		t.Errorf("Y = %v, want 1 (velocity updated before position)", b.Y)
	}
}

func TestApplyForceOneStepOnly(t *testing.T) {
	w := NewWorld(0)
	id := w.CreateBody(BodyDef{Radius: 4, Mass: 2})

	w.ApplyForce(id, 20, 0) // a = 10
	w.Step(0.5)
	b, _ := w.Body(id)
	if math.Abs(b.VX-5) > 1e-9 {
		t.Errorf("VX after forced step = %v, want 5", b.VX)
	}

	// сила не должна пережить шаг
	w.Step(0.5)
	b, _ = w.Body(id)
	if math.Abs(b.VX-5) > 1e-9 {
		t.Errorf("VX after free step = %v, want 5 (force leaked)", b.VX)
	}
}

func TestApplyImpulseAddsVelocity(t *testing.T) {
	w := NewWorld(0)
	id := w.CreateBody(BodyDef{VX: 10, Radius: 4, Mass: 1})
	w.ApplyImpulse(id, -30, 15)
	b, _ := w.Body(id)
	if b.VX != -20 || b.VY != 15 {
		t.Errorf("velocity = (%v, %v), want (-20, 15)", b.VX, b.VY)
	}
}

func TestMissingBodyOpsAreNoops(t *testing.T) {
	w := NewWorld(100)
	const ghost = 999
	w.ApplyForce(ghost, 1, 1)
	w.ApplyImpulse(ghost, 1, 1)
	w.SetVelocity(ghost, 1, 1)
	w.SetPosition(ghost, 1, 1)
	w.RemoveBody(ghost)
	if _, ok := w.Body(ghost); ok {
		t.Error("ghost body exists")
	}
	w.Step(0.016)
}

func TestStaticBodyIgnoresDynamics(t *testing.T) {
	w := NewWorld(500)
	id := w.AddStaticBox(0, 100, 50, 20)
	w.ApplyImpulse(id, 100, 100)
	w.SetVelocity(id, 7, 7)
	w.Step(1)
	b, _ := w.Body(id)
	if b.X != 0 || b.Y != 100 {
		t.Errorf("static box moved to (%v, %v)", b.X, b.Y)
	}
}

func TestStepReportsContactOncePerPair(t *testing.T) {
	w := NewWorld(0)
	a := w.CreateBody(BodyDef{X: 0, Y: 0, Radius: 10, Mass: 1})
	b := w.CreateBody(BodyDef{X: 5, Y: 0, Radius: 10, Mass: 1})

	contacts := w.Step(0.001)
	if len(contacts) != 1 {
		t.Fatalf("got %d contacts, want 1", len(contacts))
	}
	c := contacts[0]
	if c.A != a || c.B != b {
		t.Errorf("contact pair = (%d, %d), want (%d, %d) in sorted order", c.A, c.B, a, b)
	}
}

func TestBodyRestsOnStaticBox(t *testing.T) {
	w := NewWorld(380)
	floor := w.AddStaticBox(0, 200, 400, 100)
	ball := w.CreateBody(BodyDef{X: 100, Y: 150, Radius: 10, Mass: 1})

	touched := false
	for i := 0; i < 300; i++ {
		for _, c := range w.Step(0.016) {
			if (c.A == floor && c.B == ball) || (c.A == ball && c.B == floor) {
				touched = true
			}
		}
	}
	if !touched {
		t.Fatal("ball never contacted the floor")
	}
	b, _ := w.Body(ball)
	if b.Y > 200-b.Radius+0.5 {
		t.Errorf("ball sank into the box: Y = %v", b.Y)
	}
	if b.VY > 1 {
		t.Errorf("vertical velocity not damped at rest: %v", b.VY)
	}
}

func TestStaticPairsNotReported(t *testing.T) {
	w := NewWorld(0)
	w.AddStaticBox(0, 0, 50, 50)
	w.AddStaticBox(25, 25, 50, 50)
	if contacts := w.Step(0.016); len(contacts) != 0 {
		t.Errorf("static-static pair reported: %v", contacts)
	}
}
