package utils

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5) = %v", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp(-1) = %v", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Clamp(11) = %v", got)
	}
}

func TestPointToLineDistance(t *testing.T) {
	// горизонтальная прямая y=100
	if got := PointToLineDistance(50, 130, 0, 100, 200, 100); got != 30 {
		t.Errorf("distance to horizontal line = %v, want 30", got)
	}
	// точка на прямой
	if got := PointToLineDistance(150, 100, 0, 100, 200, 100); got != 0 {
		t.Errorf("on-line distance = %v, want 0", got)
	}
	// диагональ y=x, точка (0, 10): расстояние 10/sqrt(2)
	want := 10 / math.Sqrt2
	if got := PointToLineDistance(0, 10, 0, 0, 100, 100); math.Abs(got-want) > 1e-9 {
		t.Errorf("diagonal distance = %v, want %v", got, want)
	}
	// вырожденный отрезок — расстояние до точки
	if got := PointToLineDistance(3, 4, 0, 0, 0, 0); got != 5 {
		t.Errorf("degenerate segment distance = %v, want 5", got)
	}
}

func TestPRNGDeterministicWithSeed(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 20; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("same seed produced different sequences")
		}
	}

	s := NewPRNGService(7)
	for i := 0; i < 100; i++ {
		if v := s.Range(10, 20); v < 10 || v >= 20 {
			t.Fatalf("Range out of bounds: %v", v)
		}
		if v := s.Symmetric(3); v < -3 || v > 3 {
			t.Fatalf("Symmetric out of bounds: %v", v)
		}
	}
}
