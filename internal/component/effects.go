// internal/component/effects.go
package component

// Well — гравитационная воронка: неколлайдящий точечный аттрактор с
// ограниченным временем жизни.
type Well struct {
	X, Y     float64
	TTL      float64
	Strength float64
}

// BeamTrace — кратковременная трасса луча, существует только для рендерера.
type BeamTrace struct {
	X1, Y1 float64
	X2, Y2 float64
	TTL    float64
}

// Explosion — расширяющаяся вспышка взрыва.
type Explosion struct {
	X, Y         float64
	MaxRadius    float64
	Duration     float64
	CurrentTimer float64
}
