// internal/utils/math.go
package utils

import "math"

// Clamp зажимает значение в диапазон [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Dist возвращает евклидово расстояние между двумя точками.
func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// PointToLineDistance возвращает расстояние от точки (px, py) до бесконечной
// прямой, проходящей через (x1, y1) и (x2, y2). Для вырожденного отрезка
// возвращается расстояние до точки.
func PointToLineDistance(px, py, x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length < 1e-9 {
		return math.Hypot(px-x1, py-y1)
	}
	// |cross| / |d| — перпендикулярное расстояние
	return math.Abs(dx*(y1-py)-dy*(x1-px)) / length
}
