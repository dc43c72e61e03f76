// internal/terrain/generate.go
package terrain

import (
	"go-artillery/internal/config"
	"go-artillery/internal/utils"
)

// GenerateProfile строит профиль высот методом серединного смещения.
// Результат всегда зажат в [TerrainMinHeight, TerrainMaxHeight].
func GenerateProfile(prng *utils.PRNGService, segments int) []float64 {
	heights := make([]float64, segments)
	heights[0] = prng.Range(config.TerrainMinHeight, config.TerrainMaxHeight)
	heights[segments-1] = prng.Range(config.TerrainMinHeight, config.TerrainMaxHeight)

	displace(prng, heights, 0, segments-1, (config.TerrainMaxHeight-config.TerrainMinHeight)/2)

	for i := range heights {
		heights[i] = utils.Clamp(heights[i], config.TerrainMinHeight, config.TerrainMaxHeight)
	}
	return heights
}

func displace(prng *utils.PRNGService, heights []float64, lo, hi int, amp float64) {
	if hi-lo < 2 {
		return
	}
	mid := (lo + hi) / 2
	heights[mid] = (heights[lo]+heights[hi])/2 + prng.Symmetric(amp)
	next := amp * config.TerrainRoughness
	displace(prng, heights, lo, mid, next)
	displace(prng, heights, mid, hi, next)
}
