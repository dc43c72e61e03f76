// cmd/terrain_viewer/main.go
//
// Утилита для подбора параметров генерации ландшафта: рисует профиль высот
// и перегенерирует его по пробелу. В сам матч не входит.
package main

import (
	"flag"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-artillery/internal/config"
	"go-artillery/internal/terrain"
	"go-artillery/internal/utils"
)

func main() {
	seed := flag.Int64("seed", 0, "PRNG seed for terrain generation (0 = random)")
	flag.Parse()

	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Terrain Viewer")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	prng := utils.NewPRNGService(*seed)
	heights := terrain.GenerateProfile(prng, config.TerrainSegments)
	generation := 1

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeySpace) {
			heights = terrain.GenerateProfile(prng, config.TerrainSegments)
			generation++
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(config.BackgroundColor.R, config.BackgroundColor.G, config.BackgroundColor.B, 255))

		segW := int32(config.TerrainSegmentWidth)
		for i, h := range heights {
			x := int32(i) * segW
			top := int32(config.ScreenHeight - h)
			rl.DrawRectangle(x, top, segW, int32(h), rl.NewColor(config.TerrainColor.R, config.TerrainColor.G, config.TerrainColor.B, 255))
			rl.DrawRectangle(x, top, segW, 3, rl.NewColor(config.TerrainTopColor.R, config.TerrainTopColor.G, config.TerrainTopColor.B, 255))
		}

		rl.DrawText(fmt.Sprintf("generation %d - SPACE to regenerate", generation), 10, 10, 18, rl.RayWhite)
		rl.EndDrawing()
	}
}
