package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
)

// LoadArena converts a StageConfig into an Arena entity. Every mapped tile in
// the collision layer becomes a box over its cell; rows run along Y.
func LoadArena(cfg *config.StageConfig) *entity.Arena {
	tileSize := float64(cfg.Size.TileSize)
	tileWidth := 0
	if cfg.Size.TileSize > 0 {
		tileWidth = cfg.Size.Width / cfg.Size.TileSize
	}

	var obstacles []entity.Obstacle
	for y, row := range cfg.Layers.Collision {
		for x, char := range row {
			if x >= tileWidth {
				break
			}
			mapping, ok := cfg.TileMapping[string(char)]
			if !ok {
				continue
			}

			switch mapping.Type {
			case "wall", "ceiling":
			default:
				continue
			}

			obstacles = append(obstacles, entity.Obstacle{
				Min: mgl64.Vec3{float64(x) * tileSize, float64(y) * tileSize, mapping.Bottom},
				Max: mgl64.Vec3{float64(x+1) * tileSize, float64(y+1) * tileSize, mapping.Top},
			})
		}
	}

	return &entity.Arena{
		Width:     float64(cfg.Size.Width),
		Depth:     float64(cfg.Size.Depth),
		Obstacles: obstacles,
		Spawn:     mgl64.Vec3{float64(cfg.PlayerSpawn.X), float64(cfg.PlayerSpawn.Y), 0},
	}
}
