package config

// StageConfig is the root config for stage JSON files.
// The collision layer is a top-down grid; each mapped character becomes a box
// spanning its tile, from Bottom to Top above the floor.
type StageConfig struct {
	ID          string                       `json:"id"`
	Name        string                       `json:"name"`
	Size        StageSizeConfig              `json:"size"`
	PlayerSpawn PositionConfig               `json:"playerSpawn"`
	SpawnYaw    float64                      `json:"spawnYaw"`
	Layers      LayersConfig                 `json:"layers"`
	TileMapping map[string]TileMappingConfig `json:"tileMapping"`
}

type StageSizeConfig struct {
	Width    int `json:"width"`
	Depth    int `json:"depth"`
	TileSize int `json:"tileSize"`
}

type PositionConfig struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type LayersConfig struct {
	Collision []string `json:"collision"`
}

type TileMappingConfig struct {
	Type   string  `json:"type"` // "wall" or "ceiling"
	Bottom float64 `json:"bottom"`
	Top    float64 `json:"top"`
}
