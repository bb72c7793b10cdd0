package config

// Settings is the root config for settings.yaml
type Settings struct {
	Title   string         `yaml:"title"`
	Display DisplayConfig  `yaml:"display"`
	Audio   AudioConfig    `yaml:"audio"`
	Levels  LevelsSettings `yaml:"levels"`
}

type DisplayConfig struct {
	ScreenWidth  int `yaml:"screenWidth"`
	ScreenHeight int `yaml:"screenHeight"`
	Scale        int `yaml:"scale"`
	TPS          int `yaml:"tps"`
}

// AudioConfig configures cue playback. Volume is keyed by cue name (0.0 ~ 1.0).
type AudioConfig struct {
	Enabled bool               `yaml:"enabled"`
	Volume  map[string]float64 `yaml:"volume"`
}

type LevelsSettings struct {
	Dir   string `yaml:"dir"`
	Start int    `yaml:"start"`
}

// DefaultSettings returns the settings used when fields are left unset
func DefaultSettings() Settings {
	return Settings{
		Title: "Nine Levels of Hell",
		Display: DisplayConfig{
			ScreenWidth:  320,
			ScreenHeight: 240,
			Scale:        2,
			TPS:          60,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume: map[string]float64{
				"dash":  0.3,
				"hit":   0.8,
				"shoot": 0.4,
			},
		},
		Levels: LevelsSettings{
			Dir: "levels",
		},
	}
}

// applyDefaults fills zero values from DefaultSettings
func (s *Settings) applyDefaults() {
	def := DefaultSettings()
	if s.Title == "" {
		s.Title = def.Title
	}
	if s.Display.ScreenWidth == 0 {
		s.Display.ScreenWidth = def.Display.ScreenWidth
	}
	if s.Display.ScreenHeight == 0 {
		s.Display.ScreenHeight = def.Display.ScreenHeight
	}
	if s.Display.Scale == 0 {
		s.Display.Scale = def.Display.Scale
	}
	if s.Display.TPS == 0 {
		s.Display.TPS = def.Display.TPS
	}
	if s.Audio.Volume == nil {
		s.Audio.Volume = def.Audio.Volume
	}
	if s.Levels.Dir == "" {
		s.Levels.Dir = def.Levels.Dir
	}
	if s.Levels.Start < 0 {
		s.Levels.Start = 0
	}
}

// LevelConfig is the root config for a level JSON file
type LevelConfig struct {
	Tilemap  map[string]TileConfig `json:"tilemap"`
	TileSize int                   `json:"tile_size"`
	Offgrid  []TileConfig          `json:"offgrid"`
}

// TileConfig is a placed tile. Pos is in tiles for the grid, pixels for offgrid.
type TileConfig struct {
	Type    string     `json:"type"`
	Variant int        `json:"variant"`
	Pos     [2]float64 `json:"pos"`
}
