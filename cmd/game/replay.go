package main

import (
	"fmt"

	"github.com/younwookim/hellfall/internal/application/replay"
	"github.com/younwookim/hellfall/internal/infrastructure/config"
)

// runReplay plays a recording headless and describes where it ended
func runReplay(path string, levels []*config.LevelConfig) (string, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return "", err
	}

	enc, err := replay.Simulate(*data, levels, nil)
	if err != nil {
		return "", err
	}

	s := enc.State()
	return fmt.Sprintf("Replay %s: %d frames (seed %d), level %d/%d, %s, lives %d, enemies left %d, player at (%.1f, %.1f)",
		path, enc.Ticks(), data.Seed, enc.Level()+1, enc.MaxLevel(), enc.Status(),
		enc.LivesShown(), enc.EnemiesLeft(), s.Player.Pos.X, s.Player.Pos.Y), nil
}
