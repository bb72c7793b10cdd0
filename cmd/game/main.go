// Command game runs the encounter in an ebiten window, or headless
// against a recorded replay.
package main

import (
	"flag"
	"io/fs"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/hellfall/internal/application/encounter"
	"github.com/younwookim/hellfall/internal/application/game"
	"github.com/younwookim/hellfall/internal/application/scene/playing"
	"github.com/younwookim/hellfall/internal/infrastructure/audio"
	"github.com/younwookim/hellfall/internal/infrastructure/config"
)

// newLoader reads configs from dir, or from the embedded set when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func main() {
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Run a recorded replay headless and print a summary")
	configFlag := flag.String("config", "", "Config directory (default: embedded configs)")
	watchFlag := flag.Bool("watch", false, "Reload settings.yaml on change (requires -config)")
	levelFlag := flag.Int("level", -1, "Start level (default: from settings)")
	seedFlag := flag.Int64("seed", 0, "RNG seed (default: time-based)")
	flag.Parse()

	loader, err := newLoader(*configFlag)
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	settings, err := loader.LoadSettings()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	levels, err := loader.LoadLevels(settings.Levels.Dir)
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	if *replayFlag != "" {
		summary, err := runReplay(*replayFlag, levels)
		if err != nil {
			log.Fatalf("Failed to run replay: %v", err)
		}
		log.Print(summary)
		return
	}

	cues := audio.NewPlayer(settings.Audio)
	if settings.Audio.Enabled {
		if err := cues.Initialize(); err != nil {
			log.Printf("Audio disabled: %v", err)
		}
	}
	defer cues.Close()

	if *watchFlag {
		if *configFlag == "" {
			log.Printf("-watch needs -config; embedded settings cannot change")
		} else {
			stop, err := watchSettings(loader, *configFlag, cues)
			if err != nil {
				log.Fatalf("Failed to watch settings: %v", err)
			}
			defer stop()
		}
	}

	start := settings.Levels.Start
	if *levelFlag >= 0 {
		start = *levelFlag
	}
	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	enc, err := encounter.New(levels, start, cues, rand.New(rand.NewSource(seed)))
	if err != nil {
		log.Fatalf("Failed to start encounter: %v", err)
	}
	display := settings.Display
	g := game.New(playing.New(enc, seed, display.ScreenWidth, display.ScreenHeight, *recordFlag), display)

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(settings.Title)
	ebiten.SetTPS(display.TPS)

	err = ebiten.RunGame(g)
	g.Close()
	if err != nil {
		log.Fatal(err)
	}
}
