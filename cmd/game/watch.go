package main

import (
	"log"

	"github.com/younwookim/hellfall/internal/infrastructure/audio"
	"github.com/younwookim/hellfall/internal/infrastructure/config"
)

// watchSettings reapplies audio settings whenever settings.yaml changes.
// The returned func stops watching.
func watchSettings(loader *config.Loader, dir string, cues *audio.Player) (func(), error) {
	w, err := config.NewWatcher(nil, dir)
	if err != nil {
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case path, ok := <-w.Events:
				if !ok {
					return
				}
				settings, err := loader.LoadSettings()
				if err != nil {
					log.Printf("Ignoring %s: %v", path, err)
					continue
				}
				cues.SetVolumes(settings.Audio)
				log.Printf("Settings reloaded: %s", path)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("Settings watcher: %v", err)
			}
		}
	}()

	return func() {
		_ = w.Close()
		<-done
	}, nil
}
