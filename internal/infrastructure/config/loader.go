package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// SettingsFile is the settings file name inside the config root
const SettingsFile = "settings.yaml"

// Loader loads game configuration using the fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the path the loader was created with
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadSettings loads settings.yaml, falling back to defaults for unset fields
func (l *Loader) LoadSettings() (*Settings, error) {
	data, err := fs.ReadFile(l.fsys, SettingsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", SettingsFile, err)
	}

	return ParseSettings(data)
}

// ParseSettings decodes settings YAML over DefaultSettings.
// Volume entries merge with the default volume table.
func ParseSettings(data []byte) (*Settings, error) {
	cfg := DefaultSettings()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", SettingsFile, err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// LevelCount returns the number of level files in dir
func (l *Loader) LevelCount(dir string) (int, error) {
	entries, err := fs.ReadDir(l.fsys, dir)
	if err != nil {
		return 0, fmt.Errorf("failed to list levels in %s: %w", dir, err)
	}

	n := 0
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			n++
		}
	}
	return n, nil
}

// LoadLevel loads <dir>/<id>.json
func (l *Loader) LoadLevel(dir string, id int) (*LevelConfig, error) {
	p := path.Join(dir, fmt.Sprintf("%d.json", id))
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %d: %w", id, err)
	}

	var cfg LevelConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level %d: %w", id, err)
	}

	return &cfg, nil
}

// LoadLevels loads every level in dir, ordered by id
func (l *Loader) LoadLevels(dir string) ([]*LevelConfig, error) {
	n, err := l.LevelCount(dir)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("failed to load levels: none in %s", dir)
	}

	levels := make([]*LevelConfig, 0, n)
	for id := 0; id < n; id++ {
		cfg, err := l.LoadLevel(dir, id)
		if err != nil {
			return nil, err
		}
		levels = append(levels, cfg)
	}
	return levels, nil
}
