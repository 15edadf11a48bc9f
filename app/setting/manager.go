package setting

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/pitwall-app/pitwall/app/jsonfile"
)

// Manager owns the in-memory category dictionaries and their file placement:
// config.json in the config directory, the active preset and the shared style
// files in the presets directory. All mutation goes through the manager's
// lock; the engine pulls lock-guarded deep copies at write time, so a save
// always captures whatever the state is at flush, not at request.
type Manager struct {
	engine    *Engine
	configDir string
	presetDir string
	debounce  time.Duration

	mu     sync.RWMutex
	data   map[Category]map[string]any
	preset string
}

// NewManager makes a Manager persisting through engine. The debounce is the
// default delay applied by Update; zero picks DefaultDebounce.
func NewManager(engine *Engine, configDir, presetDir string, debounce time.Duration) *Manager {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Manager{
		engine:    engine,
		configDir: configDir,
		presetDir: presetDir,
		debounce:  debounce,
		data:      map[Category]map[string]any{},
	}
}

// Load reads every category from disk and registers it with the engine.
// The preset argument picks the active preset file; empty falls back to the
// last used one recorded in config, or "default". Load is also the preset
// switch: re-registering the setting category changes its target file.
func (m *Manager) Load(preset string) error {
	for _, dir := range []string{m.configDir, m.presetDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:gosec // user-visible data directory
			return fmt.Errorf("prepare %s: %w", dir, err)
		}
	}

	m.mu.Lock()

	cfg := jsonfile.LoadSetting(Config.FileName(""), m.configDir, DefaultConfig())
	m.data[Config] = cfg

	preset = strings.TrimSuffix(strings.TrimSpace(preset), ".json")
	if preset == "" {
		preset = lastPreset(cfg)
	}
	if preset == "" {
		preset = "default"
	}
	m.preset = preset

	m.data[Setting] = jsonfile.LoadSetting(Setting.FileName(preset), m.presetDir, DefaultSetting())
	for _, cat := range All() {
		if cat.IsStyle() {
			m.data[cat] = jsonfile.LoadStyle(cat.FileName(""), m.presetDir, defaultsFor(cat))
		}
	}

	for _, cat := range All() {
		if err := m.engine.Register(cat, cat.FileName(preset), m.dirFor(cat), m.snapshotFunc(cat)); err != nil {
			m.mu.Unlock()
			return fmt.Errorf("register %s: %w", cat, err)
		}
	}

	changed := setLastPreset(cfg, preset)
	m.mu.Unlock()

	if changed {
		m.engine.Save(Config, m.debounce)
	}
	log.Printf("[INFO] preset %q active", preset)
	return nil
}

// ActivePreset returns the name of the loaded preset.
func (m *Manager) ActivePreset() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.preset
}

// Get returns a deep copy of the category state.
func (m *Manager) Get(cat Category) (map[string]any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.data[cat]
	if !ok {
		return nil, fmt.Errorf("category %q not loaded", cat)
	}
	return jsonfile.Clone(d), nil
}

// Update merges patch into the category state and queues a debounced save.
// Merge follows JSON merge-patch rules: nested maps merge recursively, any
// other value replaces, an explicit null removes the key.
func (m *Manager) Update(cat Category, patch map[string]any) error {
	m.mu.Lock()
	d, ok := m.data[cat]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("category %q not loaded", cat)
	}
	merge(d, patch)
	m.mu.Unlock()

	m.engine.Save(cat, m.debounce)
	return nil
}

// SaveAll queues a save for every loaded category in canonical order.
func (m *Manager) SaveAll(debounce time.Duration) {
	m.mu.RLock()
	loaded := make([]Category, 0, len(m.data))
	for _, cat := range All() {
		if _, ok := m.data[cat]; ok {
			loaded = append(loaded, cat)
		}
	}
	m.mu.RUnlock()

	for _, cat := range loaded {
		m.engine.Save(cat, debounce)
	}
}

// PrimaryPreset returns the preset pinned to the given simulator, if any.
func (m *Manager) PrimaryPreset(sim string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cfg, ok := m.data[Config]
	if !ok {
		return ""
	}
	pp, ok := cfg["primary_preset"].(map[string]any)
	if !ok {
		return ""
	}
	name, _ := pp[sim].(string)
	return name
}

// SetPrimaryPreset pins a preset to a simulator and queues a config save.
// An empty name unpins.
func (m *Manager) SetPrimaryPreset(sim, name string) error {
	if sim == "" {
		return fmt.Errorf("simulator id required")
	}
	m.mu.Lock()
	cfg, ok := m.data[Config]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("category %q not loaded", Config)
	}
	pp, ok := cfg["primary_preset"].(map[string]any)
	if !ok {
		pp = map[string]any{}
		cfg["primary_preset"] = pp
	}
	pp[sim] = strings.TrimSuffix(name, ".json")
	m.mu.Unlock()

	m.engine.Save(Config, m.debounce)
	return nil
}

// snapshotFunc gives the engine a source that deep-copies the category state
// under the manager lock at write time.
func (m *Manager) snapshotFunc(cat Category) func() map[string]any {
	return func() map[string]any {
		m.mu.RLock()
		defer m.mu.RUnlock()
		return jsonfile.Clone(m.data[cat])
	}
}

func (m *Manager) dirFor(cat Category) string {
	if cat == Config {
		return m.configDir
	}
	return m.presetDir
}

// merge applies patch onto dst, JSON merge-patch style.
func merge(dst, patch map[string]any) {
	for k, v := range patch {
		if v == nil {
			delete(dst, k)
			continue
		}
		pv, pok := v.(map[string]any)
		dv, dok := dst[k].(map[string]any)
		if pok && dok {
			merge(dv, pv)
			continue
		}
		dst[k] = v
	}
}

func lastPreset(cfg map[string]any) string {
	app, ok := cfg["application"].(map[string]any)
	if !ok {
		return ""
	}
	s, _ := app["last_preset"].(string)
	return strings.TrimSuffix(s, ".json")
}

// setLastPreset records the preset in config, reporting whether it changed.
func setLastPreset(cfg map[string]any, preset string) bool {
	app, ok := cfg["application"].(map[string]any)
	if !ok {
		app = map[string]any{}
		cfg["application"] = app
	}
	if cur, _ := app["last_preset"].(string); cur == preset {
		return false
	}
	app["last_preset"] = preset
	return true
}
