package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/wricardo/worm-game/game/engine"
)

var (
	ErrConfigNotFound = errors.New("configuration not found")
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrInvalidName    = errors.New("invalid profile name")
)

// DefaultName is the profile used when none is requested
const DefaultName = "classic"

const profileExt = ".json"

// ConfigInfo describes a settings profile for listings
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Rows        int    `json:"rows"`
	Cols        int    `json:"cols"`
	TickMillis  int    `json:"tick_ms"`
	TailIsFree  bool   `json:"tail_is_free"`
}

func newConfigInfo(id string, p *engine.GameConfig) *ConfigInfo {
	return &ConfigInfo{
		Filename:    id + profileExt,
		ConfigID:    id,
		Name:        p.Name,
		Description: p.Description,
		Rows:        p.Rows,
		Cols:        p.Cols,
		TickMillis:  p.TickMillis,
		TailIsFree:  p.TailIsFree,
	}
}

// Manager keeps the settings profiles of one directory. Profiles are read
// lazily and cached by id, the file name without its extension.
type Manager struct {
	dir string

	mu       sync.RWMutex
	profiles map[string]*engine.GameConfig
	fallback *engine.GameConfig
}

// NewManager opens a profile directory and picks its default profile
func NewManager(dir string) (*Manager, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("config directory does not exist: %s", dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("config path is not a directory: %s", dir)
	}

	m := &Manager{
		dir:      dir,
		profiles: make(map[string]*engine.GameConfig),
	}
	m.pickDefault()
	return m, nil
}

// Dir returns the directory the manager reads from
func (m *Manager) Dir() string {
	return m.dir
}

// profileID strips the extension and rejects names that would leave the
// profile directory
func profileID(name string) (string, error) {
	id := strings.TrimSuffix(name, profileExt)
	if id == "" || id == "." || id == ".." || filepath.Base(id) != id || strings.ContainsAny(id, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return id, nil
}

func (m *Manager) path(id string) string {
	return filepath.Join(m.dir, id+profileExt)
}

func (m *Manager) cached(id string) (*engine.GameConfig, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.profiles[id]
	return p, ok
}

func (m *Manager) store(id string, p *engine.GameConfig) {
	m.mu.Lock()
	m.profiles[id] = p
	m.mu.Unlock()
}

// LoadConfig returns a profile by id. The ".json" suffix is optional.
func (m *Manager) LoadConfig(name string) (*engine.GameConfig, error) {
	id, err := profileID(name)
	if err != nil {
		return nil, err
	}
	if p, ok := m.cached(id); ok {
		return p, nil
	}

	p, err := m.read(id)
	if err != nil {
		return nil, err
	}

	// Another caller may have stored the same profile meanwhile; keep the
	// first so callers share one pointer.
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.profiles[id]; ok {
		return existing, nil
	}
	m.profiles[id] = p
	return p, nil
}

func (m *Manager) read(id string) (*engine.GameConfig, error) {
	data, err := os.ReadFile(m.path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading profile %s: %w", id, err)
	}

	p := new(engine.GameConfig)
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", id, err)
	}
	if err := m.ValidateConfig(p); err != nil {
		return nil, err
	}
	return p, nil
}

// ListConfigs describes every loadable profile in the directory, ordered
// by file name. Files that fail to load are left out.
func (m *Manager) ListConfigs() ([]*ConfigInfo, error) {
	if _, err := os.Stat(m.dir); err != nil {
		return nil, fmt.Errorf("reading config directory: %w", err)
	}
	matches, err := filepath.Glob(filepath.Join(m.dir, "*"+profileExt))
	if err != nil {
		return nil, fmt.Errorf("reading config directory: %w", err)
	}
	sort.Strings(matches)

	var infos []*ConfigInfo
	for _, match := range matches {
		if fi, err := os.Stat(match); err != nil || fi.IsDir() {
			continue
		}
		id := strings.TrimSuffix(filepath.Base(match), profileExt)
		p, err := m.LoadConfig(id)
		if err != nil {
			continue
		}
		infos = append(infos, newConfigInfo(id, p))
	}
	return infos, nil
}

// GetDefault returns the default profile. It is never nil.
func (m *Manager) GetDefault() *engine.GameConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.fallback
}

// SetDefault makes the named profile the default. On error the current
// default is kept.
func (m *Manager) SetDefault(name string) error {
	p, err := m.LoadConfig(name)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.fallback = p
	m.mu.Unlock()
	return nil
}

// Resolve returns the named profile, or the default for an empty name
func (m *Manager) Resolve(name string) (*engine.GameConfig, error) {
	if name == "" {
		return m.GetDefault(), nil
	}
	return m.LoadConfig(name)
}

// ReloadConfig reads one profile from disk again, replacing the cached copy
func (m *Manager) ReloadConfig(name string) error {
	id, err := profileID(name)
	if err != nil {
		return err
	}
	p, err := m.read(id)
	if err != nil {
		return err
	}
	m.store(id, p)
	return nil
}

// ValidateConfig checks a profile without storing it
func (m *Manager) ValidateConfig(p *engine.GameConfig) error {
	if err := engine.ValidateGameConfig(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// RefreshCache forgets every cached profile and picks the default again
func (m *Manager) RefreshCache() error {
	m.mu.Lock()
	m.profiles = make(map[string]*engine.GameConfig)
	m.mu.Unlock()

	m.pickDefault()
	return nil
}

// pickDefault prefers classic.json, then the first loadable profile by
// file name, then the built-in classic settings.
func (m *Manager) pickDefault() {
	p, err := m.LoadConfig(DefaultName)
	if err != nil {
		p = engine.DefaultConfig()
		if infos, err := m.ListConfigs(); err == nil && len(infos) > 0 {
			if first, err := m.LoadConfig(infos[0].ConfigID); err == nil {
				p = first
			}
		}
	}

	m.mu.Lock()
	m.fallback = p
	m.mu.Unlock()
}

// SaveConfig validates a profile, writes it to the directory and caches it
func (m *Manager) SaveConfig(name string, p *engine.GameConfig) error {
	id, err := profileID(name)
	if err != nil {
		return err
	}
	if err := m.ValidateConfig(p); err != nil {
		return err
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	if err := os.WriteFile(m.path(id), data, 0644); err != nil {
		return fmt.Errorf("writing profile %s: %w", id, err)
	}

	m.store(id, p)
	return nil
}
