package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/wricardo/worm-game/game/engine"
)

func createValidConfig() *engine.GameConfig {
	config := engine.DefaultConfig()
	config.Name = "Test Config"
	config.Description = "Test configuration"
	return config
}

func writeConfigFile(t *testing.T, dir, name string, config *engine.GameConfig) {
	t.Helper()
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal config: %v", err)
	}

	filename := name
	if filepath.Ext(filename) == "" {
		filename = name + ".json"
	}

	if err := os.WriteFile(filepath.Join(dir, filename), data, 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
}

func newTestManager(t *testing.T, dir string) *Manager {
	t.Helper()
	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}
	return manager
}

func TestNewManager(t *testing.T) {
	t.Run("valid directory", func(t *testing.T) {
		dir := t.TempDir()
		classic := createValidConfig()
		classic.Name = "Classic"
		writeConfigFile(t, dir, "classic", classic)

		manager := newTestManager(t, dir)
		if manager.GetDefault().Name != "Classic" {
			t.Errorf("Expected classic.json as default, got %q", manager.GetDefault().Name)
		}
		if manager.Dir() != dir {
			t.Errorf("Expected dir %q, got %q", dir, manager.Dir())
		}
	})

	t.Run("non-existent directory", func(t *testing.T) {
		if _, err := NewManager("/non/existent/path"); err == nil {
			t.Error("Expected error for non-existent directory")
		}
	})

	t.Run("empty directory", func(t *testing.T) {
		manager := newTestManager(t, t.TempDir())

		defaultConfig := manager.GetDefault()
		if defaultConfig == nil {
			t.Fatal("Expected default config to be available")
		}
		if defaultConfig.Name != engine.DefaultConfig().Name {
			t.Errorf("Expected built-in default, got %q", defaultConfig.Name)
		}
	})

	t.Run("first valid profile without classic", func(t *testing.T) {
		dir := t.TempDir()
		os.WriteFile(filepath.Join(dir, "a_broken.json"), []byte(`{"name": ""}`), 0644)
		fast := createValidConfig()
		fast.Name = "Fast"
		writeConfigFile(t, dir, "fast", fast)
		slow := createValidConfig()
		slow.Name = "Slow"
		writeConfigFile(t, dir, "slow", slow)

		manager := newTestManager(t, dir)
		if manager.GetDefault().Name != "Fast" {
			t.Errorf("Expected first valid profile as default, got %q", manager.GetDefault().Name)
		}
	})
}

func TestManager_LoadConfig(t *testing.T) {
	dir := t.TempDir()

	writeConfigFile(t, dir, "classic", createValidConfig())

	relaxed := createValidConfig()
	relaxed.Name = "Relaxed"
	relaxed.TickMillis = 150
	writeConfigFile(t, dir, "relaxed", relaxed)

	manager := newTestManager(t, dir)

	t.Run("load existing config", func(t *testing.T) {
		config, err := manager.LoadConfig("relaxed")
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if config.Name != "Relaxed" {
			t.Errorf("Expected config name 'Relaxed', got '%s'", config.Name)
		}
		if config.TickMillis != 150 {
			t.Errorf("Expected tick 150, got %d", config.TickMillis)
		}
	})

	t.Run("load with .json extension", func(t *testing.T) {
		config, err := manager.LoadConfig("relaxed.json")
		if err != nil {
			t.Fatalf("Failed to load config with extension: %v", err)
		}
		if config.Name != "Relaxed" {
			t.Errorf("Expected config name 'Relaxed', got '%s'", config.Name)
		}
	})

	t.Run("load from cache", func(t *testing.T) {
		config1, _ := manager.LoadConfig("relaxed")
		config2, err := manager.LoadConfig("relaxed.json")
		if err != nil {
			t.Fatalf("Failed to load config from cache: %v", err)
		}
		if config1 != config2 {
			t.Error("Expected config to be loaded from cache")
		}
	})

	t.Run("load non-existent config", func(t *testing.T) {
		if _, err := manager.LoadConfig("non-existent"); err != ErrConfigNotFound {
			t.Errorf("Expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("load invalid config", func(t *testing.T) {
		invalid := createValidConfig()
		invalid.Rows = 10
		writeConfigFile(t, dir, "invalid", invalid)

		_, err := manager.LoadConfig("invalid")
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("load malformed JSON", func(t *testing.T) {
		os.WriteFile(filepath.Join(dir, "malformed.json"), []byte(`{"name": "Malformed", invalid json}`), 0644)

		if _, err := manager.LoadConfig("malformed"); err == nil {
			t.Error("Expected error for malformed JSON")
		}
	})
}

func TestManager_Resolve(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "classic", createValidConfig())
	strict := createValidConfig()
	strict.Name = "Strict"
	strict.TailIsFree = false
	writeConfigFile(t, dir, "strict", strict)

	manager := newTestManager(t, dir)

	config, err := manager.Resolve("")
	if err != nil || config != manager.GetDefault() {
		t.Errorf("Expected default for empty name, got %v (%v)", config, err)
	}

	config, err = manager.Resolve("strict")
	if err != nil {
		t.Fatalf("Failed to resolve strict: %v", err)
	}
	if config.TailIsFree {
		t.Error("Expected strict profile to block the tail")
	}
}

func TestManager_ListConfigs(t *testing.T) {
	dir := t.TempDir()

	profiles := []struct {
		filename string
		name     string
	}{
		{"classic", "Classic"},
		{"relaxed", "Relaxed"},
		{"strict", "Strict"},
		{"wide", "Wide"},
	}

	for _, p := range profiles {
		config := createValidConfig()
		config.Name = p.name
		writeConfigFile(t, dir, p.filename, config)
	}

	// Ignored entries
	os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("readme"), 0644)
	os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`{`), 0644)
	os.Mkdir(filepath.Join(dir, "nested.json"), 0755)

	manager := newTestManager(t, dir)

	configList, err := manager.ListConfigs()
	if err != nil {
		t.Fatalf("Failed to list configs: %v", err)
	}
	if len(configList) != len(profiles) {
		t.Fatalf("Expected %d configs, got %d", len(profiles), len(configList))
	}

	for i, info := range configList {
		if info.ConfigID != profiles[i].filename || info.Name != profiles[i].name {
			t.Errorf("Entry %d: expected %s/%s, got %s/%s", i, profiles[i].filename, profiles[i].name, info.ConfigID, info.Name)
		}
		if info.Filename != profiles[i].filename+".json" {
			t.Errorf("Entry %d: expected filename %s.json, got %s", i, profiles[i].filename, info.Filename)
		}
		if info.Rows != engine.MinRows || info.Cols != engine.MinCols {
			t.Errorf("Entry %d: expected %dx%d, got %dx%d", i, engine.MinRows, engine.MinCols, info.Rows, info.Cols)
		}
	}
}

func TestManager_SetDefault(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "classic", createValidConfig())
	relaxed := createValidConfig()
	relaxed.Name = "Relaxed"
	writeConfigFile(t, dir, "relaxed", relaxed)

	manager := newTestManager(t, dir)

	if err := manager.SetDefault("relaxed"); err != nil {
		t.Fatalf("SetDefault failed: %v", err)
	}
	if manager.GetDefault().Name != "Relaxed" {
		t.Errorf("Expected Relaxed as default, got %q", manager.GetDefault().Name)
	}

	if err := manager.SetDefault("missing"); err != ErrConfigNotFound {
		t.Errorf("Expected ErrConfigNotFound, got %v", err)
	}
	if manager.GetDefault().Name != "Relaxed" {
		t.Error("Default should not change after a failed SetDefault")
	}
}

func TestManager_ReloadConfig(t *testing.T) {
	dir := t.TempDir()

	config := createValidConfig()
	config.Name = "Changeable"
	config.TickMillis = 100
	writeConfigFile(t, dir, "classic", config)
	writeConfigFile(t, dir, "changeable", config)

	manager := newTestManager(t, dir)

	loaded, _ := manager.LoadConfig("changeable")
	if loaded.TickMillis != 100 {
		t.Errorf("Expected initial tick 100, got %d", loaded.TickMillis)
	}

	config.TickMillis = 200
	writeConfigFile(t, dir, "changeable", config)

	if err := manager.ReloadConfig("changeable"); err != nil {
		t.Fatalf("Failed to reload config: %v", err)
	}

	reloaded, _ := manager.LoadConfig("changeable")
	if reloaded.TickMillis != 200 {
		t.Errorf("Expected reloaded tick 200, got %d", reloaded.TickMillis)
	}
}

func TestManager_RefreshCache(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "classic", createValidConfig())

	manager := newTestManager(t, dir)
	manager.LoadConfig("classic")

	updated := createValidConfig()
	updated.Name = "Updated"
	writeConfigFile(t, dir, "classic", updated)

	if err := manager.RefreshCache(); err != nil {
		t.Fatalf("RefreshCache failed: %v", err)
	}
	if manager.GetDefault().Name != "Updated" {
		t.Errorf("Expected refreshed default, got %q", manager.GetDefault().Name)
	}
}

func TestManager_ValidateConfig(t *testing.T) {
	manager := newTestManager(t, t.TempDir())

	if err := manager.ValidateConfig(createValidConfig()); err != nil {
		t.Errorf("Expected valid config to pass validation: %v", err)
	}

	config := createValidConfig()
	config.Name = ""
	if err := manager.ValidateConfig(config); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestManager_SaveConfig(t *testing.T) {
	dir := t.TempDir()
	manager := newTestManager(t, dir)

	config := createValidConfig()
	config.Name = "Saved"
	if err := manager.SaveConfig("saved.json", config); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := engine.LoadGameConfig(filepath.Join(dir, "saved.json"))
	if err != nil {
		t.Fatalf("Saved file does not load: %v", err)
	}
	if loaded.Name != "Saved" {
		t.Errorf("Expected name Saved, got %q", loaded.Name)
	}

	cached, err := manager.LoadConfig("saved")
	if err != nil || cached != config {
		t.Error("Expected saved config to be cached")
	}

	invalid := createValidConfig()
	invalid.TickMillis = 0
	if err := manager.SaveConfig("invalid", invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "invalid.json")); !os.IsNotExist(err) {
		t.Error("Invalid config must not be written")
	}
}

func TestManager_ConcurrentAccess(t *testing.T) {
	dir := t.TempDir()

	for i := 1; i <= 5; i++ {
		config := createValidConfig()
		config.Name = fmt.Sprintf("Config%d", i)
		writeConfigFile(t, dir, fmt.Sprintf("config%d", i), config)
	}

	manager := newTestManager(t, dir)

	var wg sync.WaitGroup
	errs := make(chan error, 50)

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			if _, err := manager.LoadConfig(fmt.Sprintf("config%d", id%5+1)); err != nil {
				errs <- err
			}
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("Unexpected error during concurrent access: %v", err)
	}

	if manager.Count() < 5 {
		t.Errorf("Expected at least 5 configs in cache, got %d", manager.Count())
	}
}

// Count returns the number of cached profiles
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.profiles)
}

func TestManager_BundledProfiles(t *testing.T) {
	manager := newTestManager(t, filepath.Join("..", "..", "configs"))

	infos, err := manager.ListConfigs()
	if err != nil {
		t.Fatalf("Failed to list configs: %v", err)
	}
	want := []string{"classic", "relaxed", "strict"}
	if len(infos) != len(want) {
		t.Fatalf("Expected %d bundled profiles, got %d", len(want), len(infos))
	}
	for i, info := range infos {
		if info.ConfigID != want[i] {
			t.Errorf("Entry %d: expected %s, got %s", i, want[i], info.ConfigID)
		}
	}

	// The default must come from classic.json, not the built-in fallback
	classic, err := manager.LoadConfig(DefaultName)
	if err != nil {
		t.Fatalf("Failed to load %s: %v", DefaultName, err)
	}
	if manager.GetDefault() != classic {
		t.Error("Expected the default to be the cached classic profile")
	}
}

func TestManager_RejectsNamesOutsideDir(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "configs")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	writeConfigFile(t, root, "outside", createValidConfig())

	manager := newTestManager(t, dir)

	names := []string{"../outside", "../outside.json", "sub/profile", `sub\profile`, "..", ".", "", ".json"}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			if _, err := manager.LoadConfig(name); !errors.Is(err, ErrInvalidName) {
				t.Errorf("LoadConfig: expected ErrInvalidName, got %v", err)
			}
			if err := manager.ReloadConfig(name); !errors.Is(err, ErrInvalidName) {
				t.Errorf("ReloadConfig: expected ErrInvalidName, got %v", err)
			}
			if err := manager.SaveConfig(name, createValidConfig()); !errors.Is(err, ErrInvalidName) {
				t.Errorf("SaveConfig: expected ErrInvalidName, got %v", err)
			}
		})
	}

	if _, err := os.Stat(filepath.Join(root, "sub")); !os.IsNotExist(err) {
		t.Error("Nothing may be written outside the config directory")
	}
	if _, err := manager.Resolve("../outside"); !errors.Is(err, ErrInvalidName) {
		t.Errorf("Resolve: expected ErrInvalidName, got %v", err)
	}
}
