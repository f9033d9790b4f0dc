package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yllada/egg-timer/common"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.ShowNotifications {
		t.Error("ShowNotifications should be true by default")
	}
	if !cfg.ShowTray {
		t.Error("ShowTray should be true by default")
	}
	if !cfg.RecordHistory {
		t.Error("RecordHistory should be true by default")
	}
	if cfg.Theme != common.ThemeAuto {
		t.Errorf("Theme = %v, want %v", cfg.Theme, common.ThemeAuto)
	}
	if cfg.DefaultDuration != 0 {
		t.Errorf("DefaultDuration = %v, want 0", cfg.DefaultDuration)
	}
}

func TestLoadFrom_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("LoadFrom() = %+v, want defaults", cfg)
	}
	if !common.FileExists(path) {
		t.Error("LoadFrom() should write the default file")
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	want := &Config{
		ShowNotifications: false,
		ShowTray:          true,
		RecordHistory:     false,
		Theme:             common.ThemeDark,
		DefaultDuration:   300,
	}
	if err := want.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if *got != *want {
		t.Errorf("LoadFrom() = %+v, want %+v", got, want)
	}
}

func TestLoadFrom_Validation(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantTheme    string
		wantDuration int
	}{
		{"unknown theme", "theme: purple\n", common.ThemeAuto, 0},
		{"negative duration", "default_duration: -10\n", common.ThemeAuto, 0},
		{"duration past the dial", "default_duration: 7200\n", common.ThemeAuto, common.DialCapacity},
		{"partial file keeps defaults", "theme: light\n", common.ThemeLight, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}

			cfg, err := LoadFrom(path)
			if err != nil {
				t.Fatalf("LoadFrom() error = %v", err)
			}
			if cfg.Theme != tt.wantTheme {
				t.Errorf("Theme = %v, want %v", cfg.Theme, tt.wantTheme)
			}
			if cfg.DefaultDuration != tt.wantDuration {
				t.Errorf("DefaultDuration = %v, want %v", cfg.DefaultDuration, tt.wantDuration)
			}
			if !cfg.ShowNotifications {
				t.Error("fields missing from the file should keep their defaults")
			}
		})
	}
}

func TestLoadFrom_RejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("auto_reconnect: true\n"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrom(path)
	if !errors.Is(err, common.ErrConfigLoad) {
		t.Errorf("LoadFrom() error = %v, want ErrConfigLoad", err)
	}
}

func TestLoadFrom_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, nil, 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("empty file should yield defaults, got %+v", cfg)
	}
}

func TestPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := Path()
	if err != nil {
		t.Fatalf("Path() error = %v", err)
	}
	want := filepath.Join(home, ".config", common.ConfigDirName, common.ConfigFileName)
	if got != want {
		t.Errorf("Path() = %v, want %v", got, want)
	}
}
