package config

import (
	"os"
	"path/filepath"
	"testing"

	"Conexoes/pkg/state"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}, wantErr: false},
		{name: "lowercase level", mutate: func(c *Config) { c.LogLevel = "debug" }, wantErr: false},
		{name: "unknown level", mutate: func(c *Config) { c.LogLevel = "TRACE" }, wantErr: true},
		{name: "empty log dir", mutate: func(c *Config) { c.LogDir = "" }, wantErr: true},
		{name: "light theme", mutate: func(c *Config) { c.UI.Theme = "light" }, wantErr: false},
		{name: "unknown theme", mutate: func(c *Config) { c.UI.Theme = "neon" }, wantErr: true},
		{name: "unbounded width", mutate: func(c *Config) { c.UI.MaxWidth = 0 }, wantErr: false},
		{name: "negative width", mutate: func(c *Config) { c.UI.MaxWidth = -1 }, wantErr: true},
		{name: "width too narrow", mutate: func(c *Config) { c.UI.MaxWidth = 10 }, wantErr: true},
		{name: "unknown start screen", mutate: func(c *Config) { c.StartScreen = "settings" }, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestInitialState(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.InitialState(); got != state.Initial() {
		t.Errorf("InitialState() = %+v, want %+v", got, state.Initial())
	}

	cfg.StartScreen = "community"
	if got := cfg.InitialState().Screen; got != state.ScreenCommunity {
		t.Errorf("Screen = %q, want community", got)
	}

	cfg.StartScreen = "nowhere"
	got := cfg.InitialState()
	if got.Screen != state.DefaultScreen {
		t.Errorf("unknown start screen should fall back to %q, got %q", state.DefaultScreen, got.Screen)
	}
	if got.Authenticated {
		t.Error("initial state must not be authenticated")
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := DefaultConfig()
	cfg.StartScreen = "messages"
	cfg.UI.Theme = "light"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, gotPath, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if gotPath != path {
		t.Errorf("path = %q, want %q", gotPath, path)
	}
	if loaded.StartScreen != "messages" || loaded.UI.Theme != "light" {
		t.Errorf("loaded config does not round-trip: %+v", loaded)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Error("expected error for explicit missing config path")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CONEXOES_LOG_LEVEL", "DEBUG")
	t.Setenv("CONEXOES_START_SCREEN", "community")
	t.Setenv("CONEXOES_THEME", "light")
	t.Setenv("CONEXOES_MOUSE", "false")

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.LogLevel != "DEBUG" {
		t.Errorf("LogLevel = %q, want DEBUG", cfg.LogLevel)
	}
	if cfg.StartScreen != "community" {
		t.Errorf("StartScreen = %q, want community", cfg.StartScreen)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("Theme = %q, want light", cfg.UI.Theme)
	}
	if cfg.UI.Mouse {
		t.Error("Mouse should be disabled by env override")
	}
}

func TestLoadDotEnvWhitelist(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "# comment\nCONEXOES_LOG_DIR='/tmp/conexoes-logs'\nPATH=/evil\nnot a pair\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("CONEXOES_LOG_DIR", "")
	pathBefore := os.Getenv("PATH")

	loadDotEnv(path)

	if got := os.Getenv("CONEXOES_LOG_DIR"); got != "/tmp/conexoes-logs" {
		t.Errorf("CONEXOES_LOG_DIR = %q, want /tmp/conexoes-logs", got)
	}
	if os.Getenv("PATH") != pathBefore {
		t.Error("non-whitelisted key must not be set from .env")
	}
}
