package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Gaurav-Gosain/termfolio/internal/config"
	"github.com/pelletier/go-toml/v2"
)

func readInto(path string, cfg *config.UserConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return toml.Unmarshal(data, cfg)
}

// =============================================================================
// Default Configuration Tests
// =============================================================================

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}

	if cfg.Appearance.BorderStyle == "" {
		t.Error("Expected default border style to be set")
	}

	if !cfg.Appearance.ConstrainDrag {
		t.Error("Expected drag constraint on by default")
	}
}

func TestASCIIBorderStyleButtonGlyphs(t *testing.T) {
	orig := config.BorderStyle
	defer func() { config.BorderStyle = orig }()

	config.BorderStyle = "ascii"

	// Every title-bar glyph must fall back to plain ASCII.
	if got := config.GetWindowButtonClose(); got != " x " {
		t.Errorf("Expected ASCII close glyph, got %q", got)
	}
	if got := config.GetWindowButtonMinimize(); got != " - " {
		t.Errorf("Expected ASCII minimize glyph, got %q", got)
	}
	if got := config.GetWindowButtonMaximize(); got != " o " {
		t.Errorf("Expected ASCII maximize glyph, got %q", got)
	}

	config.BorderStyle = "rounded"
	if got := config.GetWindowButtonMinimize(); got != " — " {
		t.Errorf("Expected em-dash minimize glyph, got %q", got)
	}
}

func TestDefaultKeybindings(t *testing.T) {
	cfg := config.DefaultConfig()

	navigation := cfg.Keybindings.Navigation
	if navigation == nil {
		t.Fatal("Navigation keybindings are nil")
	}

	requiredActions := []string{
		"cursor_up",
		"cursor_down",
		"cursor_left",
		"cursor_right",
		"yank_line",
	}

	for _, action := range requiredActions {
		keys, ok := navigation[action]
		if !ok {
			t.Errorf("Expected %s keybinding to exist", action)
			continue
		}
		if len(keys) == 0 {
			t.Errorf("Expected %s to have at least one key bound", action)
		}
	}

	windowMgmt := cfg.Keybindings.WindowManagement
	for _, action := range []string{"close_window", "minimize_window", "next_window", "prev_window"} {
		if len(windowMgmt[action]) == 0 {
			t.Errorf("Expected %s to have at least one key bound", action)
		}
	}
}

func TestDefaultVimKeys(t *testing.T) {
	cfg := config.DefaultConfig()
	registry := config.NewKeybindRegistry(cfg)

	tests := []struct {
		key    string
		action string
	}{
		{"h", "cursor_left"},
		{"j", "cursor_down"},
		{"k", "cursor_up"},
		{"l", "cursor_right"},
		{"y", "yank_line"},
		{"esc", "close_window"},
	}

	for _, tt := range tests {
		if got := registry.GetAction(tt.key); got != tt.action {
			t.Errorf("GetAction(%q) = %q, want %q", tt.key, got, tt.action)
		}
	}
}

// =============================================================================
// KeybindRegistry Tests
// =============================================================================

func TestKeybindRegistry_GetKeys(t *testing.T) {
	cfg := config.DefaultConfig()
	registry := config.NewKeybindRegistry(cfg)

	keys := registry.GetKeys("cursor_down")
	if len(keys) == 0 {
		t.Error("Expected cursor_down to have keys")
	}
}

func TestKeybindRegistry_GetAction(t *testing.T) {
	cfg := config.DefaultConfig()
	registry := config.NewKeybindRegistry(cfg)

	keys := registry.GetKeys("cursor_down")
	if len(keys) == 0 {
		t.Skip("No keys bound to cursor_down")
	}

	action := registry.GetAction(keys[0])
	if action != "cursor_down" {
		t.Errorf("Expected action 'cursor_down', got %q", action)
	}
}

func TestKeybindRegistry_CaseSensitiveFirst(t *testing.T) {
	cfg := config.DefaultConfig()
	registry := config.NewKeybindRegistry(cfg)

	// m and M carry different actions; the exact match must win.
	if got := registry.GetAction("m"); got != "minimize_window" {
		t.Errorf("GetAction(m) = %q, want minimize_window", got)
	}
	if got := registry.GetAction("M"); got != "restore_all" {
		t.Errorf("GetAction(M) = %q, want restore_all", got)
	}

	// Unknown uppercase keys fall back to the lowercase binding.
	if got := registry.GetAction("J"); got != "cursor_down" {
		t.Errorf("GetAction(J) = %q, want cursor_down", got)
	}
}

func TestKeybindRegistry_GetKeysForDisplay(t *testing.T) {
	cfg := config.DefaultConfig()
	registry := config.NewKeybindRegistry(cfg)

	display := registry.GetKeysForDisplay("cursor_down")
	if display == "" {
		t.Error("Expected display string for cursor_down")
	}
}

func TestKeybindRegistry_UnknownAction(t *testing.T) {
	cfg := config.DefaultConfig()
	registry := config.NewKeybindRegistry(cfg)

	keys := registry.GetKeys("nonexistent_action")
	if len(keys) != 0 {
		t.Errorf("Expected empty keys for nonexistent action, got %v", keys)
	}
}

func TestKeybindRegistry_UnknownKey(t *testing.T) {
	cfg := config.DefaultConfig()
	registry := config.NewKeybindRegistry(cfg)

	action := registry.GetAction("ctrl+alt+delete")
	if action != "" {
		t.Errorf("Expected empty action for unbound key, got %q", action)
	}
}

func TestKeybindRegistry_CustomBinding(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Keybindings.Navigation["cursor_down"] = []string{"n"}
	registry := config.NewKeybindRegistry(cfg)

	if got := registry.GetAction("n"); got != "cursor_down" {
		t.Errorf("GetAction(n) = %q, want cursor_down", got)
	}
	keys := registry.GetKeys("cursor_down")
	if len(keys) != 1 || keys[0] != "n" {
		t.Errorf("GetKeys(cursor_down) = %v, want [n]", keys)
	}
}

// =============================================================================
// Save / Load Tests
// =============================================================================

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := config.DefaultConfig()
	cfg.Appearance.Theme = "dracula"
	cfg.Content.PortfolioPath = "/tmp/portfolio.toml"

	if err := config.SaveConfig(path, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	// SaveConfig creates parent directories; the file must exist and parse.
	loaded := config.DefaultConfig()
	if err := readInto(path, loaded); err != nil {
		t.Fatalf("could not read config back: %v", err)
	}
	if loaded.Appearance.Theme != "dracula" {
		t.Errorf("theme = %q, want dracula", loaded.Appearance.Theme)
	}
	if loaded.Content.PortfolioPath != "/tmp/portfolio.toml" {
		t.Errorf("portfolio path = %q", loaded.Content.PortfolioPath)
	}
}

// =============================================================================
// Help Section Tests
// =============================================================================

func TestGetKeybindings(t *testing.T) {
	sections := config.GetKeybindings(nil)

	if len(sections) == 0 {
		t.Fatal("Expected help sections")
	}

	titles := map[string]bool{}
	for _, s := range sections {
		titles[s.Title] = true
		if s.Title != "MOUSE" && len(s.Bindings) == 0 {
			t.Errorf("Section %s has no bindings", s.Title)
		}
	}

	for _, want := range []string{"NAVIGATION", "WINDOWS", "SYSTEM", "MOUSE"} {
		if !titles[want] {
			t.Errorf("Missing help section %s", want)
		}
	}
}

func TestGetKeybindingsSkipsUnbound(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Keybindings.System["toggle_help"] = []string{}
	registry := config.NewKeybindRegistry(cfg)

	sections := config.GetKeybindings(registry)
	for _, s := range sections {
		for _, b := range s.Bindings {
			if b.Description == config.ActionDescriptions["toggle_help"] {
				t.Error("Expected unbound toggle_help to be skipped in help")
			}
		}
	}
}
