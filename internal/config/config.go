package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// UserConfig is the on-disk configuration file.
type UserConfig struct {
	Keybindings KeybindingsConfig `toml:"keybindings"`
	Appearance  AppearanceConfig  `toml:"appearance"`
	Content     ContentConfig     `toml:"content"`
}

// KeybindingsConfig maps action names to the keys bound to them, grouped
// the way the help overlay groups them.
type KeybindingsConfig struct {
	Navigation       map[string][]string `toml:"navigation"`
	WindowManagement map[string][]string `toml:"window_management"`
	System           map[string][]string `toml:"system"`
}

// AppearanceConfig holds render-time settings.
type AppearanceConfig struct {
	BorderStyle       string `toml:"border_style"`
	Theme             string `toml:"theme"`
	HideWindowButtons bool   `toml:"hide_window_buttons"`
	ConstrainDrag     bool   `toml:"constrain_drag"`
}

// ContentConfig points at the portfolio data file.
type ContentConfig struct {
	PortfolioPath string `toml:"portfolio_path"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *UserConfig {
	return &UserConfig{
		Keybindings: KeybindingsConfig{
			Navigation: map[string][]string{
				"cursor_up":    {"k", "up"},
				"cursor_down":  {"j", "down"},
				"cursor_left":  {"h", "left"},
				"cursor_right": {"l", "right"},
				"yank_line":    {"y"},
			},
			WindowManagement: map[string][]string{
				"close_window":    {"esc"},
				"minimize_window": {"m"},
				"restore_all":     {"M"},
				"toggle_maximize": {"f", "F"},
				"next_window":     {"tab"},
				"prev_window":     {"shift+tab"},
			},
			System: map[string][]string{
				"toggle_open": {"o"},
				"toggle_help": {"?"},
				"quit":        {"q", "ctrl+c"},
			},
		},
		Appearance: AppearanceConfig{
			BorderStyle:   "rounded",
			Theme:         "",
			ConstrainDrag: true,
		},
		Content: ContentConfig{},
	}
}

// GetConfigPath returns the path of the user configuration file, creating
// the parent directory if needed.
func GetConfigPath() (string, error) {
	path, err := xdg.ConfigFile("termfolio/config.toml")
	if err != nil {
		return "", fmt.Errorf("could not resolve config path: %w", err)
	}
	return path, nil
}

// LoadUserConfig loads the configuration file, creating it with defaults on
// first run. Missing sections fall back to defaults so user files only need
// to spell out overrides.
func LoadUserConfig() (*UserConfig, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg := DefaultConfig()
		if err := SaveConfig(path, cfg); err != nil {
			return cfg, fmt.Errorf("could not write default config: %w", err)
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}
	mergeDefaults(cfg)
	return cfg, nil
}

// SaveConfig writes cfg to path as TOML.
func SaveConfig(path string, cfg *UserConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create config directory: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("could not marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("could not write config: %w", err)
	}
	return nil
}

// mergeDefaults fills actions the user file left out entirely. A present
// action with an empty list stays empty: that is how users unbind keys.
func mergeDefaults(cfg *UserConfig) {
	def := DefaultConfig()
	fill := func(dst *map[string][]string, src map[string][]string) {
		if *dst == nil {
			*dst = make(map[string][]string)
		}
		for action, keys := range src {
			if _, ok := (*dst)[action]; !ok {
				(*dst)[action] = keys
			}
		}
	}
	fill(&cfg.Keybindings.Navigation, def.Keybindings.Navigation)
	fill(&cfg.Keybindings.WindowManagement, def.Keybindings.WindowManagement)
	fill(&cfg.Keybindings.System, def.Keybindings.System)
}
