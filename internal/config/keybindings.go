package config

import "strings"

// ActionDescriptions maps action names to their help text.
var ActionDescriptions = map[string]string{
	"cursor_up":       "Move cursor up",
	"cursor_down":     "Move cursor down",
	"cursor_left":     "Move cursor left",
	"cursor_right":    "Move cursor right",
	"yank_line":       "Select line (press twice)",
	"close_window":    "Close window",
	"minimize_window": "Minimize window",
	"restore_all":     "Restore all minimized",
	"toggle_maximize": "Toggle maximize",
	"next_window":     "Next window",
	"prev_window":     "Previous window",
	"toggle_open":     "Open/close the terminal",
	"toggle_help":     "Toggle help",
	"quit":            "Quit",
}

// KeybindRegistry resolves keys to actions and actions to keys from a
// loaded user configuration.
type KeybindRegistry struct {
	actionToKeys map[string][]string
	keyToAction  map[string]string
}

// NewKeybindRegistry builds a registry from the user configuration.
func NewKeybindRegistry(cfg *UserConfig) *KeybindRegistry {
	r := &KeybindRegistry{
		actionToKeys: make(map[string][]string),
		keyToAction:  make(map[string]string),
	}
	r.addSection(cfg.Keybindings.Navigation)
	r.addSection(cfg.Keybindings.WindowManagement)
	r.addSection(cfg.Keybindings.System)
	return r
}

func (r *KeybindRegistry) addSection(section map[string][]string) {
	for action, keys := range section {
		r.actionToKeys[action] = keys
		for _, key := range keys {
			r.keyToAction[key] = action
		}
	}
}

// GetKeys returns the keys bound to an action.
func (r *KeybindRegistry) GetKeys(action string) []string {
	return r.actionToKeys[action]
}

// GetAction returns the action bound to a key, or "" if unbound. Exact
// matches win so M and m can carry different actions; otherwise the key is
// looked up lowercased, which is what makes navigation case-insensitive.
func (r *KeybindRegistry) GetAction(key string) string {
	if action, ok := r.keyToAction[key]; ok {
		return action
	}
	return r.keyToAction[strings.ToLower(key)]
}

// GetKeysForDisplay returns the keys for an action joined for display.
func (r *KeybindRegistry) GetKeysForDisplay(action string) string {
	return strings.Join(r.actionToKeys[action], ", ")
}

// Keybinding is a single help entry.
type Keybinding struct {
	Key         string
	Description string
}

// KeybindingSection groups related help entries.
type KeybindingSection struct {
	Title    string
	Bindings []Keybinding
}

// GetKeybindings returns the help overlay sections, generated from the
// registry when one is supplied.
func GetKeybindings(registry *KeybindRegistry) []KeybindingSection {
	if registry == nil {
		registry = NewKeybindRegistry(DefaultConfig())
	}

	sections := []KeybindingSection{}

	navigation := KeybindingSection{Title: "NAVIGATION"}
	for _, action := range []string{"cursor_up", "cursor_down", "cursor_left", "cursor_right", "yank_line"} {
		addBinding(&navigation, registry, action)
	}
	if len(navigation.Bindings) > 0 {
		sections = append(sections, navigation)
	}

	windows := KeybindingSection{Title: "WINDOWS"}
	for _, action := range []string{
		"close_window", "minimize_window", "restore_all",
		"toggle_maximize", "next_window", "prev_window",
	} {
		addBinding(&windows, registry, action)
	}
	if len(windows.Bindings) > 0 {
		sections = append(sections, windows)
	}

	system := KeybindingSection{Title: "SYSTEM"}
	for _, action := range []string{"toggle_open", "toggle_help", "quit"} {
		addBinding(&system, registry, action)
	}
	if len(system.Bindings) > 0 {
		sections = append(sections, system)
	}

	sections = append(sections, KeybindingSection{
		Title: "MOUSE",
		Bindings: []Keybinding{
			{"Left drag on title bar", "Move window"},
			{"Title bar buttons", "Minimize / maximize / close"},
			{"Dock click", "Restore minimized window"},
		},
	})

	return sections
}

func addBinding(section *KeybindingSection, registry *KeybindRegistry, action string) {
	keys := registry.GetKeysForDisplay(action)
	if keys == "" {
		return
	}
	section.Bindings = append(section.Bindings, Keybinding{
		Key:         keys,
		Description: ActionDescriptions[action],
	})
}
