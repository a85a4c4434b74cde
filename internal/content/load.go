package content

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Load reads and parses a portfolio TOML file.
func Load(path string) (*Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read portfolio file: %w", err)
	}

	var p Portfolio
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse portfolio file: %w", err)
	}

	applyDisplayDefaults(&p.Display)
	return &p, nil
}

// Default returns the sample portfolio used when no file is configured.
func Default() *Portfolio {
	p := &Portfolio{
		Projects: []Project{
			{
				Title:        "termfolio",
				Description:  "This very terminal. Portfolio as a window manager.",
				RepoURL:      "https://github.com/Gaurav-Gosain/termfolio",
				Technologies: []string{"go", "bubbletea", "lipgloss"},
			},
			{
				Title:       "dotfiles",
				Description: "Reproducible shell, editor, and multiplexer setup.",
				RepoURL:     "https://github.com/Gaurav-Gosain/dotfiles",
			},
		},
		Work: []WorkExperience{
			{
				Title:        "Software Engineer",
				Company:      "Example Corp",
				Duration:     "2023 - present",
				Description:  "Terminal tooling and developer infrastructure.",
				Technologies: []string{"go", "ssh"},
				Link:         "https://example.com",
			},
		},
	}
	applyDisplayDefaults(&p.Display)
	return p
}

func applyDisplayDefaults(d *Display) {
	if d.Header == "" {
		d.Header = "guest@portfolio"
	}
	if d.Path == "" {
		d.Path = "~/portfolio"
	}
	if d.Branch == "" {
		d.Branch = "main"
	}
	if d.Info == "" {
		d.Info = "h/j/k/l to move, yy to select, f to zoom, esc to close"
	}
}

// WriteDefault writes the sample portfolio to path, for first-run setup.
func WriteDefault(path string) error {
	data, err := toml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to marshal default portfolio: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write portfolio file: %w", err)
	}
	return nil
}
