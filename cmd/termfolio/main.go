// Package main implements termfolio, a portfolio served as a desktop of
// draggable terminal windows. Run it locally or expose it over SSH so
// visitors can browse projects and work history with vi-style keys.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/Gaurav-Gosain/termfolio/internal/app"
	"github.com/Gaurav-Gosain/termfolio/internal/config"
	"github.com/Gaurav-Gosain/termfolio/internal/content"
	"github.com/Gaurav-Gosain/termfolio/internal/input"
	"github.com/Gaurav-Gosain/termfolio/internal/server"
	"github.com/Gaurav-Gosain/termfolio/internal/theme"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	portfolioPath string
	startClosed   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "termfolio",
		Short: "Your portfolio, served as a terminal",
		Long: `termfolio - a portfolio desktop in your terminal

Projects and work experience live in draggable terminal windows.
Navigate lines with h/j/k/l, yank an entry with yy, close with esc,
and reopen from the dock.`,
		Example: `  # Browse the built-in sample portfolio
  termfolio

  # Use your own portfolio file
  termfolio --portfolio ~/portfolio.toml

  # Serve the portfolio over SSH
  termfolio ssh --port 2222

  # Edit configuration
  termfolio config edit

  # List all keybindings
  termfolio keybinds list`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocal()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&portfolioPath, "portfolio", "", "Path to portfolio TOML file (overrides config)")
	rootCmd.Flags().BoolVar(&startClosed, "closed", false, "Start with the terminal closed (dock only)")

	var sshPort, sshHost, sshKeyPath string

	sshCmd := &cobra.Command{
		Use:   "ssh",
		Short: "Serve the portfolio over SSH",
		Long: `Serve the portfolio over SSH

Visitors who ssh in get their own desk. The server generates a host
key automatically if not specified.`,
		Example: `  # Start SSH server on default port
  termfolio ssh

  # Start on custom port with a specific portfolio
  termfolio ssh --port 2222 --portfolio ~/portfolio.toml

  # Specify custom host key
  termfolio ssh --key-path /path/to/host_key`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSSHServer(sshHost, sshPort, sshKeyPath)
		},
	}

	sshCmd.Flags().StringVar(&sshPort, "port", "2222", "SSH server port")
	sshCmd.Flags().StringVar(&sshHost, "host", "localhost", "SSH server host")
	sshCmd.Flags().StringVar(&sshKeyPath, "key-path", "", "Path to SSH host key (auto-generated if not specified)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage termfolio configuration",
		Long:  `Manage the termfolio configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printConfigPath()
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the termfolio configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi, nano, and emacs in that order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return editConfigFile()
		},
	}

	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the termfolio configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return resetConfigToDefaults()
		},
	}

	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd)

	portfolioCmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Manage portfolio content",
	}

	portfolioInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a sample portfolio file to edit",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "portfolio.toml"
			if len(args) > 0 {
				path = args[0]
			}
			return initPortfolioFile(path)
		},
	}

	portfolioCmd.AddCommand(portfolioInitCmd)

	keybindsCmd := &cobra.Command{
		Use:     "keybinds",
		Aliases: []string{"keys", "kb"},
		Short:   "View keybinding configuration",
	}

	keybindsListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all keybindings",
		Long:  `Display all configured keybindings in a formatted table`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listKeybindings()
		},
	}

	keybindsCustomCmd := &cobra.Command{
		Use:   "list-custom",
		Short: "List customized keybindings",
		Long: `Display only keybindings that differ from defaults

Shows a comparison of default and custom keybindings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listCustomKeybindings()
		},
	}

	keybindsCmd.AddCommand(keybindsListCmd, keybindsCustomCmd)

	rootCmd.AddCommand(sshCmd, configCmd, portfolioCmd, keybindsCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}

// filterMouseMotion filters out redundant mouse motion events to reduce CPU
// usage. Motion only matters while a window is being dragged.
func filterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}

	desk, ok := model.(*app.Desk)
	if !ok {
		return msg
	}

	if desk.Dragging {
		return msg
	}

	return nil
}

func runLocal() error {
	// Set up the input handler to break circular dependency
	app.SetInputHandler(input.HandleInput)

	userConfig := loadConfigOrDefault()
	setupAppearance(userConfig)
	registry := config.NewKeybindRegistry(userConfig)

	path := resolvePortfolioPath(userConfig)
	portfolio := loadPortfolioOrDefault(path)

	desk := app.NewDesk(portfolio, app.NewOpenState(!startClosed), registry)

	// Hot-reload the portfolio while the app is running.
	if path != "" {
		watcher, err := content.Watch(path)
		if err != nil {
			log.Warn("Portfolio watching disabled", "err", err)
		} else {
			defer watcher.Close()
			desk.PortfolioPath = path
			desk.ReloadChan = watcher.Changes()
		}
	}

	p := tea.NewProgram(
		desk,
		tea.WithFPS(config.NormalFPS),
		tea.WithFilter(filterMouseMotion),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

func runSSHServer(sshHost, sshPort, sshKeyPath string) error {
	app.SetInputHandler(input.HandleInput)

	userConfig := loadConfigOrDefault()
	setupAppearance(userConfig)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		cancel()
	}()

	err := server.Start(ctx, &server.Config{
		Host:          sshHost,
		Port:          sshPort,
		KeyPath:       sshKeyPath,
		PortfolioPath: resolvePortfolioPath(userConfig),
	})
	if err != nil && err != context.Canceled {
		return fmt.Errorf("SSH server error: %w", err)
	}
	return nil
}

func loadConfigOrDefault() *config.UserConfig {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Warn("Failed to load config, using defaults", "err", err)
		return config.DefaultConfig()
	}
	return userConfig
}

func setupAppearance(cfg *config.UserConfig) {
	if err := theme.Initialize(cfg.Appearance.Theme); err != nil {
		log.Warn("Unknown theme, using terminal colors", "theme", cfg.Appearance.Theme)
	}
	config.ApplyAppearance(cfg.Appearance)
}

// resolvePortfolioPath picks the portfolio file: the --portfolio flag wins,
// then the config file's content.portfolio_path. Empty means sample data.
func resolvePortfolioPath(cfg *config.UserConfig) string {
	if portfolioPath != "" {
		return portfolioPath
	}
	return cfg.Content.PortfolioPath
}

func loadPortfolioOrDefault(path string) *content.Portfolio {
	if path == "" {
		return content.Default()
	}
	p, err := content.Load(path)
	if err != nil {
		log.Warn("Failed to load portfolio, using sample data", "path", path, "err", err)
		return content.Default()
	}
	return p
}

// initPortfolioFile writes the sample portfolio to path for the user to edit.
func initPortfolioFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("refusing to overwrite existing file: %s", path)
	}
	if err := content.WriteDefault(path); err != nil {
		return fmt.Errorf("failed to write portfolio file: %w", err)
	}
	fmt.Printf("Sample portfolio written to %s\n", path)
	fmt.Println("Edit it, then run: termfolio --portfolio " + path)
	return nil
}

// printConfigPath prints the config file path
func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

// editConfigFile opens the config file in $EDITOR
func editConfigFile() error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}

	// Ensure config file exists (create default if needed)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("Config file doesn't exist, creating default at: %s\n", configPath)
		_, err := config.LoadUserConfig()
		if err != nil {
			return fmt.Errorf("could not create config file: %w", err)
		}
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		for _, e := range []string{"vim", "vi", "nano", "emacs"} {
			if _, err := exec.LookPath(e); err == nil {
				editor = e
				break
			}
		}
	}
	if editor == "" {
		return fmt.Errorf("no editor found. Please set $EDITOR environment variable")
	}

	cmd := exec.Command(editor, configPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// resetConfigToDefaults resets the configuration file to default settings
func resetConfigToDefaults() error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}

	// Check if config exists and ask for confirmation
	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Warning: This will overwrite your existing configuration at:\n")
		fmt.Printf("  %s\n\n", configPath)
		fmt.Printf("Are you sure you want to reset to defaults? (yes/no): ")

		var response string
		fmt.Scanln(&response)
		response = strings.ToLower(strings.TrimSpace(response))

		if response != "yes" && response != "y" {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	defaultCfg := config.DefaultConfig()

	var sb strings.Builder
	sb.WriteString("# termfolio Configuration File\n")
	sb.WriteString("# This file allows you to customize keybindings and appearance\n")
	sb.WriteString("# Edit keybindings by modifying the arrays of keys for each action\n")
	sb.WriteString("# Multiple keys can be bound to the same action\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + configPath + "\n")
	sb.WriteString("# Documentation: https://github.com/Gaurav-Gosain/termfolio\n\n")

	data, err := toml.Marshal(defaultCfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	sb.Write(data)

	if err := os.WriteFile(configPath, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Configuration reset to defaults\n")
	fmt.Printf("  Location: %s\n", configPath)
	fmt.Println("\nYou can customize it with: termfolio config edit")
	return nil
}

// listKeybindings prints all configured keybindings in a pretty table
func listKeybindings() error {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		fmt.Fprintln(os.Stderr, "Using default keybindings...")
		userConfig = config.DefaultConfig()
	}

	registry := config.NewKeybindRegistry(userConfig)

	printKeybindingsTable(registry)
	return nil
}

// printKeybindingsTable prints keybindings in a pretty table format
func printKeybindingsTable(registry *config.KeybindRegistry) {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		Padding(0, 1)

	cellStyle := lipgloss.NewStyle().
		Padding(0, 1)

	sections := []struct {
		Title   string
		Actions []string
	}{
		{
			Title: "Navigation",
			Actions: []string{
				"cursor_up", "cursor_down", "cursor_left", "cursor_right",
				"yank_line",
			},
		},
		{
			Title: "Windows",
			Actions: []string{
				"close_window", "minimize_window", "restore_all",
				"toggle_maximize", "next_window", "prev_window",
			},
		},
		{
			Title: "System",
			Actions: []string{
				"toggle_open", "toggle_help", "quit",
			},
		},
	}

	fmt.Println()
	fmt.Println(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).Render("termfolio Keybindings"))
	fmt.Println()

	for _, section := range sections {
		rows := [][]string{}

		for _, action := range section.Actions {
			keys := registry.GetKeys(action)
			if len(keys) == 0 {
				continue // Skip unbound actions
			}

			desc := config.ActionDescriptions[action]
			if desc == "" {
				desc = action
			}

			keysStr := strings.Join(keys, ", ")
			rows = append(rows, []string{keysStr, desc})
		}

		if len(rows) == 0 {
			continue
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
			Headers("Keys", "Action").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == -1 {
					return headerStyle
				}
				return cellStyle
			})

		fmt.Println(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")).Render(section.Title))
		fmt.Println(t.Render())
		fmt.Println()
	}

	note := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Italic(true).
		Render("Note: the yank chord requires the yank key twice (yy). Number keys 1-9 restore minimized windows.")
	fmt.Println(note)
	fmt.Println()
}

// listCustomKeybindings shows only the keybindings that differ from defaults
func listCustomKeybindings() error {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	defaultConfig := config.DefaultConfig()

	customizations := findCustomizations(userConfig, defaultConfig)

	if len(customizations) == 0 {
		fmt.Println(lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render("No custom keybindings configured. All keybindings are using defaults."))
		fmt.Println()
		fmt.Println("Run 'termfolio keybinds list' to see all keybindings.")
		return nil
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		Padding(0, 1)

	cellStyle := lipgloss.NewStyle().
		Padding(0, 1)

	fmt.Println()
	fmt.Println(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).Render("Custom Keybindings"))
	fmt.Println()

	rows := [][]string{}
	for _, custom := range customizations {
		rows = append(rows, []string{
			custom.Action,
			custom.DefaultKeys,
			custom.CustomKeys,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		Headers("Action", "Default", "Custom").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return cellStyle
		})

	fmt.Println(t.Render())
	fmt.Println()

	note := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11")).
		Render(fmt.Sprintf("Found %d customized keybinding(s)", len(customizations)))
	fmt.Println(note)
	fmt.Println()
	return nil
}

// Customization represents a customized keybinding
type Customization struct {
	Action      string
	DefaultKeys string
	CustomKeys  string
}

// findCustomizations finds all keybindings that differ from defaults
func findCustomizations(userCfg, defaultCfg *config.UserConfig) []Customization {
	var customizations []Customization

	compareSections := func(userSection, defaultSection map[string][]string) {
		for action, defaultKeys := range defaultSection {
			userKeys, exists := userSection[action]
			if !exists {
				continue // Using default
			}

			if !stringSlicesEqual(userKeys, defaultKeys) {
				customizations = append(customizations, Customization{
					Action:      formatActionName(action),
					DefaultKeys: strings.Join(defaultKeys, ", "),
					CustomKeys:  strings.Join(userKeys, ", "),
				})
			}
		}
	}

	compareSections(userCfg.Keybindings.Navigation, defaultCfg.Keybindings.Navigation)
	compareSections(userCfg.Keybindings.WindowManagement, defaultCfg.Keybindings.WindowManagement)
	compareSections(userCfg.Keybindings.System, defaultCfg.Keybindings.System)

	return customizations
}

// stringSlicesEqual checks if two string slices are equal
func stringSlicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// formatActionName formats an action name for display
func formatActionName(action string) string {
	if desc, ok := config.ActionDescriptions[action]; ok {
		return desc
	}
	return strings.ReplaceAll(action, "_", " ")
}
