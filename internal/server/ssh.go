// Package server provides the SSH server that serves the portfolio desk
// to remote visitors.
package server

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"charm.land/wish/v2"
	"charm.land/wish/v2/bubbletea"
	"charm.land/wish/v2/logging"
	"github.com/Gaurav-Gosain/termfolio/internal/app"
	"github.com/Gaurav-Gosain/termfolio/internal/config"
	"github.com/Gaurav-Gosain/termfolio/internal/content"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
)

// Config holds configuration for the SSH server.
type Config struct {
	Host          string
	Port          string
	KeyPath       string
	PortfolioPath string
}

// Start initializes and runs the SSH server until ctx is canceled. Every
// connection gets its own desk; the portfolio file is read per session so
// edits show up for new visitors without a restart.
func Start(ctx context.Context, cfg *Config) error {
	hostKeyPath := cfg.KeyPath
	if hostKeyPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}
		hostKeyPath = filepath.Join(homeDir, ".ssh", "termfolio_host_key")
	}

	server, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(teaHandler(cfg)),
			logging.Middleware(),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create SSH server: %w", err)
	}

	go func() {
		log.Info("Starting SSH server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != ssh.ErrServerClosed {
			log.Error("SSH server error", "err", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down SSH server")
	return server.Shutdown(ctx)
}

// teaHandler creates a desk instance for each SSH session.
func teaHandler(cfg *Config) bubbletea.Handler {
	return func(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
		pty, _, active := sshSession.Pty()
		if !active {
			return nil, nil
		}

		portfolio := loadPortfolio(cfg.PortfolioPath)

		userConfig, err := config.LoadUserConfig()
		if err != nil {
			log.Warn("Failed to load config for SSH session, using defaults", "err", err)
			userConfig = config.DefaultConfig()
		}
		registry := config.NewKeybindRegistry(userConfig)

		log.Info("New session", "user", sshSession.User(), "remote", sshSession.RemoteAddr())

		desk := app.NewDesk(portfolio, app.NewOpenState(true), registry)
		desk.Width = pty.Window.Width
		desk.Height = pty.Window.Height
		desk.IsSSHMode = true

		return desk, []tea.ProgramOption{
			tea.WithFPS(config.NormalFPS),
		}
	}
}

func loadPortfolio(path string) *content.Portfolio {
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
