package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/termfolio/internal/config"
	"github.com/Gaurav-Gosain/termfolio/internal/content"
)

// TickerMsg represents a periodic tick event for updating the UI.
type TickerMsg time.Time

// PortfolioChangedMsg signals that the portfolio file changed on disk.
type PortfolioChangedMsg struct{}

// InputHandler is a function type that handles input messages. The Update
// method delegates to the input package through it to avoid a circular
// dependency between app and input.
type InputHandler func(msg tea.Msg, d *Desk) (tea.Model, tea.Cmd)

var inputHandler InputHandler

// SetInputHandler registers the input handler function. This must be
// called during initialization before the Update loop runs.
func SetInputHandler(handler InputHandler) {
	inputHandler = handler
}

// Init starts the tick timer and, when a portfolio file is being watched,
// the reload listener.
func (d *Desk) Init() tea.Cmd {
	cmds := []tea.Cmd{TickCmd()}
	if d.ReloadChan != nil {
		cmds = append(cmds, ListenForReload(d.ReloadChan))
	}
	return tea.Batch(cmds...)
}

// TickCmd creates a command that generates tick messages.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second/config.NormalFPS, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// ListenForReload creates a command that waits for the next portfolio
// change signal.
func ListenForReload(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return PortfolioChangedMsg{}
	}
}

// Update handles all incoming messages and updates the desk state.
func (d *Desk) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickerMsg:
		d.UpdateSysinfo()
		d.CleanupNotifications()
		return d, TickCmd()

	case PortfolioChangedMsg:
		if d.PortfolioPath != "" {
			p, err := content.Load(d.PortfolioPath)
			if err != nil {
				d.ShowNotification("Reload failed: "+err.Error(), "error",
					config.NotificationDuration*time.Millisecond)
			} else {
				d.Reload(p)
			}
		}
		return d, ListenForReload(d.ReloadChan)

	case tea.KeyPressMsg, tea.MouseClickMsg, tea.MouseMotionMsg,
		tea.MouseReleaseMsg, tea.MouseWheelMsg:
		if inputHandler != nil {
			return inputHandler(msg, d)
		}
		return d, nil

	case tea.WindowSizeMsg:
		d.Width = msg.Width
		d.Height = msg.Height
		// Keep windows reachable after a shrink.
		for _, w := range d.Windows {
			w.X, w.Y = d.ClampToDesk(w, w.X, w.Y)
		}
		return d, nil

	case tea.MouseMsg:
		// Catch-all so stray mouse events do not leak.
		return d, nil
	}

	return d, nil
}
