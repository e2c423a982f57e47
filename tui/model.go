// Package tui hosts the dashboard on a terminal: a bubbletea model that owns
// the application state, timers for the simulation and the banner, and the
// adapter that draws composed panels with lipgloss.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"mkts/internal/app"
	"mkts/internal/layout"
	"mkts/internal/render"
)

// KeyMap defines the dashboard key bindings.
type KeyMap struct {
	Quit  key.Binding
	Next  key.Binding
	Prev  key.Binding
	Reset key.Binding
}

// DefaultKeyMap returns the standard vim-flavored bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c")),
		Next:  key.NewBinding(key.WithKeys("j", "down")),
		Prev:  key.NewBinding(key.WithKeys("k", "up")),
		Reset: key.NewBinding(key.WithKeys("r")),
	}
}

// priceTickMsg triggers one simulation advance.
type priceTickMsg time.Time

// bannerTickMsg scrolls the marquee one character.
type bannerTickMsg time.Time

// Model is the bubbletea model for the dashboard.
type Model struct {
	state *app.State
	cfg   app.Config
	keys  KeyMap

	width  int
	height int
	ready  bool
}

// NewModel creates a Model around an already-seeded application state.
func NewModel(state *app.State, cfg app.Config) *Model {
	if cfg.PriceUpdateRate <= 0 {
		cfg.PriceUpdateRate = app.DefaultConfig().PriceUpdateRate
	}
	if cfg.BannerTickRate <= 0 {
		cfg.BannerTickRate = app.DefaultConfig().BannerTickRate
	}
	return &Model{
		state: state,
		cfg:   cfg,
		keys:  DefaultKeyMap(),
	}
}

// Init starts the two timers. They stay decoupled: prices move on the slow
// cadence, the marquee on the fast one.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.priceTick(), m.bannerTick())
}

// Update handles messages. All state mutation happens here, between frames.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.state.SelectNext()
		case key.Matches(msg, m.keys.Prev):
			m.state.SelectPrev()
		case key.Matches(msg, m.keys.Reset):
			m.state.ResetSelection()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case priceTickMsg:
		m.state.UpdatePrices()
		return m, m.priceTick()

	case bannerTickMsg:
		m.state.AdvanceBanner()
		return m, m.bannerTick()
	}

	return m, nil
}

// View composes the current state onto the viewport and draws it.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	viewport := layout.Rect{W: m.width, H: m.height}
	return Draw(render.Compose(m.state, viewport))
}

func (m *Model) priceTick() tea.Cmd {
	return tea.Tick(m.cfg.PriceUpdateRate, func(t time.Time) tea.Msg {
		return priceTickMsg(t)
	})
}

func (m *Model) bannerTick() tea.Cmd {
	return tea.Tick(m.cfg.BannerTickRate, func(t time.Time) tea.Msg {
		return bannerTickMsg(t)
	})
}

// Run hosts the dashboard on the alternate screen until the quit key or the
// context ends it. The bubbletea runtime restores the terminal on every exit
// path, including errors.
func Run(ctx context.Context, state *app.State, cfg app.Config) error {
	p := tea.NewProgram(NewModel(state, cfg), tea.WithAltScreen())

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	_, err := p.Run()
	return err
}
