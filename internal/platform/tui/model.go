package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/text/message"

	"github.com/hongjigr-sebon/tmposegame/internal/core"
	"github.com/hongjigr-sebon/tmposegame/internal/i18n"
	"github.com/hongjigr-sebon/tmposegame/internal/registry"
	"github.com/hongjigr-sebon/tmposegame/internal/sim"
	"github.com/hongjigr-sebon/tmposegame/internal/storage"
	"github.com/hongjigr-sebon/tmposegame/internal/telemetry"
)

// Options are the optional collaborators of a game model.
type Options struct {
	Store  *storage.Store           // nil plays without persistence
	Tracer *telemetry.SessionTracer // nil disables session spans
	Labels <-chan string            // stabilized classifier labels, may be nil
	Locale string                   // summary language, e.g. "en" or "ko"
	Logger *log.Logger
	Bell   io.Writer // receives a bell on hits, may be nil
}

// Model is the Bubble Tea model for running one game.
// The game starts idle; Enter starts a session and R restarts after it ends.
type Model struct {
	game    registry.Game
	driver  *sim.Driver
	screen  *core.Screen
	config  core.RuntimeConfig
	keys    *KeyMapper
	hold    HoldState
	pending []string
	labels  <-chan string
	flash   *Flash
	tracer  *telemetry.SessionTracer
	printer *message.Printer
	now     time.Time

	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	flash := NewFlash(opts.Bell)
	sinks := sim.MultiSink{flash}
	driverOpts := []sim.Option{sim.WithLogger(logger)}
	if opts.Tracer != nil {
		sinks = append(sinks, opts.Tracer)
		driverOpts = append(driverOpts, sim.OnEnd(opts.Tracer.End))
	}
	if opts.Store != nil {
		driverOpts = append(driverOpts, sim.OnEnd(opts.Store.Recorder(logger)))
	}
	driverOpts = append(driverOpts, sim.WithSink(sinks))

	return Model{
		game:    game,
		driver:  sim.NewDriver(game, driverOpts...),
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:  cfg,
		keys:    NewKeyMapper(),
		hold:    NewHoldState(DefaultHoldWindow),
		labels:  opts.Labels,
		flash:   flash,
		tracer:  opts.Tracer,
		printer: i18n.Printer(opts.Locale),
	}
}

// Init starts the frame loop and the label feed.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickRate), listenLabels(m.labels))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The playfield is in world units, so a resize never touches the session.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case CountdownMsg:
		return m.handleCountdown(msg)

	case LabelMsg:
		if m.driver.Active() {
			m.pending = append(m.pending, string(msg))
		}
		return m, listenLabels(m.labels)

	case labelsClosedMsg:
		m.labels = nil
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.driver.Stop()
		m.quitting = true
		return m, tea.Quit
	}

	if label, ok := m.keys.MapLabel(msg); ok && m.driver.Active() {
		m.pending = append(m.pending, label)
		return m, nil
	}

	switch action {
	case core.ActionAscend:
		if m.driver.Active() {
			m.hold.Press(time.Now())
		}
	case core.ActionConfirm, core.ActionRestart:
		if !m.driver.Active() {
			return m, m.start(time.Now())
		}
	case core.ActionStop:
		m.driver.Stop()
	case core.ActionBack:
		m.driver.Stop()
		m.backToMenu = true
		return m, tea.Quit
	}
	return m, nil
}

// start begins a session and schedules its countdown.
func (m *Model) start(now time.Time) tea.Cmd {
	gen := m.driver.Start(now)
	m.hold.Release()
	m.pending = nil
	if m.tracer != nil {
		m.tracer.Begin(context.Background(), m.game.ID(), gen)
	}
	return countdownCmd(m.driver.CountdownPeriod(), gen)
}

// handleTick composes one input frame and advances the simulation.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.now = now
	if m.driver.Active() {
		in := core.NewInputFrame()
		if m.hold.Held(now) {
			in.Set(core.ActionAscend)
		}
		for _, l := range m.pending {
			in.AddLabel(l)
		}
		m.pending = nil

		m.driver.Input(in)
		m.driver.Frame(now)
	}
	return m, tickCmd(m.config.TickRate)
}

// handleCountdown consumes a countdown tick; ticks from older sessions are dropped.
func (m Model) handleCountdown(msg CountdownMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.driver.Generation() || !m.driver.Active() {
		return m, nil
	}
	if _, ended := m.driver.Countdown(msg.Gen); ended {
		return m, nil
	}
	return m, countdownCmd(m.driver.CountdownPeriod(), msg.Gen)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen, m.driver.Snapshot())

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.driver.Active() {
		return m.idleView()
	}

	m.screen.Clear()
	m.game.Render(m.screen, m.driver.Snapshot())
	if text, c, ok := m.flash.Current(m.now); ok {
		m.screen.DrawTextCentered(hudRows+1, " "+text+" ", c)
	}
	return RenderScreen(m.screen)
}

const hudRows = 2

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3)
	panelTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	panelHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// idleView shows the start prompt, or the summary of the last session.
func (m Model) idleView() string {
	var body []string

	if sum, ok := m.driver.LastSummary(); ok {
		lines := i18n.FormatSummary(m.printer, sum)
		body = append(body, panelTitleStyle.Render(lines[0]), "")
		body = append(body, lines[1:]...)
		body = append(body, "", panelHintStyle.Render(m.printer.Sprintf(i18n.AgainKey)))
	} else {
		body = append(body,
			panelTitleStyle.Render(m.game.Title()),
			"",
			m.printer.Sprintf(i18n.StartKey),
			"",
			panelHintStyle.Render(controlsHint(m.game.ID())),
		)
	}

	panel := panelStyle.Render(strings.Join(body, "\n"))
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, panel)
}

func controlsHint(gameID string) string {
	if gameID == "catcher" {
		return "1/2/3 or arrows: lane  S: stop  B: menu  Q: quit"
	}
	return "Space/Up: rise  S: stop  B: menu  Q: quit"
}

// Driver exposes the session driver.
func (m Model) Driver() *sim.Driver {
	return m.driver
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
// It reports whether the user asked to return to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
