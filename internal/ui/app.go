package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/five82/podium/internal/board"
	"github.com/five82/podium/internal/logtail"
	"github.com/five82/podium/internal/prefs"
	"github.com/five82/podium/internal/scores"
	"github.com/five82/podium/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewBoard View = iota
	ViewLogs
)

// Widget actions that run off the event loop.
const (
	actionSelect  = "select"
	actionRefresh = "refresh"
	actionSubmit  = "submit"
	actionRemove  = "remove"
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Widget     *board.Widget
	Bridge     *Bridge
	BackendURL string
	LogPath    string
	ThemeName  string
	PrefsPath  string
	Player     string // prefills the entry form
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	widget     *board.Widget
	host       *layoutHost
	backendURL string
	logPath    string
	prefsPath  string

	// UI state
	theme       Theme
	keys        keyMap
	currentView View
	width       int
	height      int
	ready       bool

	// Widget state
	snapshot    state.Snapshot
	selectedRow int
	modeCursor  int
	form        entryForm
	player      string
	busy        string
	statusMsg   string
	spinner     spinner.Model

	// Dialogs
	modal         Modal
	pendingAlerts []string
	showHelp      bool

	// Log state
	logViewport viewport.Model
	logLines    []string
	logFollow   bool
	logTicking  bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))

	m := Model{
		ctx:        ctx,
		widget:     opts.Widget,
		host:       newLayoutHost(),
		backendURL: opts.BackendURL,
		logPath:    opts.LogPath,
		prefsPath:  prefsPath,
		theme:      GetTheme(themeName),
		keys:       DefaultKeyMap(),
		form:       newEntryForm(opts.Player),
		player:     strings.TrimSpace(opts.Player),
		spinner:    spin,
		logFollow:  true,
	}
	if m.widget != nil {
		m.snapshot = m.widget.Snapshot()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.logViewport = viewport.New(max(m.width-4, 1), max(m.height-4, 1))
			// The page is drawn, so the widget has somewhere to mount.
			if m.widget != nil {
				m.widget.Mount(m.host)
			}
		}
		m.ready = true
		m.form.SetWidth(WidgetWidth - 4)
		m.syncSnapshot()
		m.updateLogViewport()
		return m, nil

	case changedMsg:
		m.syncSnapshot()
		return m, nil

	case actionDoneMsg:
		return m.handleActionDone(msg)

	case confirmRequestMsg:
		m.modal = newConfirmModal(msg.message, msg.reply)
		return m, nil

	case alertMsg:
		if m.modal != nil {
			m.pendingAlerts = append(m.pendingAlerts, msg.message)
			return m, nil
		}
		m.modal = &alertModal{message: msg.message}
		return m, nil

	case logLinesMsg:
		if msg.err != nil {
			m.statusMsg = msg.err.Error()
			return m, nil
		}
		m.logLines = msg.lines
		m.updateLogViewport()
		return m, nil

	case logTickMsg:
		if m.currentView != ViewLogs {
			m.logTicking = false
			return m, nil
		}
		return m, tea.Batch(readLogsCmd(m.logPath), logTickCmd())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.form.active {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// syncSnapshot re-reads the widget state and keeps cursors in range.
func (m *Model) syncSnapshot() {
	if m.widget == nil {
		return
	}
	m.snapshot = m.widget.Snapshot()
	if m.snapshot.Panel != state.PanelElementary {
		m.form.Blur()
	}
	if n := len(m.snapshot.Entries); m.selectedRow >= n {
		m.selectedRow = max(n-1, 0)
	}
}

// handleKey processes keyboard input. Dialogs take precedence over the form,
// the form over global keys, and global keys over the active view.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		if c, ok := m.modal.(*confirmModal); ok {
			c.answer(false)
		}
		return m, tea.Quit
	}

	if m.modal != nil {
		next, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
			if len(m.pendingAlerts) > 0 {
				m.modal = &alertModal{message: m.pendingAlerts[0]}
				m.pendingAlerts = m.pendingAlerts[1:]
			}
			return m, cmd
		}
		m.modal = next
		return m, cmd
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.form.active && m.currentView == ViewBoard {
		return m.handleFormKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ViewLogs):
		if m.currentView == ViewLogs {
			m.currentView = ViewBoard
			return m, nil
		}
		return m.openLogs()

	case key.Matches(msg, m.keys.ToggleVisible) && m.widget != nil:
		m.widget.ToggleVisibility()
		m.syncSnapshot()
		return m, nil
	}

	switch m.currentView {
	case ViewLogs:
		return m.handleLogsKey(msg)
	default:
		return m.handleBoardKey(msg)
	}
}

// handleBoardKey drives the widget. List actions need the widget shown and
// expanded, like clicks need the list region on screen.
func (m Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.snapshot
	if m.widget == nil || !snap.Mounted || !snap.Visible {
		return m, nil
	}

	if key.Matches(msg, m.keys.ToggleOpen) {
		m.widget.ToggleOpen()
		m.syncSnapshot()
		return m, nil
	}
	if !snap.Open {
		return m, nil
	}

	if key.Matches(msg, m.keys.Back) && snap.BackVisible() {
		m.widget.GoBack()
		m.selectedRow = 0
		m.syncSnapshot()
		return m, nil
	}

	if snap.Panel == state.PanelSelector {
		return m.handleSelectorKey(msg)
	}

	if key.Matches(msg, m.keys.Refresh) {
		return m.runAction(actionRefresh, "Refreshing…", m.refreshCmd())
	}

	if snap.Panel == state.PanelElementary {
		return m.handleElementaryKey(msg)
	}
	return m, nil
}

func (m Model) handleSelectorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.modeCursor = max(m.modeCursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.modeCursor = min(m.modeCursor+1, len(modeChoices)-1)
	case key.Matches(msg, m.keys.PickDynamic):
		return m.selectMode(state.ModeDynamic)
	case key.Matches(msg, m.keys.PickElementary):
		return m.selectMode(state.ModeElementary)
	case key.Matches(msg, m.keys.Confirm):
		return m.selectMode(modeChoices[m.modeCursor].mode)
	}
	return m, nil
}

func (m Model) selectMode(mode state.Mode) (tea.Model, tea.Cmd) {
	m.selectedRow = 0
	w, ctx := m.widget, m.ctx
	return m.runAction(actionSelect, "", func() tea.Msg {
		return actionDoneMsg{action: actionSelect, err: w.SelectMode(ctx, mode)}
	})
}

func (m Model) handleElementaryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := len(m.snapshot.Entries)
	switch {
	case key.Matches(msg, m.keys.Up):
		m.selectedRow = max(m.selectedRow-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.selectedRow = max(min(m.selectedRow+1, rows-1), 0)
	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selectedRow = max(rows-1, 0)
	case key.Matches(msg, m.keys.AddScore, m.keys.Confirm):
		return m, m.form.Focus()
	case key.Matches(msg, m.keys.Delete):
		if m.selectedRow >= rows {
			return m, nil
		}
		id := m.snapshot.Entries[m.selectedRow].ID
		w, ctx := m.widget, m.ctx
		return m.runAction(actionRemove, "Deleting score…", func() tea.Msg {
			return actionDoneMsg{action: actionRemove, err: w.RemoveScore(ctx, id)}
		})
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.form.Blur()
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		return m, m.form.Next()
	case key.Matches(msg, m.keys.Confirm):
		if m.busy != "" {
			return m, nil
		}
		name, score := m.form.Values()
		w, ctx := m.widget, m.ctx
		return m.runAction(actionSubmit, "Saving score…", func() tea.Msg {
			return actionDoneMsg{action: actionSubmit, err: w.SubmitScore(ctx, name, score)}
		})
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// runAction marks the model busy and runs cmd. Widget calls block on the
// network and on confirmation dialogs, so they never run inside Update.
func (m Model) runAction(action, busy string, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if cmd == nil {
		return m, nil
	}
	m.busy = busy
	m.statusMsg = ""
	log.Debug().Str("component", "ui").Str("action", action).Msg("widget action started")
	return m, cmd
}

func (m Model) refreshCmd() tea.Cmd {
	w, ctx := m.widget, m.ctx
	switch m.snapshot.Mode {
	case state.ModeDynamic:
		return func() tea.Msg {
			return actionDoneMsg{action: actionRefresh, err: w.FetchGlobalBoard(ctx)}
		}
	case state.ModeElementary:
		return func() tea.Msg {
			return actionDoneMsg{action: actionRefresh, err: w.FetchEntries(ctx)}
		}
	}
	return nil
}

func (m Model) handleActionDone(msg actionDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = ""
	m.syncSnapshot()

	if msg.err != nil {
		var verr *board.ValidationError
		switch {
		case errors.As(msg.err, &verr):
			// Already alerted; keep the form open for a correction.
		case errors.Is(msg.err, context.Canceled):
		case scores.IsTransport(msg.err):
			m.statusMsg = "backend unreachable"
		default:
			m.statusMsg = msg.err.Error()
		}
		log.Debug().Str("component", "ui").Str("action", msg.action).Err(msg.err).Msg("widget action failed")
		return m, nil
	}

	if msg.action == actionSubmit {
		name, _ := m.form.Values()
		m.form.Reset()
		m.form.Blur()
		if name = strings.TrimSpace(name); name != "" && name != m.player {
			m.player = name
			m.savePrefs()
		}
	}
	return m, nil
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Player: m.player}); err != nil {
		log.Warn().Str("component", "ui").Err(err).Msg("save preferences")
	}
}

// renderMain lays out header, page body with the mounted widget, and the
// command bar.
func (m Model) renderMain() string {
	contentHeight := max(m.height-2, 3)
	snap := m.snapshot

	var body, widget string
	switch {
	case snap.Placement == state.PlacementEmbedded && snap.HostID == ContainerSidebar && m.width >= LayoutCompactWidth:
		widget = m.renderWidget(WidgetWidth, contentHeight)
		body = m.renderBody(m.width-lipgloss.Width(widget), contentHeight)
	case snap.Placement == state.PlacementEmbedded && snap.HostID == ContainerBottom:
		widget = m.renderWidget(m.width, contentHeight/2)
		body = m.renderBody(m.width, contentHeight-blockHeight(widget))
	default:
		widget = m.renderWidget(min(WidgetWidth, m.width), contentHeight)
		body = m.renderBody(m.width, contentHeight)
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(composeLayout(snap, body, widget, m.width, contentHeight))
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	return b.String()
}

// renderBody renders the page the widget is mounted on.
func (m Model) renderBody(width, height int) string {
	if width < 4 || height < 2 {
		return ""
	}
	if m.currentView == ViewLogs {
		return m.renderLogs(width, height)
	}
	return m.renderPage(width, height)
}

func blockHeight(s string) int {
	if s == "" {
		return 0
	}
	return lipgloss.Height(s)
}

// Messages

type actionDoneMsg struct {
	action string
	err    error
}

type logLinesMsg struct {
	lines []string
	err   error
}

type logTickMsg time.Time

// Commands

func readLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		raw, err := logtail.Read(path, LogTailLines)
		if err != nil {
			return logLinesMsg{err: err}
		}
		return logLinesMsg{lines: logtail.FormatLines(raw)}
	}
}

func logTickCmd() tea.Cmd {
	return tea.Tick(LogRefreshInterval, func(t time.Time) tea.Msg {
		return logTickMsg(t)
	})
}

// Run starts the Bubble Tea program and wires the bridge to it. The widget
// is destroyed when the program exits.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if opts.Bridge != nil {
		opts.Bridge.Attach(p.Send)
	}
	if opts.Widget != nil {
		defer opts.Widget.Destroy()
	}
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
