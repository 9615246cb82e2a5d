// Package app contains the root application model.
package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/truncate"

	"github.com/zjrosen/jot/internal/clipboard"
	"github.com/zjrosen/jot/internal/config"
	"github.com/zjrosen/jot/internal/editor"
	"github.com/zjrosen/jot/internal/history"
	"github.com/zjrosen/jot/internal/keys"
	"github.com/zjrosen/jot/internal/log"
	"github.com/zjrosen/jot/internal/ui/shared/button"
	"github.com/zjrosen/jot/internal/ui/shared/divider"
	"github.com/zjrosen/jot/internal/ui/shared/titlebar"
	"github.com/zjrosen/jot/internal/ui/styles"
	"github.com/zjrosen/jot/internal/ui/textfield"
	"github.com/zjrosen/jot/internal/watcher"
)

const (
	copyButtonID  = "app-copy"
	clearButtonID = "app-clear"

	// logTailLines is how many recent log lines the debug footer shows.
	logTailLines = 3
)

// noRecall marks the field as editing the draft rather than a history entry.
const noRecall = -1

// historyLoadedMsg delivers the persisted entries on startup.
type historyLoadedMsg struct {
	entries []history.Entry
	err     error
}

// entryAddedMsg reports the outcome of persisting a submitted entry.
type entryAddedMsg struct {
	entry history.Entry
	err   error
}

// configChangedMsg signals that the config file changed on disk.
type configChangedMsg struct{}

// Model is the root application state.
type Model struct {
	cfg        config.Config
	configPath string
	keys       keys.KeyMap

	field    textfield.Model
	copyBtn  button.Model
	clearBtn button.Model

	store   *history.Store
	entries []history.Entry // newest first

	// History recall: recallIdx indexes entries while browsing, draft
	// preserves the in-progress text the user left behind.
	recallIdx int
	draft     string

	width  int
	height int

	showHelp bool
	errText  string

	debugMode   bool
	logTail     []string
	logListener *log.LogListener
	logCancel   context.CancelFunc

	watcherHandle *watcher.Watcher
	watchCh       <-chan struct{}
}

// New creates the application model. store may be nil when the history
// database could not be opened; the app still edits, it just cannot
// persist.
func New(cfg config.Config, configPath string, store *history.Store, debugMode bool) Model {
	field := textfield.New(textfield.Config{
		ID:          "main",
		Placeholder: cfg.UI.Placeholder,
		Clipboard:   clipboard.System{},
	})
	field.Focus()

	var (
		listener  *log.LogListener
		logCancel context.CancelFunc
	)
	if debugMode {
		var ctx context.Context
		ctx, logCancel = context.WithCancel(context.Background())
		listener = log.NewListener(ctx)
	}

	// Watch the config file so theme edits apply without restarting.
	// The app works fine without the watcher, so init errors only log.
	var (
		watcherHandle *watcher.Watcher
		watchCh       <-chan struct{}
	)
	if configPath != "" {
		w, err := watcher.New(watcher.DefaultConfig(configPath))
		if err == nil {
			if ch, startErr := w.Start(); startErr == nil {
				watcherHandle = w
				watchCh = ch
			} else {
				log.Warn(log.CatConfig, "Config watcher failed to start", "error", startErr)
				_ = w.Stop()
			}
		} else {
			log.Warn(log.CatConfig, "Config watcher unavailable", "error", err)
		}
	}

	return Model{
		cfg:           cfg,
		configPath:    configPath,
		keys:          keys.DefaultKeyMap(),
		field:         field,
		copyBtn:       button.New(copyButtonID, "Copy", button.Primary),
		clearBtn:      button.New(clearButtonID, "Clear", button.Danger),
		store:         store,
		recallIdx:     noRecall,
		showHelp:      cfg.UI.ShowHelp,
		debugMode:     debugMode,
		logListener:   listener,
		logCancel:     logCancel,
		watcherHandle: watcherHandle,
		watchCh:       watchCh,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadHistoryCmd()}
	if m.watchCh != nil {
		cmds = append(cmds, waitForConfigChange(m.watchCh))
	}
	if m.logListener != nil {
		cmds = append(cmds, m.logListener.Listen())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.field.SetWidth(max(msg.Width-2, 10))
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.ToggleHelp) {
			m.showHelp = !m.showHelp
			return m, nil
		}
		var cmd tea.Cmd
		m.field, cmd = m.field.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case textfield.SubmitMsg:
		return m.handleSubmit(msg)

	case textfield.MovementMsg:
		return m.handleMovement(msg)

	case historyLoadedMsg:
		if msg.err != nil {
			m.errText = "history unavailable: " + msg.err.Error()
			return m, nil
		}
		m.entries = msg.entries
		return m, nil

	case entryAddedMsg:
		if msg.err != nil {
			m.errText = "save failed: " + msg.err.Error()
			return m, nil
		}
		m.errText = ""
		m.entries = append([]history.Entry{msg.entry}, m.entries...)
		if limit := m.cfg.UI.MaxHistory; limit > 0 && len(m.entries) > limit {
			m.entries = m.entries[:limit]
		}
		return m, nil

	case configChangedMsg:
		m = m.reloadConfig()
		return m, waitForConfigChange(m.watchCh)

	case log.LogEvent:
		m.logTail = append(m.logTail, strings.TrimRight(msg.Payload, "\n"))
		if len(m.logTail) > logTailLines {
			m.logTail = m.logTail[len(m.logTail)-logTailLines:]
		}
		return m, m.logListener.Listen()
	}

	return m, nil
}

// handleMouse routes clicks to the buttons, then to the text field.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease {
		if m.copyBtn.Clicked(msg) {
			log.Debug(log.CatUI, "Copy button clicked")
			m.field.SelectAll()
			m.field.Copy()
			return m, nil
		}
		if m.clearBtn.Clicked(msg) {
			log.Debug(log.CatUI, "Clear button clicked")
			m.field.Reset()
			m.recallIdx = noRecall
			m.draft = ""
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.field, cmd = m.field.HandleMouse(msg)
	return m, cmd
}

// handleSubmit persists the submitted text and clears the field.
func (m Model) handleSubmit(msg textfield.SubmitMsg) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(msg.Text) == "" {
		return m, nil
	}
	m.field.Reset()
	m.recallIdx = noRecall
	m.draft = ""
	if m.store == nil {
		m.errText = "history unavailable: entry not saved"
		return m, nil
	}
	store := m.store
	return m, func() tea.Msg {
		entry, err := store.Add(msg.Text)
		return entryAddedMsg{entry: entry, err: err}
	}
}

// handleMovement steps through history: up recalls older entries, down
// walks back toward the draft the user was typing.
func (m Model) handleMovement(msg textfield.MovementMsg) (tea.Model, tea.Cmd) {
	if len(m.entries) == 0 {
		return m, nil
	}
	switch msg.Movement.Direction {
	case editor.Up:
		if m.recallIdx == noRecall {
			m.draft = m.field.Value()
			m.recallIdx = 0
		} else if m.recallIdx < len(m.entries)-1 {
			m.recallIdx++
		} else {
			return m, nil
		}
		m.field.SetValue(m.entries[m.recallIdx].Text)
	case editor.Down:
		switch {
		case m.recallIdx == noRecall:
			return m, nil
		case m.recallIdx == 0:
			m.recallIdx = noRecall
			m.field.SetValue(m.draft)
		default:
			m.recallIdx--
			m.field.SetValue(m.entries[m.recallIdx].Text)
		}
	}
	return m, nil
}

// reloadConfig re-reads the config file and applies theme and UI
// changes in place. A broken config is logged and ignored.
func (m Model) reloadConfig() Model {
	cfg, err := config.Load(m.configPath)
	if err != nil {
		log.Warn(log.CatConfig, "Config reload failed", "error", err, "path", m.configPath)
		return m
	}
	if err := cfg.Validate(); err != nil {
		log.Warn(log.CatConfig, "Reloaded config invalid", "error", err, "path", m.configPath)
		return m
	}
	log.Info(log.CatConfig, "Config reloaded", "path", m.configPath)
	styles.ApplyTheme(cfg.Theme)
	m.field.SetPlaceholder(cfg.UI.Placeholder)
	m.showHelp = cfg.UI.ShowHelp
	m.cfg = cfg
	return m
}

// waitForConfigChange blocks until the watcher signals a change.
func waitForConfigChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return configChangedMsg{}
	}
}

// loadHistoryCmd loads the persisted entries, newest first.
func (m Model) loadHistoryCmd() tea.Cmd {
	store := m.store
	limit := m.cfg.UI.MaxHistory
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		entries, err := store.Recent(limit)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

// View implements tea.Model. zone.Scan wraps the final composed frame
// so click zones register with their true screen coordinates.
func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	sections := []string{
		titlebar.Render("jot", width),
		" " + m.field.View(),
		lipgloss.JoinHorizontal(lipgloss.Top, " ", m.copyBtn.View(), " ", m.clearBtn.View()),
		divider.Horizontal(width),
		m.viewHistory(),
	}

	if m.errText != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(styles.StatusErrorColor).Render(" "+m.errText))
	}
	if m.showHelp {
		sections = append(sections, m.viewHelp())
	}
	if m.debugMode && len(m.logTail) > 0 {
		sections = append(sections, styles.MutedStyle.Render(strings.Join(m.logTail, "\n")))
	}

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// viewHistory renders the recent entries, newest first, highlighting
// the one currently recalled into the field.
func (m Model) viewHistory() string {
	if len(m.entries) == 0 {
		return styles.MutedStyle.Render(" no entries yet")
	}

	// Leave room for the fixed chrome above and below the list.
	visible := len(m.entries)
	if m.height > 0 {
		if room := m.height - 8; room > 0 && visible > room {
			visible = room
		}
	}

	var b strings.Builder
	for i := 0; i < visible; i++ {
		line := " · " + singleLine(m.entries[i].Text)
		if m.width > 0 {
			line = truncate.StringWithTail(line, uint(m.width), "…")
		}
		if i == m.recallIdx {
			line = lipgloss.NewStyle().Foreground(styles.BorderFocusColor).Render(line)
		} else {
			line = styles.MutedStyle.Render(line)
		}
		b.WriteString(line)
		if i < visible-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// viewHelp renders the keybinding footer.
func (m Model) viewHelp() string {
	parts := make([]string, 0, 8)
	for _, b := range m.keys.HelpBindings() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return styles.MutedStyle.Render(" " + strings.Join(parts, " • "))
}

// singleLine flattens embedded line breaks for list display.
func singleLine(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// Close releases resources held by the application.
func (m *Model) Close() error {
	if m.logCancel != nil {
		m.logCancel()
	}
	if m.watcherHandle != nil {
		if err := m.watcherHandle.Stop(); err != nil {
			return err
		}
	}
	return nil
}
