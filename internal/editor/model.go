// Package editor is a small terminal editor that hosts path completion. Each
// tab is a single-line document; the path completion listener is attached to
// every tab and driven by the same events a full editor would send it.
package editor

import (
	"path/filepath"
	"strings"

	"github.com/atinylittleshell/strpath/internal/completion"
	"github.com/atinylittleshell/strpath/internal/host"
	"github.com/atinylittleshell/strpath/internal/listener"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Config holds configuration for creating a new Model.
type Config struct {
	// Manager owns the path completion listeners. Required.
	Manager *listener.Manager

	// Text is the content of the first tab.
	Text string

	// Lang is the language of new tabs.
	Lang string

	// KeyMap provides key bindings. If nil, DefaultKeyMap is used.
	KeyMap *KeyMap

	// RenderConfig provides styling. If nil, DefaultRenderConfig is used.
	RenderConfig *RenderConfig

	// Width is the initial terminal width.
	Width int

	// Logger for debug output. If nil, a no-op logger is used.
	Logger *zap.Logger
}

// Model is the Bubble Tea model of the editor.
type Model struct {
	manager *listener.Manager
	keymap  *KeyMap
	help    help.Model

	tabs    []*Document
	current int
	nextID  host.ViewID
	lang    string

	popup  *Popup
	status string

	renderer *Renderer
	focused  bool
	quitting bool

	logger *zap.Logger
}

// New creates an editor with one tab and activates it.
func New(cfg Config) Model {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	keymap := cfg.KeyMap
	if keymap == nil {
		keymap = DefaultKeyMap()
	}

	renderConfig := cfg.RenderConfig
	if renderConfig == nil {
		defaultConfig := DefaultRenderConfig()
		renderConfig = &defaultConfig
	}

	renderer := NewRenderer(*renderConfig)
	renderer.SetWidth(cfg.Width)

	h := help.New()
	h.Width = renderer.Width()

	m := Model{
		manager:  cfg.Manager,
		keymap:   keymap,
		help:     h,
		nextID:   1,
		lang:     cfg.Lang,
		popup:    NewPopup(),
		renderer: renderer,
		focused:  true,
		logger:   logger,
	}

	m.openTab(cfg.Text)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. It handles all input events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.renderer.SetWidth(msg.Width)
		m.help.Width = msg.Width
		return m, nil

	case tea.FocusMsg:
		m.focused = true
		m.listener().OnActivated()
		return m, nil

	case tea.BlurMsg:
		m.focused = false
		m.popup.Reset()
		m.listener().OnDeactivated()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case pasteMsg:
		m.insert(sanitize(string(msg)))
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderer.Render(m.tabs, m.current, m.popup, m.statusLine(), m.help.View(m.keymap))
}

// Current returns the document of the current tab.
func (m Model) Current() *Document {
	return m.tabs[m.current]
}

// Tabs returns all open documents in tab order.
func (m Model) Tabs() []*Document {
	return m.tabs
}

// Popup returns the completion popup (for testing).
func (m Model) Popup() *Popup {
	return m.popup
}

// Status returns the last status message.
func (m Model) Status() string {
	return m.status
}

func (m Model) listener() *listener.Listener {
	l, _ := m.manager.Get(m.Current().ID())
	return l
}

// handleKeyMsg processes keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keymap.Lookup(msg)

	switch action {
	case ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case ActionPaste:
		return m, Paste

	case ActionComplete:
		m.Current().RunCommand(host.CommandAutoComplete, host.Args{})
		m.processCommands()
		return m, nil

	case ActionTogglePathCompletion:
		m.Current().RunCommand(host.CommandTogglePathCompletion, nil)
		m.processCommands()
		return m, nil

	case ActionAccept:
		if m.popup.Visible() {
			m.accept()
			return m, nil
		}
		if msg.Type == tea.KeyTab {
			m.Current().RunCommand(host.CommandAutoComplete, host.Args{})
			m.processCommands()
		}
		return m, nil

	case ActionSelectNext:
		m.popup.Next()
		return m, nil

	case ActionSelectPrevious:
		m.popup.Prev()
		return m, nil

	case ActionDismiss:
		m.popup.Reset()
		return m, nil

	case ActionNewTab:
		m.openTab("")
		return m, nil

	case ActionCloseTab:
		m.closeTab()
		return m, nil

	case ActionNextTab:
		m.switchTab(m.current + 1)
		return m, nil

	case ActionPreviousTab:
		m.switchTab(m.current - 1)
		return m, nil

	case ActionCharacterForward:
		return m.moveCursor(func(b *Buffer) { b.SetPos(b.Pos() + 1) })

	case ActionCharacterBackward:
		return m.moveCursor(func(b *Buffer) { b.SetPos(b.Pos() - 1) })

	case ActionWordForward:
		return m.moveCursor((*Buffer).WordForward)

	case ActionWordBackward:
		return m.moveCursor((*Buffer).WordBackward)

	case ActionLineStart:
		return m.moveCursor((*Buffer).CursorStart)

	case ActionLineEnd:
		return m.moveCursor((*Buffer).CursorEnd)

	case ActionDeleteCharacterBackward:
		m.edit((*Buffer).DeleteCharBackward)
		return m, nil

	case ActionDeleteCharacterForward:
		m.edit((*Buffer).DeleteCharForward)
		return m, nil

	case ActionDeleteWordBackward:
		m.edit((*Buffer).DeleteWordBackward)
		return m, nil
	}

	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		m.insert(sanitize(string(msg.Runes)))
	}
	return m, nil
}

// insert types text at the cursor.
func (m *Model) insert(text string) {
	if text == "" {
		return
	}
	m.edit(func(b *Buffer) bool {
		b.Insert(text)
		return true
	})
}

// edit applies a change to the current buffer and sends the modification
// events to the listener.
func (m *Model) edit(change func(*Buffer) bool) {
	doc := m.Current()
	if !change(doc.Buffer()) {
		return
	}
	doc.changed()

	l := m.listener()
	l.OnModified()
	l.OnSelectionModified()

	if !m.hasPending() {
		m.refreshPopup()
	}
	m.processCommands()
}

// moveCursor moves the cursor without editing. The popup is closed.
func (m Model) moveCursor(move func(*Buffer)) (tea.Model, tea.Cmd) {
	doc := m.Current()
	before := doc.Buffer().Pos()
	move(doc.Buffer())
	if doc.Buffer().Pos() == before {
		return m, nil
	}

	m.popup.Reset()
	m.listener().OnSelectionModified()
	m.processCommands()
	return m, nil
}

// refreshPopup re-filters a visible popup after an edit that did not
// re-trigger completion.
func (m *Model) refreshPopup() {
	if !m.popup.Visible() {
		return
	}
	m.complete(host.Args{host.ArgNextCompletionIfShowing: false, host.ArgDisableAutoInsert: true})
}

func (m *Model) hasPending() bool {
	return len(m.Current().pending) > 0
}

// processCommands executes the commands queued on the current document,
// including any queued while executing them.
func (m *Model) processCommands() {
	doc := m.Current()
	for {
		cmds := doc.takeCommands()
		if len(cmds) == 0 {
			return
		}
		for _, c := range cmds {
			m.runCommand(doc, c)
		}
	}
}

func (m *Model) runCommand(doc *Document, c command) {
	m.logger.Debug("running command", zap.String("name", c.name), zap.Int("view", int(doc.ID())))

	switch c.name {
	case host.CommandHideAutoComplete:
		m.popup.Reset()

	case host.CommandAutoComplete:
		m.listener().OnTextCommand(c.name, c.args)
		m.complete(c.args)

	case host.CommandTogglePathCompletion:
		enabled := m.manager.Toggle(doc)
		if enabled {
			m.status = "path completion enabled"
		} else {
			m.status = "path completion disabled"
		}

	default:
		m.logger.Warn("unknown command", zap.String("name", c.name))
	}
}

// complete queries the listener and shows the result in the popup.
func (m *Model) complete(args host.Args) {
	if m.popup.Visible() && args.Bool(host.ArgNextCompletionIfShowing, true) {
		m.popup.Next()
		return
	}

	buf := m.Current().Buffer()
	prefix, wordStart := buf.WordPrefix()
	result := m.listener().OnQueryCompletions(prefix, []int{buf.Pos()})

	var (
		source Source
		items  []Item
		start  int
	)
	switch result.Type {
	case completion.ResultSuggestions:
		typed, pathStart := buf.PathPrefix(filepath.Separator)
		source, items, start = SourcePaths, pathItems(result.Candidates, typed), pathStart
		if !result.Flags.Has(completion.InhibitWordCompletions) && typed == prefix {
			items = append(items, wordItems(buf.Words(), prefix)...)
		}

	default:
		// Declined and no-opinion queries both leave completion to the editor.
		source, items, start = SourceWords, wordItems(buf.Words(), prefix), wordStart
	}

	if len(items) == 1 && !args.Bool(host.ArgDisableAutoInsert, false) {
		m.popup.Show(source, items, start)
		m.accept()
		return
	}
	m.popup.Show(source, items, start)
}

// accept replaces the typed prefix with the selected item.
func (m *Model) accept() {
	item, ok := m.popup.Current()
	if !ok {
		return
	}
	start := m.popup.Start()
	m.popup.Reset()

	m.edit(func(b *Buffer) bool {
		b.Replace(start, b.Pos(), item.Insert)
		return true
	})
}

// openTab adds a tab after the last one and switches to it.
func (m *Model) openTab(text string) {
	doc := NewDocument(m.nextID, text, m.lang)
	m.nextID++
	m.manager.Attach(doc)
	m.tabs = append(m.tabs, doc)

	if len(m.tabs) == 1 {
		m.current = 0
		m.listener().OnActivated()
		return
	}
	m.switchTab(len(m.tabs) - 1)
}

// closeTab closes the current tab. The last tab cannot be closed.
func (m *Model) closeTab() {
	if len(m.tabs) <= 1 {
		m.status = "cannot close the last tab"
		return
	}

	doc := m.Current()
	m.popup.Reset()
	m.listener().OnDeactivated()
	m.manager.Detach(doc.ID())

	m.tabs = append(m.tabs[:m.current:m.current], m.tabs[m.current+1:]...)
	if m.current >= len(m.tabs) {
		m.current = len(m.tabs) - 1
	}
	m.listener().OnActivated()
}

// switchTab moves to tab i, wrapping around.
func (m *Model) switchTab(i int) {
	n := len(m.tabs)
	i = ((i % n) + n) % n
	if i == m.current {
		return
	}

	m.popup.Reset()
	m.listener().OnDeactivated()
	m.current = i
	m.listener().OnActivated()
}

func (m Model) statusLine() string {
	var parts []string
	if m.manager.Settings().Enabled() {
		parts = append(parts, m.renderer.config.EnabledStyle.Render("paths on"))
	} else {
		parts = append(parts, m.renderer.config.DisabledStyle.Render("paths off"))
	}
	if l := m.listener(); l != nil && l.IsActive() {
		parts = append(parts, "in string")
	}
	if lang := m.Current().Lang(); lang != "" {
		parts = append(parts, lang)
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return m.renderer.config.StatusStyle.Render(strings.Join(parts, " · "))
}

type pasteMsg string

// Paste returns a command that reads from the clipboard.
func Paste() tea.Msg {
	str, err := clipboard.ReadAll()
	if err != nil {
		return nil
	}
	return pasteMsg(str)
}

// sanitize replaces tabs and newlines, which a single-line document cannot
// hold, with spaces.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return ' '
		}
		return r
	}, s)
}
