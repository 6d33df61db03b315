package listener

import (
	"sort"
	"sync"

	"github.com/atinylittleshell/strpath/internal/completion"
	"github.com/atinylittleshell/strpath/internal/host"
	"go.uber.org/zap"
)

// Options configures a Manager.
type Options struct {
	// Settings is the shared global state. If nil, path completion starts
	// enabled.
	Settings *Settings

	// Generator produces completions. Required.
	Generator *completion.Generator

	// Strict makes invariant violations panic instead of being logged.
	Strict bool

	// Logger for debug output. If nil, a no-op logger is used.
	Logger *zap.Logger
}

// Manager owns one Listener per attached view.
type Manager struct {
	mu        sync.Mutex
	listeners map[host.ViewID]*Listener

	settings  *Settings
	generator *completion.Generator
	strict    bool
	logger    *zap.Logger
}

// NewManager creates a Manager.
func NewManager(opts Options) *Manager {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	settings := opts.Settings
	if settings == nil {
		settings = NewSettings(true)
	}

	return &Manager{
		listeners: make(map[host.ViewID]*Listener),
		settings:  settings,
		generator: opts.Generator,
		strict:    opts.Strict,
		logger:    logger,
	}
}

// Settings returns the shared settings.
func (m *Manager) Settings() *Settings {
	return m.settings
}

// Attach creates the listener for view, or returns the existing one.
func (m *Manager) Attach(view host.View) *Listener {
	m.mu.Lock()
	defer m.mu.Unlock()

	if l, ok := m.listeners[view.ID()]; ok {
		return l
	}

	l := newListener(view, m.settings, m.generator, m.logger, m.strict)
	m.listeners[view.ID()] = l
	m.logger.Debug("listener attached", zap.Int("view", int(view.ID())))
	return l
}

// Detach discards the listener of a closed view.
func (m *Manager) Detach(id host.ViewID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.listeners[id]; ok {
		delete(m.listeners, id)
		m.logger.Debug("listener detached", zap.Int("view", int(id)))
	}
}

// Get returns the listener of a view.
func (m *Manager) Get(id host.ViewID) (*Listener, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.listeners[id]
	return l, ok
}

// Views returns the ids of all attached views in ascending order.
func (m *Manager) Views() []host.ViewID {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]host.ViewID, 0, len(m.listeners))
	for id := range m.listeners {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Toggle flips path completion on or off for every view, then asks view's
// host to re-open its completion popup so the change shows immediately.
func (m *Manager) Toggle(view host.View) bool {
	enabled := m.settings.Toggle()
	m.logger.Info("path completion toggled", zap.Bool("enabled", enabled))

	if !enabled {
		m.mu.Lock()
		for _, l := range m.listeners {
			l.setActive(false)
		}
		m.mu.Unlock()
	}

	if view != nil {
		view.RunCommand(host.CommandAutoComplete, host.AutoCompleteArgs())
	}
	return enabled
}
