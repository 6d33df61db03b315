// Package listener tracks, per editor view, whether the cursor sits inside a
// string literal, and wires editor events to path completion.
package listener

import (
	"github.com/atinylittleshell/strpath/internal/completion"
	"github.com/atinylittleshell/strpath/internal/host"
	"go.uber.org/zap"
)

// stringSelector is the scope selector that activates path completion.
const stringSelector = "string"

// Listener handles the events of a single view.
type Listener struct {
	view      host.View
	settings  *Settings
	generator *completion.Generator
	logger    *zap.Logger
	strict    bool

	// active is true only while the primary cursor is inside a string scope
	// and path completion is enabled.
	active bool
}

// newListener creates a listener for view. Listeners are created through
// Manager.Attach so they share the manager's settings and generator.
func newListener(view host.View, settings *Settings, generator *completion.Generator, logger *zap.Logger, strict bool) *Listener {
	return &Listener{
		view:      view,
		settings:  settings,
		generator: generator,
		logger:    logger.With(zap.Int("view", int(view.ID()))),
		strict:    strict,
	}
}

// View returns the view this listener is attached to.
func (l *Listener) View() host.View {
	return l.view
}

// IsActive reports whether the view's cursor is currently inside a string.
func (l *Listener) IsActive() bool {
	return l.active
}

// OnActivated handles the view gaining focus.
func (l *Listener) OnActivated() {
	if !l.settings.Enabled() {
		l.setActive(false)
		return
	}
	l.VerifyActivation()
}

// OnDeactivated handles the view losing focus.
func (l *Listener) OnDeactivated() {
	l.setActive(false)
}

// OnSelectionModified handles cursor movement.
func (l *Listener) OnSelectionModified() {
	if !l.settings.Enabled() {
		l.assertInactive("selection modified while disabled")
		return
	}
	l.VerifyActivation()
}

// OnModified handles a change to the view's text. While the cursor is inside
// a string it re-opens the host's completion popup so the listing follows
// what is typed.
func (l *Listener) OnModified() {
	if !l.settings.Enabled() || !l.VerifyActivation() {
		return
	}

	end := l.view.Sel()[0].End()
	if l.view.Substr(host.Region{A: end - 1, B: end}) == completion.Separator {
		// A popup left open across a separator keeps the parent's entries
		// and is not refreshed; it has to be closed first.
		l.view.RunCommand(host.CommandHideAutoComplete, nil)
	}

	// TODO: a parent directory whose name prefixes a child's
	// ("~/Downloads/Downloads New/") still confuses the popup when the
	// separator is typed repeatedly.
	l.view.RunCommand(host.CommandAutoComplete, host.AutoCompleteArgs())
}

// OnTextCommand runs before the host executes a text command. Manually
// invoked completion re-checks the scope first.
func (l *Listener) OnTextCommand(name string, args host.Args) {
	if name != host.CommandAutoComplete {
		return
	}
	if !l.settings.Enabled() {
		l.setActive(false)
		return
	}
	l.VerifyActivation()
}

// OnQueryCompletions answers the host's completion query.
func (l *Listener) OnQueryCompletions(prefix string, locations []int) completion.Result {
	if !l.settings.Enabled() || !l.active {
		return completion.NoOpinion()
	}
	return l.generator.Complete(l.view, prefix, locations)
}

// VerifyActivation recomputes the activation state from the primary cursor
// and returns it. Without a selection there is nothing to decide and the
// previous state is kept, but false is returned.
func (l *Listener) VerifyActivation() bool {
	sel := l.view.Sel()
	if len(sel) == 0 {
		return false
	}
	inString := l.view.MatchSelector(sel[0].Begin(), stringSelector)
	l.setActive(inString)
	return inString
}

func (l *Listener) setActive(active bool) {
	if l.active == active {
		return
	}
	l.active = active
	if active {
		l.logger.Debug("path completion activated")
	} else {
		l.logger.Debug("path completion deactivated")
	}
}

// assertInactive checks that a disabled listener is not active.
func (l *Listener) assertInactive(context string) {
	if !l.active {
		return
	}
	err := &InvariantError{View: l.view.ID(), Message: context}
	if l.strict {
		panic(err)
	}
	l.logger.Error("listener active while disabled", zap.Error(err))
	l.active = false
}
