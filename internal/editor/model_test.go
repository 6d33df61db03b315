package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atinylittleshell/strpath/internal/completion"
	"github.com/atinylittleshell/strpath/internal/host"
	"github.com/atinylittleshell/strpath/internal/listener"
	tea "github.com/charmbracelet/bubbletea"
)

func setupTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sub", "inner.go"), []byte("package x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func newTestModel(t *testing.T, text string) Model {
	t.Helper()
	g, err := completion.NewGenerator(completion.Options{})
	if err != nil {
		t.Fatal(err)
	}
	manager := listener.NewManager(listener.Options{Generator: g, Strict: true})
	return New(Config{Manager: manager, Text: text})
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func keyMsg(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func TestNew(t *testing.T) {
	m := newTestModel(t, `"/tmp`)

	if len(m.Tabs()) != 1 {
		t.Fatalf("expected one tab, got %d", len(m.Tabs()))
	}
	if m.Current().ID() != 1 {
		t.Errorf("expected first view id 1, got %d", m.Current().ID())
	}
	if !m.listener().IsActive() {
		t.Error("the first tab should be activated with the cursor inside the string")
	}
	if m.Popup().Visible() {
		t.Error("popup should start hidden")
	}
}

func TestTypingSeparatorListsDirectory(t *testing.T) {
	dir := setupTree(t)
	m := newTestModel(t, `open("`+dir)

	m = typeText(t, m, "/")

	if m.Popup().Source() != SourcePaths {
		t.Fatalf("expected path completions, got source %d", m.Popup().Source())
	}
	got := labels(m.Popup().Items())
	if !equalStrings(got, []string{"a.txt", "sub/"}) {
		t.Errorf("unexpected items %v", got)
	}
	if m.Popup().Items()[1].Annotation != "Dir" {
		t.Errorf("expected Dir annotation, got %q", m.Popup().Items()[1].Annotation)
	}
}

func TestAcceptDirectoryDescends(t *testing.T) {
	dir := setupTree(t)
	m := newTestModel(t, `"`+dir+"/")

	m = typeText(t, m, "s")
	got := labels(m.Popup().Items())
	if !equalStrings(got, []string{"sub/"}) {
		t.Fatalf("expected only sub/, got %v", got)
	}

	m = send(t, m, keyMsg(tea.KeyTab))

	want := `"` + dir + "/sub/"
	if m.Current().Text() != want {
		t.Errorf("expected %q, got %q", want, m.Current().Text())
	}
	got = labels(m.Popup().Items())
	if !equalStrings(got, []string{"inner.go"}) {
		t.Errorf("expected the listing of sub/, got %v", got)
	}
}

func TestPopupNavigationKeys(t *testing.T) {
	dir := setupTree(t)
	m := newTestModel(t, `"`+dir)
	m = typeText(t, m, "/")

	m = send(t, m, keyMsg(tea.KeyDown))
	if m.Popup().Selected() != 1 {
		t.Errorf("expected selection 1, got %d", m.Popup().Selected())
	}
	m = send(t, m, keyMsg(tea.KeyUp), keyMsg(tea.KeyUp))
	if m.Popup().Selected() != 1 {
		t.Errorf("expected selection to wrap to 1, got %d", m.Popup().Selected())
	}

	m = send(t, m, keyMsg(tea.KeyEsc))
	if m.Popup().Visible() {
		t.Error("esc should dismiss the popup")
	}

	m = send(t, m, keyMsg(tea.KeyCtrlAt))
	if m.Popup().Source() != SourcePaths {
		t.Error("ctrl+space should re-open path completions")
	}

	m = send(t, m, keyMsg(tea.KeyLeft))
	if m.Popup().Visible() {
		t.Error("moving the cursor should hide the popup")
	}
}

func TestWordCompletionFallback(t *testing.T) {
	m := newTestModel(t, "abc abd a")

	m = send(t, m, keyMsg(tea.KeyCtrlAt))

	if m.Popup().Source() != SourceWords {
		t.Fatalf("expected word completions, got source %d", m.Popup().Source())
	}
	got := labels(m.Popup().Items())
	if !equalStrings(got, []string{"abc", "abd"}) {
		t.Errorf("unexpected items %v", got)
	}

	m = send(t, m, keyMsg(tea.KeyEnter))
	if m.Current().Text() != "abc abd abc" {
		t.Errorf("unexpected text %q", m.Current().Text())
	}
}

func TestDeclinedQueryFallsBackToWords(t *testing.T) {
	m := newTestModel(t, `"/x" alpha beta`)

	m = send(t, m, keyMsg(tea.KeyCtrlA), keyMsg(tea.KeyCtrlAt))

	if m.Current().Buffer().Pos() != 0 {
		t.Fatalf("expected cursor at start, got %d", m.Current().Buffer().Pos())
	}
	if !m.Popup().Visible() || m.Popup().Source() != SourceWords {
		t.Fatalf("expected word completions, got source %d", m.Popup().Source())
	}
	got := labels(m.Popup().Items())
	if !equalStrings(got, []string{"x", "alpha", "beta"}) {
		t.Errorf("unexpected items %v", got)
	}
}

func TestSingleWordIsInsertedDirectly(t *testing.T) {
	m := newTestModel(t, "needle ne")

	m = send(t, m, keyMsg(tea.KeyCtrlAt))

	if m.Current().Text() != "needle needle" {
		t.Errorf("unexpected text %q", m.Current().Text())
	}
	if m.Popup().Visible() {
		t.Error("popup should close after inserting the only candidate")
	}
}

func TestTogglePathCompletion(t *testing.T) {
	dir := setupTree(t)
	m := newTestModel(t, `"`+dir)

	m = send(t, m, keyMsg(tea.KeyCtrlG))

	if m.manager.Settings().Enabled() {
		t.Fatal("ctrl+g should disable path completion")
	}
	if m.listener().IsActive() {
		t.Error("listener should be inactive while disabled")
	}
	if m.Status() != "path completion disabled" {
		t.Errorf("unexpected status %q", m.Status())
	}

	m = typeText(t, m, "/")
	if m.Popup().Source() == SourcePaths {
		t.Error("no path completions while disabled")
	}
	m = send(t, m, keyMsg(tea.KeyLeft), keyMsg(tea.KeyRight))

	m = send(t, m, keyMsg(tea.KeyCtrlG))
	if !m.manager.Settings().Enabled() {
		t.Fatal("second ctrl+g should enable path completion")
	}
	if !m.listener().IsActive() {
		t.Error("listener should be re-activated by the popup command")
	}
	if m.Popup().Source() != SourcePaths {
		t.Errorf("expected path completions after re-enabling, got source %d", m.Popup().Source())
	}
}

func TestTabs(t *testing.T) {
	m := newTestModel(t, `"/tmp`)
	first, _ := m.manager.Get(1)

	m = send(t, m, keyMsg(tea.KeyCtrlT))
	if len(m.Tabs()) != 2 || m.Current().ID() != 2 {
		t.Fatalf("expected to be on new tab 2, got %d tabs, current %d", len(m.Tabs()), m.Current().ID())
	}
	if first.IsActive() {
		t.Error("switching away should deactivate the previous tab")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n"), Alt: true})
	if m.Current().ID() != 1 {
		t.Errorf("alt+n should wrap to tab 1, got %d", m.Current().ID())
	}
	if !first.IsActive() {
		t.Error("switching back should re-activate tab 1")
	}

	m = send(t, m, keyMsg(tea.KeyCtrlX))
	if len(m.Tabs()) != 1 || m.Current().ID() != 2 {
		t.Fatalf("expected only tab 2 left, got %d tabs, current %d", len(m.Tabs()), m.Current().ID())
	}
	if _, ok := m.manager.Get(1); ok {
		t.Error("closed tab should be detached")
	}

	m = send(t, m, keyMsg(tea.KeyCtrlX))
	if len(m.Tabs()) != 1 {
		t.Error("the last tab should not close")
	}
}

func TestFocus(t *testing.T) {
	m := newTestModel(t, `"/tmp`)

	m = send(t, m, tea.BlurMsg{})
	if m.listener().IsActive() {
		t.Error("blur should deactivate the listener")
	}

	m = send(t, m, tea.FocusMsg{})
	if !m.listener().IsActive() {
		t.Error("focus should re-activate the listener")
	}
}

func TestPaste(t *testing.T) {
	m := newTestModel(t, "x")
	m = send(t, m, pasteMsg("a\tb\nc"))

	if m.Current().Text() != "xa b c" {
		t.Errorf("unexpected text %q", m.Current().Text())
	}
}

func TestUnknownCommandIsIgnored(t *testing.T) {
	m := newTestModel(t, "x")
	m.Current().RunCommand("goto_line", host.Args{})
	m.processCommands()

	if len(m.Current().pending) != 0 {
		t.Error("commands should be drained")
	}
}

func TestView(t *testing.T) {
	dir := setupTree(t)
	m := newTestModel(t, `"`+dir)
	m = typeText(t, m, "/")

	view := m.View()
	for _, want := range []string{"a.txt", "sub/", "paths on", "in string"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q:\n%s", want, view)
		}
	}

	_, cmd := m.Update(keyMsg(tea.KeyCtrlC))
	if cmd == nil {
		t.Error("ctrl+c should quit")
	}
}
