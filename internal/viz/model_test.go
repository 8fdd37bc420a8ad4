package viz

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/wavegrid/internal/config"
	"github.com/san-kum/wavegrid/internal/wave"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("expected Model, got %T", next)
	}
	return mm, cmd
}

func started(t *testing.T) Model {
	t.Helper()
	m := NewModel(config.DefaultConfig())
	if cmd := m.Init(); cmd == nil {
		t.Fatal("playing model should schedule a tick")
	}
	return m
}

func TestInitPaused(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Playing = false
	m := NewModel(cfg)
	if cmd := m.Init(); cmd != nil {
		t.Error("paused model should not schedule a tick")
	}
}

func TestTickAdvances(t *testing.T) {
	m := started(t)
	m, cmd := send(t, m, TickMsg{Gen: m.widget.Generation()})
	if cmd == nil {
		t.Error("live tick should schedule the next one")
	}
	st := m.State()
	if st.Position != 1 || st.Phase != 1 {
		t.Errorf("expected position 1 phase 1, got %d/%d", st.Position, st.Phase)
	}
	if len(m.trail) != 1 {
		t.Errorf("expected 1 trail sample, got %d", len(m.trail))
	}
}

func TestPauseDropsPendingTick(t *testing.T) {
	m := started(t)
	gen := m.widget.Generation()

	m, cmd := send(t, m, runes(" "))
	if cmd != nil {
		t.Error("pausing should not schedule anything")
	}
	m, cmd = send(t, m, TickMsg{Gen: gen})
	if cmd != nil {
		t.Error("stale tick must not reschedule")
	}
	if m.State().Position != 0 {
		t.Errorf("stale tick moved the wave to %d", m.State().Position)
	}

	m, cmd = send(t, m, runes(" "))
	if cmd == nil {
		t.Fatal("resuming should schedule a fresh tick")
	}
	m, _ = send(t, m, TickMsg{Gen: m.widget.Generation()})
	if m.State().Position != 1 {
		t.Errorf("expected a single step after resume, got %d", m.State().Position)
	}
}

func TestResetKey(t *testing.T) {
	m := started(t)
	for i := 0; i < 4; i++ {
		m, _ = send(t, m, TickMsg{Gen: m.widget.Generation()})
	}
	m, _ = send(t, m, runes("r"))
	st := m.State()
	if st.Position != 0 || st.Phase != 0 || !st.Playing {
		t.Errorf("unexpected state after reset: %+v", st)
	}
	if len(m.trail) != 0 {
		t.Error("reset should clear the trail")
	}
}

func TestAdjustControls(t *testing.T) {
	m := started(t)

	m, _ = send(t, m, runes("l"))
	if m.State().Rows != 16 {
		t.Errorf("expected 16 rows, got %d", m.State().Rows)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	gen := m.widget.Generation()
	m, cmd := send(t, m, runes("h"))
	if m.State().Cols != 19 {
		t.Errorf("expected 19 cols, got %d", m.State().Cols)
	}
	if cmd == nil || m.widget.Generation() == gen {
		t.Error("changing cols should restart the tick")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, cmd = send(t, m, runes("l"))
	if m.State().SpeedMs != 160 {
		t.Errorf("expected 160ms, got %d", m.State().SpeedMs)
	}
	if cmd == nil {
		t.Error("changing speed should restart the tick")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.selected != controlRows {
		t.Errorf("tab should wrap to rows, got %s", m.selected)
	}
}

func TestEditDimension(t *testing.T) {
	m := started(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.editing {
		t.Fatal("enter should open the value editor")
	}
	if m.input.Value() != "15" {
		t.Errorf("editor should start with current value, got %q", m.input.Value())
	}

	m.input.SetValue("abc")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.editing {
		t.Error("enter should close the editor")
	}
	if m.State().Rows != 5 {
		t.Errorf("unparsable rows should fall back to 5, got %d", m.State().Rows)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m.input.SetValue("42")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.State().Rows != 30 {
		t.Errorf("expected rows clamped to 30, got %d", m.State().Rows)
	}
}

func TestEditCancel(t *testing.T) {
	m := started(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m.input.SetValue("9")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.editing || m.State().Rows != 15 {
		t.Errorf("escape should discard the edit, rows=%d", m.State().Rows)
	}
}

func TestEditSpeedRejectsGarbage(t *testing.T) {
	m := started(t)
	m.selected = controlSpeed
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m.input.SetValue("fast")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.State().SpeedMs != 150 {
		t.Errorf("speed should be unchanged, got %d", m.State().SpeedMs)
	}
	if !strings.Contains(m.status, "invalid speed") {
		t.Errorf("unexpected status %q", m.status)
	}
}

func TestQuitClosesWidget(t *testing.T) {
	m := started(t)
	gen := m.widget.Generation()
	m, cmd := send(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.widget.Fire(gen) {
		t.Error("ticks after quit must be dropped")
	}
}

func TestThemeCycle(t *testing.T) {
	m := started(t)
	first := m.theme.Name
	m, _ = send(t, m, runes("t"))
	if m.theme.Name == first {
		t.Error("theme should change")
	}
}

func TestRecordGIF(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.GIFPath = filepath.Join(t.TempDir(), "rec.gif")
	m := NewModel(cfg)
	m.Init()

	m, _ = send(t, m, runes("g"))
	if m.recorder == nil {
		t.Fatal("expected recording to start")
	}
	for i := 0; i < 3; i++ {
		m, _ = send(t, m, TickMsg{Gen: m.widget.Generation()})
	}
	if m.recorder.Len() != 3 {
		t.Errorf("expected 3 frames, got %d", m.recorder.Len())
	}
	m, _ = send(t, m, runes("g"))
	if m.recorder != nil {
		t.Error("expected recording to stop")
	}
	if _, err := os.Stat(cfg.GIFPath); err != nil {
		t.Errorf("gif not written: %v", err)
	}
}

func TestView(t *testing.T) {
	m := started(t)
	for i := 0; i < 3; i++ {
		m, _ = send(t, m, TickMsg{Gen: m.widget.Generation()})
	}
	view := m.View()
	for _, want := range []string{"PLAYING", "Position", "Color band", "Next band", "CONTROLS", "rows", "speed"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m, _ = send(t, m, runes(" "))
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view should say PAUSED")
	}
}

func TestRenderGrid(t *testing.T) {
	out := RenderGrid(wave.Grid(5, 7, 3, 0), 0)
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 7*CellWidth {
			t.Errorf("line %d: expected width %d, got %d", i, 7*CellWidth, w)
		}
	}
}

func TestGradientText(t *testing.T) {
	if GradientText("", ThemeOcean.TitleFrom, ThemeOcean.TitleTo) != "" {
		t.Error("empty text should render empty")
	}
	if got := GradientText("ab", "not-a-color", ThemeOcean.TitleTo); got != "ab" {
		t.Errorf("bad colors should fall back to plain text, got %q", got)
	}
}

func TestGetTheme(t *testing.T) {
	if _, ok := GetTheme("ocean"); !ok {
		t.Error("ocean theme should exist")
	}
	th, ok := GetTheme("nope")
	if ok || th.Name != ThemeCyberpunk.Name {
		t.Error("unknown theme should fall back to cyberpunk")
	}
	if NextTheme(ThemeSunset).Name != ThemeCyberpunk.Name {
		t.Error("themes should wrap")
	}
}
