package viz

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/wavegrid/internal/anim"
	"github.com/san-kum/wavegrid/internal/config"
	"github.com/san-kum/wavegrid/internal/export"
	"github.com/san-kum/wavegrid/internal/wave"
)

const trailCapacity = 60

type control int

const (
	controlRows control = iota
	controlCols
	controlSpeed
	numControls
)

func (c control) String() string {
	switch c {
	case controlRows:
		return "rows"
	case controlCols:
		return "cols"
	default:
		return "speed"
	}
}

// TickMsg is delivered when a scheduled tick comes due. Gen identifies the
// schedule generation it was armed under.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

func tickCmd(gen uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return TickMsg{Gen: gen, Time: t} })
}

// Model is the bubbletea model for the wave widget.
type Model struct {
	widget   *anim.Widget
	keys     keyMap
	help     help.Model
	input    textinput.Model
	editing  bool
	selected control
	trail    []float64
	theme    Theme
	styles   styles
	recorder *export.Recorder
	gifPath  string
	status   string
}

// NewModel mounts a widget configured by cfg.
func NewModel(cfg *config.Config) Model {
	theme, ok := GetTheme(cfg.Theme)
	if !ok {
		log.Printf("viz: unknown theme %q, using %s", cfg.Theme, theme.Name)
	}

	in := textinput.New()
	in.CharLimit = 3
	in.Width = 5
	in.Prompt = "= "

	return Model{
		widget:  anim.NewWidget(cfg.InitialState()),
		keys:    defaultKeyMap(),
		help:    help.New(),
		input:   in,
		trail:   make([]float64, 0, trailCapacity),
		theme:   theme,
		styles:  newStyles(theme),
		gifPath: cfg.GIFPath,
	}
}

// State exposes the widget state.
func (m Model) State() anim.State { return m.widget.State() }

func (m Model) Init() tea.Cmd {
	if m.widget.Start() {
		return m.schedule()
	}
	return nil
}

func (m Model) schedule() tea.Cmd {
	return tickCmd(m.widget.Generation(), m.widget.Interval())
}

// Update handles input events and scheduled ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if !m.widget.Fire(msg.Gen) {
			return m, nil
		}
		m.afterTick()
		return m, m.schedule()
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateKeys(msg)
	}

	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.stopRecording()
		m.widget.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		if m.widget.TogglePlay() {
			return m, m.schedule()
		}
	case key.Matches(msg, m.keys.Reset):
		m.widget.Reset()
		m.trail = m.trail[:0]
	case key.Matches(msg, m.keys.Next):
		m.selected = (m.selected + 1) % numControls
	case key.Matches(msg, m.keys.Inc):
		return m, m.adjust(1)
	case key.Matches(msg, m.keys.Dec):
		return m, m.adjust(-1)
	case key.Matches(msg, m.keys.Edit):
		m.editing = true
		m.input.SetValue(strconv.Itoa(m.controlValue(m.selected)))
		m.input.CursorEnd()
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Theme):
		m.theme = NextTheme(m.theme)
		m.styles = newStyles(m.theme)
	case key.Matches(msg, m.keys.Record):
		if m.recorder == nil {
			m.recorder = export.NewRecorder(12)
			m.status = "recording"
		} else {
			m.stopRecording()
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.editing = false
		m.input.Blur()
		return m, m.apply(m.selected, m.input.Value())
	case tea.KeyEsc:
		m.editing = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) afterTick() {
	st := m.widget.State()
	m.trail = append(m.trail, float64(st.Position))
	if len(m.trail) > trailCapacity {
		m.trail = m.trail[1:]
	}
	if m.recorder != nil {
		m.recorder.Capture(st.Frame(), st.Phase, st.Interval())
	}
}

func (m *Model) stopRecording() {
	if m.recorder == nil {
		return
	}
	if err := m.recorder.Save(m.gifPath); err != nil {
		log.Printf("viz: save recording: %v", err)
		m.status = "record failed: " + err.Error()
	} else {
		log.Printf("viz: saved %d frames to %s", m.recorder.Len(), m.gifPath)
		m.status = "saved " + m.gifPath
	}
	m.recorder = nil
}

func (m *Model) controlValue(c control) int {
	st := m.widget.State()
	switch c {
	case controlRows:
		return st.Rows
	case controlCols:
		return st.Cols
	default:
		return st.SpeedMs
	}
}

// adjust steps the selected control by one notch.
func (m *Model) adjust(dir int) tea.Cmd {
	step := dir
	if m.selected == controlSpeed {
		step = dir * anim.SpeedStep
	}
	return m.set(m.selected, m.controlValue(m.selected)+step)
}

// apply sets a control from typed input.
func (m *Model) apply(c control, input string) tea.Cmd {
	if c == controlSpeed {
		ms, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil {
			m.status = fmt.Sprintf("invalid speed %q", input)
			return nil
		}
		return m.set(c, ms)
	}
	return m.set(c, anim.ParseDimension(input))
}

func (m *Model) set(c control, v int) tea.Cmd {
	var rearmed bool
	switch c {
	case controlRows:
		m.widget.SetRows(v)
	case controlCols:
		before := m.widget.State().Cols
		rearmed = m.widget.SetCols(v)
		if m.widget.State().Cols != before {
			m.trail = m.trail[:0]
		}
	case controlSpeed:
		rearmed = m.widget.SetSpeed(v)
	}
	if rearmed {
		return m.schedule()
	}
	return nil
}

// View renders the grid beside the control and stats panel.
func (m Model) View() string {
	st := m.widget.State()
	stats := st.Stats()
	s := m.styles

	gridView := s.grid.Render(RenderGrid(st.Frame(), st.Phase))

	var b strings.Builder
	b.WriteString(GradientText("WAVEGRID", m.theme.TitleFrom, m.theme.TitleTo) + "\n\n")

	status := s.playing.Render("PLAYING")
	if !stats.Playing {
		status = s.paused.Render("PAUSED")
	}
	if m.recorder != nil {
		status += "  " + s.record.Render(fmt.Sprintf("● REC %d", m.recorder.Len()))
	}
	b.WriteString(status + "\n\n")

	row := func(label, value string) {
		b.WriteString(s.label.Render(label) + s.value.Render(value) + "\n")
	}
	row("Position", fmt.Sprintf("%d / %d", stats.Position, st.MaxPosition()))
	row("Direction", stats.Direction)
	row("Color band", fmt.Sprintf("%d / %d", stats.Band, wave.Bands))
	row("Next band", fmt.Sprintf("%ds", stats.SecondsToNextBand))
	into := float64(st.Phase%wave.TicksPerBand) / wave.TicksPerBand
	row("", s.muted.Render(ProgressBar(into, 20)))

	if len(m.trail) > 1 {
		chart := asciigraph.Plot(m.trail,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.LowerBound(0),
			asciigraph.UpperBound(float64(st.MaxPosition())),
			asciigraph.Caption("position"),
		)
		b.WriteString(s.graph.Render(chart) + "\n")
	}

	b.WriteString("\nCONTROLS\n")
	for c := control(0); c < numControls; c++ {
		line := m.controlLine(c)
		if c == m.selected {
			b.WriteString(s.active.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + s.muted.Render(line) + "\n")
		}
	}
	if m.editing {
		b.WriteString("  " + m.selected.String() + " " + m.input.View() + "\n")
	}

	b.WriteString("\n" + s.muted.Render("wave ~6 cols wide") + "\n")
	if m.status != "" {
		b.WriteString(s.muted.Render(m.status) + "\n")
	}
	b.WriteString("\n" + m.help.View(m.keys))

	return lipgloss.JoinHorizontal(lipgloss.Top, gridView, s.panel.Render(b.String()))
}

func (m Model) controlLine(c control) string {
	v := m.controlValue(c)
	lo, hi, unit := anim.MinDim, anim.MaxDim, ""
	if c == controlSpeed {
		lo, hi, unit = anim.MinSpeed, anim.MaxSpeed, "ms"
	}
	const barWidth = 10
	ratio := float64(v-lo) / float64(hi-lo)
	filled := int(ratio * barWidth)
	bar := "[" + strings.Repeat("=", filled) + strings.Repeat("-", barWidth-filled) + "]"
	return fmt.Sprintf("%-6s %s %d%s", c, bar, v, unit)
}
