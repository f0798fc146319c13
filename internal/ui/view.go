package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/glidechart/internal/config"
	"github.com/san-kum/glidechart/internal/frame"
	"github.com/san-kum/glidechart/internal/motion"
	"github.com/san-kum/glidechart/internal/panzoom"
	"github.com/san-kum/glidechart/internal/series"
)

// axisGutter is the column budget asciigraph spends on y-axis labels.
const axisGutter = 10

type TickMsg time.Time

// Model is the Bubble Tea chart view. The frame queue and coordinator
// are shared pointers, so the value-copy Update cycle always mutates
// the same animation state.
type Model struct {
	data  *series.Series
	cfg   *config.Config
	queue *frame.Queue
	clock frame.Clock
	view  *panzoom.Coordinator

	width, height int
	dragging      bool
	lastDragX     int
	showHelp      bool
}

func NewModel(s *series.Series, cfg *config.Config) Model {
	queue := frame.NewQueue()
	clock := frame.SystemClock{}
	view := panzoom.New(queue, clock, panzoom.Config{
		ZoomDuration: cfg.ZoomDuration(),
		Easing:       cfg.EasingFunc(),
		Zeta:         cfg.Zeta,
		Threshold:    cfg.Threshold,
	})
	return Model{
		data:  s,
		cfg:   cfg,
		queue: queue,
		clock: clock,
		view:  view,
	}
}

// Run displays the chart until the user quits.
func Run(s *series.Series, cfg *config.Config) error {
	p := tea.NewProgram(NewModel(s, cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.cfg.FPS), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// chartWidth is the viewport width in columns, the unit all pan/zoom
// geometry is expressed in.
func (m Model) chartWidth() int {
	w := m.width - axisGutter
	if w < 0 {
		return 0
	}
	return w
}

// Update handles input events and pumps the animation frame queue.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	w := float64(m.chartWidth())

	switch msg := msg.(type) {
	case TickMsg:
		m.queue.Flush(time.Time(msg))
		return m, m.tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// The clamp range shrank or grew with the viewport; fold and
		// re-clamp the offset against the new width.
		if nw := float64(m.chartWidth()); nw > 0 {
			m.view.Pan(0, nw)
		}

	case tea.MouseMsg:
		switch {
		case msg.Button == tea.MouseButtonWheelUp:
			m.view.ZoomAt(m.cfg.ZoomStep, w, m.cursorX(msg.X), true)
		case msg.Button == tea.MouseButtonWheelDown:
			m.view.ZoomAt(-m.cfg.ZoomStep, w, m.cursorX(msg.X), true)
		case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
			m.dragging = true
			m.lastDragX = msg.X
		case msg.Action == tea.MouseActionMotion && m.dragging:
			m.view.Pan(float64(msg.X-m.lastDragX), w)
			m.lastDragX = msg.X
		case msg.Action == tea.MouseActionRelease:
			m.dragging = false
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.view.Stop()
			return m, tea.Quit
		case "left", "h":
			m.view.Pan(m.cfg.PanStep, w)
		case "right", "l":
			m.view.Pan(-m.cfg.PanStep, w)
		case "+", "=":
			m.view.ZoomAt(m.cfg.ZoomStep, w, w/2, true)
		case "-", "_":
			m.view.ZoomAt(-m.cfg.ZoomStep, w, w/2, true)
		case "r":
			m.view.Reset()
		case "?":
			m.showHelp = !m.showHelp
		}
	}
	return m, nil
}

// cursorX converts a terminal cell column to chart coordinates.
func (m Model) cursorX(col int) float64 {
	x := float64(col - axisGutter)
	if x < 0 {
		x = 0
	}
	if w := float64(m.chartWidth()); x > w {
		x = w
	}
	return x
}

// View renders the visible window of the series with the current
// animated transform.
func (m Model) View() string {
	w := m.chartWidth()
	if w < 10 || m.height < 8 {
		return "terminal too small"
	}

	width := float64(w)
	scale := m.view.Scale()
	offset := m.view.EffectiveOffset(width)

	// The virtual content spans width*scale columns; the viewport
	// shows [-offset, -offset+width) of it.
	virtual := width * scale
	startFrac := -offset / virtual
	endFrac := (-offset + width) / virtual
	window := m.data.Window(startFrac, endFrac, w)

	chart := asciigraph.Plot(window,
		asciigraph.Height(m.cfg.ChartHeight),
		asciigraph.Width(w),
		asciigraph.Caption(m.data.Name),
	)

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.data.Name)) + "\n")
	s.WriteString(graphStyle.Render(chart) + "\n")

	s.WriteString(labelStyle.Render("zoom ") + valueStyle.Render(fmt.Sprintf("%.2fx", scale)))
	s.WriteString(labelStyle.Render("  window ") + valueStyle.Render(fmt.Sprintf("%.0f%%-%.0f%%", startFrac*100, endFrac*100)))
	if m.view.Animating() {
		s.WriteString("  " + activeStyle.Render(motionLabel(m.view)))
	}
	s.WriteString("\n")

	if m.showHelp {
		s.WriteString(helpStyle.Render(helpText))
	} else {
		s.WriteString(helpStyle.Render("wheel:zoom drag:pan ←→:pan +/-:zoom r:reset ?:help q:quit"))
	}
	return s.String()
}

func motionLabel(v *panzoom.Coordinator) string {
	switch {
	case v.Mode() == motion.Coasting:
		return "coasting"
	case v.Mode() == motion.Forcing:
		return "panning"
	default:
		return "zooming"
	}
}

const helpText = `  wheel      zoom at the cursor column
  drag       pan, release to coast
  ←/→  h/l   pan by one step
  +/-        zoom at the center
  r          reset view
  ?          toggle this help
  q          quit`
