package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"fluidlab/internal/fluid"
)

const historyCapacity = 600

type TickMsg time.Time

// Model drives the live terminal view. It owns the grid for the session:
// stepping, injection and reset all happen on the Update goroutine between
// frames, preserving the single-writer discipline.
type Model struct {
	grid *fluid.Grid

	dt    float64
	gain  float64
	fps   int
	t     float64
	frame int

	running      bool
	curX, curY   int
	history      []float64
	showHelp     bool
	showVelocity bool

	// Pattern switches the tick from the real frame step to the
	// deterministic oscillator, a debug mode for eyeballing the glyphs.
	Pattern bool
}

func NewModel(g *fluid.Grid, dt, gain float64, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	return Model{
		grid:    g,
		dt:      dt,
		gain:    gain,
		fps:     fps,
		running: true,
		history: make([]float64, 0, historyCapacity),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.grid.Reset()
			m.t = 0
			m.frame = 0
			m.history = m.history[:0]
		case "v":
			m.showVelocity = !m.showVelocity
		case "?":
			m.showHelp = !m.showHelp
		case "left", "h":
			m.moveCursor(-1, 0)
		case "right", "l":
			m.moveCursor(1, 0)
		case "up", "k":
			m.moveCursor(0, -1)
		case "down", "j":
			m.moveCursor(0, 1)
		case "A", "shift+left":
			m.inject(fluid.Vec2{X: -1})
		case "D", "shift+right":
			m.inject(fluid.Vec2{X: 1})
		case "W", "shift+up":
			m.inject(fluid.Vec2{Y: -1})
		case "S", "shift+down":
			m.inject(fluid.Vec2{Y: 1})
		}
	case TickMsg:
		if m.running {
			if m.Pattern {
				m.grid.Oscillate(m.t, m.dt)
			} else {
				m.grid.Step(m.dt)
			}
			m.t += m.dt
			m.frame++

			m.history = append(m.history, m.grid.TotalDensity())
			if len(m.history) > historyCapacity {
				m.history = m.history[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) moveCursor(dx, dy int) {
	x, y := m.curX+dx, m.curY+dy
	if x >= 0 && x < m.grid.W {
		m.curX = x
	}
	if y >= 0 && y < m.grid.H {
		m.curY = y
	}
}

// inject translates a unit drag direction into a grid-space velocity using
// the configured gain. The cursor is always in range, so the error is
// impossible here and intentionally dropped.
func (m *Model) inject(dir fluid.Vec2) {
	_ = m.grid.Inject(m.curX, m.curY, dir.Scale(m.gain))
}

func (m Model) View() string {
	var canvas strings.Builder
	cells := m.grid.Cells()
	for y := 0; y < m.grid.H; y++ {
		for x := 0; x < m.grid.W; x++ {
			c := cells[y*m.grid.W+x]
			glyph := DensityShade(c.Density)
			if m.showVelocity {
				glyph = VelocityGlyph(c.Vel)
			}
			if x == m.curX && y == m.curY {
				canvas.WriteString(cursorStyle.Render(string(glyph)))
			} else {
				canvas.WriteRune(glyph)
			}
			canvas.WriteRune(' ')
		}
		canvas.WriteRune('\n')
	}

	var stats strings.Builder
	stats.WriteString(headerStyle.Render("fluidlab") + "\n")
	row := func(label, value string) {
		stats.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("time", fmt.Sprintf("%.2fs", m.t))
	row("frame", fmt.Sprintf("%d", m.frame))
	if m.running {
		row("state", "running")
	} else {
		row("state", "paused")
	}
	row("mass", fmt.Sprintf("%.4f", m.grid.TotalDensity()))
	row("max speed", fmt.Sprintf("%.3f", m.grid.MaxSpeed()))

	cur, _ := m.grid.At(m.curX, m.curY)
	row("cursor", fmt.Sprintf("(%d,%d)", m.curX, m.curY))
	row("density", fmt.Sprintf("%.4f", cur.Density))
	row("speed", fmt.Sprintf("%.3f %c", cur.Vel.Len(), VelocityGlyph(cur.Vel)))

	if len(m.history) > 1 {
		graph := asciigraph.Plot(m.history,
			asciigraph.Height(6),
			asciigraph.Width(32),
			asciigraph.Caption("total density"),
		)
		stats.WriteString(graphStyle.Render(graph))
	}

	help := "space pause · r reset · v velocity · arrows cursor · W/A/S/D inject · q quit"
	if m.showHelp {
		help = strings.Join([]string{
			"space  pause/resume stepping",
			"r      reset grid to its seed mode",
			"v      toggle density/velocity glyphs",
			"arrows move the injection cursor",
			"W/A/S/D  inject velocity at the cursor",
			"?      toggle this help",
			"q      quit",
		}, "\n")
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(canvas.String()),
		statsStyle.Render(stats.String()),
	)
	return body + helpStyle.Render(help) + "\n"
}
