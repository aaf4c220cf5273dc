package viz

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"fluidlab/internal/fluid"
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(40)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

var shades = []rune{' ', '░', '▒', '▓', '█'}

// DensityShade maps a density to a block glyph. Density is unclamped in the
// solver, so anything at or above 1 renders fully solid.
func DensityShade(d float64) rune {
	if d <= 0 {
		return shades[0]
	}
	if d >= 1 {
		return shades[len(shades)-1]
	}
	return shades[int(d*float64(len(shades)))]
}

var arrows = []rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// VelocityGlyph returns an arrow for the velocity direction in screen
// orientation (y grows downward). The angle of a zero-length vector is
// undefined, so those render as a neutral dot; this guard belongs to the
// view, never the core.
func VelocityGlyph(v fluid.Vec2) rune {
	if v.Len() < 1e-9 {
		return '·'
	}
	angle := math.Atan2(-v.Y, v.X)
	sector := int(math.Round(angle / (math.Pi / 4)))
	return arrows[((sector%8)+8)%8]
}
