package fluid

import "math"

// Step advances the simulation by one frame tick: diffusion with the grid's
// configured rate, then advection. dt is the elapsed time supplied by the
// external scheduler.
func (g *Grid) Step(dt float64) {
	g.Diffuse(dt, g.Rate)
	g.Advect(dt)
}

// Oscillate overwrites the grid with a deterministic test pattern derived
// from elapsed time: density creeps upward modulo 1 and every velocity is
// rotated to the angle sin(elapsed) while keeping its magnitude. Debug mode
// only; it is not part of the frame step.
func (g *Grid) Oscillate(elapsed, dt float64) {
	angle := math.Sin(elapsed)
	sin, cos := math.Sincos(angle)
	for i := range g.cells {
		c := &g.cells[i]
		c.Density = math.Mod(c.Density+dt, 1)
		l := c.Vel.Len()
		c.Vel = Vec2{X: l * cos, Y: l * sin}
	}
}
