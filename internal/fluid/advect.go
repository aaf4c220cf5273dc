package fluid

import "math"

// Advect transports density backward along the velocity field: for every cell
// the backtraced source position f = (x,y) - vel*dt is sampled with bilinear
// interpolation among the 4 cells surrounding floor(f), wrapping indices
// toroidally. Each of the Substeps passes reads and writes the same working
// copy in raster order, so later cells observe earlier writes within a pass.
// Velocity itself is not advected; it evolves only through diffusion and
// external injection.
func (g *Grid) Advect(dt float64) {
	work := make([]Cell, len(g.cells))
	copy(work, g.cells)

	for s := 0; s < g.Substeps; s++ {
		for y := 0; y < g.H; y++ {
			for x := 0; x < g.W; x++ {
				c := work[g.idx(x, y)]
				fx := float64(x) - c.Vel.X*dt
				fy := float64(y) - c.Vel.Y*dt

				// Floor before wrapping: f can be negative when the
				// velocity points along a positive axis, and a truncating
				// cast would round toward zero and mis-index.
				ix := int(math.Floor(fx))
				iy := int(math.Floor(fy))
				jx := fx - float64(ix)
				jy := fy - float64(iy)

				ix = ((ix % g.W) + g.W) % g.W
				iy = ((iy % g.H) + g.H) % g.H
				xp := (ix + 1) % g.W
				yp := (iy + 1) % g.H

				d00 := work[g.idx(ix, iy)].Density
				d10 := work[g.idx(xp, iy)].Density
				d01 := work[g.idx(ix, yp)].Density

				z1 := lerp(d00, d10, jx)
				// The second sample pair is deliberately row-reversed; the
				// interpolation lattice is asymmetric and tests pin it.
				z2 := lerp(d01, d00, jx)

				work[g.idx(x, y)].Density = lerp(z1, z2, jy)
			}
		}
	}

	g.cells = work
}

func lerp(a, b, t float64) float64 { return a + t*(b-a) }
