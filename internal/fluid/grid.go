package fluid

import (
	"fmt"
	"math"
)

// Vec2 is a 2D velocity vector.
type Vec2 struct {
	X float64
	Y float64
}

// Len returns the vector magnitude. Renderers should consult Len before
// deriving a direction: the angle of a zero-length vector is undefined, and
// this package never computes one.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Cell holds the simulation state for one grid position. Cells are plain
// values with no identity beyond their position; they are copied freely.
type Cell struct {
	Vel     Vec2
	Density float64
}

// Field selects which scalar channel of a cell an operation samples.
type Field int

const (
	FieldDensity Field = iota
	FieldVelX
	FieldVelY
)

func (c Cell) field(f Field) float64 {
	switch f {
	case FieldVelX:
		return c.Vel.X
	case FieldVelY:
		return c.Vel.Y
	default:
		return c.Density
	}
}

// Solver tunables: k = 15*dt and 5 relaxation sweeps keep a 10x10 grid
// visibly smoothing at interactive timesteps.
const (
	DefaultRate     = 15.0
	DefaultSweeps   = 5
	DefaultSubsteps = 5
)

// Grid is a fixed-size toroidal grid of cells stored in row-major order.
// Dimensions never change after construction; Reset rebuilds the cells in
// place using the seeder the grid was constructed with.
type Grid struct {
	W, H  int
	cells []Cell
	seed  Seeder

	// Rate is the diffusion rate used by Step.
	Rate float64
	// Sweeps is the number of Gauss-Seidel relaxation sweeps per Diffuse call.
	Sweeps int
	// Substeps is the number of backtrace sub-steps per Advect call.
	Substeps int
}

// New allocates a grid with the given dimensions and fills it with the
// provided seeder. A nil seeder leaves every cell zeroed.
func New(w, h int, seed Seeder) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if seed == nil {
		seed = ZeroSeed()
	}
	g := &Grid{
		W:        w,
		H:        h,
		cells:    make([]Cell, w*h),
		seed:     seed,
		Rate:     DefaultRate,
		Sweeps:   DefaultSweeps,
		Substeps: DefaultSubsteps,
	}
	g.seed(g.cells, w, h)
	return g
}

// Cells exposes the backing slice so read-only collaborators (metrics,
// terminal views) can scan values directly.
func (g *Grid) Cells() []Cell { return g.cells }

func (g *Grid) idx(x, y int) int { return y*g.W + x }

func (g *Grid) inRange(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns a snapshot of one cell. Out-of-range coordinates are an error,
// never wrapped; toroidal wrapping is reserved for stencil addressing.
func (g *Grid) At(x, y int) (Cell, error) {
	if !g.inRange(x, y) {
		return Cell{}, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfRange, x, y, g.W, g.H)
	}
	return g.cells[g.idx(x, y)], nil
}

// Inject overwrites the velocity of a single in-range cell. It is the entry
// point for external perturbation (pointer drags translated to grid space)
// and must only be called between frames. Out-of-range coordinates are
// rejected and leave the grid unchanged.
func (g *Grid) Inject(x, y int, vel Vec2) error {
	if !g.inRange(x, y) {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfRange, x, y, g.W, g.H)
	}
	g.cells[g.idx(x, y)].Vel = vel
	return nil
}

// Average returns the arithmetic mean of the selected field over the 4
// toroidally-adjacent cells (west, east, north, south). The center cell is
// excluded. Well-defined for every in-range coordinate, including corners.
func (g *Grid) Average(x, y int, f Field) float64 {
	return average(g.cells, g.W, g.H, x, y, f)
}

func average(cells []Cell, w, h, x, y int, f Field) float64 {
	xp := (x + 1) % w
	xm := (x + w - 1) % w
	yp := (y + 1) % h
	ym := (y + h - 1) % h

	n1 := cells[y*w+xm].field(f)
	n2 := cells[y*w+xp].field(f)
	n3 := cells[ym*w+x].field(f)
	n4 := cells[yp*w+x].field(f)
	return (n1 + n2 + n3 + n4) / 4.0
}

// Reset replaces every cell with a freshly seeded one, using the same mode
// the grid was constructed with.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = Cell{}
	}
	g.seed(g.cells, g.W, g.H)
}

// TotalDensity sums density over the whole grid.
func (g *Grid) TotalDensity() float64 {
	sum := 0.0
	for i := range g.cells {
		sum += g.cells[i].Density
	}
	return sum
}

// MaxSpeed returns the largest velocity magnitude on the grid.
func (g *Grid) MaxSpeed() float64 {
	maxSpeed := 0.0
	for i := range g.cells {
		if l := g.cells[i].Vel.Len(); l > maxSpeed {
			maxSpeed = l
		}
	}
	return maxSpeed
}
