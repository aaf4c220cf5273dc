// Package fluid implements a toy 2D stable-fluid simulation on a fixed-size
// toroidal grid.
//
// Each cell holds a 2D velocity and a scalar density. A frame tick advances
// the grid in two stages:
//
//   - [Grid.Diffuse]: implicit Gauss-Seidel relaxation of every cell toward
//     its 4-neighbor average, unconditionally stable for any timestep
//   - [Grid.Advect]: semi-Lagrangian transport of density backward along the
//     velocity field with bilinear interpolation
//
// Index arithmetic wraps at both edges, so every cell has a full set of
// von-Neumann neighbors and the stencil math is total over the coordinate
// domain. Direct coordinate access ([Grid.At], [Grid.Inject]) never wraps;
// out-of-range coordinates are rejected with [ErrOutOfRange].
//
// # Thread Safety
//
// Grid instances are NOT thread-safe. A grid is exclusively owned by its
// simulation loop and mutated only between frames; see the sim package for
// the single-writer frame driver.
package fluid
