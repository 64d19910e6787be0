// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sys implements the assembled saddle-point system: structured grid
// levels, sparse matrices with ownership-aware duplication, block matrices
// with virtual or physical transposed coupling blocks, and boundary-condition
// filters.
package sys

import (
	"github.com/cpmech/gosl/chk"
)

// KindEdgeMidpoint tags grids discretized with the rotated bilinear
// (edge-midpoint) element family. Adaptive coarse-grid matrix restriction is
// defined for this family only.
const KindEdgeMidpoint = "edge-midpoint"

// Grid holds one uniform logically-rectangular grid on [0,Lx] x [0,Ly] with
// Nx by Ny cells. Velocity DOFs live on cell edges (one per component per
// edge), pressure DOFs on cells. Vertical edges are numbered first, row by
// row, then horizontal edges.
type Grid struct {
	Kind   string  // element family
	Nx, Ny int     // number of cells along x and y
	Lx, Ly float64 // domain lengths
	Hx, Hy float64 // cell sizes (derived)
	Nvert  int     // number of vertical edges (derived) == (Nx+1)*Ny
	Nhor   int     // number of horizontal edges (derived) == Nx*(Ny+1)
	Nedge  int     // total number of edges (derived)
	Ncell  int     // number of cells (derived)
}

// NewGrid creates a grid with nx by ny cells
func NewGrid(nx, ny int, lx, ly float64) (o *Grid) {
	if nx < 1 || ny < 1 {
		chk.Panic("grid needs at least 1x1 cells. nx=%d, ny=%d is invalid", nx, ny)
	}
	o = new(Grid)
	o.Kind = KindEdgeMidpoint
	o.Nx, o.Ny = nx, ny
	o.Lx, o.Ly = lx, ly
	o.Hx = lx / float64(nx)
	o.Hy = ly / float64(ny)
	o.Nvert = (nx + 1) * ny
	o.Nhor = nx * (ny + 1)
	o.Nedge = o.Nvert + o.Nhor
	o.Ncell = nx * ny
	return
}

// Refine returns the grid with both cell counts doubled
func (o *Grid) Refine() *Grid {
	return NewGrid(2*o.Nx, 2*o.Ny, o.Lx, o.Ly)
}

// Aspect returns the cell aspect ratio, always >= 1
func (o *Grid) Aspect() float64 {
	if o.Hx > o.Hy {
		return o.Hx / o.Hy
	}
	return o.Hy / o.Hx
}

// VertEdge returns the id of the vertical edge on line x = i*Hx within cell
// row j. i in [0,Nx], j in [0,Ny-1]
func (o *Grid) VertEdge(i, j int) int {
	return j*(o.Nx+1) + i
}

// HorEdge returns the id of the horizontal edge on line y = j*Hy within cell
// column i. i in [0,Nx-1], j in [0,Ny]
func (o *Grid) HorEdge(i, j int) int {
	return o.Nvert + j*o.Nx + i
}

// Cell returns the id of cell (i,j). i in [0,Nx-1], j in [0,Ny-1]
func (o *Grid) Cell(i, j int) int {
	return j*o.Nx + i
}

// CellEdges returns the 4 edges of cell (i,j) in local order B,R,T,L
func (o *Grid) CellEdges(i, j int) (edges [4]int) {
	edges[0] = o.HorEdge(i, j)
	edges[1] = o.VertEdge(i+1, j)
	edges[2] = o.HorEdge(i, j+1)
	edges[3] = o.VertEdge(i, j)
	return
}

// IsVert tells whether edge e is vertical
func (o *Grid) IsVert(e int) bool {
	return e < o.Nvert
}

// EdgeIndices returns the (i,j) indices of edge e within its numbering block
func (o *Grid) EdgeIndices(e int) (i, j int) {
	if e < o.Nvert {
		return e % (o.Nx + 1), e / (o.Nx + 1)
	}
	k := e - o.Nvert
	return k % o.Nx, k / o.Nx
}

// EdgeMid returns the physical coordinates of the midpoint of edge e
func (o *Grid) EdgeMid(e int) (x, y float64) {
	i, j := o.EdgeIndices(e)
	if o.IsVert(e) {
		return float64(i) * o.Hx, (float64(j) + 0.5) * o.Hy
	}
	return (float64(i) + 0.5) * o.Hx, float64(j) * o.Hy
}

// OnBoundary tells whether edge e lies on the domain boundary
func (o *Grid) OnBoundary(e int) bool {
	i, j := o.EdgeIndices(e)
	if o.IsVert(e) {
		return i == 0 || i == o.Nx
	}
	return j == 0 || j == o.Ny
}

// Side returns the boundary side of edge e: "left", "right", "bottom", "top"
// or "" for interior edges
func (o *Grid) Side(e int) string {
	i, j := o.EdgeIndices(e)
	if o.IsVert(e) {
		switch i {
		case 0:
			return "left"
		case o.Nx:
			return "right"
		}
		return ""
	}
	switch j {
	case 0:
		return "bottom"
	case o.Ny:
		return "top"
	}
	return ""
}
