// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prb builds the discrete flow problems: refinement hierarchies on
// rectangular boxes with Dirichlet velocities taken from boundary profiles.
// The benchmark families (driven cavity, wall-bounded channel) are thin
// wrappers over the generic box description.
package prb

import (
	"github.com/cpmech/goflow/sys"
	"github.com/cpmech/gosl/chk"
)

// Box describes one rectangular problem family. Ubc/Vbc are evaluated at
// every boundary edge midpoint except those on FreeSide, which keep their
// natural (do-nothing) condition.
type Box struct {
	Nxc, Nyc int     // coarsest grid divisions
	Nl       int     // number of levels, 2:1 refined
	Lx, Ly   float64 // box dimensions
	FreeSide string  // natural side ("" = fully enclosed)
	SplitXY  bool    // force A22 to own its values
	Ubc, Vbc func(side string, x, y float64) float64
	Extra    func(*sys.Grid) *sys.Matrix // extended coupling pattern, may be nil
}

// Levels builds the hierarchy, coarsest first
func (o *Box) Levels() (levs []*sys.Level) {
	if o.Nxc < 2 || o.Nyc < 2 {
		chk.Panic("coarsest grid must have at least 2x2 cells. %dx%d is invalid", o.Nxc, o.Nyc)
	}
	if o.Nl < 1 {
		chk.Panic("hierarchy needs at least one level. Nl=%d is invalid", o.Nl)
	}
	levs = make([]*sys.Level, o.Nl)
	g := sys.NewGrid(o.Nxc, o.Nyc, o.Lx, o.Ly)
	for l := 0; l < o.Nl; l++ {
		if l > 0 {
			g = g.Refine()
		}
		ebc := sys.NewEssentialBcs(g, o.FreeSide != "")
		ebc.ForceSplit = o.SplitXY
		for e := 0; e < g.Nedge; e++ {
			side := g.Side(e)
			if side == "" || side == o.FreeSide {
				continue
			}
			x, y := g.EdgeMid(e)
			ebc.SetU(e, o.Ubc(side, x, y))
			ebc.SetV(e, o.Vbc(side, x, y))
		}
		var extra *sys.Matrix
		if o.Extra != nil {
			extra = o.Extra(g)
		}
		st, m, b1, b2 := Operators(g)
		levs[l] = sys.NewLevel(l, g, st, m, b1, b2, ebc, extra)
	}
	return
}

// zero is the no-slip profile
func zero(side string, x, y float64) float64 { return 0 }

// Cavity returns the lid-driven cavity: walls everywhere, the top boundary
// sliding with the given lid profile
func Cavity(nxc, nyc, nl int, lx, ly float64, lid func(x float64) float64) *Box {
	return &Box{
		Nxc: nxc, Nyc: nyc, Nl: nl, Lx: lx, Ly: ly,
		Ubc: func(side string, x, y float64) float64 {
			if side == "top" {
				return lid(x)
			}
			return 0
		},
		Vbc: zero,
	}
}

// Channel returns the wall-bounded channel: parabolic inflow with peak umax
// on the left, walls top and bottom, natural outflow on the right
func Channel(nxc, nyc, nl int, lx, ly float64, umax float64) *Box {
	return &Box{
		Nxc: nxc, Nyc: nyc, Nl: nl, Lx: lx, Ly: ly,
		FreeSide: "right",
		Ubc: func(side string, x, y float64) float64 {
			if side == "left" {
				return 4 * umax * y * (ly - y) / (ly * ly)
			}
			return 0
		},
		Vbc: zero,
	}
}
