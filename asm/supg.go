// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"math"

	"github.com/cpmech/goflow/shp"
	"github.com/cpmech/goflow/sys"
)

// StreamDiff implements streamline-diffusion (SUPG) stabilized convection.
// Dupsam controls the amount of diffusion added along streamlines; Dupsam=0
// degenerates to the plain central Galerkin discretization.
type StreamDiff struct {
	gam    float64
	nu     float64
	dupsam float64
}

func init() {
	stballocators["supg"] = func() Stabilization { return new(StreamDiff) }
}

// Init sets the equation weights and the streamline-diffusion parameter
func (o *StreamDiff) Init(eq CoreEquation, dupsam, djump float64) {
	o.gam = eq.Gamma
	o.nu = eq.Nu
	o.dupsam = dupsam
}

// AddMatrix accumulates Gamma*N(w) plus the streamline term into a
func (o *StreamDiff) AddMatrix(g *sys.Grid, a *sys.Matrix, w []float64) {
	if o.gam == 0 {
		return
	}
	wu, wv := w[:g.Nedge], w[g.Nedge:2*g.Nedge]
	var wu4, wv4 [4]float64
	var c [4][4]float64
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			eds := g.CellEdges(i, j)
			for m := 0; m < 4; m++ {
				wu4[m] = wu[eds[m]]
				wv4[m] = wv[eds[m]]
			}
			δ := o.delta(g, &wu4, &wv4)
			cellConv(&c, g, &wu4, &wv4, δ)
			for m := 0; m < 4; m++ {
				for n := 0; n < 4; n++ {
					a.Put(eds[m], eds[n], o.gam*c[m][n])
				}
			}
		}
	}
}

// AddDefect accumulates coef*Gamma*N(w)*x into y for both components
func (o *StreamDiff) AddDefect(g *sys.Grid, w, x, y []float64, coef float64) {
	if o.gam == 0 {
		return
	}
	wu, wv := w[:g.Nedge], w[g.Nedge:2*g.Nedge]
	var wu4, wv4, xl [4]float64
	var c [4][4]float64
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			eds := g.CellEdges(i, j)
			for m := 0; m < 4; m++ {
				wu4[m] = wu[eds[m]]
				wv4[m] = wv[eds[m]]
			}
			δ := o.delta(g, &wu4, &wv4)
			cellConv(&c, g, &wu4, &wv4, δ)
			for comp := 0; comp < 2; comp++ {
				off := comp * g.Nedge
				for m := 0; m < 4; m++ {
					xl[m] = x[off+eds[m]]
				}
				for m := 0; m < 4; m++ {
					sum := 0.0
					for n := 0; n < 4; n++ {
						sum += c[m][n] * xl[n]
					}
					y[off+eds[m]] += coef * o.gam * sum
				}
			}
		}
	}
}

// ExtraPattern returns nil: the cellwise stencil stays inside the diffusion
// pattern
func (o *StreamDiff) ExtraPattern(g *sys.Grid) *sys.Matrix {
	return nil
}

// delta computes the local streamline-diffusion weight of one cell from the
// norm of the mean velocity and the local grid Peclet number
func (o *StreamDiff) delta(g *sys.Grid, wu4, wv4 *[4]float64) float64 {
	if o.dupsam == 0 {
		return 0
	}
	ubar := (wu4[0] + wu4[1] + wu4[2] + wu4[3]) / 4.0
	vbar := (wv4[0] + wv4[1] + wv4[2] + wv4[3]) / 4.0
	unorm := math.Sqrt(ubar*ubar + vbar*vbar)
	if unorm <= 1e-8 {
		return 0
	}
	ht := math.Sqrt(g.Hx * g.Hy)
	reloc := unorm * ht / (2.0 * o.nu)
	if reloc > 1 {
		reloc = 1
	}
	return o.dupsam * ht / (2.0 * unorm) * reloc
}

// cellConv computes the local convection matrix of one cell at the frozen
// local velocity (wu4, wv4) by 2x2 Gauss quadrature:
//   c[m][n] = ∫ (w·∇Sn) Sm + δ (w·∇Sm)(w·∇Sn) dΩ
func cellConv(c *[4][4]float64, g *sys.Grid, wu4, wv4 *[4]float64, δ float64) {
	var s, dξ, dη [4]float64
	var gx, gy, cv [4]float64
	for m := 0; m < 4; m++ {
		for n := 0; n < 4; n++ {
			c[m][n] = 0
		}
	}
	wq := g.Hx * g.Hy / 4.0
	for _, pt := range shp.GaussPts {
		shp.Func(s[:], pt[0], pt[1])
		shp.Deriv(dξ[:], dη[:], pt[0], pt[1])
		wx := shp.Eval(wu4[:], pt[0], pt[1])
		wy := shp.Eval(wv4[:], pt[0], pt[1])
		for n := 0; n < 4; n++ {
			gx[n] = dξ[n] * 2.0 / g.Hx
			gy[n] = dη[n] * 2.0 / g.Hy
			cv[n] = wx*gx[n] + wy*gy[n]
		}
		for m := 0; m < 4; m++ {
			for n := 0; n < 4; n++ {
				c[m][n] += wq * (cv[n]*s[m] + δ*cv[m]*cv[n])
			}
		}
	}
}
