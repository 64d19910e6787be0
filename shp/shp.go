// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements the reference shape functions of the rotated
// bilinear quadrilateral. Velocity degrees of freedom sit on edge midpoints
// and both velocity components share every edge; pressure is piecewise
// constant per cell. The basis on the natural square [-1,1]x[-1,1] is
//   span{ 1, ξ, η, ξ²-η² }
// with nodal values at the four edge midpoints.
package shp

// local edge numbering within one cell
const (
	B = 0 // bottom edge, midpoint at (0,-1)
	R = 1 // right edge, midpoint at (+1,0)
	T = 2 // top edge, midpoint at (0,+1)
	L = 3 // left edge, midpoint at (-1,0)
)

// NatCoords holds the natural coordinates of the edge midpoints
var NatCoords = [4][2]float64{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// GaussPts holds the 2x2 Gauss quadrature points (all weights are 1 in
// natural coordinates; the physical weight is hx*hy/4)
var GaussPts = [4][2]float64{
	{-0.57735026918962573, -0.57735026918962573},
	{+0.57735026918962573, -0.57735026918962573},
	{-0.57735026918962573, +0.57735026918962573},
	{+0.57735026918962573, +0.57735026918962573},
}

// Func computes the 4 midpoint-value basis functions at natural coordinates
func Func(s []float64, ξ, η float64) {
	d := (ξ*ξ - η*η) / 4.0
	s[B] = 0.25 - η/2.0 - d
	s[R] = 0.25 + ξ/2.0 + d
	s[T] = 0.25 + η/2.0 - d
	s[L] = 0.25 - ξ/2.0 + d
}

// Deriv computes the natural derivatives dS/dξ and dS/dη of the basis
func Deriv(dξ, dη []float64, ξ, η float64) {
	dξ[B], dη[B] = -ξ/2.0, -0.5+η/2.0
	dξ[R], dη[R] = 0.5+ξ/2.0, -η/2.0
	dξ[T], dη[T] = -ξ/2.0, 0.5+η/2.0
	dξ[L], dη[L] = -0.5+ξ/2.0, -η/2.0
}

// Eval interpolates nodal values u4 (edge-midpoint values of one cell,
// ordered B,R,T,L) at natural coordinates
func Eval(u4 []float64, ξ, η float64) float64 {
	var s [4]float64
	Func(s[:], ξ, η)
	return s[B]*u4[B] + s[R]*u4[R] + s[T]*u4[T] + s[L]*u4[L]
}

// closed-form reference integrals /////////////////////////////////////////////////////////////////

// aξ[m][n] = ∫ (dSm/dξ)(dSn/dξ) dξdη and aη likewise; exact for this basis
var aξ = [4][4]float64{
	{+1.0 / 3.0, -1.0 / 3.0, +1.0 / 3.0, -1.0 / 3.0},
	{-1.0 / 3.0, +4.0 / 3.0, -1.0 / 3.0, -2.0 / 3.0},
	{+1.0 / 3.0, -1.0 / 3.0, +1.0 / 3.0, -1.0 / 3.0},
	{-1.0 / 3.0, -2.0 / 3.0, -1.0 / 3.0, +4.0 / 3.0},
}

var aη = [4][4]float64{
	{+4.0 / 3.0, -1.0 / 3.0, -2.0 / 3.0, -1.0 / 3.0},
	{-1.0 / 3.0, +1.0 / 3.0, -1.0 / 3.0, +1.0 / 3.0},
	{-2.0 / 3.0, -1.0 / 3.0, +4.0 / 3.0, -1.0 / 3.0},
	{-1.0 / 3.0, +1.0 / 3.0, -1.0 / 3.0, +1.0 / 3.0},
}

// mref[m][n] = ∫ Sm Sn dξdη
var mref = [4][4]float64{
	{113.0 / 180.0, 37.0 / 180.0, -7.0 / 180.0, 37.0 / 180.0},
	{37.0 / 180.0, 113.0 / 180.0, 37.0 / 180.0, -7.0 / 180.0},
	{-7.0 / 180.0, 37.0 / 180.0, 113.0 / 180.0, 37.0 / 180.0},
	{37.0 / 180.0, -7.0 / 180.0, 37.0 / 180.0, 113.0 / 180.0},
}

// StiffLoc computes the local stiffness (Laplace) matrix of one hx*hy cell:
//   k[m][n] = ∫ ∇Sm · ∇Sn dΩ
// Row sums vanish since constants belong to the basis.
func StiffLoc(k [][]float64, hx, hy float64) {
	cx, cy := hy/hx, hx/hy
	for m := 0; m < 4; m++ {
		for n := 0; n < 4; n++ {
			k[m][n] = cx*aξ[m][n] + cy*aη[m][n]
		}
	}
}

// MassLoc computes the local mass matrix of one hx*hy cell:
//   m[i][j] = ∫ Si Sj dΩ
func MassLoc(m [][]float64, hx, hy float64) {
	c := hx * hy / 4.0
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m[i][j] = c * mref[i][j]
		}
	}
}

// DivX[e]*hy = ∫ dSe/dx dΩ and DivY[e]*hx = ∫ dSe/dy dΩ over one hx*hy cell.
// Only the two edges normal to each direction contribute, exactly as in a
// finite-volume flux balance.
var (
	DivX = [4]float64{0, +1, 0, -1}
	DivY = [4]float64{-1, 0, +1, 0}
)

// tangential slopes ///////////////////////////////////////////////////////////////////////////////

// The tangential derivative of the interpolant along any vertical line is
// linear in η:  dS/dη · u = (EtaS·u) + η (EtaQ·u); along any horizontal line:
// dS/dξ · u = (XiS·u) + ξ (XiQ·u). These feed the edge-jump stabilization.
var (
	EtaS = [4]float64{-0.5, 0, +0.5, 0}
	EtaQ = [4]float64{+0.5, -0.5, +0.5, -0.5}
	XiS  = [4]float64{0, +0.5, 0, -0.5}
	XiQ  = [4]float64{-0.5, +0.5, -0.5, +0.5}
)
