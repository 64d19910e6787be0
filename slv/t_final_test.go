// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slv

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/goflow/prb"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func trans(a [][]float64) (t [][]float64) {
	m, n := len(a), len(a[0])
	t = la.MatAlloc(n, m)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			t[j][i] = a[i][j]
		}
	}
	return
}

func Test_fin01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fin01. transposed coupling pair round trip")

	box := prb.Cavity(3, 2, 1, 1, 1, func(x float64) float64 { return 1 })
	levs := box.Levels()
	lev := levs[0]
	lev.Ebc.ApplyK(lev.K)
	b1 := lev.K.B1.Dense()
	b2 := lev.K.B2.Dense()

	Finalize(levs)
	if lev.K.D1 == nil || lev.K.D2 == nil {
		tst.Errorf("transposed pair was not built")
		return
	}
	chk.Deep2(tst, "D1 = B1^T", 1e-17, lev.K.D1.Dense(), trans(b1))
	chk.Deep2(tst, "D2 = B2^T", 1e-17, lev.K.D2.Dense(), trans(b2))
	if !lev.K.D2.SharesStructWith(lev.K.D1) {
		tst.Errorf("D2 must share D1's structure")
		return
	}
	if lev.K.D2.SharesValuesWith(lev.K.D1) {
		tst.Errorf("D2 must own its values")
		return
	}

	// already-finalized levels are left alone
	d1 := lev.K.D1
	Finalize(levs)
	if lev.K.D1 != d1 {
		tst.Errorf("second Finalize must not rebuild the pair")
		return
	}

	// restoring round trip is bit-exact
	Unfinalize(levs, true)
	if lev.K.D1 != nil || lev.K.D2 != nil {
		tst.Errorf("transposed pair was not dropped")
		return
	}
	chk.Deep2(tst, "B1 restored", 1e-17, lev.K.B1.Dense(), b1)
	chk.Deep2(tst, "B2 restored", 1e-17, lev.K.B2.Dense(), b2)

	// without restore the blocks are simply kept
	Finalize(levs)
	Unfinalize(levs, false)
	if lev.K.D1 != nil {
		tst.Errorf("transposed pair was not dropped")
		return
	}
	chk.Deep2(tst, "B1 kept", 1e-17, lev.K.B1.Dense(), b1)
}
