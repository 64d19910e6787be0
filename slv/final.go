// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slv

import (
	"github.com/cpmech/goflow/sys"
)

// Finalize gives every level a physically transposed pair of continuity
// blocks: D1 holds transpose(B1) with its own structure and data, and D2
// shares D1's structure while holding transpose(B2) values. Levels already
// carrying the pair are left alone.
func Finalize(levs []*sys.Level) {
	for _, lev := range levs {
		K := lev.K
		if K.D1 != nil {
			continue
		}
		K.D1 = K.B1.Transpose()
		K.D2 = K.D1.Clone(sys.DupShareStruct)
		K.B2.TransposeInto(K.D2)
	}
}

// Unfinalize drops the transposed pair, returning the levels to the virtual
// transpose form the assembly routines operate on. With restore, B1 and B2
// are first rebuilt from the pair, making the round trip bit-exact.
func Unfinalize(levs []*sys.Level, restore bool) {
	for _, lev := range levs {
		K := lev.K
		if K.D1 == nil {
			continue
		}
		if restore {
			K.D1.TransposeInto(K.B1)
			K.D2.TransposeInto(K.B2)
		}
		K.D1 = nil
		K.D2 = nil
	}
}
