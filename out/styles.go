// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// Styles
type Styles []plt.Fmt

// CurveStyles cycles over the residual-curve formats
var CurveStyles = Styles{
	{C: "b", Ls: "-", M: "o"},
	{C: "r", Ls: "-", M: "s"},
	{C: "g", Ls: "-", M: "*"},
	{C: "m", Ls: "-", M: "+"},
	{C: "c", Ls: "-", M: "^"},
}

// GetProfileStyles returns one labelled format per section station
func GetProfileStyles(stations []float64) Styles {
	sty := make([]plt.Fmt, len(stations))
	for i, xs := range stations {
		sty[i] = CurveStyles[i%len(CurveStyles)]
		sty[i].L = io.Sf("x=%v", xs)
	}
	return sty
}

func GetTexLabel(key, unit string) string {
	l := "$"
	switch key {
	case "iter":
		l += "iteration"
	case "u":
		l += "u"
	case "v":
		l += "v"
	case "p":
		l += "p"
	case "restot":
		l += "\\log_{10}(res_{TOT})"
	case "resu":
		l += "res_U"
	case "resdiv":
		l += "res_{DIV}"
	case "rho":
		l += "\\varrho"
	case "omega":
		l += "\\omega"
	case "nit":
		l += "n_{iterations}"
	default:
		l += key
	}
	if unit != "" {
		l += "\\;" + unit
	}
	l += "$"
	return l
}
