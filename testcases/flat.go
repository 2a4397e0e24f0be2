// seehuhn.de/go/wireframe - a scanline wireframe renderer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package testcases

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
)

var flatCases = []TestCase{
	{
		Name:  "triangle",
		Scene: Flat{Path: triangle(100, 200, 320, 30, 540, 200), Color: White},
	},
	{
		Name:  "star",
		Scene: Flat{Path: fivePointStar(320, 120, 90), Color: Yellow},
	},
	{
		Name:  "rectangle",
		Scene: Flat{Path: rectangle(40, 40, 600, 200), Color: Green},
	},
	{
		Name:  "offscreen",
		Scene: Flat{Path: rectangle(-50, 60, 700, 180), Color: Red},
	},
	{
		Name: "scaled_star",
		Scene: Flat{
			Path:  fivePointStar(0, 0, 1),
			CTM:   matrix.Matrix{200, 0, 0, 100, 320, 120},
			Color: Blue,
		},
	},
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) *path.Data {
	p := &path.Data{}
	order := []int{0, 2, 4, 1, 3}
	for k, i := range order {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		v := pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
		if k == 0 {
			p = p.MoveTo(v)
		} else {
			p = p.LineTo(v)
		}
	}
	return p.Close()
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}
