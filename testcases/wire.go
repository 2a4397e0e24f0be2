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

import "math"

var wireCases = []TestCase{
	{
		Name: "cube",
		Scene: Wire{
			Lines: cube([3]float64{0, 0, 4}, 1, White),
			Eyes: []Eye{
				{},
				{Pos: [3]float64{1.5, 0.5, 0}, Yaw: -0.3},
			},
		},
	},
	{
		Name: "tetrahedron",
		Scene: Wire{
			Lines: tetrahedron([3]float64{0, 0, 3}, 1.2),
			Eyes: []Eye{
				{},
				{Pos: [3]float64{0, 1, 0}},
			},
		},
	},
	{
		Name: "grid",
		Scene: Wire{
			Lines: floorGrid(-1, 8, 1, Green),
			Eyes: []Eye{
				{Pos: [3]float64{0, 0, -1}},
				{Pos: [3]float64{0, 0.5, -1}, Yaw: math.Pi / 6},
			},
		},
	},
	{
		Name: "behind",
		Scene: Wire{
			Lines: []Line{
				{A: [3]float64{1, -1, -2}, B: [3]float64{1, -1, 6}, Color: Yellow},
				{A: [3]float64{-1, -1, -2}, B: [3]float64{-1, -1, 6}, Color: Yellow},
				{A: [3]float64{-3, 1, -1}, B: [3]float64{3, 1, -1}, Color: Red},
			},
			Eyes: []Eye{
				{},
				{Yaw: math.Pi},
			},
		},
	},
	{
		Name: "crowd",
		Scene: Wire{
			Lines: scatter(64, 1),
			Eyes: []Eye{
				{},
				{Pos: [3]float64{0, 0, -2}},
			},
		},
	},
}

// cube returns the twelve edges of an axis-aligned cube.
func cube(c [3]float64, r float64, col RGB) []Line {
	corner := func(i int) [3]float64 {
		p := c
		for k := range 3 {
			if i&(1<<k) != 0 {
				p[k] += r
			} else {
				p[k] -= r
			}
		}
		return p
	}

	var lines []Line
	for i := range 8 {
		for k := range 3 {
			if j := i | 1<<k; j != i {
				lines = append(lines, Line{A: corner(i), B: corner(j), Color: col})
			}
		}
	}
	return lines
}

// tetrahedron returns the six edges of a regular tetrahedron, one colour
// per pair of opposite edges.
func tetrahedron(c [3]float64, r float64) []Line {
	v := [4][3]float64{
		{c[0] + r, c[1] + r, c[2] + r},
		{c[0] + r, c[1] - r, c[2] - r},
		{c[0] - r, c[1] + r, c[2] - r},
		{c[0] - r, c[1] - r, c[2] + r},
	}
	return []Line{
		{A: v[0], B: v[1], Color: Red},
		{A: v[2], B: v[3], Color: Red},
		{A: v[0], B: v[2], Color: Green},
		{A: v[1], B: v[3], Color: Green},
		{A: v[0], B: v[3], Color: Blue},
		{A: v[1], B: v[2], Color: Blue},
	}
}

// floorGrid returns a square grid of lines in the plane y, centred on the
// z axis in front of the origin.
func floorGrid(y float64, n int, step float64, col RGB) []Line {
	var lines []Line
	half := float64(n) * step / 2
	for i := 0; i <= n; i++ {
		t := -half + float64(i)*step
		lines = append(lines,
			Line{A: [3]float64{t, y, 0}, B: [3]float64{t, y, 2 * half}, Color: col},
			Line{A: [3]float64{-half, y, half + t}, B: [3]float64{half, y, half + t}, Color: col},
		)
	}
	return lines
}

// scatter returns n pseudo-random segments in front of the origin.
// The same seed always gives the same segments.
func scatter(n int, seed uint32) []Line {
	state := seed
	next := func() float64 {
		state = state*1664525 + 1013904223
		return float64(state>>8) / (1 << 24)
	}
	colors := []RGB{White, Red, Green, Blue, Yellow}

	lines := make([]Line, n)
	for i := range lines {
		a := [3]float64{4*next() - 2, 3*next() - 1.5, 2 + 6*next()}
		b := [3]float64{a[0] + 2*next() - 1, a[1] + 2*next() - 1, a[2] + 2*next() - 1}
		lines[i] = Line{A: a, B: b, Color: colors[i%len(colors)]}
	}
	return lines
}
