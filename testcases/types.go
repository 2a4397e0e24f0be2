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

// Package testcases holds the scenes used to test and demonstrate the
// wireframe renderer.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name  string // lowercase a-z and _ only
	Scene Scene
}

// Scene is the geometry shown by a test case.
type Scene interface {
	isScene()
}

// Wire is a scene of world-space line segments, seen by one camera per
// player.
type Wire struct {
	Lines []Line
	Eyes  []Eye // one per player
}

func (Wire) isScene() {}

// Flat is a 2-D outline, drawn identically in every player region.
type Flat struct {
	Path  *path.Data
	CTM   matrix.Matrix // zero-value means identity
	Color RGB
}

func (Flat) isScene() {}

// Line is a coloured segment in world space.  The y axis points up.
type Line struct {
	A, B  [3]float64
	Color RGB
}

// Eye is the position and viewing direction of a player.
type Eye struct {
	Pos [3]float64
	Yaw float64 // radians, from +z towards +x
}

// RGB is an 8-bit-per-channel colour.
type RGB struct {
	R, G, B uint8
}

// Colours used by the scenes.
var (
	White  = RGB{0xff, 0xff, 0xff}
	Red    = RGB{0xff, 0x20, 0x20}
	Green  = RGB{0x20, 0xff, 0x20}
	Blue   = RGB{0x40, 0x60, 0xff}
	Yellow = RGB{0xff, 0xe0, 0x20}
)

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
