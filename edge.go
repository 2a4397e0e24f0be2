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

package wireframe

// Point3 is a position in world space.
type Point3 struct {
	X, Y, Z float64
}

// Vertex is one end of an edge.
type Vertex struct {
	World Point3 // world-space position

	X, Y  int     // projected screen position (column, absolute row)
	Depth float64 // screen-space depth, larger is farther from the viewer
}

// Edge is a line segment in screen space together with the state needed to
// draw it incrementally, one row per call.
//
// Projectors must leave P1 as the top vertex, i.e. P1.Y <= P2.Y; Orient
// establishes this.
type Edge struct {
	P1, P2 Vertex

	// IZ is the depth key used to order overlapping active edges.
	// Larger values are farther away and are drawn first, so that nearer
	// edges overwrite them.
	IZ int

	Color Color

	// draw state, reset whenever the edge is activated
	drawX  int // current column of the drawing cursor
	drawDX int // |x2 - drawX| at activation
	drawDY int // |y2 - y| at activation
	drawE  int // error accumulator
	drawSX int // horizontal step direction, +1 or -1
}

// Orient swaps the vertices if necessary, so that P1 is the top vertex.
func (e *Edge) Orient() {
	if e.P2.Y < e.P1.Y {
		e.P1, e.P2 = e.P2, e.P1
	}
}

// Hide parks the edge above every output row, so that it is never
// activated.
func (e *Edge) Hide() {
	e.P1.Y = hiddenRow
	e.P2.Y = hiddenRow
}

// hiddenRow is the screen row used for edges which cannot be seen.
const hiddenRow = -1

// A Projector computes the screen-space form of edges from world data.
//
// Project must be idempotent and may be called for the edges of a frame in
// any order and any number of times, until the frame's sort phase begins.
// It must set both vertices, the depth key and the colour of *e, and leave
// the edge oriented (see Edge.Orient).  Rows are absolute output rows, so
// the edges of player p must lie in that player's row region to be drawn.
type Projector interface {
	// NumEdges returns the number of edges in the current frame.
	// The value is read once per player at the start of its region.
	NumEdges() int

	// Project computes edge i of the given player.
	Project(player, i int, e *Edge)
}
