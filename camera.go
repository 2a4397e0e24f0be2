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

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Segment is a coloured line segment in world space.
// The world y axis points up.
type Segment struct {
	A, B  Point3
	Color Color
}

// View is the camera of one player.
type View struct {
	// Eye is the position of the viewer.
	Eye Point3

	// Yaw is the viewing direction in radians, measured from the +z axis
	// towards the +x axis.
	Yaw float64

	// Focal is the distance of the image plane, in units of half the
	// viewport width.  A value of 1 gives a 90° horizontal field of view.
	Focal float64

	// Viewport is the screen area, in absolute output rows, which the
	// image plane is mapped to.
	Viewport rect.Rect
}

// Camera is a Projector which shows a list of world-space segments in
// perspective, one View per player.
type Camera struct {
	Segments []Segment
	Views    []View

	// Near is the distance of the near clipping plane.  Segments are cut
	// where they cross it; segments entirely behind it are hidden.
	Near float64

	// DepthScale converts view-space depth to depth keys.
	DepthScale float64
}

// Default values for camera parameters.
const (
	defaultNear       = 0.1
	defaultDepthScale = 16
)

// NewCamera returns a camera showing segs, with one view per player of
// cfg.  Each view looks along +z from the origin and covers the drawn rows
// of its player region.
func NewCamera(cfg *Config, segs []Segment) *Camera {
	c := &Camera{
		Segments:   segs,
		Views:      make([]View, cfg.Players),
		Near:       defaultNear,
		DepthScale: defaultDepthScale,
	}
	for p := range c.Views {
		c.Views[p] = View{
			Focal: 1,
			Viewport: rect.Rect{
				LLx: 0,
				LLy: float64(p*cfg.RowsPerPlayer + HeaderRows),
				URx: float64(cfg.Width),
				URy: float64((p + 1) * cfg.RowsPerPlayer),
			},
		}
	}
	return c
}

// NumEdges implements the Projector interface.
func (c *Camera) NumEdges() int {
	return len(c.Segments)
}

// Project implements the Projector interface.
func (c *Camera) Project(player, i int, e *Edge) {
	seg := &c.Segments[i]
	v := &c.Views[player]

	e.P1 = Vertex{World: seg.A}
	e.P2 = Vertex{World: seg.B}
	e.Color = seg.Color

	a := v.toView(seg.A)
	b := v.toView(seg.B)
	switch {
	case a.Z < c.Near && b.Z < c.Near:
		e.IZ = 0
		e.Hide()
		return
	case a.Z < c.Near:
		a = clipNear(a, b, c.Near)
	case b.Z < c.Near:
		b = clipNear(b, a, c.Near)
	}

	m := v.screenMatrix()
	e.P1.X, e.P1.Y = toScreen(m, v.imagePlane(a))
	e.P1.Depth = a.Z
	e.P2.X, e.P2.Y = toScreen(m, v.imagePlane(b))
	e.P2.Depth = b.Z
	e.IZ = int(math.Round(c.DepthScale * (a.Z + b.Z) / 2))
	e.Orient()
}

// toView converts a world position to view space, where the viewer looks
// along +z.
func (v *View) toView(p Point3) Point3 {
	dx := p.X - v.Eye.X
	dy := p.Y - v.Eye.Y
	dz := p.Z - v.Eye.Z
	sin, cos := math.Sincos(v.Yaw)
	return Point3{
		X: cos*dx - sin*dz,
		Y: dy,
		Z: sin*dx + cos*dz,
	}
}

// imagePlane projects a view-space point with positive depth onto the
// image plane.
func (v *View) imagePlane(p Point3) vec.Vec2 {
	return vec.Vec2{
		X: v.Focal * p.X / p.Z,
		Y: v.Focal * p.Y / p.Z,
	}
}

// screenMatrix maps the image plane to the viewport: the origin goes to the
// viewport centre, ±1 horizontally to the viewport edges, and the y axis
// is flipped.
func (v *View) screenMatrix() matrix.Matrix {
	r := v.Viewport
	hw := (r.URx - r.LLx) / 2
	return matrix.Matrix{hw, 0, 0, -hw, (r.LLx + r.URx) / 2, (r.LLy + r.URy) / 2}
}

// toScreen applies m to p and rounds to the nearest pixel.
func toScreen(m matrix.Matrix, p vec.Vec2) (x, y int) {
	fx := m[0]*p.X + m[2]*p.Y + m[4]
	fy := m[1]*p.X + m[3]*p.Y + m[5]
	return int(math.Round(fx)), int(math.Round(fy))
}

// clipNear moves p, which lies between the viewer and the near plane, along the
// segment towards q until it lies on the plane.
func clipNear(p, q Point3, near float64) Point3 {
	t := (near - p.Z) / (q.Z - p.Z)
	return Point3{
		X: p.X + t*(q.X-p.X),
		Y: p.Y + t*(q.Y-p.Y),
		Z: near,
	}
}
