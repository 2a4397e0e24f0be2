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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// outlineSeg is a line segment in device coordinates, relative to the top
// of a player region.
type outlineSeg struct {
	a, b vec.Vec2
}

// Outline is a Projector which draws the outline of a 2-D path, the same
// in every player region.  Curves are flattened into line segments.
type Outline struct {
	// CTM maps path coordinates to device coordinates, with row 0 at the
	// top of a player region.
	CTM matrix.Matrix

	// Flatness is the curve flattening tolerance in device pixels.
	Flatness float64

	// Color is the colour of all edges.
	Color Color

	// Depth is the depth key of all edges.
	Depth int

	// RowsPerPlayer is the row offset between player regions.
	RowsPerPlayer int

	segs []outlineSeg
}

// defaultFlatness is the default curve flattening tolerance in device
// pixels.
const defaultFlatness = 0.25

// NewOutline returns a projector for the outline of p, placed in every
// player region of cfg by ctm.
func NewOutline(cfg *Config, ctm matrix.Matrix, p *path.Data, c Color) *Outline {
	o := &Outline{
		CTM:           ctm,
		Flatness:      defaultFlatness,
		Color:         c,
		RowsPerPlayer: cfg.RowsPerPlayer,
	}
	o.SetPath(p)
	return o
}

// SetPath replaces the outline.  CTM and Flatness must be set before.
// Degenerate subpaths of a single point produce no edges.
func (o *Outline) SetPath(p *path.Data) {
	o.segs = o.segs[:0]

	var current vec.Vec2 // current point (user space)
	var subpath vec.Vec2 // subpath start (user space)

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[coordIdx]
			subpath = current
			coordIdx++

		case path.CmdLineTo:
			o.addSeg(current, p.Coords[coordIdx])
			current = p.Coords[coordIdx]
			coordIdx++

		case path.CmdQuadTo:
			o.flattenQuadratic(current, p.Coords[coordIdx], p.Coords[coordIdx+1])
			current = p.Coords[coordIdx+1]
			coordIdx += 2

		case path.CmdCubeTo:
			o.flattenCubic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2])
			current = p.Coords[coordIdx+2]
			coordIdx += 3

		case path.CmdClose:
			if current != subpath {
				o.addSeg(current, subpath)
			}
			current = subpath
		}
	}
}

// NumEdges implements the Projector interface.
func (o *Outline) NumEdges() int {
	return len(o.segs)
}

// Project implements the Projector interface.
func (o *Outline) Project(player, i int, e *Edge) {
	s := o.segs[i]
	offs := player * o.RowsPerPlayer

	e.P1 = Vertex{
		X: int(math.Round(s.a.X)),
		Y: int(math.Round(s.a.Y)) + offs,
	}
	e.P2 = Vertex{
		X: int(math.Round(s.b.X)),
		Y: int(math.Round(s.b.Y)) + offs,
	}
	e.IZ = o.Depth
	e.Color = o.Color
	e.Orient()
}

// addSeg adds a segment given in user space.
func (o *Outline) addSeg(p0, p1 vec.Vec2) {
	m := o.CTM
	o.segs = append(o.segs, outlineSeg{
		a: vec.Vec2{X: m[0]*p0.X + m[2]*p0.Y + m[4], Y: m[1]*p0.X + m[3]*p0.Y + m[5]},
		b: vec.Vec2{X: m[0]*p1.X + m[2]*p1.Y + m[4], Y: m[1]*p1.X + m[3]*p1.Y + m[5]},
	})
}

// transformLinear applies only the 2×2 linear part of CTM to a vector.
func (o *Outline) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: o.CTM[0]*v.X + o.CTM[2]*v.Y,
		Y: o.CTM[1]*v.X + o.CTM[3]*v.Y,
	}
}

// flattenQuadratic adds line segments approximating a quadratic Bézier
// curve with start p0, control p1 and end p2, all in user space.
func (o *Outline) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	// error vector e = (P0 - 2*P1 + P2) / 4, measured in device space
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	errDev := o.transformLinear(e).Length()

	n := 1
	if errDev > o.Flatness {
		n = int(math.Ceil(math.Sqrt(errDev / o.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		o.addSeg(prev, pt)
		prev = pt
	}
}

// flattenCubic adds line segments approximating a cubic Bézier curve.
func (o *Outline) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := o.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := o.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))

	// Wang's formula
	n := 1
	if mDev := max(d1.Length(), d2.Length()); mDev > 0 {
		if nFloat := math.Sqrt(3 * mDev / (4 * o.Flatness)); nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		o.addSeg(prev, pt)
		prev = pt
	}
}
