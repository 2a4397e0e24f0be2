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
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestOutlineTriangle(t *testing.T) {
	cfg := DefaultConfig()
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 10, Y: 10}).
		LineTo(vec.Vec2{X: 50, Y: 10}).
		LineTo(vec.Vec2{X: 30, Y: 40}).
		Close()
	o := NewOutline(cfg, matrix.Identity, p, white)
	if o.NumEdges() != 3 {
		t.Fatalf("got %d edges, want 3", o.NumEdges())
	}

	var e Edge
	o.Project(1, 1, &e)
	if e.P1.X != 50 || e.P1.Y != 250 || e.P2.X != 30 || e.P2.Y != 280 {
		t.Errorf("got %d,%d-%d,%d, want 50,250-30,280",
			e.P1.X, e.P1.Y, e.P2.X, e.P2.Y)
	}
	o.Project(0, 2, &e)
	if e.P1.Y > e.P2.Y {
		t.Error("edge not oriented")
	}
}

func TestOutlineClosedExplicitly(t *testing.T) {
	cfg := DefaultConfig()
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 0, Y: 10}).
		LineTo(vec.Vec2{X: 0, Y: 0}).
		Close()
	o := NewOutline(cfg, matrix.Identity, p, white)
	if o.NumEdges() != 3 {
		t.Errorf("got %d edges, want 3", o.NumEdges())
	}
}

func TestOutlineCTM(t *testing.T) {
	cfg := DefaultConfig()
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 10, Y: 10}).
		LineTo(vec.Vec2{X: 20, Y: 30})
	o := NewOutline(cfg, matrix.Matrix{2, 0, 0, 2, 5, 7}, p, white)

	var e Edge
	o.Project(0, 0, &e)
	if e.P1.X != 25 || e.P1.Y != 27 || e.P2.X != 45 || e.P2.Y != 67 {
		t.Errorf("got %d,%d-%d,%d, want 25,27-45,67",
			e.P1.X, e.P1.Y, e.P2.X, e.P2.Y)
	}
}

func checkChain(t *testing.T, o *Outline, from, to vec.Vec2) {
	t.Helper()
	n := len(o.segs)
	if n < 2 {
		t.Fatalf("curve flattened to %d segments", n)
	}
	if o.segs[0].a != from || o.segs[n-1].b != to {
		t.Errorf("chain runs from %v to %v, want %v to %v",
			o.segs[0].a, o.segs[n-1].b, from, to)
	}
	for i := 1; i < n; i++ {
		if o.segs[i].a != o.segs[i-1].b {
			t.Errorf("segment %d does not continue segment %d", i, i-1)
		}
	}
}

func TestOutlineQuadratic(t *testing.T) {
	cfg := DefaultConfig()
	p0 := vec.Vec2{X: 0, Y: 0}
	p1 := vec.Vec2{X: 50, Y: 100}
	p2 := vec.Vec2{X: 100, Y: 0}
	p := (&path.Data{}).MoveTo(p0).QuadTo(p1, p2)
	o := NewOutline(cfg, matrix.Identity, p, white)

	// deviation 50, flatness 0.25: ceil(sqrt(200)) segments
	if o.NumEdges() != 15 {
		t.Errorf("got %d segments, want 15", o.NumEdges())
	}
	checkChain(t, o, p0, p2)

	// the curve reaches y=50 at t=1/2
	top := 0.0
	for _, s := range o.segs {
		top = max(top, s.a.Y, s.b.Y)
	}
	if top < 49.5 || top > 50 {
		t.Errorf("highest point %g, want close to 50", top)
	}
}

func TestOutlineCubic(t *testing.T) {
	cfg := DefaultConfig()
	p0 := vec.Vec2{X: 0, Y: 0}
	p3 := vec.Vec2{X: 100, Y: 0}
	p := (&path.Data{}).
		MoveTo(p0).
		CubeTo(vec.Vec2{X: 0, Y: 100}, vec.Vec2{X: 100, Y: 100}, p3)
	o := NewOutline(cfg, matrix.Identity, p, white)
	checkChain(t, o, p0, p3)

	coarse := NewOutline(cfg, matrix.Identity, p, white)
	coarse.Flatness = 4
	coarse.SetPath(p)
	if coarse.NumEdges() >= o.NumEdges() {
		t.Errorf("flatness 4 gave %d segments, flatness 0.25 gave %d",
			coarse.NumEdges(), o.NumEdges())
	}
}

func TestOutlineRendered(t *testing.T) {
	cfg := DefaultConfig()
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 100, Y: 30}).
		LineTo(vec.Vec2{X: 200, Y: 30}).
		LineTo(vec.Vec2{X: 150, Y: 100}).
		Close()
	o := NewOutline(cfg, matrix.Identity, p, white)
	r, err := NewRenderer(cfg, o, nil)
	if err != nil {
		t.Fatal(err)
	}
	f := NewFrame(cfg.Width, cfg.Rows())
	r.RenderFrame(f)

	for player := range cfg.Players {
		offs := player * cfg.RowsPerPlayer
		if first, last := span(f.Row(offs + 30)); first != 100 || last != 200 {
			t.Errorf("player %d: top edge spans %d..%d, want 100..200", player, first, last)
		}
		if f.Row(offs + 100)[150] != white {
			t.Errorf("player %d: apex not drawn", player)
		}
		if first, last := span(f.Row(offs + 101)); first >= 0 {
			t.Errorf("player %d: pixels %d..%d below the apex", player, first, last)
		}
	}
}
