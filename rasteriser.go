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

import "math"

// Stats counts what the rasteriser did since the last call to Begin.
type Stats struct {
	Activated int // edges inserted into the active list
	Rejected  int // edges skipped because they lie outside the row
	Retired   int // edges removed after their bottom row
	MaxActive int // longest active list seen
}

// Rasteriser draws the edges of one player region, one row per call, using
// an active edge list held in a Ledger.
//
// Edges become active when the current row reaches their top row and are
// retired on their bottom row.  Active edges are drawn in order of
// descending depth key, so where edges overlap the one with the smallest
// key is drawn last and wins.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	Stats Stats

	ledger *Ledger
	edges  []Edge
	order  *Order
	next   int // position in order of the next edge to consider
}

// NewRasteriser returns a Rasteriser whose active list holds at most
// capacity edges.
func NewRasteriser(capacity int) *Rasteriser {
	return &Rasteriser{
		ledger: NewLedger(capacity),
		order:  &Order{},
	}
}

// Ledger gives access to the edge pool, for inspection.
func (r *Rasteriser) Ledger() *Ledger {
	return r.ledger
}

// Begin prepares the rasteriser for a new player region.  The order must
// be sorted by top row before the first call to DrawRow, and neither edges
// nor order may change until the region is finished, except for the draw
// state which the rasteriser maintains itself.
func (r *Rasteriser) Begin(edges []Edge, order *Order) {
	r.ledger.Reset()
	r.edges = edges
	r.order = order
	r.next = 0
	r.Stats = Stats{}
}

// DrawRow composites the edges crossing row y into row.  Rows must be
// passed in increasing order.  Pixels not covered by an edge are left
// unchanged.
func (r *Rasteriser) DrawRow(y int, row []Color) {
	r.activate(y, len(row))

	l := r.ledger
	end := l.Cap()
	prev := end
	for slot := l.Head(); slot != end; {
		e := l.Edge(slot)
		if e.P2.Y <= y {
			// last row of this edge: retire it, then draw once more
			slot = l.Release(slot, prev)
			r.Stats.Retired++
		} else {
			prev = slot
			slot = l.Next(slot)
		}
		e.step(y, row)
	}

	if debugBuild {
		if err := l.Check(); err != nil {
			assert(false, err.Error())
		}
	}
}

// activate moves all edges which start on or before row y from the sorted
// order into the active list.
func (r *Rasteriser) activate(y, width int) {
	assert(r.order.Sorted(), "edge order used before sorting finished")

	for r.next < r.order.Len() {
		e := &r.edges[r.order.At(r.next)]
		if e.P1.Y > y {
			break
		}
		r.next++

		if e.P2.Y < y {
			// the edge ended above this row
			continue
		}
		if !e.start(y, width) {
			r.Stats.Rejected++
			continue
		}
		if !r.ledger.Activate(e) {
			assert(false, "edge pool exhausted")
			Logger().Error("edge pool exhausted",
				"row", y, "capacity", r.ledger.Cap())
			continue
		}
		r.Stats.Activated++
		r.Stats.MaxActive = max(r.Stats.MaxActive, r.ledger.Len())
	}
}

// start initialises the draw state for an edge first drawn on row y, where
// P1.Y <= y <= P2.Y.  It returns false if the rest of the edge lies
// entirely left or right of a row with the given width.
func (e *Edge) start(y, width int) bool {
	x := e.P1.X
	if top, bot := e.P1.Y, e.P2.Y; top != y {
		// the edge began above this row; interpolate.
		num := (bot-y)*e.P1.X + (y-top)*e.P2.X
		x = int(math.Round(float64(num) / float64(bot-top)))
	}

	var dx, sx int
	if x2 := e.P2.X; x2 > x {
		if x >= width || x2 < 0 {
			return false
		}
		dx, sx = x2-x, 1
	} else {
		if x < 0 || x2 >= width {
			return false
		}
		dx, sx = x-x2, -1
	}
	dy := e.P2.Y - y

	e.drawX = x
	e.drawDX = dx
	e.drawDY = dy
	e.drawSX = sx
	if dx > dy {
		e.drawE = dx / 2
	} else {
		e.drawE = -dy / 2
	}
	return true
}

// step draws the part of an active edge which lies on row y and advances
// the drawing cursor to the next row.
//
// Runs of several pixels on one row, as produced by shallow edges, are
// written as a single span.
func (e *Edge) step(y int, row []Color) {
	switch {
	case e.drawX == e.P2.X:
		plot(row, e.drawX, e.Color)

	case e.P2.Y == y:
		// last row: the remainder is horizontal
		if e.drawSX > 0 {
			fill(row, e.drawX, e.P2.X, e.Color)
		} else {
			fill(row, e.P2.X, e.drawX, e.Color)
		}

	case e.drawE < e.drawDY:
		plot(row, e.drawX, e.Color)
		if e.drawE > -e.drawDX {
			e.drawX += e.drawSX
			e.drawE += e.drawDX - e.drawDY
		} else {
			e.drawE += e.drawDX
		}

	default:
		m := e.drawE / e.drawDY // extra columns on this row
		e.drawE -= e.drawDY * (m + 1)

		var xL, xR int
		if e.drawSX > 0 {
			xL, xR = e.drawX, e.drawX+m
			if xR > e.P2.X {
				xR = e.P2.X
				e.drawX = xR
			} else {
				e.drawX = xR + 1
			}
		} else {
			xL, xR = e.drawX-m, e.drawX
			if xL < e.P2.X {
				xL = e.P2.X
				e.drawX = xL
			} else {
				e.drawX = xL - 1
			}
		}
		e.drawE += e.drawDX
		fill(row, xL, xR, e.Color)
	}
}
