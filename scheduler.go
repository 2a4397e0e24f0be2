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
	"context"
	"log/slog"
)

// Renderer produces the output of a frame one row at a time.  It is driven
// by the video timing: Line is called once for every output row, and all
// work for that row happens inside the call.
//
// Each player region starts with HeaderRows rows which show the player's
// background colour and the HUD.  These rows are used to spread the
// per-frame work over many calls: projecting the edges a few at a time,
// then sorting them by top row.  The remaining rows of the region draw the
// edges.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	cfg  Config
	proj Projector
	hud  HUD

	players []playerFrame
	rast    *Rasteriser
}

// playerFrame is the frame-scoped state of one player region.
type playerFrame struct {
	edges     []Edge // MaxEdges entries; the first n are in use
	n         int
	order     Order
	projected int  // edges[:projected] are up to date
	rebuild   bool // order must be rebuilt by a heap sort
}

// Header row offsets within a player region.
const (
	rowBegin       = 0
	rowCatchUp     = 17
	rowSortStart   = 18
	rowSortFinish  = 19
	rowFirstDrawn  = HeaderRows
	rowHealthFirst = 5
	rowAmmoFirst   = 11
)

// NewRenderer returns a renderer which takes its edges from proj.
// The HUD may be nil.
func NewRenderer(cfg *Config, proj Projector, hud HUD) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Renderer{
		cfg:     *cfg,
		proj:    proj,
		hud:     hud,
		players: make([]playerFrame, cfg.Players),
		rast:    NewRasteriser(cfg.MaxEdges),
	}
	r.cfg.Background = append([]Color(nil), cfg.Background...)
	for i := range r.players {
		pf := &r.players[i]
		pf.edges = make([]Edge, cfg.MaxEdges)
		pf.order.MaxFirstSwap = cfg.MaxFirstSwap
		pf.rebuild = true
	}
	return r, nil
}

// Config returns a copy of the renderer's configuration.
func (r *Renderer) Config() Config {
	c := r.cfg
	c.Background = append([]Color(nil), r.cfg.Background...)
	return c
}

// Line renders output row y into row, which must have Config.Width
// entries.  Rows beyond the last player region are left untouched.
func (r *Renderer) Line(y int, row []Color) {
	assert(len(row) == r.cfg.Width, "row buffer has wrong width")

	p := y / r.cfg.RowsPerPlayer
	if y < 0 || p >= len(r.players) {
		return
	}
	pf := &r.players[p]

	offs := y % r.cfg.RowsPerPlayer
	if offs >= rowFirstDrawn {
		clear(row)
		r.rast.DrawRow(y, row)
		return
	}

	fill(row, 0, len(row)-1, r.cfg.Background[p])
	switch offs {
	case rowBegin:
		r.beginRegion(p)
	case 1, 8, 9, 14, 15:
		// background only
	case 2, 3, 4, 7, 10, 13, 16:
		r.project(p, r.cfg.ProjectEffort)
	case rowHealthFirst, rowHealthFirst + 1:
		if r.hud != nil {
			r.hud.DrawBar(p, BarHealth, row)
		}
	case rowAmmoFirst, rowAmmoFirst + 1:
		if r.hud != nil {
			r.hud.DrawBar(p, BarAmmo, row)
		}
	case rowCatchUp:
		r.project(p, pf.n)
	case rowSortStart:
		r.sortStart(p)
	case rowSortFinish:
		pf.order.FinishInsertion(pf.edges[:pf.n])
		if debugEnabled() {
			Logger().Debug("finished sorting", "player", p)
		}
	}
}

// beginRegion resets the frame state of player p.
func (r *Renderer) beginRegion(p int) {
	pf := &r.players[p]

	n := r.proj.NumEdges()
	if n > r.cfg.MaxEdges {
		assert(false, "more edges than the pool can hold")
		Logger().Warn("edge count exceeds capacity, truncating",
			"player", p, "edges", n, "capacity", r.cfg.MaxEdges)
		n = r.cfg.MaxEdges
	}
	n = max(n, 0)
	if n != pf.order.Len() {
		pf.order.Reset(n)
		pf.rebuild = true
	}
	pf.n = n
	pf.projected = 0

	r.rast.Begin(pf.edges[:n], &pf.order)
	if debugEnabled() {
		Logger().Debug("begin region", "player", p, "edges", n)
	}
}

// project brings up to effort more edges of player p up to date.
func (r *Renderer) project(p, effort int) {
	pf := &r.players[p]
	for ; pf.projected < pf.n && effort > 0; effort-- {
		r.proj.Project(p, pf.projected, &pf.edges[pf.projected])
		pf.projected++
	}
	if debugEnabled() {
		Logger().Debug("projected edges", "player", p, "done", pf.projected, "of", pf.n)
	}
}

// sortStart runs the first sort step for player p.
func (r *Renderer) sortStart(p int) {
	pf := &r.players[p]
	edges := pf.edges[:pf.n]
	if pf.rebuild || r.cfg.FullSortEachFrame {
		pf.order.HeapSort(edges)
		pf.rebuild = false
		if debugEnabled() {
			Logger().Debug("heap sorted edges", "player", p)
		}
		return
	}

	swaps := pf.order.StartInsertion(edges)
	if swaps > 0 && debugEnabled() {
		Logger().Debug("first sort step", "player", p, "swaps", swaps)
	}
}

// Stats returns the rasteriser statistics of the current player region.
func (r *Renderer) Stats() Stats {
	return r.rast.Stats
}

// Edges returns the edges of player p for the current frame.
func (r *Renderer) Edges(p int) []Edge {
	pf := &r.players[p]
	return pf.edges[:pf.n]
}

// Order returns the row order of player p's edges.
func (r *Renderer) Order(p int) *Order {
	return &r.players[p].order
}

// Ledger returns the edge pool, for inspection.
func (r *Renderer) Ledger() *Ledger {
	return r.rast.Ledger()
}

// debugEnabled reports whether debug logging is on.  Checking first avoids
// building the attribute list on every row.
func debugEnabled() bool {
	return Logger().Enabled(context.Background(), slog.LevelDebug)
}
