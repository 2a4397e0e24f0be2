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
	"errors"
	"testing"
)

// stubProjector produces vertical edges at known positions and counts the
// calls to Project.
type stubProjector struct {
	n     int
	rpp   int
	shift int // moves all edges down by this many rows
	calls []int
}

func newStubProjector(cfg *Config, n int) *stubProjector {
	return &stubProjector{
		n:     n,
		rpp:   cfg.RowsPerPlayer,
		calls: make([]int, cfg.Players),
	}
}

func (s *stubProjector) NumEdges() int {
	return s.n
}

func (s *stubProjector) Project(player, i int, e *Edge) {
	s.calls[player]++
	base := player*s.rpp + HeaderRows + s.shift
	*e = Edge{
		P1:    Vertex{X: 10 + 10*i, Y: base + 80},
		P2:    Vertex{X: 10 + 10*i, Y: base + i},
		IZ:    i,
		Color: white,
	}
	e.Orient()
}

func TestNewRendererInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RowsPerPlayer = HeaderRows
	_, err := NewRenderer(cfg, newStubProjector(cfg, 0), nil)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("got error %v, want %v", err, ErrInvalidConfig)
	}
}

func TestProjectionSchedule(t *testing.T) {
	cfg := DefaultConfig()
	proj := newStubProjector(cfg, 30)
	r, err := NewRenderer(cfg, proj, nil)
	if err != nil {
		t.Fatal(err)
	}

	// number of edges projected after each header row
	want := []int{0, 0, 2, 4, 6, 6, 6, 8, 8, 8, 10, 10, 10, 12, 12, 12, 14, 30, 30, 30}
	row := make([]Color, cfg.Width)
	for p := range cfg.Players {
		for offs, n := range want {
			r.Line(p*cfg.RowsPerPlayer+offs, row)
			if proj.calls[p] != n {
				t.Errorf("player %d, row %d: %d edges projected, want %d",
					p, offs, proj.calls[p], n)
			}
		}
		for y := HeaderRows; y < cfg.RowsPerPlayer; y++ {
			r.Line(p*cfg.RowsPerPlayer+y, row)
		}
		if proj.calls[p] != 30 {
			t.Errorf("player %d: %d edges projected in total, want 30", p, proj.calls[p])
		}
	}
}

func TestFewEdges(t *testing.T) {
	cfg := DefaultConfig()
	proj := newStubProjector(cfg, 3)
	r, err := NewRenderer(cfg, proj, nil)
	if err != nil {
		t.Fatal(err)
	}
	row := make([]Color, cfg.Width)
	for y := range 4 {
		r.Line(y, row)
	}
	if proj.calls[0] != 3 {
		t.Errorf("%d edges projected, want 3", proj.calls[0])
	}
	for y := 4; y < HeaderRows; y++ {
		r.Line(y, row)
	}
	if proj.calls[0] != 3 {
		t.Errorf("edges projected more than once: %d calls", proj.calls[0])
	}
}

func TestHeaderBackground(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Background = []Color{RGB(0x10, 0x20, 0x30), RGB(0x80, 0x40, 0x00)}
	r, err := NewRenderer(cfg, newStubProjector(cfg, 5), nil)
	if err != nil {
		t.Fatal(err)
	}

	row := make([]Color, cfg.Width)
	for p := range cfg.Players {
		for offs := range HeaderRows {
			for x := range row {
				row[x] = 1
			}
			r.Line(p*cfg.RowsPerPlayer+offs, row)
			for x, c := range row {
				if c != cfg.Background[p] {
					t.Fatalf("player %d, row %d, column %d: got %04x, want %04x",
						p, offs, x, c, cfg.Background[p])
				}
			}
		}
	}
}

func TestStatusBars(t *testing.T) {
	cfg := DefaultConfig()
	hud := &StatusBars{
		Health: []uint8{200, 0},
		Ammo:   []uint8{128, 255},
	}
	r, err := NewRenderer(cfg, newStubProjector(cfg, 0), hud)
	if err != nil {
		t.Fatal(err)
	}

	type bar struct {
		first, last int
		c           Color
	}
	want := map[int]bar{
		5:  {6, 497, HealthColor},
		6:  {6, 497, HealthColor},
		11: {6, 320, AmmoColor},
		12: {6, 320, AmmoColor},
	}

	row := make([]Color, cfg.Width)
	for p := range cfg.Players {
		bg := cfg.Background[p]
		for offs := range HeaderRows {
			r.Line(p*cfg.RowsPerPlayer+offs, row)
			b, ok := want[offs]
			if !ok || p == 1 {
				// player 1 has zero health: no bars at all
				b = bar{-1, -1, 0}
			}
			for x, c := range row {
				wantC := bg
				if x >= b.first && x <= b.last {
					wantC = b.c
				}
				if c != wantC {
					t.Errorf("player %d, row %d, column %d: got %04x, want %04x",
						p, offs, x, c, wantC)
					break
				}
			}
		}
	}
}

func TestDrawingRowsCleared(t *testing.T) {
	cfg := DefaultConfig()
	r, err := NewRenderer(cfg, newStubProjector(cfg, 0), nil)
	if err != nil {
		t.Fatal(err)
	}

	row := make([]Color, cfg.Width)
	for y := range cfg.Rows() {
		for x := range row {
			row[x] = 0x1234
		}
		r.Line(y, row)
		if y%cfg.RowsPerPlayer < HeaderRows {
			continue
		}
		for x, c := range row {
			if c != 0 {
				t.Fatalf("row %d, column %d: got %04x, want black", y, x, c)
			}
		}
	}
}

func TestRenderFrame(t *testing.T) {
	cfg := DefaultConfig()
	const n = 12
	proj := newStubProjector(cfg, n)
	r, err := NewRenderer(cfg, proj, nil)
	if err != nil {
		t.Fatal(err)
	}
	f := NewFrame(cfg.Width, cfg.Rows())

	for frame := range 3 {
		proj.shift = 3 * frame
		r.RenderFrame(f)

		for p := range cfg.Players {
			base := p*cfg.RowsPerPlayer + HeaderRows + proj.shift
			for y := p*cfg.RowsPerPlayer + HeaderRows; y < (p+1)*cfg.RowsPerPlayer; y++ {
				row := f.Row(y)
				for x, c := range row {
					var want Color
					if i := (x - 10) / 10; x >= 10 && (x-10)%10 == 0 && i < n {
						if y >= base+i && y <= base+80 {
							want = white
						}
					}
					if c != want {
						t.Fatalf("frame %d, pixel (%d,%d): got %04x, want %04x",
							frame, x, y, c, want)
					}
				}
			}
		}
	}
}

func TestSortedBeforeDrawing(t *testing.T) {
	cfg := DefaultConfig()
	proj := newStubProjector(cfg, 20)
	r, err := NewRenderer(cfg, proj, nil)
	if err != nil {
		t.Fatal(err)
	}

	row := make([]Color, cfg.Width)
	for frame := range 3 {
		proj.shift = 5 * frame
		for y := range cfg.Rows() {
			r.Line(y, row)
			offs := y % cfg.RowsPerPlayer
			if offs != HeaderRows-1 {
				continue
			}
			p := y / cfg.RowsPerPlayer
			o := r.Order(p)
			if !o.Sorted() {
				t.Fatalf("frame %d, player %d: edges not sorted before drawing", frame, p)
			}
			edges := r.Edges(p)
			for k := 1; k < o.Len(); k++ {
				if edges[o.At(k)].P1.Y < edges[o.At(k-1)].P1.Y {
					t.Errorf("frame %d, player %d: order broken at %d", frame, p, k)
				}
			}
		}
	}
}

func TestLedgerConsistentPerRow(t *testing.T) {
	cfg := DefaultConfig()
	r, err := NewRenderer(cfg, newStubProjector(cfg, 40), nil)
	if err != nil {
		t.Fatal(err)
	}
	row := make([]Color, cfg.Width)
	for y := range cfg.Rows() {
		r.Line(y, row)
		if err := r.Ledger().Check(); err != nil {
			t.Fatalf("row %d: %v", y, err)
		}
	}
	if s := r.Stats(); s.Activated != 40 || s.Retired != 40 {
		t.Errorf("got %+v, want 40 edges activated and retired", s)
	}
}

func TestEdgeCountClamped(t *testing.T) {
	if debugBuild {
		t.Skip("edge count overflow panics in debug builds")
	}
	logs := captureLogs(t)

	cfg := DefaultConfig()
	proj := newStubProjector(cfg, cfg.MaxEdges+5)
	r, err := NewRenderer(cfg, proj, nil)
	if err != nil {
		t.Fatal(err)
	}
	row := make([]Color, cfg.Width)
	for y := range HeaderRows {
		r.Line(y, row)
	}
	if got := len(r.Edges(0)); got != cfg.MaxEdges {
		t.Errorf("got %d edges, want %d", got, cfg.MaxEdges)
	}
	if proj.calls[0] != cfg.MaxEdges {
		t.Errorf("%d edges projected, want %d", proj.calls[0], cfg.MaxEdges)
	}
	if !logs.contains("edge count exceeds capacity") {
		t.Error("overflow was not logged")
	}
}
