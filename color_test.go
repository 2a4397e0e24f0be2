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
	"image/color"
	"testing"
)

func TestRGB(t *testing.T) {
	for _, test := range []struct {
		r, g, b uint8
		want    Color
	}{
		{0, 0, 0, 0},
		{0xff, 0xff, 0xff, 0x7fff},
		{0xff, 0, 0, 0x7c00},
		{0, 0xff, 0, 0x03e0},
		{0, 0, 0xff, 0x001f},
		{0x07, 0x08, 0x10, 0x0022},
	} {
		if got := RGB(test.r, test.g, test.b); got != test.want {
			t.Errorf("RGB(%d,%d,%d) = %04x, want %04x", test.r, test.g, test.b, got, test.want)
		}
	}
}

func TestColorModel(t *testing.T) {
	for _, c := range []Color{0, 0x7fff, HealthColor, AmmoColor, RGB(0x12, 0x34, 0x56)} {
		r, g, b, a := c.RGBA()
		if a != 0xffff {
			t.Errorf("%04x: alpha %04x", c, a)
		}
		back := ColorModel.Convert(color.RGBA64{uint16(r), uint16(g), uint16(b), 0xffff})
		if back != c {
			t.Errorf("%04x: round trip gave %v", c, back)
		}
	}

	r, g, b, _ := Color(0x7fff).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff {
		t.Errorf("white expands to %04x %04x %04x", r, g, b)
	}
}

func TestFillClipped(t *testing.T) {
	row := make([]Color, 10)
	fill(row, -5, 2, 1)
	fill(row, 8, 20, 2)
	fill(row, 20, 30, 3)
	fill(row, -9, -1, 3)
	plot(row, -1, 3)
	plot(row, 10, 3)
	plot(row, 5, 4)
	want := []Color{1, 1, 1, 0, 0, 4, 0, 0, 2, 2}
	for x := range row {
		if row[x] != want[x] {
			t.Errorf("column %d: got %d, want %d", x, row[x], want[x])
		}
	}
}
