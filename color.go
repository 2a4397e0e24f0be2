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

import "image/color"

// Color is a row-buffer pixel value with five bits per channel, red in
// bits 10-14, green in bits 5-9 and blue in bits 0-4.
type Color uint16

// RGB packs 8-bit channel values into a Color, dropping the low three bits
// of each channel.
func RGB(r, g, b uint8) Color {
	return Color(r>>3)<<10 | Color(g>>3)<<5 | Color(b>>3)
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = expand5(uint32(c>>10) & 0x1f)
	g = expand5(uint32(c>>5) & 0x1f)
	b = expand5(uint32(c) & 0x1f)
	return r, g, b, 0xffff
}

// expand5 scales a 5-bit channel to the 16-bit range used by image/color.
func expand5(v uint32) uint32 {
	v = v<<3 | v>>2 // 8 bits
	return v<<8 | v
}

// ColorModel converts arbitrary colours to Color.
var ColorModel = color.ModelFunc(func(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
})

// fill sets row[xL], ..., row[xR] to c, after clipping the span to the row.
func fill(row []Color, xL, xR int, c Color) {
	if xR < 0 || xL >= len(row) {
		return
	}
	xL = max(xL, 0)
	xR = min(xR, len(row)-1)
	for i := xL; i <= xR; i++ {
		row[i] = c
	}
}

// plot sets row[x] to c if x lies inside the row.
func plot(row []Color, x int, c Color) {
	if x >= 0 && x < len(row) {
		row[x] = c
	}
}
