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

// Package wireframe implements a scanline renderer for wireframe line
// segments which is driven by the video timing: the renderer is called once
// for every output row and must finish the row before the next call.
//
// The per-frame work (projecting edges, sorting them by top row) is spread
// over the first rows of each player region in small, bounded steps.  The
// remaining rows are drawn with an active edge list held in a fixed-size
// pool, using an incremental line stepper.
package wireframe

import (
	"image"
	"image/color"
)

// Frame is a complete output frame, stored row by row.
// It implements image.Image.
type Frame struct {
	Pix    []Color
	Width  int
	Height int
}

// NewFrame allocates a frame of the given size.
func NewFrame(width, height int) *Frame {
	return &Frame{
		Pix:    make([]Color, width*height),
		Width:  width,
		Height: height,
	}
}

// Row returns the pixels of row y.
func (f *Frame) Row(y int) []Color {
	return f.Pix[y*f.Width : (y+1)*f.Width]
}

// ColorModel implements the image.Image interface.
func (f *Frame) ColorModel() color.Model {
	return ColorModel
}

// Bounds implements the image.Image interface.
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Width, f.Height)
}

// At implements the image.Image interface.
func (f *Frame) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return Color(0)
	}
	return f.Pix[y*f.Width+x]
}

// RenderFrame calls Line for every row of f, in order, the way the video
// timing would.  The frame must be Config.Width pixels wide.
func (r *Renderer) RenderFrame(f *Frame) {
	for y := range f.Height {
		r.Line(y, f.Row(y))
	}
}
