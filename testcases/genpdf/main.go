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

// Command genpdf draws the test case scenes as PDF files, using vector
// strokes for the projected edges.  The PDFs serve as reference drawings
// for the scanline output.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/wireframe"
	"seehuhn.de/go/wireframe/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	cfg := wireframe.DefaultConfig()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			if err := generatePDF(cfg, tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(cfg *wireframe.Config, tc testcases.TestCase, pdfPath string) error {
	proj, err := wireframe.ExampleProjector(cfg, tc)
	if err != nil {
		return err
	}

	// one point per pixel
	width := float64(cfg.Width)
	height := float64(cfg.Rows())
	paper := &pdf.Rectangle{
		URx: width,
		URy: height,
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, width, height)
	page.Fill()

	// PDF origin is bottom-left, screen rows count from the top
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})

	page.SetLineWidth(1)
	page.SetLineCap(graphics.LineCapRound)

	var e wireframe.Edge
	for p := range cfg.Players {
		for i := range proj.NumEdges() {
			proj.Project(p, i, &e)
			if e.P2.Y < 0 {
				continue // hidden
			}
			page.SetStrokeColor(color.DeviceGray(gray(e.Color)))
			// pixel centres
			page.MoveTo(float64(e.P1.X)+0.5, float64(e.P1.Y)+0.5)
			page.LineTo(float64(e.P2.X)+0.5, float64(e.P2.Y)+0.5)
			page.Stroke()
		}
	}

	return page.Close()
}

// gray returns the luminance of c, between 0 and 1.
func gray(c wireframe.Color) float64 {
	r, g, b, _ := c.RGBA()
	return (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 0xffff
}
