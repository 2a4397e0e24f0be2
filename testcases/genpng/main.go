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

// Command genpng renders every test case with the scanline renderer and
// writes the frames as PNG files.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/image/draw"

	"seehuhn.de/go/wireframe"
	"seehuhn.de/go/wireframe/testcases"
)

func main() {
	outDir := flag.String("o", "debug", "output directory")
	scale := flag.Int("scale", 1, "integer magnification of the output")
	verbose := flag.Bool("v", false, "log per-frame diagnostics to stderr")
	flag.Parse()

	if *verbose {
		wireframe.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(*outDir, *scale); err != nil {
		fmt.Fprintln(os.Stderr, "genpng:", err)
		os.Exit(1)
	}
}

func run(outDir string, scale int) error {
	if scale < 1 {
		return fmt.Errorf("invalid scale %d", scale)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	cfg := wireframe.DefaultConfig()
	hud := &wireframe.StatusBars{
		Health: []uint8{200, 90},
		Ammo:   []uint8{128, 255},
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			f, err := wireframe.RenderExample(cfg, tc, hud)
			if err != nil {
				return err
			}

			var img image.Image = f
			if scale > 1 {
				dst := image.NewRGBA(image.Rect(0, 0, f.Width*scale, f.Height*scale))
				draw.NearestNeighbor.Scale(dst, dst.Bounds(), f, f.Bounds(), draw.Src, nil)
				img = dst
			}

			if err := writePNG(filepath.Join(outDir, name+".png"), img); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
	}
	return nil
}

func writePNG(fname string, img image.Image) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
