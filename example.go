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
	"fmt"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/wireframe/testcases"
)

// ExampleProjector returns a projector showing the scene of a test case,
// laid out for cfg.
func ExampleProjector(cfg *Config, tc testcases.TestCase) (Projector, error) {
	switch s := tc.Scene.(type) {
	case testcases.Wire:
		segs := make([]Segment, len(s.Lines))
		for i, l := range s.Lines {
			segs[i] = Segment{
				A:     Point3{X: l.A[0], Y: l.A[1], Z: l.A[2]},
				B:     Point3{X: l.B[0], Y: l.B[1], Z: l.B[2]},
				Color: RGB(l.Color.R, l.Color.G, l.Color.B),
			}
		}
		cam := NewCamera(cfg, segs)
		for p := range cam.Views {
			if p < len(s.Eyes) {
				eye := s.Eyes[p]
				cam.Views[p].Eye = Point3{X: eye.Pos[0], Y: eye.Pos[1], Z: eye.Pos[2]}
				cam.Views[p].Yaw = eye.Yaw
			}
		}
		return cam, nil

	case testcases.Flat:
		ctm := s.CTM
		if ctm == (matrix.Matrix{}) {
			ctm = matrix.Identity
		}
		return NewOutline(cfg, ctm, s.Path, RGB(s.Color.R, s.Color.G, s.Color.B)), nil
	}
	return nil, fmt.Errorf("test case %q: unsupported scene type %T", tc.Name, tc.Scene)
}

// RenderExample renders one complete frame of a test case with the
// configuration cfg.  The HUD may be nil.
func RenderExample(cfg *Config, tc testcases.TestCase, hud HUD) (*Frame, error) {
	proj, err := ExampleProjector(cfg, tc)
	if err != nil {
		return nil, err
	}
	r, err := NewRenderer(cfg, proj, hud)
	if err != nil {
		return nil, fmt.Errorf("test case %q: %w", tc.Name, err)
	}
	f := NewFrame(cfg.Width, cfg.Rows())
	r.RenderFrame(f)
	return f, nil
}
