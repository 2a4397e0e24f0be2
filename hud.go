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

// Bar identifies one of the status bars in a player's header rows.
type Bar int

const (
	BarHealth Bar = iota // drawn on header rows 5 and 6
	BarAmmo              // drawn on header rows 11 and 12
)

// HUD draws status bars into the header rows of a player region.
// DrawBar is called on top of the player's background colour and must
// return within the row time budget.
type HUD interface {
	DrawBar(player int, bar Bar, row []Color)
}

// StatusBars is a HUD showing health and ammunition as horizontal bars
// whose length is proportional to the value (0 to 255).  The ammo bar is
// hidden while a player's health is zero.
type StatusBars struct {
	Health []uint8
	Ammo   []uint8
}

// Colours of the status bars.
var (
	HealthColor = RGB(0xe0, 0x10, 0x00)
	AmmoColor   = RGB(0x40, 0x80, 0xff)
)

// barMargin is the number of columns left blank before a status bar.
const barMargin = 6

// DrawBar implements the HUD interface.
func (s *StatusBars) DrawBar(player int, bar Bar, row []Color) {
	health := valueAt(s.Health, player)
	switch bar {
	case BarHealth:
		drawBar(row, health, HealthColor)
	case BarAmmo:
		if health > 0 {
			drawBar(row, valueAt(s.Ammo, player), AmmoColor)
		}
	}
}

func valueAt(v []uint8, i int) uint8 {
	if i < len(v) {
		return v[i]
	}
	return 0
}

// drawBar fills the columns barMargin, ..., barMargin+n-1 of row, where n
// is the fraction v/256 of the usable row width.
func drawBar(row []Color, v uint8, c Color) {
	usable := len(row) - barMargin - 3
	if usable <= 0 {
		return
	}
	n := usable * int(v) / 256
	fill(row, barMargin, barMargin+n-1, c)
}
