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
	"fmt"
)

// Config holds the static bounds of a Renderer.  The worst-case cost of a
// single row call follows from these values and must fit the row period of
// the target hardware.
type Config struct {
	// Width is the number of pixels in a row.
	Width int

	// RowsPerPlayer is the number of rows in one player's region.  The
	// first HeaderRows rows of each region are used for bookkeeping and
	// the HUD, the remaining rows are drawn.
	RowsPerPlayer int

	// Players is the number of player regions, stacked vertically.
	Players int

	// MaxEdges is the capacity of the edge pool and the largest edge count
	// a frame may have.
	MaxEdges int

	// ProjectEffort is the number of edges projected on each projection
	// row before the catch-up row.
	ProjectEffort int

	// MaxFirstSwap bounds the swaps of the first insertion sort step.
	MaxFirstSwap int

	// Background holds the colour of the header rows of each player.
	Background []Color

	// FullSortEachFrame selects a heap sort instead of the incremental
	// insertion sort on the first sort row.
	FullSortEachFrame bool
}

// Default values, for a 640x480 screen split between two players.
const (
	defaultWidth         = 640
	defaultRowsPerPlayer = 240
	defaultPlayers       = 2
	defaultMaxEdges      = 64
	defaultProjectEffort = 2
	defaultMaxFirstSwap  = 10
)

// HeaderRows is the number of rows at the start of each player region
// which are not used for drawing edges.
const HeaderRows = 20

// ErrInvalidConfig is wrapped by all errors returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid renderer configuration")

// DefaultConfig returns the standard two-player configuration.
func DefaultConfig() *Config {
	return &Config{
		Width:         defaultWidth,
		RowsPerPlayer: defaultRowsPerPlayer,
		Players:       defaultPlayers,
		MaxEdges:      defaultMaxEdges,
		ProjectEffort: defaultProjectEffort,
		MaxFirstSwap:  defaultMaxFirstSwap,
		Background:    []Color{32 * 0x101, 136 * 0x101},
	}
}

// Rows returns the total number of rows in a frame.
func (c *Config) Rows() int {
	return c.RowsPerPlayer * c.Players
}

// Validate checks that the configuration describes a usable renderer.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("%w: width %d", ErrInvalidConfig, c.Width)
	case c.RowsPerPlayer <= HeaderRows:
		return fmt.Errorf("%w: %d rows per player, need more than %d",
			ErrInvalidConfig, c.RowsPerPlayer, HeaderRows)
	case c.Players <= 0:
		return fmt.Errorf("%w: %d players", ErrInvalidConfig, c.Players)
	case c.MaxEdges <= 0:
		return fmt.Errorf("%w: edge capacity %d", ErrInvalidConfig, c.MaxEdges)
	case c.ProjectEffort < 0:
		return fmt.Errorf("%w: negative projection effort", ErrInvalidConfig)
	case c.MaxFirstSwap < 0:
		return fmt.Errorf("%w: negative swap limit", ErrInvalidConfig)
	case len(c.Background) != c.Players:
		return fmt.Errorf("%w: %d background colours for %d players",
			ErrInvalidConfig, len(c.Background), c.Players)
	}
	return nil
}
