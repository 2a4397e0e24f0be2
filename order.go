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

// Order is the permutation of one player's edges by ascending top row.
//
// The permutation is kept from one frame to the next.  Since edges move
// little between frames, the order of the previous frame is usually almost
// correct, and an insertion sort, split into a bounded first step and an
// unbounded second step, restores it cheaply.  A heap sort is used when
// the edge set changes size, or on request.
//
// The order among edges with equal top rows is unspecified.
type Order struct {
	// MaxFirstSwap bounds the number of swaps StartInsertion performs
	// before leaving the rest of the work to FinishInsertion.
	MaxFirstSwap int

	idx    []int // idx[k] is the index of the k-th edge to start
	sorted int   // idx[:sorted] is in order
}

// Reset sets the permutation to the identity on n edges and marks it as
// unsorted.  The internal buffer grows as needed but never shrinks.
func (o *Order) Reset(n int) {
	if cap(o.idx) < n {
		o.idx = make([]int, n)
	}
	o.idx = o.idx[:n]
	for i := range o.idx {
		o.idx[i] = i
	}
	o.sorted = 0
}

// Len returns the number of edges in the permutation.
func (o *Order) Len() int {
	return len(o.idx)
}

// At returns the index of the k-th edge in row order.
func (o *Order) At(k int) int {
	return o.idx[k]
}

// Sorted reports whether the last sort has run to completion.
func (o *Order) Sorted() bool {
	return o.sorted >= len(o.idx)
}

// StartInsertion begins an insertion sort by top row.  It sorts a prefix of
// at most half the edges and stops early once more than MaxFirstSwap swaps
// have been made.  FinishInsertion must be called before the order is
// used.  The number of swaps is returned.
func (o *Order) StartInsertion(edges []Edge) (swaps int) {
	n := len(o.idx)
	o.sorted = min(1, n)
	for o.sorted < n/2 {
		swaps += o.insert(edges, o.sorted)
		o.sorted++
		if swaps > o.MaxFirstSwap {
			break
		}
	}
	return swaps
}

// FinishInsertion completes an insertion sort begun by StartInsertion.
func (o *Order) FinishInsertion(edges []Edge) {
	for ; o.sorted < len(o.idx); o.sorted++ {
		o.insert(edges, o.sorted)
	}
}

// insert moves idx[k] down into the sorted prefix idx[:k].
func (o *Order) insert(edges []Edge, k int) (swaps int) {
	idx := o.idx
	for ; k > 0; k-- {
		if edges[idx[k]].P1.Y >= edges[idx[k-1]].P1.Y {
			break
		}
		idx[k], idx[k-1] = idx[k-1], idx[k]
		swaps++
	}
	return swaps
}

// HeapSort sorts the permutation by top row in one go.
func (o *Order) HeapSort(edges []Edge) {
	n := len(o.idx)
	for i := n / 2; i >= 1; i-- {
		o.demote(edges, i, n)
	}
	for i := 1; i <= n; i++ {
		// H[1] is the maximum of H[1..n-i+1]; move it to the end
		o.idx[0], o.idx[n-i] = o.idx[n-i], o.idx[0]
		o.demote(edges, 1, n-i)
	}
	o.sorted = n
}

// demote restores the max-heap property below node i of the heap
// H[1..n], where H[j] is the top row of edges[idx[j-1]].
func (o *Order) demote(edges []Edge, i, n int) {
	key := func(j int) int { return edges[o.idx[j-1]].P1.Y }
	for lc := 2 * i; lc <= n; lc = 2 * i {
		mc := lc
		if rc := lc + 1; rc <= n && key(rc) >= key(lc) {
			mc = rc
		}
		if key(i) >= key(mc) {
			return
		}
		o.idx[i-1], o.idx[mc-1] = o.idx[mc-1], o.idx[i-1]
		i = mc
	}
}
