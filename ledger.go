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

import "fmt"

// ledgerSlot is one entry of a Ledger.  A slot is a member of either the
// free list or the active list, never both.
type ledgerSlot struct {
	edge       *Edge // not owned; nil while the slot is free
	nextActive int
	nextFree   int
}

// Ledger is a fixed-capacity pool of slots for the edges crossing the
// current row.  Two singly linked lists, the free list and the active list,
// share the slot array.  Slots are addressed by index; the index Cap()
// terminates both lists.
//
// The active list is kept in order of descending depth key, so that a walk
// from the head visits the farthest edge first.
type Ledger struct {
	slots       []ledgerSlot
	firstActive int
	firstFree   int
	numActive   int
}

// NewLedger allocates a ledger with the given number of slots, all free.
func NewLedger(capacity int) *Ledger {
	l := &Ledger{
		slots: make([]ledgerSlot, capacity),
	}
	l.Reset()
	return l
}

// Cap returns the number of slots, which is also the list terminator.
func (l *Ledger) Cap() int {
	return len(l.slots)
}

// Len returns the number of slots on the active list.
func (l *Ledger) Len() int {
	return l.numActive
}

// Reset marks every slot as free.  Afterwards the free list is
// 0, 1, ..., Cap()-1 and the active list is empty.
func (l *Ledger) Reset() {
	end := len(l.slots)
	for i := range l.slots {
		l.slots[i] = ledgerSlot{
			nextActive: end,
			nextFree:   i + 1,
		}
	}
	l.firstActive = end
	l.firstFree = 0
	l.numActive = 0
}

// Acquire removes the head of the free list and returns its index.
// The slot must be passed to InsertActive straight away.
// If no slot is free, ok is false.
func (l *Ledger) Acquire() (slot int, ok bool) {
	slot = l.firstFree
	if slot == len(l.slots) {
		return slot, false
	}
	l.firstFree = l.slots[slot].nextFree
	l.slots[slot].nextFree = len(l.slots)
	return slot, true
}

// InsertActive links an acquired slot into the active list, recording e as
// its edge.  The slot is placed after all entries with a depth key greater
// than or equal to e.IZ, so that among equal keys the earlier insertion
// stays in front.
func (l *Ledger) InsertActive(slot int, e *Edge) {
	end := len(l.slots)
	s := &l.slots[slot]
	s.edge = e

	if l.firstActive == end || l.slots[l.firstActive].edge.IZ < e.IZ {
		s.nextActive = l.firstActive
		l.firstActive = slot
	} else {
		prev := l.firstActive
		cur := l.slots[prev].nextActive
		for cur != end && l.slots[cur].edge.IZ >= e.IZ {
			prev = cur
			cur = l.slots[cur].nextActive
		}
		l.slots[prev].nextActive = slot
		s.nextActive = cur
	}
	l.numActive++
}

// Activate acquires a slot for e and inserts it into the active list.
// It reports false, leaving the ledger unchanged, if the pool is exhausted.
func (l *Ledger) Activate(e *Edge) bool {
	slot, ok := l.Acquire()
	if !ok {
		return false
	}
	l.InsertActive(slot, e)
	return true
}

// Release unlinks slot from the active list and pushes it onto the free
// list.  prev must be the predecessor of slot in the active list, or Cap()
// if slot is the head.  The return value is the successor of slot, which
// lets a caller continue its walk of the active list.
func (l *Ledger) Release(slot, prev int) (next int) {
	s := &l.slots[slot]
	next = s.nextActive
	if prev == len(l.slots) {
		assert(l.firstActive == slot, "released slot is not the list head")
		l.firstActive = next
	} else {
		assert(l.slots[prev].nextActive == slot, "wrong predecessor in Release")
		l.slots[prev].nextActive = next
	}
	s.edge = nil
	s.nextActive = len(l.slots)
	s.nextFree = l.firstFree
	l.firstFree = slot
	l.numActive--
	return next
}

// Head returns the first slot of the active list, or Cap() if the list is
// empty.
func (l *Ledger) Head() int {
	return l.firstActive
}

// Next returns the successor of slot in the active list.
func (l *Ledger) Next(slot int) int {
	return l.slots[slot].nextActive
}

// Edge returns the edge held by an active slot.
func (l *Ledger) Edge(slot int) *Edge {
	return l.slots[slot].edge
}

// Check verifies that the free list and the active list together contain
// every slot exactly once, and that the active list is ordered by
// descending depth key.  Slots returned by Acquire and not yet inserted are
// reported as missing.
func (l *Ledger) Check() error {
	end := len(l.slots)
	seen := make([]bool, end)

	n := 0
	lastIZ := 0
	for i := l.firstActive; i != end; i = l.slots[i].nextActive {
		if i < 0 || i >= end {
			return fmt.Errorf("active list: invalid index %d", i)
		}
		if seen[i] {
			return fmt.Errorf("active list: slot %d visited twice", i)
		}
		seen[i] = true
		e := l.slots[i].edge
		if e == nil {
			return fmt.Errorf("active list: slot %d has no edge", i)
		}
		if n > 0 && e.IZ > lastIZ {
			return fmt.Errorf("active list: slot %d out of depth order (%d > %d)", i, e.IZ, lastIZ)
		}
		lastIZ = e.IZ
		n++
	}
	if n != l.numActive {
		return fmt.Errorf("active list: found %d slots, expected %d", n, l.numActive)
	}

	for i := l.firstFree; i != end; i = l.slots[i].nextFree {
		if i < 0 || i >= end {
			return fmt.Errorf("free list: invalid index %d", i)
		}
		if seen[i] {
			return fmt.Errorf("free list: slot %d already listed", i)
		}
		seen[i] = true
		n++
	}
	if n != end {
		return fmt.Errorf("%d of %d slots are on neither list", end-n, end)
	}
	return nil
}
