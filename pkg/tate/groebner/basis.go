// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package groebner

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// basis maintains the two parallel views of the growing Gröbner basis: the
// historical arena gb, which is append-only and indexed by discovery order,
// and the working list rgb, which is kept minimal at all times.  Arena slots
// superseded during the run are tombstoned rather than deleted, so pending
// pairs holding arena indices can detect staleness cheaply.  Original
// generator slots (indices below l) are never tombstoned.
type basis[E Element[E]] struct {
	// integral selects the divisibility rule used for minimisation.
	integral bool
	// l is the number of original generators seeding the arena.
	l uint
	// gb is the historical arena.
	gb []E
	// dead marks tombstoned arena slots.
	dead bitset.BitSet
	// rgb is the currently minimal working basis.
	rgb []E
	// indices maps working basis positions back to arena slots.
	indices []uint
}

// newBasis seeds a basis from the truncated, non-zero generators and
// minimises the working view.
func newBasis[E Element[E]](generators []E, integral bool) *basis[E] {
	var (
		n       = uint(len(generators))
		indices = make([]uint, n)
	)
	//
	for i := range indices {
		indices[i] = uint(i)
	}
	//
	b := &basis[E]{
		integral: integral,
		l:        n,
		gb:       slices.Clone(generators),
		rgb:      slices.Clone(generators),
		indices:  indices,
	}
	//
	b.minimise(integral)
	//
	return b
}

// alive determines whether a given arena slot is still current.
func (b *basis[E]) alive(slot uint) bool {
	return !b.dead.Test(slot)
}

// minimise removes from the working basis every element whose leading term
// is divisible by another member's leading term, under the given
// divisibility rule.  Removing one element can newly expose a divisibility
// amongst the remainder, hence the scan restarts after every removal and
// only a full clean pass terminates the loop.
func (b *basis[E]) minimise(integral bool) {
	removed := true
	//
	for removed {
		removed = false
		//
	outer:
		for i := range b.rgb {
			ti := b.rgb[i].LeadingTerm()
			//
			for j := range b.rgb {
				if i != j && b.rgb[j].LeadingTerm().Divides(ti, integral) {
					b.remove(i)
					//
					removed = true
					break outer
				}
			}
		}
	}
}

// insert appends a freshly discovered element to both views, first pruning
// from the working basis every member whose leading term the new element's
// leading term divides.  Pruned members discovered during the run are
// tombstoned in the arena; original generators are not, so pairs seeded from
// them stay valid.  Returns the arena slot assigned to the new element.
func (b *basis[E]) insert(r E) uint {
	tj := r.LeadingTerm()
	//
	for i := len(b.rgb) - 1; i >= 0; i-- {
		if tj.Divides(b.rgb[i].LeadingTerm(), b.integral) {
			b.remove(i)
		}
	}
	//
	slot := uint(len(b.gb))
	//
	b.gb = append(b.gb, r)
	b.rgb = append(b.rgb, r)
	b.indices = append(b.indices, slot)
	//
	return slot
}

// reReduce tightens the working basis in place: each member, taken last to
// first, is multiplied by the uniformiser, reduced against the other
// members, and shifted back down.  The up-shift probes divisibilities which
// only appear after scaling by the uniformiser; the down-shift is exact
// because every intermediate coefficient retains one uniformiser factor (the
// leading term of any reducer carries its minimal coefficient valuation).
// The reduction always runs under the integral rule, whatever rule the
// surrounding computation uses, as it governs basis tightening rather than
// final normalisation.  A member whose shifted form reduces to zero has
// become redundant and is dropped.
func (b *basis[E]) reReduce() error {
	for i := len(b.rgb) - 1; i >= 0; i-- {
		var (
			g      = b.rgb[i]
			masked = slices.Clone(b.rgb)
			zero   E
		)
		// Mask out the member's own slot, which would otherwise cancel the
		// shifted form outright.
		masked[i] = zero
		//
		r, err := g.Shift(1).Reduce(masked, true, true, true)
		//
		if err != nil {
			return err
		}
		//
		if r.IsZero() {
			b.remove(i)
			continue
		}
		//
		g = r.Shift(-1)
		b.rgb[i] = g
		b.gb[b.indices[i]] = g
	}
	//
	return nil
}

// remove drops position i from the working basis, tombstoning its arena slot
// when the element was itself discovered during the run.
func (b *basis[E]) remove(i int) {
	if b.indices[i] >= b.l {
		b.dead.Set(uint(b.indices[i]))
	}
	//
	b.rgb = slices.Delete(b.rgb, i, i+1)
	b.indices = slices.Delete(b.indices, i, i+1)
}
