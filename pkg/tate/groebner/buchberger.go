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

	log "github.com/sirupsen/logrus"
)

// Basis computes the canonical Gröbner basis of the ideal generated by the
// given elements, truncated at a given absolute precision.  When integral is
// set the computation proceeds as though the coefficient ring were its ring
// of integers, even over a field, with normalisation restored at the end;
// this tends to give better numerical stability under valuation truncation.
//
// The returned basis is minimal (no leading term divides another), reduced
// (no term is divisible by another member's leading term, including after an
// extra uniformiser factor), normalised (monic over a field, exact
// uniformiser-power leading coefficients otherwise) and sorted in descending
// order of leading term.  An empty or all-zero generator list yields an
// empty basis.  Arithmetic failures of the coefficient layer are propagated
// unmodified.
func Basis[E Element[E]](ring Ring, generators []E, prec int64, integral bool) ([]E, error) {
	var initial []E
	// Truncate generators to the working precision, dropping any which
	// vanish entirely.
	for _, g := range generators {
		if !g.IsZero() {
			if t := g.Truncate(prec); !t.IsZero() {
				initial = append(initial, t)
			}
		}
	}
	//
	if len(initial) == 0 {
		return []E{}, nil
	}
	//
	var (
		b     = newBasis(initial, integral)
		queue scheduler[E]
		l     = uint(len(initial))
	)
	// Seed the scheduler with all S-polynomials of the original generators,
	// skipping coprime pairs (their S-polynomial always reduces to zero).
	for i := uint(0); i < l; i++ {
		for j := i + 1; j < l; j++ {
			push(&queue, b.gb[i], b.gb[j], i, j)
		}
	}
	//
	log.Debugf("buchberger: %d generators, %d initial pairs, precision %d", l, queue.Len(), prec)
	// Main loop.  The pending flag arms a full re-reduction of the working
	// basis, which runs at the top of the iteration following an insertion
	// and therefore never before the first new element is admitted.
	pending := false
	//
	for queue.Len() > 0 {
		if pending {
			if err := b.reReduce(); err != nil {
				return nil, err
			}
			//
			pending = false
		}
		//
		p := queue.Pop()
		// A pair referencing a tombstoned slot is stale; dropping it is
		// expected pruning, not an error.
		if !b.alive(p.i) || !b.alive(p.j) {
			continue
		}
		//
		r, err := p.s.Reduce(b.rgb, false, true, integral)
		//
		if err != nil {
			return nil, err
		}
		//
		if r.IsZero() {
			// The candidate reduces away: a witness that this pair demands
			// no new basis element.
			continue
		}
		// Admit the remainder.  New pairs are taken against every live
		// historical element, not merely the working basis, before the
		// remainder claims its own arena slot.
		slot := uint(len(b.gb))
		//
		for k := uint(0); k < slot; k++ {
			if b.alive(k) {
				push(&queue, b.gb[k], r, k, slot)
			}
		}
		//
		b.insert(r)
		//
		pending = true
		//
		log.Debugf("buchberger: admitted %s at slot %d (%d pairs pending, basis size %d)",
			r.LeadingTerm().String(), slot, queue.Len(), len(b.rgb))
	}
	//
	if err := finalise(ring, b, integral); err != nil {
		return nil, err
	}
	// Canonical order: descending by leading term.
	slices.SortFunc(b.rgb, func(x, y E) int {
		return y.LeadingTerm().Cmp(x.LeadingTerm())
	})
	//
	return b.rgb, nil
}

// push computes the S-polynomial of two elements and, when it may still
// contribute, schedules it keyed by its leading term.
func push[E Element[E]](queue *scheduler[E], g, h E, i, j uint) {
	if g.LeadingTerm().IsCoprime(h.LeadingTerm()) {
		return
	}
	//
	if s := g.SPolynomial(h); !s.IsZero() {
		queue.Push(pair[E]{s.LeadingTerm(), i, j, s})
	}
}

// finalise normalises the working basis once the scheduler has drained.
func finalise[E Element[E]](ring Ring, b *basis[E], integral bool) error {
	if ring.IsField() && integral {
		// The computation ran under the integral rule, so the working basis
		// may still contain elements redundant over the field.  Minimise
		// under strict divisibility, normalise, then tighten once more.
		b.minimise(false)
		//
		if err := monicAll(b); err != nil {
			return err
		}
		//
		return b.reReduce()
	}
	// Over a field every element becomes monic; over a ring of integers the
	// unit part of each leading coefficient is scaled away, leaving an exact
	// uniformiser power.  Both are Monic on the element contract.
	return monicAll(b)
}

func monicAll[E Element[E]](b *basis[E]) error {
	for i, g := range b.rgb {
		m, err := g.Monic()
		//
		if err != nil {
			return err
		}
		//
		b.rgb[i] = m
		b.gb[b.indices[i]] = m
	}
	//
	return nil
}
