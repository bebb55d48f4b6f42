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
	"github.com/consensys/go-tate/pkg/tate/term"
)

// pair is a pending S-polynomial awaiting reduction.  It records the sort
// key of the candidate (the leading term of s) together with the historical
// indices of the two basis elements which produced it.  Pairs hold indices
// into the append-only arena rather than positions in the working basis, so
// they remain meaningful while the working basis is pruned; a pair whose
// source slot has been tombstoned is discarded when popped.
type pair[E any] struct {
	// key is the leading term of the candidate S-polynomial.
	key term.Term
	// i and j are the arena slots of the elements the candidate was built from.
	i, j uint
	// s is the candidate itself.
	s E
}

// scheduler is a min-heap of pending pairs, popping the candidate with
// smallest (valuation, exponent) leading term first.  This approximates the
// Buchberger normal selection strategy.  The code follows the usual binary
// heap sift operations, with a concrete element type to avoid the
// indirection of container/heap.
type scheduler[E any] struct {
	pairs []pair[E]
}

// less decides the pop order: ascending valuation first, then ascending
// monomial order on the exponent, with the source indices as a final tie
// break to keep the computation deterministic.
func (p *scheduler[E]) less(a, b pair[E]) bool {
	if a.key.Valuation() != b.key.Valuation() {
		return a.key.Valuation() < b.key.Valuation()
	}
	// Equal valuations, hence Cmp is decided by the monomial order alone.
	if c := a.key.Cmp(b.key); c != 0 {
		return c < 0
	}
	//
	if a.i != b.i {
		return a.i < b.i
	}
	//
	return a.j < b.j
}

// Len returns the number of pending pairs.
func (p *scheduler[E]) Len() uint {
	return uint(len(p.pairs))
}

// Push a pending pair onto the heap.
func (p *scheduler[E]) Push(item pair[E]) {
	p.pairs = append(p.pairs, item)
	p.up(len(p.pairs) - 1)
}

// Pop removes and returns the pending pair with the smallest key.
func (p *scheduler[E]) Pop() pair[E] {
	var (
		n    = len(p.pairs) - 1
		item = p.pairs[0]
	)
	//
	p.pairs[0] = p.pairs[n]
	p.pairs = p.pairs[:n]
	//
	if n > 0 {
		p.down(0)
	}
	//
	return item
}

func (p *scheduler[E]) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !p.less(p.pairs[j], p.pairs[i]) {
			break
		}
		//
		p.pairs[i], p.pairs[j] = p.pairs[j], p.pairs[i]
		j = i
	}
}

func (p *scheduler[E]) down(i0 int) {
	var (
		i = i0
		n = len(p.pairs)
	)
	//
	for {
		j := 2*i + 1 // left child
		if j >= n {
			break
		}
		//
		if k := j + 1; k < n && p.less(p.pairs[k], p.pairs[j]) {
			j = k // right child
		}
		//
		if !p.less(p.pairs[j], p.pairs[i]) {
			break
		}
		//
		p.pairs[i], p.pairs[j] = p.pairs[j], p.pairs[i]
		i = j
	}
}
