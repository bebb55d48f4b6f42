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
package tate

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/consensys/go-tate/pkg/tate/groebner"
)

// Algorithm selects the Gröbner basis algorithm used by an ideal.
type Algorithm string

const (
	// Buchberger is the plain Buchberger algorithm under the divisibility
	// rule natural to the coefficient ring.
	Buchberger Algorithm = "buchberger"
	// BuchbergerIntegral runs Buchberger as though the coefficient ring were
	// its ring of integers, even over a field, restoring normalisation at
	// the end.  This tends to behave better under valuation truncation.
	BuchbergerIntegral Algorithm = "buchberger-integral"
)

// ErrUnsupportedAlgorithm signals an algorithm selector outside the
// enumerated set.
var ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

// Ideal represents the ideal generated by a finite family of series.  Ideals
// are immutable once constructed; computed bases are cached per
// (precision, algorithm) pair, and concurrent computations of the same basis
// are coalesced.
type Ideal struct {
	ring       *Ring
	generators []*Series
	// cache of computed bases; failed computations are never cached.
	mu    sync.Mutex
	cache map[basisKey][]*Series
	group singleflight.Group
}

type basisKey struct {
	prec      int64
	algorithm Algorithm
}

// NewIdeal constructs the ideal generated by the given series over the given
// ring.
func NewIdeal(ring *Ring, generators ...*Series) *Ideal {
	return &Ideal{
		ring:       ring,
		generators: slices.Clone(generators),
		cache:      make(map[basisKey][]*Series),
	}
}

// Ring returns the ring this ideal lives in.
func (p *Ideal) Ring() *Ring {
	return p.ring
}

// Generators returns (a copy of) the generating family of this ideal.
func (p *Ideal) Generators() []*Series {
	return slices.Clone(p.generators)
}

// GroebnerBasis computes the canonical Gröbner basis of this ideal at a
// given absolute precision using a given algorithm.  A non-positive
// precision selects the ring's precision cap.  The result is cached, so
// repeated calls with identical arguments return the cached basis; the
// returned slice is shared and must not be mutated.
func (p *Ideal) GroebnerBasis(prec int64, algorithm Algorithm) ([]*Series, error) {
	var integral bool
	//
	switch algorithm {
	case Buchberger:
	case BuchbergerIntegral:
		integral = true
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedAlgorithm, algorithm)
	}
	//
	if prec <= 0 {
		prec = p.ring.prec
	}
	//
	key := basisKey{prec, algorithm}
	//
	p.mu.Lock()
	basis, ok := p.cache[key]
	p.mu.Unlock()
	//
	if ok {
		return basis, nil
	}
	// Coalesce concurrent computations of the same basis; the computation is
	// a pure function of the ideal and the key.
	value, err, _ := p.group.Do(fmt.Sprintf("%d/%s", prec, algorithm), func() (any, error) {
		computed, err := groebner.Basis(p.ring, p.generators, prec, integral)
		//
		if err != nil {
			return nil, err
		}
		//
		p.mu.Lock()
		p.cache[key] = computed
		p.mu.Unlock()
		//
		return computed, nil
	})
	//
	if err != nil {
		return nil, err
	}
	//
	return value.([]*Series), nil
}

// Contains determines whether a given series belongs to this ideal, by
// reducing it against the Gröbner basis and testing the remainder for zero.
func (p *Ideal) Contains(f *Series) (bool, error) {
	if f.IsZero() {
		return true, nil
	}
	//
	basis, err := p.GroebnerBasis(0, p.defaultAlgorithm())
	//
	if err != nil {
		return false, err
	}
	//
	r, err := f.Reduce(basis, true, true, !p.ring.field)
	//
	if err != nil {
		return false, err
	}
	//
	return r.IsZero(), nil
}

// ContainsIdeal determines whether this ideal contains the other, i.e.
// whether every generator of the other reduces to zero against this ideal's
// basis.
func (p *Ideal) ContainsIdeal(other *Ideal) (bool, error) {
	for _, g := range other.generators {
		ok, err := p.Contains(g)
		//
		if !ok || err != nil {
			return false, err
		}
	}
	//
	return true, nil
}

// Equal determines whether this ideal and the other are equal, via mutual
// containment.  The remaining ideal comparisons are compositions of Equal
// and ContainsIdeal.
func (p *Ideal) Equal(other *Ideal) (bool, error) {
	if ok, err := p.ContainsIdeal(other); !ok || err != nil {
		return false, err
	}
	//
	return other.ContainsIdeal(p)
}

// StrictlyContains determines whether this ideal strictly contains the
// other.
func (p *Ideal) StrictlyContains(other *Ideal) (bool, error) {
	if ok, err := p.ContainsIdeal(other); !ok || err != nil {
		return false, err
	}
	//
	ok, err := other.ContainsIdeal(p)
	//
	return !ok && err == nil, err
}

// IsSaturated determines whether this ideal is closed under division by the
// uniformiser.  Over a field this is automatic; otherwise it holds exactly
// when every basis element has valuation zero.
func (p *Ideal) IsSaturated() (bool, error) {
	if p.ring.field {
		return true, nil
	}
	//
	basis, err := p.GroebnerBasis(0, p.defaultAlgorithm())
	//
	if err != nil {
		return false, err
	}
	//
	for _, g := range basis {
		if g.Valuation() != 0 {
			return false, nil
		}
	}
	//
	return true, nil
}

// Saturate returns the closure of this ideal under division by the
// uniformiser: the ideal generated by the monic forms of its basis elements,
// shifted down to valuation zero.  Over a field this is the ideal itself.
func (p *Ideal) Saturate() (*Ideal, error) {
	if p.ring.field {
		return p, nil
	}
	//
	basis, err := p.GroebnerBasis(0, p.defaultAlgorithm())
	//
	if err != nil {
		return nil, err
	}
	//
	generators := make([]*Series, len(basis))
	//
	for i, g := range basis {
		m, err := g.Monic()
		//
		if err != nil {
			return nil, err
		}
		//
		generators[i] = m.Shift(-m.Valuation())
	}
	//
	return NewIdeal(p.ring, generators...), nil
}

// defaultAlgorithm picks the algorithm matching the coefficient ring: the
// integral variant is the natural one over a ring of integers.
func (p *Ideal) defaultAlgorithm() Algorithm {
	if p.ring.field {
		return Buchberger
	}
	//
	return BuchbergerIntegral
}
