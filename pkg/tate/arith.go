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
	"fmt"
	"math/big"

	"github.com/consensys/go-tate/pkg/tate/term"
)

// Truncate returns this series truncated to a given absolute precision:
// terms at or beyond the bound are dropped and the remaining coefficients
// are reduced accordingly.  The result may be the zero series.
func (p *Series) Truncate(prec int64) *Series {
	if p.IsZero() {
		return &Series{p.ring, min(p.prec, prec, p.ring.prec), nil}
	}
	//
	return newSeries(p.ring, min(p.prec, prec), p.raw())
}

// Shift multiplies this series by the kth power of the uniformiser, shifting
// every coefficient valuation (and the precision bound) by k.  A negative k
// divides; this is exact only when the valuation of the series is at least
// -k, and panics otherwise.
func (p *Series) Shift(k int64) *Series {
	if p.IsZero() {
		return &Series{p.ring, min(p.prec+k, p.ring.prec), nil}
	}
	//
	if k < 0 && p.terms[0].term.Valuation()+k < 0 {
		panic(fmt.Sprintf("inexact uniformiser shift by %d of %s", k, p.String()))
	}
	//
	raw := p.raw()
	//
	for i := range raw {
		raw[i].val += k
	}
	//
	return newSeries(p.ring, p.prec+k, raw)
}

// Monic normalises this series.  Over a field the entire leading coefficient
// is scaled away, leaving a monic series of valuation zero; over a ring of
// integers only the unit part of the leading coefficient is removed, leaving
// an exact uniformiser power.  The zero series is returned unchanged.
func (p *Series) Monic() (*Series, error) {
	if p.IsZero() {
		return p, nil
	}
	//
	var (
		lead = p.terms[0]
		v0   = lead.term.Valuation()
	)
	//
	inv, err := p.ring.invUnit(&lead.unit, p.prec-v0)
	//
	if err != nil {
		return nil, err
	}
	//
	var (
		raw  = p.raw()
		prec = p.prec
	)
	//
	for i := range raw {
		raw[i].unit.Mul(&raw[i].unit, inv)
	}
	// Over a field the uniformiser is invertible, hence the valuation itself
	// can also be scaled away.
	if p.ring.field && v0 != 0 {
		for i := range raw {
			raw[i].val -= v0
		}
		//
		prec -= v0
	}
	//
	return newSeries(p.ring, prec, raw), nil
}

// SPolynomial constructs the S-polynomial of this series and the other: both
// are brought onto their leading terms' least common multiple, with each
// side scaled by the other's leading unit so the leading coefficients cancel
// without any inversion.  Returns the zero series when either operand is
// zero.
func (p *Series) SPolynomial(other *Series) *Series {
	if p.IsZero() || other.IsZero() {
		return &Series{p.ring, p.ring.prec, nil}
	}
	//
	var (
		tf = p.LeadingTerm()
		tg = other.LeadingTerm()
		l  = tf.Lcm(tg)
	)
	//
	lhs := p.mulTerm(l.Quo(tf), other.LeadingUnit())
	rhs := other.mulTerm(l.Quo(tg), p.LeadingUnit())
	// Leading terms now agree exactly and cancel in the subtraction.
	return lhs.sub(rhs)
}

// mulTerm multiplies this series by a single term with a given unit
// coefficient.  The scale must be a unit of the coefficient ring.
func (p *Series) mulTerm(q term.Term, scale *big.Int) *Series {
	var (
		raw  = make([]rawTerm, len(p.terms))
		prec = p.prec + q.Valuation()
	)
	//
	for i, m := range p.terms {
		t := m.term.Mul(q)
		//
		raw[i].val = t.Valuation()
		raw[i].unit.Mul(&m.unit, scale)
		raw[i].exp = t.Exponent()
	}
	//
	return newSeries(p.ring, prec, raw)
}

// Add returns the sum of this series and the other, at the weaker of the
// two precision bounds.
func (p *Series) Add(other *Series) *Series {
	var (
		raw  = append(p.raw(), other.raw()...)
		prec = min(p.prec, other.prec)
	)
	//
	return newSeries(p.ring, prec, raw)
}

// Neg returns the negation of this series.
func (p *Series) Neg() *Series {
	raw := p.raw()
	//
	for i := range raw {
		raw[i].unit.Neg(&raw[i].unit)
	}
	//
	return newSeries(p.ring, p.prec, raw)
}

// sub returns this series minus the other.
func (p *Series) sub(other *Series) *Series {
	return p.Add(other.Neg())
}
