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
	"slices"
	"strings"

	"github.com/consensys/go-tate/pkg/tate/term"
)

// monomial is one term of a series: the unit part of its coefficient
// together with the term identifying its valuation and exponent.  The unit
// is kept as the canonical residue modulo p^(prec-valuation), where prec is
// the absolute precision of the enclosing series; the full coefficient is
// unit times the uniformiser raised to the valuation.
type monomial struct {
	unit big.Int
	term term.Term
}

// Series is a truncated Tate series: an ordered term sequence together with
// an absolute precision bound.  Terms are kept in strictly decreasing term
// order, hence index 0 is always the leading term, and no two terms share an
// exponent tuple.  A series is immutable once constructed; every operation
// returns a fresh value.  An empty term list represents the zero series; a
// nil pointer is also accepted as zero by the predicates (IsZero, Len,
// Equal, String) and may appear amongst reducers, but arithmetic operations
// require a series constructed from a ring (see Zero), since a nil series
// carries neither ring nor precision.
type Series struct {
	ring  *Ring
	prec  int64
	terms []monomial
}

// rawTerm is the intermediate representation used while assembling a series:
// an unnormalised (valuation, unit, exponent) triple.
type rawTerm struct {
	val  int64
	unit big.Int
	exp  []uint
}

// NewSeries constructs a series from parallel lists of integer coefficients
// and exponent tuples, at the precision cap of this ring.  Exponent tuples
// must not exceed the number of ring variables.  Repeated exponents are
// combined.
func (r *Ring) NewSeries(coefficients []*big.Int, exponents [][]uint) (*Series, error) {
	if len(coefficients) != len(exponents) {
		return nil, fmt.Errorf("mismatched coefficients (%d) and exponents (%d)",
			len(coefficients), len(exponents))
	}
	//
	var raw []rawTerm
	//
	for i, c := range coefficients {
		if len(exponents[i]) > len(r.names) {
			return nil, fmt.Errorf("exponent tuple %v exceeds %d variables", exponents[i], len(r.names))
		}
		//
		if c == nil || c.Sign() == 0 {
			continue
		}
		//
		var (
			rt        rawTerm
			val, unit = r.splitValuation(c)
		)
		//
		rt.val = val
		rt.unit.Set(unit)
		rt.exp = slices.Clone(exponents[i])
		raw = append(raw, rt)
	}
	//
	return newSeries(r, r.prec, raw), nil
}

// Zero returns the zero series at the precision cap of this ring.
func (r *Ring) Zero() *Series {
	return &Series{r, r.prec, nil}
}

// newSeries normalises a list of raw terms into a canonical series at a
// given absolute precision: terms sharing an exponent are combined, terms at
// or beyond the precision bound are dropped, units are reduced into their
// canonical residues, and the result is sorted in decreasing term order.
func newSeries(r *Ring, prec int64, raw []rawTerm) *Series {
	prec = min(prec, r.prec)
	// Group raw terms by exponent tuple.
	slices.SortFunc(raw, func(a, b rawTerm) int {
		return slices.Compare(a.exp, b.exp)
	})
	//
	var terms []monomial
	//
	for i := 0; i < len(raw); {
		j := i + 1
		//
		acc, ok := raw[i], raw[i].unit.Sign() != 0 && raw[i].val < prec
		//
		for ; j < len(raw) && slices.Compare(raw[j].exp, acc.exp) == 0; j++ {
			if !ok {
				acc, ok = raw[j], raw[j].unit.Sign() != 0 && raw[j].val < prec
				continue
			}
			//
			acc, ok = addRaw(r, prec, acc, raw[j])
		}
		//
		if ok {
			var m monomial
			//
			m.unit.Set(r.reduceUnit(&acc.unit, prec-acc.val))
			m.term = term.New(acc.val, acc.exp)
			//
			if m.unit.Sign() != 0 {
				terms = append(terms, m)
			}
		}
		//
		i = j
	}
	// Decreasing term order, so the leading term sits at index 0.
	slices.SortFunc(terms, func(a, b monomial) int {
		return b.term.Cmp(a.term)
	})
	//
	return &Series{r, prec, terms}
}

// addRaw combines two raw terms sharing an exponent tuple.  The sum is
// re-split into valuation and unit part, since units of equal valuation can
// cancel and release further uniformiser factors.  Returns false when the
// sum vanishes at the working precision.
func addRaw(r *Ring, prec int64, a, b rawTerm) (rawTerm, bool) {
	if a.val > b.val {
		a, b = b, a
	}
	//
	var w big.Int
	// w = a.unit + b.unit * p^(b.val - a.val), known modulo p^(prec - a.val).
	w.Mul(&b.unit, r.modulus(b.val-a.val))
	w.Add(&w, &a.unit)
	w.Set(r.reduceUnit(&w, prec-a.val))
	//
	if w.Sign() == 0 {
		return rawTerm{}, false
	}
	//
	var (
		rt        rawTerm
		val, unit = r.splitValuation(&w)
	)
	//
	rt.val = a.val + val
	rt.unit.Set(unit)
	rt.exp = a.exp
	//
	return rt, rt.val < prec
}

// raw expands this series back into raw terms, for feeding a derived series
// through newSeries.
func (p *Series) raw() []rawTerm {
	raw := make([]rawTerm, len(p.terms))
	//
	for i, m := range p.terms {
		raw[i].val = m.term.Valuation()
		raw[i].unit.Set(&m.unit)
		raw[i].exp = m.term.Exponent()
	}
	//
	return raw
}

// Ring returns the ring this series belongs to.
func (p *Series) Ring() *Ring {
	return p.ring
}

// Precision returns the absolute precision bound of this series.
func (p *Series) Precision() int64 {
	return p.prec
}

// IsZero determines whether this is the zero series.
func (p *Series) IsZero() bool {
	return p == nil || len(p.terms) == 0
}

// Len returns the number of terms in this series.
func (p *Series) Len() uint {
	if p == nil {
		return 0
	}
	//
	return uint(len(p.terms))
}

// Term returns the ith term of this series, in decreasing term order.
func (p *Series) Term(ith uint) term.Term {
	return p.terms[ith].term
}

// LeadingTerm returns the greatest term of this series.  Calling this on the
// zero series is a contract violation.
func (p *Series) LeadingTerm() term.Term {
	if p.IsZero() {
		panic("leading term of the zero series")
	}
	//
	return p.terms[0].term
}

// LeadingUnit returns (a copy of) the unit part of the leading coefficient.
func (p *Series) LeadingUnit() *big.Int {
	var u big.Int
	return u.Set(&p.terms[0].unit)
}

// Valuation returns the valuation of this series, i.e. that of its leading
// term.  For the zero series this is the precision bound, the best available
// lower bound; callers are expected to check IsZero first.
func (p *Series) Valuation() int64 {
	if p.IsZero() {
		return p.prec
	}
	//
	return p.terms[0].term.Valuation()
}

// Equal performs structural equality between two series: identical term
// sequences (valuations, exponents and unit residues) at identical
// precision.
func (p *Series) Equal(other *Series) bool {
	if p.IsZero() || other.IsZero() {
		return p.IsZero() && other.IsZero()
	}
	//
	if p.prec != other.prec || len(p.terms) != len(other.terms) {
		return false
	}
	//
	for i := range p.terms {
		if !p.terms[i].term.Equal(other.terms[i].term) {
			return false
		}
		//
		if p.terms[i].unit.Cmp(&other.terms[i].unit) != 0 {
			return false
		}
	}
	//
	return true
}

// String constructs a human-readable representation of this series using the
// ring's variable names, e.g. "5*x^2*y + p^2 + O(p^10)".
func (p *Series) String() string {
	if p.IsZero() {
		return "0"
	}
	//
	var builder strings.Builder
	//
	for i, m := range p.terms {
		if i != 0 {
			builder.WriteString(" + ")
		}
		//
		builder.WriteString(p.formatMonomial(m))
	}
	//
	builder.WriteString(fmt.Sprintf(" + O(p^%d)", p.prec))
	//
	return builder.String()
}

func (p *Series) formatMonomial(m monomial) string {
	var (
		parts []string
		one   = big.NewInt(1)
		val   = m.term.Valuation()
	)
	//
	if m.unit.Cmp(one) != 0 {
		parts = append(parts, m.unit.String())
	}
	//
	switch {
	case val == 1:
		parts = append(parts, "p")
	case val != 0:
		parts = append(parts, fmt.Sprintf("p^%d", val))
	}
	//
	for i, e := range m.term.Exponent() {
		if e == 0 {
			continue
		}
		//
		name := p.ring.names[i]
		//
		if e == 1 {
			parts = append(parts, name)
		} else {
			parts = append(parts, fmt.Sprintf("%s^%d", name, e))
		}
	}
	//
	if len(parts) == 0 {
		return "1"
	}
	//
	return strings.Join(parts, "*")
}
