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
package term

import (
	"fmt"
	"slices"
	"strings"
)

// Term identifies a single monomial of a Tate series: the valuation of its
// coefficient together with its exponent tuple (one entry per variable).
// Terms are immutable values and are totally ordered by Cmp.
type Term struct {
	// valuation of the coefficient attached to this monomial.
	valuation int64
	// exponent tuple, one (non-negative) entry per variable.
	exponent []uint
}

// New constructs a term from a coefficient valuation and an exponent tuple.
// The exponent slice is cloned, hence the caller retains ownership.
func New(valuation int64, exponent []uint) Term {
	return Term{valuation, slices.Clone(exponent)}
}

// Valuation returns the coefficient valuation of this term.
func (t Term) Valuation() int64 {
	return t.valuation
}

// Exponent returns the exponent tuple of this term.  The returned slice must
// not be mutated.
func (t Term) Exponent() []uint {
	return t.exponent
}

// Degree returns the total degree of this term (the sum of its exponents).
func (t Term) Degree() uint {
	var deg uint
	//
	for _, e := range t.exponent {
		deg += e
	}
	//
	return deg
}

// Cmp implements the Tate term order.  A term with lower valuation is
// greater; amongst terms of equal valuation, the greater term is decided by
// graded reverse lexicographic order on the exponents.  Returns a negative
// value if this term is less than the other, zero if they are equal, and a
// positive value otherwise.
func (t Term) Cmp(other Term) int {
	// Lower valuation orders larger.
	if t.valuation != other.valuation {
		if t.valuation < other.valuation {
			return 1
		}
		//
		return -1
	}
	//
	return cmpGrevlex(t.exponent, other.exponent)
}

// Divides determines whether this term divides the other.  The exponent tuple
// of this term must be contained componentwise in that of the other; when
// integral is set, the other term must additionally have valuation at least
// that of this term.  In the non-integral (field) case the valuation
// condition is dropped, since any valuation gap is absorbed by unit scaling.
func (t Term) Divides(other Term, integral bool) bool {
	if integral && other.valuation < t.valuation {
		return false
	}
	//
	for i, e := range t.exponent {
		if e > exponentAt(other.exponent, i) {
			return false
		}
	}
	//
	return true
}

// IsCoprime determines whether this term and the other have disjoint exponent
// support, i.e. whether their componentwise exponent minimum is zero.
func (t Term) IsCoprime(other Term) bool {
	for i, e := range t.exponent {
		if e > 0 && exponentAt(other.exponent, i) > 0 {
			return false
		}
	}
	//
	return true
}

// Equal performs structural equality between two terms.
func (t Term) Equal(other Term) bool {
	return t.Cmp(other) == 0
}

// Mul returns the product of this term and the other: valuations add, and
// exponents add componentwise.
func (t Term) Mul(other Term) Term {
	var (
		n   = max(len(t.exponent), len(other.exponent))
		exp = make([]uint, n)
	)
	//
	for i := range exp {
		exp[i] = exponentAt(t.exponent, i) + exponentAt(other.exponent, i)
	}
	//
	return Term{t.valuation + other.valuation, exp}
}

// Quo returns the quotient of this term by the other: valuations subtract,
// and exponents subtract componentwise.  This requires the other term to
// divide this one (at least in the non-integral sense); when it does not,
// Quo panics.
func (t Term) Quo(other Term) Term {
	exp := make([]uint, len(t.exponent))
	//
	for i := range exp {
		e := exponentAt(other.exponent, i)
		//
		if e > t.exponent[i] {
			panic(fmt.Sprintf("term %s does not divide %s", other.String(), t.String()))
		}
		//
		exp[i] = t.exponent[i] - e
	}
	//
	return Term{t.valuation - other.valuation, exp}
}

// Lcm returns the least common multiple of this term and the other: the
// componentwise exponent maximum together with the valuation maximum.
func (t Term) Lcm(other Term) Term {
	var (
		n   = max(len(t.exponent), len(other.exponent))
		exp = make([]uint, n)
	)
	//
	for i := range exp {
		exp[i] = max(exponentAt(t.exponent, i), exponentAt(other.exponent, i))
	}
	//
	return Term{max(t.valuation, other.valuation), exp}
}

// String constructs a human-readable representation of this term, writing
// the valuation as a power of the uniformiser symbol "p".
func (t Term) String() string {
	var builder strings.Builder
	//
	switch {
	case t.valuation == 1:
		builder.WriteString("p")
	case t.valuation != 0:
		builder.WriteString(fmt.Sprintf("p^%d", t.valuation))
	}
	//
	for i, e := range t.exponent {
		if e == 0 {
			continue
		}
		//
		if builder.Len() != 0 {
			builder.WriteString("*")
		}
		//
		builder.WriteString(variableName(i))
		//
		if e != 1 {
			builder.WriteString(fmt.Sprintf("^%d", e))
		}
	}
	//
	if builder.Len() == 0 {
		return "1"
	}
	//
	return builder.String()
}

// cmpGrevlex compares two exponent tuples under graded reverse lexicographic
// order.  Higher total degree orders larger; amongst tuples of equal degree,
// the larger tuple is the one whose last non-zero entry of the difference is
// negative.
func cmpGrevlex(lhs []uint, rhs []uint) int {
	var ldeg, rdeg uint
	//
	for _, e := range lhs {
		ldeg += e
	}
	//
	for _, e := range rhs {
		rdeg += e
	}
	//
	if ldeg != rdeg {
		if ldeg < rdeg {
			return -1
		}
		//
		return 1
	}
	//
	for i := max(len(lhs), len(rhs)) - 1; i >= 0; i-- {
		l, r := exponentAt(lhs, i), exponentAt(rhs, i)
		//
		if l != r {
			if l > r {
				return -1
			}
			//
			return 1
		}
	}
	//
	return 0
}

// exponentAt reads the ith entry of an exponent tuple, treating missing
// entries as zero.  This permits comparing tuples of different lengths.
func exponentAt(exp []uint, i int) uint {
	if i < len(exp) {
		return exp[i]
	}
	//
	return 0
}

// variableName assigns default print names to variables: x, y, z, then x3,
// x4, and so on.
func variableName(i int) string {
	if i < 3 {
		return string(rune('x' + i))
	}
	//
	return fmt.Sprintf("x%d", i)
}
