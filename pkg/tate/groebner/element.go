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

// Element describes the capabilities the Buchberger driver requires of a
// truncated Tate series.  Elements are immutable values: every operation
// returns a fresh element, and an element placed in a basis is never mutated
// in place.  Within an element, terms are kept in strictly decreasing term
// order, hence the leading term is the greatest; a consequence of the term
// order is that the leading term also carries the minimal coefficient
// valuation of the element, a fact the driver relies upon when shifting by
// the uniformiser.
type Element[E any] interface {
	// IsZero determines whether this is the zero element.
	IsZero() bool

	// Valuation returns the valuation of this element, that is the minimal
	// valuation across its coefficients.  Callers must check IsZero first.
	Valuation() int64

	// LeadingTerm returns the greatest term of this element.  Calling this on
	// the zero element is a contract violation and panics.
	LeadingTerm() term.Term

	// Truncate returns this element truncated to a given absolute precision.
	// The result may be the zero element.
	Truncate(prec int64) E

	// SPolynomial constructs the combination of this element and the other
	// which cancels their leading terms, returning the zero element when no
	// cancellation is possible or needed.
	SPolynomial(other E) E

	// Reduce divides this element against an ordered list of reducers,
	// returning a remainder none of whose terms remain divisible, under the
	// divisibility rule selected by integral, by any reducer's leading term.
	// When tail is set all terms are reduced, not only the leading one; when
	// full is set the term scan restarts from the top after every successful
	// reduction step.  Zero entries amongst the reducers are skipped, which
	// permits masking out a slot.  Failures of the underlying coefficient
	// arithmetic (e.g. precision exhaustion) are propagated unmodified.
	Reduce(reducers []E, full bool, tail bool, integral bool) (E, error)

	// Monic normalises this element: over a field the leading coefficient
	// becomes one (and the valuation zero); over a ring of integers the
	// leading coefficient becomes an exact power of the uniformiser (its
	// unit part is scaled away).
	Monic() (E, error)

	// Shift multiplies this element by the kth power of the uniformiser.  A
	// negative k divides, which is exact only when every coefficient of this
	// element has valuation at least -k; an inexact division is a contract
	// violation and panics.
	Shift(k int64) E
}

// Ring describes the capabilities the driver requires of the coefficient
// ring underlying its elements.
type Ring interface {
	// IsField determines whether the coefficient ring is a field, i.e.
	// whether the uniformiser is invertible.
	IsField() bool

	// PrecisionCap returns the maximal absolute precision representable by
	// the coefficient ring.
	PrecisionCap() int64
}
