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

// Reduce divides this series against an ordered list of reducers, returning
// a remainder none of whose terms remain divisible, under the divisibility
// rule selected by integral, by any reducer's leading term.  When tail is
// set all terms are reduced, not only the leading one.  When full is set the
// term scan restarts from the top after every successful reduction step;
// otherwise the scan proceeds monotonically downwards, freezing each
// irreducible term into the remainder as it goes.  Nil or zero reducers are
// skipped.
//
// Every reduction step replaces a term by strictly smaller ones, and below
// any given term only finitely many terms exist above the precision floor,
// hence the scan terminates.
func (p *Series) Reduce(reducers []*Series, full bool, tail bool, integral bool) (*Series, error) {
	if p.IsZero() {
		return p, nil
	}
	//
	f := p
	//
	for i := 0; i < len(f.terms); {
		if i > 0 && !tail {
			break
		}
		//
		t := f.terms[i]
		matched := false
		//
		for _, g := range reducers {
			if g.IsZero() || !g.LeadingTerm().Divides(t.term, integral) {
				continue
			}
			// Quotient term: exponents and valuations subtract, and the unit
			// parts divide via the reducer's inverse unit.
			q := t.term.Quo(g.LeadingTerm())
			//
			inv, err := f.ring.invUnit(&g.terms[0].unit, g.prec-g.Valuation())
			//
			if err != nil {
				return nil, err
			}
			//
			inv.Mul(inv, &t.unit)
			// The subtraction cancels the term under scrutiny exactly,
			// introducing strictly smaller terms only.
			f = f.sub(g.mulTerm(q, inv))
			matched = true
			//
			break
		}
		//
		switch {
		case !matched:
			i++
		case full:
			i = 0
		}
		// A matched term vanished from position i, hence when not restarting
		// the scan resumes at the same index.
	}
	//
	return f, nil
}
