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
	"math/big"
	"testing"

	"github.com/consensys/go-tate/pkg/tate/term"
)

func Test_SeriesNew_01(t *testing.T) {
	// Terms come out in decreasing term order, whatever order they went in.
	f := parseSeries(t, ringZ3(t), "9*x^2 + 5*x*y^2")
	//
	if f.Len() != 2 {
		t.Fatalf("expected 2 terms, got %d", f.Len())
	}
	//
	checkTerm(t, f.LeadingTerm(), 0, []uint{1, 2})
	checkTerm(t, f.Term(1), 2, []uint{2, 0})
}

func Test_SeriesNew_02(t *testing.T) {
	// Coefficients carrying uniformiser factors split into valuation and
	// unit part.
	f := parseSeries(t, ringZ3(t), "18*x")
	//
	checkTerm(t, f.LeadingTerm(), 2, []uint{1, 0})
	//
	if f.LeadingUnit().Cmp(big.NewInt(2)) != 0 {
		t.Errorf("expected leading unit 2, got %s", f.LeadingUnit())
	}
}

func Test_SeriesNew_03(t *testing.T) {
	// Repeated exponents combine, and a sum of units can release further
	// uniformiser factors.
	f := parseSeries(t, ringZ3(t), "5 + 4")
	//
	if f.Len() != 1 {
		t.Fatalf("expected 1 term, got %d", f.Len())
	}
	//
	checkTerm(t, f.LeadingTerm(), 2, nil)
}

func Test_SeriesNew_04(t *testing.T) {
	// Exact cancellation yields the zero series.
	f := parseSeries(t, ringZ3(t), "5*x*y - 5*x*y")
	//
	if !f.IsZero() {
		t.Errorf("expected zero series, got %s", f)
	}
}

func Test_SeriesNew_05(t *testing.T) {
	// Coefficients at or beyond the precision cap carry no information.
	f := parseSeries(t, ringZ3(t), "59049*x + 1")
	//
	if f.Len() != 1 || f.LeadingTerm().Degree() != 0 {
		t.Errorf("expected constant series, got %s", f)
	}
}

func Test_SeriesTruncate_01(t *testing.T) {
	f := parseSeries(t, ringZ3(t), "9*x^2 + 5*x*y^2")
	g := f.Truncate(2)
	//
	if g.Len() != 1 || g.Precision() != 2 {
		t.Fatalf("unexpected truncation %s", g)
	}
	//
	checkTerm(t, g.LeadingTerm(), 0, []uint{1, 2})
	// Truncating beyond the existing bound changes nothing.
	if !f.Truncate(20).Equal(f) {
		t.Errorf("truncation beyond the bound should be the identity")
	}
}

func Test_SeriesTruncate_02(t *testing.T) {
	f := parseSeries(t, ringZ3(t), "9*x^2")
	//
	if !f.Truncate(2).IsZero() {
		t.Errorf("expected zero series, got %s", f.Truncate(2))
	}
}

func Test_SeriesShift_01(t *testing.T) {
	var (
		f = parseSeries(t, ringZ3(t), "9*x^2 + 5*x*y^2")
		g = f.Shift(1)
	)
	//
	if g.Valuation() != 1 {
		t.Errorf("expected valuation 1, got %d", g.Valuation())
	}
	//
	checkTerm(t, g.LeadingTerm(), 1, []uint{1, 2})
	checkTerm(t, g.Term(1), 3, []uint{2, 0})
}

func Test_SeriesShift_02(t *testing.T) {
	// A downward shift is exact when every valuation covers it.
	var (
		f = parseSeries(t, ringZ3(t), "9*x^2 + 27*y")
		g = f.Shift(-1)
	)
	//
	checkTerm(t, g.LeadingTerm(), 1, []uint{2, 0})
	checkTerm(t, g.Term(1), 2, []uint{0, 1})
	//
	if g.Precision() != 9 {
		t.Errorf("expected precision 9, got %d", g.Precision())
	}
}

func Test_SeriesShift_03(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("inexact shift should panic")
		}
	}()
	//
	parseSeries(t, ringZ3(t), "5*x*y^2").Shift(-1)
}

func Test_SeriesZero_01(t *testing.T) {
	// A nil series is accepted as zero by the predicates.
	var (
		f *Series
		r = ringZ3(t)
	)
	//
	if !f.IsZero() || f.Len() != 0 {
		t.Errorf("nil series should be zero")
	}
	//
	if f.String() != "0" {
		t.Errorf("unexpected rendering %q", f.String())
	}
	//
	if !f.Equal(r.Zero()) || !r.Zero().Equal(f) {
		t.Errorf("nil series should equal the zero series")
	}
}

func Test_SeriesZero_02(t *testing.T) {
	// The constructed zero series supports the full arithmetic surface.
	z := ringZ3(t).Zero()
	//
	if z.Valuation() != z.Precision() {
		t.Errorf("zero valuation should be the precision bound")
	}
	//
	if !z.Truncate(5).IsZero() || !z.Shift(2).IsZero() || !z.Neg().IsZero() {
		t.Errorf("zero should be preserved by truncation, shifts and negation")
	}
	//
	if !z.Add(z).IsZero() {
		t.Errorf("zero plus zero should be zero")
	}
}

func Test_SeriesAdd_01(t *testing.T) {
	var (
		r = ringZ3(t)
		f = parseSeries(t, r, "5*x*y^2 + 2")
		g = parseSeries(t, r, "9*x^2 + 7")
	)
	//
	if !f.Add(g).Equal(parseSeries(t, r, "5*x*y^2 + 9*x^2 + 9")) {
		t.Errorf("unexpected sum %s", f.Add(g))
	}
	//
	if !f.Add(f.Neg()).IsZero() {
		t.Errorf("a series plus its negation should vanish")
	}
}

func Test_SeriesMonic_01(t *testing.T) {
	// Ring of integers: only the unit part of the leading coefficient goes.
	f := parseSeries(t, ringZ3(t), "18*x^2")
	//
	m, err := f.Monic()
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	if !m.Equal(parseSeries(t, ringZ3(t), "9*x^2")) {
		t.Errorf("expected 9*x^2, got %s", m)
	}
}

func Test_SeriesMonic_02(t *testing.T) {
	// Ring of integers: the valuation survives, the leading unit becomes one.
	f := parseSeries(t, ringZ3(t), "9*x^2 + 5*x*y^2")
	//
	m, err := f.Monic()
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	if m.Valuation() != 0 || m.LeadingUnit().Cmp(big.NewInt(1)) != 0 {
		t.Errorf("expected monic leading coefficient, got %s", m)
	}
	//
	if m.Len() != 2 {
		t.Errorf("expected 2 terms, got %d", m.Len())
	}
}

func Test_SeriesMonic_03(t *testing.T) {
	// Field: the whole leading coefficient goes, valuation included.
	f := parseSeries(t, ringQ3(t), "45*x^3 - 45*y")
	//
	m, err := f.Monic()
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	if m.Valuation() != 0 || m.LeadingUnit().Cmp(big.NewInt(1)) != 0 {
		t.Errorf("expected monic series of valuation 0, got %s", m)
	}
	// Two valuations were scaled away, so two digits of precision went too.
	if m.Precision() != 8 {
		t.Errorf("expected precision 8, got %d", m.Precision())
	}
	//
	checkTerm(t, m.LeadingTerm(), 0, []uint{3, 0})
	checkTerm(t, m.Term(1), 0, []uint{0, 1})
}

func Test_SeriesSPolynomial_01(t *testing.T) {
	var (
		f = parseSeries(t, ringZ3(t), "9*x^2 + 5*x*y^2")
		g = parseSeries(t, ringZ3(t), "5*x^2*y + 9")
		s = f.SPolynomial(g)
	)
	// Cross-multiplying onto x^2*y^2 cancels the leading terms, leaving
	// 45*x^3 - 45*y.
	if s.Len() != 2 {
		t.Fatalf("expected 2 terms, got %d", s.Len())
	}
	//
	checkTerm(t, s.LeadingTerm(), 2, []uint{3, 0})
	checkTerm(t, s.Term(1), 2, []uint{0, 1})
	//
	if s.LeadingUnit().Cmp(big.NewInt(5)) != 0 {
		t.Errorf("expected leading unit 5, got %s", s.LeadingUnit())
	}
}

func Test_SeriesSPolynomial_02(t *testing.T) {
	var (
		r = ringZ3(t)
		f = parseSeries(t, r, "5*x*y")
	)
	//
	if !f.SPolynomial(r.Zero()).IsZero() || !r.Zero().SPolynomial(f).IsZero() {
		t.Errorf("s-polynomial against zero should be zero")
	}
}

func Test_SeriesSPolynomial_03(t *testing.T) {
	// An s-polynomial of an element with itself cancels entirely.
	f := parseSeries(t, ringZ3(t), "5*x*y^2 + 9*x^2")
	//
	if !f.SPolynomial(f).IsZero() {
		t.Errorf("self s-polynomial should be zero, got %s", f.SPolynomial(f))
	}
}

func Test_SeriesReduce_01(t *testing.T) {
	var (
		r = ringZ3(t)
		f = parseSeries(t, r, "5*x*y^2 + 9*x^2")
		g = parseSeries(t, r, "x*y^2")
	)
	//
	rem, err := f.Reduce([]*Series{g}, true, true, true)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	if !rem.Equal(parseSeries(t, r, "9*x^2")) {
		t.Errorf("expected 9*x^2, got %s", rem)
	}
}

func Test_SeriesReduce_02(t *testing.T) {
	// Without tail reduction only the leading term is eligible.
	var (
		r = ringZ3(t)
		f = parseSeries(t, r, "5*x*y^2 + 9*x^2")
		g = parseSeries(t, r, "x^2")
	)
	//
	rem, err := f.Reduce([]*Series{g}, true, false, true)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	if !rem.Equal(f) {
		t.Errorf("expected %s unchanged, got %s", f, rem)
	}
	//
	rem, err = f.Reduce([]*Series{g}, true, true, true)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	if !rem.Equal(parseSeries(t, r, "5*x*y^2")) {
		t.Errorf("expected 5*x*y^2, got %s", rem)
	}
}

func Test_SeriesReduce_03(t *testing.T) {
	// Under the field rule a valuation gap is absorbed by scaling, under the
	// integral rule it blocks the division.
	var (
		r = ringQ3(t)
		f = parseSeries(t, r, "x")
		g = parseSeries(t, r, "3*x")
	)
	//
	rem, err := f.Reduce([]*Series{g}, true, true, false)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	if !rem.IsZero() {
		t.Errorf("expected zero remainder, got %s", rem)
	}
	//
	rem, err = f.Reduce([]*Series{g}, true, true, true)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	if !rem.Equal(f) {
		t.Errorf("expected %s unchanged, got %s", f, rem)
	}
}

func Test_SeriesReduce_04(t *testing.T) {
	// Nil and zero reducers are skipped rather than tripped over.
	var (
		r = ringZ3(t)
		f = parseSeries(t, r, "5*x*y")
	)
	//
	rem, err := f.Reduce([]*Series{nil, r.Zero(), parseSeries(t, r, "x*y")}, true, true, true)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	if !rem.IsZero() {
		t.Errorf("expected zero remainder, got %s", rem)
	}
}

func Test_SeriesString_01(t *testing.T) {
	var (
		r = ringZ3(t)
		f = parseSeries(t, r, "5*x^2*y + 9")
	)
	//
	if s := f.String(); s != "5*x^2*y + p^2 + O(p^10)" {
		t.Errorf("unexpected rendering %q", s)
	}
	//
	if s := r.Zero().String(); s != "0" {
		t.Errorf("unexpected rendering %q", s)
	}
}

// ringZ3 constructs the rank-2 test ring over the 3-adic integers, with a
// precision cap of 10 digits.
func ringZ3(t *testing.T) *Ring {
	r, err := NewRing(big.NewInt(3), []string{"x", "y"}, 10, false)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	return r
}

// ringQ3 constructs the rank-2 test ring over the 3-adic numbers.
func ringQ3(t *testing.T) *Ring {
	r, err := NewRing(big.NewInt(3), []string{"x", "y"}, 10, true)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	return r
}

func parseSeries(t *testing.T, r *Ring, input string) *Series {
	f, err := ParseSeries(r, input)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	return f
}

func checkTerm(t *testing.T, actual term.Term, valuation int64, exponent []uint) {
	if !actual.Equal(term.New(valuation, exponent)) {
		t.Errorf("expected term %s, got %s", term.New(valuation, exponent), actual)
	}
}
