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
)

func Test_ParseSeries_01(t *testing.T) {
	r := ringZ3(t)
	//
	expected, err := r.NewSeries(
		[]*big.Int{big.NewInt(9), big.NewInt(5)},
		[][]uint{{2, 0}, {1, 2}})
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	checkParse(t, r, "9*x^2 + 5*x*y^2", expected)
}

func Test_ParseSeries_02(t *testing.T) {
	// Repeated variables within a product accumulate their exponents.
	r := ringZ3(t)
	//
	checkParse(t, r, "x*x*y", parseSeries(t, r, "x^2*y"))
}

func Test_ParseSeries_03(t *testing.T) {
	// Signs distribute and stack.
	r := ringZ3(t)
	//
	checkParse(t, r, "- - x", parseSeries(t, r, "x"))
	checkParse(t, r, "2 - 3*y + -x", parseSeries(t, r, "2 - x - 3*y"))
}

func Test_ParseSeries_04(t *testing.T) {
	// Whitespace is insignificant.
	r := ringZ3(t)
	//
	checkParse(t, r, "  5*x \t+ 1 ", parseSeries(t, r, "5*x+1"))
}

func Test_ParseSeries_05(t *testing.T) {
	// A product of bare literals is still a constant.
	r := ringZ3(t)
	//
	checkParse(t, r, "2*2*2", parseSeries(t, r, "8"))
}

func Test_ParseSeriesErr_01(t *testing.T) {
	checkParseErr(t, ringZ3(t), "w + 1")
}

func Test_ParseSeriesErr_02(t *testing.T) {
	checkParseErr(t, ringZ3(t), "x +")
}

func Test_ParseSeriesErr_03(t *testing.T) {
	checkParseErr(t, ringZ3(t), "x $ y")
}

func Test_ParseSeriesErr_04(t *testing.T) {
	checkParseErr(t, ringZ3(t), "")
}

func Test_ParseSeriesErr_05(t *testing.T) {
	// Adjacent products lack an operator.
	checkParseErr(t, ringZ3(t), "x y")
}

func Test_ParseSeriesErr_06(t *testing.T) {
	checkParseErr(t, ringZ3(t), "x^")
}

func checkParse(t *testing.T, r *Ring, input string, expected *Series) {
	actual, err := ParseSeries(r, input)
	//
	if err != nil {
		t.Fatalf("parsing %q: %v", input, err)
	}
	//
	if !actual.Equal(expected) {
		t.Errorf("parsing %q: expected %s, got %s", input, expected, actual)
	}
}

func checkParseErr(t *testing.T, r *Ring, input string) {
	if f, err := ParseSeries(r, input); err == nil {
		t.Errorf("parsing %q: expected an error, got %s", input, f)
	}
}
