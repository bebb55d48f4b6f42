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
	"math/big"
)

// ErrPrecision signals that an operation of the coefficient arithmetic could
// not produce a meaningful result at the precision available.
var ErrPrecision = errors.New("insufficient precision")

// Ring represents a Tate series ring over a complete discretely valued
// coefficient ring: the coefficient ring is determined by a uniformiser (a
// rational prime), an absolute precision cap, and whether its fraction field
// is intended (i.e. whether the uniformiser is invertible).  A ring also
// fixes the number and names of the series variables.
type Ring struct {
	// prime is the uniformiser of the coefficient ring.
	prime big.Int
	// names of the series variables, in order.
	names []string
	// prec is the absolute precision cap.
	prec int64
	// field indicates fraction field semantics.
	field bool
}

// NewRing constructs a Tate series ring for a given uniformiser, variable
// names, precision cap and field flag.
func NewRing(prime *big.Int, names []string, prec int64, field bool) (*Ring, error) {
	var r Ring
	//
	if prime == nil || prime.Cmp(big.NewInt(2)) < 0 {
		return nil, fmt.Errorf("invalid uniformiser %v", prime)
	} else if len(names) == 0 {
		return nil, errors.New("ring requires at least one variable")
	} else if prec <= 0 {
		return nil, fmt.Errorf("invalid precision cap %d", prec)
	}
	//
	r.prime.Set(prime)
	r.names = names
	r.prec = prec
	r.field = field
	//
	return &r, nil
}

// IsField determines whether the coefficient ring is a field.
func (r *Ring) IsField() bool {
	return r.field
}

// PrecisionCap returns the absolute precision cap of this ring.
func (r *Ring) PrecisionCap() int64 {
	return r.prec
}

// Uniformiser returns (a copy of) the uniformiser of the coefficient ring.
func (r *Ring) Uniformiser() *big.Int {
	var p big.Int
	return p.Set(&r.prime)
}

// Variables returns the variable names of this ring.
func (r *Ring) Variables() []string {
	return r.names
}

// modulus computes the kth power of the uniformiser, for k >= 0.
func (r *Ring) modulus(k int64) *big.Int {
	var m big.Int
	return m.Exp(&r.prime, big.NewInt(k), nil)
}

// splitValuation factors a non-zero integer coefficient into its uniformiser
// valuation and unit part.
func (r *Ring) splitValuation(c *big.Int) (int64, *big.Int) {
	var (
		unit big.Int
		rem  big.Int
		val  int64
	)
	//
	unit.Set(c)
	//
	for {
		var q big.Int
		//
		q.QuoRem(&unit, &r.prime, &rem)
		//
		if rem.Sign() != 0 {
			break
		}
		//
		unit.Set(&q)
		val++
	}
	//
	return val, &unit
}

// invUnit computes the inverse of a unit modulo the kth power of the
// uniformiser.  The argument must be coprime to the uniformiser; a k of zero
// or below means all precision has been exhausted.
func (r *Ring) invUnit(u *big.Int, k int64) (*big.Int, error) {
	if k <= 0 {
		return nil, fmt.Errorf("inverting unit %v modulo p^%d: %w", u, k, ErrPrecision)
	}
	//
	var inv big.Int
	//
	if inv.ModInverse(u, r.modulus(k)) == nil {
		return nil, fmt.Errorf("coefficient %v is not a unit", u)
	}
	//
	return &inv, nil
}

// reduceUnit normalises a unit representative into the canonical residue
// modulo the kth power of the uniformiser.  Representatives whose precision
// window is non-positive carry no information and collapse to zero.
func (r *Ring) reduceUnit(u *big.Int, k int64) *big.Int {
	var red big.Int
	//
	if k <= 0 {
		return &red
	}
	//
	return red.Mod(u, r.modulus(k))
}
