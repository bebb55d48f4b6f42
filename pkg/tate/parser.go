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

	"github.com/consensys/go-tate/pkg/util/lex"
)

// Token kinds produced when lexing series text.
const (
	tokWhitespace uint = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokCaret
)

// ParseSeries parses textual series syntax, e.g. "9*x^2 + 5*x*y^2 - 3", into
// a series over the given ring.  The grammar is a signed sum of products,
// where each product multiplies integer literals and (optionally powered)
// variables of the ring.
func ParseSeries(r *Ring, input string) (*Series, error) {
	lexer := lex.NewLexer(input,
		lex.NewRule(lex.Many(lex.Unit(' ', '\t')), tokWhitespace),
		lex.NewRule(lex.Many(lex.Within('0', '9')), tokNumber),
		lex.NewRule(lex.Many(lex.Or(lex.Within('a', 'z'), lex.Within('A', 'Z'), lex.Within('0', '9'), lex.Unit('_'))), tokIdent),
		lex.NewRule(lex.Unit('+'), tokPlus),
		lex.NewRule(lex.Unit('-'), tokMinus),
		lex.NewRule(lex.Unit('*'), tokStar),
		lex.NewRule(lex.Unit('^'), tokCaret),
	)
	//
	tokens := lexer.Collect()
	//
	if !lexer.Exhausted() {
		return nil, fmt.Errorf("unexpected character at offset %d", lexer.Index())
	}
	// Strip whitespace
	tokens = slices.DeleteFunc(tokens, func(t lex.Token) bool {
		return t.Kind == tokWhitespace
	})
	//
	parser := &seriesParser{r, lexer, tokens, 0}
	//
	return parser.parse()
}

// seriesParser is a straightforward recursive descent parser over the token
// stream, accumulating one (coefficient, exponent) pair per product.
type seriesParser struct {
	ring   *Ring
	lexer  *lex.Lexer
	tokens []lex.Token
	index  int
}

func (p *seriesParser) parse() (*Series, error) {
	var (
		coefficients []*big.Int
		exponents    [][]uint
	)
	//
	if len(p.tokens) == 0 {
		return nil, fmt.Errorf("empty series expression")
	}
	//
	for {
		sign := int64(1)
		// Optional signs
		for {
			if p.match(tokPlus) {
				continue
			} else if p.match(tokMinus) {
				sign = -sign
				continue
			}
			//
			break
		}
		//
		coefficient, exponent, err := p.parseProduct()
		//
		if err != nil {
			return nil, err
		}
		//
		coefficients = append(coefficients, coefficient.Mul(coefficient, big.NewInt(sign)))
		exponents = append(exponents, exponent)
		//
		if p.index == len(p.tokens) {
			break
		}
		//
		if !p.lookahead(tokPlus) && !p.lookahead(tokMinus) {
			return nil, p.errorAt("expected + or -")
		}
	}
	//
	return p.ring.NewSeries(coefficients, exponents)
}

func (p *seriesParser) parseProduct() (*big.Int, []uint, error) {
	var (
		coefficient = big.NewInt(1)
		exponent    = make([]uint, len(p.ring.names))
	)
	//
	for {
		switch {
		case p.lookahead(tokNumber):
			var c big.Int
			//
			c.SetString(p.text(), 10)
			coefficient.Mul(coefficient, &c)
			p.index++
		case p.lookahead(tokIdent):
			v := slices.Index(p.ring.names, p.text())
			//
			if v < 0 {
				return nil, nil, p.errorAt(fmt.Sprintf("unknown variable %q", p.text()))
			}
			//
			p.index++
			//
			power := uint(1)
			//
			if p.match(tokCaret) {
				if !p.lookahead(tokNumber) {
					return nil, nil, p.errorAt("expected exponent")
				}
				//
				var e big.Int
				//
				e.SetString(p.text(), 10)
				//
				if !e.IsUint64() {
					return nil, nil, p.errorAt("exponent too large")
				}
				//
				power = uint(e.Uint64())
				p.index++
			}
			//
			exponent[v] += power
		default:
			return nil, nil, p.errorAt("expected number or variable")
		}
		//
		if !p.match(tokStar) {
			break
		}
	}
	//
	return coefficient, exponent, nil
}

// lookahead checks whether the next token has a given kind, without
// consuming it.
func (p *seriesParser) lookahead(kind uint) bool {
	return p.index < len(p.tokens) && p.tokens[p.index].Kind == kind
}

// match consumes the next token provided it has a given kind.
func (p *seriesParser) match(kind uint) bool {
	if p.lookahead(kind) {
		p.index++
		return true
	}
	//
	return false
}

// text extracts the input text of the next token.
func (p *seriesParser) text() string {
	return p.lexer.Text(p.tokens[p.index])
}

func (p *seriesParser) errorAt(message string) error {
	if p.index < len(p.tokens) {
		return fmt.Errorf("%s at offset %d", message, p.tokens[p.index].Start)
	}
	//
	return fmt.Errorf("%s at end of input", message)
}
