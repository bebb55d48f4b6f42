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
package lex

// Scanner is a function which accepts some prefix of the remaining input (or
// not), returning the number of runes matched.
type Scanner func(items []rune) uint

// Or combines zero or more scanners such that the resulting scanner succeeds
// if any of the scanners succeeds.  Observe there is an implicit
// left-to-right order of evaluation.
func Or(scanners ...Scanner) Scanner {
	return func(items []rune) uint {
		for _, scanner := range scanners {
			if n := scanner(items); n > 0 {
				return n
			}
		}
		// fail
		return 0
	}
}

// Many matches one or more repetitions of a given scanner.
func Many(scanner Scanner) Scanner {
	return func(items []rune) uint {
		index := uint(0)
		//
		for index < uint(len(items)) {
			if n := scanner(items[index:]); n != 0 {
				index += n
				continue
			}
			//
			break
		}
		// done
		return index
	}
}

// Within accepts any single rune within a given (inclusive) range.
func Within(lowest rune, highest rune) Scanner {
	return func(items []rune) uint {
		if len(items) != 0 && lowest <= items[0] && items[0] <= highest {
			return 1
		}
		// fail
		return 0
	}
}

// Unit accepts any one of the given runes.
func Unit(chars ...rune) Scanner {
	return func(items []rune) uint {
		if len(items) != 0 {
			for _, c := range chars {
				if items[0] == c {
					return 1
				}
			}
		}
		// fail
		return 0
	}
}

// Token associates a tag with a range of runes in the input being scanned.
type Token struct {
	Kind  uint
	Start uint
	End   uint
}

// Rule associates a scanner with the tag assigned to whatever it matches.
type Rule struct {
	scanner Scanner
	tag     uint
}

// NewRule constructs a lexing rule mapping matching runes to a given tag.
func NewRule(scanner Scanner, tag uint) Rule {
	return Rule{scanner, tag}
}

// Lexer provides a top-level construct for tokenising a given input string.
// Rules are tried in order at each position, and the first matching rule
// wins.  Input on which no rule matches terminates the token stream early,
// leaving the offending position reported by Index.
type Lexer struct {
	items []rune
	index uint
	rules []Rule
}

// NewLexer constructs a new lexer for a given input with a given set of rules.
func NewLexer(input string, rules ...Rule) *Lexer {
	return &Lexer{[]rune(input), 0, rules}
}

// Index returns the current position within the input.
func (p *Lexer) Index() uint {
	return p.index
}

// Exhausted determines whether the entire input was consumed.
func (p *Lexer) Exhausted() bool {
	return p.index == uint(len(p.items))
}

// Text extracts the input text covered by a given token.
func (p *Lexer) Text(token Token) string {
	return string(p.items[token.Start:token.End])
}

// Collect scans as many tokens as possible in one go.  If the input was not
// fully consumed afterwards (see Exhausted) then it contains runes on which
// no rule matched.
func (p *Lexer) Collect() []Token {
	var tokens []Token
	//
	for p.index < uint(len(p.items)) {
		token, ok := p.scan()
		//
		if !ok {
			break
		}
		//
		p.index = token.End
		tokens = append(tokens, token)
	}
	//
	return tokens
}

func (p *Lexer) scan() (Token, bool) {
	for _, r := range p.rules {
		if n := r.scanner(p.items[p.index:]); n > 0 {
			return Token{r.tag, p.index, p.index + n}, true
		}
	}
	// no applicable rule
	return Token{}, false
}
