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

import "testing"

const (
	testWhitespace uint = iota
	testNumber
	testIdent
	testOperator
)

func testRules() []Rule {
	return []Rule{
		NewRule(Many(Unit(' ')), testWhitespace),
		NewRule(Many(Within('0', '9')), testNumber),
		NewRule(Many(Or(Within('a', 'z'), Within('0', '9'))), testIdent),
		NewRule(Unit('+', '*'), testOperator),
	}
}

func Test_Lexer_01(t *testing.T) {
	lexer := NewLexer("12 + xy2", testRules()...)
	//
	tokens := lexer.Collect()
	//
	if !lexer.Exhausted() {
		t.Fatalf("input should be exhausted, stopped at %d", lexer.Index())
	}
	//
	checkKinds(t, tokens, testNumber, testWhitespace, testOperator, testWhitespace, testIdent)
	//
	if lexer.Text(tokens[0]) != "12" || lexer.Text(tokens[4]) != "xy2" {
		t.Errorf("unexpected token text")
	}
}

func Test_Lexer_02(t *testing.T) {
	// Rules apply in order, hence a leading digit lexes as a number even
	// though the identifier rule would also accept it.
	lexer := NewLexer("2x", testRules()...)
	//
	tokens := lexer.Collect()
	//
	checkKinds(t, tokens, testNumber, testIdent)
}

func Test_Lexer_03(t *testing.T) {
	// An unmatchable rune stops the stream, with its position reported.
	lexer := NewLexer("12?34", testRules()...)
	//
	tokens := lexer.Collect()
	//
	if lexer.Exhausted() {
		t.Fatalf("input should not be exhausted")
	}
	//
	if lexer.Index() != 2 {
		t.Errorf("expected index 2, got %d", lexer.Index())
	}
	//
	checkKinds(t, tokens, testNumber)
}

func Test_Lexer_04(t *testing.T) {
	lexer := NewLexer("", testRules()...)
	//
	if tokens := lexer.Collect(); len(tokens) != 0 || !lexer.Exhausted() {
		t.Errorf("empty input should lex to no tokens")
	}
}

func checkKinds(t *testing.T, tokens []Token, kinds ...uint) {
	if len(tokens) != len(kinds) {
		t.Fatalf("expected %d tokens, got %d", len(kinds), len(tokens))
	}
	//
	for i, k := range kinds {
		if tokens[i].Kind != k {
			t.Errorf("token %d: expected kind %d, got %d", i, k, tokens[i].Kind)
		}
	}
}
