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
package ninf

import (
	"fmt"
	"strconv"

	"github.com/ninflang/go-ninf/pkg/util/source"
	"github.com/ninflang/go-ninf/pkg/util/source/lex"
)

// Token kinds produced by the lexer below. Order of the corresponding
// lex.Rule entries matters: the lexer takes the first matching rule, so
// longer keywords and multi-character operators are listed ahead of any
// token they are a prefix of.
const (
	tokSkip = iota
	tokSEq
	tokSGt
	tokAndAnd
	tokOrOr
	tokCaret2
	tokEqEq
	tokGtEq
	tokGt
	tokPlus
	tokMinus
	tokStar
	tokLParen
	tokRParen
	tokComma
	tokFin
	tokNot
	tokTrue
	tokFalse
	tokInf
	tokDiv
	tokMod
	tokLg2
	tokWidth
	tokLenFromThenTo
	tokLenFromThen
	tokMin
	tokMax
	tokNumber
	tokIdent
)

func lexRules() []lex.LexRule[rune] {
	return []lex.LexRule[rune]{
		lex.Rule(lex.Many(lex.Within[rune](' ', ' ')), tokSkip),
		lex.Rule(runeString(":==:"), tokSEq),
		lex.Rule(runeString(":>:"), tokSGt),
		lex.Rule(runeString("&&"), tokAndAnd),
		lex.Rule(runeString("||"), tokOrOr),
		lex.Rule(runeString("^^"), tokCaret2),
		lex.Rule(runeString("=="), tokEqEq),
		lex.Rule(runeString(">="), tokGtEq),
		lex.Rule(lex.Unit[rune]('>'), tokGt),
		lex.Rule(lex.Unit[rune]('+'), tokPlus),
		lex.Rule(lex.Unit[rune]('-'), tokMinus),
		lex.Rule(lex.Unit[rune]('*'), tokStar),
		lex.Rule(lex.Unit[rune]('('), tokLParen),
		lex.Rule(lex.Unit[rune](')'), tokRParen),
		lex.Rule(lex.Unit[rune](','), tokComma),
		lex.Rule(runeString("fin"), tokFin),
		lex.Rule(runeString("not"), tokNot),
		lex.Rule(runeString("true"), tokTrue),
		lex.Rule(runeString("false"), tokFalse),
		lex.Rule(runeString("inf"), tokInf),
		lex.Rule(runeString("Div"), tokDiv),
		lex.Rule(runeString("Mod"), tokMod),
		lex.Rule(runeString("Lg2"), tokLg2),
		lex.Rule(runeString("Width"), tokWidth),
		lex.Rule(runeString("LenFromThenTo"), tokLenFromThenTo),
		lex.Rule(runeString("LenFromThen"), tokLenFromThen),
		lex.Rule(runeString("Min"), tokMin),
		lex.Rule(runeString("Max"), tokMax),
		lex.Rule(lex.Sequence[rune](lex.Within[rune]('0', '9'), lex.Many(lex.Within[rune]('0', '9'))), tokNumber),
		lex.Rule(lex.Sequence[rune](lex.Within[rune]('a', 'z'), lex.Many(lex.Within[rune]('0', '9'))), tokIdent),
	}
}

// runeString matches a literal string against a []rune input; lex.String is
// specialised to int32, which rune already is, but kept as its own helper
// for readability at call sites above.
func runeString(s string) lex.Scanner[rune] {
	scanner := lex.String(s)
	return func(items []rune) uint {
		return scanner([]int32(items))
	}
}

// Parser turns printer-syntax text back into Prop/Expr trees.
type Parser struct {
	file   *source.File
	tokens []lex.Token
	pos    int
}

// NewParser constructs a Parser over the given input text.
func NewParser(input string) *Parser {
	file := source.NewSourceFile("<input>", []byte(input))
	lexer := lex.NewLexer(file.Contents(), lexRules()...)

	var tokens []lex.Token

	for _, tok := range lexer.Collect() {
		if tok.Kind != tokSkip {
			tokens = append(tokens, tok)
		}
	}

	return &Parser{file, tokens, 0}
}

// Parse parses input as a Prop.
func Parse(input string) (Prop, error) {
	p := NewParser(input)

	result, err := p.parseProp()
	if err != nil {
		return nil, err
	}

	if p.pos != len(p.tokens) {
		return nil, p.errorf("unexpected trailing input")
	}

	return result, nil
}

// ParseExpr parses input as an Expr.
func ParseExpr(input string) (Expr, error) {
	p := NewParser(input)

	result, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.pos != len(p.tokens) {
		return nil, p.errorf("unexpected trailing input")
	}

	return result, nil
}

func (p *Parser) peek() (lex.Token, bool) {
	if p.pos >= len(p.tokens) {
		return lex.Token{}, false
	}

	return p.tokens[p.pos], true
}

func (p *Parser) peekKind() int {
	tok, ok := p.peek()
	if !ok {
		return -1
	}

	return int(tok.Kind)
}

func (p *Parser) text(tok lex.Token) string {
	return string(p.file.Contents()[tok.Span.Start():tok.Span.End()])
}

func (p *Parser) errorf(format string, args ...any) error {
	span := source.NewSpan(0, 0)
	if tok, ok := p.peek(); ok {
		span = tok.Span
	}

	return p.file.SyntaxError(span, fmt.Sprintf(format, args...))
}

func (p *Parser) expect(kind int, what string) (lex.Token, error) {
	tok, ok := p.peek()
	if !ok || int(tok.Kind) != kind {
		return lex.Token{}, p.errorf("expected %s", what)
	}

	p.pos++

	return tok, nil
}

// parseProp := OrExpr
func (p *Parser) parseProp() (Prop, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (Prop, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for p.peekKind() == tokOrOr {
		p.pos++

		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}

		left = Or{left, right}
	}

	return left, nil
}

func (p *Parser) parseAnd() (Prop, error) {
	left, err := p.parsePropUnary()
	if err != nil {
		return nil, err
	}

	for p.peekKind() == tokAndAnd {
		p.pos++

		right, err := p.parsePropUnary()
		if err != nil {
			return nil, err
		}

		left = And{left, right}
	}

	return left, nil
}

func (p *Parser) parsePropUnary() (Prop, error) {
	switch p.peekKind() {
	case tokNot:
		p.pos++

		if _, err := p.expect(tokLParen, "'('"); err != nil {
			return nil, err
		}

		inner, err := p.parseProp()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}

		return Not{inner}, nil
	case tokLParen:
		p.pos++

		inner, err := p.parseProp()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}

		return inner, nil
	case tokFin:
		p.pos++

		e, err := p.parseExprAtomOrParen()
		if err != nil {
			return nil, err
		}

		return Fin{e}, nil
	case tokTrue:
		p.pos++
		return True{}, nil
	case tokFalse:
		p.pos++
		return False{}, nil
	default:
		return p.parseComparison()
	}
}

// parseExprAtomOrParen parses either a parenthesised expression or a single
// atomic expression, used after "fin" which binds tighter than any infix
// operator in the printer syntax.
func (p *Parser) parseExprAtomOrParen() (Expr, error) {
	if p.peekKind() == tokLParen {
		p.pos++

		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}

		return inner, nil
	}

	return p.parseExprAtom()
}

func (p *Parser) parseComparison() (Prop, error) {
	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	switch p.peekKind() {
	case tokEqEq:
		p.pos++

		y, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		return Eq{x, y}, nil
	case tokGtEq:
		p.pos++

		y, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		return Ge{x, y}, nil
	case tokGt:
		p.pos++

		y, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		return Gt{x, y}, nil
	case tokSEq:
		p.pos++

		y, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		return SEq{x, y}, nil
	case tokSGt:
		p.pos++

		y, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		return SGt{x, y}, nil
	default:
		return nil, p.errorf("expected a comparison operator")
	}
}

func (p *Parser) parseExpr() (Expr, error) {
	return p.parseAddSub()
}

func (p *Parser) parseAddSub() (Expr, error) {
	left, err := p.parseMul()
	if err != nil {
		return nil, err
	}

	for {
		switch p.peekKind() {
		case tokPlus:
			p.pos++

			right, err := p.parseMul()
			if err != nil {
				return nil, err
			}

			left = Add{left, right}
		case tokMinus:
			p.pos++

			right, err := p.parseMul()
			if err != nil {
				return nil, err
			}

			left = Sub{left, right}
		default:
			return left, nil
		}
	}
}

func (p *Parser) parseMul() (Expr, error) {
	left, err := p.parseExp()
	if err != nil {
		return nil, err
	}

	for p.peekKind() == tokStar {
		p.pos++

		right, err := p.parseExp()
		if err != nil {
			return nil, err
		}

		left = Mul{left, right}
	}

	return left, nil
}

// parseExp is right-associative, matching conventional exponentiation.
func (p *Parser) parseExp() (Expr, error) {
	left, err := p.parseExprAtom()
	if err != nil {
		return nil, err
	}

	if p.peekKind() == tokCaret2 {
		p.pos++

		right, err := p.parseExp()
		if err != nil {
			return nil, err
		}

		return Exp{left, right}, nil
	}

	return left, nil
}

func (p *Parser) parseExprAtom() (Expr, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, p.errorf("unexpected end of input")
	}

	switch int(tok.Kind) {
	case tokNumber:
		p.pos++

		n, err := strconv.ParseUint(p.text(tok), 10, 64)
		if err != nil {
			return nil, p.errorf("invalid number literal")
		}

		return K{NatFromUint64(n)}, nil
	case tokInf:
		p.pos++
		return inf, nil
	case tokIdent:
		p.pos++

		name, ok := parseVarName(p.text(tok))
		if !ok {
			return nil, p.errorf("invalid variable name")
		}

		return Var{name}, nil
	case tokLParen:
		p.pos++

		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}

		return inner, nil
	case tokDiv:
		return p.parseBinaryApp(tok.Kind, func(x, y Expr) Expr { return Div{x, y} })
	case tokMod:
		return p.parseBinaryApp(tok.Kind, func(x, y Expr) Expr { return Mod{x, y} })
	case tokMin:
		return p.parseBinaryApp(tok.Kind, func(x, y Expr) Expr { return Min{x, y} })
	case tokMax:
		return p.parseBinaryApp(tok.Kind, func(x, y Expr) Expr { return Max{x, y} })
	case tokLg2:
		return p.parseUnaryApp(func(x Expr) Expr { return Lg2{x} })
	case tokWidth:
		return p.parseUnaryApp(func(x Expr) Expr { return Width{x} })
	case tokLenFromThen:
		return p.parseTernaryApp(func(x, y, z Expr) Expr { return LenFromThen{x, y, z} })
	case tokLenFromThenTo:
		return p.parseTernaryApp(func(x, y, z Expr) Expr { return LenFromThenTo{x, y, z} })
	default:
		return nil, p.errorf("expected an expression")
	}
}

func (p *Parser) parseUnaryApp(build func(Expr) Expr) (Expr, error) {
	p.pos++

	if _, err := p.expect(tokLParen, "'('"); err != nil {
		return nil, err
	}

	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}

	return build(x), nil
}

func (p *Parser) parseBinaryApp(_ uint, build func(Expr, Expr) Expr) (Expr, error) {
	p.pos++

	if _, err := p.expect(tokLParen, "'('"); err != nil {
		return nil, err
	}

	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(tokComma, "','"); err != nil {
		return nil, err
	}

	y, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}

	return build(x, y), nil
}

func (p *Parser) parseTernaryApp(build func(Expr, Expr, Expr) Expr) (Expr, error) {
	p.pos++

	if _, err := p.expect(tokLParen, "'('"); err != nil {
		return nil, err
	}

	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(tokComma, "','"); err != nil {
		return nil, err
	}

	y, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(tokComma, "','"); err != nil {
		return nil, err
	}

	z, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}

	return build(x, y, z), nil
}

// parseVarName inverts VarName: a single lowercase letter optionally
// followed by a decimal suffix.
func parseVarName(s string) (Name, bool) {
	if len(s) == 0 {
		return 0, false
	}

	letter := rune(s[0])
	if letter < 'a' || letter > 'z' {
		return 0, false
	}

	i0 := uint(letter - 'a')

	if len(s) == 1 {
		return Name(i0), true
	}

	k, err := strconv.ParseUint(s[1:], 10, 64)
	if err != nil {
		return 0, false
	}

	return Name(i0 + 26*uint(k)), true
}
