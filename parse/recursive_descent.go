/*
 * pqparse
 *
 * Copyright 2026 The pqparse authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parse

import "github.com/devt-tools/pqparse/lexer"

/*
readExpressionRecursiveDescent implements the StrategyRecursiveDescent
binary-expression grammar as a hand-written cascade of functions, one per
precedence level, from loosest (meta) to tightest (multiplicative), each
falling through to the next level when its own operator set doesn't
match - the traditional technique a parser reads top to bottom as "the
grammar, spelled out". The level order follows spec.md §4.4's increasing-
precedence list: meta, or, and, "??" (between relational and logical),
relational, equality, as, is, additive, multiplicative.
*/
func (p *parserState) readExpressionRecursiveDescent() *AstNode {
	return p.rdMeta()
}

/*
rdMeta is the loosest level: "a meta b or c" must parse as
Metadata(a, Logical(b, c)), so its right operand recurses into the next
level down (rdLogicalOr), not into a bare primary expression.
*/
func (p *parserState) rdMeta() *AstNode {
	left := p.rdLogicalOr()
	for p.cursor.isAt(lexer.TokenKindMeta) {
		opTok := p.expect(lexer.TokenKindMeta)
		right := p.rdLogicalOr()
		left = p.buildBinaryNode(NodeKindMetadataExpression, left, opTok, right)
	}
	return left
}

func (p *parserState) rdLogicalOr() *AstNode {
	left := p.rdLogicalAnd()
	for p.cursor.isAt(lexer.TokenKindOr) {
		opTok := p.expect(lexer.TokenKindOr)
		right := p.rdLogicalAnd()
		left = p.buildBinaryNode(NodeKindLogicalExpression, left, opTok, right)
	}
	return left
}

func (p *parserState) rdLogicalAnd() *AstNode {
	left := p.rdNullCoalescing()
	for p.cursor.isAt(lexer.TokenKindAnd) {
		opTok := p.expect(lexer.TokenKindAnd)
		right := p.rdNullCoalescing()
		left = p.buildBinaryNode(NodeKindLogicalExpression, left, opTok, right)
	}
	return left
}

/*
rdNullCoalescing implements "??" per spec.md §4.4: it sits between
relational and logical, and is right-associative - recursing into itself
for the right operand (rather than looping) is what makes
"a ?? b ?? c" parse as "a ?? (b ?? c)".
*/
func (p *parserState) rdNullCoalescing() *AstNode {
	left := p.rdRelational()
	if p.cursor.isAt(lexer.TokenKindNullCoalescingOperator) {
		opTok := p.expect(lexer.TokenKindNullCoalescingOperator)
		right := p.rdNullCoalescing()
		left = p.buildBinaryNode(NodeKindNullCoalescingExpression, left, opTok, right)
	}
	return left
}

func (p *parserState) rdRelational() *AstNode {
	left := p.rdEquality()
	for p.cursor.isAtAny(lexer.TokenKindLessThan, lexer.TokenKindLessThanEqualTo,
		lexer.TokenKindGreaterThan, lexer.TokenKindGreaterThanEqualTo) {
		opTok := *p.cursor.current()
		p.cursor.advance()
		right := p.rdEquality()
		left = p.buildBinaryNode(NodeKindRelationalExpression, left, opTok, right)
	}
	return left
}

func (p *parserState) rdEquality() *AstNode {
	left := p.rdAsLevel()
	for p.cursor.isAtAny(lexer.TokenKindEqual, lexer.TokenKindNotEqual) {
		opTok := *p.cursor.current()
		p.cursor.advance()
		right := p.rdAsLevel()
		left = p.buildBinaryNode(NodeKindEqualityExpression, left, opTok, right)
	}
	return left
}

/*
rdAsLevel and rdIsLevel sit between equality and additive in M's
precedence table, with "is" binding tighter than "as": rdIsLevel wraps
any "is" around the additive level, and rdAsLevel wraps any "as" around
whatever rdIsLevel produces, so "x is t as u" parses as "(x is t) as u".
The right-hand side of either operator is a type, not an expression, so
an "is" that follows an "as" type ("x as t is u") is not consumed at
these levels.
*/
func (p *parserState) rdAsLevel() *AstNode {
	return p.readAsExpression(p.rdIsLevel())
}

func (p *parserState) rdIsLevel() *AstNode {
	return p.readIsExpression(p.rdAdditive())
}

func (p *parserState) rdAdditive() *AstNode {
	left := p.rdMultiplicative()
	for p.cursor.isAtAny(lexer.TokenKindPlus, lexer.TokenKindMinus, lexer.TokenKindAmpersand) {
		opTok := *p.cursor.current()
		p.cursor.advance()
		right := p.rdMultiplicative()
		left = p.buildBinaryNode(NodeKindArithmeticExpression, left, opTok, right)
	}
	return left
}

func (p *parserState) rdMultiplicative() *AstNode {
	left := p.readUnaryOrPrimary()
	for p.cursor.isAtAny(lexer.TokenKindAsterisk, lexer.TokenKindDivision) {
		opTok := *p.cursor.current()
		p.cursor.advance()
		right := p.readUnaryOrPrimary()
		left = p.buildBinaryNode(NodeKindArithmeticExpression, left, opTok, right)
	}
	return left
}
