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
combinatorialOperator is one row of the binding-power table
readExpressionCombinatorial climbs: power is binding strength (lower
binds looser), kind is the CST node the operator introduces, isType
marks "is"/"as" whose right-hand side is a type, not a recursive
expression, and rightAssoc marks "??" (per spec.md §4.4, right-
associative).
*/
type combinatorialOperator struct {
	power      int
	kind       NodeKind
	isType     bool
	rightAssoc bool
}

/*
combinatorialOperators is the single table StrategyCombinatorial climbs,
standing in for the cascade of named functions
StrategyRecursiveDescent writes out by hand - both encode the same
precedence order (spec.md §4.4, increasing precedence): meta, or, and,
"??" (right-associative, between relational and logical), relational,
equality, as, is, additive, multiplicative.
*/
var combinatorialOperators = map[lexer.TokenKind]combinatorialOperator{
	lexer.TokenKindMeta:                   {1, NodeKindMetadataExpression, false, false},
	lexer.TokenKindOr:                     {2, NodeKindLogicalExpression, false, false},
	lexer.TokenKindAnd:                    {3, NodeKindLogicalExpression, false, false},
	lexer.TokenKindNullCoalescingOperator: {4, NodeKindNullCoalescingExpression, false, true},
	lexer.TokenKindLessThan:               {5, NodeKindRelationalExpression, false, false},
	lexer.TokenKindLessThanEqualTo:        {5, NodeKindRelationalExpression, false, false},
	lexer.TokenKindGreaterThan:            {5, NodeKindRelationalExpression, false, false},
	lexer.TokenKindGreaterThanEqualTo:     {5, NodeKindRelationalExpression, false, false},
	lexer.TokenKindEqual:                  {6, NodeKindEqualityExpression, false, false},
	lexer.TokenKindNotEqual:               {6, NodeKindEqualityExpression, false, false},
	lexer.TokenKindAs:                     {7, NodeKindAsExpression, true, false},
	lexer.TokenKindIs:                     {8, NodeKindIsExpression, true, false},
	lexer.TokenKindPlus:                   {9, NodeKindArithmeticExpression, false, false},
	lexer.TokenKindMinus:                  {9, NodeKindArithmeticExpression, false, false},
	lexer.TokenKindAmpersand:              {9, NodeKindArithmeticExpression, false, false},
	lexer.TokenKindAsterisk:               {10, NodeKindArithmeticExpression, false, false},
	lexer.TokenKindDivision:               {10, NodeKindArithmeticExpression, false, false},
}

/*
readExpressionCombinatorial implements the StrategyCombinatorial binary
expression grammar as a single precedence-climbing (Pratt) loop driven by
combinatorialOperators, rather than RecursiveDescent's hand-written
cascade of one function per level.
*/
func (p *parserState) readExpressionCombinatorial() *AstNode {
	return p.climb(1)
}

func (p *parserState) climb(minPower int) *AstNode {
	left := p.readUnaryOrPrimary()

	// ceiling is the power of the last operator applied at this level: a
	// tighter operator may not take that node as its left operand. Only
	// matters after "is"/"as", whose type operand does not climb.
	ceiling := int(^uint(0) >> 1)

	for {
		t := p.cursor.current()
		if t == nil {
			break
		}

		op, ok := combinatorialOperators[t.Kind]
		if !ok || op.power < minPower || op.power > ceiling {
			break
		}

		opTok := *t
		p.cursor.advance()

		var right *AstNode
		if op.isType {
			right = p.readNullablePrimitiveType()
		} else if op.rightAssoc {
			right = p.climb(op.power)
		} else {
			right = p.climb(op.power + 1)
		}

		left = p.buildBinaryNode(op.kind, left, opTok, right)
		ceiling = op.power
	}

	return left
}
