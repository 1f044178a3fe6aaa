/*
 * pqparse
 *
 * Copyright 2026 The pqparse authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package inspect

import (
	"github.com/devt-tools/pqparse/lexer"
	"github.com/devt-tools/pqparse/parse"
)

// Test trees are built directly against parse.ParseContext (the same
// arena the real parser uses) rather than through a lexer/parser pass, so
// these tests exercise inspect's traversal logic in isolation from
// grammar_shared.go.

func pos(col uint32) lexer.Position {
	return lexer.Position{LineNumber: 0, LineCodeUnit: col}
}

func rng(start, end uint32) lexer.TokenRange {
	return lexer.TokenRange{Start: pos(start), End: pos(end)}
}

func leaf(pc *parse.ParseContext, kind parse.NodeKind, r lexer.TokenRange, literal string) *parse.AstNode {
	pc.Start(kind)
	n := &parse.AstNode{Kind: kind, TokenRange: r, Literal: literal}
	pc.EndAst(n)
	return n
}

func container(pc *parse.ParseContext, kind parse.NodeKind, r lexer.TokenRange, build func() []*parse.AstNode) *parse.AstNode {
	pc.Start(kind)
	children := build()
	n := &parse.AstNode{Kind: kind, TokenRange: r, Children: children}
	pc.EndAst(n)
	return n
}

// buildLetSample builds the CST for "let x = 1, y = x in y" and returns
// the collection plus the token-range boundaries of interest.
func buildLetSample() *parse.Collection {
	collection := parse.NewCollection()
	pc := parse.NewParseContext(collection)

	container(pc, parse.NodeKindLetExpression, rng(0, 21), func() []*parse.AstNode {
		letKw := leaf(pc, parse.NodeKindConstant, rng(0, 3), "let")

		wrapper := container(pc, parse.NodeKindArrayWrapper, rng(4, 16), func() []*parse.AstNode {
			csv0 := container(pc, parse.NodeKindCsv, rng(4, 10), func() []*parse.AstNode {
				paired := container(pc, parse.NodeKindIdentifierPairedExpression, rng(4, 9), func() []*parse.AstNode {
					ident := leaf(pc, parse.NodeKindIdentifier, rng(4, 5), "x")
					eq := leaf(pc, parse.NodeKindConstant, rng(6, 7), "=")
					lit := container(pc, parse.NodeKindLiteralExpression, rng(8, 9), func() []*parse.AstNode { return nil })
					lit.Literal = "1"
					return []*parse.AstNode{ident, eq, lit}
				})
				comma := leaf(pc, parse.NodeKindConstant, rng(9, 10), ",")
				return []*parse.AstNode{paired, comma}
			})

			csv1 := container(pc, parse.NodeKindCsv, rng(11, 16), func() []*parse.AstNode {
				paired := container(pc, parse.NodeKindIdentifierPairedExpression, rng(11, 16), func() []*parse.AstNode {
					ident := leaf(pc, parse.NodeKindIdentifier, rng(11, 12), "y")
					eq := leaf(pc, parse.NodeKindConstant, rng(13, 14), "=")
					value := container(pc, parse.NodeKindIdentifierExpression, rng(15, 16), func() []*parse.AstNode {
						return []*parse.AstNode{leaf(pc, parse.NodeKindIdentifier, rng(15, 16), "x")}
					})
					return []*parse.AstNode{ident, eq, value}
				})
				return []*parse.AstNode{paired}
			})

			return []*parse.AstNode{csv0, csv1}
		})

		inKw := leaf(pc, parse.NodeKindConstant, rng(17, 19), "in")

		body := container(pc, parse.NodeKindIdentifierExpression, rng(20, 21), func() []*parse.AstNode {
			return []*parse.AstNode{leaf(pc, parse.NodeKindIdentifier, rng(20, 21), "y")}
		})

		return []*parse.AstNode{letKw, wrapper, inKw, body}
	})

	return collection
}
