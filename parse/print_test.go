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

import "testing"

func leafNode(kind NodeKind, literal string) *AstNode {
	return &AstNode{Kind: kind, Literal: literal}
}

func containerNode(kind NodeKind, children ...*AstNode) *AstNode {
	return &AstNode{Kind: kind, Children: children}
}

func TestSprint_ArithmeticExpressionDefaultJoin(t *testing.T) {
	node := containerNode(NodeKindArithmeticExpression,
		leafNode(NodeKindLiteralExpression, "1"),
		leafNode(NodeKindConstant, "+"),
		leafNode(NodeKindLiteralExpression, "2"),
	)
	if got, want := Sprint(XorNode{Ast: node}, nil), "1 + 2"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSprint_InvokeExpressionHugsParens(t *testing.T) {
	invoke := containerNode(NodeKindInvokeExpression,
		leafNode(NodeKindConstant, "("),
		containerNode(NodeKindArrayWrapper,
			containerNode(NodeKindCsv, leafNode(NodeKindLiteralExpression, "1"), leafNode(NodeKindConstant, ",")),
			containerNode(NodeKindCsv, leafNode(NodeKindLiteralExpression, "2")),
		),
		leafNode(NodeKindConstant, ")"),
	)
	recursive := containerNode(NodeKindRecursivePrimaryExpression,
		containerNode(NodeKindIdentifierExpression, leafNode(NodeKindIdentifier, "foo")),
		invoke,
	)
	if got, want := Sprint(XorNode{Ast: recursive}, nil), "foo(1,\n2)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSprint_IfExpression(t *testing.T) {
	node := containerNode(NodeKindIfExpression,
		leafNode(NodeKindConstant, "if"),
		leafNode(NodeKindLiteralExpression, "true"),
		leafNode(NodeKindConstant, "then"),
		leafNode(NodeKindLiteralExpression, "1"),
		leafNode(NodeKindConstant, "else"),
		leafNode(NodeKindLiteralExpression, "2"),
	)
	if got, want := Sprint(XorNode{Ast: node}, nil), "if true then 1 else 2"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSprint_RecordExpressionIndentsFields(t *testing.T) {
	field := func(name, value string) *AstNode {
		return containerNode(NodeKindGeneralizedIdentifierPairedExpression,
			leafNode(NodeKindGeneralizedIdentifier, name),
			leafNode(NodeKindConstant, "="),
			leafNode(NodeKindLiteralExpression, value),
		)
	}
	record := containerNode(NodeKindRecordExpression,
		leafNode(NodeKindConstant, "["),
		containerNode(NodeKindArrayWrapper,
			containerNode(NodeKindCsv, field("a", "1"), leafNode(NodeKindConstant, ",")),
			containerNode(NodeKindCsv, field("b", "2")),
		),
		leafNode(NodeKindConstant, "]"),
	)

	want := "[\n    a = 1,\n    b = 2\n]"
	if got := Sprint(XorNode{Ast: record}, nil); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSprint_EmptyRecordExpression(t *testing.T) {
	record := containerNode(NodeKindRecordExpression,
		leafNode(NodeKindConstant, "["),
		containerNode(NodeKindArrayWrapper),
		leafNode(NodeKindConstant, "]"),
	)
	if got, want := Sprint(XorNode{Ast: record}, nil), "[]"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSprint_LetExpression(t *testing.T) {
	binding := func(name, value string) *AstNode {
		return containerNode(NodeKindIdentifierPairedExpression,
			leafNode(NodeKindIdentifier, name),
			leafNode(NodeKindConstant, "="),
			leafNode(NodeKindLiteralExpression, value),
		)
	}
	let := containerNode(NodeKindLetExpression,
		leafNode(NodeKindConstant, "let"),
		containerNode(NodeKindArrayWrapper,
			containerNode(NodeKindCsv, binding("x", "1"), leafNode(NodeKindConstant, ",")),
			containerNode(NodeKindCsv, binding("y", "2")),
		),
		leafNode(NodeKindConstant, "in"),
		containerNode(NodeKindIdentifierExpression, leafNode(NodeKindIdentifier, "x")),
	)

	want := "let\n    x = 1,\n    y = 2\nin\n    x"
	if got := Sprint(XorNode{Ast: let}, nil); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
