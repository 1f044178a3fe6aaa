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

import (
	"testing"

	"github.com/devt-tools/pqparse/lexer"
)

/*
parseExpression runs source through both lexer phases and one parser
strategy at EntryPointExpression, failing the test on any error.
*/
func parseExpression(t *testing.T, source string, strategy StrategyKind) *AstNode {
	t.Helper()

	lexed := lexer.TryLex(lexer.Settings{}, source)
	if lexed.Err != nil {
		t.Fatalf("lex error: %v", lexed.Err)
	}

	snapped := lexer.TrySnapshot(lexer.Settings{}, lexed.State)
	if snapped.Err != nil {
		t.Fatalf("snapshot error: %v", snapped.Err)
	}

	tried := TryRead(Settings{Strategy: strategy, EntryPoint: EntryPointExpression}, snapped.Snapshot)
	if tried.Err != nil {
		t.Fatalf("parse error: %v", tried.Err)
	}
	return tried.Result.Root
}

func eachStrategy(t *testing.T, fn func(t *testing.T, strategy StrategyKind)) {
	t.Helper()
	t.Run("RecursiveDescent", func(t *testing.T) { fn(t, StrategyRecursiveDescent) })
	t.Run("Combinatorial", func(t *testing.T) { fn(t, StrategyCombinatorial) })
}

/*
identifierName unwraps an IdentifierExpression down to the bare
identifier leaf it wraps (skipping an optional leading '@' constant), so
tests can assert on the name without caring about that wrapping.
*/
func identifierName(t *testing.T, node *AstNode) string {
	t.Helper()
	if node.Kind != NodeKindIdentifierExpression || len(node.Children) == 0 {
		t.Fatalf("got %v, want an identifier expression", node)
	}
	return node.Children[len(node.Children)-1].Literal
}

/*
TestPrecedence_MetaIsLooserThanLogical pins spec.md §4.4's precedence
order at its loosest boundary: "meta" must bind looser than "or", so
"a meta b or c" parses as Metadata(a, Logical(b, c)), not
Logical(Metadata(a, b), c).
*/
func TestPrecedence_MetaIsLooserThanLogical(t *testing.T) {
	eachStrategy(t, func(t *testing.T, strategy StrategyKind) {
		root := parseExpression(t, "a meta b or c", strategy)

		if root.Kind != NodeKindMetadataExpression {
			t.Fatalf("got root kind %v, want %v", root.Kind, NodeKindMetadataExpression)
		}
		if len(root.Children) != 3 {
			t.Fatalf("got %d children, want 3", len(root.Children))
		}

		left, right := root.Children[0], root.Children[2]
		if got := identifierName(t, left); got != "a" {
			t.Fatalf("got left %q, want \"a\"", got)
		}
		if right.Kind != NodeKindLogicalExpression {
			t.Fatalf("got right kind %v, want %v", right.Kind, NodeKindLogicalExpression)
		}
		if len(right.Children) != 3 {
			t.Fatalf("got %d grandchildren, want 3", len(right.Children))
		}
		if got := identifierName(t, right.Children[0]); got != "b" {
			t.Fatalf("got logical left operand %q, want \"b\"", got)
		}
		if got := identifierName(t, right.Children[2]); got != "c" {
			t.Fatalf("got logical right operand %q, want \"c\"", got)
		}
	})
}

/*
TestPrecedence_RelationalIsLooserThanEquality pins the other end of the
reported defect: relational must bind looser than equality, so
"a < b = c" parses as Relational(a, Equality(b, c)), not
Equality(Relational(a, b), c).
*/
func TestPrecedence_RelationalIsLooserThanEquality(t *testing.T) {
	eachStrategy(t, func(t *testing.T, strategy StrategyKind) {
		root := parseExpression(t, "a < b = c", strategy)

		if root.Kind != NodeKindRelationalExpression {
			t.Fatalf("got root kind %v, want %v", root.Kind, NodeKindRelationalExpression)
		}
		if len(root.Children) != 3 {
			t.Fatalf("got %d children, want 3", len(root.Children))
		}

		left, right := root.Children[0], root.Children[2]
		if got := identifierName(t, left); got != "a" {
			t.Fatalf("got left %q, want \"a\"", got)
		}
		if right.Kind != NodeKindEqualityExpression {
			t.Fatalf("got right kind %v, want %v", right.Kind, NodeKindEqualityExpression)
		}
		if got := identifierName(t, right.Children[0]); got != "b" {
			t.Fatalf("got equality left operand %q, want \"b\"", got)
		}
		if got := identifierName(t, right.Children[2]); got != "c" {
			t.Fatalf("got equality right operand %q, want \"c\"", got)
		}
	})
}

/*
TestPrecedence_NullCoalescingIsRightAssociative pins spec.md §4.4's "??
is right-associative" clause: "a ?? b ?? c" must parse as
NullCoalescing(a, NullCoalescing(b, c)).
*/
func TestPrecedence_NullCoalescingIsRightAssociative(t *testing.T) {
	eachStrategy(t, func(t *testing.T, strategy StrategyKind) {
		root := parseExpression(t, "a ?? b ?? c", strategy)

		if root.Kind != NodeKindNullCoalescingExpression {
			t.Fatalf("got root kind %v, want %v", root.Kind, NodeKindNullCoalescingExpression)
		}
		right := root.Children[2]
		if right.Kind != NodeKindNullCoalescingExpression {
			t.Fatalf("got right kind %v, want %v (right-associative nesting)", right.Kind, NodeKindNullCoalescingExpression)
		}
		if got := identifierName(t, root.Children[0]); got != "a" {
			t.Fatalf("got outer left operand %q, want \"a\"", got)
		}
		if got := identifierName(t, right.Children[0]); got != "b" {
			t.Fatalf("got inner left operand %q, want \"b\"", got)
		}
		if got := identifierName(t, right.Children[2]); got != "c" {
			t.Fatalf("got inner right operand %q, want \"c\"", got)
		}
	})
}
