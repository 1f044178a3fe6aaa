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
	"testing"

	"github.com/devt-tools/pqparse/parse"
)

// buildInvokeSample builds the CST for "foo(1, 2)".
func buildInvokeSample() *parse.Collection {
	collection := parse.NewCollection()
	pc := parse.NewParseContext(collection)

	container(pc, parse.NodeKindRecursivePrimaryExpression, rng(0, 9), func() []*parse.AstNode {
		callee := container(pc, parse.NodeKindIdentifierExpression, rng(0, 3), func() []*parse.AstNode {
			return []*parse.AstNode{leaf(pc, parse.NodeKindIdentifier, rng(0, 3), "foo")}
		})

		invoke := container(pc, parse.NodeKindInvokeExpression, rng(3, 9), func() []*parse.AstNode {
			open := leaf(pc, parse.NodeKindConstant, rng(3, 4), "(")

			wrapper := container(pc, parse.NodeKindArrayWrapper, rng(4, 8), func() []*parse.AstNode {
				csv0 := container(pc, parse.NodeKindCsv, rng(4, 6), func() []*parse.AstNode {
					one := container(pc, parse.NodeKindLiteralExpression, rng(4, 5), func() []*parse.AstNode { return nil })
					one.Literal = "1"
					comma := leaf(pc, parse.NodeKindConstant, rng(5, 6), ",")
					return []*parse.AstNode{one, comma}
				})
				csv1 := container(pc, parse.NodeKindCsv, rng(7, 8), func() []*parse.AstNode {
					two := container(pc, parse.NodeKindLiteralExpression, rng(7, 8), func() []*parse.AstNode { return nil })
					two.Literal = "2"
					return []*parse.AstNode{two}
				})
				return []*parse.AstNode{csv0, csv1}
			})

			closeParen := leaf(pc, parse.NodeKindConstant, rng(8, 9), ")")
			return []*parse.AstNode{open, wrapper, closeParen}
		})

		return []*parse.AstNode{callee, invoke}
	})

	return collection
}

func TestComputeInvokeExpression_ResolvesNameAndArgumentIndex(t *testing.T) {
	collection := buildInvokeSample()

	active, ok := computeActiveNode(collection, pos(7), nil)
	if !ok {
		t.Fatal("expected an active node")
	}

	result := computeInvokeExpression(collection, active, pos(7))
	if result == nil {
		t.Fatal("expected an invoke expression result")
	}
	if result.MaybeName == nil || *result.MaybeName != "foo" {
		t.Fatalf("expected name foo, got %v", result.MaybeName)
	}
	if result.MaybeArguments == nil {
		t.Fatal("expected argument info")
	}
	if result.MaybeArguments.NumArguments != 2 {
		t.Fatalf("expected 2 arguments, got %d", result.MaybeArguments.NumArguments)
	}
	if result.MaybeArguments.PositionArgumentIndex != 1 {
		t.Fatalf("expected argument index 1, got %d", result.MaybeArguments.PositionArgumentIndex)
	}
}

func TestComputeInvokeExpression_AbsentOutsideInvoke(t *testing.T) {
	collection := buildLetSample()

	active, ok := computeActiveNode(collection, pos(8), nil)
	if !ok {
		t.Fatal("expected an active node")
	}
	if result := computeInvokeExpression(collection, active, pos(8)); result != nil {
		t.Fatalf("expected no invoke expression, got %+v", result)
	}
}
