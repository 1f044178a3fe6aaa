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

func TestComputeScope_ExcludesOwnRHS(t *testing.T) {
	collection := buildLetSample()

	// position 8 sits inside the literal "1" bound to x - x's own RHS must
	// not see x, and since x is the first binding, y (bound later) isn't
	// visible from it either.
	active, ok := computeActiveNode(collection, pos(8), nil)
	if !ok {
		t.Fatal("expected an active node")
	}

	sc := computeScope(collection, active)
	if sc.Len() != 0 {
		t.Fatalf("expected empty scope, got %v", sc.Names())
	}
}

func TestComputeScope_IncludesEarlierBinding(t *testing.T) {
	collection := buildLetSample()

	// position 15 sits on the "x" reference inside y's binding - x (bound
	// earlier) must be visible, y (the binding being computed) must not.
	active, ok := computeActiveNode(collection, pos(15), nil)
	if !ok {
		t.Fatal("expected an active node")
	}

	sc := computeScope(collection, active)
	names := sc.Names()
	if len(names) != 1 || names[0] != "x" {
		t.Fatalf("expected scope [x], got %v", names)
	}

	item, found := sc.Lookup("x")
	if !found {
		t.Fatal("expected x to resolve")
	}
	if item.DefinitionStart.LineCodeUnit != 4 {
		t.Fatalf("expected x bound at column 4, got %d", item.DefinitionStart.LineCodeUnit)
	}
}

func TestComputeScope_InBodyIncludesAllBindings(t *testing.T) {
	collection := buildLetSample()

	// position 20 sits on the "y" in the in-body - both bindings are
	// visible there.
	active, ok := computeActiveNode(collection, pos(20), nil)
	if !ok {
		t.Fatal("expected an active node")
	}

	sc := computeScope(collection, active)
	names := sc.Names()
	if len(names) != 2 || names[0] != "x" || names[1] != "y" {
		t.Fatalf("expected scope [x y], got %v", names)
	}
}

func TestComputeScope_IdentifierExpressionLeafContributesItself(t *testing.T) {
	// A synthetic ActiveNode whose leaf is an IdentifierExpression (rather
	// than the Identifier it wraps) exercises the final special-case in
	// computeScope directly.
	inner := &parse.AstNode{Kind: parse.NodeKindIdentifier, Literal: "z", TokenRange: rng(0, 1)}
	exprNode := &parse.AstNode{Kind: parse.NodeKindIdentifierExpression, TokenRange: rng(0, 1), Children: []*parse.AstNode{inner}}

	active := &ActiveNode{Ancestry: []parse.XorNode{{Ast: exprNode}}}

	sc := computeScope(parse.NewCollection(), active)
	if _, found := sc.Lookup("z"); !found {
		t.Fatal("expected the identifier expression's own literal to be added to scope")
	}
}
