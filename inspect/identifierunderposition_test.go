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
	"github.com/devt-tools/pqparse/scope"
)

func TestComputeIdentifierUnderPosition_Local(t *testing.T) {
	collection := buildLetSample()

	active, ok := computeActiveNode(collection, pos(15), nil)
	if !ok {
		t.Fatal("expected an active node")
	}
	sc := computeScope(collection, active)

	got := computeIdentifierUnderPosition(active, sc)
	if got.Kind != IdentifierUnderPositionLocal {
		t.Fatalf("expected Local, got %v", got.Kind)
	}
	if got.Identifier != "x" {
		t.Fatalf("expected identifier x, got %q", got.Identifier)
	}
	if got.DefinitionStart.LineCodeUnit != 4 {
		t.Fatalf("expected definition at column 4, got %d", got.DefinitionStart.LineCodeUnit)
	}
}

func TestComputeIdentifierUnderPosition_AbsentOverLiteral(t *testing.T) {
	collection := buildLetSample()

	// position 8 is inside x's own RHS literal "1" - not an identifier at
	// all, so this exercises the Absent path via a literal leaf instead.
	active, ok := computeActiveNode(collection, pos(8), nil)
	if !ok {
		t.Fatal("expected an active node")
	}
	sc := computeScope(collection, active)

	got := computeIdentifierUnderPosition(active, sc)
	if got.Kind != IdentifierUnderPositionAbsent {
		t.Fatalf("expected Absent over a literal leaf, got %v", got.Kind)
	}
}

func TestComputeIdentifierUnderPosition_UndefinedReference(t *testing.T) {
	node := &parse.AstNode{Kind: parse.NodeKindIdentifier, Literal: "q", TokenRange: rng(0, 1)}
	active := &ActiveNode{Ancestry: []parse.XorNode{{Ast: node}}}

	got := computeIdentifierUnderPosition(active, scope.New())
	if got.Kind != IdentifierUnderPositionUndefined {
		t.Fatalf("expected Undefined, got %v", got.Kind)
	}
	if got.Identifier != "q" {
		t.Fatalf("expected identifier q, got %q", got.Identifier)
	}
}
