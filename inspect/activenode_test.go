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

func TestComputeActiveNode_DescendsToIdentifier(t *testing.T) {
	collection := buildLetSample()

	active, ok := computeActiveNode(collection, pos(20), nil)
	if !ok {
		t.Fatal("expected an active node")
	}
	if active.LeafKind != parse.LeafKindDefault {
		t.Fatalf("expected LeafKindDefault, got %v", active.LeafKind)
	}
	leaf := active.Leaf()
	if leaf.Kind() != parse.NodeKindIdentifier || leaf.Ast.Literal != "y" {
		t.Fatalf("expected leaf Identifier(y), got %v", leaf.Kind())
	}
	if parent, ok := active.Parent(); !ok || parent.Kind() != parse.NodeKindIdentifierExpression {
		t.Fatalf("expected parent IdentifierExpression, got %v", parent.Kind())
	}
}

func TestComputeActiveNode_ShiftedRightAtDocumentEnd(t *testing.T) {
	collection := buildLetSample()

	active, ok := computeActiveNode(collection, pos(21), nil)
	if !ok {
		t.Fatal("expected an active node")
	}
	if active.LeafKind != parse.LeafKindShiftedRight {
		t.Fatalf("expected LeafKindShiftedRight, got %v", active.LeafKind)
	}
	leaf := active.Leaf()
	if leaf.Kind() != parse.NodeKindIdentifier || leaf.Ast.Literal != "y" {
		t.Fatalf("expected leaf Identifier(y), got %v", leaf.Kind())
	}
}

func TestComputeActiveNode_EmptyCollection(t *testing.T) {
	collection := parse.NewCollection()
	if _, ok := computeActiveNode(collection, pos(0), nil); ok {
		t.Fatal("expected no active node for an empty collection")
	}
}
