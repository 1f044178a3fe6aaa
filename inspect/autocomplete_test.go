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

func TestComputeAutocomplete_ExpressionExpectedInsideEach(t *testing.T) {
	collection := parse.NewCollection()
	pc := parse.NewParseContext(collection)

	pc.Start(parse.NodeKindEachExpression)
	leaf(pc, parse.NodeKindConstant, rng(0, 4), "each")
	// EachExpression left open: its body hasn't been parsed yet.

	active, ok := computeActiveNode(collection, pos(5), nil)
	if !ok {
		t.Fatal("expected an active node")
	}

	got := computeAutocomplete(collection, active, nil)
	if got.MaybeRequiredAutocomplete != nil {
		t.Fatalf("expected no required keyword, got %v", *got.MaybeRequiredAutocomplete)
	}
	if len(got.AllowedAutocompleteKeywords) != len(TExpressionKeywords) {
		t.Fatalf("expected the full expression keyword set, got %v", got.AllowedAutocompleteKeywords)
	}
}

func TestComputeAutocomplete_RequiresThenAfterIfCondition(t *testing.T) {
	collection := parse.NewCollection()
	pc := parse.NewParseContext(collection)

	pc.Start(parse.NodeKindIfExpression)
	leaf(pc, parse.NodeKindConstant, rng(0, 2), "if")
	condition := container(pc, parse.NodeKindLiteralExpression, rng(3, 7), func() []*parse.AstNode { return nil })
	condition.Literal = "true"
	// IfExpression left open: "then" hasn't been read yet.

	active, ok := computeActiveNode(collection, pos(7), nil)
	if !ok {
		t.Fatal("expected an active node")
	}

	got := computeAutocomplete(collection, active, nil)
	if got.MaybeRequiredAutocomplete == nil || *got.MaybeRequiredAutocomplete != "then" {
		t.Fatalf("expected required keyword then, got %v", got.MaybeRequiredAutocomplete)
	}
}

func TestComputeAutocomplete_SharedIsLegalInsideSection(t *testing.T) {
	collection := parse.NewCollection()
	pc := parse.NewParseContext(collection)

	pc.Start(parse.NodeKindSection)
	container(pc, parse.NodeKindSectionMember, rng(0, 10), func() []*parse.AstNode { return nil })
	// Section left open: more members (or EOF) may follow.

	active, ok := computeActiveNode(collection, pos(11), nil)
	if !ok {
		t.Fatal("expected an active node")
	}

	got := computeAutocomplete(collection, active, nil)
	found := false
	for _, kw := range got.AllowedAutocompleteKeywords {
		if kw == "shared" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected shared to be legal, got %v", got.AllowedAutocompleteKeywords)
	}
}

func TestComputeAutocomplete_BinaryContinuationAfterExpression(t *testing.T) {
	node := &parse.AstNode{Kind: parse.NodeKindLiteralExpression, Literal: "1", TokenRange: rng(0, 1)}
	active := &ActiveNode{Ancestry: []parse.XorNode{{Ast: node}}}

	got := computeAutocomplete(parse.NewCollection(), active, nil)
	want := map[string]bool{"and": true, "or": true, "is": true, "as": true}
	if len(got.AllowedAutocompleteKeywords) != len(want) {
		t.Fatalf("expected 4 binary continuation keywords, got %v", got.AllowedAutocompleteKeywords)
	}
	for _, kw := range got.AllowedAutocompleteKeywords {
		if !want[kw] {
			t.Fatalf("unexpected keyword %q", kw)
		}
	}
}
