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

func TestTryFrom_AssemblesAllPasses(t *testing.T) {
	collection := buildLetSample()

	result := TryFrom(Settings{Locale: "en-US"}, pos(15), collection, nil)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if result.Inspected == nil {
		t.Fatal("expected an inspected result")
	}
	if result.Inspected.IdentifierUnderPosition.Kind != IdentifierUnderPositionLocal {
		t.Fatalf("expected Local, got %v", result.Inspected.IdentifierUnderPosition.Kind)
	}
	if result.Inspected.Scope.Len() != 1 {
		t.Fatalf("expected 1 binding in scope, got %d", result.Inspected.Scope.Len())
	}
	if result.Inspected.InvokeExpression != nil {
		t.Fatal("expected no enclosing invoke expression")
	}
}

func TestTryFrom_NoActiveNodeOnEmptyCollection(t *testing.T) {
	result := TryFrom(Settings{}, pos(0), parse.NewCollection(), nil)
	if result.Err != ErrNoActiveNode {
		t.Fatalf("expected ErrNoActiveNode, got %v", result.Err)
	}
}
