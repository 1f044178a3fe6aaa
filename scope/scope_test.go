/*
 * pqparse
 *
 * Copyright 2026 The pqparse authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package scope

import (
	"reflect"
	"testing"

	"github.com/devt-tools/pqparse/lexer"
)

func TestAddAndLookup(t *testing.T) {
	s := New()

	s.Add("x", lexer.Position{LineNumber: 0, LineCodeUnit: 4})
	s.Add("y", lexer.Position{LineNumber: 0, LineCodeUnit: 10})

	item, ok := s.Lookup("x")
	if !ok {
		t.Fatal("expected x to be bound")
	}
	if item.DefinitionStart.LineCodeUnit != 4 {
		t.Error("unexpected position:", item.DefinitionStart)
	}

	if _, ok := s.Lookup("z"); ok {
		t.Error("z should not be bound")
	}
}

func TestNearestBindingWins(t *testing.T) {
	s := New()

	s.Add("x", lexer.Position{LineNumber: 0, LineCodeUnit: 0})
	s.Add("x", lexer.Position{LineNumber: 1, LineCodeUnit: 0})

	item, ok := s.Lookup("x")
	if !ok {
		t.Fatal("expected x to be bound")
	}
	if item.DefinitionStart.LineNumber != 1 {
		t.Error("expected the nearest (last-added) binding to win, got", item.DefinitionStart)
	}

	if got := s.Names(); !reflect.DeepEqual(got, []string{"x"}) {
		t.Error("duplicate add should not grow insertion order:", got)
	}
}

func TestNamesPreservesInsertionOrder(t *testing.T) {
	s := New()
	s.Add("c", lexer.Position{})
	s.Add("a", lexer.Position{})
	s.Add("b", lexer.Position{})

	if got := s.Names(); !reflect.DeepEqual(got, []string{"c", "a", "b"}) {
		t.Error("unexpected order:", got)
	}

	if s.Len() != 3 {
		t.Error("unexpected len:", s.Len())
	}
}
