/*
 * pqparse
 *
 * Copyright 2026 The pqparse authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package scope models the identifier bindings visible at a cursor position
(spec.md §4.5b). It is a direct descendant of krotik-ecal's scope package
(varsscope.go): that package modeled a mutable, lockable, parent-chained
runtime variable store for the evaluator; inspection has no evaluator and
no concurrent writers, so this keeps the "named bindings with a lookup"
shape but drops storage/locking/children-tracking in favor of a flat,
insertion-ordered binding list - the only structure spec.md's scope pass
needs, since one Scope is built once per inspection call and never
mutated concurrently.
*/
package scope

import "github.com/devt-tools/pqparse/lexer"

/*
Item is one identifier binding: the name and the position where it is
introduced (a let-variable's name token, a parameter's name token, a
record field's name token, and so on).
*/
type Item struct {
	Identifier      string
	DefinitionStart lexer.Position
}

/*
Scope accumulates Items in the order inspection's top-down traversal adds
them (spec.md §4.5b: "Scope entries carry insertion order; duplicates
keep the nearest binding"). The zero value is not usable; use New.
*/
type Scope struct {
	order  []string
	byName map[string]Item
}

/*
New creates an empty Scope.
*/
func New() *Scope {
	return &Scope{byName: make(map[string]Item)}
}

/*
Add records identifier as bound at start. If identifier was already bound,
its insertion-order position is kept but the binding itself (the
position) is overwritten - the traversal calls Add outermost-to-innermost,
so the last call for a name is always the nearest one.
*/
func (s *Scope) Add(identifier string, start lexer.Position) {
	if _, exists := s.byName[identifier]; !exists {
		s.order = append(s.order, identifier)
	}
	s.byName[identifier] = Item{Identifier: identifier, DefinitionStart: start}
}

/*
Lookup returns the binding for identifier, if any.
*/
func (s *Scope) Lookup(identifier string) (Item, bool) {
	item, ok := s.byName[identifier]
	return item, ok
}

/*
Names returns every bound identifier in insertion order.
*/
func (s *Scope) Names() []string {
	return append([]string(nil), s.order...)
}

/*
Len reports how many distinct identifiers are bound.
*/
func (s *Scope) Len() int {
	return len(s.order)
}
