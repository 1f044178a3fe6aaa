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
	"github.com/devt-tools/pqparse/lexer"
	"github.com/devt-tools/pqparse/parse"
	"github.com/devt-tools/pqparse/scope"
)

/*
computeScope implements spec.md §4.5b: a top-down walk of the ActiveNode's
ancestry (outermost first) that accumulates identifier bindings into one
scope.Scope, in the order each binding construct is entered. Each case
below inspects which child the ancestry continues into next to decide
whether the binding under the cursor excludes itself from its own value.
*/
func computeScope(collection *parse.Collection, active *ActiveNode) *scope.Scope {
	s := scope.New()
	ancestry := active.Ancestry

	for i, node := range ancestry {
		var next *parse.XorNode
		if i+1 < len(ancestry) {
			next = &ancestry[i+1]
		}

		switch node.Kind() {
		case parse.NodeKindEachExpression:
			scopeEachExpression(collection, node, next, s)
		case parse.NodeKindFunctionExpression:
			scopeFunctionExpression(collection, node, next, s)
		case parse.NodeKindLetExpression:
			scopeLetExpression(collection, node, ancestry, i, s)
		case parse.NodeKindRecordExpression, parse.NodeKindRecordLiteral:
			scopeRecordExpression(collection, node, ancestry, i, s)
		case parse.NodeKindSection:
			scopeSection(collection, node, ancestry, i, s)
		}
	}

	if leaf := active.Leaf(); leaf.Kind() == parse.NodeKindIdentifierExpression {
		if name, ok := identifierLiteral(leaf); ok {
			s.Add(name, leaf.TokenRange().Start)
		}
	}

	return s
}

func scopeEachExpression(collection *parse.Collection, node parse.XorNode, next *parse.XorNode, s *scope.Scope) {
	children := collection.ChildrenOf(node.Id())
	if len(children) < 2 || next == nil || next.Id() != children[1].Id() {
		return
	}
	s.Add("_", node.TokenRange().Start)
}

func scopeFunctionExpression(collection *parse.Collection, node parse.XorNode, next *parse.XorNode, s *scope.Scope) {
	children := collection.ChildrenOf(node.Id())
	if len(children) == 0 || next == nil {
		return
	}
	body := children[len(children)-1]
	if next.Id() != body.Id() {
		return
	}

	paramListChildren := collection.ChildrenOf(children[0].Id())
	if len(paramListChildren) < 2 {
		return
	}
	for _, csv := range collection.ChildrenOf(paramListChildren[1].Id()) {
		csvChildren := collection.ChildrenOf(csv.Id())
		if len(csvChildren) == 0 {
			continue
		}
		for _, pc := range collection.ChildrenOf(csvChildren[0].Id()) {
			if name, ok := identifierLiteral(pc); ok {
				s.Add(name, pc.TokenRange().Start)
			}
		}
	}
}

func scopeLetExpression(collection *parse.Collection, node parse.XorNode, ancestry []parse.XorNode, i int, s *scope.Scope) {
	letChildren := collection.ChildrenOf(node.Id())
	if len(letChildren) < 2 {
		return
	}
	bindingCsvs := collection.ChildrenOf(letChildren[1].Id())

	matchedIdx := -1
	if i+2 < len(ancestry) {
		for idx, csv := range bindingCsvs {
			if csv.Id() == ancestry[i+2].Id() {
				matchedIdx = idx
			}
		}
	}

	for idx, csv := range bindingCsvs {
		if matchedIdx >= 0 && idx >= matchedIdx {
			continue
		}
		name, pos, ok := pairedExpressionName(collection, csv)
		if !ok {
			continue
		}
		s.Add(name, pos)
	}
}

func scopeRecordExpression(collection *parse.Collection, node parse.XorNode, ancestry []parse.XorNode, i int, s *scope.Scope) {
	children := collection.ChildrenOf(node.Id())
	if len(children) < 2 {
		return
	}
	fieldCsvs := collection.ChildrenOf(children[1].Id())

	matchedIdx := -1
	if i+2 < len(ancestry) {
		for idx, csv := range fieldCsvs {
			if csv.Id() == ancestry[i+2].Id() {
				matchedIdx = idx
			}
		}
	}

	for idx, csv := range fieldCsvs {
		if idx == matchedIdx {
			continue
		}
		name, pos, ok := pairedExpressionName(collection, csv)
		if !ok {
			continue
		}
		s.Add(name, pos)
	}
}

func scopeSection(collection *parse.Collection, node parse.XorNode, ancestry []parse.XorNode, i int, s *scope.Scope) {
	var members []parse.XorNode
	for _, c := range collection.ChildrenOf(node.Id()) {
		if c.Kind() == parse.NodeKindSectionMember {
			members = append(members, c)
		}
	}

	matchedIdx := -1
	if i+1 < len(ancestry) {
		for idx, m := range members {
			if m.Id() == ancestry[i+1].Id() {
				matchedIdx = idx
			}
		}
	}

	for idx, m := range members {
		if idx == matchedIdx {
			continue
		}

		var paired *parse.XorNode
		memberChildren := collection.ChildrenOf(m.Id())
		for ci := range memberChildren {
			if memberChildren[ci].Kind() == parse.NodeKindIdentifierPairedExpression {
				paired = &memberChildren[ci]
				break
			}
		}
		if paired == nil {
			continue
		}
		name, pos, ok := pairedExpressionName(collection, *paired)
		if !ok {
			continue
		}
		s.Add(name, pos)
	}
}

/*
pairedExpressionName reads the bound name out of a Csv node wrapping an
IdentifierPairedExpression or GeneralizedIdentifierPairedExpression (both
share the [name, "=", value] shape).
*/
func pairedExpressionName(collection *parse.Collection, csv parse.XorNode) (name string, pos lexer.Position, ok bool) {
	csvChildren := collection.ChildrenOf(csv.Id())
	if len(csvChildren) == 0 {
		return "", lexer.Position{}, false
	}
	pairedChildren := collection.ChildrenOf(csvChildren[0].Id())
	if len(pairedChildren) == 0 {
		return "", lexer.Position{}, false
	}
	name, isName := identifierLiteral(pairedChildren[0])
	if !isName {
		return "", lexer.Position{}, false
	}
	return name, pairedChildren[0].TokenRange().Start, true
}
