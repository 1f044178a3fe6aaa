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
	"github.com/devt-tools/pqparse/scope"
)

/*
IdentifierUnderPositionKind discriminates the three outcomes of spec.md
§4.5c.
*/
type IdentifierUnderPositionKind int

const (
	IdentifierUnderPositionAbsent IdentifierUnderPositionKind = iota
	IdentifierUnderPositionLocal
	IdentifierUnderPositionUndefined
)

/*
IdentifierUnderPosition is the result of spec.md §4.5c: whether the cursor
sits on an identifier, and if so, whether it resolves against scope.
*/
type IdentifierUnderPosition struct {
	Kind            IdentifierUnderPositionKind
	Identifier      string
	DefinitionStart lexer.Position // valid only when Kind == IdentifierUnderPositionLocal
}

/*
computeIdentifierUnderPosition implements spec.md §4.5c: if the active
leaf (or, failing that, its immediate parent - covering the cursor sitting
on an IdentifierExpression's '@' prefix) is identifier-shaped, resolve it
against scope.
*/
func computeIdentifierUnderPosition(active *ActiveNode, sc *scope.Scope) IdentifierUnderPosition {
	name, ok := identifierLiteral(active.Leaf())
	if !ok {
		if parent, hasParent := active.Parent(); hasParent {
			name, ok = identifierLiteral(parent)
		}
	}
	if !ok {
		return IdentifierUnderPosition{Kind: IdentifierUnderPositionAbsent}
	}

	if item, found := sc.Lookup(name); found {
		return IdentifierUnderPosition{
			Kind:            IdentifierUnderPositionLocal,
			Identifier:      name,
			DefinitionStart: item.DefinitionStart,
		}
	}

	return IdentifierUnderPosition{Kind: IdentifierUnderPositionUndefined, Identifier: name}
}
