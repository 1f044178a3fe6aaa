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

import "github.com/devt-tools/pqparse/parse"

/*
identifierLiteral returns the name a node contributes to scope / identifier
lookup: an Identifier or GeneralizedIdentifier node's own Literal, or an
IdentifierExpression's inner identifier with its '@' prefix restored.
Anything else reports false.
*/
func identifierLiteral(x parse.XorNode) (string, bool) {
	if !x.IsAst() {
		return "", false
	}
	switch x.Ast.Kind {
	case parse.NodeKindIdentifier, parse.NodeKindGeneralizedIdentifier:
		return x.Ast.Literal, true
	case parse.NodeKindIdentifierExpression:
		if len(x.Ast.Children) == 0 {
			return "", false
		}
		name := x.Ast.Children[len(x.Ast.Children)-1].Literal
		if len(x.Ast.Children) > 1 {
			name = "@" + name
		}
		return name, true
	}
	return "", false
}
