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
)

/*
InvokeExpressionArguments describes where the cursor sits within an
InvokeExpression's argument list (spec.md §4.5d).
*/
type InvokeExpressionArguments struct {
	NumArguments          int
	PositionArgumentIndex int
}

/*
InspectedInvokeExpression is the result of spec.md §4.5d.
*/
type InspectedInvokeExpression struct {
	Node           parse.XorNode
	MaybeName      *string
	MaybeArguments *InvokeExpressionArguments
}

/*
computeInvokeExpression implements spec.md §4.5d: walk the ancestry from
innermost outward and report the first enclosing InvokeExpression.
*/
func computeInvokeExpression(collection *parse.Collection, active *ActiveNode, pos lexer.Position) *InspectedInvokeExpression {
	ancestry := active.Ancestry

	for i := len(ancestry) - 1; i >= 0; i-- {
		node := ancestry[i]
		if node.Kind() != parse.NodeKindInvokeExpression {
			continue
		}

		result := &InspectedInvokeExpression{Node: node}

		if parent, ok := collection.ParentOf(node.Id()); ok && parent.Kind() == parse.NodeKindRecursivePrimaryExpression {
			base := collection.ChildrenOf(parent.Id())
			if len(base) > 0 {
				if name, ok := identifierLiteral(base[0]); ok {
					result.MaybeName = &name
				}
			}
		}

		children := collection.ChildrenOf(node.Id())
		if len(children) < 2 || children[1].Kind() != parse.NodeKindArrayWrapper {
			return result
		}

		csvItems := collection.ChildrenOf(children[1].Id())
		numArgs := len(csvItems)

		argIdx := -1
		for idx, csv := range csvItems {
			r := csv.TokenRange()
			if r.ContainsPosition(pos) || r.End.Equal(pos) {
				argIdx = idx
				break
			}
		}

		switch {
		case argIdx >= 0:
			result.MaybeArguments = &InvokeExpressionArguments{NumArguments: numArgs, PositionArgumentIndex: argIdx}
		case numArgs == 0 && node.TokenRange().ContainsPosition(pos):
			result.MaybeArguments = &InvokeExpressionArguments{NumArguments: 0, PositionArgumentIndex: 0}
		}

		return result
	}

	return nil
}
