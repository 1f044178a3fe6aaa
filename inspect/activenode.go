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
Package inspect implements the four independent passes spec.md §4.5
describes over a (position, NodeIdMap) pair: ActiveNode, Scope,
IdentifierUnderPosition, InvokeExpression, plus Autocomplete, assembled by
Inspection.TryFrom. None of it mutates the parse.Collection it is handed -
it is strictly a read-only borrow, matching krotik-ecal's pattern of
never letting evaluation code reach back into the parser's own state
(interpreter/*.go only ever reads parser.ASTNode, never parser.Parser).
*/
package inspect

import (
	"github.com/devt-tools/pqparse/common"
	"github.com/devt-tools/pqparse/lexer"
	"github.com/devt-tools/pqparse/parse"
)

/*
ActiveNode is the result of spec.md §4.5a: the ancestry chain from the
document root down to the innermost node touching position, plus how the
cursor relates to the last entry.
*/
type ActiveNode struct {
	// Ancestry holds every node on the path from the root (index 0) to the
	// innermost enclosing node (the last index), inclusive of both ends.
	Ancestry []parse.XorNode
	LeafKind parse.LeafKind
}

/*
Leaf returns the innermost node in the ancestry, or the zero XorNode if
Ancestry is empty.
*/
func (a *ActiveNode) Leaf() parse.XorNode {
	if len(a.Ancestry) == 0 {
		return parse.XorNode{}
	}
	return a.Ancestry[len(a.Ancestry)-1]
}

/*
Parent returns the node directly enclosing the leaf, if any.
*/
func (a *ActiveNode) Parent() (parse.XorNode, bool) {
	if len(a.Ancestry) < 2 {
		return parse.XorNode{}, false
	}
	return a.Ancestry[len(a.Ancestry)-2], true
}

/*
computeActiveNode implements spec.md §4.5a: locate the innermost XorNode
whose token range contains pos, climbing down from whichever root node is
live, and classify the cursor's relationship to the final leaf.

The "start of every ancestor visited" cancellation checkpoint (spec.md §5)
is the for loop below.
*/
func computeActiveNode(collection *parse.Collection, pos lexer.Position, token common.CancellationToken) (*ActiveNode, bool) {
	roots := collection.RootIds()
	if len(roots) == 0 {
		return nil, false
	}

	rootId := roots[0]
	for _, id := range roots {
		if x, ok := collection.XorNodeById(id); ok && x.TokenRange().ContainsPosition(pos) {
			rootId = id
			break
		}
	}

	root, ok := collection.XorNodeById(rootId)
	if !ok {
		return nil, false
	}

	ancestry := []parse.XorNode{root}
	leafKind := parse.LeafKindDefault
	current := root

	for {
		common.CheckCancellation(token)

		children := collection.ChildrenOf(current.Id())

		var next *parse.XorNode
		var nextKind parse.LeafKind

		for i := range children {
			c := children[i]
			if c.IsContext() {
				next = &children[i]
				nextKind = parse.LeafKindContextNode
				break
			}
			if c.TokenRange().ContainsPosition(pos) {
				next = &children[i]
				nextKind = parse.LeafKindDefault
				break
			}
		}

		if next == nil {
			for i := len(children) - 1; i >= 0; i-- {
				if children[i].IsAst() && children[i].TokenRange().End.Equal(pos) {
					next = &children[i]
					nextKind = parse.LeafKindShiftedRight
					break
				}
			}
		}

		if next == nil {
			break
		}

		ancestry = append(ancestry, *next)
		leafKind = nextKind
		current = *next
	}

	return &ActiveNode{Ancestry: ancestry, LeafKind: leafKind}, true
}
