/*
 * pqparse
 *
 * Copyright 2026 The pqparse authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parse

import "github.com/devt-tools/pqparse/lexer"

/*
XorNode is the sum of a completed AstNode and an in-progress ContextNode
(spec.md §3). Inspection traversals operate exclusively on XorNodes so
they work identically over a fully-parsed CST and a partial one left
behind by a ParseError.
*/
type XorNode struct {
	Ast     *AstNode
	Context *ContextNode
}

/*
IsAst reports whether this XorNode wraps a completed AstNode.
*/
func (x XorNode) IsAst() bool { return x.Ast != nil }

/*
IsContext reports whether this XorNode wraps an in-progress ContextNode.
*/
func (x XorNode) IsContext() bool { return x.Context != nil }

/*
Id returns the node id shared by both sides of the sum.
*/
func (x XorNode) Id() NodeId {
	if x.Ast != nil {
		return x.Ast.Id
	}
	return x.Context.Id
}

/*
Kind returns the node kind shared by both sides of the sum.
*/
func (x XorNode) Kind() NodeKind {
	if x.Ast != nil {
		return x.Ast.Kind
	}
	return x.Context.Kind
}

/*
AttributeIndex returns the node's position within its parent, if any.
*/
func (x XorNode) AttributeIndex() *uint32 {
	if x.Ast != nil {
		return x.Ast.AttributeIndex
	}
	return x.Context.AttributeIndex
}

/*
TokenRange returns the node's token span. A ContextNode that hasn't
consumed any tokens yet has a zero-width range at MaybeTokenStart (or the
zero Position if it hasn't even seen one token).
*/
func (x XorNode) TokenRange() lexer.TokenRange {
	if x.Ast != nil {
		return x.Ast.TokenRange
	}
	if x.Context.MaybeTokenStart != nil {
		return lexer.TokenRange{Start: *x.Context.MaybeTokenStart, End: *x.Context.MaybeTokenStart}
	}
	return lexer.TokenRange{}
}

/*
Collection is the five-parallel-maps composite view described in
spec.md §3: astNodeById, contextNodeById, childIdsById, parentIdById,
leafNodeIds, all keyed by NodeId. ParseContext owns and mutates it while
parsing; Inspection receives a read-only borrow (spec.md §5).
*/
type Collection struct {
	astNodeById     map[NodeId]*AstNode
	contextNodeById map[NodeId]*ContextNode
	childIdsById    map[NodeId][]NodeId
	parentIdById    map[NodeId]NodeId
	leafNodeIds     map[NodeId]struct{}
}

/*
NewCollection creates an empty Collection.
*/
func NewCollection() *Collection {
	return &Collection{
		astNodeById:     make(map[NodeId]*AstNode),
		contextNodeById: make(map[NodeId]*ContextNode),
		childIdsById:    make(map[NodeId][]NodeId),
		parentIdById:    make(map[NodeId]NodeId),
		leafNodeIds:     make(map[NodeId]struct{}),
	}
}

/*
XorNodeById looks up a node by id, regardless of which side of the sum it
currently occupies.
*/
func (c *Collection) XorNodeById(id NodeId) (XorNode, bool) {
	if ast, ok := c.astNodeById[id]; ok {
		return XorNode{Ast: ast}, true
	}
	if ctx, ok := c.contextNodeById[id]; ok {
		return XorNode{Context: ctx}, true
	}
	return XorNode{}, false
}

/*
ChildrenOf returns the children of id in attribute-index order, as
XorNodes (some may still be ContextNodes).
*/
func (c *Collection) ChildrenOf(id NodeId) []XorNode {
	ids := c.childIdsById[id]
	out := make([]XorNode, 0, len(ids))
	for _, childId := range ids {
		if x, ok := c.XorNodeById(childId); ok {
			out = append(out, x)
		}
	}
	return out
}

/*
ParentOf returns the parent of id, if any.
*/
func (c *Collection) ParentOf(id NodeId) (XorNode, bool) {
	parentId, ok := c.parentIdById[id]
	if !ok {
		return XorNode{}, false
	}
	return c.XorNodeById(parentId)
}

/*
IsLeaf reports whether id is registered as a terminal node.
*/
func (c *Collection) IsLeaf(id NodeId) bool {
	_, ok := c.leafNodeIds[id]
	return ok
}

/*
RootIds returns every node id with no parent entry - normally exactly
one (the document root) while parsing succeeds, but a malformed partial
tree left behind by a ParseError may (rarely) have more than one.
*/
func (c *Collection) RootIds() []NodeId {
	var roots []NodeId
	for id := range c.astNodeById {
		if _, ok := c.parentIdById[id]; !ok {
			roots = append(roots, id)
		}
	}
	for id := range c.contextNodeById {
		if _, ok := c.parentIdById[id]; !ok {
			roots = append(roots, id)
		}
	}
	return roots
}

/*
AstNodeById is a narrow accessor used by callers that know a node must
already be completed (e.g. re-reading a child that was just EndAst'd).
*/
func (c *Collection) AstNodeById(id NodeId) (*AstNode, bool) {
	n, ok := c.astNodeById[id]
	return n, ok
}

/*
LeafNodeIds returns every terminal node id, matching spec.md's
NodeIdMap.leafNodeIds.
*/
func (c *Collection) LeafNodeIds() map[NodeId]struct{} {
	return c.leafNodeIds
}
