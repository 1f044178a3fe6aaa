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

import (
	"github.com/devt-tools/pqparse/common"
	"github.com/devt-tools/pqparse/lexer"
)

/*
ContextNode is a not-yet-complete AST node record: the parser's
in-progress counterpart to AstNode (spec.md §3). It is superseded by an
AstNode when the grammar rule it represents completes.
*/
type ContextNode struct {
	Id              NodeId
	Kind            NodeKind
	AttributeIndex  *uint32
	MaybeTokenStart *lexer.Position
	ParentId        *NodeId
	ChildrenIds     []NodeId
}

/*
ParseContext is the arena of in-flight ContextNodes, keyed by id, plus the
bookkeeping a parser needs to build the NodeIdMap as it goes: a monotonic
id counter, a stack of currently-open contexts, and per-context attribute
counters used to assign each new child's AttributeIndex.

This directly generalizes krotik-ecal's approach of mutating a shared
*parser.node cursor (parser.go) into an explicit, inspectable arena, since
spec.md requires the partial tree to survive a ParseError.
*/
type ParseContext struct {
	nextId NodeId

	collection *Collection

	stack            []NodeId
	attributeCounter map[NodeId]uint32
}

/*
NewParseContext creates an empty arena backed by collection (collection
is typically freshly created by NewCollection).
*/
func NewParseContext(collection *Collection) *ParseContext {
	return &ParseContext{
		collection:       collection,
		attributeCounter: make(map[NodeId]uint32),
	}
}

/*
Snapshot is an opaque backtrack point used only inside explicit
disambiguation scopes (spec.md §4.4 "Disambiguation").
*/
type Snapshot struct {
	nextId             NodeId
	stackLen           int
	attributeCounter   map[NodeId]uint32
	contextNodeIds     []NodeId
	childIdsSnapshot   map[NodeId][]NodeId
	leafNodeIdsPresent map[NodeId]bool
}

/*
TakeSnapshot captures enough state to Restore back to this point,
including every context node id currently live (so Restore can delete
ones created after the snapshot).
*/
func (pc *ParseContext) TakeSnapshot() Snapshot {
	attrCopy := make(map[NodeId]uint32, len(pc.attributeCounter))
	for k, v := range pc.attributeCounter {
		attrCopy[k] = v
	}

	var liveContextIds []NodeId
	for id := range pc.collection.contextNodeById {
		liveContextIds = append(liveContextIds, id)
	}

	childCopy := make(map[NodeId][]NodeId, len(pc.collection.childIdsById))
	for k, v := range pc.collection.childIdsById {
		childCopy[k] = append([]NodeId{}, v...)
	}

	return Snapshot{
		nextId:           pc.nextId,
		stackLen:         len(pc.stack),
		attributeCounter: attrCopy,
		contextNodeIds:   liveContextIds,
		childIdsSnapshot: childCopy,
	}
}

/*
Restore reverts the arena to a previously taken Snapshot, deleting every
context node created since, and restoring attribute counters and the
children-id maps. Used by the parser's bounded-lookahead disambiguation
when a speculative production fails.
*/
func (pc *ParseContext) Restore(snap Snapshot) {
	liveBefore := make(map[NodeId]bool, len(snap.contextNodeIds))
	for _, id := range snap.contextNodeIds {
		liveBefore[id] = true
	}

	for id := range pc.collection.contextNodeById {
		if !liveBefore[id] {
			delete(pc.collection.contextNodeById, id)
			delete(pc.collection.parentIdById, id)
			delete(pc.collection.childIdsById, id)
		}
	}

	pc.nextId = snap.nextId
	pc.stack = pc.stack[:snap.stackLen]
	pc.attributeCounter = snap.attributeCounter
	pc.collection.childIdsById = snap.childIdsSnapshot
}

/*
Start allocates a new ContextNode of the given kind under the node
currently on top of the stack (if any), and pushes it as the new
innermost open context. Its AttributeIndex is whatever the parent's
attribute counter currently reads; the counter is bumped when the node
completes (EndAst) and reset to the node's index if it is abandoned
(Delete), matching
spec.md's "attribute index inherited from parent's attributeCounter,
which increments after each completed child".
*/
func (pc *ParseContext) Start(kind NodeKind) *ContextNode {
	id := pc.nextId
	pc.nextId++

	var parentId *NodeId
	if len(pc.stack) > 0 {
		p := pc.stack[len(pc.stack)-1]
		parentId = &p
	}

	var attrIdx *uint32
	if parentId != nil {
		idx := pc.attributeCounter[*parentId]
		attrIdx = &idx
	}

	node := &ContextNode{Id: id, Kind: kind, ParentId: parentId, AttributeIndex: attrIdx}
	pc.collection.contextNodeById[id] = node

	if parentId != nil {
		pc.collection.parentIdById[id] = *parentId
		pc.collection.childIdsById[*parentId] = append(pc.collection.childIdsById[*parentId], id)
	}

	pc.stack = append(pc.stack, id)
	return node
}

/*
EndAst completes the context currently on top of the stack, replacing it
with astNode in the id maps. Child and parent id maps remain valid
(spec.md §3 "Lifecycle and ownership").
*/
func (pc *ParseContext) EndAst(astNode *AstNode) {
	common.AssertTrue(len(pc.stack) > 0, "EndAst called with no open context")
	id := pc.stack[len(pc.stack)-1]
	pc.stack = pc.stack[:len(pc.stack)-1]

	ctx, ok := pc.collection.contextNodeById[id]
	common.AssertTrue(ok, "EndAst: context node missing from collection")

	astNode.Id = id
	astNode.AttributeIndex = ctx.AttributeIndex

	delete(pc.collection.contextNodeById, id)
	pc.collection.astNodeById[id] = astNode

	if astNode.IsLeaf() {
		pc.collection.leafNodeIds[id] = struct{}{}
	}

	if ctx.ParentId != nil {
		pc.attributeCounter[*ctx.ParentId] = pc.attributeCounter[*ctx.ParentId] + 1
	}
}

/*
Delete removes ctx and every descendant still present as a ContextNode
(used by backtracking disambiguation outside of Restore, and to trim a
speculative child that turned out unnecessary). It decrements the
parent's attribute counter back to ctx's own index so the next sibling
reuses the slot.
*/
func (pc *ParseContext) Delete(ctx *ContextNode) {
	for _, childId := range append([]NodeId{}, pc.collection.childIdsById[ctx.Id]...) {
		if child, ok := pc.collection.contextNodeById[childId]; ok {
			pc.Delete(child)
		}
	}

	delete(pc.collection.contextNodeById, ctx.Id)
	delete(pc.collection.childIdsById, ctx.Id)

	if len(pc.stack) > 0 && pc.stack[len(pc.stack)-1] == ctx.Id {
		pc.stack = pc.stack[:len(pc.stack)-1]
	}

	if ctx.ParentId != nil {
		ids := pc.collection.childIdsById[*ctx.ParentId]
		for i, id := range ids {
			if id == ctx.Id {
				pc.collection.childIdsById[*ctx.ParentId] = append(ids[:i], ids[i+1:]...)
				break
			}
		}
		delete(pc.collection.parentIdById, ctx.Id)

		if ctx.AttributeIndex != nil {
			pc.attributeCounter[*ctx.ParentId] = *ctx.AttributeIndex
		}
	}
}

/*
Rewrap replaces childNodes[0] ("anchor") in the tree with a freshly built
composite node of the given kind whose children are exactly childNodes,
in order. anchor's former parent slot becomes the new node's slot; every
node in childNodes (anchor included) was, until this call, an ordinary
sibling under that same former parent - Rewrap is how the binary
expression builders in grammar_shared.go turn "left, operator, right,
all freshly parsed as siblings" into "operator-node wrapping left and
right", without requiring the parser to know it is building a binary
expression before it starts parsing the left operand.
*/
func (pc *ParseContext) Rewrap(kind NodeKind, childNodes ...*AstNode) *AstNode {
	common.AssertTrue(len(childNodes) > 0, "Rewrap requires at least one child")
	anchor := childNodes[0]

	parentId, hadParent := pc.collection.parentIdById[anchor.Id]
	var oldAttrIdx *uint32
	if hadParent {
		oldAttrIdx = anchor.AttributeIndex
	}

	id := pc.nextId
	pc.nextId++

	if hadParent {
		siblings := pc.collection.childIdsById[parentId]
		for _, c := range childNodes {
			for i, sid := range siblings {
				if sid == c.Id {
					siblings = append(siblings[:i], siblings[i+1:]...)
					break
				}
			}
		}
		pc.collection.childIdsById[parentId] = siblings

		removed := uint32(len(childNodes) - 1)
		if pc.attributeCounter[parentId] >= removed {
			pc.attributeCounter[parentId] -= removed
		}
	}

	childIds := make([]NodeId, len(childNodes))
	for i, c := range childNodes {
		idx := uint32(i)
		c.AttributeIndex = &idx
		pc.collection.parentIdById[c.Id] = id
		childIds[i] = c.Id
	}
	pc.collection.childIdsById[id] = childIds

	node := &AstNode{
		Kind:     kind,
		Id:       id,
		Children: childNodes,
		TokenRange: lexer.TokenRange{
			Start: childNodes[0].TokenRange.Start,
			End:   childNodes[len(childNodes)-1].TokenRange.End,
		},
	}
	pc.collection.astNodeById[id] = node

	if hadParent {
		node.AttributeIndex = oldAttrIdx
		pc.collection.parentIdById[id] = parentId
		pc.collection.childIdsById[parentId] = append(pc.collection.childIdsById[parentId], id)
	}

	return node
}

/*
Current returns the innermost open context, or nil if none is open.
*/
func (pc *ParseContext) Current() *ContextNode {
	if len(pc.stack) == 0 {
		return nil
	}
	return pc.collection.contextNodeById[pc.stack[len(pc.stack)-1]]
}

/*
Collection exposes the arena's backing NodeIdMap.Collection so callers
(and the NodeIdMap constructor) can build a read-only view once parsing
finishes or fails.
*/
func (pc *ParseContext) Collection() *Collection {
	return pc.collection
}
