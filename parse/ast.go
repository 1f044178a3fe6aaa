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
	"fmt"

	"github.com/devt-tools/pqparse/lexer"
)

/*
NodeId is the stable numeric identifier every AstNode/ContextNode carries,
issued by a ParseContext's monotonic counter. Once issued it is
immutable, even when a ContextNode is superseded by an AstNode on rule
completion (spec.md §3 "Lifecycle and ownership").
*/
type NodeId uint32

/*
AstNode is a completed CST node, following krotik-ecal's flat ASTNode
shape (helper.go: Name/Token/Children) generalized to the envelope
spec.md §3 requires: every variant shares {id, kind, tokenRange,
attributeIndex}. Terminal nodes additionally carry a literal Token;
non-terminal nodes carry Children (completed AstNodes own their children
by structure - NodeIdMap only indexes them).
*/
type AstNode struct {
	Id             NodeId
	Kind           NodeKind
	TokenRange     lexer.TokenRange
	AttributeIndex *uint32

	// Token is set for terminal/leaf nodes built from a single token
	// (Constant, Identifier, LiteralExpression, PrimitiveType,
	// NotImplementedExpression): the token this node wraps. A
	// GeneralizedIdentifier, which may span several tokens, leaves it nil.
	Token *lexer.Token

	// Children holds, in attribute-index order, the node's child AstNodes.
	// Non-leaf kinds populate this; leaf kinds leave it empty.
	Children []*AstNode

	// Literal carries the normalized textual value for leaf nodes (e.g. an
	// identifier's name, or a constant's lexeme) so inspection doesn't need
	// to re-derive it from Token. An IdentifierExpression's '@' prefix is a
	// separate Constant child and is not part of the identifier's Literal.
	Literal string
}

/*
IsLeaf reports whether this node is a terminal (no children, addressable
directly from NodeIdMap.LeafNodeIds).
*/
func (n *AstNode) IsLeaf() bool {
	return len(n.Children) == 0
}

func (n *AstNode) String() string {
	if n.IsLeaf() && n.Literal != "" {
		return fmt.Sprintf("%s(#%d %q)", n.Kind, n.Id, n.Literal)
	}
	return fmt.Sprintf("%s(#%d)", n.Kind, n.Id)
}
