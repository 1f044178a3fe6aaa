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
	"strings"

	"github.com/krotik/common/stringutil"
)

/*
IndentationLevel is the number of spaces used per nesting level, the same
role krotik-ecal's prettyprinter.go constant of the same name plays.
*/
const IndentationLevel = 4

/*
Sprint reconstructs M source text from a completed AST, bottom-up: every
node renders its children first (krotik-ecal's prettyprinter.go visit
closure builds a c1..cN parameter map the same way), then a switch on
NodeKind decides how to lay the rendered children out. Unlike
krotik-ecal's ASTNode tree, M's CST already keeps every punctuation and keyword
token as an ordinary Constant child, so the default case - join rendered
children left to right, inserting a space except around tight punctuation
- reproduces correct source for the large majority of node kinds without
a per-kind template; only the handful of constructs with real line
breaks (Section, ArrayWrapper and its users) and two fixed one-line
layouts (IfExpression, RecursivePrimaryExpression) get an explicit case
below.
*/
/*
Sprint reconstructs source text from any XorNode, completed or not: a
completed AstNode renders through sprintNode's NodeKind switch below; an
in-progress ContextNode (a partial tree left behind by a ParseError) has
no NodeKind-specific layout of its own yet, so its present children are
read straight from collection and space-joined in whatever order they
were parsed - useful for inspecting how far a partial parse got.
*/
func Sprint(node XorNode, collection *Collection) string {
	return strings.TrimSpace(sprintXorNode(node, collection, 0))
}

func sprintXorNode(node XorNode, collection *Collection, depth int) string {
	if node.IsAst() {
		return sprintNode(node.Ast, depth)
	}
	if node.Context == nil {
		return ""
	}
	children := collection.ChildrenOf(node.Id())
	parts := make([]string, len(children))
	for i, c := range children {
		parts[i] = sprintXorNode(c, collection, depth)
	}
	return joinDefault(parts)
}

func sprintNode(n *AstNode, depth int) string {
	if n == nil {
		return ""
	}
	if n.IsLeaf() {
		return n.Literal
	}

	childDepth := depth
	if indentsChildren[n.Kind] {
		childDepth = depth + 1
	}

	children := make([]string, len(n.Children))
	for i, c := range n.Children {
		children[i] = sprintNode(c, childDepth)
	}

	switch n.Kind {
	case NodeKindSection:
		return printSection(n, children, depth)
	case NodeKindArrayWrapper:
		// Each Csv child already carries its own trailing comma (readCsv
		// appends the comma Constant as the Csv's own second child), so
		// one item per line is a plain newline join.
		return strings.Join(children, "\n")
	case NodeKindLetExpression:
		return printWrappedBlock(children, depth, "let\n", "in\n"+indentOf(depth+1), 1, 3)
	case NodeKindRecordExpression, NodeKindRecordLiteral:
		return printBracketed(n, children, depth, "[", "]")
	case NodeKindListExpression, NodeKindListLiteral:
		return printBracketed(n, children, depth, "{", "}")
	case NodeKindIfExpression:
		return printIfExpression(children)
	case NodeKindRecursivePrimaryExpression:
		// Invoke/ItemAccess/FieldSelector/FieldProjection suffixes always
		// hug their base (spec.md §4.4 "no space in foo(1), foo{1}, foo[1],
		// foo.bar"); joinDefault's punctuation-based spacing rules can't
		// tell a suffix block from an ordinary value, so this case bypasses
		// them entirely.
		return strings.Join(children, "")
	default:
		return joinDefault(children)
	}
}

/*
indentsChildren marks node kinds whose nested block (an ArrayWrapper, or
a section's members) renders one level deeper than the node itself.
*/
var indentsChildren = map[NodeKind]bool{
	NodeKindSection:          true,
	NodeKindLetExpression:    true,
	NodeKindRecordExpression: true,
	NodeKindRecordLiteral:    true,
	NodeKindListExpression:   true,
	NodeKindListLiteral:      true,
}

func indentOf(depth int) string {
	return stringutil.GenerateRollingString(" ", IndentationLevel*depth)
}

func printSection(n *AstNode, children []string, depth int) string {
	var head []string
	var members []string
	for i, c := range n.Children {
		if c.Kind == NodeKindSectionMember {
			members = append(members, children[i])
			continue
		}
		head = append(head, children[i])
	}

	var b strings.Builder
	b.WriteString(joinDefault(head))
	indent := indentOf(depth + 1)
	for _, m := range members {
		b.WriteString("\n")
		b.WriteString(indent)
		b.WriteString(m)
	}
	return b.String()
}

func printIfExpression(children []string) string {
	// children = [if, cond, then, thenBranch, else, elseBranch]
	if len(children) != 6 {
		return joinDefault(children)
	}
	return strings.Join(children, " ")
}

/*
printWrappedBlock renders a node whose arrayWrapperIndex child is an
already-newline-joined block (see NodeKindArrayWrapper above): indent
every line of it by one level and splice it between a fixed prefix
(ending its own line) and suffix, using tailIndex for the trailing
non-block child (LetExpression's body).
*/
func printWrappedBlock(children []string, depth int, prefix, suffix string, arrayWrapperIndex, tailIndex int) string {
	if len(children) <= tailIndex {
		return joinDefault(children)
	}

	indent := indentOf(depth + 1)
	var b strings.Builder
	b.WriteString(prefix)
	for _, line := range strings.Split(children[arrayWrapperIndex], "\n") {
		b.WriteString(indent)
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(suffix)
	b.WriteString(children[tailIndex])
	return b.String()
}

func printBracketed(n *AstNode, children []string, depth int, open, close string) string {
	if len(n.Children) != 3 || len(n.Children[1].Children) == 0 {
		return open + close
	}

	indent := indentOf(depth + 1)
	var b strings.Builder
	b.WriteString(open)
	b.WriteString("\n")
	for _, line := range strings.Split(children[1], "\n") {
		b.WriteString(indent)
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(indentOf(depth))
	b.WriteString(close)
	return b.String()
}

func joinDefault(children []string) string {
	var b strings.Builder
	for i, s := range children {
		if i > 0 && needsSpaceBetween(children[i-1], s) {
			b.WriteString(" ")
		}
		b.WriteString(s)
	}
	return b.String()
}

func needsSpaceBetween(prev, next string) bool {
	if prev == "" || next == "" {
		return false
	}
	if tightBefore[next] {
		return false
	}
	if tightAfter[prev] {
		return false
	}
	return true
}

// tightBefore holds tokens that never take a leading space (closers and
// separators); tightAfter holds tokens that never take a trailing space
// (openers and the item-access/field-access dot family).
var tightBefore = map[string]bool{
	",": true, ")": true, "]": true, "}": true, ";": true, ".": true, "!": true,
}

var tightAfter = map[string]bool{
	"(": true, "[": true, "{": true, ".": true, "@": true,
}
