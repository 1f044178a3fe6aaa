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
	"strings"

	"github.com/devt-tools/pqparse/parse"
)

/*
TExpressionKeywords is the set of keywords that may start an expression
(spec.md §4.5e) - every bare keyword with an expression production, plus
the '#'-prefixed keyword constructors.
*/
var TExpressionKeywords = []string{
	"each", "error", "false", "if", "let", "not", "null", "true", "try", "type",
	"#binary", "#date", "#datetime", "#datetimezone", "#duration", "#infinity",
	"#nan", "#sections", "#shared", "#table", "#time",
}

/*
exprSlotChildCounts maps a container node kind to the child counts at
which its next child is an expression (spec.md §4.5e "Inside invoke/list/
record value positions immediately after (, {, =, , an expression is
expected").
*/
var exprSlotChildCounts = map[parse.NodeKind][]int{
	parse.NodeKindCsv:                                   {0},
	parse.NodeKindArrayWrapper:                          {0},
	parse.NodeKindParenthesizedExpression:                {0},
	parse.NodeKindIdentifierPairedExpression:             {2},
	parse.NodeKindGeneralizedIdentifierPairedExpression:   {2},
	parse.NodeKindGeneralizedIdentifierPairedAnyLiteral:   {2},
	parse.NodeKindLetExpression:                          {3},
	parse.NodeKindIfExpression:                           {1, 3, 5},
	parse.NodeKindEachExpression:                         {1},
	parse.NodeKindErrorRaisingExpression:                  {1},
	parse.NodeKindItemAccessExpression:                   {1},
}

/*
Autocomplete is the result of spec.md §4.5e.
*/
type Autocomplete struct {
	AllowedAutocompleteKeywords []string
	MaybeRequiredAutocomplete   *string
}

/*
computeAutocomplete implements spec.md §4.5e. maybeParseError is accepted
for interface fidelity with the spec's "pure in (ActiveNode, NodeIdMap,
maybeParseError)" signature; this implementation derives everything it
needs from ActiveNode's ancestry (an open ContextNode already encodes
"parsing stopped here expecting more").
*/
func computeAutocomplete(collection *parse.Collection, active *ActiveNode, maybeParseError error) Autocomplete {
	if expressionExpected(collection, active) {
		return Autocomplete{AllowedAutocompleteKeywords: append([]string(nil), TExpressionKeywords...)}
	}

	if required := requiredStructuralKeyword(collection, active); required != "" {
		return Autocomplete{AllowedAutocompleteKeywords: []string{}, MaybeRequiredAutocomplete: &required}
	}

	legal := contextualKeywords(collection, active)
	if len(legal) == 0 {
		return Autocomplete{}
	}

	partial := partialIdentifierPrefix(active.Leaf())
	if partial == "" {
		return Autocomplete{AllowedAutocompleteKeywords: legal}
	}

	var allowed []string
	for _, kw := range legal {
		if strings.HasPrefix(kw, partial) {
			allowed = append(allowed, kw)
		}
	}
	return Autocomplete{AllowedAutocompleteKeywords: allowed}
}

/*
expressionExpected locates the innermost open ContextNode on the ancestry
path and reports whether its next child slot is an expression.
*/
func expressionExpected(collection *parse.Collection, active *ActiveNode) bool {
	ctx, ok := innermostOpenContext(active)
	if !ok {
		return false
	}
	counts, known := exprSlotChildCounts[ctx.Kind()]
	if !known {
		return false
	}
	n := len(collection.ChildrenOf(ctx.Id()))
	for _, c := range counts {
		if c == n {
			return true
		}
	}
	return false
}

/*
requiredStructuralKeyword reports the single legal keyword continuation
when an open IfExpression or ErrorHandlingExpression context has no other
legal token at this position (spec.md §4.5e: "if 1 t|" -> then,
"if 1 then 1 e|" -> else, "try true oth|" -> otherwise).
*/
func requiredStructuralKeyword(collection *parse.Collection, active *ActiveNode) string {
	ctx, ok := innermostOpenContext(active)
	if !ok {
		return ""
	}
	n := len(collection.ChildrenOf(ctx.Id()))

	switch ctx.Kind() {
	case parse.NodeKindIfExpression:
		switch n {
		case 2:
			return "then"
		case 4:
			return "else"
		}
	case parse.NodeKindErrorHandlingExpression:
		if n == 2 {
			return "otherwise"
		}
	}
	return ""
}

/*
contextualKeywords lists keywords that are legal (but not the only legal
token) at the active position: "shared" inside an open Section, and the
binary continuation keywords "and", "or", "is", "as" after a completed
expression. "otherwise" is never added here, so a partial "o|" after a
try body is not offered {or, otherwise}; "otherwise" is only offered as
the required keyword of an open ErrorHandlingExpression with two
children (requiredStructuralKeyword).
*/
func contextualKeywords(collection *parse.Collection, active *ActiveNode) []string {
	var out []string

	if ctx, ok := innermostOpenContext(active); ok && ctx.Kind() == parse.NodeKindSection {
		out = append(out, "shared")
	}

	if afterCompletedExpression(active) {
		out = append(out, "and", "or", "is", "as")
	}

	return out
}

/*
innermostOpenContext returns the nearest ContextNode on the ancestry
path (the leaf itself, or its parent when the leaf is a completed token
sitting just inside an open container).
*/
func innermostOpenContext(active *ActiveNode) (parse.XorNode, bool) {
	leaf := active.Leaf()
	if leaf.IsContext() {
		return leaf, true
	}
	if parent, ok := active.Parent(); ok && parent.IsContext() {
		return parent, true
	}
	return parse.XorNode{}, false
}

/*
afterCompletedExpression reports whether the active leaf is a completed,
expression-shaped node (so a binary operator keyword could legally follow
it).
*/
func afterCompletedExpression(active *ActiveNode) bool {
	leaf := active.Leaf()
	if !leaf.IsAst() {
		return false
	}
	switch leaf.Kind() {
	case parse.NodeKindLiteralExpression, parse.NodeKindIdentifierExpression,
		parse.NodeKindParenthesizedExpression, parse.NodeKindRecursivePrimaryExpression,
		parse.NodeKindArithmeticExpression, parse.NodeKindEqualityExpression,
		parse.NodeKindRelationalExpression, parse.NodeKindLogicalExpression,
		parse.NodeKindIsExpression, parse.NodeKindAsExpression, parse.NodeKindMetadataExpression,
		parse.NodeKindNullCoalescingExpression:
		return true
	}
	return false
}

/*
partialIdentifierPrefix returns the text of an in-progress identifier
token ending exactly at the cursor, or "" if the leaf isn't one.
*/
func partialIdentifierPrefix(leaf parse.XorNode) string {
	if leaf.IsAst() && leaf.Kind() == parse.NodeKindIdentifier {
		return leaf.Ast.Literal
	}
	return ""
}
