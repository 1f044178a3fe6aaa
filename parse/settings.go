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
EntryPoint selects an alternate grammar entry point so callers can parse
isolated sub-grammars (spec.md §6), e.g. a parameter list typed into an
IDE's "add parameter" dialog without a surrounding function expression.
*/
type EntryPoint int

const (
	EntryPointDocument EntryPoint = iota
	EntryPointSection
	EntryPointExpression
	EntryPointParameterSpecificationList
)

/*
StrategyKind selects which of the two parser implementations to run.
Both are required to agree on every observable result except where
spec.md explicitly calls out an ambiguity the spec leaves to the
implementation (there are none in this grammar - the split exists purely
to exercise two different construction techniques over one shared
state interface, per spec.md §9 "Two parsers, one interface").
*/
type StrategyKind int

const (
	StrategyRecursiveDescent StrategyKind = iota
	StrategyCombinatorial
)

/*
Settings bundles everything Parser.tryRead needs (spec.md §6).
*/
type Settings struct {
	Locale            string
	Strategy          StrategyKind
	EntryPoint        EntryPoint
	CancellationToken common.CancellationToken
}

/*
Result is the root AST node plus the Collection backing it, returned on a
successful parse.
*/
type Result struct {
	Root       *AstNode
	Collection *Collection
}

/*
TriedParse is the Ok(Result) | Err(error) outcome of TryRead. On a
*ParseError, Collection is still populated from err.Context - callers
drive Inspection off of that, not off Result.
*/
type TriedParse struct {
	Result *Result
	Err    error
}

/*
TryRead is the top-level Parser.tryRead entry point (spec.md §6):
dispatches to the requested strategy, both of which share the cursor and
ParseContext plumbing in cursor.go/context.go.
*/
func TryRead(settings Settings, snapshot *lexer.Snapshot) (result TriedParse) {
	defer common.RecoverCommon(&result.Err)

	common.CheckCancellation(settings.CancellationToken)

	collection := NewCollection()
	pc := NewParseContext(collection)
	cur := newCursor(snapshot, settings.CancellationToken)

	p := &parserState{cursor: cur, ctx: pc, settings: settings}

	var root *AstNode
	var err error

	func() {
		defer func() {
			if r := recover(); r != nil {
				if pe, ok := r.(*ParseError); ok {
					err = pe
					return
				}
				panic(r)
			}
		}()

		switch settings.EntryPoint {
		case EntryPointSection:
			root = p.readSection()
		case EntryPointExpression:
			root = p.readExpression()
		case EntryPointParameterSpecificationList:
			root = p.readParameterList(false)
		default:
			root = p.readDocument()
		}

		if !cur.isDone() {
			panic(&ParseError{Kind: ErrUnusedTokensRemain, Token: cur.current(), Context: pc})
		}
	}()

	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Context = pc
		}
		result.Err = err
		return result
	}

	result.Result = &Result{Root: root, Collection: collection}
	return result
}
