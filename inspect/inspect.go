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
	"github.com/devt-tools/pqparse/common"
	"github.com/devt-tools/pqparse/lexer"
	"github.com/devt-tools/pqparse/parse"
	"github.com/devt-tools/pqparse/scope"
)

/*
Settings bundles what Inspection.TryFrom needs beyond the parse result
itself, mirroring parse.Settings (spec.md §6).
*/
type Settings struct {
	Locale            string
	CancellationToken common.CancellationToken
}

/*
Inspected is the aggregate result of the four independent passes spec.md
§4.5 describes, assembled by one call to TryFrom.
*/
type Inspected struct {
	ActiveNode              *ActiveNode
	Scope                   *scope.Scope
	IdentifierUnderPosition IdentifierUnderPosition
	InvokeExpression        *InspectedInvokeExpression
	Autocomplete            Autocomplete
}

/*
TriedInspection is the Ok(Inspected) | Err(error) outcome of TryFrom.
*/
type TriedInspection struct {
	Inspected *Inspected
	Err       error
}

/*
TryFrom is Inspection.tryFrom (spec.md §6/§4.5): given a cursor position
and the NodeIdMap collection a parse produced (complete or partial, per a
ParseError), runs the four independent passes and assembles them. Passing
maybeParseError lets autocomplete distinguish a clean parse from one that
stopped mid-construct, though in this implementation every pass derives
what it needs directly from the (possibly partial) ancestry, since an
open ContextNode on the path already says "parsing stopped expecting
more" without needing to inspect the error value itself.
*/
func TryFrom(settings Settings, pos lexer.Position, collection *parse.Collection, maybeParseError error) (result TriedInspection) {
	defer common.RecoverCommon(&result.Err)

	common.CheckCancellation(settings.CancellationToken)

	active, ok := computeActiveNode(collection, pos, settings.CancellationToken)
	if !ok {
		result.Err = ErrNoActiveNode
		return result
	}

	sc := computeScope(collection, active)
	identifier := computeIdentifierUnderPosition(active, sc)
	invoke := computeInvokeExpression(collection, active, pos)
	autocomplete := computeAutocomplete(collection, active, maybeParseError)

	result.Inspected = &Inspected{
		ActiveNode:              active,
		Scope:                   sc,
		IdentifierUnderPosition: identifier,
		InvokeExpression:        invoke,
		Autocomplete:            autocomplete,
	}
	return result
}
